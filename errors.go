package flooring

import "fmt"

// CatalogFormatError reports a malformed reference file. It is fatal to
// startup: partial catalogs are never acceptable because order numbering
// and tax/product resolution depend on complete catalogs.
type CatalogFormatError struct {
	File string
	Line int // 1-based line number in File, 0 when not line-specific
	Msg  string
	Err  error
}

func (e *CatalogFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("catalog %s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("catalog %s: %s", e.File, e.Msg)
}

func (e *CatalogFormatError) Unwrap() error { return e.Err }

// PersistenceError reports an I/O failure or a malformed order file. It is
// fatal to the triggering operation and must be surfaced to the caller:
// after a failed rewrite the in-memory store stays authoritative but the
// on-disk state may be inconsistent.
type PersistenceError struct {
	Op   string // "load", "rewrite" or "export"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ValidationError reports invalid order input (area below minimum,
// unresolved state or product reference, disallowed characters in the
// customer name). It is recoverable: the caller re-prompts.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// NotFoundError reports an operation on a non-existent order number.
type NotFoundError struct {
	OrderNumber int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order #%d not found", e.OrderNumber)
}
