package flooring

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// On-disk layout, relative to the data root:
//
//	Taxes.txt              tax reference catalog
//	Products.txt           product reference catalog
//	orders/Orders_<MMDDYYYY>.txt   one partition file per order date
//
// The overall strategy mirrors the load/rewrite cycle of the original
// system: read everything into memory at startup, and after each mutation
// re-partition the full in-memory order set into one file per distinct
// date. The rewrite goes through a temporary file and an atomic rename
// per partition, then deletes partition files whose date no longer has
// any orders, so a crash mid-rewrite can never lose more than the file
// being replaced.
const (
	OrdersDirname   = "orders"
	orderFilePrefix = "Orders_"
	orderFileExt    = ".txt"
)

// dateTokenRE matches the 8-digit MMDDYYYY token embedded in an order
// file name. The last run of 8 digits wins.
var dateTokenRE = regexp.MustCompile(`\d{8}`)

// LoadAll loads the catalogs and every order partition file under the
// data root. The catalogs load first: order reconstruction needs both to
// resolve its state and product references. The order number allocator is
// seeded from the maximum order number found across all files.
//
// A missing orders directory is an empty store, not an error. Anything
// else — a file name with no parsable date token, a record with the wrong
// field count, a non-numeric field, an unresolved reference — aborts the
// whole load with a PersistenceError.
func LoadAll(dataRoot string) (*Catalog, *Store, error) {
	catalog, err := LoadCatalog(dataRoot)
	if err != nil {
		return nil, nil, err
	}

	store := NewStore()
	dir := filepath.Join(dataRoot, OrdersDirname)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, orders directory %q does not exist, starting with an empty store", dir)
		return catalog, store, nil
	}
	if err != nil {
		return nil, nil, &PersistenceError{Op: "load", Path: dir, Err: err}
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), orderFileExt) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		on, err := partitionDate(entry.Name())
		if err != nil {
			return nil, nil, &PersistenceError{Op: "load", Path: path, Err: err}
		}
		orders, err := loadPartition(path, on)
		if err != nil {
			return nil, nil, err
		}
		for _, o := range orders {
			if _, ok := catalog.Tax(o.StateAbbr); !ok {
				return nil, nil, &PersistenceError{Op: "load", Path: path,
					Err: fmt.Errorf("order #%d references unknown state %q", o.Number, o.StateAbbr)}
			}
			if _, ok := catalog.Product(o.ProductType); !ok {
				return nil, nil, &PersistenceError{Op: "load", Path: path,
					Err: fmt.Errorf("order #%d references unknown product %q", o.Number, o.ProductType)}
			}
			store.Add(o) // Add also seeds the number allocator.
		}
	}
	return catalog, store, nil
}

// partitionDate extracts and parses the MMDDYYYY token from an order file
// name.
func partitionDate(name string) (Date, error) {
	tokens := dateTokenRE.FindAllString(name, -1)
	if len(tokens) == 0 {
		return Date{}, fmt.Errorf("no date token in file name %q", name)
	}
	return ParsePartition(tokens[len(tokens)-1])
}

func loadPartition(path string, on Date) ([]Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	orders, err := decodeOrders(f, on)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	return orders, nil
}

// partitionFilename returns the partition file name for a date, e.g.
// "Orders_06012013.txt".
func partitionFilename(on Date) string {
	return orderFilePrefix + on.Partition() + orderFileExt
}

// RewriteAll re-partitions the full in-memory order set into one file per
// distinct order date. Each partition is written to a temporary file and
// renamed into place, then any partition file whose date no longer has
// orders is deleted. With zero orders every partition file is removed and
// nothing is written.
func RewriteAll(dataRoot string, store *Store) error {
	dir := filepath.Join(dataRoot, OrdersDirname)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &PersistenceError{Op: "rewrite", Path: dir, Err: err}
	}

	partitions := make(map[Date][]Order)
	for _, o := range store.All() {
		partitions[o.Date] = append(partitions[o.Date], o)
	}

	kept := make(map[string]bool, len(partitions))
	for on, orders := range partitions {
		name := partitionFilename(on)
		kept[name] = true
		if err := writePartition(filepath.Join(dir, name), orders); err != nil {
			return err
		}
	}

	// Sweep partition files for dates that no longer have any orders.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &PersistenceError{Op: "rewrite", Path: dir, Err: err}
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(name), orderFileExt) {
			continue
		}
		if kept[name] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return &PersistenceError{Op: "rewrite", Path: filepath.Join(dir, name), Err: err}
		}
	}
	return nil
}

// writePartition writes one partition file through a temporary file and an
// atomic rename, so a partial write never clobbers the previous content.
func writePartition(path string, orders []Order) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, orderFilePrefix+"*.tmp")
	if err != nil {
		return &PersistenceError{Op: "rewrite", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := encodeOrders(tmp, orders); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "rewrite", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "rewrite", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &PersistenceError{Op: "rewrite", Path: path, Err: err}
	}
	return nil
}

// ExportAll writes every order, regardless of date, into one flat file:
// the partition record format with the order date appended as an MMDDYYYY
// field. Any prior export is overwritten.
func ExportAll(path string, store *Store) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &PersistenceError{Op: "export", Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Op: "export", Path: path, Err: err}
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString(orderHeader + "\n")
	for _, o := range store.All() {
		b.WriteString(formatExportOrder(o) + "\n")
	}
	if _, err := f.WriteString(b.String()); err != nil {
		return &PersistenceError{Op: "export", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &PersistenceError{Op: "export", Path: path, Err: err}
	}
	return nil
}
