package flooring

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Reference file names, relative to the data root.
const (
	TaxesFilename    = "Taxes.txt"
	ProductsFilename = "Products.txt"
)

const (
	taxHeader     = "State;StateName;TaxRate"
	productHeader = "ProductType;CostPerSquareFoot;LaborCostPerSquareFoot"
)

// Tax holds the tax rate reference data for one US state.
type Tax struct {
	StateAbbr   string
	StateName   string
	RatePercent decimal.Decimal
}

// Product holds the pricing reference data for one product type.
type Product struct {
	Type             string
	CostPerSqft      decimal.Decimal
	LaborCostPerSqft decimal.Decimal
}

// Catalog holds the two reference tables loaded once at startup. It is
// immutable for the rest of the run.
type Catalog struct {
	taxes    map[string]Tax     // by state abbreviation
	products map[string]Product // by product type
}

// LoadCatalog loads both reference files from the data root.
func LoadCatalog(dataRoot string) (*Catalog, error) {
	taxes, err := loadTaxes(filepath.Join(dataRoot, TaxesFilename))
	if err != nil {
		return nil, err
	}
	products, err := loadProducts(filepath.Join(dataRoot, ProductsFilename))
	if err != nil {
		return nil, err
	}
	return &Catalog{taxes: taxes, products: products}, nil
}

// Tax returns the tax entry for a state abbreviation.
func (c *Catalog) Tax(abbr string) (Tax, bool) {
	t, ok := c.taxes[abbr]
	return t, ok
}

// Product returns the product entry for a product type.
func (c *Catalog) Product(productType string) (Product, bool) {
	p, ok := c.products[productType]
	return p, ok
}

// StateAbbrs returns all known state abbreviations, sorted.
func (c *Catalog) StateAbbrs() []string {
	abbrs := make([]string, 0, len(c.taxes))
	for abbr := range c.taxes {
		abbrs = append(abbrs, abbr)
	}
	sort.Strings(abbrs)
	return abbrs
}

// Taxes returns all tax entries, sorted by state abbreviation.
func (c *Catalog) Taxes() []Tax {
	taxes := make([]Tax, 0, len(c.taxes))
	for _, abbr := range c.StateAbbrs() {
		taxes = append(taxes, c.taxes[abbr])
	}
	return taxes
}

// Products returns all product entries, sorted by product type.
func (c *Catalog) Products() []Product {
	types := make([]string, 0, len(c.products))
	for t := range c.products {
		types = append(types, t)
	}
	sort.Strings(types)
	products := make([]Product, 0, len(types))
	for _, t := range types {
		products = append(products, c.products[t])
	}
	return products
}

func loadTaxes(path string) (map[string]Tax, error) {
	taxes := make(map[string]Tax)
	err := readCatalogFile(path, 3, func(line int, fields []string) error {
		rate, err := decimal.NewFromString(fields[2])
		if err != nil {
			return &CatalogFormatError{File: path, Line: line, Msg: fmt.Sprintf("unparsable tax rate %q", fields[2]), Err: err}
		}
		// Duplicate state abbreviations: last-write-wins.
		taxes[fields[0]] = Tax{StateAbbr: fields[0], StateName: fields[1], RatePercent: rate}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return taxes, nil
}

func loadProducts(path string) (map[string]Product, error) {
	products := make(map[string]Product)
	err := readCatalogFile(path, 3, func(line int, fields []string) error {
		cost, err := decimal.NewFromString(fields[1])
		if err != nil {
			return &CatalogFormatError{File: path, Line: line, Msg: fmt.Sprintf("unparsable cost %q", fields[1]), Err: err}
		}
		labor, err := decimal.NewFromString(fields[2])
		if err != nil {
			return &CatalogFormatError{File: path, Line: line, Msg: fmt.Sprintf("unparsable labor cost %q", fields[2]), Err: err}
		}
		products[fields[0]] = Product{Type: fields[0], CostPerSqft: cost, LaborCostPerSqft: labor}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// readCatalogFile reads a header-prefixed, semicolon-delimited reference
// file and calls fn for each record with the expected arity.
func readCatalogFile(path string, arity int, fn func(line int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &CatalogFormatError{File: path, Msg: "cannot open reference file", Err: err}
	}
	defer f.Close()
	return decodeCatalog(f, path, arity, fn)
}

func decodeCatalog(r io.Reader, path string, arity int, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if n == 1 {
			continue // header
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, recordDelimiter)
		if len(fields) != arity {
			return &CatalogFormatError{File: path, Line: n, Msg: fmt.Sprintf("want %d fields, got %d in %q", arity, len(fields), line)}
		}
		if err := fn(n, fields); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &CatalogFormatError{File: path, Msg: "cannot read reference file", Err: err}
	}
	return nil
}
