package flooring

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Order is a single customer transaction for flooring material and labor
// on a given date.
//
// The state and product references are stored as plain key values and
// resolved through the catalog, never as embedded pointers. The tax rate
// and per-square-foot costs are snapshotted into the order when it is
// created or edited, and are persisted verbatim so that a catalog change
// never silently reprices existing orders.
type Order struct {
	Number           int
	CustomerName     string
	StateAbbr        string
	TaxRate          decimal.Decimal
	ProductType      string
	Area             decimal.Decimal
	CostPerSqft      decimal.Decimal
	LaborCostPerSqft decimal.Decimal
	Quote            Quote
	Date             Date
}

// NewOrder validates the input, resolves the state and product references
// against the catalog, snapshots the reference values and prices the
// order. The order number is not assigned here: the store allocates it
// just before the order is added.
func NewOrder(c *Catalog, customerName, stateAbbr, productType string, area decimal.Decimal, on Date) (Order, error) {
	if err := ValidateCustomerName(customerName); err != nil {
		return Order{}, err
	}
	if err := ValidateArea(area); err != nil {
		return Order{}, err
	}
	tax, ok := c.Tax(stateAbbr)
	if !ok {
		return Order{}, &ValidationError{Field: "state", Msg: fmt.Sprintf("%q is not a known state abbreviation", stateAbbr)}
	}
	product, ok := c.Product(productType)
	if !ok {
		return Order{}, &ValidationError{Field: "product", Msg: fmt.Sprintf("%q is not a known product type", productType)}
	}

	o := Order{
		CustomerName:     customerName,
		StateAbbr:        tax.StateAbbr,
		TaxRate:          tax.RatePercent,
		ProductType:      product.Type,
		Area:             area,
		CostPerSqft:      product.CostPerSqft,
		LaborCostPerSqft: product.LaborCostPerSqft,
		Date:             on,
	}
	o.Quote = ComputeQuote(o.Area, o.CostPerSqft, o.LaborCostPerSqft, o.TaxRate)
	return o, nil
}

// Edit describes the replacements to apply to an existing order. A zero
// field keeps the old value. The order date is immutable: no edit path
// exposes it.
type Edit struct {
	CustomerName string
	StateAbbr    string
	ProductType  string
	Area         *decimal.Decimal
}

// Apply merges the edit into a copy of the order, revalidates it and
// recomputes all four derived costs from scratch, so an edit to area or
// product can never leave a stale partial quote behind. The order number
// and date are preserved.
func (e Edit) Apply(c *Catalog, o Order) (Order, error) {
	customerName := o.CustomerName
	if e.CustomerName != "" {
		customerName = e.CustomerName
	}
	stateAbbr := o.StateAbbr
	if e.StateAbbr != "" {
		stateAbbr = e.StateAbbr
	}
	productType := o.ProductType
	if e.ProductType != "" {
		productType = e.ProductType
	}
	area := o.Area
	if e.Area != nil {
		area = *e.Area
	}

	edited, err := NewOrder(c, customerName, stateAbbr, productType, area, o.Date)
	if err != nil {
		return Order{}, err
	}
	edited.Number = o.Number
	return edited, nil
}
