package flooring

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Quote holds the four derived costs of an order.
//
// All four values are always computed together from the order's area,
// product costs and tax rate. They keep full decimal precision; rounding
// to 2 places (half-up) happens only at serialization or display, so
// rounding error never compounds across the dependent fields.
type Quote struct {
	MaterialCost Money
	LaborCost    Money
	Tax          Money
	Total        Money
}

// ComputeQuote derives a quote from an area in square feet, the product's
// material and labor costs per square foot, and the state tax rate in
// percent:
//
//	materialCost = area * costPerSqft
//	laborCost    = area * laborCostPerSqft
//	tax          = (materialCost + laborCost) * ratePercent / 100
//	total        = materialCost + laborCost + tax
func ComputeQuote(area, costPerSqft, laborCostPerSqft, ratePercent decimal.Decimal) Quote {
	material := area.Mul(costPerSqft)
	labor := area.Mul(laborCostPerSqft)
	tax := material.Add(labor).Mul(ratePercent).Div(hundred)
	total := material.Add(labor).Add(tax)
	return Quote{
		MaterialCost: NewMoney(material),
		LaborCost:    NewMoney(labor),
		Tax:          NewMoney(tax),
		Total:        NewMoney(total),
	}
}
