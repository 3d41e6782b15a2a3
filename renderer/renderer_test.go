package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmoran/flooring"
)

func testOrder() flooring.Order {
	area := decimal.RequireFromString("200")
	o := flooring.Order{
		Number:           1,
		CustomerName:     "Ada Lovelace",
		StateAbbr:        "CA",
		TaxRate:          decimal.RequireFromString("25.00"),
		ProductType:      "Carpet",
		Area:             area,
		CostPerSqft:      decimal.RequireFromString("2.25"),
		LaborCostPerSqft: decimal.RequireFromString("2.10"),
		Date:             flooring.MustParseDate("2013-06-01"),
	}
	o.Quote = flooring.ComputeQuote(o.Area, o.CostPerSqft, o.LaborCostPerSqft, o.TaxRate)
	return o
}

func TestOrderMarkdown(t *testing.T) {
	got := OrderMarkdown(testOrder())

	for _, want := range []string{
		"Order #1 on 2013-06-01",
		"Ada Lovelace",
		"CA (tax 25.00%)",
		"Carpet",
		"200.00 sqft",
		"$450.00",
		"$420.00",
		"$217.50",
		"$1,087.50",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("OrderMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestOrdersMarkdown(t *testing.T) {
	on := flooring.MustParseDate("2013-06-01")

	t.Run("with orders", func(t *testing.T) {
		got := OrdersMarkdown(on, []flooring.Order{testOrder()})
		for _, want := range []string{"Orders for 2013-06-01", "Ada Lovelace", "$1,087.50"} {
			if !strings.Contains(got, want) {
				t.Errorf("OrdersMarkdown() missing %q in:\n%s", want, got)
			}
		}
	})

	t.Run("empty date", func(t *testing.T) {
		got := OrdersMarkdown(on, nil)
		if !strings.Contains(got, "No orders on this date.") {
			t.Errorf("OrdersMarkdown() = %s", got)
		}
	})
}

func TestCatalogMarkdown(t *testing.T) {
	products := ProductsMarkdown([]flooring.Product{{
		Type:             "Tile",
		CostPerSqft:      decimal.RequireFromString("3.50"),
		LaborCostPerSqft: decimal.RequireFromString("4.15"),
	}})
	if !strings.Contains(products, "Tile") || !strings.Contains(products, "3.50") {
		t.Errorf("ProductsMarkdown() = %s", products)
	}

	states := StatesMarkdown([]flooring.Tax{{
		StateAbbr:   "TX",
		StateName:   "Texas",
		RatePercent: decimal.RequireFromString("4.45"),
	}})
	if !strings.Contains(states, "Texas") || !strings.Contains(states, "4.45%") {
		t.Errorf("StatesMarkdown() = %s", states)
	}
}
