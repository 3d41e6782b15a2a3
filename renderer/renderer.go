// Package renderer turns orders and catalogs into markdown, ready to be
// printed to the terminal by the cmd layer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mmoran/flooring"
)

// OrderMarkdown renders a single priced order as a markdown document.
func OrderMarkdown(o flooring.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Order #%d on %s", o.Number, o.Date))

	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Customer", o.CustomerName},
			{"State", fmt.Sprintf("%s (tax %s%%)", o.StateAbbr, o.TaxRate.StringFixed(2))},
			{"Product", o.ProductType},
			{"Area", o.Area.StringFixed(2) + " sqft"},
			{"Material cost", o.Quote.MaterialCost.String()},
			{"Labor cost", o.Quote.LaborCost.String()},
			{"Tax", o.Quote.Tax.String()},
			{"Total", o.Quote.Total.String()},
		},
	})

	return doc.String()
}

// OrdersMarkdown renders the orders of one date as a markdown table.
func OrdersMarkdown(on flooring.Date, orders []flooring.Order) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Orders for %s", on))
	if len(orders) == 0 {
		doc.PlainText("No orders on this date.")
		return doc.String()
	}

	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			fmt.Sprintf("%d", o.Number),
			o.CustomerName,
			o.StateAbbr,
			o.ProductType,
			o.Area.StringFixed(2),
			o.Quote.Total.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Order", "Customer", "State", "Product", "Area (sqft)", "Total"},
		Rows:   rows,
	})

	return doc.String()
}

// ProductsMarkdown renders the product catalog as a markdown table.
func ProductsMarkdown(products []flooring.Product) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Type,
			p.CostPerSqft.StringFixed(2),
			p.LaborCostPerSqft.StringFixed(2),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Product", "Cost/sqft", "Labor/sqft"},
		Rows:   rows,
	})

	return doc.String()
}

// StatesMarkdown renders the tax catalog as a markdown table.
func StatesMarkdown(taxes []flooring.Tax) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("States")
	rows := make([][]string, 0, len(taxes))
	for _, t := range taxes {
		rows = append(rows, []string{t.StateAbbr, t.StateName, t.RatePercent.StringFixed(2) + "%"})
	}
	doc.Table(md.TableSet{
		Header: []string{"State", "Name", "Tax rate"},
		Rows:   rows,
	})

	return doc.String()
}
