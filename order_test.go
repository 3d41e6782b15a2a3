package flooring

import (
	"errors"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadCatalog(writeTestCatalogs(t, t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewOrder(t *testing.T) {
	c := testCatalog(t)
	on := MustParseDate("2013-06-01")

	o, err := NewOrder(c, "Ada Lovelace", "CA", "Carpet", d("200"), on)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}

	if o.Number != 0 {
		t.Errorf("Number = %d, the store assigns numbers, not the constructor", o.Number)
	}
	if o.TaxRate.StringFixed(2) != "25.00" {
		t.Errorf("TaxRate = %s, want the CA catalog rate", o.TaxRate)
	}
	if o.CostPerSqft.StringFixed(2) != "2.25" || o.LaborCostPerSqft.StringFixed(2) != "2.10" {
		t.Errorf("product costs not snapshotted: %s/%s", o.CostPerSqft, o.LaborCostPerSqft)
	}
	if got := o.Quote.Total.Text(); got != "1087.50" {
		t.Errorf("Total = %s, want 1087.50", got)
	}
	if o.Date != on {
		t.Errorf("Date = %s, want %s", o.Date, on)
	}
}

func TestNewOrder_Validation(t *testing.T) {
	c := testCatalog(t)
	on := MustParseDate("2013-06-01")

	testCases := []struct {
		name                           string
		customer, state, product, area string
	}{
		{"empty customer name", "", "CA", "Carpet", "200"},
		{"disallowed character", "Acme?!", "CA", "Carpet", "200"},
		{"area below minimum", "Ada Lovelace", "CA", "Carpet", "99.99"},
		{"unknown state", "Ada Lovelace", "ZZ", "Carpet", "200"},
		{"unknown product", "Ada Lovelace", "CA", "Marble", "200"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrder(c, tc.customer, tc.state, tc.product, d(tc.area), on)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("NewOrder() error = %v, want ValidationError", err)
			}
		})
	}

	// The full allowed charset is accepted.
	if _, err := NewOrder(c, "O'Brien, Jr. 2nd", "CA", "Carpet", d("200"), on); err != nil {
		t.Errorf("NewOrder() rejected a valid name: %v", err)
	}
}

func TestEdit_Apply(t *testing.T) {
	c := testCatalog(t)
	on := MustParseDate("2013-06-01")

	o, err := NewOrder(c, "Ada Lovelace", "CA", "Carpet", d("200"), on)
	if err != nil {
		t.Fatal(err)
	}
	o.Number = 7

	t.Run("zero edit keeps everything", func(t *testing.T) {
		same, err := (Edit{}).Apply(c, o)
		if err != nil {
			t.Fatal(err)
		}
		if same.Number != 7 || same.CustomerName != "Ada Lovelace" || same.Date != on {
			t.Errorf("zero edit changed the order: %+v", same)
		}
		if !same.Quote.Total.Equal(o.Quote.Total) {
			t.Errorf("zero edit changed the total: %s", same.Quote.Total.Text())
		}
	})

	t.Run("new product reprices all four costs", func(t *testing.T) {
		edited, err := (Edit{ProductType: "Tile"}).Apply(c, o)
		if err != nil {
			t.Fatal(err)
		}
		if edited.Number != 7 || edited.Date != on {
			t.Errorf("edit must keep number and date: %+v", edited)
		}
		if edited.CustomerName != "Ada Lovelace" {
			t.Errorf("omitted fields must keep old values: %q", edited.CustomerName)
		}
		// Tile 3.50/4.15 on 200 sqft in CA: 700 + 830 + 382.50.
		if got := edited.Quote.Total.Text(); got != "1912.50" {
			t.Errorf("Total = %s, want 1912.50", got)
		}
	})

	t.Run("new area revalidates", func(t *testing.T) {
		area := d("50")
		_, err := (Edit{Area: &area}).Apply(c, o)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Apply() error = %v, want ValidationError", err)
		}
	})
}
