package flooring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeOrder(number int, on Date) Order {
	o := Order{
		Number:           number,
		CustomerName:     "Ada Lovelace",
		StateAbbr:        "TX",
		TaxRate:          d("4.45"),
		ProductType:      "Tile",
		Area:             d("249.00"),
		CostPerSqft:      d("3.50"),
		LaborCostPerSqft: d("4.15"),
		Date:             on,
	}
	o.Quote = ComputeQuote(o.Area, o.CostPerSqft, o.LaborCostPerSqft, o.TaxRate)
	return o
}

func TestStore_NextOrderNumber(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 1, s.NextOrderNumber())
	assert.Equal(t, 2, s.NextOrderNumber())
	assert.Equal(t, 3, s.NextOrderNumber())
}

func TestStore_NumbersAreNeverReused(t *testing.T) {
	s := NewStore()
	on := MustParseDate("2013-06-01")
	for i := 0; i < 3; i++ {
		s.Add(storeOrder(s.NextOrderNumber(), on))
	}
	require.Equal(t, []int{1, 2, 3}, s.AllOrderNumbers())

	// Removing #2 must not free its number.
	s.Remove(2)
	assert.Equal(t, 4, s.NextOrderNumber())
}

func TestStore_AddOverwrites(t *testing.T) {
	s := NewStore()
	on := MustParseDate("2013-06-01")

	o := storeOrder(s.NextOrderNumber(), on)
	s.Add(o)

	edited := o
	edited.CustomerName = "Grace Hopper"
	s.Add(edited)

	require.Equal(t, 1, s.Len())
	got, ok := s.Get(o.Number)
	require.True(t, ok)
	assert.Equal(t, "Grace Hopper", got.CustomerName)
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	s := NewStore()
	s.Remove(42) // absence is a valid state

	assert.Equal(t, 0, s.Len())
}

func TestStore_SeededFromLoadedNumbers(t *testing.T) {
	s := NewStore()
	s.Add(storeOrder(7, MustParseDate("2013-06-01")))
	s.Add(storeOrder(3, MustParseDate("2013-06-02")))

	assert.Equal(t, 8, s.NextOrderNumber())
}

func TestStore_OrdersOn(t *testing.T) {
	s := NewStore()
	june1 := MustParseDate("2013-06-01")
	june2 := MustParseDate("2013-06-02")

	s.Add(storeOrder(2, june1))
	s.Add(storeOrder(1, june1))
	s.Add(storeOrder(3, june2))

	got := s.OrdersOn(june1)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Number, "orders are sorted by number")
	assert.Equal(t, 2, got[1].Number)

	// A date with no orders yields an empty slice, not nil and not an error.
	empty := s.OrdersOn(MustParseDate("2013-07-04"))
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}
