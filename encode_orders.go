package flooring

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Order files are semicolon-delimited with a fixed column order:
//
//	0 OrderNumber, 1 CustomerName, 2 State, 3 TaxRate, 4 ProductType,
//	5 Area, 6 CostPerSquareFoot, 7 LaborCostPerSquareFoot,
//	8 MaterialCost, 9 LaborCost, 10 Tax, 11 Total
//
// Columns 3 and 6..11 are redundant with catalog-derived values but are
// parsed and trusted as authoritative on load: the files round-trip
// byte-for-byte, they are never repriced behind the operator's back.
const orderHeader = "OrderNumber;CustomerName;State;TaxRate;ProductType;Area;CostPerSquareFoot;LaborCostPerSquareFoot;MaterialCost;LaborCost;Tax;Total"

const (
	recordDelimiter = ";"
	orderFieldCount = 12
)

// formatOrder renders one order as a partition file record, every decimal
// rounded to exactly 2 places (half-up).
func formatOrder(o Order) string {
	fields := []string{
		strconv.Itoa(o.Number),
		o.CustomerName,
		o.StateAbbr,
		o.TaxRate.StringFixed(2),
		o.ProductType,
		o.Area.StringFixed(2),
		o.CostPerSqft.StringFixed(2),
		o.LaborCostPerSqft.StringFixed(2),
		o.Quote.MaterialCost.Text(),
		o.Quote.LaborCost.Text(),
		o.Quote.Tax.Text(),
		o.Quote.Total.Text(),
	}
	return strings.Join(fields, recordDelimiter)
}

// formatExportOrder renders one order as an export file record: the
// partition record with the order date appended as an MMDDYYYY field.
func formatExportOrder(o Order) string {
	return formatOrder(o) + recordDelimiter + o.Date.Partition()
}

// parseOrder parses one partition file record. The date comes from the
// file name, not from the record.
func parseOrder(line string, on Date) (Order, error) {
	fields := strings.Split(line, recordDelimiter)
	if len(fields) != orderFieldCount {
		return Order{}, fmt.Errorf("want %d fields, got %d in %q", orderFieldCount, len(fields), line)
	}

	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return Order{}, fmt.Errorf("unparsable order number %q: %w", fields[0], err)
	}

	decimals := make([]decimal.Decimal, 0, 8)
	for _, i := range []int{3, 5, 6, 7, 8, 9, 10, 11} {
		d, err := decimal.NewFromString(fields[i])
		if err != nil {
			return Order{}, fmt.Errorf("unparsable decimal %q in column %d: %w", fields[i], i, err)
		}
		decimals = append(decimals, d)
	}

	return Order{
		Number:           number,
		CustomerName:     fields[1],
		StateAbbr:        fields[2],
		TaxRate:          decimals[0],
		ProductType:      fields[4],
		Area:             decimals[1],
		CostPerSqft:      decimals[2],
		LaborCostPerSqft: decimals[3],
		Quote: Quote{
			MaterialCost: NewMoney(decimals[4]),
			LaborCost:    NewMoney(decimals[5]),
			Tax:          NewMoney(decimals[6]),
			Total:        NewMoney(decimals[7]),
		},
		Date: on,
	}, nil
}

// decodeOrders reads one partition file: a header line followed by one
// record per order, all carrying the date taken from the file name.
func decodeOrders(r io.Reader, on Date) ([]Order, error) {
	var orders []Order
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
		o, err := parseOrder(line, on)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		orders = append(orders, o)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// encodeOrders writes a header line followed by one record per order.
func encodeOrders(w io.Writer, orders []Order) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, orderHeader)
	for _, o := range orders {
		fmt.Fprintln(bw, formatOrder(o))
	}
	return bw.Flush()
}
