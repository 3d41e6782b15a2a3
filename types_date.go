package flooring

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// PartitionFormat is the 8-digit MMDDYYYY token embedded in order file names
// and appended to export records.
const PartitionFormat = "01022006"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Partition formats the date as the MMDDYYYY file token.
func (d Date) Partition() string { return d.time().Format(PartitionFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// ParseDate parses a Date from a string. It accepts the ISO-8601 form
// used for display ("2013-06-01") and the MMDDYYYY file token ("06012013").
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	on, err := time.Parse(DateFormat, str)
	if err != nil {
		on, err = time.Parse(PartitionFormat, str)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q or %q: %w", str, DateFormat, PartitionFormat, err)
	}
	return NewDate(on.Date()), nil
}

// ParsePartition parses a strict MMDDYYYY token as found in order file names.
func ParsePartition(token string) (Date, error) {
	on, err := time.Parse(PartitionFormat, token)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date token %q want format MMDDYYYY: %w", token, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
