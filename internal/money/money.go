// Package money provides an exact monetary amount for the café's billing
// engine. Amounts are stored as an integer number of cents, so usage
// arithmetic never touches floating point and totals accumulate without
// rounding drift.
package money

import "fmt"

// Amount is a monetary value in cents.
type Amount int64

// Cents returns an Amount of n cents.
func Cents(n int64) Amount { return Amount(n) }

// Add returns the sum of a and b.
func (a Amount) Add(b Amount) Amount { return a + b }

// Mul returns a multiplied by a quantity, e.g. a per-page rate times a
// page count.
func (a Amount) Mul(qty int64) Amount { return a * Amount(qty) }

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool { return a == 0 }

// String renders the amount with a currency sign and two decimal places,
// e.g. "$2.60".
func (a Amount) String() string {
	v := int64(a)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
