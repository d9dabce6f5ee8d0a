// Package billing converts session usage into money. The rate table is
// fixed per process run; there is no tiering or discounting.
package billing

import "github.com/dmitrijs2005/cybercafe/internal/money"

// Default per-page rates, in cents.
const (
	DefaultPrintRate = money.Amount(20)
	DefaultScanRate  = money.Amount(15)
)

// Policy is the per-page rate table used to price a session.
type Policy struct {
	PrintRate money.Amount
	ScanRate  money.Amount
}

// DefaultPolicy returns the standard café rates.
func DefaultPolicy() Policy {
	return Policy{PrintRate: DefaultPrintRate, ScanRate: DefaultScanRate}
}

// Bill prices the given usage counts. Counts must be non-negative; the
// session model guarantees that before usage is accumulated.
func (p Policy) Bill(pagesPrinted, pagesScanned int) money.Amount {
	return p.PrintRate.Mul(int64(pagesPrinted)).Add(p.ScanRate.Mul(int64(pagesScanned)))
}
