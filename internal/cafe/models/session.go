package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/cybercafe/internal/cafe/billing"
	"github.com/dmitrijs2005/cybercafe/internal/common"
	"github.com/dmitrijs2005/cybercafe/internal/money"
)

// Session is one timed, billable visit, bounded by open and close events.
// Usage counters only move while the session is active, and the total is
// computed exactly once, when the session closes. A closed session is never
// reopened.
//
// The clock is supplied by the caller as explicit timestamps so the model
// stays free of time.Now and easy to test.
type Session struct {
	ID           string
	StartedAt    time.Time
	EndedAt      time.Time
	PagesPrinted int
	PagesScanned int
	TotalAmount  money.Amount
	Active       bool
}

// OpenSession starts a new active session at the given time with zero usage.
func OpenSession(id string, at time.Time) *Session {
	return &Session{ID: id, StartedAt: at, Active: true}
}

// AddPrintJob adds pages to the print counter. A negative count is
// rejected; any non-negative count, including zero, is accepted. Closed
// sessions ignore the call.
func (s *Session) AddPrintJob(pages int) error {
	if pages < 0 {
		return fmt.Errorf("%w: %d", common.ErrorInvalidPageCount, pages)
	}
	if !s.Active {
		return nil
	}
	s.PagesPrinted += pages
	return nil
}

// AddScanJob adds pages to the scan counter, with the same rules as
// AddPrintJob.
func (s *Session) AddScanJob(pages int) error {
	if pages < 0 {
		return fmt.Errorf("%w: %d", common.ErrorInvalidPageCount, pages)
	}
	if !s.Active {
		return nil
	}
	s.PagesScanned += pages
	return nil
}

// Close ends the session at the given time and computes the bill from the
// accumulated usage. Closing a session that is already closed has no
// effect: the end time, total, and counters stay as they were.
func (s *Session) Close(at time.Time, p billing.Policy) {
	if !s.Active {
		return
	}
	s.EndedAt = at
	s.TotalAmount = p.Bill(s.PagesPrinted, s.PagesScanned)
	s.Active = false
}

// Duration reports the session length in whole minutes, truncated toward
// zero. Only meaningful after Close.
func (s *Session) Duration() int {
	return int(s.EndedAt.Sub(s.StartedAt) / time.Minute)
}

// Summary renders the session for display. A closed session shows its
// duration and bill; an active one only its usage so far.
func (s *Session) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Session ID: %s\n", s.ID)
	fmt.Fprintf(&b, "Start Time: %s\n", s.StartedAt.Format(time.ANSIC))
	if s.Active {
		fmt.Fprintf(&b, "Status: active\n")
		fmt.Fprintf(&b, "Pages Printed: %d\n", s.PagesPrinted)
		fmt.Fprintf(&b, "Pages Scanned: %d", s.PagesScanned)
		return b.String()
	}
	fmt.Fprintf(&b, "Duration: %d minutes\n", s.Duration())
	fmt.Fprintf(&b, "Pages Printed: %d\n", s.PagesPrinted)
	fmt.Fprintf(&b, "Pages Scanned: %d\n", s.PagesScanned)
	fmt.Fprintf(&b, "Total Amount: %s", s.TotalAmount)
	return b.String()
}
