package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/cybercafe/internal/money"
)

func TestPolicy_Bill(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name    string
		printed int
		scanned int
		want    money.Amount
	}{
		{"nothing used", 0, 0, money.Cents(0)},
		{"prints only", 3, 0, money.Cents(60)},
		{"scans only", 0, 2, money.Cents(30)},
		{"reference scenario", 10, 4, money.Cents(260)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Bill(tt.printed, tt.scanned))
		})
	}
}

func TestPolicy_CustomRates(t *testing.T) {
	p := Policy{PrintRate: money.Cents(50), ScanRate: money.Cents(25)}
	assert.Equal(t, money.Cents(125), p.Bill(2, 1))
}
