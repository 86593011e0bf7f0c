// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are written as JSON numbers, matching the persisted file
	// schema and the structured export.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction represents a single recorded expense.
// Instances are immutable after creation: the ledger assigns the ID once
// and never mutates or reuses it, even across save/load cycles.
type Transaction struct {
	ID            int             `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
}

// String returns a human-readable one-line representation of the transaction.
func (t Transaction) String() string {
	return fmt.Sprintf("[%s] %s: %s (%s)", t.Date, t.Category, t.Amount.StringFixed(2), t.Description)
}

// DateOnly returns the YYYY-MM-DD prefix of the transaction date.
// Dates are stored as ISO-8601 strings, so the prefix is directly
// comparable with other ISO dates.
func (t Transaction) DateOnly() string {
	if len(t.Date) < 10 {
		return t.Date
	}
	return t.Date[:10]
}
