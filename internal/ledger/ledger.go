// Package ledger owns the ordered collection of recorded transactions and
// provides recording, time-window queries and aggregation over it.
package ledger

import (
	"errors"
	"sort"
	"time"

	"fjacquet/finledger/internal/categorizer"
	"fjacquet/finledger/internal/dateutils"
	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a non-positive amount is recorded.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrInvalidRange is returned when a negative day window is queried.
	ErrInvalidRange = errors.New("day window must not be negative")
)

// Ledger is the append-only transaction collection. Transactions are never
// mutated after creation and ids are never reused, even across reloads.
type Ledger struct {
	rules        *categorizer.Rules
	transactions []models.Transaction
	lastID       int
	now          func() time.Time
	logger       logging.Logger
}

// New creates an empty ledger using the given category rules.
func New(rules *categorizer.Rules, logger logging.Logger) *Ledger {
	return &Ledger{
		rules:  rules,
		now:    time.Now,
		logger: logger,
	}
}

// SetClock replaces the time source. Used by tests that need a fixed "now".
func (l *Ledger) SetClock(now func() time.Time) {
	if now != nil {
		l.now = now
	}
}

// Record validates and appends a new transaction, returning the category
// it was filed under. An explicit category is registered with the rules
// and used as-is; otherwise the description is classified. An empty date
// defaults to the current timestamp.
func (l *Ledger) Record(amount decimal.Decimal, description, categoryOverride, date, paymentMethod string) (string, error) {
	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}

	var category string
	if categoryOverride != "" {
		l.rules.EnsureCategory(categoryOverride)
		category = categoryOverride
	} else {
		category = l.rules.Classify(description)
	}

	if date == "" {
		date = l.now().Format(dateutils.DateLayoutFull)
	}

	l.lastID++
	tx := models.Transaction{
		ID:            l.lastID,
		Amount:        amount,
		Category:      category,
		Date:          date,
		Description:   description,
		PaymentMethod: paymentMethod,
	}
	l.transactions = append(l.transactions, tx)

	l.logger.WithFields(
		logging.Field{Key: logging.FieldTransactionID, Value: tx.ID},
		logging.Field{Key: logging.FieldCategory, Value: category},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()},
	).Info("Transaction recorded")

	return category, nil
}

// Load replaces the collection with previously persisted transactions.
// The id counter continues from the highest id seen, so reloaded ledgers
// never hand out an id twice.
func (l *Ledger) Load(transactions []models.Transaction) {
	l.transactions = append([]models.Transaction(nil), transactions...)
	l.lastID = 0
	for _, tx := range l.transactions {
		if tx.ID > l.lastID {
			l.lastID = tx.ID
		}
	}
}

// Transactions returns the collection in insertion order.
func (l *Ledger) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Query returns transactions sorted by date descending, ties broken by
// insertion order. A days value of 0 means no window; days > 0 keeps
// transactions dated within the last days days.
func (l *Ledger) Query(days int) ([]models.Transaction, error) {
	if days < 0 {
		return nil, ErrInvalidRange
	}

	var result []models.Transaction
	if days == 0 {
		result = l.Transactions()
	} else {
		// ISO-8601 date prefixes order lexicographically, so the window
		// check is a plain string comparison against the cutoff date.
		cutoff := dateutils.CutoffISODate(l.now(), days)
		for _, tx := range l.transactions {
			if tx.DateOnly() >= cutoff {
				result = append(result, tx)
			}
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result, nil
}

// SummarizeByCategory sums amounts per category over the queried window.
// Categories without matching transactions are absent from the result.
func (l *Ledger) SummarizeByCategory(days int) (map[string]decimal.Decimal, error) {
	transactions, err := l.Query(days)
	if err != nil {
		return nil, err
	}

	summary := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		summary[tx.Category] = summary[tx.Category].Add(tx.Amount)
	}
	return summary, nil
}

// MonthlyReport is the aggregate view of one calendar month.
type MonthlyReport struct {
	Month        time.Month                 `json:"month"`
	Year         int                        `json:"year"`
	Total        decimal.Decimal            `json:"total"`
	Transactions []models.Transaction       `json:"transactions"`
	ByCategory   map[string]decimal.Decimal `json:"by_category"`
}

// MonthlyReport filters transactions to the inclusive first..last day
// range of the month and computes the total and per-category breakdown.
func (l *Ledger) MonthlyReport(month time.Month, year int) MonthlyReport {
	first := dateutils.ToISODate(dateutils.StartOfMonth(year, month))
	last := dateutils.ToISODate(dateutils.EndOfMonth(year, month))

	report := MonthlyReport{
		Month:      month,
		Year:       year,
		Total:      decimal.Zero,
		ByCategory: make(map[string]decimal.Decimal),
	}

	for _, tx := range l.transactions {
		day := tx.DateOnly()
		if day < first || day > last {
			continue
		}
		report.Transactions = append(report.Transactions, tx)
		report.Total = report.Total.Add(tx.Amount)
		report.ByCategory[tx.Category] = report.ByCategory[tx.Category].Add(tx.Amount)
	}

	return report
}
