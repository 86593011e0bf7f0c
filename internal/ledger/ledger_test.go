package ledger

import (
	"testing"
	"time"

	"fjacquet/finledger/internal/categorizer"
	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct{ configs []models.CategoryConfig }

func (s *staticSource) LoadCategories() ([]models.CategoryConfig, error) {
	return s.configs, nil
}

func newTestLedger() *Ledger {
	rules := categorizer.NewRules(&staticSource{configs: []models.CategoryConfig{
		{Name: "Food", Keywords: []string{"lunch", "grocery"}},
		{Name: "Transport", Keywords: []string{"taxi", "bus"}},
	}}, &logging.MockLogger{})
	return New(rules, &logging.MockLogger{})
}

func fixedClock(iso string) func() time.Time {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func amount(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestRecordAssignsIncreasingIDs(t *testing.T) {
	l := newTestLedger()

	for i := 0; i < 5; i++ {
		_, err := l.Record(amount(10), "lunch", "", "2024-01-15", "Cash")
		require.NoError(t, err)
	}

	txs := l.Transactions()
	require.Len(t, txs, 5)
	for i, tx := range txs {
		assert.Equal(t, i+1, tx.ID)
	}
}

func TestRecordRejectsNonPositiveAmount(t *testing.T) {
	l := newTestLedger()

	_, err := l.Record(decimal.Zero, "lunch", "", "", "Cash")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = l.Record(amount(-5), "lunch", "", "", "Cash")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Empty(t, l.Transactions())
}

func TestRecordClassifiesWhenNoOverride(t *testing.T) {
	l := newTestLedger()

	category, err := l.Record(amount(12), "Lunch with friends", "", "2024-01-15", "Card")
	require.NoError(t, err)
	assert.Equal(t, "Food", category)

	category, err = l.Record(amount(30), "Rent payment", "", "2024-01-15", "Card")
	require.NoError(t, err)
	assert.Equal(t, models.FallbackCategory, category)
}

func TestRecordOverrideRegistersCategory(t *testing.T) {
	l := newTestLedger()

	category, err := l.Record(amount(50), "weekend trip", "Travel", "2024-01-15", "Card")
	require.NoError(t, err)
	assert.Equal(t, "Travel", category)

	names := []string{}
	for _, c := range l.rules.Categories() {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Travel")
}

func TestRecordDefaultsDateToNow(t *testing.T) {
	l := newTestLedger()
	l.SetClock(fixedClock("2024-03-15"))

	_, err := l.Record(amount(10), "lunch", "", "", "Cash")
	require.NoError(t, err)

	assert.Equal(t, "2024-03-15 00:00:00", l.Transactions()[0].Date)
}

func TestQueryWindow(t *testing.T) {
	l := newTestLedger()
	l.SetClock(fixedClock("2024-03-15"))

	_, err := l.Record(amount(10), "old taxi", "", "2024-03-05", "Cash") // 10 days ago
	require.NoError(t, err)
	_, err = l.Record(amount(20), "recent taxi", "", "2024-03-12", "Cash") // 3 days ago
	require.NoError(t, err)

	within, err := l.Query(7)
	require.NoError(t, err)
	require.Len(t, within, 1)
	assert.Equal(t, "recent taxi", within[0].Description)

	all, err := l.Query(0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestQueryRejectsNegativeWindow(t *testing.T) {
	l := newTestLedger()
	_, err := l.Query(-1)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestQuerySortsDateDescendingStable(t *testing.T) {
	l := newTestLedger()

	_, err := l.Record(amount(1), "first", "", "2024-01-10", "Cash")
	require.NoError(t, err)
	_, err = l.Record(amount(2), "second", "", "2024-01-20", "Cash")
	require.NoError(t, err)
	_, err = l.Record(amount(3), "third same day", "", "2024-01-20", "Cash")
	require.NoError(t, err)

	txs, err := l.Query(0)
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "second", txs[0].Description)
	assert.Equal(t, "third same day", txs[1].Description, "ties keep insertion order")
	assert.Equal(t, "first", txs[2].Description)
}

func TestSummarizeByCategory(t *testing.T) {
	l := newTestLedger()

	_, err := l.Record(amount(10), "lunch", "", "2024-01-15", "Cash")
	require.NoError(t, err)
	_, err = l.Record(amount(5), "grocery run", "", "2024-01-16", "Cash")
	require.NoError(t, err)
	_, err = l.Record(amount(20), "taxi home", "", "2024-01-17", "Cash")
	require.NoError(t, err)

	summary, err := l.SummarizeByCategory(0)
	require.NoError(t, err)

	assert.Len(t, summary, 2, "categories without transactions are omitted")
	assert.True(t, summary["Food"].Equal(amount(15)))
	assert.True(t, summary["Transport"].Equal(amount(20)))
}

func TestMonthlyReportFebruaryLeapYear(t *testing.T) {
	l := newTestLedger()

	dates := []string{"2024-01-31", "2024-02-01", "2024-02-29", "2024-03-01"}
	for _, d := range dates {
		_, err := l.Record(amount(10), "lunch", "", d, "Cash")
		require.NoError(t, err)
	}

	report := l.MonthlyReport(time.February, 2024)
	require.Len(t, report.Transactions, 2)
	assert.True(t, report.Total.Equal(amount(20)))
	assert.True(t, report.ByCategory["Food"].Equal(amount(20)))
}

func TestLoadContinuesIDSequence(t *testing.T) {
	l := newTestLedger()
	l.Load([]models.Transaction{
		{ID: 3, Amount: amount(10), Category: "Food", Date: "2024-01-01"},
		{ID: 7, Amount: amount(20), Category: "Food", Date: "2024-01-02"},
	})

	_, err := l.Record(amount(5), "lunch", "", "2024-01-03", "Cash")
	require.NoError(t, err)

	txs := l.Transactions()
	assert.Equal(t, 8, txs[len(txs)-1].ID, "ids continue past the highest loaded id")
}
