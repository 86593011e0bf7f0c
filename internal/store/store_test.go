package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LedgerStore {
	dir := t.TempDir()
	return NewLedgerStore(
		filepath.Join(dir, "ledger.json"),
		filepath.Join(dir, "goals.json"),
		&logging.MockLogger{},
	)
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: 1, Amount: decimal.NewFromFloat(12.50), Category: "Food", Date: "2024-01-15", Description: "lunch", PaymentMethod: "Cash"},
		{ID: 2, Amount: decimal.NewFromInt(30), Category: "Transport", Date: "2024-01-16 08:00:00", Description: "taxi, airport", PaymentMethod: "Card"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	original := sampleTransactions()

	require.NoError(t, s.Save(original))
	loaded := s.Load()

	require.Len(t, loaded, len(original))
	for i := range original {
		assert.Equal(t, original[i].ID, loaded[i].ID)
		assert.True(t, original[i].Amount.Equal(loaded[i].Amount))
		assert.Equal(t, original[i].Category, loaded[i].Category)
		assert.Equal(t, original[i].Date, loaded[i].Date)
		assert.Equal(t, original[i].Description, loaded[i].Description)
		assert.Equal(t, original[i].PaymentMethod, loaded[i].PaymentMethod)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, s.Load())
	assert.Empty(t, s.LoadGoals())
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.LedgerFile, []byte("{not json"), 0600))
	assert.Empty(t, s.Load())
}

func TestLoadUnexpectedFieldNamesDiscarded(t *testing.T) {
	s := newTestStore(t)
	content := `[{"id": 1, "monto": 10, "categoria": "Comida", "fecha": "2024-01-01", "descripcion": "x"}]`
	require.NoError(t, os.WriteFile(s.LedgerFile, []byte(content), 0600))
	assert.Empty(t, s.Load(), "records with unknown field names are treated as corrupt")
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleTransactions()))
	require.NoError(t, s.Save(sampleTransactions()[:1]))

	assert.Len(t, s.Load(), 1)
}

func TestSaveFailureSurfacesPersistenceError(t *testing.T) {
	dir := t.TempDir()
	// The ledger path points at a directory, so the write must fail.
	s := NewLedgerStore(dir, "", &logging.MockLogger{})

	err := s.Save(sampleTransactions())
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestGoalsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	goals := []models.SavingsGoal{
		{ID: 1, Name: "Laptop", TargetAmount: decimal.NewFromInt(1200), CurrentAmount: decimal.NewFromInt(300), Deadline: "2024-12-31", Description: "new laptop"},
	}

	require.NoError(t, s.SaveGoals(goals))
	loaded := s.LoadGoals()

	require.Len(t, loaded, 1)
	assert.Equal(t, "Laptop", loaded[0].Name)
	assert.True(t, loaded[0].CurrentAmount.Equal(decimal.NewFromInt(300)))
}

func TestAmountsPersistAsNumbers(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleTransactions()))

	data, err := os.ReadFile(s.LedgerFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount": 12.5`)
	assert.NotContains(t, string(data), `"amount": "12.5"`)
}
