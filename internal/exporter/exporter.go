// Package exporter renders the ledger and savings goals into export
// documents: a nested JSON document or a flat CSV table.
package exporter

import (
	"encoding/json"
	"errors"
	"fmt"

	"fjacquet/finledger/internal/fileutils"
	"fjacquet/finledger/internal/goals"
	"fjacquet/finledger/internal/ledger"
	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/models"

	"github.com/gocarina/gocsv"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ErrUnsupportedFormat is returned for any format other than the
// supported ones.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Exporter reads the ledger and goal collections and renders them.
type Exporter struct {
	ledger *ledger.Ledger
	goals  *goals.Manager
	logger logging.Logger
}

// New creates an exporter over the given collections.
func New(l *ledger.Ledger, g *goals.Manager, logger logging.Logger) *Exporter {
	return &Exporter{
		ledger: l,
		goals:  g,
		logger: logger,
	}
}

// document is the structured (JSON) export shape.
type document struct {
	Transactions []models.Transaction `json:"transactions"`
	SavingsGoals []models.SavingsGoal `json:"savings_goals"`
}

// csvRow is the tabular export shape: a single-table union of
// transactions and goals. Goal rows borrow the amount and description
// columns for the target amount and goal description, leave category and
// date blank, and carry the deadline in the final column.
type csvRow struct {
	Type          string `csv:"Tipo"`
	ID            int    `csv:"ID"`
	Amount        string `csv:"Monto"`
	Description   string `csv:"Descripcion"`
	Category      string `csv:"Categoria"`
	Date          string `csv:"Fecha"`
	PaymentMethod string `csv:"MetodoPago"`
}

// Export renders all transactions and savings goals in the given format.
func (e *Exporter) Export(format string) (string, error) {
	transactions, err := e.ledger.Query(0)
	if err != nil {
		return "", err
	}
	goalList := e.goals.List()

	e.logger.WithFields(
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldCount, Value: len(transactions) + len(goalList)},
	).Debug("Exporting data")

	switch format {
	case FormatJSON:
		return e.exportJSON(transactions, goalList)
	case FormatCSV:
		return e.exportCSV(transactions, goalList)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ExportToFile renders the export document and writes it to path.
func (e *Exporter) ExportToFile(format, path string) error {
	doc, err := e.Export(format)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFile(path, []byte(doc), 0600); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	e.logger.WithField(logging.FieldFile, path).Info("Export written")
	return nil
}

func (e *Exporter) exportJSON(transactions []models.Transaction, goalList []models.SavingsGoal) (string, error) {
	doc := document{
		Transactions: transactions,
		SavingsGoals: goalList,
	}
	if doc.Transactions == nil {
		doc.Transactions = []models.Transaction{}
	}
	if doc.SavingsGoals == nil {
		doc.SavingsGoals = []models.SavingsGoal{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling export document: %w", err)
	}
	return string(data), nil
}

func (e *Exporter) exportCSV(transactions []models.Transaction, goalList []models.SavingsGoal) (string, error) {
	rows := make([]csvRow, 0, len(transactions)+len(goalList))

	for _, tx := range transactions {
		rows = append(rows, csvRow{
			Type:          "Transaction",
			ID:            tx.ID,
			Amount:        tx.Amount.String(),
			Description:   tx.Description,
			Category:      tx.Category,
			Date:          tx.Date,
			PaymentMethod: tx.PaymentMethod,
		})
	}

	for _, goal := range goalList {
		rows = append(rows, csvRow{
			Type:          "Goal",
			ID:            goal.ID,
			Amount:        goal.TargetAmount.String(),
			Description:   goal.Description,
			PaymentMethod: goal.Deadline,
		})
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("marshaling CSV export: %w", err)
	}
	return out, nil
}
