// Package store provides durable persistence for ledger data: the JSON
// transaction and goal files, and the YAML category rules file.
//
// The error contract is asymmetric on purpose: save failures are surfaced
// to the caller, while a missing or corrupt data file on load degrades to
// an empty collection with a logged warning, so startup always succeeds.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"fjacquet/finledger/internal/fileutils"
	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/models"
)

// ErrPersistence is returned when writing a data file fails.
var ErrPersistence = errors.New("persistence failure")

// LedgerStore serializes transactions (and goals) to JSON files.
type LedgerStore struct {
	LedgerFile string
	GoalsFile  string
	logger     logging.Logger
}

// NewLedgerStore creates a store writing to the given files. The goals
// file may be empty when goal persistence is not wanted.
func NewLedgerStore(ledgerFile, goalsFile string, logger logging.Logger) *LedgerStore {
	return &LedgerStore{
		LedgerFile: ledgerFile,
		GoalsFile:  goalsFile,
		logger:     logger,
	}
}

// Save serializes the full transaction list as indented JSON, overwriting
// the ledger file.
func (s *LedgerStore) Save(transactions []models.Transaction) error {
	if err := s.writeJSON(s.LedgerFile, transactions); err != nil {
		return err
	}
	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.LedgerFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Ledger saved")
	return nil
}

// Load deserializes the transaction list in file order. A missing or
// unparsable file yields an empty list, never an error.
func (s *LedgerStore) Load() []models.Transaction {
	var transactions []models.Transaction
	if !s.readJSON(s.LedgerFile, &transactions) {
		return nil
	}
	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.LedgerFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Ledger loaded")
	return transactions
}

// SaveGoals serializes the savings goal list, overwriting the goals file.
func (s *LedgerStore) SaveGoals(goals []models.SavingsGoal) error {
	if s.GoalsFile == "" {
		return nil
	}
	return s.writeJSON(s.GoalsFile, goals)
}

// LoadGoals deserializes the goal list with the same missing/corrupt
// tolerance as Load.
func (s *LedgerStore) LoadGoals() []models.SavingsGoal {
	if s.GoalsFile == "" {
		return nil
	}
	var goals []models.SavingsGoal
	if !s.readJSON(s.GoalsFile, &goals) {
		return nil
	}
	return goals
}

// writeJSON marshals v indented and overwrites path, wrapping any failure
// in ErrPersistence.
func (s *LedgerStore) writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshaling %s: %v", ErrPersistence, path, err)
	}
	if err := fileutils.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, path, err)
	}
	return nil
}

// readJSON reads path into v, reporting whether usable data was loaded.
// Records with unexpected field names count as corrupt.
func (s *LedgerStore) readJSON(path string, v interface{}) bool {
	if !fileutils.FileExists(path) {
		s.logger.WithField(logging.FieldFile, path).Debug("Data file not found, starting empty")
		return false
	}

	data, err := fileutils.ReadFile(path)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, path).Warn("Could not read data file, starting empty")
		return false
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		s.logger.WithError(err).WithField(logging.FieldFile, path).Warn("Corrupt data file discarded, starting empty")
		return false
	}
	return true
}
