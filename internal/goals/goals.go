// Package goals tracks named savings targets and their accumulated progress.
package goals

import (
	"errors"

	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a goal is created with a
	// non-positive target amount.
	ErrInvalidAmount = errors.New("target amount must be greater than zero")
	// ErrNotFound is returned when no goal carries the requested id.
	ErrNotFound = errors.New("goal not found")
)

// Manager owns the savings goal collection. Goals are kept in creation
// order and ids are sequential.
type Manager struct {
	goals  []models.SavingsGoal
	lastID int
	logger logging.Logger
}

// NewManager creates an empty goal collection.
func NewManager(logger logging.Logger) *Manager {
	return &Manager{logger: logger}
}

// Create adds a new goal with the next sequential id and zero progress.
func (m *Manager) Create(name string, target decimal.Decimal, deadline, description string) (models.SavingsGoal, error) {
	if !target.IsPositive() {
		return models.SavingsGoal{}, ErrInvalidAmount
	}

	m.lastID++
	goal := models.SavingsGoal{
		ID:            m.lastID,
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		Description:   description,
	}
	m.goals = append(m.goals, goal)

	m.logger.WithFields(
		logging.Field{Key: logging.FieldGoalID, Value: goal.ID},
		logging.Field{Key: logging.FieldAmount, Value: target.String()},
	).Info("Savings goal created")

	return goal, nil
}

// Contribute adds the amount to the goal's accumulated total. The amount's
// sign is not checked here; callers are expected to pass positive
// contributions. Withdrawing is not an exposed operation.
func (m *Manager) Contribute(goalID int, amount decimal.Decimal) (models.SavingsGoal, error) {
	for i := range m.goals {
		if m.goals[i].ID != goalID {
			continue
		}
		m.goals[i].CurrentAmount = m.goals[i].CurrentAmount.Add(amount)

		m.logger.WithFields(
			logging.Field{Key: logging.FieldGoalID, Value: goalID},
			logging.Field{Key: logging.FieldAmount, Value: amount.String()},
		).Info("Contribution added to savings goal")

		return m.goals[i], nil
	}

	return models.SavingsGoal{}, ErrNotFound
}

// List returns the goals in creation order.
func (m *Manager) List() []models.SavingsGoal {
	out := make([]models.SavingsGoal, len(m.goals))
	copy(out, m.goals)
	return out
}

// Load replaces the collection with previously persisted goals. The id
// counter continues from the highest id seen.
func (m *Manager) Load(goals []models.SavingsGoal) {
	m.goals = append([]models.SavingsGoal(nil), goals...)
	m.lastID = 0
	for _, g := range m.goals {
		if g.ID > m.lastID {
			m.lastID = g.ID
		}
	}
}
