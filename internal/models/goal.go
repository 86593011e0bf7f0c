package models

import "github.com/shopspring/decimal"

// SavingsGoal represents a named savings target with accumulated progress.
// CurrentAmount is mutated only through the goals manager; the exposed
// contribute operation never withdraws.
type SavingsGoal struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline"`
	Description   string          `json:"description"`
}

// Progress returns the completion percentage of the goal.
// A zero target is unreachable through the creation path but is reported
// as 0 rather than dividing by zero.
func (g SavingsGoal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	ratio, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return ratio
}
