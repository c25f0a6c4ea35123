package model

import (
	"github.com/shopspring/decimal"

	"github.com/dompet-dev/dompet/internal/dates"
)

// GoalType classifies a savings goal.
type GoalType string

const (
	GoalEmergency  GoalType = "EMERGENCY"
	GoalRetirement GoalType = "RETIREMENT"
	GoalWedding    GoalType = "WEDDING"
	GoalOther      GoalType = "OTHER"
)

// Valid reports whether t is a known goal type.
func (t GoalType) Valid() bool {
	switch t {
	case GoalEmergency, GoalRetirement, GoalWedding, GoalOther:
		return true
	}
	return false
}

// Label returns the display name for the type.
func (t GoalType) Label() string {
	switch t {
	case GoalEmergency:
		return "Dana Darurat"
	case GoalRetirement:
		return "Pensiun"
	case GoalWedding:
		return "Menikah"
	case GoalOther:
		return "Lainnya"
	}
	return string(t)
}

// SavingsGoal tracks cash set aside toward a target. CurrentAmount is the
// actual money moved in and out; it is never clamped, so it may exceed the
// target or go negative if withdrawals outrun deposits.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          GoalType        `json:"type"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *dates.Day      `json:"deadline,omitempty"`
}
