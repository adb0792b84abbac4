package trade

import (
	"errors"
	"time"

	"dealswap/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidCadence   = errors.New("invalid budget reset cadence")
	ErrInvalidAllowance = errors.New("budget allowance must not be negative")
	ErrSessionRequired  = errors.New("session id required for per-session budgets")
)

// ResetCadence decides when a spent budget comes back to the full allowance.
type ResetCadence string

const (
	ResetDaily   ResetCadence = "daily"
	ResetSession ResetCadence = "session"
)

func NewResetCadence(s string) (ResetCadence, error) {
	switch c := ResetCadence(s); c {
	case ResetDaily, ResetSession:
		return c, nil
	default:
		return "", ErrInvalidCadence
	}
}

type BudgetPolicy struct {
	allowance int
	cadence   ResetCadence
	calendar  clock.Calendar
}

func NewBudgetPolicy(allowance int, cadence ResetCadence, cal clock.Calendar) (BudgetPolicy, error) {
	if allowance < 0 {
		return BudgetPolicy{}, ErrInvalidAllowance
	}
	if _, err := NewResetCadence(string(cadence)); err != nil {
		return BudgetPolicy{}, err
	}
	return BudgetPolicy{allowance: allowance, cadence: cadence, calendar: cal}, nil
}

func (p BudgetPolicy) Allowance() int        { return p.allowance }
func (p BudgetPolicy) Cadence() ResetCadence { return p.cadence }

// PeriodKey names the budget bucket the actor spends from right now:
// "day:2026-01-02" for daily cadence, "session:<sid>" for per-session cadence.
func (p BudgetPolicy) PeriodKey(now time.Time, sessionID uuid.UUID) (string, error) {
	switch p.cadence {
	case ResetSession:
		if sessionID == uuid.Nil {
			return "", ErrSessionRequired
		}
		return "session:" + sessionID.String(), nil
	default:
		return "day:" + p.calendar.Day(now).String(), nil
	}
}
