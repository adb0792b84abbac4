package trade

import "errors"

var ErrInvalidStateValue = errors.New("invalid trade state")

type State string

const (
	StateProposed  State = "proposed"
	StateConfirmed State = "confirmed"
	StateCancelled State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateProposed, StateConfirmed, StateCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal: confirmed and cancelled have no outgoing transitions.
func (s State) IsTerminal() bool {
	return s == StateConfirmed || s == StateCancelled
}

func NewState(s string) (State, error) {
	st := State(s)
	if !st.IsValid() {
		return "", ErrInvalidStateValue
	}
	return st, nil
}

type CancelReason string

const (
	ReasonWithdrawn CancelReason = "withdrawn" // proposer took it back
	ReasonDeclined  CancelReason = "declined"  // recipient said no
	ReasonExpired   CancelReason = "expired"
)

func (r CancelReason) String() string {
	return string(r)
}

// ChargesBudget reports whether this kind of cancellation spends the actor's budget.
func (r CancelReason) ChargesBudget() bool {
	return r != ReasonExpired
}
