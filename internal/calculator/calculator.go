// Package calculator implements the two tab splitting engines.
//
// Both engines follow the same one-shot state machine: Idle -> Calculated on
// the first successful Calculate, and back to Idle only through Reset. A
// Calculate call while Calculated is a no-op, so pressing "Calculate" twice
// never compounds tax or tip onto balances that already include them.
//
// Engines are not safe for concurrent use; the owner serializes calls.
package calculator

import "errors"

var (
	// ErrNoParticipants is returned by a proportional Calculate with nobody on the tab.
	ErrNoParticipants = errors.New("at least one participant is required")
	// ErrMissingHeadcount is returned by an even Calculate with empty headcount text.
	ErrMissingHeadcount = errors.New("number of people is required")
	// ErrInvalidHeadcount is returned when headcount is not a positive whole number.
	ErrInvalidHeadcount = errors.New("number of people must be a positive whole number")
)

// Phase is the position of an engine in its calculate/reset cycle.
type Phase int

const (
	// PhaseIdle accepts inputs and a Calculate call.
	PhaseIdle Phase = iota
	// PhaseCalculated ignores further Calculate calls until Reset.
	PhaseCalculated
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCalculated:
		return "calculated"
	default:
		return "unknown"
	}
}
