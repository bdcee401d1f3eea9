package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tabcalc/internal/money"
)

// Participant represents one person on a proportional split.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name entered by the user.
	Name string

	// Balance is what this person currently owes. Before calculation it is the
	// rounded item subtotal; afterwards it includes their share of tax and tip.
	Balance decimal.Decimal
}

// NewParticipant creates a participant with a fresh ID.
func NewParticipant(name string, balance decimal.Decimal) Participant {
	return Participant{
		ID:      uuid.New().String(),
		Name:    name,
		Balance: balance,
	}
}

// String formats the participant for display, e.g. "Joe: $10.00".
func (p Participant) String() string {
	return p.Name + ": $" + money.Format(p.Balance)
}
