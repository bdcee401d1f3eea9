package calculator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tabcalc/internal/models"
	"github.com/mmynk/tabcalc/internal/money"
)

// ProportionalInput holds the raw text the user entered for a proportional split.
// Every field is parsed with money.Parse, so blanks count as zero.
type ProportionalInput struct {
	FoodTax      string
	AlcoholTax   string
	TipPercent   string
	AutoGratuity string
}

// ProportionalResult is the tip and total shown after a proportional split.
type ProportionalResult struct {
	// Tip is the auto-gratuity plus the percentage tip.
	Tip decimal.Decimal
	// Total is the sum of every participant's rounded balance.
	Total decimal.Decimal
}

func (r ProportionalResult) String() string {
	return fmt.Sprintf("Tip: $%s\nTotal: $%s", money.Format(r.Tip), money.Format(r.Total))
}

// ProportionalSplit charges each participant their own items plus an even
// share of food tax, alcohol tax, tip and auto-gratuity.
type ProportionalSplit struct {
	participants    []models.Participant
	foodTax         decimal.Decimal
	alcoholTax      decimal.Decimal
	tipPercent      decimal.Decimal
	autoGratuity    decimal.Decimal
	rawItemSubtotal decimal.Decimal
	finalTotal      decimal.Decimal
	tipTotal        decimal.Decimal
	phase           Phase
	finalized       bool
}

// NewProportionalSplit returns an empty engine in the idle phase.
func NewProportionalSplit() *ProportionalSplit {
	return &ProportionalSplit{}
}

// AddParticipant appends a person with their item subtotal. An empty name or
// price is silently discarded and reported as false. The price is rounded to
// the cent before it is stored.
func (s *ProportionalSplit) AddParticipant(name, priceText string) bool {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(priceText) == "" {
		return false
	}
	price := money.RoundToCents(money.Parse(priceText))
	s.participants = append(s.participants, models.NewParticipant(name, price))
	s.rawItemSubtotal = s.rawItemSubtotal.Add(price)

	slog.Debug("Participant added", "name", name, "price", money.Format(price), "count", len(s.participants))
	return true
}

// Calculate spreads tax, tip and gratuity evenly across participants. It runs
// once per cycle; later calls return nil without touching any balance.
// With no participants it returns ErrNoParticipants and stays idle.
func (s *ProportionalSplit) Calculate(in ProportionalInput) error {
	if s.phase == PhaseCalculated {
		slog.Debug("Proportional split already calculated, ignoring")
		return nil
	}
	if len(s.participants) == 0 {
		return ErrNoParticipants
	}

	count := decimal.NewFromInt(int64(len(s.participants)))

	s.autoGratuity = money.Parse(in.AutoGratuity)
	s.foodTax = money.Parse(in.FoodTax)
	s.alcoholTax = money.Parse(in.AlcoholTax)
	s.tipPercent = money.Parse(in.TipPercent)

	foodTaxPer := s.foodTax.Div(count)
	alcoholTaxPer := s.alcoholTax.Div(count)
	autoGratPer := s.autoGratuity.Div(count)

	// Tips are rounded up so the table never under-tips.
	s.tipTotal = money.RoundUpToCents(s.rawItemSubtotal.Mul(money.Percent(s.tipPercent)))
	tipPer := s.tipTotal.Div(count)

	share := tipPer.Add(foodTaxPer).Add(alcoholTaxPer).Add(autoGratPer)
	for i := range s.participants {
		s.participants[i].Balance = s.participants[i].Balance.Add(share)
	}
	s.phase = PhaseCalculated

	slog.Debug("Proportional split calculated",
		"participants", len(s.participants),
		"item_subtotal", money.Format(s.rawItemSubtotal),
		"tip_total", money.Format(s.tipTotal),
		"share_per_person", share.String(),
	)
	return nil
}

// Finalize rounds every balance up to the cent and totals them. It only has
// an effect on the first call after a successful Calculate. The total can
// exceed the exact bill by up to one cent per participant.
func (s *ProportionalSplit) Finalize() {
	if s.phase != PhaseCalculated || s.finalized {
		return
	}
	total := decimal.Zero
	for i := range s.participants {
		s.participants[i].Balance = money.RoundUpToCents(s.participants[i].Balance)
		total = total.Add(s.participants[i].Balance)
	}
	s.finalTotal = total
	s.finalized = true
}

// Reset discards all participants and inputs and returns to the idle phase.
func (s *ProportionalSplit) Reset() {
	*s = ProportionalSplit{}
}

// Participants returns a copy of the participants in insertion order.
func (s *ProportionalSplit) Participants() []models.Participant {
	out := make([]models.Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

// Phase reports where the engine is in its cycle.
func (s *ProportionalSplit) Phase() Phase { return s.phase }

// Calculated reports whether tax and tip have been applied.
func (s *ProportionalSplit) Calculated() bool { return s.phase == PhaseCalculated }

// Finalized reports whether balances have been rounded and totalled.
func (s *ProportionalSplit) Finalized() bool { return s.finalized }

// ItemSubtotal is the sum of the rounded item prices entered so far.
func (s *ProportionalSplit) ItemSubtotal() decimal.Decimal { return s.rawItemSubtotal }

// TipTotal is the rounded-up percentage tip.
func (s *ProportionalSplit) TipTotal() decimal.Decimal { return s.tipTotal }

// AutoGratuity is the parsed auto-gratuity amount.
func (s *ProportionalSplit) AutoGratuity() decimal.Decimal { return s.autoGratuity }

// FinalTotal is the sum of finalized balances.
func (s *ProportionalSplit) FinalTotal() decimal.Decimal { return s.finalTotal }

// Result returns the tip and total for display.
func (s *ProportionalSplit) Result() ProportionalResult {
	return ProportionalResult{
		Tip:   s.autoGratuity.Add(s.tipTotal),
		Total: money.RoundToCents(s.finalTotal),
	}
}

// DescribeTipAndTotal formats Result as "Tip: $X\nTotal: $Y".
func (s *ProportionalSplit) DescribeTipAndTotal() string {
	return s.Result().String()
}
