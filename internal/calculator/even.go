package calculator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tabcalc/internal/money"
)

// MaxHeadcount is the largest group an even split accepts.
const MaxHeadcount = 10000

// EvenInput holds the raw text the user entered for an even split.
type EvenInput struct {
	Subtotal     string
	FoodTax      string
	AlcoholTax   string
	TipPercent   string
	AutoGratuity string
	Headcount    string
}

// EvenResult is what an even split displays.
type EvenResult struct {
	// Tip is the percentage tip plus auto-gratuity.
	Tip decimal.Decimal
	// Total is PerPerson multiplied back by the headcount, so it always
	// matches what the group actually hands over.
	Total decimal.Decimal
	// PerPerson is each person's share, rounded up to the cent.
	PerPerson decimal.Decimal
}

func (r EvenResult) String() string {
	return fmt.Sprintf("Tip: $%s\nTotal: $%s\nPer Person: $%s",
		money.Format(r.Tip), money.Format(r.Total), money.Format(r.PerPerson))
}

// EvenSplit divides the entire bill, tax and tip included, equally by headcount.
type EvenSplit struct {
	subtotal      decimal.Decimal
	foodTax       decimal.Decimal
	alcoholTax    decimal.Decimal
	tipPercent    decimal.Decimal
	autoGratuity  decimal.Decimal
	headcount     int64
	tipTotal      decimal.Decimal
	total         decimal.Decimal
	perPersonOwed decimal.Decimal
	phase         Phase
}

// NewEvenSplit returns an empty engine in the idle phase.
func NewEvenSplit() *EvenSplit {
	return &EvenSplit{}
}

// Calculate computes the per-person share. It runs once per cycle; later
// calls return nil and change nothing. A missing, non-positive or oversized headcount
// is rejected before any field is touched and the engine stays idle, so the
// caller can fix the value and try again.
func (s *EvenSplit) Calculate(in EvenInput) error {
	if s.phase == PhaseCalculated {
		slog.Debug("Even split already calculated, ignoring")
		return nil
	}
	headcount, err := parseHeadcount(in.Headcount)
	if err != nil {
		return err
	}

	subtotal := money.Parse(in.Subtotal)
	foodTax := money.Parse(in.FoodTax)
	alcoholTax := money.Parse(in.AlcoholTax)
	tipPercent := money.Parse(in.TipPercent)
	autoGratuity := money.Parse(in.AutoGratuity)

	tipTotal := money.RoundUpToCents(subtotal.Mul(money.Percent(tipPercent)))
	total := subtotal.
		Add(tipTotal).
		Add(autoGratuity).
		Add(foodTax).
		Add(alcoholTax)
	perPerson := money.RoundUpToCents(total.Div(decimal.NewFromInt(headcount)))

	*s = EvenSplit{
		subtotal:      subtotal,
		foodTax:       foodTax,
		alcoholTax:    alcoholTax,
		tipPercent:    tipPercent,
		autoGratuity:  autoGratuity,
		headcount:     headcount,
		tipTotal:      tipTotal,
		total:         total,
		perPersonOwed: perPerson,
		phase:         PhaseCalculated,
	}

	slog.Debug("Even split calculated",
		"headcount", headcount,
		"tip_total", money.Format(s.tipTotal),
		"total", s.total.String(),
		"per_person", money.Format(s.perPersonOwed),
	)
	return nil
}

func parseHeadcount(text string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrMissingHeadcount
	}
	n := money.Parse(text)
	if !n.IsInteger() || !n.IsPositive() || n.GreaterThan(decimal.NewFromInt(MaxHeadcount)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHeadcount, text)
	}
	return n.IntPart(), nil
}

// Reset clears every field and returns to the idle phase.
func (s *EvenSplit) Reset() {
	*s = EvenSplit{}
}

// Phase reports where the engine is in its cycle.
func (s *EvenSplit) Phase() Phase { return s.phase }

// Calculated reports whether a result is available.
func (s *EvenSplit) Calculated() bool { return s.phase == PhaseCalculated }

// Headcount is the number of people the bill was divided by.
func (s *EvenSplit) Headcount() int64 { return s.headcount }

// TipTotal is the rounded-up percentage tip.
func (s *EvenSplit) TipTotal() decimal.Decimal { return s.tipTotal }

// AutoGratuity is the parsed auto-gratuity amount.
func (s *EvenSplit) AutoGratuity() decimal.Decimal { return s.autoGratuity }

// Total is the unrounded bill including tax, tip and gratuity.
func (s *EvenSplit) Total() decimal.Decimal { return s.total }

// PerPersonOwed is each person's rounded-up share.
func (s *EvenSplit) PerPersonOwed() decimal.Decimal { return s.perPersonOwed }

// Result returns the figures for display.
func (s *EvenSplit) Result() EvenResult {
	return EvenResult{
		Tip:       s.tipTotal.Add(s.autoGratuity),
		Total:     s.perPersonOwed.Mul(decimal.NewFromInt(s.headcount)),
		PerPerson: s.perPersonOwed,
	}
}

// DescribeResult formats Result as "Tip: $X\nTotal: $Y\nPer Person: $Z".
func (s *EvenSplit) DescribeResult() string {
	return s.Result().String()
}
