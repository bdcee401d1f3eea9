package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tabcalc/internal/calculator"
	"github.com/mmynk/tabcalc/internal/metrics"
	"github.com/mmynk/tabcalc/internal/models"
	"github.com/mmynk/tabcalc/internal/money"
	"github.com/mmynk/tabcalc/pkg/tabapi"
)

// AddParticipant adds a person and their item subtotal to a proportional tab.
// A blank name or price is skipped and reported with Added=false.
func (s *TabService) AddParticipant(ctx context.Context, req *connect.Request[tabapi.AddParticipantRequest]) (*connect.Response[tabapi.AddParticipantResponse], error) {
	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	resp := &tabapi.AddParticipantResponse{}
	ok := session.Proportional(func(p *calculator.ProportionalSplit) {
		resp.Added = p.AddParticipant(req.Msg.Name, req.Msg.Price)
		resp.Participants = toWireParticipants(p.Participants())
	})
	if !ok {
		return nil, wrongMode(session)
	}
	if !resp.Added {
		slog.Debug("AddParticipant skipped blank entry", "session_id", session.ID)
	}
	return connect.NewResponse(resp), nil
}

// CalculateProportional applies tax, tip and gratuity and then finalizes the
// balances, as a single "Calculate" press. Repeating it returns the same figures.
func (s *TabService) CalculateProportional(ctx context.Context, req *connect.Request[tabapi.CalculateProportionalRequest]) (*connect.Response[tabapi.CalculateProportionalResponse], error) {
	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	in := calculator.ProportionalInput{
		FoodTax:      req.Msg.FoodTax,
		AlcoholTax:   req.Msg.AlcoholTax,
		TipPercent:   req.Msg.TipPercent,
		AutoGratuity: req.Msg.AutoGratuity,
	}

	var (
		calcErr error
		outcome string
		resp    = &tabapi.CalculateProportionalResponse{}
	)
	ok := session.Proportional(func(p *calculator.ProportionalSplit) {
		outcome = metrics.OutcomeApplied
		if p.Calculated() {
			outcome = metrics.OutcomeRepeat
		}
		if calcErr = p.Calculate(in); calcErr != nil {
			outcome = metrics.OutcomeRejected
			return
		}
		p.Finalize()

		result := p.Result()
		resp.Participants = toWireParticipants(p.Participants())
		resp.Tip = money.Format(result.Tip)
		resp.Total = money.Format(result.Total)
		resp.Summary = result.String()
	})
	if !ok {
		return nil, wrongMode(session)
	}
	s.metrics.ObserveCalculation(models.SplitModeProportional, outcome)

	if calcErr != nil {
		slog.Warn("CalculateProportional rejected", "session_id", session.ID, "error", calcErr)
		if errors.Is(calcErr, calculator.ErrNoParticipants) {
			return nil, connect.NewError(connect.CodeFailedPrecondition, calcErr)
		}
		return nil, connect.NewError(connect.CodeInternal, calcErr)
	}
	return connect.NewResponse(resp), nil
}

func toWireParticipants(people []models.Participant) []tabapi.Participant {
	out := make([]tabapi.Participant, len(people))
	for i, p := range people {
		out[i] = tabapi.Participant{
			ID:      p.ID,
			Name:    p.Name,
			Balance: money.Format(p.Balance),
			Display: p.String(),
		}
	}
	return out
}
