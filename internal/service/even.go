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

// CalculateEven divides the bill by headcount. A missing or invalid headcount
// is rejected and the tab stays open for a retry.
func (s *TabService) CalculateEven(ctx context.Context, req *connect.Request[tabapi.CalculateEvenRequest]) (*connect.Response[tabapi.CalculateEvenResponse], error) {
	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	in := calculator.EvenInput{
		Subtotal:     req.Msg.Subtotal,
		FoodTax:      req.Msg.FoodTax,
		AlcoholTax:   req.Msg.AlcoholTax,
		TipPercent:   req.Msg.TipPercent,
		AutoGratuity: req.Msg.AutoGratuity,
		Headcount:    req.Msg.Headcount,
	}

	var (
		calcErr error
		outcome string
		resp    = &tabapi.CalculateEvenResponse{}
	)
	ok := session.Even(func(e *calculator.EvenSplit) {
		outcome = metrics.OutcomeApplied
		if e.Calculated() {
			outcome = metrics.OutcomeRepeat
		}
		if calcErr = e.Calculate(in); calcErr != nil {
			outcome = metrics.OutcomeRejected
			return
		}

		result := e.Result()
		resp.Tip = money.Format(result.Tip)
		resp.Total = money.Format(result.Total)
		resp.PerPerson = money.Format(result.PerPerson)
		resp.Summary = result.String()
	})
	if !ok {
		return nil, wrongMode(session)
	}
	s.metrics.ObserveCalculation(models.SplitModeEven, outcome)

	if calcErr != nil {
		slog.Warn("CalculateEven rejected", "session_id", session.ID, "error", calcErr)
		if errors.Is(calcErr, calculator.ErrMissingHeadcount) || errors.Is(calcErr, calculator.ErrInvalidHeadcount) {
			return nil, connect.NewError(connect.CodeInvalidArgument, calcErr)
		}
		return nil, connect.NewError(connect.CodeInternal, calcErr)
	}
	return connect.NewResponse(resp), nil
}
