// Package service adapts the split calculators to the Connect TabService.
// It owns no arithmetic: every number comes from the calculator package.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tabcalc/internal/auth"
	"github.com/mmynk/tabcalc/internal/calculator"
	"github.com/mmynk/tabcalc/internal/metrics"
	"github.com/mmynk/tabcalc/internal/middleware"
	"github.com/mmynk/tabcalc/internal/models"
	"github.com/mmynk/tabcalc/internal/storage"
	"github.com/mmynk/tabcalc/pkg/tabapi"
)

var (
	errWrongMode = errors.New("operation not available for this split mode")
	errModeClaim = errors.New("session token was issued for a different split mode")
)

// Ensure TabService implements tabapi.TabServiceHandler
var _ tabapi.TabServiceHandler = (*TabService)(nil)

// TabService implements the Connect TabService.
type TabService struct {
	store   storage.Store
	tokens  *auth.TokenManager
	metrics *metrics.Metrics
}

// NewTabService creates a new TabService with the given session store.
func NewTabService(store storage.Store, tokens *auth.TokenManager, m *metrics.Metrics) *TabService {
	return &TabService{store: store, tokens: tokens, metrics: m}
}

// StartSession opens a tab with an idle engine for the requested mode.
func (s *TabService) StartSession(ctx context.Context, req *connect.Request[tabapi.StartSessionRequest]) (*connect.Response[tabapi.StartSessionResponse], error) {
	mode, err := models.ParseSplitMode(req.Msg.Mode)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	session := storage.NewSession(mode)
	if err := s.store.CreateSession(ctx, session); err != nil {
		slog.Error("StartSession: failed to create session", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.tokens.Generate(session.ID, mode)
	if err != nil {
		slog.Error("StartSession: failed to issue token", "session_id", session.ID, "error", err)
		_ = s.store.DeleteSession(ctx, session.ID)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	s.refreshActiveSessions(ctx)

	slog.Info("Session started", "session_id", session.ID, "mode", mode)
	return connect.NewResponse(&tabapi.StartSessionResponse{
		SessionID: session.ID,
		Token:     token,
		Mode:      string(mode),
	}), nil
}

// EndSession discards the caller's tab.
func (s *TabService) EndSession(ctx context.Context, req *connect.Request[tabapi.EndSessionRequest]) (*connect.Response[tabapi.EndSessionResponse], error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return nil, storeError(err)
	}
	s.refreshActiveSessions(ctx)

	slog.Info("Session ended", "session_id", sessionID)
	return connect.NewResponse(&tabapi.EndSessionResponse{}), nil
}

// Reset clears the session's engine back to idle, whichever mode it is.
func (s *TabService) Reset(ctx context.Context, req *connect.Request[tabapi.ResetRequest]) (*connect.Response[tabapi.ResetResponse], error) {
	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	switch session.Mode {
	case models.SplitModeEven:
		session.Even(func(e *calculator.EvenSplit) { e.Reset() })
	default:
		session.Proportional(func(p *calculator.ProportionalSplit) { p.Reset() })
	}

	slog.Debug("Tab reset", "session_id", session.ID, "mode", session.Mode)
	return connect.NewResponse(&tabapi.ResetResponse{}), nil
}

// GetTab returns a snapshot of the session's engine.
func (s *TabService) GetTab(ctx context.Context, req *connect.Request[tabapi.GetTabRequest]) (*connect.Response[tabapi.GetTabResponse], error) {
	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	resp := &tabapi.GetTabResponse{
		SessionID: session.ID,
		Mode:      string(session.Mode),
	}
	switch session.Mode {
	case models.SplitModeEven:
		session.Even(func(e *calculator.EvenSplit) {
			resp.Calculated = e.Calculated()
			resp.Summary = e.DescribeResult()
		})
	default:
		session.Proportional(func(p *calculator.ProportionalSplit) {
			resp.Calculated = p.Calculated()
			resp.Participants = toWireParticipants(p.Participants())
			resp.Summary = p.DescribeTipAndTotal()
		})
	}
	return connect.NewResponse(resp), nil
}

// session resolves the authenticated session from the request context and
// checks that the token's mode claim matches the session it names.
func (s *TabService) session(ctx context.Context) (*storage.Session, error) {
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, storeError(err)
	}
	if claimed := middleware.GetMode(ctx); claimed != session.Mode {
		slog.Warn("Token mode does not match session", "session_id", sessionID, "claimed", claimed, "mode", session.Mode)
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("%w: token says %q, session is %s", errModeClaim, claimed, session.Mode))
	}
	return session, nil
}

func (s *TabService) refreshActiveSessions(ctx context.Context) {
	count, err := s.store.Count(ctx)
	if err != nil {
		slog.Warn("Failed to count sessions", "error", err)
		return
	}
	s.metrics.ActiveSessions.Set(float64(count))
}

// SweepIdle drops sessions idle for longer than maxIdle and updates the session gauge.
func (s *TabService) SweepIdle(ctx context.Context, maxIdle time.Duration) (int, error) {
	removed, err := s.store.Sweep(ctx, time.Now().Add(-maxIdle))
	if err != nil {
		return removed, fmt.Errorf("failed to sweep sessions: %w", err)
	}
	s.refreshActiveSessions(ctx)
	return removed, nil
}

func storeError(err error) error {
	if errors.Is(err, storage.ErrSessionNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	slog.Error("Session store failed", "error", err)
	return connect.NewError(connect.CodeInternal, err)
}

func wrongMode(session *storage.Session) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: session is %s", errWrongMode, session.Mode))
}
