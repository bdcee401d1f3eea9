package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tabcalc/internal/models"
)

func TestObserveCalculation(t *testing.T) {
	m := New()
	m.ObserveCalculation(models.SplitModeEven, OutcomeApplied)
	m.ObserveCalculation(models.SplitModeEven, OutcomeRepeat)
	m.ObserveCalculation(models.SplitModeEven, OutcomeRepeat)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Calculations.WithLabelValues("even", OutcomeApplied)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Calculations.WithLabelValues("even", OutcomeRepeat)))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ActiveSessions.Set(3)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "tabcalc_active_sessions 3")
}
