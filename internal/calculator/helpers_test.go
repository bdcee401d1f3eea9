package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("amount = %s, want %s %v", got, want, msgAndArgs)
	}
}
