package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundUpToCents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.000", "10"},
		{"10.001", "10.01"},
		{"10.009", "10.01"},
		{"6", "6"},
		{"0.1", "0.1"},
		{"3.3333333333333333", "3.34"},
		{"0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundUpToCents(d(tt.in))
			assert.True(t, got.Equal(d(tt.want)), "RoundUpToCents(%s) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

func TestRoundUpToCents_NeverBelowInput(t *testing.T) {
	for cents := int64(0); cents < 2000; cents += 7 {
		x := decimal.New(cents, -3) // thousandths
		got := RoundUpToCents(x)
		assert.True(t, got.GreaterThanOrEqual(x), "RoundUpToCents(%s) = %s", x, got)
		assert.True(t, got.Mul(decimal.NewFromInt(100)).IsInteger(), "%s is not whole cents", got)
		assert.True(t, got.Sub(x).LessThan(d("0.01")))
	}
}

func TestRoundToCents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.005", "10"},
		{"10.015", "10.02"},
		{"10.0151", "10.02"},
		{"2.344", "2.34"},
		{"-1.005", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundToCents(d(tt.in))
			assert.True(t, got.Equal(d(tt.want)), "RoundToCents(%s) = %s, want %s", tt.in, got, tt.want)
		})
	}
}

func TestRoundToCents_Idempotent(t *testing.T) {
	for _, s := range []string{"0.125", "1.005", "99.999", "12.3456", "7"} {
		once := RoundToCents(d(s))
		assert.True(t, RoundToCents(once).Equal(once), s)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "12.5", "12.5"},
		{"empty", "", "0"},
		{"whitespace", "   ", "0"},
		{"garbage", "abc", "0"},
		{"dollar sign", "$20.00", "20"},
		{"percent", "18%", "18"},
		{"grouping", "1,250.75", "1250.75"},
		{"padded", " 3 ", "3"},
		{"huge exponent", "1e30000000", "0"},
		{"tiny exponent", "1e-30000000", "0"},
		{"too long", "1234567890123456789012345678901234", "0"},
		{"long but allowed", "12345678901234567890", "12345678901234567890"},
		{"small exponent", "1.5e3", "1500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Parse(tt.in).Equal(d(tt.want)), "Parse(%q) = %s", tt.in, Parse(tt.in))
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "14.50", Format(d("14.5")))
	assert.Equal(t, "0.00", Format(decimal.Zero))
	assert.Equal(t, "123.00", Format(d("123")))
	assert.Equal(t, "0.18", Format(Percent(d("18"))))
}
