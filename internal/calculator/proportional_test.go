package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aliceAndBob(t *testing.T) *ProportionalSplit {
	t.Helper()
	s := NewProportionalSplit()
	require.True(t, s.AddParticipant("Alice", "10.00"))
	require.True(t, s.AddParticipant("Bob", "20.00"))
	return s
}

var scenarioA = ProportionalInput{FoodTax: "3", AlcoholTax: "0", TipPercent: "20", AutoGratuity: "0"}

func TestProportionalSplit_AddParticipant(t *testing.T) {
	tests := []struct {
		name      string
		person    string
		price     string
		wantAdded bool
		wantPrice string
	}{
		{name: "rounds price to cents", person: "Alice", price: "10.005", wantAdded: true, wantPrice: "10.00"},
		{name: "rounds half to even upward", person: "Alice", price: "10.015", wantAdded: true, wantPrice: "10.02"},
		{name: "unparseable price counts as zero", person: "Alice", price: "abc", wantAdded: true, wantPrice: "0"},
		{name: "empty name is skipped", person: "", price: "10", wantAdded: false},
		{name: "empty price is skipped", person: "Alice", price: "", wantAdded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewProportionalSplit()
			added := s.AddParticipant(tt.person, tt.price)
			assert.Equal(t, tt.wantAdded, added)
			if !tt.wantAdded {
				assert.Empty(t, s.Participants())
				assert.True(t, s.ItemSubtotal().IsZero())
				return
			}
			require.Len(t, s.Participants(), 1)
			assertAmount(t, tt.wantPrice, s.Participants()[0].Balance)
			assertAmount(t, tt.wantPrice, s.ItemSubtotal())
		})
	}
}

func TestProportionalSplit_PreservesOrder(t *testing.T) {
	s := NewProportionalSplit()
	for _, name := range []string{"Carol", "Alice", "Bob"} {
		s.AddParticipant(name, "5")
	}
	var names []string
	for _, p := range s.Participants() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, names)
	assert.Equal(t, "Carol: $5.00", s.Participants()[0].String())
}

func TestProportionalSplit_ScenarioA(t *testing.T) {
	s := aliceAndBob(t)

	require.NoError(t, s.Calculate(scenarioA))
	assert.True(t, s.Calculated())
	assertAmount(t, "6.00", s.TipTotal())

	s.Finalize()
	people := s.Participants()
	assertAmount(t, "14.50", people[0].Balance, "Alice")
	assertAmount(t, "24.50", people[1].Balance, "Bob")
	assertAmount(t, "39.00", s.FinalTotal())
	assert.Equal(t, "Tip: $6.00\nTotal: $39.00", s.DescribeTipAndTotal())
	assert.Equal(t, "Alice: $14.50", people[0].String())
}

func TestProportionalSplit_AutoGratuity(t *testing.T) {
	s := aliceAndBob(t)
	require.NoError(t, s.Calculate(ProportionalInput{AutoGratuity: "5"}))
	s.Finalize()

	people := s.Participants()
	assertAmount(t, "12.50", people[0].Balance)
	assertAmount(t, "22.50", people[1].Balance)
	assertAmount(t, "5", s.Result().Tip)
	assertAmount(t, "35", s.Result().Total)
}

func TestProportionalSplit_CalculateTwiceIsNoop(t *testing.T) {
	s := aliceAndBob(t)
	require.NoError(t, s.Calculate(scenarioA))
	first := s.Participants()
	tip := s.TipTotal()

	require.NoError(t, s.Calculate(ProportionalInput{FoodTax: "100", TipPercent: "50"}))
	assert.Equal(t, first, s.Participants())
	assert.True(t, tip.Equal(s.TipTotal()))
	assert.Equal(t, PhaseCalculated, s.Phase())
}

func TestProportionalSplit_FinalizeOnce(t *testing.T) {
	s := NewProportionalSplit()
	s.AddParticipant("Alice", "10")

	// Finalize before Calculate does nothing.
	s.Finalize()
	assert.False(t, s.Finalized())
	assert.True(t, s.FinalTotal().IsZero())

	require.NoError(t, s.Calculate(ProportionalInput{FoodTax: "1"}))
	s.Finalize()
	s.Finalize()
	assertAmount(t, "11", s.FinalTotal())
	assert.True(t, s.Finalized())
}

func TestProportionalSplit_RoundsEachBalanceUp(t *testing.T) {
	s := NewProportionalSplit()
	for _, name := range []string{"A", "B", "C"} {
		s.AddParticipant(name, "10")
	}
	require.NoError(t, s.Calculate(ProportionalInput{FoodTax: "1"}))
	s.Finalize()

	sum := decimal.Zero
	for _, p := range s.Participants() {
		assertAmount(t, "10.34", p.Balance, p.Name)
		sum = sum.Add(p.Balance)
	}
	assertAmount(t, "31.02", s.FinalTotal())
	assert.True(t, sum.Equal(s.FinalTotal()))
}

func TestProportionalSplit_FinalTotalMatchesBalances(t *testing.T) {
	inputs := []ProportionalInput{
		{FoodTax: "2.17", AlcoholTax: "1.03", TipPercent: "18", AutoGratuity: "0"},
		{FoodTax: "7", TipPercent: "22.5"},
		{TipPercent: "15", AutoGratuity: "4.44"},
	}
	for _, in := range inputs {
		s := NewProportionalSplit()
		s.AddParticipant("A", "12.99")
		s.AddParticipant("B", "8.45")
		s.AddParticipant("C", "31.10")
		s.AddParticipant("D", "0.99")
		require.NoError(t, s.Calculate(in))
		s.Finalize()

		sum := decimal.Zero
		for _, p := range s.Participants() {
			assert.True(t, p.Balance.Equal(p.Balance.Round(2)), "%s not whole cents", p.Balance)
			sum = sum.Add(p.Balance)
		}
		assert.True(t, sum.Equal(s.FinalTotal()), "sum %s != final %s", sum, s.FinalTotal())
	}
}

func TestProportionalSplit_NoParticipants(t *testing.T) {
	s := NewProportionalSplit()
	err := s.Calculate(scenarioA)
	assert.ErrorIs(t, err, ErrNoParticipants)
	assert.Equal(t, PhaseIdle, s.Phase())

	// The guard stays open so the user can add people and retry.
	s.AddParticipant("Alice", "10")
	s.AddParticipant("Bob", "20")
	require.NoError(t, s.Calculate(scenarioA))
	s.Finalize()
	assertAmount(t, "39", s.FinalTotal())
}

func TestProportionalSplit_Reset(t *testing.T) {
	s := aliceAndBob(t)
	require.NoError(t, s.Calculate(scenarioA))
	s.Finalize()

	s.Reset()
	assert.Empty(t, s.Participants())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.False(t, s.Finalized())
	assert.True(t, s.ItemSubtotal().IsZero())
	assert.True(t, s.TipTotal().IsZero())
	assert.True(t, s.FinalTotal().IsZero())
	assert.True(t, s.AutoGratuity().IsZero())

	s.AddParticipant("Alice", "10.00")
	s.AddParticipant("Bob", "20.00")
	require.NoError(t, s.Calculate(scenarioA))
	s.Finalize()

	fresh := aliceAndBob(t)
	require.NoError(t, fresh.Calculate(scenarioA))
	fresh.Finalize()

	assert.Equal(t, fresh.DescribeTipAndTotal(), s.DescribeTipAndTotal())
	for i, p := range fresh.Participants() {
		assert.True(t, p.Balance.Equal(s.Participants()[i].Balance))
	}
}
