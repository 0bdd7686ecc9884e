package loan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// eqDec asserts decimal equality with readable failure output.
func eqDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

// seq builds a sequence from (amount, percentage) pairs.
func seq(pairs ...[2]string) []Installment {
	s := make([]Installment, 0, len(pairs))
	for i, p := range pairs {
		inst := NewInstallment("", decimal.RequireFromString(p[0]), decimal.RequireFromString(p[1]),
			time.Date(2024, 1, 1+i, 0, 0, 0, 0, time.UTC))
		s = append(s, *inst)
	}
	return s
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		places   int32
		expected string
	}{
		{"half away from zero up", "0.15", 1, "0.2"},
		{"half away from zero down", "-0.15", 1, "-0.2"},
		{"internal precision", "33.51648351648352", 10, "33.5164835165"},
		{"display precision", "33.5164835165", 1, "33.5"},
		{"integer unchanged", "182", 10, "182"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eqDec(t, tc.expected, Round(decimal.RequireFromString(tc.value), tc.places))
		})
	}
}

func TestPercentageOf(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		total    string
		expected string
	}{
		{"half", "91", "182", "50"},
		{"full", "182", "182", "100"},
		{"zero amount", "0", "182", "0"},
		{"zero total guard", "91", "0", "0"},
		{"repeating fraction", "61", "182", "33.5164835165"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PercentageOf(decimal.RequireFromString(tc.amount), decimal.RequireFromString(tc.total))
			eqDec(t, tc.expected, got)
		})
	}
}

func TestAmountOf(t *testing.T) {
	tests := []struct {
		name       string
		percentage string
		total      string
		expected   string
	}{
		{"half", "50", "182", "91"},
		{"full", "100", "182", "182"},
		{"zero", "0", "182", "0"},
		{"third", "35", "200", "70"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AmountOf(decimal.RequireFromString(tc.percentage), decimal.RequireFromString(tc.total))
			eqDec(t, tc.expected, got)
		})
	}
}

func TestTotals(t *testing.T) {
	s := seq([2]string{"70", "35"}, [2]string{"130", "65"})

	eqDec(t, "200", TotalAmount(s))
	eqDec(t, "100", TotalPercentage(s))
	eqDec(t, "0", RemainingAmount(s, decimal.NewFromInt(200)))
	eqDec(t, "0", RemainingPercentage(s))
}

func TestTotals_EmptySequence(t *testing.T) {
	eqDec(t, "0", TotalAmount(nil))
	eqDec(t, "0", TotalPercentage(nil))
	eqDec(t, "182", RemainingAmount(nil, decimal.NewFromInt(182)))
	eqDec(t, "100", RemainingPercentage(nil))
}

func TestRemaining_PartialAllocation(t *testing.T) {
	s := seq([2]string{"45.5", "25"})

	eqDec(t, "136.5", RemainingAmount(s, decimal.NewFromInt(182)))
	eqDec(t, "75", RemainingPercentage(s))
}

// Round-trip property: amountOf(percentageOf(a, total), total) stays
// within the sum tolerance of a.
func TestAllocation_RoundTrip(t *testing.T) {
	total := decimal.NewFromInt(182)
	for _, raw := range []string{"0.01", "1", "45.5", "61", "91", "121.33", "182"} {
		a := decimal.RequireFromString(raw)
		back := AmountOf(PercentageOf(a, total), total)
		assert.True(t, back.Sub(a).Abs().LessThanOrEqual(SumTolerance),
			"round-trip drifted: %s -> %s", a, back)
	}
}
