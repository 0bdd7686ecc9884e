package loan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallmentStatus_String(t *testing.T) {
	tests := []struct {
		status   InstallmentStatus
		expected string
	}{
		{InstallmentStatusPending, "PENDING"},
		{InstallmentStatusPaid, "PAID"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestInstallmentStatus_IsValid(t *testing.T) {
	tests := []struct {
		status   InstallmentStatus
		expected bool
	}{
		{InstallmentStatusPending, true},
		{InstallmentStatusPaid, true},
		{InstallmentStatus("INVALID"), false},
		{InstallmentStatus(""), false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.IsValid())
		})
	}
}

func TestInstallmentStatus_IsTerminal(t *testing.T) {
	assert.False(t, InstallmentStatusPending.IsTerminal())
	assert.True(t, InstallmentStatusPaid.IsTerminal())
}

func TestNewInstallment(t *testing.T) {
	due := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	inst := NewInstallment("Advance", decimal.NewFromInt(182), decimal.NewFromInt(100), due)

	require.NotNil(t, inst)
	assert.NotEqual(t, "", inst.ID.String())
	assert.Equal(t, "Advance", inst.Title)
	assert.True(t, inst.Amount.Equal(decimal.NewFromInt(182)))
	assert.True(t, inst.Percentage.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, InstallmentStatusPending, inst.Status)
	assert.True(t, inst.IsPending())
	assert.False(t, inst.IsPaid())
	assert.Nil(t, inst.PaidAt)
	assert.False(t, inst.CreatedAt.IsZero())

	// Due dates are calendar dates: the time component is stripped.
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), inst.DueDate)
}

func TestInstallment_MarkPaid(t *testing.T) {
	inst := NewInstallment("Second", decimal.NewFromInt(50), decimal.NewFromInt(25), time.Now())
	now := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

	inst.MarkPaid(now)

	assert.Equal(t, InstallmentStatusPaid, inst.Status)
	assert.True(t, inst.IsPaid())
	require.NotNil(t, inst.PaidAt)
	assert.Equal(t, now, *inst.PaidAt)
}

func TestNormalizeDate(t *testing.T) {
	t.Run("strips time of day", func(t *testing.T) {
		in := time.Date(2024, 1, 15, 23, 59, 59, 123, time.Local)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), NormalizeDate(in))
	})

	t.Run("zero stays zero", func(t *testing.T) {
		assert.True(t, NormalizeDate(time.Time{}).IsZero())
	})
}
