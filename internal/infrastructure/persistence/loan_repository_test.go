package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanbook/backend/internal/domain/loan"
	"github.com/loanbook/backend/internal/domain/shared"
)

func newStoredLoan(t *testing.T, repo *KVLoanRepository, name string) *loan.Loan {
	t.Helper()

	l, err := loan.NewLoan(name, decimal.RequireFromString("1000"))
	require.NoError(t, err)
	_, err = l.CreateInitialInstallment("Full payment", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), l))
	return l
}

func TestKVLoanRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewKVLoanRepository(NewInMemoryKVStore())

	l := newStoredLoan(t, repo, "Car loan")

	found, err := repo.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, l.ID, found.ID)
	assert.Equal(t, "Car loan", found.Name)
	assert.True(t, found.TotalAmount.Equal(decimal.RequireFromString("1000")))
	require.Len(t, found.Installments, 1)
	assert.Equal(t, loan.InstallmentStatusPending, found.Installments[0].Status)
	assert.True(t, found.Installments[0].Amount.Equal(decimal.RequireFromString("1000")))
	assert.NoError(t, found.CheckAllocation())
}

func TestKVLoanRepository_FindByID_NotFound(t *testing.T) {
	repo := NewKVLoanRepository(NewInMemoryKVStore())

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestKVLoanRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewKVLoanRepository(NewInMemoryKVStore())

	a := newStoredLoan(t, repo, "First")
	b := newStoredLoan(t, repo, "Second")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	ids := []uuid.UUID{all[0].ID, all[1].ID}
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, ids)
}

func TestKVLoanRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewKVLoanRepository(NewInMemoryKVStore())

	l := newStoredLoan(t, repo, "Short lived")
	require.NoError(t, repo.Delete(ctx, l.ID))

	_, err := repo.FindByID(ctx, l.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestKVLoanRepository_SelectedLoanID(t *testing.T) {
	ctx := context.Background()
	repo := NewKVLoanRepository(NewInMemoryKVStore())

	id, err := repo.SelectedLoanID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)

	l := newStoredLoan(t, repo, "Active")
	require.NoError(t, repo.SetSelectedLoanID(ctx, l.ID))

	id, err = repo.SelectedLoanID(ctx)
	require.NoError(t, err)
	assert.Equal(t, l.ID, id)

	// Setting the nil ID clears the selection.
	require.NoError(t, repo.SetSelectedLoanID(ctx, uuid.Nil))
	id, err = repo.SelectedLoanID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, id)
}

func TestKVLoanRepository_RoundTripPreservesPaymentState(t *testing.T) {
	ctx := context.Background()
	repo := NewKVLoanRepository(NewInMemoryKVStore())

	l := newStoredLoan(t, repo, "Phone plan")
	paidAt := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	_, err := l.MarkInstallmentPaid(l.Installments[0].ID, paidAt)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, l))

	found, err := repo.FindByID(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, found.Installments, 1)
	assert.Equal(t, loan.InstallmentStatusPaid, found.Installments[0].Status)
	require.NotNil(t, found.Installments[0].PaidAt)
	assert.True(t, found.Installments[0].PaidAt.Equal(paidAt))
}
