package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/loanbook/backend/internal/domain/loan"
	"github.com/loanbook/backend/internal/domain/shared"
)

const (
	loanKeyPrefix   = "loan:record:"
	selectedLoanKey = "loan:selected"
)

// KVLoanRepository implements loan.LoanRepository over a KVStore. Each
// loan is one JSON record replaced wholesale on save; a separate key
// holds the session's selected loan ID.
type KVLoanRepository struct {
	store KVStore
}

// NewKVLoanRepository creates a new repository over the given store
func NewKVLoanRepository(store KVStore) *KVLoanRepository {
	return &KVLoanRepository{store: store}
}

// FindByID loads a loan record
func (r *KVLoanRepository) FindByID(ctx context.Context, id uuid.UUID) (*loan.Loan, error) {
	raw, err := r.store.Get(ctx, loanKeyPrefix+id.String())
	if errors.Is(err, ErrKeyNotFound) {
		return nil, shared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var l loan.Loan
	if err := json.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("failed to decode loan record %s: %w", id, err)
	}
	return &l, nil
}

// FindAll loads every stored loan record
func (r *KVLoanRepository) FindAll(ctx context.Context) ([]*loan.Loan, error) {
	keys, err := r.store.Keys(ctx, loanKeyPrefix)
	if err != nil {
		return nil, err
	}

	loans := make([]*loan.Loan, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.Get(ctx, key)
		if errors.Is(err, ErrKeyNotFound) {
			// Removed between listing and reading; skip.
			continue
		}
		if err != nil {
			return nil, err
		}
		var l loan.Loan
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("failed to decode loan record %s: %w", key, err)
		}
		loans = append(loans, &l)
	}
	return loans, nil
}

// Save replaces the loan's whole record
func (r *KVLoanRepository) Save(ctx context.Context, l *loan.Loan) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode loan record %s: %w", l.ID, err)
	}
	return r.store.Set(ctx, loanKeyPrefix+l.ID.String(), raw)
}

// Delete removes the loan's record
func (r *KVLoanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Remove(ctx, loanKeyPrefix+id.String())
}

// SelectedLoanID returns the session's selected loan, or uuid.Nil when
// none is stored
func (r *KVLoanRepository) SelectedLoanID(ctx context.Context) (uuid.UUID, error) {
	raw, err := r.store.Get(ctx, selectedLoanKey)
	if errors.Is(err, ErrKeyNotFound) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(string(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt selected-loan key: %w", err)
	}
	return id, nil
}

// SetSelectedLoanID stores the selection pointer; uuid.Nil clears it
func (r *KVLoanRepository) SetSelectedLoanID(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return r.store.Remove(ctx, selectedLoanKey)
	}
	return r.store.Set(ctx, selectedLoanKey, []byte(id.String()))
}
