package release

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type memRepo struct {
	items map[string]*Release
	seq   int
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]*Release{}}
}

func (r *memRepo) matches(rel *Release, f Filter) bool {
	if f.Type != "" && rel.Type != f.Type {
		return false
	}
	if f.Status != "" && rel.Status != f.Status {
		return false
	}
	if f.From != nil && rel.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && rel.Date.After(*f.To) {
		return false
	}
	return true
}

func (r *memRepo) Create(_ context.Context, rel *Release) error {
	r.seq++
	rel.ID = fmt.Sprintf("rel-%d", r.seq)
	cp := *rel
	r.items[rel.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*Release, error) {
	rel, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rel
	return &cp, nil
}

func (r *memRepo) List(_ context.Context, f Filter) ([]*Release, int, error) {
	var out []*Release
	for _, rel := range r.items {
		if r.matches(rel, f) {
			cp := *rel
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

func (r *memRepo) Summary(_ context.Context, f Filter) (*Summary, error) {
	var s Summary
	for _, rel := range r.items {
		if !r.matches(rel, f) {
			continue
		}
		s.Count++
		switch rel.Type {
		case TypeIncome:
			s.Income += rel.Amount
		case TypeExpense:
			s.Expense += rel.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return &s, nil
}

func (r *memRepo) Update(_ context.Context, rel *Release) error {
	if _, ok := r.items[rel.ID]; !ok {
		return ErrNotFound
	}
	cp := *rel
	r.items[rel.ID] = &cp
	return nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		res := Validate(TypeIncome, "Aluguel de quadra", 120, "2026-10-12", PaymentPix, StatusPaid)
		assert.True(t, res.Valid)
	})

	t.Run("collects every issue", func(t *testing.T) {
		res := Validate("refund", "", 0, "12/10/2026", "cheque", "late")
		assert.False(t, res.Valid)
		assert.Equal(t, []validation.Code{
			validation.CodeInvalidValue,
			validation.CodeRequired,
			validation.CodeInvalidPrice,
			validation.CodeInvalidValue,
			validation.CodeInvalidValue,
			validation.CodeInvalidValue,
		}, res.Codes())
	})

	t.Run("missing type and date", func(t *testing.T) {
		res := Validate("", "Luz", 50, "", PaymentCash, StatusPending)
		assert.Equal(t, []validation.Code{validation.CodeRequired, validation.CodeRequired}, res.Codes())
	})
}

func TestReleaseService(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemRepo())

	entries := []CreateRequest{
		{Type: TypeIncome, Category: "Aluguel de quadra", Amount: 120, Date: "2026-10-05", PaymentMethod: PaymentPix, Status: StatusPaid},
		{Type: TypeIncome, Category: "Aluguel de quadra", Amount: 80, Date: "2026-10-12", PaymentMethod: PaymentCash, Status: StatusPending},
		{Type: TypeExpense, Category: "Manutenção", Amount: 50.5, Date: "2026-10-12", PaymentMethod: PaymentTransfer, Status: StatusPaid},
	}

	var lastID string
	for _, e := range entries {
		rel, err := svc.Create(ctx, e)
		require.NoError(t, err)
		lastID = rel.ID
	}

	t.Run("Summary over all", func(t *testing.T) {
		s, err := svc.Summary(ctx, Filter{})
		require.NoError(t, err)
		assert.Equal(t, 3, s.Count)
		assert.InDelta(t, 200.0, s.Income, 0.001)
		assert.InDelta(t, 50.5, s.Expense, 0.001)
		assert.InDelta(t, 149.5, s.Balance, 0.001)
	})

	t.Run("Summary by status", func(t *testing.T) {
		s, err := svc.Summary(ctx, Filter{Status: StatusPaid})
		require.NoError(t, err)
		assert.Equal(t, 2, s.Count)
		assert.InDelta(t, 69.5, s.Balance, 0.001)
	})

	t.Run("Update keeps date when omitted", func(t *testing.T) {
		status := StatusPending
		rel, err := svc.Update(ctx, lastID, UpdateRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, StatusPending, rel.Status)
		assert.Equal(t, "2026-10-12", rel.Date.Format(DateLayout))
	})

	t.Run("Update rejects bad date", func(t *testing.T) {
		date := "2026-13-01"
		_, err := svc.Update(ctx, lastID, UpdateRequest{Date: &date})
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.Result.Has(validation.CodeInvalidValue))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, lastID))
		_, err := svc.GetByID(ctx, lastID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
