package release

import (
	"context"
	"strings"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type CreateRequest struct {
	Type          Type
	Category      string
	Description   string
	Amount        float64
	Date          string
	PaymentMethod PaymentMethod
	Status        Status
}

type UpdateRequest struct {
	Type          *Type
	Category      *string
	Description   *string
	Amount        *float64
	Date          *string
	PaymentMethod *PaymentMethod
	Status        *Status
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Release, error)
	GetByID(ctx context.Context, id string) (*Release, error)
	List(ctx context.Context, filter Filter) ([]*Release, int, error)
	Summary(ctx context.Context, filter Filter) (*Summary, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Release, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Release, error) {
	if res := Validate(req.Type, req.Category, req.Amount, req.Date, req.PaymentMethod, req.Status); !res.Valid {
		return nil, validation.NewError(res)
	}
	date, _ := time.Parse(DateLayout, req.Date)

	rel := &Release{
		Type:          req.Type,
		Category:      strings.TrimSpace(req.Category),
		Description:   strings.TrimSpace(req.Description),
		Amount:        req.Amount,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
	}
	if err := s.repo.Create(ctx, rel); err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Release, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Release, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Summary(ctx context.Context, filter Filter) (*Summary, error) {
	return s.repo.Summary(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Release, error) {
	rel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	date := rel.Date.Format(DateLayout)
	if req.Type != nil {
		rel.Type = *req.Type
	}
	if req.Category != nil {
		rel.Category = strings.TrimSpace(*req.Category)
	}
	if req.Description != nil {
		rel.Description = strings.TrimSpace(*req.Description)
	}
	if req.Amount != nil {
		rel.Amount = *req.Amount
	}
	if req.Date != nil {
		date = *req.Date
	}
	if req.PaymentMethod != nil {
		rel.PaymentMethod = *req.PaymentMethod
	}
	if req.Status != nil {
		rel.Status = *req.Status
	}

	if res := Validate(rel.Type, rel.Category, rel.Amount, date, rel.PaymentMethod, rel.Status); !res.Valid {
		return nil, validation.NewError(res)
	}
	rel.Date, _ = time.Parse(DateLayout, date)

	if err := s.repo.Update(ctx, rel); err != nil {
		return nil, err
	}
	return rel, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
