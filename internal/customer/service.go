package customer

import (
	"context"
	"errors"
	"strings"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type CreateRequest struct {
	Name  string
	Phone string
	Email string
	Notes string
}

type UpdateRequest struct {
	Name  *string
	Phone *string
	Email *string
	Notes *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Customer, error)
	GetByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, filter Filter) ([]*Customer, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error)
	Delete(ctx context.Context, id string) error
	// EnsureByPhone returns the customer registered under phone, creating it
	// from req when there is none.
	EnsureByPhone(ctx context.Context, req CreateRequest) (*Customer, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Customer, error) {
	if res := Validate(req.Name, req.Phone, req.Email); !res.Valid {
		return nil, validation.NewError(res)
	}

	c := &Customer{
		Name:  strings.TrimSpace(req.Name),
		Phone: validation.NormalizePhone(req.Phone),
		Email: strings.TrimSpace(req.Email),
		Notes: strings.TrimSpace(req.Notes),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Customer, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = strings.TrimSpace(*req.Email)
	}
	if req.Notes != nil {
		c.Notes = strings.TrimSpace(*req.Notes)
	}

	if res := Validate(c.Name, c.Phone, c.Email); !res.Valid {
		return nil, validation.NewError(res)
	}
	c.Phone = validation.NormalizePhone(c.Phone)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) EnsureByPhone(ctx context.Context, req CreateRequest) (*Customer, error) {
	phone := validation.NormalizePhone(req.Phone)

	existing, err := s.repo.GetByPhone(ctx, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	c, err := s.Create(ctx, req)
	if errors.Is(err, ErrPhoneAlreadyUsed) {
		// Registered concurrently.
		return s.repo.GetByPhone(ctx, phone)
	}
	return c, err
}
