package court

import (
	"context"
	"strings"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type CreateRequest struct {
	Name  string
	Price float64
}

type UpdateRequest struct {
	Name  *string
	Price *float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	All(ctx context.Context) ([]*Court, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Court, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	name := strings.TrimSpace(req.Name)
	if res := Validate(name, req.Price); !res.Valid {
		return nil, validation.NewError(res)
	}

	c := &Court{
		Name:  name,
		Price: req.Price,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) All(ctx context.Context) ([]*Court, error) {
	return s.repo.All(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Price != nil {
		c.Price = *req.Price
	}
	if res := Validate(c.Name, c.Price); !res.Valid {
		return nil, validation.NewError(res)
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
