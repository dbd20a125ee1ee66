package notification

import (
	"context"
	"strings"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type Service interface {
	Create(ctx context.Context, kind Kind, message string) (*Notification, error)
	List(ctx context.Context, filter Filter) ([]*Notification, int, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, kind Kind, message string) (*Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		var c validation.Collector
		c.Add(validation.CodeRequired, "message", "message is required")
		return nil, validation.NewError(c.Result())
	}
	if kind == "" {
		kind = KindInfo
	}

	n := &Notification{Kind: kind, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Notification, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UnreadCount(ctx context.Context) (int, error) {
	return s.repo.CountUnread(ctx)
}

func (s *service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
