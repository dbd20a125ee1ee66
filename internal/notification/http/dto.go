package http

import (
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/notification"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/request"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/response"
)

type ListNotificationsRequest struct {
	request.ListParams
	UnreadOnly bool `form:"unread"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Kind:      string(n.Kind),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// ListResponse is a page of notifications plus the global unread badge count.
type ListResponse struct {
	response.PageResponse[NotificationResponse]
	Unread int `json:"unread"`
}
