package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/response"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/settings"
)

type Handler struct {
	service settings.Service
}

func NewHandler(service settings.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(s))
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Update(c.Request.Context(), body.OperatingHours)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(s))
}
