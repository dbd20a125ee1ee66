package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/business"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/response"
)

// LogoFormField is the multipart field carrying the logo file.
const LogoFormField = "logo"

type Handler struct {
	service business.Service
}

func NewHandler(service business.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), body.toService())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(p))
}

func (h *Handler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile(LogoFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": LogoFormField + " is required"})
		return
	}
	if fileHeader.Size > business.MaxLogoBytes {
		response.Error(c, business.ErrLogoTooLarge)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer src.Close()

	p, err := h.service.UploadLogo(c.Request.Context(), src, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(p))
}

func (h *Handler) ServeLogo(c *gin.Context) {
	stream, err := h.service.Logo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/png")
	c.Header("Cache-Control", "no-cache")
	c.Status(http.StatusOK)
	// The status line is already out; a copy error only means the client left.
	_, _ = io.Copy(c.Writer, stream)
}
