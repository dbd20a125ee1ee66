package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/business"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type stubService struct {
	profile     *business.Profile
	uploaded    []byte
	contentType string
}

func (s *stubService) Get(context.Context) (*business.Profile, error) {
	if s.profile == nil {
		return nil, business.ErrNotFound
	}
	return s.profile, nil
}

func (s *stubService) Update(_ context.Context, req business.UpdateRequest) (*business.Profile, error) {
	if res := business.Validate(req); !res.Valid {
		return nil, validation.NewError(res)
	}
	s.profile = &business.Profile{Name: req.Name, OpeningHours: req.OpeningHours, UpdatedAt: time.Now()}
	return s.profile, nil
}

func (s *stubService) UploadLogo(_ context.Context, content io.Reader, contentType string) (*business.Profile, error) {
	b, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	s.uploaded, s.contentType = b, contentType
	s.profile.LogoPath = "business/logo.png"
	return s.profile, nil
}

func (s *stubService) Logo(context.Context) (io.ReadCloser, error) {
	if s.profile == nil || !s.profile.HasLogo() {
		return nil, business.ErrNoLogo
	}
	return io.NopCloser(strings.NewReader("png-bytes")), nil
}

func setupRouter(svc business.Service, auth gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewHandler(svc), auth)
	return r
}

func allow(c *gin.Context) { c.Next() }

func deny(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }

func multipartBody(t *testing.T, field, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="logo.png"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestGetProfile(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		w := httptest.NewRecorder()
		setupRouter(&stubService{}, deny).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/business", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("public read with logo url", func(t *testing.T) {
		svc := &stubService{profile: &business.Profile{Name: "Arena", LogoPath: "business/logo.png"}}
		w := httptest.NewRecorder()
		setupRouter(svc, deny).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/business", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp ProfileResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Arena", resp.Name)
		require.NotNil(t, resp.LogoURL)
		assert.Equal(t, LogoPath, *resp.LogoURL)
	})
}

func TestUpdateProfile(t *testing.T) {
	body := `{"name":"Arena","opening_hours":"08h-22h"}`

	tests := []struct {
		name string
		auth gin.HandlerFunc
		body string
		want int
	}{
		{"ok", allow, body, http.StatusOK},
		{"requires staff", deny, body, http.StatusUnauthorized},
		{"validation", allow, `{"name":""}`, http.StatusUnprocessableEntity},
		{"malformed", allow, `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/v1/business", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			setupRouter(&stubService{}, tt.auth).ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestUploadLogo(t *testing.T) {
	t.Run("passes file and content type through", func(t *testing.T) {
		svc := &stubService{profile: &business.Profile{Name: "Arena"}}
		body, ct := multipartBody(t, LogoFormField, "image/png", []byte("raw"))
		req := httptest.NewRequest(http.MethodPut, "/v1/business/logo", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		setupRouter(svc, allow).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []byte("raw"), svc.uploaded)
		assert.Equal(t, "image/png", svc.contentType)
	})

	t.Run("missing field", func(t *testing.T) {
		body, ct := multipartBody(t, "file", "image/png", []byte("raw"))
		req := httptest.NewRequest(http.MethodPut, "/v1/business/logo", body)
		req.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		setupRouter(&stubService{}, allow).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServeLogo(t *testing.T) {
	t.Run("no logo", func(t *testing.T) {
		svc := &stubService{profile: &business.Profile{Name: "Arena"}}
		w := httptest.NewRecorder()
		setupRouter(svc, deny).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/business/logo", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("streams png", func(t *testing.T) {
		svc := &stubService{profile: &business.Profile{Name: "Arena", LogoPath: "business/logo.png"}}
		w := httptest.NewRecorder()
		setupRouter(svc, deny).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/business/logo", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "png-bytes", w.Body.String())
	})
}
