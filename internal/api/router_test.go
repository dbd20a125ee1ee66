package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/auth"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/metrics"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter(db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Config{
		RequestTimeout: 5 * time.Second,
		Logger:         zap.NewNop(),
		Metrics:        metrics.New(),
		DB:             db,
		Verifier:       auth.NewVerifier("secret"),
	})
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		w := get(newTestRouter(fakePinger{}), "/healthz", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		w := get(newTestRouter(fakePinger{err: errors.New("connection refused")}), "/healthz", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(fakePinger{})
	get(r, "/healthz", "")

	w := get(r, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `court_booking_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestV1RequiresToken(t *testing.T) {
	r := newTestRouter(fakePinger{})

	for _, path := range []string{"/v1/me", "/v1/courts", "/v1/bookings", "/v1/settings", "/v1/releases", "/v1/notifications", "/v1/customers"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, get(r, path, "").Code)
		})
	}
}

func TestMe(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		Email: "staff@club.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	w := get(newTestRouter(fakePinger{}), "/v1/me", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"user-1","email":"staff@club.com"}`, w.Body.String())
}

func TestTimeoutSetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/slow", Timeout(3*time.Second), func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		c.JSON(http.StatusOK, gin.H{"deadline": ok})
	})

	w := get(r, "/slow", "")
	assert.JSONEq(t, `{"deadline":true}`, w.Body.String())
}

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, allowedOrigins(true, " https://a.com, ,https://b.com"))
	assert.NotEmpty(t, allowedOrigins(false, ""))
}
