package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/app"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/auth"
	bookingHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/booking/http"
	businessHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/business/http"
	courtHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/court/http"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/db"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/storage"
	notificationHttp "github.com/Diegosch1990/sistema-reserva-quadras/internal/notification/http"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

const testSecret = "integration-secret"

var (
	testRouter *gin.Engine
	testPool   *pgxpool.Pool
)

func TestMain(m *testing.M) {
	// Attempt to load .env from the repository root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("No .env file found or failed to load: %v", err)
	}

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		// Tests skip themselves through requireDB.
		os.Exit(m.Run())
	}

	ctx := context.Background()
	var err error
	testPool, err = db.NewPool(ctx, dsn)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	if err := db.EnsureSchema(ctx, testPool); err != nil {
		log.Fatalf("Unable to apply schema: %v\n", err)
	}

	storageDir, err := os.MkdirTemp("", "quadras-uploads-")
	if err != nil {
		log.Fatalf("Unable to create storage dir: %v\n", err)
	}
	store, err := storage.NewLocalStorage(storageDir)
	if err != nil {
		log.Fatalf("Unable to open storage: %v\n", err)
	}

	gin.SetMode(gin.TestMode)
	testRouter = app.NewContainer(app.Config{
		DBPool:         testPool,
		JWTSecret:      testSecret,
		RequestTimeout: 10 * time.Second,
		Storage:        store,
	}).Router

	exitCode := m.Run()

	_ = store.Close()
	_ = os.RemoveAll(storageDir)
	testPool.Close()
	os.Exit(exitCode)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DB_DSN is not set")
	}
}

func clearTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		"TRUNCATE TABLE public.bookings, public.courts, public.customers, public.booking_settings, public.business_settings, public.releases, public.notifications CASCADE")
	require.NoError(t, err, "Failed to clean tables")
}

func staffToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		Email: "staff@club.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "staff-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func executeRequest(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testRouter.ServeHTTP(w, req)
	return w
}

func TestBookingFlow(t *testing.T) {
	requireDB(t)
	clearTables(t)
	token := staffToken(t)

	var courtID string
	booking := func(user, phone string) gin.H {
		return gin.H{
			"court_id":  courtID,
			"day":       "Segunda",
			"time":      "08:00",
			"user_name": user,
			"whatsapp":  phone,
		}
	}

	t.Run("Setup court and hours", func(t *testing.T) {
		w := executeRequest("POST", "/v1/courts", gin.H{"name": "Quadra 1", "price": 120.0}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var c courtHttp.CourtResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		courtID = c.ID

		w = executeRequest("PUT", "/v1/settings", gin.H{"operating_hours": gin.H{
			"weekdays":                    gin.H{"start": "08:00", "end": "12:00"},
			"weekends":                    gin.H{"start": "09:00", "end": "11:00"},
			"slot_duration_minutes":       60,
			"break_between_slots_minutes": 0,
			"closed_days":                 []string{"Domingo"},
		}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("Availability before booking", func(t *testing.T) {
		w := executeRequest("GET", "/v1/courts/"+courtID+"/availability?day=Segunda", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var resp bookingHttp.AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Slots, 4)
		for _, s := range resp.Slots {
			assert.True(t, s.Available)
		}

		w = executeRequest("GET", "/v1/courts/"+courtID+"/availability?day=Domingo", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Slots)
	})

	t.Run("Create booking", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", booking("Ana", "(11) 99999-9999"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var b bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
		assert.Equal(t, "Quadra 1", b.Court.Name)
		assert.Equal(t, 120.0, b.Price)
		assert.Equal(t, "11999999999", b.WhatsApp)
	})

	t.Run("Same slot is rejected", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings", booking("Bia", "11988887777"), token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), string(validation.CodeSlotAlreadyBooked))

		w = executeRequest("POST", "/v1/bookings/validate", booking("Bia", "11988887777"), token)
		require.Equal(t, http.StatusOK, w.Code)
		var res validation.Result
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.False(t, res.Valid)
		assert.True(t, res.Has(validation.CodeSlotAlreadyBooked))
	})

	t.Run("Slot shows as booked", func(t *testing.T) {
		w := executeRequest("GET", "/v1/courts/"+courtID+"/availability?day=Segunda", nil, token)
		var resp bookingHttp.AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Slots)
		assert.Equal(t, "08:00", resp.Slots[0].Time)
		assert.False(t, resp.Slots[0].Available)
	})

	t.Run("Outside operating hours", func(t *testing.T) {
		b := booking("Caio", "11977776666")
		b["time"] = "13:00"
		w := executeRequest("POST", "/v1/bookings", b, token)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Concurrent creates for one slot", func(t *testing.T) {
		const n = 8
		codes := make([]int, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				b := booking("Dani", "11966665555")
				b["time"] = "10:00"
				codes[i] = executeRequest("POST", "/v1/bookings", b, token).Code
			}()
		}
		wg.Wait()

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
				continue
			}
			assert.Contains(t, []int{http.StatusConflict, http.StatusUnprocessableEntity}, c)
		}
		assert.Equal(t, 1, created)
	})

	t.Run("Stats count today's bookings", func(t *testing.T) {
		w := executeRequest("GET", "/v1/bookings/stats", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp bookingHttp.StatsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Daily)
		assert.Equal(t, 2, resp.Daily[len(resp.Daily)-1].Bookings)
		assert.Equal(t, 240.0, resp.Monthly[len(resp.Monthly)-1].Revenue)
	})

	t.Run("Court with bookings cannot be deleted", func(t *testing.T) {
		w := executeRequest("DELETE", "/v1/courts/"+courtID, nil, token)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Notifications were recorded", func(t *testing.T) {
		w := executeRequest("GET", "/v1/notifications?unread=true", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var resp notificationHttp.ListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Unread)
	})
}

func TestBusinessProfileFlow(t *testing.T) {
	requireDB(t)
	clearTables(t)
	token := staffToken(t)

	w := executeRequest("GET", "/v1/business", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = executeRequest("PUT", "/v1/business", gin.H{"name": "Arena"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = executeRequest("PUT", "/v1/business", gin.H{
		"name":          "Arena Central",
		"phone":         "(11) 3333-4444",
		"email":         "contato@arena.com.br",
		"opening_hours": "Seg a Sex 08h-22h",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = executeRequest("GET", "/v1/business", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp businessHttp.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Arena Central", resp.Name)
	assert.Equal(t, "1133334444", resp.Phone)
	assert.Nil(t, resp.LogoURL)
}
