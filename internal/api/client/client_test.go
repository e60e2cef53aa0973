package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListAlerts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListAlerts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListAlerts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/alerts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []domain.Alert{
				{ID: "a1", Email: "us**@example.com"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	alerts, err := c.ListAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "a1", alerts[0].ID)
}

func TestClient_CreateAlertFetchesTokenFirst(t *testing.T) {
	t.Parallel()

	var sawToken string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /csrf-token", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "_csrf", Value: "secret", Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"csrfToken": "tok-123",
		})
	})
	mux.HandleFunc("POST /api/v1/alerts", func(w http.ResponseWriter, r *http.Request) {
		sawToken = r.Header.Get("x-csrf-token")

		cookie, err := r.Cookie("_csrf")
		assert.NoError(t, err)
		assert.Equal(t, "secret", cookie.Value)

		var req domain.CreateAlertRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    domain.Alert{ID: "a-created", Email: req.Email},
			"message": "Price alert has been set!",
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	alert, msg, err := c.CreateAlert(context.Background(), &domain.CreateAlertRequest{
		ProductURL:  "https://shop.example.com/widget",
		TargetPrice: 100,
		Email:       "user@example.com",
		Frequency:   domain.FrequencyDaily,
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", sawToken)
	assert.Equal(t, "a-created", alert.ID)
	assert.Contains(t, msg, "Price alert has been set")
}

func TestClient_TokenCachedAcrossCalls(t *testing.T) {
	t.Parallel()

	tokenCalls := 0

	mux := http.NewServeMux()
	mux.HandleFunc("GET /csrf-token", func(w http.ResponseWriter, _ *http.Request) {
		tokenCalls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"csrfToken": "tok-123",
		})
	})
	mux.HandleFunc("POST /api/v1/check-prices", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":       true,
			"checked":       0,
			"triggered":     0,
			"notifications": []domain.Notification{},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	for range 3 {
		result, err := c.CheckPrices(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.Checked)
	}
	assert.Equal(t, 1, tokenCalls)
}
