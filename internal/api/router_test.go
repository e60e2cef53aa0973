package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/price-alert-api/internal/api"
	apiclient "github.com/donaldgifford/price-alert-api/internal/api/client"
	"github.com/donaldgifford/price-alert-api/internal/config"
	"github.com/donaldgifford/price-alert-api/internal/notify"
	"github.com/donaldgifford/price-alert-api/internal/pricesim"
	"github.com/donaldgifford/price-alert-api/internal/store"
	"github.com/donaldgifford/price-alert-api/pkg/logger"
	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// newTestServer starts a fully wired API server whose sweeps always draw
// the given price.
func newTestServer(t *testing.T, price int) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("does-not-exist.yaml")
	require.NoError(t, err)

	st := store.NewMemory(
		pricesim.Fixed(price),
		notify.NewLogNotifier(logger.Nop()),
		logger.Nop(),
	)

	srv := httptest.NewServer(api.NewRouter(cfg, st, "test", logger.Nop()))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_HealthEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 50)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestRouter_MutationWithoutTokenRejected(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 50)

	resp, err := http.Post(
		srv.URL+"/api/v1/alerts",
		"application/json",
		strings.NewReader(`{"productUrl":"https://x","targetPrice":1,"email":"a@b.co","frequency":"daily"}`),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, string(body), "CSRF token missing")
}

func TestRouter_AlertLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 50)
	c := apiclient.New(srv.URL)
	ctx := context.Background()

	alert, msg, err := c.CreateAlert(ctx, &domain.CreateAlertRequest{
		ProductURL:  "https://shop.example.com/widget",
		TargetPrice: 100,
		Email:       "user@example.com",
		Frequency:   domain.FrequencyDaily,
		UserID:      "user-42",
	})
	require.NoError(t, err)
	require.NotEmpty(t, alert.ID)
	assert.True(t, alert.IsActive)
	assert.Nil(t, alert.LastChecked)
	assert.Contains(t, msg, "Price alert has been set!")
	assert.Contains(t, msg, "Price checks will run daily.")

	alerts, err := c.ListAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "us**@example.com", alerts[0].Email)

	userAlerts, err := c.ListUserAlerts(ctx, "user-42")
	require.NoError(t, err)
	require.Len(t, userAlerts, 1)
	assert.Equal(t, alert.ID, userAlerts[0].ID)

	none, err := c.ListUserAlerts(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, none)

	result, err := c.CheckPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, 1, result.Triggered)
	require.Len(t, result.Notifications, 1)

	n := result.Notifications[0]
	assert.Equal(t, alert.ID, n.AlertID)
	assert.Equal(t, 50, n.CurrentPrice)
	assert.Equal(t, "us**@example.com", n.Email)
	assert.Contains(t, n.Message, "Great news! Price dropped to £50!")

	// the daily interval has not elapsed, so a second sweep skips the alert
	again, err := c.CheckPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Checked)
	assert.Equal(t, 0, again.Triggered)
}

func TestRouter_ValidationErrorPassesThrough(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 50)
	c := apiclient.New(srv.URL)

	_, _, err := c.CreateAlert(context.Background(), &domain.CreateAlertRequest{
		ProductURL:  "https://shop.example.com/widget",
		TargetPrice: -5,
		Email:       "user@example.com",
		Frequency:   domain.FrequencyDaily,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 400)")
	assert.Contains(t, err.Error(), "Target price must be greater than 0")
}

func TestRouter_PriceAboveTargetDoesNotTrigger(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 180)
	c := apiclient.New(srv.URL)
	ctx := context.Background()

	_, _, err := c.CreateAlert(ctx, &domain.CreateAlertRequest{
		ProductURL:  "https://shop.example.com/widget",
		TargetPrice: 40,
		Email:       "user@example.com",
		Frequency:   domain.FrequencyHourly,
	})
	require.NoError(t, err)

	result, err := c.CheckPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Checked)
	assert.Equal(t, 0, result.Triggered)
	assert.Empty(t, result.Notifications)
}

func TestRouter_UnknownRouteEnvelope(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, 50)

	resp, err := http.Get(srv.URL + "/api/v1/nonexistent")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"success":false`)
	assert.Contains(t, string(body), "Route not found: GET /api/v1/nonexistent")
	assert.Contains(t, string(body), `"timestamp"`)
}
