package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAlertRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := CreateAlertRequest{
		ProductURL:  "https://example.com/product1",
		TargetPrice: 100,
		Email:       "user@example.com",
		Frequency:   FrequencyDaily,
	}

	tests := []struct {
		name    string
		mutate  func(*CreateAlertRequest)
		wantErr error
	}{
		{
			name:   "valid input",
			mutate: func(_ *CreateAlertRequest) {},
		},
		{
			name:    "missing product url",
			mutate:  func(r *CreateAlertRequest) { r.ProductURL = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing target price",
			mutate:  func(r *CreateAlertRequest) { r.TargetPrice = 0 },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing email",
			mutate:  func(r *CreateAlertRequest) { r.Email = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "missing frequency",
			mutate:  func(r *CreateAlertRequest) { r.Frequency = "" },
			wantErr: ErrMissingFields,
		},
		{
			name:    "negative target price",
			mutate:  func(r *CreateAlertRequest) { r.TargetPrice = -100 },
			wantErr: ErrTargetPrice,
		},
		{
			name:    "unknown frequency",
			mutate:  func(r *CreateAlertRequest) { r.Frequency = "monthly" },
			wantErr: ErrFrequency,
		},
		{
			// A request failing several rules reports the first one only.
			name: "missing fields wins over bad frequency",
			mutate: func(r *CreateAlertRequest) {
				r.Email = ""
				r.Frequency = "monthly"
			},
			wantErr: ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAlert_Due_NeverChecked(t *testing.T) {
	t.Parallel()

	now := time.Now()
	for _, f := range []Frequency{FrequencyHourly, FrequencyDaily, FrequencyWeekly, "monthly"} {
		a := &Alert{Frequency: f}
		assert.True(t, a.Due(now), "frequency %q", f)
	}
}

func TestAlert_Due_Thresholds(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency Frequency
		elapsed   time.Duration
		want      bool
	}{
		{"hourly past threshold", FrequencyHourly, 61 * time.Minute, true},
		{"hourly exactly at threshold", FrequencyHourly, time.Hour, true},
		{"hourly below threshold", FrequencyHourly, 30 * time.Minute, false},
		{"daily past threshold", FrequencyDaily, 25 * time.Hour, true},
		{"daily exactly at threshold", FrequencyDaily, 24 * time.Hour, true},
		{"daily below threshold", FrequencyDaily, 12 * time.Hour, false},
		{"weekly past threshold", FrequencyWeekly, 8 * 24 * time.Hour, true},
		{"weekly exactly at threshold", FrequencyWeekly, 7 * 24 * time.Hour, true},
		{"weekly below threshold", FrequencyWeekly, 6 * 24 * time.Hour, false},
		// Unknown frequency is always due even when checked moments ago.
		{"unknown frequency is permissive", "monthly", time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			last := now.Add(-tt.elapsed)
			a := &Alert{Frequency: tt.frequency, LastChecked: &last}
			assert.Equal(t, tt.want, a.Due(now))
		})
	}
}

func TestFrequency_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, FrequencyHourly.Valid())
	assert.True(t, FrequencyDaily.Valid())
	assert.True(t, FrequencyWeekly.Valid())
	assert.False(t, Frequency("monthly").Valid())
	assert.False(t, Frequency("").Valid())
}
