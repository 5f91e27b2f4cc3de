package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()

	cfg := &config.Config{
		Delivery: config.DeliveryConfig{
			ExpressOpenHour:  8,
			ExpressCloseHour: 22,
			NextDayMinutes:   1440,
		},
	}

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	svc := NewService(cfg, logger)
	svc.now = func() time.Time { return now }
	return svc
}

func TestGetEstimate_ExpressDuringBusinessHours(t *testing.T) {
	morning := time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC)
	svc := newTestService(t, morning)

	estimate, err := svc.GetEstimate(context.Background(), "1")

	require.NoError(t, err)
	assert.True(t, estimate.IsExpress)
	assert.Equal(t, "Reboost Express", estimate.ServiceType)
	assert.GreaterOrEqual(t, estimate.EstimatedMinutes, 30)
	assert.LessOrEqual(t, estimate.EstimatedMinutes, 59)
	assert.Equal(t, morning.Add(60*time.Minute), estimate.DeliveryDate)
}

func TestGetEstimate_NextDayOutsideBusinessHours(t *testing.T) {
	lateNight := time.Date(2025, 1, 15, 23, 15, 0, 0, time.UTC)
	svc := newTestService(t, lateNight)

	estimate, err := svc.GetEstimate(context.Background(), "1")

	require.NoError(t, err)
	assert.False(t, estimate.IsExpress)
	assert.Equal(t, "Standard Delivery", estimate.ServiceType)
	assert.Equal(t, 1440, estimate.EstimatedMinutes)
	assert.Equal(t, lateNight.Add(1440*time.Minute), estimate.DeliveryDate)
}

func TestGetEstimate_WindowBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		hour    int
		express bool
	}{
		{"just before open", 7, false},
		{"at open", 8, true},
		{"at close", 22, true},
		{"just after close", 23, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Date(2025, 1, 15, tc.hour, 0, 0, 0, time.UTC)
			svc := newTestService(t, now)

			estimate, err := svc.GetEstimate(context.Background(), "1")

			require.NoError(t, err)
			assert.Equal(t, tc.express, estimate.IsExpress)
		})
	}
}

func TestGetEstimate_DeterministicWithFixedRNG(t *testing.T) {
	morning := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, morning)
	svc.randInt = func(n int) int { return 15 }

	estimate, err := svc.GetEstimate(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, 45, estimate.EstimatedMinutes)
}

func TestGetEstimate_RequiresProductID(t *testing.T) {
	svc := newTestService(t, time.Now())

	_, err := svc.GetEstimate(context.Background(), "")

	assert.Error(t, err)
}

func TestGetEstimate_CancelledContext(t *testing.T) {
	svc := newTestService(t, time.Now())
	svc.config.Delivery.EstimateLatency = 5 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetEstimate(ctx, "1")

	assert.ErrorIs(t, err, context.Canceled)
}
