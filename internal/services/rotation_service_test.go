package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/services"
)

func newRotationService() *services.RotationService {
	// No repository: only the validation paths that fail before persistence
	// are exercised here.
	svc := services.NewRotationService(nil, mockdata.New(42))
	svc.Now = func() time.Time { return testNow }
	return svc
}

func TestSaveConfigValidation(t *testing.T) {
	svc := newRotationService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.UpdateRotationConfigRequest
	}{
		{"fast sma too small", models.UpdateRotationConfigRequest{FastSMA: 1, SlowSMA: 50, TopN: 5, LookbackDays: 252}},
		{"slow not above fast", models.UpdateRotationConfigRequest{FastSMA: 50, SlowSMA: 50, TopN: 5, LookbackDays: 252}},
		{"slow sma too large", models.UpdateRotationConfigRequest{FastSMA: 20, SlowSMA: 500, TopN: 5, LookbackDays: 252}},
		{"top n zero", models.UpdateRotationConfigRequest{FastSMA: 20, SlowSMA: 50, TopN: 0, LookbackDays: 252}},
		{"top n above universe", models.UpdateRotationConfigRequest{FastSMA: 20, SlowSMA: 50, TopN: 11, LookbackDays: 252}},
		{"lookback too short", models.UpdateRotationConfigRequest{FastSMA: 20, SlowSMA: 50, TopN: 5, LookbackDays: 10}},
		{"lookback too long", models.UpdateRotationConfigRequest{FastSMA: 20, SlowSMA: 50, TopN: 5, LookbackDays: 5000}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SaveConfig(ctx, 1, &tc.req)
			assert.ErrorIs(t, err, services.ErrInvalidConfig)

			_, err = svc.RunBacktest(ctx, 1, &tc.req)
			assert.ErrorIs(t, err, services.ErrInvalidConfig)
		})
	}
}
