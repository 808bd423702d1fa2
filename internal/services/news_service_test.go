package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/services"
)

func newNewsService() *services.NewsService {
	svc := services.NewNewsService(nil, mockdata.New(42))
	svc.Now = func() time.Time { return testNow }
	return svc
}

func TestGetNewsWithoutFeedIsDegraded(t *testing.T) {
	svc := newNewsService()

	resp := svc.GetNews(context.Background(), 20)
	assert.True(t, resp.Degraded, "no configured feed must flag the response degraded")
	require.NotEmpty(t, resp.Items)

	// Three gainer and three loser headlines.
	assert.Len(t, resp.Items, 6)
	for _, item := range resp.Items {
		assert.Equal(t, "HUNT Wire", item.Source)
		assert.NotEmpty(t, item.Headline)
		require.Len(t, item.Symbols, 1)
	}
}

func TestGetNewsLimit(t *testing.T) {
	svc := newNewsService()

	resp := svc.GetNews(context.Background(), 2)
	assert.Len(t, resp.Items, 2)
}

func TestGetNewsDeterministic(t *testing.T) {
	a := newNewsService().GetNews(context.Background(), 10)
	b := newNewsService().GetNews(context.Background(), 10)
	assert.Equal(t, a.Items, b.Items)
}

func TestEarningsPassthrough(t *testing.T) {
	svc := newNewsService()

	events := svc.Earnings(30)
	for _, e := range events {
		assert.LessOrEqual(t, e.ReportDate.Sub(testNow).Hours()/24, 31.0)
	}
}
