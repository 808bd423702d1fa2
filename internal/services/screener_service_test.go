package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrdo/hunt/internal/cache"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/services"
)

func newScreenerService() *services.ScreenerService {
	svc := services.NewScreenerService(mockdata.New(42), cache.NewMemoryCache(time.Minute, time.Minute))
	svc.Now = func() time.Time { return testNow }
	return svc
}

func TestETFGridDefaultSort(t *testing.T) {
	svc := newScreenerService()

	page := svc.ETFGrid(services.GridQuery{SortKey: "rs_score", Direction: "desc"})
	require.Len(t, page.Rows, 10)

	for i := 1; i < len(page.Rows); i++ {
		assert.GreaterOrEqual(t, page.Rows[i-1].RSScore, page.Rows[i].RSScore)
	}
	// All columns visible when none requested.
	assert.Len(t, page.Columns, 11)
}

func TestETFGridFilter(t *testing.T) {
	svc := newScreenerService()

	page := svc.ETFGrid(services.GridQuery{Filter: "wtec"})
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "WTEC", page.Rows[0].Symbol)

	empty := svc.ETFGrid(services.GridQuery{Filter: "zzzzz"})
	assert.Empty(t, empty.Rows)
}

func TestETFGridColumns(t *testing.T) {
	svc := newScreenerService()

	page := svc.ETFGrid(services.GridQuery{Columns: []string{"symbol", "rs_score", "bogus"}})
	assert.Equal(t, []string{"symbol", "rs_score"}, page.Columns)
}

func TestETFGridCachedRowsUnaffectedByView(t *testing.T) {
	svc := newScreenerService()

	base := svc.ETFGrid(services.GridQuery{SortKey: "symbol", Direction: "asc"})
	svc.ETFGrid(services.GridQuery{SortKey: "price", Direction: "desc", Filter: "w"})
	again := svc.ETFGrid(services.GridQuery{SortKey: "symbol", Direction: "asc"})

	assert.Equal(t, base.Rows, again.Rows, "view sorting must not mutate the cached rows")
}
