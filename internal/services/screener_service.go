package services

import (
	"time"

	"github.com/wrdo/hunt/internal/cache"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/tablekit"
)

// GridQuery captures the grid request parameters as the dashboard sends them.
type GridQuery struct {
	SortKey   string
	Direction string
	Filter    string
	Columns   []string
}

// GridPage is a sorted, filtered grid with the resolved visible columns.
type GridPage struct {
	Rows    []models.ETFRow `json:"rows"`
	Columns []string        `json:"columns"`
}

// ScreenerService builds the spreadsheet-style ETF grid.
type ScreenerService struct {
	gen      *mockdata.Generator
	memCache *cache.MemoryCache
	table    *tablekit.Table[models.ETFRow]

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// NewScreenerService creates a new ScreenerService
func NewScreenerService(gen *mockdata.Generator, memCache *cache.MemoryCache) *ScreenerService {
	table := tablekit.New(
		tablekit.StringColumn("symbol", func(r models.ETFRow) string { return r.Symbol }),
		tablekit.StringColumn("name", func(r models.ETFRow) string { return r.Name }),
		tablekit.StringColumn("sector", func(r models.ETFRow) string { return r.Sector }),
		tablekit.NumberColumn("price", func(r models.ETFRow) float64 { return r.Price }),
		tablekit.NumberColumn("change_percent", func(r models.ETFRow) float64 { return r.ChangePercent }),
		tablekit.NumberColumn("volume", func(r models.ETFRow) float64 { return float64(r.Volume) }),
		tablekit.NumberColumn("sma_20", func(r models.ETFRow) float64 { return r.SMA20 }),
		tablekit.NumberColumn("sma_50", func(r models.ETFRow) float64 { return r.SMA50 }),
		tablekit.NumberColumn("rsi_14", func(r models.ETFRow) float64 { return r.RSI14 }),
		tablekit.NumberColumn("rs_score", func(r models.ETFRow) float64 { return r.RSScore }),
		tablekit.NumberColumn("accel_score", func(r models.ETFRow) float64 { return r.AccelScore }),
	)

	return &ScreenerService{
		gen:      gen,
		memCache: memCache,
		table:    table,
		Now:      time.Now,
	}
}

// ETFGrid returns the grid for the current instant, sorted and filtered per
// the query. Building the rows walks a year of candles per ETF, so raw rows
// are cached and only the view logic runs per request.
func (s *ScreenerService) ETFGrid(q GridQuery) *GridPage {
	defer TrackTime("ETFGrid", time.Now())

	rows, ok := s.memCache.GetGrid()
	if !ok {
		rows = s.gen.GridRows(s.Now())
		s.memCache.SetGrid(rows)
	}

	// Work on a copy; cached rows must keep their canonical order.
	view := append([]models.ETFRow(nil), rows...)
	view = s.table.Filter(view, q.Filter)
	s.table.Sort(view, q.SortKey, q.Direction)

	return &GridPage{
		Rows:    view,
		Columns: s.table.VisibleColumns(q.Columns),
	}
}
