package tablekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wrdo/hunt/internal/tablekit"
)

type row struct {
	Symbol string
	Price  float64
}

func newTable() *tablekit.Table[row] {
	return tablekit.New(
		tablekit.StringColumn("symbol", func(r row) string { return r.Symbol }),
		tablekit.NumberColumn("price", func(r row) float64 { return r.Price }),
	)
}

func sample() []row {
	return []row{
		{Symbol: "WTEC", Price: 310},
		{Symbol: "WFIN", Price: 142},
		{Symbol: "WBRD", Price: 402},
	}
}

func TestSort(t *testing.T) {
	table := newTable()

	rows := sample()
	table.Sort(rows, "price", "asc")
	assert.Equal(t, []string{"WFIN", "WTEC", "WBRD"}, symbols(rows))

	table.Sort(rows, "price", "desc")
	assert.Equal(t, []string{"WBRD", "WTEC", "WFIN"}, symbols(rows))

	table.Sort(rows, "symbol", "asc")
	assert.Equal(t, []string{"WBRD", "WFIN", "WTEC"}, symbols(rows))
}

func TestSortUnknownKeyFallsBack(t *testing.T) {
	table := newTable()

	rows := sample()
	table.Sort(rows, "bogus", "asc")
	// First registered column is symbol.
	assert.Equal(t, []string{"WBRD", "WFIN", "WTEC"}, symbols(rows))
}

func TestSortStable(t *testing.T) {
	table := newTable()

	rows := []row{
		{Symbol: "AAA", Price: 100},
		{Symbol: "BBB", Price: 100},
		{Symbol: "CCC", Price: 100},
	}
	table.Sort(rows, "price", "asc")
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, symbols(rows))

	table.Sort(rows, "price", "desc")
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, symbols(rows))
}

func TestFilter(t *testing.T) {
	table := newTable()

	assert.Equal(t, []string{"WTEC"}, symbols(table.Filter(sample(), "tec")))
	assert.Equal(t, []string{"WTEC", "WFIN", "WBRD"}, symbols(table.Filter(sample(), "  W  ")[:3]))
	assert.Empty(t, table.Filter(sample(), "zzz"))

	// Numeric cells are searchable too.
	assert.Equal(t, []string{"WBRD"}, symbols(table.Filter(sample(), "402")))

	// Empty query passes everything through.
	assert.Len(t, table.Filter(sample(), ""), 3)
}

func TestVisibleColumns(t *testing.T) {
	table := newTable()

	assert.Equal(t, []string{"symbol", "price"}, table.VisibleColumns(nil))
	assert.Equal(t, []string{"price"}, table.VisibleColumns([]string{"price", "bogus"}))
	assert.Equal(t, []string{"symbol", "price"}, table.VisibleColumns([]string{"bogus"}))
}

func symbols(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Symbol
	}
	return out
}
