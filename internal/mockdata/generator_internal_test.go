package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaySeedMixesDayIndex(t *testing.T) {
	g := New(42)

	seen := make(map[int64]bool)
	for day := 0; day < 1024; day++ {
		s := g.daySeed("HUNT", day)
		assert.False(t, seen[s], "seed collision at day %d", day)
		seen[s] = true
	}

	assert.Equal(t, g.daySeed("HUNT", 500), New(42).daySeed("HUNT", 500))
	assert.NotEqual(t, g.daySeed("HUNT", 500), g.daySeed("WTEC", 500))
}
