package flower

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForMonthKnown(t *testing.T) {
	assert.Equal(t, "rose", ForMonth("june").Name)
	assert.Equal(t, "marigold", ForMonth("October").Name)
	assert.Equal(t, "carnation", ForMonth("  JANUARY ").Name)
}

func TestForMonthFallback(t *testing.T) {
	assert.Equal(t, Default, ForMonth(""))
	assert.Equal(t, Default, ForMonth("smarch"))
}

func TestMonthsCoverCatalog(t *testing.T) {
	names := Months()
	assert.Len(t, names, 12)
	for _, m := range names {
		f := ForMonth(m)
		assert.NotEqual(t, Default.Name, f.Name, "month %q should have its own flower", m)
		assert.NotEmpty(t, f.Blossom)
		assert.NotEmpty(t, f.Stem)
	}
}

func TestNextCycles(t *testing.T) {
	assert.Equal(t, "february", Next("january"))
	assert.Equal(t, "january", Next("december"))
	assert.Equal(t, "january", Next(""))
	assert.Equal(t, "january", Next("smarch"))
}
