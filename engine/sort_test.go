package engine

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedCopy(t *testing.T) {
	in := []sale{{"b", "x", 2}, {"a", "y", 1}, {"c", "z", 2}, {"d", "w", 1}}
	byUnits := func(a, b sale) int { return cmp.Compare(a.Units, b.Units) }

	got := SortedCopy(in, byUnits)

	assert.Equal(t, []string{"a", "d", "b", "c"}, Map(got, func(s sale) string { return s.Region }), "ties keep input order")
	assert.Equal(t, "b", in[0].Region, "input untouched")
	assert.NotNil(t, SortedCopy([]sale(nil), byUnits))
}

func TestMaxBy(t *testing.T) {
	in := []sale{{"a", "", 1}, {"b", "", 3}, {"c", "", 3}}
	byUnits := func(a, b sale) int { return cmp.Compare(a.Units, b.Units) }

	got, ok := MaxBy(in, byUnits)
	assert.True(t, ok)
	assert.Equal(t, "b", got.Region, "first of the tied maxima")

	got, ok = MaxBy([]sale{}, byUnits)
	assert.False(t, ok)
	assert.Equal(t, sale{}, got)
}
