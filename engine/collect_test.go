package engine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func firstLetter(s string) string { return s[:1] }

func words() []string {
	return []string{"apple", "avocado", "banana", "apple", "blueberry"}
}

func TestAggregate_Policies(t *testing.T) {
	in := words()

	t.Run("append all", func(t *testing.T) {
		got := GroupBy(in, firstLetter)
		assert.Equal(t, []string{"a", "b"}, got.Keys())
		assert.Equal(t, [][]string{{"apple", "avocado", "apple"}, {"banana", "blueberry"}}, got.Values())
	})

	t.Run("append unique", func(t *testing.T) {
		got := Aggregate(in, firstLetter, identity[string], AppendUnique[string]())
		a, _ := got.Get("a")
		assert.Equal(t, []string{"apple", "avocado"}, a)
	})

	t.Run("count", func(t *testing.T) {
		got := CountBy(in, firstLetter)
		assert.Equal(t, map[string]int{"a": 3, "b": 2}, got.Map())
	})

	t.Run("sum", func(t *testing.T) {
		got := Aggregate(in, firstLetter, func(s string) int { return len(s) }, Sum[int]())
		assert.Equal(t, []int{17, 15}, got.Values())
	})

	t.Run("pairs", func(t *testing.T) {
		pairs := []Pair[string, float64]{{"x", 1.5}, {"y", 2}, {"x", 0.5}}
		got := Aggregate(pairs, PairKey[string, float64], PairValue[string, float64], Sum[float64]())
		assert.Equal(t, []string{"x", "y"}, got.Keys())
		assert.Equal(t, []float64{2, 2}, got.Values())
	})

	t.Run("leaves input untouched", func(t *testing.T) {
		assert.Equal(t, words(), in)
	})
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"apple", "avocado", "banana", "blueberry"}, Unique(words(), identity[string]))
	assert.Equal(t, []string{"a", "b"}, Unique(words(), firstLetter))
	assert.Empty(t, Unique([]string(nil), firstLetter))
}

func TestFlatMap(t *testing.T) {
	got := FlatMap(words()[:3], func(s string) []string { return strings.Split(s, "a") })
	if diff := cmp.Diff([]string{"", "pple", "", "voc", "do", "b", "n", "n", ""}, got); diff != "" {
		t.Errorf("FlatMap mismatch (-want +got):\n%s", diff)
	}

	empty := FlatMap([]string{"x"}, func(string) []int { return nil })
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMap(t *testing.T) {
	assert.Equal(t, []int{5, 7}, Map([]string{"apple", "avocado"}, func(s string) int { return len(s) }))
	assert.Equal(t, []int{}, Map([]string{}, func(s string) int { return len(s) }))
}
