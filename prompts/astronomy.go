package prompts

import (
	"cmp"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Astronomy queries the constellations and stars datasets together.
type Astronomy struct{ set *datasets.Set }

// StarsInConstellations returns the stars named by any constellation, in
// star dataset order.
func (a Astronomy) StarsInConstellations() []datasets.Star {
	named := make(map[string]bool)
	for _, c := range a.set.Constellations() {
		for _, s := range c.Stars {
			named[s] = true
		}
	}
	out := []datasets.Star{}
	for _, s := range a.set.Stars() {
		if named[s.Name] {
			out = append(out, s)
		}
	}
	return out
}

// StarsByColor groups stars by color.
func (a Astronomy) StarsByColor() *engine.OrderedMap[string, []datasets.Star] {
	return engine.GroupBy(a.set.Stars(), func(s datasets.Star) string { return s.Color })
}

// ConstellationsStarsExistIn lists the constellation of each star, brightest
// star first. Stars outside any constellation are skipped; a constellation
// appears once per star.
func (a Astronomy) ConstellationsStarsExistIn() []string {
	byBrightness := engine.SortedCopy(a.set.Stars(), func(x, y datasets.Star) int {
		return cmp.Compare(x.VisualMagnitude, y.VisualMagnitude)
	})
	out := []string{}
	for _, s := range byBrightness {
		if s.Constellation != "" {
			out = append(out, s.Constellation)
		}
	}
	return out
}

func (a Astronomy) queries() []engine.Query {
	return []engine.Query{
		query("astronomy", "starsInConstellations", "stars belonging to a listed constellation", a.StarsInConstellations),
		query("astronomy", "starsByColor", "color → stars", a.StarsByColor),
		query("astronomy", "constellationsStarsExistIn", "constellation of each star, brightest first", a.ConstellationsStarsExistIn),
	}
}
