package prompts

import (
	"cmp"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Kitties queries the kitties dataset.
type Kitties struct{ set *datasets.Set }

// OrangeKittyNames returns the names of the orange kitties.
func (k Kitties) OrangeKittyNames() []string {
	orange := engine.ApplyFilters(kittyView.Bind(k.set.Kitties()), engine.Only("color", "orange"))
	return engine.Map(engine.Materialize[datasets.Kitty](orange), func(c datasets.Kitty) string { return c.Name })
}

// SortByAge returns the kitties oldest first. Equal ages keep dataset order.
func (k Kitties) SortByAge() []datasets.Kitty {
	return engine.SortedCopy(k.set.Kitties(), func(a, b datasets.Kitty) int {
		return cmp.Compare(b.Age, a.Age)
	})
}

// GrowUp returns every kitty two years older.
func (k Kitties) GrowUp() []datasets.Kitty {
	return engine.Map(k.set.Kitties(), func(c datasets.Kitty) datasets.Kitty {
		c.Age += 2
		return c
	})
}

func (k Kitties) queries() []engine.Query {
	return []engine.Query{
		query("kitties", "orangeKittyNames", "names of the orange kitties", k.OrangeKittyNames),
		query("kitties", "sortByAge", "kitties sorted oldest first", k.SortByAge),
		query("kitties", "growUp", "kitties two years older", k.GrowUp),
	}
}
