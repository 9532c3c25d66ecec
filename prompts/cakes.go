package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Cakes queries the cakes dataset.
type Cakes struct{ set *datasets.Set }

// CakeStock is the stock count of one flavor.
type CakeStock struct {
	Flavor  string `json:"flavor" yaml:"flavor"`
	InStock int    `json:"inStock" yaml:"inStock"`
}

// StockPerCake returns the stock of every cake flavor.
func (c Cakes) StockPerCake() []CakeStock {
	return engine.Map(c.set.Cakes(), func(cake datasets.Cake) CakeStock {
		return CakeStock{Flavor: cake.CakeFlavor, InStock: cake.InStock}
	})
}

// OnlyInStock returns the cakes with at least one in stock.
func (c Cakes) OnlyInStock() []datasets.Cake {
	view := cakeView.Bind(c.set.Cakes())
	inStock := engine.Where(view, func(i int) bool { return view.Measure(i, "inStock") > 0 })
	return nonNil(engine.Materialize[datasets.Cake](inStock))
}

// TotalInventory is the number of cakes in stock across all flavors.
func (c Cakes) TotalInventory() int {
	return int(engine.SumMeasure(cakeView.Bind(c.set.Cakes()), "inStock"))
}

// AllToppings lists every topping once, in first-seen order.
func (c Cakes) AllToppings() []string {
	return engine.Unique(engine.FlatMap(c.set.Cakes(), cakeToppings), identity)
}

// GroceryList counts how many cakes use each topping.
func (c Cakes) GroceryList() *engine.OrderedMap[string, int] {
	return engine.CountBy(engine.FlatMap(c.set.Cakes(), cakeToppings), identity)
}

func cakeToppings(c datasets.Cake) []string { return c.Toppings }

func (c Cakes) queries() []engine.Query {
	return []engine.Query{
		query("cakes", "stockPerCake", "flavor and stock of every cake", c.StockPerCake),
		query("cakes", "onlyInStock", "cakes with stock left", c.OnlyInStock),
		query("cakes", "totalInventory", "total cakes in stock", c.TotalInventory),
		query("cakes", "allToppings", "unique toppings across cakes", c.AllToppings),
		query("cakes", "groceryList", "topping → number of cakes using it", c.GroceryList),
	}
}
