package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Breweries queries the breweries dataset.
type Breweries struct{ set *datasets.Set }

// BreweryBeerCount is the number of beers one brewery offers.
type BreweryBeerCount struct {
	Name      string `json:"name" yaml:"name"`
	BeerCount int    `json:"beerCount" yaml:"beerCount"`
}

// GetBeerCount is the total number of beers across breweries.
func (b Breweries) GetBeerCount() int {
	return b.beers().Len()
}

// GetBreweryBeerCount returns the beer count of each brewery.
func (b Breweries) GetBreweryBeerCount() []BreweryBeerCount {
	return engine.Map(b.set.Breweries(), func(br datasets.Brewery) BreweryBeerCount {
		return BreweryBeerCount{Name: br.Name, BeerCount: len(br.Beers)}
	})
}

// FindHighestAbvBeer returns the strongest beer. Ties go to the first;
// no beers yields the zero Beer.
func (b Breweries) FindHighestAbvBeer() datasets.Beer {
	view := b.beers()
	beer, _ := engine.At[datasets.Beer](view, engine.ArgMax(view, "abv"))
	return beer
}

// beers reads every brewery's beer list as one view, brewery order first.
func (b Breweries) beers() engine.RecordView {
	return engine.Concat(engine.Map(b.set.Breweries(), func(br datasets.Brewery) engine.RecordView {
		return beerView.Bind(br.Beers)
	})...)
}

func (b Breweries) queries() []engine.Query {
	return []engine.Query{
		query("breweries", "getBeerCount", "total number of beers", b.GetBeerCount),
		query("breweries", "getBreweryBeerCount", "beer count per brewery", b.GetBreweryBeerCount),
		query("breweries", "findHighestAbvBeer", "beer with the highest ABV", b.FindHighestAbvBeer),
	}
}
