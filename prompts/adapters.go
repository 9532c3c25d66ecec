package prompts

import (
	"strconv"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Record views used by the filter/aggregate queries. Declared once, bound
// per call.
var (
	kittyView = engine.NewDomainAdapter[datasets.Kitty]().
		Dimension("name", func(k datasets.Kitty) string { return k.Name }).
		Dimension("color", func(k datasets.Kitty) string { return k.Color }).
		Measure("age", func(k datasets.Kitty) float64 { return float64(k.Age) })

	cakeView = engine.NewDomainAdapter[datasets.Cake]().
		Dimension("cakeFlavor", func(c datasets.Cake) string { return c.CakeFlavor }).
		Dimension("frosting", func(c datasets.Cake) string { return c.Frosting }).
		Measure("inStock", func(c datasets.Cake) float64 { return float64(c.InStock) })

	classroomView = engine.NewDomainAdapter[datasets.Classroom]().
		Dimension("roomLetter", func(c datasets.Classroom) string { return c.RoomLetter }).
		Dimension("program", func(c datasets.Classroom) string { return c.Program }).
		Measure("capacity", func(c datasets.Classroom) float64 { return float64(c.Capacity) })

	bookView = engine.NewDomainAdapter[datasets.Book]().
		Dimension("title", func(b datasets.Book) string { return b.Title }).
		Dimension("genre", func(b datasets.Book) string { return b.Genre }).
		Measure("published", func(b datasets.Book) float64 { return float64(b.Published) })

	weatherView = engine.NewDomainAdapter[datasets.Weather]().
		Dimension("location", func(w datasets.Weather) string { return w.Location }).
		Dimension("type", func(w datasets.Weather) string { return w.Type }).
		Measure("humidity", func(w datasets.Weather) float64 { return float64(w.Humidity) })

	parkView = engine.NewDomainAdapter[datasets.Park]().
		Dimension("name", func(p datasets.Park) string { return p.Name }).
		Dimension("location", func(p datasets.Park) string { return p.Location }).
		Dimension("visited", func(p datasets.Park) string { return strconv.FormatBool(p.Visited) })

	beerView = engine.NewDomainAdapter[datasets.Beer]().
		Dimension("name", func(b datasets.Beer) string { return b.Name }).
		Dimension("type", func(b datasets.Beer) string { return b.Type }).
		Measure("abv", func(b datasets.Beer) float64 { return b.ABV }).
		Measure("ibu", func(b datasets.Beer) float64 { return float64(b.IBU) })
)
