package prompts

import (
	"cmp"
	"fmt"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Weather queries the weather dataset.
type Weather struct{ set *datasets.Set }

// GetAverageTemps returns the mean of high and low for each location.
func (w Weather) GetAverageTemps() []float64 {
	return engine.Map(w.set.Weather(), func(r datasets.Weather) float64 {
		return (r.Temperature.High + r.Temperature.Low) / 2
	})
}

// FindSunnySpots describes every sunny or mostly sunny location, e.g.
// "Atlanta, Georgia is sunny.".
func (w Weather) FindSunnySpots() []string {
	sunny := engine.ApplyFilters(weatherView.Bind(w.set.Weather()), engine.Only("type", "sunny", "mostly sunny"))
	return engine.Map(engine.Materialize[datasets.Weather](sunny), func(r datasets.Weather) string {
		return fmt.Sprintf("%s is %s.", r.Location, r.Type)
	})
}

// FindHighestHumidity returns the most humid record. Ties go to the first;
// an empty dataset yields the zero record.
func (w Weather) FindHighestHumidity() datasets.Weather {
	r, _ := engine.MaxBy(w.set.Weather(), func(a, b datasets.Weather) int {
		return cmp.Compare(a.Humidity, b.Humidity)
	})
	return r
}

func (w Weather) queries() []engine.Query {
	return []engine.Query{
		query("weather", "getAverageTemps", "average temperature per location", w.GetAverageTemps),
		query("weather", "findSunnySpots", "sunny locations", w.FindSunnySpots),
		query("weather", "findHighestHumidity", "most humid location", w.FindHighestHumidity),
	}
}
