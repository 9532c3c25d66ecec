package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// NationalParks queries the national parks dataset.
type NationalParks struct{ set *datasets.Set }

// ParkVisitList splits parks by whether they were visited.
type ParkVisitList struct {
	ParksToVisit []string `json:"parksToVisit" yaml:"parksToVisit"`
	ParksVisited []string `json:"parksVisited" yaml:"parksVisited"`
}

// GetParkVisitList returns park names split into to-visit and visited.
func (n NationalParks) GetParkVisitList() ParkVisitList {
	view := parkView.Bind(n.set.Parks())
	names := func(visited string) []string {
		parks := engine.Materialize[datasets.Park](engine.ApplyFilters(view, engine.Only("visited", visited)))
		return engine.Map(parks, func(p datasets.Park) string { return p.Name })
	}
	return ParkVisitList{ParksToVisit: names("false"), ParksVisited: names("true")}
}

// GetParkInEachState pairs each state with its park, e.g. [{Colorado: Rocky Mountain}, ...].
func (n NationalParks) GetParkInEachState() []engine.Entry[string] {
	return engine.Map(n.set.Parks(), func(p datasets.Park) engine.Entry[string] {
		return engine.Entry[string]{Key: p.Location, Value: p.Name}
	})
}

// GetParkActivities lists every activity once, in first-seen order.
func (n NationalParks) GetParkActivities() []string {
	activities := engine.FlatMap(n.set.Parks(), func(p datasets.Park) []string { return p.Activities })
	return engine.Unique(activities, identity)
}

func (n NationalParks) queries() []engine.Query {
	return []engine.Query{
		query("nationalParks", "getParkVisitList", "parks to visit and parks visited", n.GetParkVisitList),
		query("nationalParks", "getParkInEachState", "state → park", n.GetParkInEachState),
		query("nationalParks", "getParkActivities", "unique park activities", n.GetParkActivities),
	}
}
