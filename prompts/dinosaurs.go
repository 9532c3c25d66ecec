package prompts

import (
	"cmp"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Dinosaurs queries the dinosaurs, humans and movies datasets together.
type Dinosaurs struct{ set *datasets.Set }

// UncastActor is a human who is in no movie's cast.
type UncastActor struct {
	Name                string `json:"name" yaml:"name"`
	Nationality         string `json:"nationality" yaml:"nationality"`
	IMDBStarMeterRating int    `json:"imdbStarMeterRating" yaml:"imdbStarMeterRating"`
}

// ActorAges lists the age of one actor in each movie they were cast in.
type ActorAges struct {
	Name string `json:"name" yaml:"name"`
	Ages []int  `json:"ages" yaml:"ages"`
}

// CountAwesomeDinosaurs maps every movie title to its number of awesome
// dinosaurs. A movie without any reports 0.
func (d Dinosaurs) CountAwesomeDinosaurs() *engine.OrderedMap[string, int] {
	dinos := engine.Index(d.set.Dinosaurs(), func(x datasets.Dinosaur) string { return x.Name })
	out := engine.NewOrderedMap[string, int]()
	for _, m := range d.set.Movies() {
		n := 0
		for _, name := range m.Dinos {
			for _, dino := range dinos[name] {
				if dino.IsAwesome {
					n++
				}
			}
		}
		out.Set(m.Title, n)
	}
	return out
}

// AverageAgePerMovie maps director → title → the cast's mean age in the
// release year, rounded down.
func (d Dinosaurs) AverageAgePerMovie() *engine.OrderedMap[string, *engine.OrderedMap[string, int]] {
	out := engine.NewOrderedMap[string, *engine.OrderedMap[string, int]]()
	for _, m := range d.movieCast() {
		total := 0
		for _, h := range m.Right {
			total += m.Left.YearReleased - h.YearBorn
		}
		byTitle, ok := out.Get(m.Left.Director)
		if !ok {
			byTitle = engine.NewOrderedMap[string, int]()
			out.Set(m.Left.Director, byTitle)
		}
		byTitle.Set(m.Left.Title, floorDiv(total, len(m.Right)))
	}
	return out
}

// UncastActors returns the humans in no cast, sorted by nationality.
func (d Dinosaurs) UncastActors() []UncastActor {
	uncast := engine.AntiJoin(d.set.Humans(), d.set.Movies(), humanName,
		func(m datasets.Movie) []string { return m.Cast })
	sorted := engine.SortedCopy(uncast, func(a, b datasets.Human) int {
		return cmp.Compare(a.Nationality, b.Nationality)
	})
	return engine.Map(sorted, func(h datasets.Human) UncastActor {
		return UncastActor{Name: h.Name, Nationality: h.Nationality, IMDBStarMeterRating: h.IMDBStarMeterRating}
	})
}

// ActorsAgesInMovies lists, for every cast human in dataset order, their age
// in each of their movies in movie order.
func (d Dinosaurs) ActorsAgesInMovies() []ActorAges {
	pairs := engine.FlatMap(d.movieCast(), func(m engine.Match[datasets.Movie, datasets.Human]) []engine.Pair[string, int] {
		return engine.Map(m.Right, func(h datasets.Human) engine.Pair[string, int] {
			return engine.Pair[string, int]{Key: h.Name, Value: m.Left.YearReleased - h.YearBorn}
		})
	})
	ages := engine.Aggregate(pairs, engine.PairKey[string, int], engine.PairValue[string, int], engine.AppendAll[int]())

	out := []ActorAges{}
	for _, h := range d.set.Humans() {
		if a, ok := ages.Get(h.Name); ok {
			out = append(out, ActorAges{Name: h.Name, Ages: a})
		}
	}
	return out
}

func (d Dinosaurs) movieCast() []engine.Match[datasets.Movie, datasets.Human] {
	return engine.JoinMany(d.set.Movies(), d.set.Humans(),
		func(m datasets.Movie) []string { return m.Cast },
		humanName)
}

func humanName(h datasets.Human) string { return h.Name }

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (d Dinosaurs) queries() []engine.Query {
	return []engine.Query{
		query("dinosaurs", "countAwesomeDinosaurs", "movie → number of awesome dinosaurs", d.CountAwesomeDinosaurs),
		query("dinosaurs", "averageAgePerMovie", "director → movie → average cast age at release", d.AverageAgePerMovie),
		query("dinosaurs", "uncastActors", "humans not cast in any movie, by nationality", d.UncastActors),
		query("dinosaurs", "actorsAgesInMovies", "cast members with their age in each movie", d.ActorsAgesInMovies),
	}
}
