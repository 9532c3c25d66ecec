package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// ============================================================================
// TURING
// ============================================================================

func TestTuring(t *testing.T) {
	p := fixtures(t)

	diff(t, []InstructorStudents{
		{Name: "Pam", StudentCount: 21},
		{Name: "Brittany", StudentCount: 21},
		{Name: "Nathaniel", StudentCount: 30},
		{Name: "Robbie", StudentCount: 18},
		{Name: "Leta", StudentCount: 18},
		{Name: "Travis", StudentCount: 18},
		{Name: "Louisa", StudentCount: 18},
		{Name: "Christie", StudentCount: 30},
		{Name: "Will", StudentCount: 30},
	}, p.Turing.StudentsForEachInstructor())

	ratios := p.Turing.StudentsPerInstructor()
	assert.Equal(t, []string{"cohort1806", "cohort1804", "cohort1803", "cohort1801"}, ratios.Keys())
	assert.Equal(t, []float64{9, 10.5, 10, 9}, ratios.Values())

	modules := p.Turing.ModulesPerTeacher()
	assert.Equal(t, []string{"Pam", "Brittany", "Nathaniel", "Robbie", "Leta", "Travis", "Louisa", "Christie", "Will"}, modules.Keys())
	diff(t, map[string][]int{
		"Pam":       {2, 4},
		"Brittany":  {2, 4},
		"Nathaniel": {2, 4},
		"Robbie":    {4},
		"Leta":      {2, 4},
		"Travis":    {1, 2, 3, 4},
		"Louisa":    {1, 2, 3, 4},
		"Christie":  {1, 2, 3, 4},
		"Will":      {1, 2, 3, 4},
	}, modules.Map())

	curriculum := p.Turing.CurriculumPerTeacher()
	assert.Equal(t, []string{"html", "css", "javascript", "recursion", "scope", "oop", "mixins", "react", "redux", "pwas", "node"}, curriculum.Keys())
	diff(t, map[string][]string{
		"html":       {"Travis", "Louisa"},
		"css":        {"Travis", "Louisa"},
		"javascript": {"Travis", "Louisa", "Christie", "Will"},
		"recursion":  {"Pam", "Leta"},
		"scope":      {"Pam", "Nathaniel", "Will"},
		"oop":        {"Brittany", "Nathaniel", "Will"},
		"mixins":     {"Nathaniel"},
		"react":      {"Christie", "Will"},
		"redux":      {"Louisa", "Will"},
		"pwas":       {"Brittany", "Robbie", "Leta"},
		"node":       {"Pam", "Robbie", "Leta", "Louisa", "Christie"},
	}, curriculum.Map())
}

func TestInstructorCohortJoinScenario(t *testing.T) {
	p := New(datasets.NewSet(datasets.Data{
		Instructors: []datasets.Instructor{{Name: "Pam", Module: 2}},
		Cohorts: []datasets.Cohort{
			{Cohort: 1804, Module: 2, StudentCount: 21},
			{Cohort: 1801, Module: 4, StudentCount: 18},
		},
	}))
	assert.Equal(t, []InstructorStudents{{Name: "Pam", StudentCount: 21}}, p.Turing.StudentsForEachInstructor())

	// module 4 has no instructor, so its cohort is left out
	assert.Equal(t, []string{"cohort1804"}, p.Turing.StudentsPerInstructor().Keys())
}

func TestUnmatchedEntitiesAreOmitted(t *testing.T) {
	p := New(datasets.NewSet(datasets.Data{
		Instructors: []datasets.Instructor{{Name: "Solo", Module: 7, Teaches: []string{"go"}}},
		Cohorts:     []datasets.Cohort{{Cohort: 1, Module: 1, StudentCount: 10, Curriculum: []string{"html"}}},
		Bosses:      []datasets.Boss{{Name: "Lonely"}},
	}))
	assert.Empty(t, p.Turing.StudentsForEachInstructor())
	assert.Zero(t, p.Turing.ModulesPerTeacher().Len())
	assert.Zero(t, p.Turing.CurriculumPerTeacher().Len())
	assert.Empty(t, p.Bosses.BossLoyalty())
}

func TestCurriculumListsAreUnique(t *testing.T) {
	for topic, names := range fixtures(t).Turing.CurriculumPerTeacher().All() {
		assert.ElementsMatch(t, engine.Unique(names, identity), names, topic)
	}
}

// ============================================================================
// BOSSES / ASTRONOMY / ULTIMA
// ============================================================================

func TestBossLoyalty(t *testing.T) {
	diff(t, []BossLoyalty{
		{BossName: "Jafar", SidekickLoyalty: 3},
		{BossName: "Ursula", SidekickLoyalty: 20},
		{BossName: "Scar", SidekickLoyalty: 16},
	}, fixtures(t).Bosses.BossLoyalty())
}

func TestAstronomy(t *testing.T) {
	p := fixtures(t)

	names := engine.Map(p.Astronomy.StarsInConstellations(), func(s datasets.Star) string { return s.Name })
	assert.Equal(t, []string{"Rigel", "Betelgeuse", "Dubhe", "Polaris"}, names)

	byColor := p.Astronomy.StarsByColor()
	assert.Equal(t, []string{"blue", "white", "yellow", "orange", "red"}, byColor.Keys())
	counts := map[string]int{}
	for color, stars := range byColor.All() {
		counts[color] = len(stars)
		for _, s := range stars {
			assert.Equal(t, color, s.Color)
		}
	}
	assert.Equal(t, map[string]int{"blue": 5, "white": 2, "yellow": 2, "orange": 1, "red": 1}, counts)

	assert.Equal(t, []string{
		"Canis Major", "Carina", "Boötes", "Auriga", "Orion",
		"Lyra", "Canis Minor", "The Plow", "Orion", "The Little Dipper",
	}, p.Astronomy.ConstellationsStarsExistIn())
}

func TestUltima(t *testing.T) {
	p := fixtures(t)

	assert.Equal(t, 113, p.Ultima.TotalDamage())
	diff(t, []engine.Entry[WeaponTotals]{
		{Key: "Avatar", Value: WeaponTotals{Damage: 27, Range: 24}},
		{Key: "Iolo", Value: WeaponTotals{Damage: 9, Range: 20}},
		{Key: "Shamino", Value: WeaponTotals{Damage: 15, Range: 12}},
		{Key: "Dupre", Value: WeaponTotals{Damage: 23, Range: 7}},
		{Key: "Jaana", Value: WeaponTotals{Damage: 18, Range: 21}},
		{Key: "Geoffrey", Value: WeaponTotals{Damage: 21, Range: 14}},
	}, p.Ultima.CharactersByTotal())
}

// ============================================================================
// DINOSAURS
// ============================================================================

func TestCountAwesomeDinosaurs(t *testing.T) {
	got := fixtures(t).Dinosaurs.CountAwesomeDinosaurs()
	assert.Equal(t, []string{
		"Jurassic Park", "The Lost World: Jurassic Park", "Jurassic Park III",
		"Jurassic World", "Jurassic World: Fallen Kingdom",
	}, got.Keys())
	assert.Equal(t, []int{5, 8, 9, 11, 18}, got.Values())
}

func TestCountAwesomeDinosaurs_EveryMovieIsKeyed(t *testing.T) {
	p := New(datasets.NewSet(datasets.Data{
		Dinosaurs: []datasets.Dinosaur{{Name: "Dull", IsAwesome: false}, {Name: "Rex", IsAwesome: true}},
		Movies: []datasets.Movie{
			{Title: "Plain", Dinos: []string{"Dull"}},
			{Title: "Empty"},
			{Title: "Mixed", Dinos: []string{"Rex", "Dull", "Rex"}},
		},
	}))

	got := p.Dinosaurs.CountAwesomeDinosaurs()
	assert.Equal(t, []string{"Plain", "Empty", "Mixed"}, got.Keys())
	assert.Equal(t, []int{0, 0, 2}, got.Values())
}

func TestAverageAgePerMovie(t *testing.T) {
	got := fixtures(t).Dinosaurs.AverageAgePerMovie()
	assert.Equal(t, []string{"Steven Spielberg", "Joe Johnston", "Colin Trevorrow", "J. A. Bayona"}, got.Keys())

	flat := map[string]map[string]int{}
	for director, movies := range got.All() {
		flat[director] = movies.Map()
	}
	diff(t, map[string]map[string]int{
		"Steven Spielberg": {"Jurassic Park": 34, "The Lost World: Jurassic Park": 37},
		"Joe Johnston":     {"Jurassic Park III": 44},
		"Colin Trevorrow":  {"Jurassic World": 56},
		"J. A. Bayona":     {"Jurassic World: Fallen Kingdom": 59},
	}, flat)

	spielberg, _ := got.Get("Steven Spielberg")
	assert.Equal(t, []string{"Jurassic Park", "The Lost World: Jurassic Park"}, spielberg.Keys())
}

func TestUncastActors(t *testing.T) {
	diff(t, []UncastActor{
		{Name: "Justin Duncan", Nationality: "Alien", IMDBStarMeterRating: 0},
		{Name: "Karin Ohman", Nationality: "Chinese", IMDBStarMeterRating: 0},
		{Name: "Tom Wilhoit", Nationality: "Kiwi", IMDBStarMeterRating: 1},
		{Name: "Jeo D", Nationality: "Martian", IMDBStarMeterRating: 0},
	}, fixtures(t).Dinosaurs.UncastActors())
}

func TestActorsAgesInMovies(t *testing.T) {
	diff(t, []ActorAges{
		{Name: "Sam Neill", Ages: []int{46, 54}},
		{Name: "Laura Dern", Ages: []int{26, 34}},
		{Name: "Jeff Goldblum", Ages: []int{41, 45, 63, 66}},
		{Name: "Richard Attenborough", Ages: []int{70, 74, 92, 95}},
		{Name: "Ariana Richards", Ages: []int{14, 18}},
		{Name: "Joseph Mazello", Ages: []int{10, 14}},
		{Name: "BD Wong", Ages: []int{33, 55, 58}},
		{Name: "Chris Pratt", Ages: []int{36, 39}},
		{Name: "Bryce Dallas Howard", Ages: []int{34, 37}},
	}, fixtures(t).Dinosaurs.ActorsAgesInMovies())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 34, floorDiv(240, 7))
	assert.Equal(t, -2, floorDiv(-3, 2))
	assert.Equal(t, 2, floorDiv(4, 2))
}
