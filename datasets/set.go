package datasets

import "slices"

// ============================================================================
// SET — the loaded, read-only datasets
// ============================================================================
// A Set is built once (Load, or NewSet in tests) and handed to the query
// collections. Accessors return deep copies (nested lists included), so a
// caller that sorts or edits what it got back cannot disturb later queries.
// ============================================================================

// Data is the decoded form of every fixture collection. Each fixture file
// fills the fields matching its top-level keys.
type Data struct {
	Kitties        []Kitty         `yaml:"kitties"`
	Clubs          []Club          `yaml:"clubs"`
	Mods           []Mod           `yaml:"mods"`
	Cakes          []Cake          `yaml:"cakes"`
	Classrooms     []Classroom     `yaml:"classrooms"`
	Books          []Book          `yaml:"books"`
	Weather        []Weather       `yaml:"weather"`
	Parks          []Park          `yaml:"nationalParks"`
	Breweries      []Brewery       `yaml:"breweries"`
	Instructors    []Instructor    `yaml:"instructors"`
	Cohorts        []Cohort        `yaml:"cohorts"`
	Bosses         []Boss          `yaml:"bosses"`
	Sidekicks      []Sidekick      `yaml:"sidekicks"`
	Constellations []Constellation `yaml:"constellations"`
	Stars          []Star          `yaml:"stars"`
	Weapons        []Weapon        `yaml:"weapons"`
	Characters     []Character     `yaml:"characters"`
	Dinosaurs      []Dinosaur      `yaml:"dinosaurs"`
	Humans         []Human         `yaml:"humans"`
	Movies         []Movie         `yaml:"movies"`
}

// Set holds immutable datasets. The zero value is an empty Set.
type Set struct {
	data Data
}

// NewSet wraps a deep copy of d; d may be reused.
// No referential checks are made, so tests can build partial sets.
func NewSet(d Data) *Set {
	return &Set{data: d.clone()}
}

func (s *Set) Kitties() []Kitty                { return slices.Clone(s.data.Kitties) }
func (s *Set) Clubs() []Club                   { return cloneAll(s.data.Clubs) }
func (s *Set) Mods() []Mod                     { return slices.Clone(s.data.Mods) }
func (s *Set) Cakes() []Cake                   { return cloneAll(s.data.Cakes) }
func (s *Set) Classrooms() []Classroom         { return slices.Clone(s.data.Classrooms) }
func (s *Set) Books() []Book                   { return slices.Clone(s.data.Books) }
func (s *Set) Weather() []Weather              { return slices.Clone(s.data.Weather) }
func (s *Set) Parks() []Park                   { return cloneAll(s.data.Parks) }
func (s *Set) Breweries() []Brewery            { return cloneAll(s.data.Breweries) }
func (s *Set) Instructors() []Instructor       { return cloneAll(s.data.Instructors) }
func (s *Set) Cohorts() []Cohort               { return cloneAll(s.data.Cohorts) }
func (s *Set) Bosses() []Boss                  { return cloneAll(s.data.Bosses) }
func (s *Set) Sidekicks() []Sidekick           { return slices.Clone(s.data.Sidekicks) }
func (s *Set) Constellations() []Constellation { return cloneAll(s.data.Constellations) }
func (s *Set) Stars() []Star                   { return slices.Clone(s.data.Stars) }
func (s *Set) Weapons() []Weapon               { return slices.Clone(s.data.Weapons) }
func (s *Set) Characters() []Character         { return cloneAll(s.data.Characters) }
func (s *Set) Dinosaurs() []Dinosaur           { return slices.Clone(s.data.Dinosaurs) }
func (s *Set) Humans() []Human                 { return slices.Clone(s.data.Humans) }
func (s *Set) Movies() []Movie                 { return cloneAll(s.data.Movies) }

// Counts reports the number of records per collection key.
func (s *Set) Counts() map[string]int {
	d := s.data
	return map[string]int{
		"kitties":        len(d.Kitties),
		"clubs":          len(d.Clubs),
		"mods":           len(d.Mods),
		"cakes":          len(d.Cakes),
		"classrooms":     len(d.Classrooms),
		"books":          len(d.Books),
		"weather":        len(d.Weather),
		"nationalParks":  len(d.Parks),
		"breweries":      len(d.Breweries),
		"instructors":    len(d.Instructors),
		"cohorts":        len(d.Cohorts),
		"bosses":         len(d.Bosses),
		"sidekicks":      len(d.Sidekicks),
		"constellations": len(d.Constellations),
		"stars":          len(d.Stars),
		"weapons":        len(d.Weapons),
		"characters":     len(d.Characters),
		"dinosaurs":      len(d.Dinosaurs),
		"humans":         len(d.Humans),
		"movies":         len(d.Movies),
	}
}

// ── Deep copies ──────────────────────────────────────────────────────────────
// Records with only scalar fields are copied by slices.Clone; the rest
// implement clone.

type cloner[T any] interface{ clone() T }

func cloneAll[T cloner[T]](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}

func (d Data) clone() Data {
	return Data{
		Kitties:        slices.Clone(d.Kitties),
		Clubs:          cloneAll(d.Clubs),
		Mods:           slices.Clone(d.Mods),
		Cakes:          cloneAll(d.Cakes),
		Classrooms:     slices.Clone(d.Classrooms),
		Books:          slices.Clone(d.Books),
		Weather:        slices.Clone(d.Weather),
		Parks:          cloneAll(d.Parks),
		Breweries:      cloneAll(d.Breweries),
		Instructors:    cloneAll(d.Instructors),
		Cohorts:        cloneAll(d.Cohorts),
		Bosses:         cloneAll(d.Bosses),
		Sidekicks:      slices.Clone(d.Sidekicks),
		Constellations: cloneAll(d.Constellations),
		Stars:          slices.Clone(d.Stars),
		Weapons:        slices.Clone(d.Weapons),
		Characters:     cloneAll(d.Characters),
		Dinosaurs:      slices.Clone(d.Dinosaurs),
		Humans:         slices.Clone(d.Humans),
		Movies:         cloneAll(d.Movies),
	}
}

func (c Club) clone() Club {
	c.Members = slices.Clone(c.Members)
	return c
}

func (c Cake) clone() Cake {
	if c.Filling != nil {
		filling := *c.Filling
		c.Filling = &filling
	}
	c.Toppings = slices.Clone(c.Toppings)
	return c
}

func (p Park) clone() Park {
	p.Activities = slices.Clone(p.Activities)
	return p
}

func (b Brewery) clone() Brewery {
	b.Beers = slices.Clone(b.Beers)
	return b
}

func (i Instructor) clone() Instructor {
	i.Teaches = slices.Clone(i.Teaches)
	return i
}

func (c Cohort) clone() Cohort {
	c.Curriculum = slices.Clone(c.Curriculum)
	return c
}

func (b Boss) clone() Boss {
	b.Sidekicks = slices.Clone(b.Sidekicks)
	return b
}

func (c Constellation) clone() Constellation {
	c.Names = slices.Clone(c.Names)
	c.Stars = slices.Clone(c.Stars)
	return c
}

func (c Character) clone() Character {
	c.Weapons = slices.Clone(c.Weapons)
	return c
}

func (m Movie) clone() Movie {
	m.LeadCharacters = slices.Clone(m.LeadCharacters)
	m.Cast = slices.Clone(m.Cast)
	m.Dinos = slices.Clone(m.Dinos)
	return m
}
