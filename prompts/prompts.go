// Package prompts holds the dataset queries, one collection type per domain.
// Every query is a zero-argument method reading a datasets.Set; none of them
// mutates the Set or anything it returned.
package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Prompts groups the query collections bound to one Set.
type Prompts struct {
	Kitties    Kitties
	Clubs      Clubs
	Mods       Mods
	Cakes      Cakes
	Classrooms Classrooms
	Books      Books
	Weather    Weather
	Parks      NationalParks
	Breweries  Breweries
	Turing     Turing
	Bosses     Bosses
	Astronomy  Astronomy
	Ultima     Ultima
	Dinosaurs  Dinosaurs
}

// New binds every collection to set.
func New(set *datasets.Set) *Prompts {
	return &Prompts{
		Kitties:    Kitties{set: set},
		Clubs:      Clubs{set: set},
		Mods:       Mods{set: set},
		Cakes:      Cakes{set: set},
		Classrooms: Classrooms{set: set},
		Books:      Books{set: set},
		Weather:    Weather{set: set},
		Parks:      NationalParks{set: set},
		Breweries:  Breweries{set: set},
		Turing:     Turing{set: set},
		Bosses:     Bosses{set: set},
		Astronomy:  Astronomy{set: set},
		Ultima:     Ultima{set: set},
		Dinosaurs:  Dinosaurs{set: set},
	}
}

// Catalog registers every query under "<dataset>.<query>".
func (p *Prompts) Catalog() *engine.Catalog {
	c := engine.NewCatalog()
	c.MustRegister(p.Kitties.queries()...)
	c.MustRegister(p.Clubs.queries()...)
	c.MustRegister(p.Mods.queries()...)
	c.MustRegister(p.Cakes.queries()...)
	c.MustRegister(p.Classrooms.queries()...)
	c.MustRegister(p.Books.queries()...)
	c.MustRegister(p.Weather.queries()...)
	c.MustRegister(p.Parks.queries()...)
	c.MustRegister(p.Breweries.queries()...)
	c.MustRegister(p.Turing.queries()...)
	c.MustRegister(p.Bosses.queries()...)
	c.MustRegister(p.Astronomy.queries()...)
	c.MustRegister(p.Ultima.queries()...)
	c.MustRegister(p.Dinosaurs.queries()...)
	return c
}

// query wraps a typed method as a catalog entry.
func query[T any](dataset, name, description string, run func() T) engine.Query {
	return engine.Query{
		Name:        name,
		Dataset:     dataset,
		Description: description,
		Run:         func() any { return run() },
	}
}
