package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Books queries the books dataset.
type Books struct{ set *datasets.Set }

// BookYear is a title with its publication year.
type BookYear struct {
	Title string `json:"title" yaml:"title"`
	Year  int    `json:"year" yaml:"year"`
}

// violentGenres are left out by RemoveViolence.
var violentGenres = []string{"Horror", "True Crime"}

const (
	newBooksFrom = 1990
	newBooksTo   = 2009
)

// RemoveViolence returns the titles of books outside the violent genres.
func (b Books) RemoveViolence() []string {
	calm := engine.ApplyFilters(bookView.Bind(b.set.Books()), engine.Except("genre", violentGenres...))
	return engine.Map(engine.Materialize[datasets.Book](calm), bookTitle)
}

// GetNewBooks returns the books published in the 90s and 00s.
func (b Books) GetNewBooks() []BookYear {
	view := bookView.Bind(b.set.Books())
	recent := engine.Where(view, func(i int) bool {
		year := view.Measure(i, "published")
		return year >= newBooksFrom && year <= newBooksTo
	})
	return engine.Map(engine.Materialize[datasets.Book](recent), func(book datasets.Book) BookYear {
		return BookYear{Title: book.Title, Year: book.Published}
	})
}

func bookTitle(b datasets.Book) string { return b.Title }

func (b Books) queries() []engine.Query {
	return []engine.Query{
		query("books", "removeViolence", "titles outside horror and true crime", b.RemoveViolence),
		query("books", "getNewBooks", "books published 1990-2009", b.GetNewBooks),
	}
}
