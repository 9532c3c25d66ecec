package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ============================================================================
// EXECUTOR — Query catalog + dispatcher
// ============================================================================
// Entry points: Execute(ctx, query, opts...) and ExecuteAll(ctx, queries, opts...)
//
// Pipeline:
//   1. Resolve query by name from a Catalog
//   2. Run it (pure, in-memory)
//   3. Wrap the value in a Result with timing
//
// Queries never touch disk or network; all computation is local.
// ============================================================================

var (
	ErrUnknownQuery   = errors.New("unknown query")
	ErrDuplicateQuery = errors.New("duplicate query")
	ErrInvalidQuery   = errors.New("invalid query")
)

// Catalog is an ordered registry of queries keyed by "<dataset>.<name>".
type Catalog struct {
	queries []Query
	byName  map[string]int
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]int)}
}

// FullName is the catalog key of a query.
func (q Query) FullName() string {
	return q.Dataset + "." + q.Name
}

// Register adds q to the catalog.
func (c *Catalog) Register(q Query) error {
	if q.Name == "" || q.Dataset == "" || q.Run == nil {
		return fmt.Errorf("%w: %q needs a name, dataset and run function", ErrInvalidQuery, q.FullName())
	}
	name := q.FullName()
	if _, exists := c.byName[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateQuery, name)
	}
	c.byName[name] = len(c.queries)
	c.queries = append(c.queries, q)
	return nil
}

// MustRegister is Register for static wiring; it panics on error.
func (c *Catalog) MustRegister(qs ...Query) *Catalog {
	for _, q := range qs {
		if err := c.Register(q); err != nil {
			panic(err)
		}
	}
	return c
}

// Lookup finds a query by its full name ("cakes.totalInventory").
func (c *Catalog) Lookup(name string) (Query, error) {
	i, ok := c.byName[name]
	if !ok {
		return Query{}, fmt.Errorf("%w: %s", ErrUnknownQuery, name)
	}
	return c.queries[i], nil
}

// Queries returns every query in registration order.
func (c *Catalog) Queries() []Query {
	out := make([]Query, len(c.queries))
	copy(out, c.queries)
	return out
}

// Dataset returns the queries of one dataset, in registration order.
func (c *Catalog) Dataset(dataset string) []Query {
	var out []Query
	for _, q := range c.queries {
		if strings.EqualFold(q.Dataset, dataset) {
			out = append(out, q)
		}
	}
	return out
}

// Datasets returns the distinct dataset names, sorted.
func (c *Catalog) Datasets() []string {
	names := Unique(c.queries, func(q Query) string { return q.Dataset })
	sort.Strings(names)
	return names
}

// Resolve looks up several names at once, failing on the first unknown one.
func (c *Catalog) Resolve(names ...string) ([]Query, error) {
	out := make([]Query, 0, len(names))
	for _, name := range names {
		q, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

// Execute runs a single query and returns its Result.
func Execute(ctx context.Context, q Query, opts ...Option) (*Result, error) {
	return execute(ctx, q, applyOptions(opts))
}

func execute(ctx context.Context, q Query, cfg *config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if q.Run == nil {
		return nil, fmt.Errorf("%w: %s has no run function", ErrInvalidQuery, q.FullName())
	}

	start := time.Now()
	value := q.Run()
	elapsed := time.Since(start)

	cfg.Logger.Debug("query executed",
		zap.String("query", q.FullName()),
		zap.Duration("elapsed", elapsed))

	return &Result{
		Query:   q.Name,
		Dataset: q.Dataset,
		Value:   value,
		Elapsed: elapsed,
	}, nil
}

// ExecuteAll runs queries with bounded parallelism. Results come back in the
// order the queries were given. The first error cancels the rest.
func ExecuteAll(ctx context.Context, queries []Query, opts ...Option) ([]*Result, error) {
	cfg := applyOptions(opts)
	results := make([]*Result, len(queries))

	cfg.Logger.Info("executing queries",
		zap.Int("count", len(queries)),
		zap.Int("parallelism", cfg.Parallelism))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, q := range queries {
		g.Go(func() error {
			res, err := execute(gctx, q, cfg)
			if err != nil {
				return fmt.Errorf("execute %s: %w", q.FullName(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
