package datasets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/prototypes/schema"
)

// ============================================================================
// LOADER — fixture files → validated Set
// ============================================================================
// Pipeline per file:
//   1. Read "<name>.yaml" from the fixture FS
//   2. Parse to a yaml.Node and check it against its schema.Config
//   3. Decode strictly (unknown record fields are rejected)
// Then cross-file references are checked. Any failure aborts the load;
// a partial Set is never returned.
// ============================================================================

var (
	ErrMissingReference = errors.New("missing reference")
	ErrDuplicateKey     = errors.New("duplicate key")
)

//go:embed fixtures/*.yaml
var embedded embed.FS

// Fixtures returns the embedded fixture files.
func Fixtures() fs.FS {
	sub, err := fs.Sub(embedded, "fixtures")
	if err != nil {
		panic(err) // static path
	}
	return sub
}

// Load builds a Set from the embedded fixtures.
func Load() (*Set, error) {
	return LoadFS(Fixtures())
}

// MustLoad is Load for callers that treat a broken embedded fixture as a
// build defect. It panics on error.
func MustLoad() *Set {
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

// LoadDir builds a Set from dir, falling back to the embedded copy of any
// fixture file dir does not contain.
func LoadDir(dir string) (*Set, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("fixtures dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixtures dir: %s is not a directory", dir)
	}
	return LoadFS(overlayFS{primary: os.DirFS(dir), fallback: Fixtures()})
}

// LoadFS builds a Set from the fixture files in fsys.
func LoadFS(fsys fs.FS) (*Set, error) {
	var data Data
	for _, cfg := range Schemas {
		if err := decodeFile(fsys, cfg, &data); err != nil {
			return nil, err
		}
	}
	if err := checkReferences(data); err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	return &Set{data: data}, nil
}

func decodeFile(fsys fs.FS, cfg schema.Config, into *Data) error {
	name := cfg.Name + ".yaml"
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := schema.Validate(&doc, cfg); err != nil {
		return fmt.Errorf("validate %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(into); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// ============================================================================
// REFERENTIAL CHECKS
// ============================================================================

func checkReferences(d Data) error {
	var errs error

	bosses := keySet(d.Bosses, func(b Boss) string { return b.Name }, "bosses", &errs)
	sidekicks := keySet(d.Sidekicks, func(s Sidekick) string { return s.Name }, "sidekicks", &errs)
	weapons := keySet(d.Weapons, func(w Weapon) string { return w.Name }, "weapons", &errs)
	dinos := keySet(d.Dinosaurs, func(x Dinosaur) string { return x.Name }, "dinosaurs", &errs)
	humans := keySet(d.Humans, func(h Human) string { return h.Name }, "humans", &errs)

	for _, b := range d.Bosses {
		requireAll(&errs, sidekicks, "sidekick", "boss "+b.Name, b.Sidekicks...)
	}
	for _, s := range d.Sidekicks {
		requireAll(&errs, bosses, "boss", "sidekick "+s.Name, s.Boss)
	}
	for _, c := range d.Characters {
		requireAll(&errs, weapons, "weapon", "character "+c.Name, c.Weapons...)
	}
	for _, m := range d.Movies {
		requireAll(&errs, humans, "human", "movie "+m.Title, m.Cast...)
		requireAll(&errs, dinos, "dinosaur", "movie "+m.Title, m.Dinos...)
	}
	return errs
}

func keySet[T any](items []T, key func(T) string, collection string, errs *error) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		k := key(item)
		if set[k] {
			*errs = multierr.Append(*errs, fmt.Errorf("%s: %w: %q", collection, ErrDuplicateKey, k))
		}
		set[k] = true
	}
	return set
}

func requireAll(errs *error, known map[string]bool, kind, owner string, refs ...string) {
	for _, ref := range refs {
		if !known[ref] {
			*errs = multierr.Append(*errs, fmt.Errorf("%s: %w: %s %q", owner, ErrMissingReference, kind, ref))
		}
	}
}

// ============================================================================
// OVERLAY FS — directory first, embedded second
// ============================================================================

type overlayFS struct {
	primary, fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return o.fallback.Open(name)
	}
	return f, err
}
