package schema

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// VALIDATE — structural check of a parsed fixture document
// ============================================================================
// Every problem is collected (multierr) so a broken fixture reports all of
// its defects at once. Each error wraps ErrMissingField, ErrFieldKind or
// ErrUnknownField and carries a path like "cakes[3].toppings[1]". Unknown
// keys are only checked at the top level; typed decoding rejects the rest.
// ============================================================================

var (
	ErrMissingField = errors.New("missing field")
	ErrFieldKind    = errors.New("wrong field kind")
	ErrUnknownField = errors.New("unknown field")
)

// Validate checks doc (a document or mapping node) against cfg.
func Validate(doc *yaml.Node, cfg Config) error {
	root := doc
	if root != nil && root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root == nil || root.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: %w: top level must be a mapping", cfg.Name, ErrFieldKind)
	}

	var errs error
	known := make(map[string]bool, len(cfg.Collections))
	for _, col := range cfg.Collections {
		known[col.Key] = true
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if key := root.Content[i].Value; !known[key] {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrUnknownField, key))
		}
	}
	for _, col := range cfg.Collections {
		seq := lookup(root, col.Key)
		if seq == nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w: %s", cfg.Name, ErrMissingField, col.Key))
			continue
		}
		if seq.Kind != yaml.SequenceNode {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w: %s must be a list", cfg.Name, ErrFieldKind, col.Key))
			continue
		}
		for i, rec := range seq.Content {
			errs = multierr.Append(errs, checkRecord(rec, col.Fields, fmt.Sprintf("%s[%d]", col.Key, i)))
		}
	}
	if errs != nil {
		return fmt.Errorf("%s: %w", cfg.Name, errs)
	}
	return nil
}

func checkRecord(rec *yaml.Node, fields []FieldMeta, path string) error {
	if rec.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: %w: expected a mapping", path, ErrFieldKind)
	}
	var errs error
	for _, f := range fields {
		v := lookup(rec, f.Key)
		if v == nil {
			if f.Required {
				errs = multierr.Append(errs, fmt.Errorf("%s.%s: %w", path, f.Key, ErrMissingField))
			}
			continue
		}
		errs = multierr.Append(errs, checkValue(v, f, path+"."+f.Key))
	}
	return errs
}

func checkValue(v *yaml.Node, f FieldMeta, path string) error {
	if isNull(v) {
		if f.Nullable {
			return nil
		}
		return fmt.Errorf("%s: %w: null is not allowed", path, ErrFieldKind)
	}
	switch f.Kind {
	case KindList:
		if v.Kind != yaml.SequenceNode {
			return kindError(path, f.Kind, v)
		}
		elem := FieldMeta{Kind: f.Elem, Fields: f.Fields}
		var errs error
		for i, item := range v.Content {
			errs = multierr.Append(errs, checkValue(item, elem, fmt.Sprintf("%s[%d]", path, i)))
		}
		return errs
	case KindObject:
		if v.Kind != yaml.MappingNode {
			return kindError(path, f.Kind, v)
		}
		return checkRecord(v, f.Fields, path)
	}
	if !scalarMatches(v, f.Kind) {
		return kindError(path, f.Kind, v)
	}
	return nil
}

func scalarMatches(v *yaml.Node, kind Kind) bool {
	if v.Kind != yaml.ScalarNode {
		return false
	}
	tag := v.ShortTag()
	switch kind {
	case KindString:
		return tag == "!!str"
	case KindInt:
		return tag == "!!int"
	case KindFloat:
		return tag == "!!float" || tag == "!!int"
	case KindBool:
		return tag == "!!bool"
	}
	return false
}

func kindError(path string, want Kind, v *yaml.Node) error {
	return fmt.Errorf("%s: %w: want %s, got %s", path, ErrFieldKind, want, describe(v))
}

func describe(v *yaml.Node) string {
	switch v.Kind {
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "object"
	case yaml.AliasNode:
		return "alias"
	}
	return v.ShortTag()
}

func isNull(v *yaml.Node) bool {
	return v.Kind == yaml.ScalarNode && v.ShortTag() == "!!null"
}

// lookup returns the value node for key in a mapping, or nil.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
