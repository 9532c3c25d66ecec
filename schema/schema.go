package schema

// ============================================================================
// SCHEMA — Describes the shape of a fixture file
// ============================================================================
// Each fixture file holds one or more named collections (top-level keys).
// Each collection is a sequence of records; each record is a mapping whose
// fields are declared here. The validator checks a parsed YAML document
// against a Config before any typed decoding happens.
// ============================================================================

// Kind is the expected YAML type of a field.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float" // ints are accepted too
	KindBool   Kind = "bool"
	KindList   Kind = "list"   // sequence of Elem
	KindObject Kind = "object" // mapping described by Fields
)

// Config describes the complete shape of one fixture file.
type Config struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Collections []CollectionMeta `json:"collections" yaml:"collections"`
}

// CollectionMeta describes a top-level sequence of records.
type CollectionMeta struct {
	Key         string      `json:"key" yaml:"key"`
	DisplayName string      `json:"displayName" yaml:"displayName"`
	Fields      []FieldMeta `json:"fields" yaml:"fields"`
}

// FieldMeta describes one record field.
type FieldMeta struct {
	Key      string      `json:"key" yaml:"key"`
	Kind     Kind        `json:"kind" yaml:"kind"`
	Elem     Kind        `json:"elem,omitempty" yaml:"elem,omitempty"` // element kind for KindList
	Fields   []FieldMeta `json:"fields,omitempty" yaml:"fields,omitempty"`
	Required bool        `json:"required" yaml:"required"`
	Nullable bool        `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// Field creates a required, non-nullable FieldMeta.
func Field(key string, kind Kind) FieldMeta {
	return FieldMeta{Key: key, Kind: kind, Required: true}
}

// List creates a required list field of elem.
func List(key string, elem Kind, fields ...FieldMeta) FieldMeta {
	return FieldMeta{Key: key, Kind: KindList, Elem: elem, Fields: fields, Required: true}
}

// Object creates a required nested mapping field.
func Object(key string, fields ...FieldMeta) FieldMeta {
	return FieldMeta{Key: key, Kind: KindObject, Fields: fields, Required: true}
}

// OrNull marks the field as accepting an explicit null.
func (f FieldMeta) OrNull() FieldMeta {
	f.Nullable = true
	return f
}

// Collection creates a CollectionMeta.
func Collection(key, displayName string, fields ...FieldMeta) CollectionMeta {
	return CollectionMeta{Key: key, DisplayName: displayName, Fields: fields}
}

// CollectionKeys returns all collection keys.
func (c Config) CollectionKeys() []string {
	keys := make([]string, len(c.Collections))
	for i, col := range c.Collections {
		keys[i] = col.Key
	}
	return keys
}

// FieldKeys returns the top-level field keys of a collection.
func (c CollectionMeta) FieldKeys() []string {
	keys := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		keys[i] = f.Key
	}
	return keys
}
