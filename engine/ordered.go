package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// ============================================================================
// ORDERED MAP — insertion-ordered key → value mapping
// ============================================================================
// Every grouped output keeps its keys in first-occurrence order. Go maps do
// not, so grouped results are carried in an OrderedMap and encoded (JSON,
// YAML, msgpack) in that order.
// ============================================================================

// OrderedMap is a map that remembers key insertion order.
// The zero value is not usable; call NewOrderedMap.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Set stores v under k. A new key is appended to the key order; an existing
// key keeps its position.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Len returns the number of keys.
func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Values returns the values in key order.
func (m *OrderedMap[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// All iterates key/value pairs in insertion order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy, handy for equality checks.
func (m *OrderedMap[K, V]) Map() map[K]V {
	out := make(map[K]V, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

// Entries converts the map into a slice of single-key entries.
func (m *OrderedMap[K, V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, m.Len())
	for k, v := range m.All() {
		out = append(out, Entry[V]{Key: keyString(k), Value: v})
	}
	return out
}

// MarshalJSON encodes the map as a JSON object in key order.
func (m *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(keyString(k))
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %v: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping node in key order.
func (m *OrderedMap[K, V]) MarshalYAML() (any, error) {
	if m == nil {
		return nil, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range m.keys {
		kn, vn := &yaml.Node{}, &yaml.Node{}
		if err := kn.Encode(keyString(k)); err != nil {
			return nil, err
		}
		if err := vn.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("encode value for key %v: %w", k, err)
		}
		node.Content = append(node.Content, kn, vn)
	}
	return node, nil
}

// EncodeMsgpack encodes the map as a msgpack map in key order.
func (m *OrderedMap[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if m == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeMapLen(len(m.keys)); err != nil {
		return err
	}
	for _, k := range m.keys {
		if err := enc.EncodeString(keyString(k)); err != nil {
			return err
		}
		if err := enc.Encode(m.values[k]); err != nil {
			return fmt.Errorf("encode value for key %v: %w", k, err)
		}
	}
	return nil
}

// ============================================================================
// ENTRY — a single-key object, e.g. { "Colorado": "Rocky Mountain" }
// ============================================================================

// Entry is one key/value pair that encodes as a single-key object.
type Entry[V any] struct {
	Key   string
	Value V
}

// MarshalJSON encodes the entry as {"<key>": value}.
func (e Entry[V]) MarshalJSON() ([]byte, error) {
	m := NewOrderedMap[string, V]()
	m.Set(e.Key, e.Value)
	return m.MarshalJSON()
}

// MarshalYAML encodes the entry as a one-pair mapping.
func (e Entry[V]) MarshalYAML() (any, error) {
	m := NewOrderedMap[string, V]()
	m.Set(e.Key, e.Value)
	return m.MarshalYAML()
}

// EncodeMsgpack encodes the entry as a one-pair msgpack map.
func (e Entry[V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	m := NewOrderedMap[string, V]()
	m.Set(e.Key, e.Value)
	return m.EncodeMsgpack(enc)
}

func keyString[K comparable](k K) string {
	if s, ok := any(k).(string); ok {
		return s
	}
	return fmt.Sprint(k)
}
