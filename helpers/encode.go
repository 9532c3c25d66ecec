package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/prototypes/engine"
)

// ============================================================================
// ENCODE — query results → bytes
// ============================================================================
// Formats:
//   json     compact JSON, one document per call
//   pretty   indented JSON
//   yaml     YAML document
//   msgpack  binary msgpack (field names from json tags)
//   text     one "<dataset>.<query> = <json>" line per result
//
// Ordered outputs (engine.OrderedMap, engine.Entry) keep their key order in
// every format.
// ============================================================================

const (
	FormatJSON    = "json"
	FormatPretty  = "pretty"
	FormatYAML    = "yaml"
	FormatMsgpack = "msgpack"
	FormatText    = "text"
)

var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the accepted format names.
func Formats() []string {
	return []string{FormatJSON, FormatPretty, FormatYAML, FormatMsgpack, FormatText}
}

// ValidFormat reports whether name is an accepted format.
func ValidFormat(name string) bool {
	return slices.Contains(Formats(), name)
}

// Encode writes v to w in the given format.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, v, false)
	case FormatPretty:
		return writeJSON(w, v, true)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		return nil
	case FormatText:
		return writeText(w, v)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func writeText(w io.Writer, v any) error {
	switch r := v.(type) {
	case []*engine.Result:
		for _, res := range r {
			if err := writeResultLine(w, res); err != nil {
				return err
			}
		}
		return nil
	case *engine.Result:
		return writeResultLine(w, r)
	}
	return writeJSON(w, v, false)
}

func writeResultLine(w io.Writer, r *engine.Result) error {
	value, err := json.Marshal(r.Value)
	if err != nil {
		return fmt.Errorf("encode %s.%s: %w", r.Dataset, r.Query, err)
	}
	_, err = fmt.Fprintf(w, "%s.%s = %s\n", r.Dataset, r.Query, value)
	return err
}
