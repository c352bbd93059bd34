package model

import (
	"bytes"
	"encoding/json"
)

// Section is a flat mapping from field name to scalar value that preserves
// insertion order. Decoders append fields in the order they appear in the
// source bytes, and JSON output reproduces that order exactly.
type Section struct {
	keys   []string
	values map[string]any
}

// NewSection creates an empty section.
func NewSection() *Section {
	return &Section{
		values: make(map[string]any),
	}
}

// Set stores a value under name. A new name is appended after all existing
// fields; an existing name keeps its position and has its value replaced.
func (s *Section) Set(name string, value any) {
	if _, ok := s.values[name]; !ok {
		s.keys = append(s.keys, name)
	}
	s.values[name] = value
}

// Get returns the value stored under name, and whether it was present.
func (s *Section) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// GetString returns the value under name if it is a string.
func (s *Section) GetString(name string) (string, bool) {
	v, ok := s.values[name]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// GetFloat returns the value under name coerced to float64.
// Integer-typed values are widened; non-numeric values report false.
func (s *Section) GetFloat(name string) (float64, bool) {
	v, ok := s.values[name]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case uint32:
		return float64(n), true
	case uint16:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Len returns the number of fields in the section.
func (s *Section) Len() int {
	return len(s.keys)
}

// Keys returns the field names in insertion order. The returned slice is a
// copy; mutating it does not affect the section.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// MarshalJSON serializes the section as a JSON object with fields in
// insertion order.
func (s *Section) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
