package models

import (
	"bytes"
	"encoding/json"
)

// SuggestionMap maps a category name to the ordered suggestions the model
// produced for it. Categories keep the order in which the parser
// discovered them, which a plain map would lose, so the type tracks keys
// separately and marshals them in insertion order.
type SuggestionMap struct {
	keys   []string
	values map[string][]string
}

func NewSuggestionMap() *SuggestionMap {
	return &SuggestionMap{values: make(map[string][]string)}
}

// Add appends a suggestion to a category, registering the category on
// first use.
func (m *SuggestionMap) Add(category, suggestion string) {
	if _, ok := m.values[category]; !ok {
		m.keys = append(m.keys, category)
	}
	m.values[category] = append(m.values[category], suggestion)
}

// AddAll appends every suggestion in order. A category with no
// suggestions is not registered.
func (m *SuggestionMap) AddAll(category string, suggestions []string) {
	for _, s := range suggestions {
		m.Add(category, s)
	}
}

// Get returns the suggestions for a category in insertion order.
func (m *SuggestionMap) Get(category string) []string {
	return m.values[category]
}

// Keys returns the category names in discovery order.
func (m *SuggestionMap) Keys() []string {
	return m.keys
}

// Len returns the number of categories present.
func (m *SuggestionMap) Len() int {
	return len(m.keys)
}

// Total returns the number of suggestions across all categories.
func (m *SuggestionMap) Total() int {
	n := 0
	for _, v := range m.values {
		n += len(v)
	}
	return n
}

// MarshalJSON emits a JSON object whose keys appear in discovery order.
func (m *SuggestionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the map from a JSON object. Key order follows
// the document order of the object.
func (m *SuggestionMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.values = make(map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var vals []string
		if err := dec.Decode(&vals); err != nil {
			return err
		}
		if _, ok := m.values[key]; !ok {
			m.keys = append(m.keys, key)
		}
		m.values[key] = append(m.values[key], vals...)
	}
	_, err := dec.Token()
	return err
}
