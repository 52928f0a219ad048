package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionMapOrder(t *testing.T) {
	m := NewSuggestionMap()
	m.Add("testing", "Add race tests")
	m.Add("code_quality", "Use gofmt")
	m.Add("testing", "Cover error paths")

	assert.Equal(t, []string{"testing", "code_quality"}, m.Keys())
	assert.Equal(t, []string{"Add race tests", "Cover error paths"}, m.Get("testing"))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 3, m.Total())
}

func TestSuggestionMapMarshalPreservesOrder(t *testing.T) {
	m := NewSuggestionMap()
	m.Add("zebra", "z first")
	m.Add("alpha", "a second")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zebra":["z first"],"alpha":["a second"]}`, string(data))
}

func TestSuggestionMapRoundTrip(t *testing.T) {
	m := NewSuggestionMap()
	m.AddAll("testing", []string{"one", "two"})
	m.Add("documentation", "three")

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back SuggestionMap
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m.Keys(), back.Keys())
	assert.Equal(t, m.Get("testing"), back.Get("testing"))
	assert.Equal(t, m.Get("documentation"), back.Get("documentation"))
}

func TestSuggestionMapEmpty(t *testing.T) {
	m := NewSuggestionMap()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, m.Total())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
