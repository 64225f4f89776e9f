package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEngine(t *testing.T) {
	tests := map[string]EngineSpec{
		"":           {Engine: EngineNewMM},
		"newmm":      {Engine: EngineNewMM},
		"onecut":     {Engine: EngineNewMM},
		"NewMM-Safe": {Engine: EngineNewMM, SafeMode: true},
		"longest":    {Engine: EngineLongest},
		"mm":         {Engine: EngineMultiCut},
		" multi_cut": {Engine: EngineMultiCut},
	}
	for name, want := range tests {
		got, err := ParseEngine(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseEngine("attacut")
	assert.ErrorContains(t, err, `"attacut" not found`)
}

func TestEngineText(t *testing.T) {
	assert.Equal(t, []string{"newmm", "longest", "mm"}, EngineStrings())
	for _, e := range EngineValues() {
		text, err := e.MarshalText()
		require.NoError(t, err)
		var parsed Engine
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, e, parsed)
	}
	assert.False(t, Engine(7).IsAEngine())
	assert.Equal(t, "Engine(7)", Engine(7).String())

	var e Engine
	assert.Error(t, e.UnmarshalText([]byte("fancy")))

	data, err := json.Marshal(map[string]Engine{"engine": EngineLongest})
	require.NoError(t, err)
	assert.JSONEq(t, `{"engine": "longest"}`, string(data))
	require.NoError(t, json.Unmarshal([]byte(`"mm"`), &e))
	assert.Equal(t, EngineMultiCut, e)
}

func TestStrings(t *testing.T) {
	text := []rune("คนไทย")
	spans := []TokenSpan{{Start: 0, End: 2}, {Start: 2, End: 5}}
	assert.Equal(t, []string{"คน", "ไทย"}, Strings(text, spans))
	assert.Equal(t, []string{}, Strings(text, nil))
	assert.Equal(t, 3, spans[1].Len())
}
