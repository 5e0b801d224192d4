package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Run("round-trips through Parse", func(t *testing.T) {
		a := branching()
		parsed, err := Parse(Format(a))
		assert.Nil(t, err)
		assert.Equal(t, a, parsed)
	})

	t.Run("canonical text", func(t *testing.T) {
		assert.Equal(t, evenOnesText, Format(evenOnes()))
	})
}

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{
		"states": ["q0", "q1"],
		"alphabet": ["0", "1"],
		"transitions": [{"from": "q0", "symbol": "1", "to": "q1"}],
		"start": "q0",
		"final": ["q1"]
	}`)
	a, err := DecodeJSON(data)
	assert.Nil(t, err)
	assert.Equal(t, []string{"q0", "q1"}, a.States)
	assert.Equal(t, []Transition{{From: "q0", Symbol: "1", To: "q1"}}, a.Transitions)

	_, err = DecodeJSON([]byte("{"))
	assert.NotNil(t, err)
}

func TestDecodeYAML(t *testing.T) {
	data := []byte(`states: [q0, q1]
alphabet: ["0", "1"]
transitions:
  - {from: q0, symbol: "1", to: q1}
start: q0
final: [q1]
`)
	a, err := DecodeYAML(data)
	assert.Nil(t, err)
	assert.Equal(t, "q0", a.Start)
	assert.Equal(t, []string{"q1"}, a.Final)
	assert.Len(t, a.Transitions, 1)

	_, err = DecodeYAML([]byte(":"))
	assert.NotNil(t, err)
}
