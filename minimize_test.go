package automaton

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// redundantPair is a five-state DFA over {0,1} in which q3 and q4 behave
// identically on both symbols, so its minimal form has four states.
func redundantPair() *Automaton {
	return &Automaton{
		States:   []string{"q0", "q1", "q2", "q3", "q4"},
		Alphabet: []string{"0", "1"},
		Transitions: []Transition{
			{From: "q0", Symbol: "0", To: "q1"},
			{From: "q0", Symbol: "1", To: "q2"},
			{From: "q1", Symbol: "0", To: "q3"},
			{From: "q1", Symbol: "1", To: "q0"},
			{From: "q2", Symbol: "0", To: "q4"},
			{From: "q2", Symbol: "1", To: "q2"},
			{From: "q3", Symbol: "0", To: "q0"},
			{From: "q3", Symbol: "1", To: "q1"},
			{From: "q4", Symbol: "0", To: "q0"},
			{From: "q4", Symbol: "1", To: "q1"},
		},
		Start: "q0",
		Final: []string{"q3", "q4"},
	}
}

func TestMinimize(t *testing.T) {
	t.Run("indistinguishable states collapse", func(t *testing.T) {
		min, err := Minimize(redundantPair())
		assert.Nil(t, err)
		assert.Len(t, min.States, 4)
	})

	t.Run("start block is labeled q0", func(t *testing.T) {
		min, err := Minimize(redundantPair())
		assert.Nil(t, err)
		assert.Equal(t, "q0", min.Start)
		assert.Equal(t, "q0", min.States[0])

		min, err = Minimize(evenOnes())
		assert.Nil(t, err)
		assert.Equal(t, "q0", min.Start)
	})

	t.Run("language is preserved", func(t *testing.T) {
		dfa := redundantPair()
		min, err := Minimize(dfa)
		assert.Nil(t, err)
		assertSameLanguage(t, dfa, min, 6)
	})

	t.Run("minimization is idempotent", func(t *testing.T) {
		min, err := Minimize(redundantPair())
		assert.Nil(t, err)
		again, err := Minimize(min)
		assert.Nil(t, err)
		assert.Len(t, again.States, len(min.States))
		assertSameLanguage(t, min, again, 6)
	})

	t.Run("already minimal automaton is a fixed point", func(t *testing.T) {
		min, err := Minimize(evenOnes())
		assert.Nil(t, err)
		assert.Len(t, min.States, 2)
	})

	t.Run("transition set is deduplicated", func(t *testing.T) {
		min, err := Minimize(redundantPair())
		assert.Nil(t, err)

		seen := make(map[Transition]bool)
		for _, tr := range min.Transitions {
			assert.False(t, seen[tr], "duplicate transition %v", tr)
			seen[tr] = true
		}
		// 4 states, 2 symbols, total transition function.
		assert.Len(t, min.Transitions, 8)
	})

	t.Run("nondeterministic input is rejected", func(t *testing.T) {
		_, err := Minimize(branching())
		assert.NotNil(t, err)
		assert.ErrorIs(t, err, ErrNotDeterministic)
	})

	t.Run("epsilon transitions are rejected", func(t *testing.T) {
		a := evenOnes()
		a.Transitions = append(a.Transitions, Transition{From: "q0", Symbol: Epsilon, To: "q1"})
		_, err := Minimize(a)
		assert.ErrorIs(t, err, ErrNotDeterministic)
	})

	t.Run("missing edges keep states distinct", func(t *testing.T) {
		// p1 and p2 agree on c (both reach the accept state) but only
		// p2 can consume an a; merging them would accept "aac", which
		// the input rejects.
		a := &Automaton{
			States:   []string{"p0", "p1", "p2", "f"},
			Alphabet: []string{"a", "c"},
			Transitions: []Transition{
				{From: "p0", Symbol: "a", To: "p1"},
				{From: "p0", Symbol: "c", To: "p2"},
				{From: "p1", Symbol: "c", To: "f"},
				{From: "p2", Symbol: "a", To: "p2"},
				{From: "p2", Symbol: "c", To: "f"},
			},
			Start: "p0",
			Final: []string{"f"},
		}
		min, err := Minimize(a)
		assert.Nil(t, err)
		assert.Len(t, min.States, 4)

		result, err := Simulate(min, "aac")
		assert.Nil(t, err)
		assert.False(t, result.Accepted)

		assertSameLanguage(t, a, min, 6)
	})

	t.Run("partial DFA is accepted", func(t *testing.T) {
		a := &Automaton{
			States:   []string{"a", "b", "c"},
			Alphabet: []string{"x", "y"},
			Transitions: []Transition{
				{From: "a", Symbol: "x", To: "b"},
				{From: "b", Symbol: "x", To: "c"},
			},
			Start: "a",
			Final: []string{"c"},
		}
		min, err := Minimize(a)
		assert.Nil(t, err)
		assert.Equal(t, "q0", min.Start)
		assertSameLanguage(t, a, min, 5)
	})

	t.Run("all states final", func(t *testing.T) {
		a := evenOnes()
		a.Final = []string{"q0", "q1"}
		min, err := Minimize(a)
		assert.Nil(t, err)
		assert.Len(t, min.States, 1)
		assert.Equal(t, []string{"q0"}, min.Final)
	})

	t.Run("no final states", func(t *testing.T) {
		a := evenOnes()
		a.Final = nil
		min, err := Minimize(a)
		assert.Nil(t, err)
		assert.Len(t, min.States, 1)
		assert.Empty(t, min.Final)
	})

	t.Run("conversion output minimizes cleanly", func(t *testing.T) {
		dfa := ToDFA(branching())
		min, err := Minimize(dfa)
		assert.Nil(t, err)
		assert.Equal(t, "q0", min.Start)
		assert.LessOrEqual(t, len(min.States), len(dfa.States))
		assertSameLanguage(t, dfa, min, 6)
	})

	t.Run("conversion pipeline preserves language", func(t *testing.T) {
		// Subset construction legitimately emits partial DFAs, so the
		// ToDFA-then-Minimize pipeline is exercised over generated
		// NFAs rather than a single handpicked case.
		rng := rand.New(rand.NewSource(7))
		for round := 0; round < 30; round++ {
			nfa := randomNFA(rng)
			dfa := ToDFA(nfa)
			min, err := Minimize(dfa)
			assert.Nil(t, err, "round %d", round)
			assert.Equal(t, "q0", min.Start, "round %d", round)
			assert.LessOrEqual(t, len(min.States), len(dfa.States), "round %d", round)
			assertSameLanguage(t, dfa, min, 5)
		}
	})
}

// randomNFA generates a small automaton over {0,1} with arbitrary
// branching, missing edges and accept states.
func randomNFA(rng *rand.Rand) *Automaton {
	a := &Automaton{
		States:   []string{"s0", "s1", "s2", "s3"},
		Alphabet: []string{"0", "1"},
		Start:    "s0",
	}
	for _, from := range a.States {
		for _, symbol := range a.Alphabet {
			for _, to := range a.States {
				if rng.Float64() < 0.35 {
					a.Transitions = append(a.Transitions, Transition{From: from, Symbol: symbol, To: to})
				}
			}
		}
	}
	for _, state := range a.States {
		if rng.Float64() < 0.4 {
			a.Final = append(a.Final, state)
		}
	}
	return a
}
