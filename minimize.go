package automaton

import (
	"errors"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// ErrNotDeterministic is returned by Minimize when the input automaton
// has a nondeterministic choice or an epsilon transition. Callers
// classify first and convert via ToDFA before minimizing.
var ErrNotDeterministic = errors.New("minimize: input automaton is not deterministic")

// Minimize reduces a deterministic automaton to the equivalent automaton
// with the fewest states, using worklist-driven partition refinement.
// Behaviorally indistinguishable states collapse into one block; the
// block containing the original start state is always labeled "q0" and
// the remaining blocks are numbered contiguously in discovery order.
// The rebuilt transition set is deduplicated.
//
// Partial transition functions are legal input. Refinement runs over an
// internally totalized transition function: missing edges lead to a
// virtual dead state, so a state lacking an edge on a symbol stays
// distinguishable from a co-block state whose edge leads somewhere
// useful. The virtual state is discarded again during assembly, so the
// output is as partial as the refined blocks require.
func Minimize(dfa *Automaton) (*Automaton, error) {
	report := Report(dfa)
	if len(report.Nondeterministic) > 0 || len(report.Epsilon) > 0 {
		return nil, fmt.Errorf("%w: %d nondeterministic pairs, %d epsilon transitions",
			ErrNotDeterministic, len(report.Nondeterministic), len(report.Epsilon))
	}

	ix := newIndex(dfa)
	n := ix.size()

	// Deterministic transition function over state indices. Index n is
	// the virtual dead state; target resolves missing entries to it,
	// including the dead state's own self-loops.
	dead := n
	delta := make([]map[string]int, n+1)
	for i := range delta {
		delta[i] = make(map[string]int)
	}
	for _, t := range dfa.Transitions {
		from, okFrom := ix.of(t.From)
		to, okTo := ix.of(t.To)
		if okFrom && okTo {
			delta[from][t.Symbol] = to
		}
	}
	target := func(s int, symbol string) int {
		if dest, ok := delta[s][symbol]; ok {
			return dest
		}
		return dead
	}

	finalBlock := ix.finals(dfa)
	nonFinalBlock := bitset.New(uint(n + 1))
	for i := 0; i <= n; i++ {
		if !finalBlock.Test(uint(i)) {
			nonFinalBlock.Set(uint(i))
		}
	}

	var partition []*bitset.BitSet
	if finalBlock.Any() {
		partition = append(partition, finalBlock)
	}
	if nonFinalBlock.Any() {
		partition = append(partition, nonFinalBlock)
	}

	var workList []*bitset.BitSet
	if finalBlock.Any() {
		workList = append(workList, finalBlock)
	}

	for len(workList) > 0 {
		a := workList[0]
		workList = workList[1:]

		for _, symbol := range dfa.Alphabet {
			// Preimage of a under this symbol.
			x := bitset.New(uint(n + 1))
			for s := 0; s <= n; s++ {
				if a.Test(uint(target(s, symbol))) {
					x.Set(uint(s))
				}
			}

			for yi := 0; yi < len(partition); yi++ {
				y := partition[yi]
				inter := y.Intersection(x)
				diff := y.Difference(x)
				if !inter.Any() || !diff.Any() {
					continue
				}

				partition[yi] = inter
				partition = append(partition, diff)

				if wi := slices.Index(workList, y); wi >= 0 {
					workList[wi] = inter
					workList = append(workList, diff)
				} else if inter.Count() <= diff.Count() {
					// Smaller-half heuristic; ties favor the
					// intersection.
					workList = append(workList, inter)
				} else {
					workList = append(workList, diff)
				}
			}
		}
	}

	return assemble(dfa, ix, partition, delta), nil
}

// assemble rebuilds the minimized automaton from the refined partition.
// The virtual dead state (index ix.size()) is dropped here: a block
// holding only that state gets no label, and no transition references
// it, so totalization never leaks into the output.
func assemble(dfa *Automaton, ix *index, partition []*bitset.BitSet, delta []map[string]int) *Automaton {
	dead := ix.size()
	startIdx, hasStart := ix.of(dfa.Start)

	// The start block takes the reserved label q0; the rest keep their
	// discovery order shifted by one.
	labels := make([]string, len(partition))
	blockOf := make([]int, ix.size())
	next := 1
	for bi, block := range partition {
		real := false
		for i, ok := block.NextSet(0); ok; i, ok = block.NextSet(i + 1) {
			if int(i) == dead {
				continue
			}
			blockOf[i] = bi
			real = true
		}
		if !real {
			continue
		}
		if hasStart && block.Test(uint(startIdx)) {
			labels[bi] = "q0"
		} else {
			labels[bi] = fmt.Sprintf("q%d", next)
			next++
		}
	}

	min := &Automaton{
		Alphabet: slices.Clone(dfa.Alphabet),
		Start:    "q0",
	}

	// States in label order: q0 first, then discovery order, which is
	// exactly how the remaining labels were assigned. Unlabeled blocks
	// hold only the virtual dead state.
	order := make([]int, 0, len(partition))
	for bi := range partition {
		if labels[bi] == "q0" {
			order = append(order, bi)
		}
	}
	for bi := range partition {
		if labels[bi] != "" && labels[bi] != "q0" {
			order = append(order, bi)
		}
	}

	finals := ix.finals(dfa)
	for _, bi := range order {
		min.States = append(min.States, labels[bi])
		if partition[bi].IntersectionCardinality(finals) > 0 {
			min.Final = append(min.Final, labels[bi])
		}
	}

	// One representative transition per block and symbol; multiple
	// members of a block agreeing on a symbol must not produce duplicate
	// edges. Only declared transitions count, so a block whose members
	// all lack an edge on a symbol emits nothing and the output stays
	// partial.
	for _, bi := range order {
		block := partition[bi]
		for _, symbol := range dfa.Alphabet {
			for i, ok := block.NextSet(0); ok; i, ok = block.NextSet(i + 1) {
				if int(i) == dead {
					continue
				}
				if dest, exists := delta[i][symbol]; exists {
					min.Transitions = append(min.Transitions, Transition{
						From:   labels[bi],
						Symbol: symbol,
						To:     labels[blockOf[dest]],
					})
					break
				}
			}
		}
	}

	return min
}
