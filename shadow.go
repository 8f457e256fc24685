package m68k

import "sort"

// Overlap records that some word is decoded by rule First while the
// later rule Second also matches it, so swapping the two rules would
// change that word's outcome. Overlaps are expected wherever a specific
// encoding is listed ahead of a catch-all group encoding; an unexpected
// pair usually means a rule was inserted in the wrong place.
type Overlap struct {
	First  int // rule that wins under the current order
	Second int // later rule that also matches
}

// Overlaps sweeps the full word space and returns every order-sensitive
// rule pair, sorted by (First, Second). This is a table-editing
// diagnostic, not a runtime check: first-match-wins already resolves
// every overlap deterministically.
func (m *Matcher) Overlaps() []Overlap {
	seen := make(map[Overlap]struct{})
	for w := 0; w < 1<<PatternLen; w++ {
		word := uint16(w)
		first := -1
		for i, r := range m.rules {
			if word&r.mask != r.bits {
				continue
			}
			if first < 0 {
				first = i
				continue
			}
			seen[Overlap{First: first, Second: i}] = struct{}{}
		}
	}

	out := make([]Overlap, 0, len(seen))
	for o := range seen {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].First != out[j].First {
			return out[i].First < out[j].First
		}
		return out[i].Second < out[j].Second
	})
	return out
}

// Shadowed returns the indices of rules that can never win: every word
// they match is claimed by an earlier rule. A shadowed rule is dead
// table content and usually an editing mistake.
func (m *Matcher) Shadowed() []int {
	wins := make([]bool, len(m.rules))
	for w := 0; w < 1<<PatternLen; w++ {
		if i, ok := m.matchIndex(uint16(w)); ok {
			wins[i] = true
		}
	}

	var out []int
	for i, won := range wins {
		if !won {
			out = append(out, i)
		}
	}
	return out
}
