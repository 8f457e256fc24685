// Package m68k decodes 16-bit MC68000 instruction words into mnemonics.
//
// Decoding is driven by an ordered table of bit-pattern rules. Each rule
// pairs a mnemonic with a 16-symbol pattern over {0,1,x}, one symbol per
// bit of the instruction word, where x marks a don't-care bit. A word is
// decoded by the first rule in table order whose constrained bits all
// match; later rules never override earlier ones, so specific encodings
// are listed ahead of the group encodings that overlap them.
//
// Three decoders share the same semantics:
//   - Matcher scans the rules in order. It is the simple, obviously
//     correct reference that defines what "correct" means for the others.
//   - Table, built by Compile, is a four-level nibble trie: one lookup
//     per nibble of the word, with identical sub-tables detected and
//     reported as shared.
//   - FlatTable is a 65536-entry direct-indexed table, the layout an
//     emulator dispatch loop wants.
package m68k

import (
	"errors"
	"fmt"
)

// PatternLen is the number of symbols in a rule pattern, one per bit of
// the 16-bit instruction word, most-significant bit first.
const PatternLen = 16

// ErrMalformedPattern is returned by NewMatcher when a rule pattern is
// not exactly PatternLen symbols or contains a symbol outside {0,1,x}.
var ErrMalformedPattern = errors.New("m68k: malformed pattern")

// Rule pairs a mnemonic with its encoding pattern.
type Rule struct {
	Mnemonic string
	Pattern  string
}

// compiledRule is the matchable form of a Rule: a word matches iff
// word&mask == bits. mask has a 1 wherever the pattern constrains the
// bit, and bits carries the required value at those positions.
type compiledRule struct {
	mnemonic string
	bits     uint16
	mask     uint16
}

// Matcher decodes words by scanning its rules in table order.
// It is immutable once built.
type Matcher struct {
	rules []compiledRule
}

// NewMatcher compiles rules into a Matcher. Rule order is preserved and
// semantically significant: the first matching rule wins. Any malformed
// pattern aborts construction with ErrMalformedPattern; there is no
// partially built matcher.
func NewMatcher(rules []Rule) (*Matcher, error) {
	m := &Matcher{rules: make([]compiledRule, 0, len(rules))}
	for i, r := range rules {
		cr, err := compileRule(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		m.rules = append(m.rules, cr)
	}
	return m, nil
}

func compileRule(r Rule) (compiledRule, error) {
	if len(r.Pattern) != PatternLen {
		return compiledRule{}, fmt.Errorf("%w: %s: pattern %q has %d symbols, want %d",
			ErrMalformedPattern, r.Mnemonic, r.Pattern, len(r.Pattern), PatternLen)
	}

	cr := compiledRule{mnemonic: r.Mnemonic}
	for i := 0; i < PatternLen; i++ {
		cr.bits <<= 1
		cr.mask <<= 1
		switch r.Pattern[i] {
		case '1':
			cr.bits |= 1
			cr.mask |= 1
		case '0':
			cr.mask |= 1
		case 'x':
		default:
			return compiledRule{}, fmt.Errorf("%w: %s: pattern %q contains %q",
				ErrMalformedPattern, r.Mnemonic, r.Pattern, r.Pattern[i])
		}
	}
	return cr, nil
}

// Match returns the mnemonic of the first rule matching word. ok is
// false when no rule matches, which is a valid outcome: it marks
// reserved or illegal opcode space, not an error.
func (m *Matcher) Match(word uint16) (mnemonic string, ok bool) {
	i, ok := m.matchIndex(word)
	if !ok {
		return "", false
	}
	return m.rules[i].mnemonic, true
}

// matchIndex returns the index of the first rule matching word.
func (m *Matcher) matchIndex(word uint16) (int, bool) {
	for i, r := range m.rules {
		if word&r.mask == r.bits {
			return i, true
		}
	}
	return 0, false
}

// NumRules returns the number of rules in the matcher.
func (m *Matcher) NumRules() int {
	return len(m.rules)
}
