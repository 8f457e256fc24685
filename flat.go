package m68k

// FlatTable is a 65536-entry decode table indexed directly by the
// instruction word. It trades memory for a single lookup per decode,
// the layout an emulator core wants for its dispatch table. Each entry
// holds the index of the winning rule, or -1 for unmatched space.
type FlatTable struct {
	index [1 << PatternLen]int16
	names []string
}

// NewFlatTable builds the table by matching every possible word
// against m.
func NewFlatTable(m *Matcher) *FlatTable {
	t := &FlatTable{names: make([]string, len(m.rules))}
	for i, r := range m.rules {
		t.names[i] = r.mnemonic
	}
	for w := range t.index {
		if i, ok := m.matchIndex(uint16(w)); ok {
			t.index[w] = int16(i)
		} else {
			t.index[w] = -1
		}
	}
	return t
}

// Lookup returns the mnemonic for word. ok is false for unmatched
// opcode space.
func (t *FlatTable) Lookup(word uint16) (mnemonic string, ok bool) {
	i := t.index[word]
	if i < 0 {
		return "", false
	}
	return t.names[i], true
}
