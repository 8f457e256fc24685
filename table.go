package m68k

import (
	"encoding/binary"
	"hash/fnv"
)

// TableLevels is the depth of the compiled table. Four levels of four
// bits cover the 16-bit instruction word, most-significant nibble first.
const TableLevels = 4

// TableNode is one node of the compiled hierarchical decode table.
// A node is either a leaf, holding the single answer valid for every
// word under its prefix, or a branch with 16 children indexed by the
// next nibble of the word.
type TableNode struct {
	// Level is the depth of this node, 0 (root) through TableLevels.
	// Each level below the root fixes four more bits of the word.
	Level int

	// Prefix holds the bits fixed by ancestor levels, one nibble per
	// level, in the low Level*4 bits.
	Prefix uint16

	// Mnemonic and Matched hold a leaf's answer. Matched is false when
	// the entire range under Prefix is unmatched opcode space.
	Mnemonic string
	Matched  bool

	// Children holds a branch's 16 sub-tables, indexed by the next
	// nibble of the word. Nil for a leaf.
	Children []*TableNode
}

// Leaf reports whether the node is a leaf.
func (n *TableNode) Leaf() bool {
	return n.Children == nil
}

// TableStats summarizes the size of a compiled table.
type TableStats struct {
	// TotalEntries is the number of table slots a generated multi-level
	// table would need, counting each distinct sub-table shape once and
	// treating repeats as references to the first occurrence.
	TotalEntries int

	// UniqueShapes is the number of structurally distinct node shapes
	// in the tree.
	UniqueShapes int
}

// Table is a compiled hierarchical decode table. Looking up any word in
// the table yields exactly what the source Matcher returns for it.
type Table struct {
	Root  *TableNode
	Stats TableStats
}

// Compile builds the nibble-trie decode table for m. Construction is in
// two phases: the tree is built first, collapsing every prefix range
// whose words all decode identically, then a separate accounting walk
// computes the size statistics with structural deduplication.
func Compile(m *Matcher) *Table {
	root := buildNode(m, 0, 0)

	reg := NewDedupRegistry()
	total := accountNode(root, reg)

	return &Table{
		Root: root,
		Stats: TableStats{
			TotalEntries: total,
			UniqueShapes: reg.Len(),
		},
	}
}

// buildNode compiles the sub-table for the words sharing prefix at the
// given level. A node collapses to a leaf only when the matcher returns
// the same answer for every completion of the remaining bits; the check
// is exhaustive, never sampled. At the bottom level the prefix fully
// determines the word and the node is trivially a leaf.
func buildNode(m *Matcher, prefix uint16, level int) *TableNode {
	n := &TableNode{Level: level, Prefix: prefix}

	if level == TableLevels {
		n.Mnemonic, n.Matched = m.Match(prefix)
		return n
	}

	span := uint(16 - 4*level)
	base := uint32(prefix) << span
	first, firstOK := m.Match(uint16(base))

	collapse := true
	for p := uint32(1); p < 1<<span; p++ {
		mn, ok := m.Match(uint16(base | p))
		if mn != first || ok != firstOK {
			collapse = false
			break
		}
	}
	if collapse {
		n.Mnemonic = first
		n.Matched = firstOK
		return n
	}

	n.Children = make([]*TableNode, 16)
	for i := uint16(0); i < 16; i++ {
		n.Children[i] = buildNode(m, prefix<<4|i, level+1)
	}
	return n
}

// accountNode returns the node's marginal contribution to TotalEntries.
// Children are accounted before their parent, so a repeated branch
// always finds its children already registered; a shape already in the
// registry contributes nothing, modeling a layout that stores the
// sub-table once and references it from every parent that repeats it.
func accountNode(n *TableNode, reg *DedupRegistry) int {
	cost := nodeCost(n)
	for _, c := range n.Children {
		cost += accountNode(c, reg)
	}
	if !reg.Insert(shapeHash(n)) {
		return 0
	}
	return cost
}

// nodeCost is the number of table slots the node itself accounts for: a
// branch holds 16 child slots, a leaf above the bottom level stands in
// for the flat table a generator would otherwise emit from its level
// down, and a bottom-level leaf is a single entry.
func nodeCost(n *TableNode) int {
	switch {
	case !n.Leaf():
		return 16
	case n.Level == TableLevels:
		return 1
	default:
		return (TableLevels - n.Level) * 16
	}
}

// shapeHash returns a content hash of the node's decode behavior. A leaf
// hashes its answer together with its level, so equal answers covering
// differently sized ranges stay distinct shapes. A branch hashes the
// ordered tuple of its children's hashes.
func shapeHash(n *TableNode) uint64 {
	h := fnv.New64a()
	if n.Leaf() {
		h.Write([]byte{'L', byte(n.Level)})
		if n.Matched {
			h.Write([]byte{1})
			h.Write([]byte(n.Mnemonic))
		} else {
			h.Write([]byte{0})
		}
		return h.Sum64()
	}

	var buf [8]byte
	h.Write([]byte{'B'})
	for _, c := range n.Children {
		binary.BigEndian.PutUint64(buf[:], shapeHash(c))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// Lookup decodes word through the compiled table, one nibble per level.
// ok is false for unmatched opcode space.
func (t *Table) Lookup(word uint16) (mnemonic string, ok bool) {
	n := t.Root
	for !n.Leaf() {
		n = n.Children[word>>(12-4*n.Level)&0xF]
	}
	return n.Mnemonic, n.Matched
}

// DedupRegistry records the structural hashes of node shapes already
// counted toward a table's size. It only affects size reporting; decode
// behavior never consults it.
type DedupRegistry struct {
	seen map[uint64]struct{}
}

// NewDedupRegistry returns an empty registry.
func NewDedupRegistry() *DedupRegistry {
	return &DedupRegistry{seen: make(map[uint64]struct{})}
}

// Insert registers h and reports whether it was newly added. Inserting
// a hash that is already present is a no-op.
func (r *DedupRegistry) Insert(h uint64) bool {
	if _, dup := r.seen[h]; dup {
		return false
	}
	r.seen[h] = struct{}{}
	return true
}

// Len returns the number of distinct hashes registered.
func (r *DedupRegistry) Len() int {
	return len(r.seen)
}
