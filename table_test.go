package m68k

import "testing"

func TestCompileCollapsesUniformTable(t *testing.T) {
	// A single catch-all rule makes every word decode identically, so
	// the whole table collapses into a root-level leaf.
	m := mustMatcher(t, Rule{"ANY", "xxxxxxxxxxxxxxxx"})
	tbl := Compile(m)

	if !tbl.Root.Leaf() {
		t.Fatalf("root is a branch, want a leaf")
	}
	if !tbl.Root.Matched || tbl.Root.Mnemonic != "ANY" {
		t.Errorf("root leaf = %q, %v, want ANY, true", tbl.Root.Mnemonic, tbl.Root.Matched)
	}
	if tbl.Stats.TotalEntries != 64 {
		t.Errorf("TotalEntries = %d, want 64", tbl.Stats.TotalEntries)
	}
	if tbl.Stats.UniqueShapes != 1 {
		t.Errorf("UniqueShapes = %d, want 1", tbl.Stats.UniqueShapes)
	}
}

func TestCompileEmptyTable(t *testing.T) {
	// No rules at all: one root leaf covering all-unmatched space.
	tbl := Compile(mustMatcher(t))

	if !tbl.Root.Leaf() || tbl.Root.Matched {
		t.Fatalf("root = leaf:%v matched:%v, want an unmatched leaf", tbl.Root.Leaf(), tbl.Root.Matched)
	}
	if tbl.Stats.TotalEntries != 64 || tbl.Stats.UniqueShapes != 1 {
		t.Errorf("Stats = %+v, want TotalEntries 64, UniqueShapes 1", tbl.Stats)
	}
}

func TestCompileSingleRule(t *testing.T) {
	// One fully fixed rule forces a branch chain down to level 4 along
	// the 4/4E/4E7 prefixes and collapses everything else. The repeated
	// all-unmatched leaves at each level dedupe to one shape per level.
	m := mustMatcher(t, Rule{"NOP", "0100111001110001"})
	tbl := Compile(m)

	if tbl.Root.Leaf() {
		t.Fatalf("root is a leaf, want a branch")
	}
	if tbl.Stats.TotalEntries != 162 {
		t.Errorf("TotalEntries = %d, want 162", tbl.Stats.TotalEntries)
	}
	if tbl.Stats.UniqueShapes != 9 {
		t.Errorf("UniqueShapes = %d, want 9", tbl.Stats.UniqueShapes)
	}
}

func TestCompileEquivalence(t *testing.T) {
	// Decoding through the compiled table must agree with the matcher
	// on every possible word, checked exhaustively.
	m := mustMatcher(t,
		Rule{"NOP", "0100111001110001"},
		Rule{"RESET", "0100111001110000"},
		Rule{"DBcc", "0101xxxx11001xxx"},
		Rule{"Scc", "0101xxxx11xxxxxx"},
		Rule{"MOVEQ", "0111xxx0xxxxxxxx"},
	)
	tbl := Compile(m)

	for w := 0; w < 1<<PatternLen; w++ {
		wantMn, wantOK := m.Match(uint16(w))
		gotMn, gotOK := tbl.Lookup(uint16(w))
		if gotMn != wantMn || gotOK != wantOK {
			t.Fatalf("Lookup(0x%04X) = %q, %v, want %q, %v", w, gotMn, gotOK, wantMn, wantOK)
		}
	}
}

// walkNodes visits every node of the tree, children after their parent.
func walkNodes(n *TableNode, visit func(*TableNode)) {
	visit(n)
	for _, c := range n.Children {
		walkNodes(c, visit)
	}
}

func TestLeafCollapseSoundness(t *testing.T) {
	// Every leaf's answer must hold for every completion of its prefix,
	// verified against the matcher directly.
	m := mustMatcher(t,
		Rule{"DBcc", "0101xxxx11001xxx"},
		Rule{"Scc", "0101xxxx11xxxxxx"},
		Rule{"ADDQb", "0101xxx000xxxxxx"},
		Rule{"Bcc", "0110xxxxxxxxxxxx"},
	)
	tbl := Compile(m)

	walkNodes(tbl.Root, func(n *TableNode) {
		if !n.Leaf() {
			return
		}
		span := uint(16 - 4*n.Level)
		base := uint32(n.Prefix) << span
		for p := uint32(0); p < 1<<span; p++ {
			mn, ok := m.Match(uint16(base | p))
			if mn != n.Mnemonic || ok != n.Matched {
				t.Fatalf("leaf level %d prefix %0*x: word 0x%04X decodes to %q, %v, leaf says %q, %v",
					n.Level, n.Level, n.Prefix, base|p, mn, ok, n.Mnemonic, n.Matched)
			}
		}
	})
}

func TestBranchNodesHaveSixteenChildren(t *testing.T) {
	tbl := Compile(mustMatcher(t, Rule{"NOP", "0100111001110001"}))

	walkNodes(tbl.Root, func(n *TableNode) {
		if n.Leaf() {
			if n.Level > TableLevels {
				t.Errorf("leaf at level %d, beyond TableLevels", n.Level)
			}
			return
		}
		if len(n.Children) != 16 {
			t.Errorf("branch level %d prefix %x has %d children, want 16", n.Level, n.Prefix, len(n.Children))
		}
		for i, c := range n.Children {
			if c == nil {
				t.Fatalf("branch level %d prefix %x: child %d is nil", n.Level, n.Prefix, i)
			}
			if c.Level != n.Level+1 {
				t.Errorf("child level = %d, want %d", c.Level, n.Level+1)
			}
			if c.Prefix != n.Prefix<<4|uint16(i) {
				t.Errorf("child prefix = %x, want %x", c.Prefix, n.Prefix<<4|uint16(i))
			}
		}
	})
}

func TestDedupAccounting(t *testing.T) {
	// Summing node costs for first-seen shapes only, in the same
	// children-before-parent order the compiler uses, must reproduce
	// TotalEntries exactly. Re-encountered shapes contribute nothing.
	m := mustMatcher(t,
		Rule{"TRAP", "010011100100xxxx"},
		Rule{"MOVEQ", "0111xxx0xxxxxxxx"},
		Rule{"Bcc", "0110xxxxxxxxxxxx"},
	)
	tbl := Compile(m)

	var post func(n *TableNode)
	var order []*TableNode
	post = func(n *TableNode) {
		for _, c := range n.Children {
			post(c)
		}
		order = append(order, n)
	}
	post(tbl.Root)

	reg := NewDedupRegistry()
	total := 0
	for _, n := range order {
		if reg.Insert(shapeHash(n)) {
			total += nodeCost(n)
		}
	}

	if total != tbl.Stats.TotalEntries {
		t.Errorf("first-seen cost sum = %d, want TotalEntries %d", total, tbl.Stats.TotalEntries)
	}
	if reg.Len() != tbl.Stats.UniqueShapes {
		t.Errorf("first-seen shapes = %d, want UniqueShapes %d", reg.Len(), tbl.Stats.UniqueShapes)
	}
}

func TestNodeCost(t *testing.T) {
	branch := &TableNode{Level: 1, Children: make([]*TableNode, 16)}
	if got := nodeCost(branch); got != 16 {
		t.Errorf("branch cost = %d, want 16", got)
	}
	leaf2 := &TableNode{Level: 2}
	if got := nodeCost(leaf2); got != 32 {
		t.Errorf("level-2 leaf cost = %d, want 32", got)
	}
	leaf4 := &TableNode{Level: 4}
	if got := nodeCost(leaf4); got != 1 {
		t.Errorf("level-4 leaf cost = %d, want 1", got)
	}
}

func TestShapeHashLevelSensitive(t *testing.T) {
	// Same answer at different levels covers differently sized ranges
	// and must stay a distinct shape.
	a := &TableNode{Level: 1, Mnemonic: "NOP", Matched: true}
	b := &TableNode{Level: 2, Mnemonic: "NOP", Matched: true}
	if shapeHash(a) == shapeHash(b) {
		t.Errorf("leaves at different levels hash equal")
	}

	// Unmatched and a rule literally named "none"-alike must differ too.
	c := &TableNode{Level: 1}
	d := &TableNode{Level: 1, Mnemonic: "", Matched: true}
	if shapeHash(c) == shapeHash(d) {
		t.Errorf("unmatched leaf hashes equal to matched empty-mnemonic leaf")
	}
}

func TestDedupRegistryInsert(t *testing.T) {
	reg := NewDedupRegistry()

	if !reg.Insert(42) {
		t.Errorf("first Insert(42) = false, want true")
	}
	if reg.Insert(42) {
		t.Errorf("second Insert(42) = true, want false")
	}
	if !reg.Insert(7) {
		t.Errorf("Insert(7) = false, want true")
	}
	if got := reg.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}
