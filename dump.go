package m68k

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the tree shape to w, one node per line, indented one tab
// per level past the first. Fixed prefix nibbles print as hex digits and
// open nibbles as x; leaves append their answer, with "none" marking
// unmatched opcode space. The root itself has no line, matching its
// empty prefix.
func (t *Table) Dump(w io.Writer) error {
	return dumpNode(w, t.Root)
}

func dumpNode(w io.Writer, n *TableNode) error {
	if n.Level > 0 {
		label := fmt.Sprintf("%s%0*x%s",
			strings.Repeat("\t", n.Level-1),
			n.Level, n.Prefix,
			strings.Repeat("x", TableLevels-n.Level))

		var err error
		if n.Leaf() {
			answer := "none"
			if n.Matched {
				answer = n.Mnemonic
			}
			_, err = fmt.Fprintf(w, "%s %s\n", label, answer)
		} else {
			_, err = fmt.Fprintln(w, label)
		}
		if err != nil {
			return err
		}
	}

	for _, c := range n.Children {
		if err := dumpNode(w, c); err != nil {
			return err
		}
	}
	return nil
}
