// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ntree

import (
	"fmt"
	"io"
	"strings"
)

// String renders the subtree rooted at the node as a multi-line text
// tree, one node per line. The root line is the bare name; every other
// line is prefixed per depth and position:
//
//	root
//	├── A
//	│   ├── A1
//	│   └── A2
//	└── B
//
// The connector is "└── " for the last child at a level and "├── "
// otherwise; the prefix accumulates "    " after a last-child ancestor
// and "│   " after any other. The format is display-only; there is no
// parser for it.
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString(n.name)
	for i, child := range n.children {
		sb.WriteByte('\n')
		child.render(&sb, "", i == len(n.children)-1)
	}
	return sb.String()
}

func (n *Node) render(sb *strings.Builder, prefix string, last bool) {
	connector, childPrefix := "├── ", prefix+"│   "
	if last {
		connector, childPrefix = "└── ", prefix+"    "
	}
	sb.WriteString(prefix)
	sb.WriteString(connector)
	sb.WriteString(n.name)
	for i, child := range n.children {
		sb.WriteByte('\n')
		child.render(sb, childPrefix, i == len(n.children)-1)
	}
}

// WriteTree writes the rendering of String to w, followed by a newline.
func (n *Node) WriteTree(w io.Writer) error {
	_, err := fmt.Fprintln(w, n.String())
	return err
}
