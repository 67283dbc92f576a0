// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ntree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mdhender/ntree"
)

func TestString_SingleNode(t *testing.T) {
	n := mustNew(t, "solo")
	if got, want := n.String(), "solo"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestString_Chain(t *testing.T) {
	root := mustNew(t, "")
	a := mustNew(t, "A", ntree.WithParent(root))
	mustNew(t, "B", ntree.WithParent(a))

	want := strings.Join([]string{
		"root",
		"└── A",
		"    └── B",
	}, "\n")
	if got := root.String(); got != want {
		t.Fatalf("String =\n%s\nwant\n%s", got, want)
	}
}

func TestString_FullTree(t *testing.T) {
	root := mustNew(t, "")
	a := mustNew(t, "A", ntree.WithParent(root))
	mustNew(t, "A1", ntree.WithParent(a))
	a2 := mustNew(t, "A2", ntree.WithParent(a))
	mustNew(t, "A21", ntree.WithParent(a2))
	mustNew(t, "A22", ntree.WithParent(a2))
	mustNew(t, "B", ntree.WithParent(root))
	c := mustNew(t, "C", ntree.WithParent(root))
	mustNew(t, "C1", ntree.WithParent(c))
	c2 := mustNew(t, "C2", ntree.WithParent(c))
	mustNew(t, "C21", ntree.WithParent(c2))
	mustNew(t, "C22", ntree.WithParent(c2))

	want := strings.Join([]string{
		"root",
		"├── A",
		"│   ├── A1",
		"│   └── A2",
		"│       ├── A21",
		"│       └── A22",
		"├── B",
		"└── C",
		"    ├── C1",
		"    └── C2",
		"        ├── C21",
		"        └── C22",
	}, "\n")
	if got := root.String(); got != want {
		t.Fatalf("String =\n%s\nwant\n%s", got, want)
	}
}

func TestString_RenderFollowsMove(t *testing.T) {
	root := mustNew(t, "")
	a := mustNew(t, "A", ntree.WithParent(root))
	b := mustNew(t, "B", ntree.WithParent(root))

	if err := root.Move(a, b); err != nil {
		t.Fatalf("move: %v", err)
	}
	want := strings.Join([]string{
		"root",
		"└── B",
		"    └── A",
	}, "\n")
	if got := root.String(); got != want {
		t.Fatalf("String =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteTree(t *testing.T) {
	root := mustNew(t, "")
	mustNew(t, "A", ntree.WithParent(root))

	var buf bytes.Buffer
	if err := root.WriteTree(&buf); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	if got, want := buf.String(), "root\n└── A\n"; got != want {
		t.Fatalf("WriteTree = %q, want %q", got, want)
	}
}
