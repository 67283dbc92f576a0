// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package outline_test

import (
	"strings"
	"testing"

	"github.com/mdhender/ntree/outline"
)

func TestParse_Simple(t *testing.T) {
	input := []byte(strings.Join([]string{
		"A",
		"    A1",
		"    A2",
		"        A21",
		"        A22",
		"B",
	}, "\n"))

	root, err := outline.Parse(input)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := strings.Join([]string{
		"root",
		"├── A",
		"│   ├── A1",
		"│   └── A2",
		"│       ├── A21",
		"│       └── A22",
		"└── B",
	}, "\n")
	if got := root.String(); got != want {
		t.Fatalf("String =\n%s\nwant\n%s", got, want)
	}
}

func TestParse_TabsAndCRLF(t *testing.T) {
	input := []byte("A\r\n\tA1\r\nB\r\n")

	root, err := outline.Parse(input)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := root.Size(), 4; got != want {
		t.Fatalf("Size = %d, want %d", got, want)
	}
	a1 := root.Find("A1")
	if a1 == nil || a1.Parent() != root.Find("A") {
		t.Fatalf("A1 not parsed as child of A")
	}
}

func TestParse_SkipsBlanksAndComments(t *testing.T) {
	input := []byte(strings.Join([]string{
		"# fruit trees",
		"",
		"apple",
		"    gala",
		"    # varieties below are heirloom",
		"    gravenstein",
		"",
	}, "\n"))

	root, err := outline.Parse(input)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := root.Size(), 4; got != want {
		t.Fatalf("Size = %d, want %d", got, want)
	}
}

func TestParse_Options(t *testing.T) {
	input := []byte("A\n  A1\n")

	root, err := outline.Parse(input, outline.WithTabWidth(2), outline.WithRootName("top"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := root.Name(), "top"; got != want {
		t.Fatalf("root name = %q, want %q", got, want)
	}
	if got := root.Find("A1"); got == nil || got.Parent().Name() != "A" {
		t.Fatalf("A1 not parsed as child of A at tab width 2")
	}
}

func TestParse_SkippedLevel(t *testing.T) {
	input := []byte("A\n        too-deep\n")

	_, err := outline.Parse(input)
	perr, ok := err.(*outline.ErrParse)
	if !ok {
		t.Fatalf("error = %v, want *ErrParse", err)
	}
	if got, want := perr.Line, 2; got != want {
		t.Fatalf("Line = %d, want %d", got, want)
	}
}

func TestParse_RaggedIndent(t *testing.T) {
	input := []byte("A\n   ragged\n")

	_, err := outline.Parse(input)
	if _, ok := err.(*outline.ErrParse); !ok {
		t.Fatalf("error = %v, want *ErrParse", err)
	}
}

func TestParse_Empty(t *testing.T) {
	root, err := outline.Parse(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := root.Size(), 1; got != want {
		t.Fatalf("Size = %d, want %d", got, want)
	}
}
