// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package outline parses indented-outline text into an ntree.Node
// tree. Each non-blank line names one node; its depth is given by the
// leading indentation, one level per tab or per tab-width spaces.
// Lines whose first non-blank character is '#' are comments. All
// entries hang off a synthetic root node.
//
// This is an input convenience only. There is no parser for the
// box-drawing rendering that ntree produces, and the outline format is
// not a serialization of tree state (it carries names, nothing else).
package outline

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/mdhender/ntree"
)

const defaultTabWidth = 4

// ErrParse is returned when the outline text is malformed.
type ErrParse struct {
	Line int
	Msg  string
}

func (e *ErrParse) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("outline: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("outline: %s", e.Msg)
}

// ParsePath reads the file at path and parses it with Parse.
func ParsePath(path string, options ...Option) (*ntree.Node, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(input, options...)
}

// Parse parses outline text into a tree and returns its root. An entry
// may be indented at most one level deeper than the entry before it;
// shallower entries pop back to the matching level. CR+LF line endings
// are accepted.
func Parse(input []byte, options ...Option) (*ntree.Node, error) {
	config := &Config{
		tabWidth: defaultTabWidth,
		rootName: ntree.DefaultName,
	}
	for _, option := range options {
		if err := option(config); err != nil {
			return nil, err
		}
	}

	root, err := ntree.New(config.rootName)
	if err != nil {
		return nil, err
	}

	// stack[d] is the parent for an entry at depth d
	stack := []*ntree.Node{root}

	for lineNo, line := range bytes.Split(input, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		name := strings.TrimSpace(string(line))
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}

		depth, err := indentDepth(line, config.tabWidth)
		if err != nil {
			err.Line = lineNo + 1
			return nil, err
		}
		if depth > len(stack)-1 {
			return nil, &ErrParse{Line: lineNo + 1, Msg: fmt.Sprintf("entry %q skips an indentation level", name)}
		}

		node, err2 := ntree.New(name)
		if err2 != nil {
			return nil, err2
		}
		if err2 = stack[depth].AddChild(node); err2 != nil {
			return nil, err2
		}
		stack = append(stack[:depth+1], node)
	}

	return root, nil
}

// indentDepth converts a line's leading whitespace into an indentation
// level. Tabs count as a full level, spaces accumulate to tabWidth.
func indentDepth(line []byte, tabWidth int) (int, *ErrParse) {
	width := 0
	for _, ch := range line {
		if ch == '\t' {
			width += tabWidth
		} else if ch == ' ' {
			width++
		} else {
			break
		}
	}
	if width%tabWidth != 0 {
		return 0, &ErrParse{Msg: fmt.Sprintf("indentation of %d is not a multiple of %d", width, tabWidth)}
	}
	return width / tabWidth, nil
}
