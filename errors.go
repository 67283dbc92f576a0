// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ntree

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by tree operations. They fall into two
// classes: invalid arguments (ErrNilNode, ErrCycle) and violated
// structural preconditions (ErrNotFound, ErrNoParent). Both classes
// indicate contract violations by the caller, not recoverable runtime
// conditions.
var (
	// ErrNilNode is returned when an operation requires a node and
	// receives nil.
	ErrNilNode = errors.New("nil node")

	// ErrCycle is returned when an attachment would make a node a
	// descendant of itself.
	ErrCycle = errors.New("attachment creates cycle")

	// ErrNotFound is returned when a node cannot be located in the
	// subtree being operated on.
	ErrNotFound = errors.New("node not found")

	// ErrNoParent is returned when an operation requires a node with a
	// parent and the node is a root.
	ErrNoParent = errors.New("node has no parent")
)

// TreeError wraps a sentinel error with the operation and the name of
// the node involved. Use errors.Is to test for the sentinel.
type TreeError struct {
	Op   string // add-child, remove, move, siblings, descendants, tier
	Name string
	Err  error
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *TreeError) Unwrap() error {
	return e.Err
}
