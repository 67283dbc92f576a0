// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package ntree implements an in-memory tree of named nodes with
// ordered children. Nodes are created with New, linked with AddChild,
// AddChildren, and Move, and queried with Find, Siblings, Descendants,
// and Tier. Any node can serve as the root for an operation; queries
// are always relative to the node they are invoked on.
//
// There is no separate tree wrapper. A Node is simultaneously a node
// and the tree rooted at that node. Names are labels, not keys: the
// package never enforces uniqueness, and Find resolves collisions to
// the first match in pre-order, children in insertion order.
//
// The package is not safe for concurrent mutation. Callers sharing a
// tree across goroutines must provide their own synchronization, such
// as a single mutex guarding the whole tree.
package ntree

// DefaultName is the name assigned to a node created with an empty name.
const DefaultName = "root"
