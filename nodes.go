// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package ntree

// Node is a labeled element of a tree. It owns an ordered sequence of
// child nodes and holds a back-reference to its parent, nil for a root.
// The parent reference and the children sequence are kept consistent by
// construction: the only way to set a node's parent is to attach it
// through AddChild (directly or via New, AddChildren, or Move), and the
// only way to clear it is Remove or Move.
//
// The name is a label, not a key. Two nodes in the same tree may share
// a name; see Find for how collisions resolve.
type Node struct {
	name     string
	data     any
	parent   *Node
	children []*Node
}

// Option configures a node during construction.
type Option func(n *Node) error

// WithData sets the node's payload. The payload is opaque to the tree;
// no operation inspects it.
func WithData(data any) Option {
	return func(n *Node) error {
		n.data = data
		return nil
	}
}

// WithParent attaches the new node as the last child of parent.
func WithParent(parent *Node) Option {
	return func(n *Node) error {
		if parent == nil {
			return &TreeError{Op: "new", Name: n.name, Err: ErrNilNode}
		}
		return parent.AddChild(n)
	}
}

// WithChildren attaches each of the given nodes, in order, as children
// of the new node. Nodes already attached elsewhere are detached from
// their old parent first.
func WithChildren(children ...*Node) Option {
	return func(n *Node) error {
		return n.AddChildren(children...)
	}
}

// New creates a node. An empty name is replaced with DefaultName.
func New(name string, options ...Option) (*Node, error) {
	n := &Node{name: name}
	if n.name == "" {
		n.name = DefaultName
	}
	for _, option := range options {
		if err := option(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Name returns the node's label.
func (n *Node) Name() string {
	return n.name
}

// Data returns the node's payload.
func (n *Node) Data() any {
	return n.data
}

// SetData replaces the node's payload.
func (n *Node) SetData(data any) {
	n.data = data
}

// Parent returns the node's parent, nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the node's children in insertion order.
// Mutating the returned slice does not affect the tree.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Root walks parent links upward and returns the root of the tree
// containing the node.
func (n *Node) Root() *Node {
	at := n
	for at.parent != nil {
		at = at.parent
	}
	return at
}

// AddChild attaches child as the last child of the node. If child is
// already attached to another parent, it is detached from that parent
// first, so a node is a child of at most one parent at a time.
//
// Returns ErrNilNode if child is nil, and ErrCycle if child is the
// node itself or one of its ancestors.
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		return &TreeError{Op: "add-child", Name: n.name, Err: ErrNilNode}
	}
	if child.isAncestorOf(n) {
		return &TreeError{Op: "add-child", Name: child.name, Err: ErrCycle}
	}
	child.detach()
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// AddChildren attaches each of the given nodes, in order, as children
// of the node. The batch is not atomic: it fails fast on the first bad
// element, and nodes attached before the failure stay attached.
func (n *Node) AddChildren(children ...*Node) error {
	for _, child := range children {
		if err := n.AddChild(child); err != nil {
			return err
		}
	}
	return nil
}

// Remove detaches the subtree rooted at node from the tree rooted at
// the receiver. Only the link to the old parent is severed; node keeps
// its own children and remains usable as a root.
//
// The precondition is checked by name: Find from the receiver must
// locate node's name. Returns ErrNotFound if it does not, and
// ErrNoParent if node is itself a root.
func (n *Node) Remove(node *Node) error {
	if node == nil {
		return &TreeError{Op: "remove", Name: n.name, Err: ErrNilNode}
	}
	if n.Find(node.name) == nil {
		return &TreeError{Op: "remove", Name: node.name, Err: ErrNotFound}
	}
	if node.parent == nil {
		return &TreeError{Op: "remove", Name: node.name, Err: ErrNoParent}
	}
	node.detach()
	return nil
}

// Move detaches the subtree rooted at node and re-attaches it as the
// last child of newParent. It is Remove followed by AddChild, with all
// argument checks performed up front so a failed call leaves the tree
// unchanged.
func (n *Node) Move(node, newParent *Node) error {
	if node == nil || newParent == nil {
		return &TreeError{Op: "move", Name: n.name, Err: ErrNilNode}
	}
	if node.isAncestorOf(newParent) {
		return &TreeError{Op: "move", Name: node.name, Err: ErrCycle}
	}
	if err := n.Remove(node); err != nil {
		return err
	}
	return newParent.AddChild(node)
}

// Find returns the first node named name in the subtree rooted at the
// receiver, in depth-first pre-order with children visited in insertion
// order, or nil if there is none. When names collide, the pre-order
// tie-break is deterministic and part of the contract.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Walk visits every node in the subtree rooted at the receiver in
// depth-first pre-order, children in insertion order. The traversal
// stops early if visit returns false. The walk is iterative, so depth
// is bounded by memory rather than the goroutine stack.
func (n *Node) Walk(visit func(*Node) bool) {
	stack := []*Node{n}
	for len(stack) != 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(node) {
			return
		}
		for i := len(node.children) - 1; i >= 0; i-- {
			stack = append(stack, node.children[i])
		}
	}
}

// Size returns the number of nodes in the subtree rooted at the
// receiver, including the receiver.
func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Siblings returns node's parent's children, in order, excluding node
// itself. Exclusion is by identity, not name, so two distinct nodes
// sharing a name are distinguished.
//
// Returns ErrNotFound if node's name is not findable from the
// receiver, and ErrNoParent if node is a root.
func (n *Node) Siblings(node *Node) ([]*Node, error) {
	if node == nil {
		return nil, &TreeError{Op: "siblings", Name: n.name, Err: ErrNilNode}
	}
	if n.Find(node.name) == nil {
		return nil, &TreeError{Op: "siblings", Name: node.name, Err: ErrNotFound}
	}
	if node.parent == nil {
		return nil, &TreeError{Op: "siblings", Name: node.name, Err: ErrNoParent}
	}
	var siblings []*Node
	for _, child := range node.parent.children {
		if child != node {
			siblings = append(siblings, child)
		}
	}
	return siblings, nil
}

// Descendants returns every node in the subtree rooted at node except
// node itself, in depth-first pre-order with children in insertion
// order.
//
// Returns ErrNotFound if node's name is not findable from the receiver.
func (n *Node) Descendants(node *Node) ([]*Node, error) {
	if node == nil {
		return nil, &TreeError{Op: "descendants", Name: n.name, Err: ErrNilNode}
	}
	if n.Find(node.name) == nil {
		return nil, &TreeError{Op: "descendants", Name: node.name, Err: ErrNotFound}
	}
	var descendants []*Node
	node.Walk(func(d *Node) bool {
		if d != node {
			descendants = append(descendants, d)
		}
		return true
	})
	return descendants, nil
}

// Tier returns the depth of node relative to the receiver, computed by
// walking parent links upward. The receiver is tier 0 and each parent
// step adds one.
//
// The name-based precondition (Find from the receiver) and the
// parent-link walk are independent checks. If the name is findable but
// the walk reaches a root without passing through the receiver, Tier
// returns ErrNotFound rather than looping.
func (n *Node) Tier(node *Node) (int, error) {
	if node == nil {
		return 0, &TreeError{Op: "tier", Name: n.name, Err: ErrNilNode}
	}
	if n.Find(node.name) == nil {
		return 0, &TreeError{Op: "tier", Name: node.name, Err: ErrNotFound}
	}
	tier := 0
	for at := node; at != n; at = at.parent {
		if at.parent == nil {
			return 0, &TreeError{Op: "tier", Name: node.name, Err: ErrNotFound}
		}
		tier++
	}
	return tier, nil
}

// isAncestorOf reports whether n is node or an ancestor of node.
func (n *Node) isAncestorOf(node *Node) bool {
	for at := node; at != nil; at = at.parent {
		if at == n {
			return true
		}
	}
	return false
}

// detach unlinks the node from its parent, removing it from the
// parent's children sequence and clearing the back-reference. No-op
// for a root.
func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, child := range p.children {
		if child == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}
