package bst

import (
	"iter"
	"strings"
)

// Tree is a persistent binary search tree. Its variants are Empty and *Node;
// no other implementations exist.
type Tree interface {
	// Insert returns a tree containing key. If key is already present, the
	// receiver itself is returned.
	Insert(key string) Tree
	// Contains reports whether key is present.
	Contains(key string) bool
	// Size is the number of keys in the tree.
	Size() int
	// Height is the number of nodes on the longest root-to-leaf path.
	Height() int
	// Keys iterates over the keys in ascending order.
	Keys() iter.Seq[string]
	// Digest is a hash over the shape and the keys of the tree.
	Digest() [32]byte
	// String renders the tree fully parenthesized in infix order,
	// e.g. "((a)b(c))". The empty tree renders as "".
	String() string

	writeTo(*strings.Builder)
	walk(yield func(string) bool) bool
}

// New returns a tree containing keys, inserted from left to right.
func New(keys ...string) Tree {
	var t Tree = Empty{}
	for _, key := range keys {
		t = t.Insert(key)
	}
	return t
}

// Insert inserts key into t. A nil t is treated as the empty tree.
func Insert(t Tree, key string) Tree {
	return orEmpty(t).Insert(key)
}

// --- Empty -----------------------------------------------------------------

// Empty is the empty tree. It also terminates every branch of a non-empty tree.
type Empty struct{}

var _ Tree = Empty{}

func (Empty) Insert(key string) Tree {
	tracer().Debugf("new leaf %q", key)
	return newNode(key, Empty{}, Empty{})
}

func (Empty) Contains(string) bool { return false }

func (Empty) Size() int { return 0 }

func (Empty) Height() int { return 0 }

func (Empty) Keys() iter.Seq[string] {
	return func(func(string) bool) {}
}

func (Empty) Digest() [32]byte { return emptyDigest }

func (Empty) String() string { return "" }

func (Empty) writeTo(*strings.Builder) {}

func (Empty) walk(func(string) bool) bool { return true }

// --- Node ------------------------------------------------------------------

// Node is a non-empty tree. Every key in Left is less than Value, every key
// in Right is greater.
//
// Nodes are created by inserting into a tree; their size, height and digest
// are computed once at creation. A nil *Node and the zero Node behave like
// Empty.
type Node struct {
	value  string
	left   Tree
	right  Tree
	size   int
	height int
	digest [32]byte
}

var _ Tree = (*Node)(nil)

func newNode(value string, left, right Tree) *Node {
	left, right = orEmpty(left), orEmpty(right)
	if l, ok := left.(*Node); ok {
		assertThat(l.value < value, "left child %q not less than %q", l.value, value)
	}
	if r, ok := right.(*Node); ok {
		assertThat(r.value > value, "right child %q not greater than %q", r.value, value)
	}
	n := &Node{
		value:  value,
		left:   left,
		right:  right,
		size:   1 + left.Size() + right.Size(),
		height: 1 + max(left.Height(), right.Height()),
	}
	n.digest = nodeDigest(n)
	return n
}

// empty is true for nil and for zero Nodes, which were not built by newNode.
func (n *Node) empty() bool { return n == nil || n.size == 0 }

// Value returns the key held by n, or "" if n is empty.
func (n *Node) Value() string {
	if n.empty() {
		return ""
	}
	return n.value
}

// Left returns the subtree of keys less than n.Value().
func (n *Node) Left() Tree {
	if n.empty() {
		return Empty{}
	}
	return orEmpty(n.left)
}

// Right returns the subtree of keys greater than n.Value().
func (n *Node) Right() Tree {
	if n.empty() {
		return Empty{}
	}
	return orEmpty(n.right)
}

func (n *Node) Insert(key string) Tree {
	switch {
	case n.empty():
		return Empty{}.Insert(key)
	case key == n.value:
		return n
	case key < n.value:
		tracer().Debugf("copy %q, new left branch for %q", n.value, key)
		left := n.Left().Insert(key)
		if left == n.left {
			return n
		}
		return newNode(n.value, left, n.right)
	default:
		tracer().Debugf("copy %q, new right branch for %q", n.value, key)
		right := n.Right().Insert(key)
		if right == n.right {
			return n
		}
		return newNode(n.value, n.left, right)
	}
}

func (n *Node) Contains(key string) bool {
	var t Tree = n
	for {
		node, ok := t.(*Node)
		if !ok || node.empty() {
			return false
		}
		switch {
		case key == node.value:
			return true
		case key < node.value:
			t = node.Left()
		default:
			t = node.Right()
		}
	}
}

func (n *Node) Size() int {
	if n.empty() {
		return 0
	}
	return n.size
}

func (n *Node) Height() int {
	if n.empty() {
		return 0
	}
	return n.height
}

func (n *Node) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(string) bool) bool {
	if n.empty() {
		return true
	}
	return n.Left().walk(yield) && yield(n.value) && n.Right().walk(yield)
}

func (n *Node) Digest() [32]byte {
	if n.empty() {
		return emptyDigest
	}
	return n.digest
}

func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	if n.empty() {
		return
	}
	sb.WriteByte('(')
	n.Left().writeTo(sb)
	sb.WriteString(n.value)
	n.Right().writeTo(sb)
	sb.WriteByte(')')
}

func (n *Node) isLeaf() bool {
	return n.Left().Size() == 0 && n.Right().Size() == 0
}

// --- Helpers ---------------------------------------------------------------

func orEmpty(t Tree) Tree {
	if t == nil {
		return Empty{}
	}
	if n, ok := t.(*Node); ok && n.empty() {
		return Empty{}
	}
	return t
}
