package bst

import (
	tp "github.com/xlab/treeprint"
)

// Outline draws t as an indented tree, one key per line. A missing child
// of an inner node is drawn as "·", to keep left and right apart.
// Outline is meant for debugging.
func Outline(t Tree) string {
	p := tp.New()
	outline(p, orEmpty(t))
	return p.String()
}

func outline(p tp.Tree, t Tree) {
	node, ok := t.(*Node)
	if !ok {
		return
	}
	if node.isLeaf() {
		p.AddNode(node.value)
		return
	}
	branch := p.AddBranch(node.value)
	for _, ch := range []Tree{node.Left(), node.Right()} {
		if ch.Size() == 0 {
			branch.AddNode("·")
			continue
		}
		outline(branch, ch)
	}
}
