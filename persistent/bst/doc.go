/*
Package bst implements a persistent, unbalanced binary search tree over strings.

A tree is either Empty or a *Node holding a key and two subtrees. Trees are
never modified: inserting a key creates copies of the nodes on the path from
the root down to the insertion point and shares every other subtree with the
original tree. Both the original and the new incarnation stay valid:

	t1 := bst.New("d", "b", "f")
	t2 := t1.Insert("a")
	fmt.Println(t1, t1.Size()) // ((b)d(f)) 3
	fmt.Println(t2, t2.Size()) // (((a)b)d(f)) 4

Keys are ordered by Go's native string comparison. The tree does no
re-balancing; inserting keys in sorted order degrades it to a list.
Clients who need guaranteed logarithmic depth should insert keys in random
order.

As nodes are immutable, trees may be read concurrently without locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exercises.bst'.
func tracer() tracing.Trace {
	return tracing.Select("exercises.bst")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
