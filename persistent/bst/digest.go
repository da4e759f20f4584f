package bst

import (
	"encoding/binary"

	"github.com/minio/blake2b-simd"
)

var emptyDigest = blake2b.Sum256([]byte{'E'})

// nodeDigest hashes n's key together with the digests of its subtrees.
// The key is length-prefixed, so that differently split keys never
// produce the same input.
func nodeDigest(n *Node) [32]byte {
	l, r := n.Left().Digest(), n.Right().Digest()
	buf := make([]byte, 0, 1+len(l)+binary.MaxVarintLen64+len(n.value)+len(r))
	buf = append(buf, 'N')
	buf = append(buf, l[:]...)
	buf = binary.AppendUvarint(buf, uint64(len(n.value)))
	buf = append(buf, n.value...)
	buf = append(buf, r[:]...)
	return blake2b.Sum256(buf)
}

// Equal reports whether a and b have the same shape and hold the same keys
// at the same positions. Trees built from the same keys in a different
// order may differ in shape and are not equal.
//
// Equal compares cached digests and does not walk the trees.
func Equal(a, b Tree) bool {
	a, b = orEmpty(a), orEmpty(b)
	if a == b {
		return true
	}
	return a.Digest() == b.Digest()
}
