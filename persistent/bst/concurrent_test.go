package bst

import (
	"fmt"
	"math/rand"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Readers and writers share incarnations of a tree without any locking.
// Writers only ever derive new trees; readers must always see the
// incarnation they were handed, completely.
func TestConcurrentReadersOfSharedTree(t *testing.T) {
	keys := make([]string, 200)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%04d", i)
	}
	rand.New(rand.NewSource(7)).Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	base := New(keys[:100]...)
	digest, rendering := base.Digest(), base.String()

	var g errgroup.Group
	for w := 0; w < 4; w++ {
		w := w
		g.Go(func() error {
			tree := base
			for _, k := range keys[100+w*25 : 100+(w+1)*25] {
				tree = tree.Insert(k)
			}
			if tree.Size() != 125 {
				return fmt.Errorf("writer %d: expected size 125, have %d", w, tree.Size())
			}
			return nil
		})
	}
	for r := 0; r < 8; r++ {
		r := r
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				if base.Size() != 100 || base.Digest() != digest {
					return fmt.Errorf("reader %d: shared tree changed", r)
				}
				for _, k := range keys[:100] {
					if !base.Contains(k) {
						return fmt.Errorf("reader %d: lost key %q", r, k)
					}
				}
			}
			if base.String() != rendering {
				return fmt.Errorf("reader %d: rendering changed", r)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}
