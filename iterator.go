package go_adaptive_radix_tree

import (
	"github.com/datnguyenzzz/go-adaptive-radix-tree/internal"
)

// Iterator yields the stored key/value pairs in ascending
// lexicographic key order. Mutating the tree invalidates every live
// iterator; advancing one afterwards is undefined.
type Iterator[V any] struct {
	it *internal.Iterator[V]
}

// HasNext reports whether another key/value pair remains. An exhausted
// iterator stays exhausted.
func (it *Iterator[V]) HasNext() bool {
	return it.it.HasNext()
}

// Next returns the current key/value pair and advances the iterator.
// The bool is false once the iterator is exhausted.
func (it *Iterator[V]) Next() (Key, V, bool) {
	k, v, ok := it.it.Next()
	return k, v, ok
}
