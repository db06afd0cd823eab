package go_adaptive_radix_tree

import (
	"github.com/datnguyenzzz/go-adaptive-radix-tree/internal"
)

// Tree is an implementation of a radix tree with adaptive nodes.
// It is also compatible with the interfaces of the popular radix tree library.
// https://github.com/hashicorp/go-immutable-radix
//
// The tree is not safe for concurrent mutation. Stored values are
// caller owned: replace and delete hand the displaced value back and
// the tree never releases values itself.
type Tree[V any] struct {
	root internal.INode[V] // root node, nil when the tree is empty
	size int
}

func NewTree[V any]() *Tree[V] {
	return &Tree[V]{}
}

func (t *Tree[V]) Insert(key Key, value V) (V, bool) {
	old, replaced := internal.InsertNode(&t.root, key, value)
	if !replaced {
		t.size++
	}
	return old, replaced
}

func (t *Tree[V]) Delete(key Key) (V, bool) {
	old, removed := internal.RemoveNode(&t.root, key)
	if removed {
		t.size--
	}
	return old, removed
}

func (t *Tree[V]) Get(key Key) (V, bool) {
	return internal.Get(t.root, key)
}

func (t *Tree[V]) Len() int {
	return t.size
}

func (t *Tree[V]) Minimum() (Key, V, bool) {
	k, v, ok := internal.Minimum(t.root)
	return k, v, ok
}

func (t *Tree[V]) Maximum() (Key, V, bool) {
	k, v, ok := internal.Maximum(t.root)
	return k, v, ok
}

func (t *Tree[V]) Walk(fn WalkFn[V]) {
	internal.Walk(t.root, func(k []byte, v V) bool {
		return fn(k, v)
	})
}

func (t *Tree[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{it: internal.NewIterator(t.root)}
}

func (t *Tree[V]) IteratorFrom(key Key) *Iterator[V] {
	return &Iterator[V]{it: internal.NewLowerBoundIterator(t.root, key)}
}

func (t *Tree[V]) Reset() {
	internal.Cleanup(&t.root)
	t.size = 0
}

// Visualize logs the node graph through the global zap logger.
func (t *Tree[V]) Visualize() {
	internal.Visualize(t.root)
}

var _ ITree[any] = (*Tree[any])(nil)
