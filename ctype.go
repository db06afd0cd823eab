// Compatible with the famous radix tree library - https://github.com/hashicorp/go-immutable-radix

package go_adaptive_radix_tree

type Key []byte

// WalkFn is used when walking the tree. Takes a key and value, returning if iteration should be terminated.
type WalkFn[T any] func(k Key, v T) bool

// ITree shares the same interfaces with https://github.com/hashicorp/go-immutable-radix
type ITree[T any] interface {
	// Insert is used to add or update a given key. The return provides the previous value and a bool indicating if any was set.
	Insert(key Key, value T) (T, bool)
	// Delete is used to delete a given key. Returns the old value if any, and a bool indicating if the key was set.
	Delete(key Key) (T, bool)
	// Get is used to lookup a specific key, returning the value and if it was found
	Get(key Key) (T, bool)
	// Len returns the number of stored keys
	Len() int
	// Minimum is used to return the minimum value in the tree
	Minimum() (Key, T, bool)
	// Maximum is used to return the maximum value in the tree
	Maximum() (Key, T, bool)
	// Walk is used to walk the tree
	Walk(fn WalkFn[T])
	// Iterator returns an iterator positioned at the smallest stored key
	Iterator() *Iterator[T]
	// IteratorFrom returns an iterator positioned at the smallest stored key >= key
	IteratorFrom(key Key) *Iterator[T]
	// Reset releases every internal node and leaves the tree empty.
	// Stored values belong to the caller and are never released.
	Reset()
}
