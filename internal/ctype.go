package internal

import (
	"fmt"
)

// errors
var (
	// tree level errors
	failedToAddChild    error = fmt.Errorf("failed to add Child")
	failedToRemoveChild error = fmt.Errorf("failed to remove Child")
	failedToGrowNode    error = fmt.Errorf("failed to grow node")
	failedToShrinkNode  error = fmt.Errorf("failed to shrink node")
	childNodeNotFound   error = fmt.Errorf("Child node not found")
)

// Callback is triggered for every stored Key/value pair during a walk.
// Returning true terminates the walk.
type Callback[V any] func(k []byte, v V) bool

type Kind int8

const (
	KindNodeNoop Kind = iota
	KindNode4
	KindNode16
	KindNode48
	KindNode256
)

type iNodeHeader[V any] interface {
	// checkPrefix compares the compressed path of a node with the Key
	// starting at offset and returns the number of equal bytes
	checkPrefix(key []byte, offset int) int
	getPrefix() []byte
	getPrefixLen() int
	setPrefix(prefix []byte)
	// Value returns the value stored on the node, if any. A node holds
	// a value iff the concatenation of edge bytes and prefixes from the
	// root down to the node spells a stored Key.
	Value() (V, bool)
	SetValue(v V)
	// ClearValue removes and returns the stored value. The caller owns
	// the returned value.
	ClearValue() (V, bool)
	cleanup()
}

// iNodeSizeManager to control the size of the node itself
type iNodeSizeManager[V any] interface {
	grow() (INode[V], error)
	hasEnoughSpace() bool
	shrink() (INode[V], error)
	isShrinkable() bool
}

// iNodeChildrenManager control the node's children
type iNodeChildrenManager[V any] interface {
	addChild(key byte, child INode[V]) error
	removeChild(key byte) error
	// findChild returns a mutable slot holding the Child for the Key,
	// or nil if the Key has no Child. Writing through the slot splices
	// a replacement node into the tree.
	findChild(key byte) *INode[V]
	getChildrenLen() int
	// getChildByIndex returns the idx-th Child in ascending partial Key
	// order together with its partial Key
	getChildByIndex(idx int) (byte, INode[V], error)
	// nextPartialKey returns the smallest partial Key >= lowerBound
	nextPartialKey(lowerBound int) (byte, bool)
}

type INode[V any] interface {
	iNodeHeader[V]
	iNodeSizeManager[V]
	iNodeChildrenManager[V]

	GetKind() Kind
}
