package internal

import (
	"fmt"
)

const (
	Node16KeysMax = 16
	// node16 needs at least 5 children, else it can be shrunk to node4
	Node16KeysMin = Node4KeysMax + 1
)

// Node16 This node type is used for storing between 5 and
// 16 child pointers. Like the Node4, the keys and pointers
// are stored in separate arrays at corresponding positions, but
// both arrays have space for 16 entries. A key can be found
// efficiently with binary search or, on modern hardware, with
// parallel comparisons using SIMD instructions.
type Node16[V any] struct {
	nodeHeader[V]
	// keys is an array of length 16 for a 1-byte key. The array is sorted in ascending order.
	keys [Node16KeysMax]byte
	// pointers to children node. children[i] is a child node for a key = keys[i]
	children [Node16KeysMax]INode[V]
}

func (n *Node16[V]) GetKind() Kind {
	return KindNode16
}

func (n *Node16[V]) addChild(key byte, child INode[V]) error {
	if n.childrenLen >= Node16KeysMax {
		return fmt.Errorf("node_16 is maxed out and don't have enough room for a new Key")
	}

	pos := n.childrenLen
	for pos > 0 && n.keys[pos-1] > key {
		n.keys[pos] = n.keys[pos-1]
		n.children[pos] = n.children[pos-1]
		pos--
	}
	n.keys[pos] = key
	n.children[pos] = child
	n.childrenLen++

	return nil
}

func (n *Node16[V]) removeChild(key byte) error {
	pos := -1
	for i := 0; i < n.childrenLen; i++ {
		if n.keys[i] == key {
			pos = i
			break
		}
	}
	if pos == -1 {
		return childNodeNotFound
	}

	for i := pos; i+1 < n.childrenLen; i++ {
		n.keys[i] = n.keys[i+1]
		n.children[i] = n.children[i+1]
	}
	n.childrenLen--
	n.keys[n.childrenLen] = 0
	n.children[n.childrenLen] = nil
	return nil
}

func (n *Node16[V]) findChild(key byte) *INode[V] {
	lo, hi := 0, n.childrenLen-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case n.keys[mid] == key:
			return &n.children[mid]
		case n.keys[mid] < key:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return nil
}

func (n *Node16[V]) getChildrenLen() int {
	return n.childrenLen
}

func (n *Node16[V]) getChildByIndex(idx int) (byte, INode[V], error) {
	if idx < 0 || idx >= n.childrenLen {
		return 0, nil, childNodeNotFound
	}
	return n.keys[idx], n.children[idx], nil
}

func (n *Node16[V]) nextPartialKey(lowerBound int) (byte, bool) {
	for i := 0; i < n.childrenLen; i++ {
		if int(n.keys[i]) >= lowerBound {
			return n.keys[i], true
		}
	}
	return 0, false
}

// grow to Node48
func (n *Node16[V]) grow() (INode[V], error) {
	if n.childrenLen != Node16KeysMax {
		return nil, fmt.Errorf("node16 is not maxed out yet, so don't have to grow to a bigger node")
	}

	n48 := newNode48[V]()
	n48.nodeHeader = n.nodeHeader
	n48.childrenLen = 0
	for i := 0; i < Node16KeysMax; i++ {
		if err := n48.addChild(n.keys[i], n.children[i]); err != nil {
			return nil, err
		}
	}

	return n48, nil
}

// shrink to Node4
func (n *Node16[V]) shrink() (INode[V], error) {
	if !n.isShrinkable() {
		return nil, fmt.Errorf("node16 is still too big for shrinking")
	}

	n4 := new(Node4[V])
	n4.nodeHeader = n.nodeHeader
	n4.childrenLen = 0
	for i := 0; i < n.childrenLen; i++ {
		if err := n4.addChild(n.keys[i], n.children[i]); err != nil {
			return nil, err
		}
	}

	return n4, nil
}

func (n *Node16[V]) hasEnoughSpace() bool {
	return n.childrenLen < Node16KeysMax
}

func (n *Node16[V]) isShrinkable() bool {
	return n.childrenLen < Node16KeysMin
}

var _ INode[any] = (*Node16[any])(nil)
