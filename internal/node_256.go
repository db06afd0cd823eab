package internal

import (
	"fmt"
	"math/bits"

	"github.com/hideo55/go-popcount"
)

const (
	Node256PointersMax = 256
	// node256 needs at least 49 children, else it can be shrunk to node48
	Node256PointersMin = Node48PointersMax + 1
)

// Node256 The largest node type is simply an array of 256
// pointers and is used for storing between 49 and 256 entries.
// With this representation, the next node can be found very
// efficiently using a single lookup of the Key byte in that array.
// A 256-bit presence bitmap sits beside the array so that child
// counting and ordered enumeration stay cheap even when most of
// the array is empty.
type Node256[V any] struct {
	nodeHeader[V]
	// present[k>>6] has bit k&63 set iff the Key k has a Child
	present [4]uint64
	// pointers to children node. children[k] is a Child node for the Key = k
	children [Node256PointersMax]INode[V]
}

func (n *Node256[V]) GetKind() Kind {
	return KindNode256
}

func (n *Node256[V]) addChild(key byte, child INode[V]) error {
	if n.present[key>>6]&(1<<(key&0x3F)) != 0 {
		return fmt.Errorf("Key: %v already exists", key)
	}

	n.present[key>>6] |= 1 << (key & 0x3F)
	n.children[key] = child
	return nil
}

func (n *Node256[V]) removeChild(key byte) error {
	if n.present[key>>6]&(1<<(key&0x3F)) == 0 {
		return childNodeNotFound
	}

	n.present[key>>6] &^= 1 << (key & 0x3F)
	n.children[key] = nil
	return nil
}

func (n *Node256[V]) findChild(key byte) *INode[V] {
	if n.present[key>>6]&(1<<(key&0x3F)) == 0 {
		return nil
	}
	return &n.children[key]
}

func (n *Node256[V]) getChildrenLen() int {
	return int(popcount.CountSlice(n.present[:]))
}

func (n *Node256[V]) getChildByIndex(idx int) (byte, INode[V], error) {
	if idx < 0 {
		return 0, nil, childNodeNotFound
	}

	// rank search: skip whole bitmap words, then walk the set bits
	for w := 0; w < len(n.present); w++ {
		cnt := int(popcount.Count(n.present[w]))
		if idx >= cnt {
			idx -= cnt
			continue
		}
		bmp := n.present[w]
		for ; idx > 0; idx-- {
			bmp &= bmp - 1
		}
		k := w<<6 + bits.TrailingZeros64(bmp)
		return byte(k), n.children[k], nil
	}
	return 0, nil, childNodeNotFound
}

func (n *Node256[V]) nextPartialKey(lowerBound int) (byte, bool) {
	if lowerBound >= Node256PointersMax {
		return 0, false
	}
	w := lowerBound >> 6
	bmp := n.present[w] &^ ((1 << (lowerBound & 0x3F)) - 1)
	for {
		if bmp != 0 {
			return byte(w<<6 + bits.TrailingZeros64(bmp)), true
		}
		w++
		if w >= len(n.present) {
			return 0, false
		}
		bmp = n.present[w]
	}
}

func (n *Node256[V]) cleanup() {
	n.nodeHeader.cleanup()
	n.present = [4]uint64{}
}

func (n *Node256[V]) grow() (INode[V], error) {
	return nil, fmt.Errorf("node256 can not grow anymore")
}

// shrink to Node48
func (n *Node256[V]) shrink() (INode[V], error) {
	if !n.isShrinkable() {
		return nil, fmt.Errorf("node256 is still too big for shrinking")
	}

	n48 := newNode48[V]()
	n48.nodeHeader = n.nodeHeader
	n48.childrenLen = 0
	for k := 0; k < Node256PointersMax; k++ {
		if n.present[k>>6]&(1<<(k&0x3F)) == 0 {
			continue
		}
		if err := n48.addChild(byte(k), n.children[k]); err != nil {
			return nil, err
		}
	}

	return n48, nil
}

func (n *Node256[V]) hasEnoughSpace() bool {
	// node256 is the biggest node so it always has enough space
	return true
}

func (n *Node256[V]) isShrinkable() bool {
	return n.getChildrenLen() < Node256PointersMin
}

var _ INode[any] = (*Node256[any])(nil)
