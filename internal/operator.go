package internal

import (
	"fmt"
)

// InsertNode walks from the root slot and associates the Key with the
// value, splitting compressed paths on the way when the Key diverges
// from them. Returns the displaced value if the Key already existed.
//
//	root: the slot holding the root node
//	Key, v: the target Key and value
func InsertNode[V any](root *INode[V], key []byte, v V) (V, bool) {
	if *root == nil {
		*root = NewNodeWithKV[V](key, v)
		return *new(V), false
	}

	cur := root
	depth := 0
	for {
		node := *cur
		prefixLen := node.getPrefixLen()
		remaining := len(key) - depth
		// number of bytes of the current node's compressed path that match the Key
		matched := node.checkPrefix(key, depth)
		isPrefixMatch := matched == min(prefixLen, remaining)

		if isPrefixMatch && prefixLen == remaining {
			// exact match, replace the value and hand the old one back
			old, had := node.Value()
			node.SetValue(v)
			return old, had
		}

		if isPrefixMatch && prefixLen > remaining {
			// the Key runs out inside the node's compressed path:
			// a new parent takes the matched part of the path and the
			// value, the current node keeps the remainder
			parent := NewNode[V](KindNode4)
			parent.setPrefix(key[depth:])
			parent.SetValue(v)

			oldPrefix := node.getPrefix()
			edge := oldPrefix[matched]
			node.setPrefix(oldPrefix[matched+1:])
			if err := parent.addChild(edge, node); err != nil {
				panic(fmt.Errorf("%w: %v", failedToAddChild, err))
			}

			*cur = parent
			return *new(V), false
		}

		if !isPrefixMatch {
			// the Key diverges from the compressed path: a new parent
			// takes the common part, the current node and a fresh node
			// for the Key become its two children
			parent := NewNode[V](KindNode4)
			oldPrefix := node.getPrefix()
			parent.setPrefix(oldPrefix[:matched])

			edge := oldPrefix[matched]
			node.setPrefix(oldPrefix[matched+1:])
			if err := parent.addChild(edge, node); err != nil {
				panic(fmt.Errorf("%w: %v", failedToAddChild, err))
			}

			newNode := NewNodeWithKV[V](key[depth+matched+1:], v)
			if err := parent.addChild(key[depth+matched], newNode); err != nil {
				panic(fmt.Errorf("%w: %v", failedToAddChild, err))
			}

			*cur = parent
			return *new(V), false
		}

		edge := key[depth+prefixLen]
		childSlot := node.findChild(edge)
		if childSlot == nil {
			// no Child for the next partial Key, attach a fresh node
			if !node.hasEnoughSpace() {
				bigger, err := node.grow()
				if err != nil {
					panic(fmt.Errorf("%w: %v", failedToGrowNode, err))
				}
				*cur = bigger
				node = bigger
			}
			newNode := NewNodeWithKV[V](key[depth+prefixLen+1:], v)
			if err := node.addChild(edge, newNode); err != nil {
				panic(fmt.Errorf("%w: %v", failedToAddChild, err))
			}
			return *new(V), false
		}

		// propagate down and repeat
		depth += prefixLen + 1
		cur = childSlot
	}
}

// RemoveNode dissociates the Key from the tree and returns the removed
// value. Path compression is re-joined on the way out: a node left with
// a single Child and no value is merged into that Child, and a parent
// whose Child count drops below its variant's lower threshold is
// replaced with the next smaller variant.
//
//	root: the slot holding the root node
//	Key: the target Key
func RemoveNode[V any](root *INode[V], key []byte) (V, bool) {
	if *root == nil {
		return *new(V), false
	}

	var par *INode[V]
	var curPartialKey byte
	cur := root
	depth := 0
	for {
		node := *cur
		prefixLen := node.getPrefixLen()
		if node.checkPrefix(key, depth) != prefixLen {
			// prefix mismatch, the Key doesn't exist
			return *new(V), false
		}

		if len(key)-depth == prefixLen {
			old, had := node.ClearValue()
			if !had {
				return *new(V), false
			}

			switch nChildren := node.getChildrenLen(); {
			case nChildren == 1:
				// merge the node into its only Child
				childKey, _ := node.nextPartialKey(0)
				child := *node.findChild(childKey)
				child.setPrefix(mergePrefix(node.getPrefix(), childKey, child.getPrefix()))
				*cur = child
				node.cleanup()

			case nChildren == 0 && par == nil:
				*cur = nil
				node.cleanup()

			case nChildren == 0:
				parent := *par
				if err := parent.removeChild(curPartialKey); err != nil {
					panic(fmt.Errorf("%w: %v", failedToRemoveChild, err))
				}
				node.cleanup()

				if _, parentHasValue := parent.Value(); parent.getChildrenLen() == 1 && !parentHasValue {
					// the parent turned into a pure pass-through node,
					// merge it into the remaining sibling
					siblingKey, _ := parent.nextPartialKey(0)
					sibling := *parent.findChild(siblingKey)
					sibling.setPrefix(mergePrefix(parent.getPrefix(), siblingKey, sibling.getPrefix()))
					*par = sibling
					parent.cleanup()
				} else if parent.isShrinkable() {
					smaller, err := parent.shrink()
					if err != nil {
						panic(fmt.Errorf("%w: %v", failedToShrinkNode, err))
					}
					*par = smaller
				}
			}
			return old, true
		}

		edge := key[depth+prefixLen]
		childSlot := node.findChild(edge)
		if childSlot == nil {
			return *new(V), false
		}

		// propagate down and repeat
		par = cur
		curPartialKey = edge
		depth += prefixLen + 1
		cur = childSlot
	}
}

// Get is used to look up a specific Key, returning the value and if it was found
//
//	node: the root node
//	Key: the target Key
func Get[V any](node INode[V], key []byte) (V, bool) {
	depth := 0
	for node != nil {
		prefixLen := node.getPrefixLen()
		if node.checkPrefix(key, depth) != prefixLen {
			// prefix mismatch
			return *new(V), false
		}
		if len(key)-depth == prefixLen {
			// the Key terminates at this node
			return node.Value()
		}

		depth += prefixLen
		childSlot := node.findChild(key[depth])
		if childSlot == nil {
			return *new(V), false
		}
		node = *childSlot
		depth++
	}
	return *new(V), false
}

// Minimum returns the smallest stored Key and its value. The smallest
// Key terminates either on the node itself or inside the subtree of the
// smallest partial Key, whichever comes first.
func Minimum[V any](node INode[V]) ([]byte, V, bool) {
	var key []byte
	for node != nil {
		key = append(key, node.getPrefix()...)
		if v, ok := node.Value(); ok {
			return key, v, true
		}
		b, ok := node.nextPartialKey(0)
		if !ok {
			break
		}
		key = append(key, b)
		node = *node.findChild(b)
	}
	return nil, *new(V), false
}

// Maximum returns the largest stored Key and its value, found by always
// descending into the largest partial Key.
func Maximum[V any](node INode[V]) ([]byte, V, bool) {
	var key []byte
	for node != nil {
		key = append(key, node.getPrefix()...)
		nChildren := node.getChildrenLen()
		if nChildren == 0 {
			v, ok := node.Value()
			return key, v, ok
		}
		b, child, err := node.getChildByIndex(nChildren - 1)
		if err != nil {
			panic(fmt.Errorf("%w: %v", childNodeNotFound, err))
		}
		key = append(key, b)
		node = child
	}
	return nil, *new(V), false
}

// Walk iterates over all stored keys in ascending order and triggers
// the callback for each. The walk stops early once the callback
// returns true.
func Walk[V any](node INode[V], cb Callback[V]) {
	walk(node, nil, cb)
}

func walk[V any](node INode[V], key []byte, cb Callback[V]) bool {
	if node == nil {
		return false
	}

	key = append(key, node.getPrefix()...)
	if v, ok := node.Value(); ok {
		k := make([]byte, len(key))
		copy(k, key)
		if cb(k, v) {
			return true
		}
	}
	for i := 0; i < node.getChildrenLen(); i++ {
		b, child, err := node.getChildByIndex(i)
		if err != nil {
			panic(fmt.Errorf("%w: %v", childNodeNotFound, err))
		}
		if walk(child, append(key, b), cb) {
			return true
		}
	}
	return false
}

// Cleanup releases every node below the root slot with an explicit work
// stack, so that arbitrarily deep chains cannot exhaust the call stack.
// Stored values are never touched, they belong to the caller.
func Cleanup[V any](root *INode[V]) {
	if *root == nil {
		return
	}

	stack := []INode[V]{*root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i := 0; i < node.getChildrenLen(); i++ {
			_, child, err := node.getChildByIndex(i)
			if err != nil {
				panic(fmt.Errorf("%w: %v", childNodeNotFound, err))
			}
			stack = append(stack, child)
		}
		node.cleanup()
	}
	*root = nil
}
