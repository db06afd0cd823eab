package internal

// iterFrame is one level of the traversal stack. key carries the full
// Key bytes from the root through the node's compressed path, so keys
// are materialized level by level instead of per visited value.
type iterFrame[V any] struct {
	node INode[V]
	key  []byte
	// lower bound for the next Child partial Key to visit
	nextKey int
	// whether the node's own value has been yielded already
	valueDone bool
}

// Iterator walks the stored keys in ascending lexicographic order. Any
// mutation of the tree invalidates a live iterator.
type Iterator[V any] struct {
	stack      []iterFrame[V]
	k          []byte
	v          V
	positioned bool
}

// NewIterator positions an iterator at the smallest stored Key.
func NewIterator[V any](root INode[V]) *Iterator[V] {
	it := new(Iterator[V])
	if root != nil {
		it.push(nil, -1, root)
	}
	it.advance()
	return it
}

// NewLowerBoundIterator positions an iterator at the smallest stored
// Key >= the given Key. It descends like a lookup would; whenever the
// search Key runs out or sorts before the current compressed path the
// whole remaining subtree qualifies, and whenever it sorts after, the
// subtree is discarded and traversal resumes at the next sibling.
func NewLowerBoundIterator[V any](root INode[V], key []byte) *Iterator[V] {
	it := new(Iterator[V])
	if root == nil {
		it.advance()
		return it
	}

	it.push(nil, -1, root)
	depth := 0
	for {
		top := &it.stack[len(it.stack)-1]
		node := top.node
		prefix := node.getPrefix()
		rem := key[depth:]
		matched := findLCP(prefix, rem)

		if matched == len(rem) {
			// the search Key terminates at or inside this node's path,
			// every Key below sorts >= it
			break
		}
		if matched < len(prefix) {
			if prefix[matched] > rem[matched] {
				// the whole subtree sorts after the search Key
				break
			}
			// the whole subtree sorts before the search Key
			it.stack = it.stack[:len(it.stack)-1]
			break
		}

		// compressed path fully matched; the node's own Key is a proper
		// prefix of the search Key and sorts before it
		top.valueDone = true
		edge := rem[matched]
		next, ok := node.nextPartialKey(int(edge))
		if !ok {
			it.stack = it.stack[:len(it.stack)-1]
			break
		}
		if next > edge {
			// no exact branch, children from next onwards all qualify
			top.nextKey = int(next)
			break
		}
		top.nextKey = int(edge) + 1
		child := *node.findChild(edge)
		parentKey := top.key
		it.push(parentKey, int(edge), child)
		depth += len(prefix) + 1
	}

	it.advance()
	return it
}

// push appends a frame for the node, materializing its full Key from
// the parent frame's Key and the edge byte. edge < 0 pushes the root.
func (it *Iterator[V]) push(parentKey []byte, edge int, node INode[V]) {
	key := make([]byte, 0, len(parentKey)+1+node.getPrefixLen())
	key = append(key, parentKey...)
	if edge >= 0 {
		key = append(key, byte(edge))
	}
	key = append(key, node.getPrefix()...)
	it.stack = append(it.stack, iterFrame[V]{node: node, key: key})
}

// advance moves the iterator to the next stored Key/value, or to the
// exhausted state when the traversal stack drains.
func (it *Iterator[V]) advance() {
	it.positioned = false
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if !top.valueDone {
			top.valueDone = true
			if v, ok := top.node.Value(); ok {
				// hand out a copy: the frame's key still seeds its children
				it.k = make([]byte, len(top.key))
				copy(it.k, top.key)
				it.v = v
				it.positioned = true
				return
			}
		}

		edge, ok := top.node.nextPartialKey(top.nextKey)
		if !ok {
			// subtree exhausted
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}
		top.nextKey = int(edge) + 1
		child := *top.node.findChild(edge)
		it.push(top.key, int(edge), child)
	}
}

// HasNext reports whether the iterator is positioned on a stored Key.
func (it *Iterator[V]) HasNext() bool {
	return it.positioned
}

// Next returns the Key/value the iterator is positioned on and moves it
// forward. The returned Key is owned by the caller.
func (it *Iterator[V]) Next() ([]byte, V, bool) {
	if !it.positioned {
		return nil, *new(V), false
	}
	k, v := it.k, it.v
	it.advance()
	return k, v, true
}
