package internal

import (
	"fmt"
)

func NewNode[V any](k Kind) INode[V] {
	switch k {
	case KindNode4:
		return new(Node4[V])
	case KindNode16:
		return new(Node16[V])
	case KindNode48:
		return newNode48[V]()
	case KindNode256:
		return new(Node256[V])
	default:
		panic(fmt.Sprintf("%v node is unsupported", k))
	}
}

// NewNodeWithKV seeds the smallest inner node carrying the whole
// remaining Key as its compressed prefix, plus the value.
func NewNodeWithKV[V any](key []byte, v V) INode[V] {
	n := NewNode[V](KindNode4)
	n.setPrefix(key)
	n.SetValue(v)
	return n
}
