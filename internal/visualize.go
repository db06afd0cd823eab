package internal

import (
	"go.uber.org/zap"
)

func (k Kind) String() string {
	switch k {
	case KindNode4:
		return "node4"
	case KindNode16:
		return "node16"
	case KindNode48:
		return "node48"
	case KindNode256:
		return "node256"
	default:
		return "noop"
	}
}

type visualizeFrame[V any] struct {
	node  INode[V]
	depth int
	edge  int
}

// Visualize logs the node graph through the global zap logger, one line
// per node in depth-first order. Debug tooling only, never called on
// the hot paths.
func Visualize[V any](root INode[V]) {
	if root == nil {
		zap.L().Debug("empty tree")
		return
	}

	stack := []visualizeFrame[V]{{node: root, depth: 0, edge: -1}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := frame.node
		_, hasValue := node.Value()
		zap.L().Debug("node",
			zap.Stringer("kind", node.GetKind()),
			zap.Int("depth", frame.depth),
			zap.Int("edge", frame.edge),
			zap.ByteString("prefix", node.getPrefix()),
			zap.Int("children", node.getChildrenLen()),
			zap.Bool("hasValue", hasValue),
		)

		// push in reverse so the smallest partial Key pops first
		for i := node.getChildrenLen() - 1; i >= 0; i-- {
			b, child, err := node.getChildByIndex(i)
			if err != nil {
				continue
			}
			stack = append(stack, visualizeFrame[V]{node: child, depth: frame.depth + 1, edge: int(b)})
		}
	}
}
