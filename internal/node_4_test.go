package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_node4_insertAndRemoveChildren_str(t *testing.T) {
	type param struct {
		desc                string
		actions             []nodeAction[string]
		expectedChildrenLen int
		expectedAscKeys     []byte
		expectedGetChild    map[byte]INode[string]
	}

	sampleLeaves := generateStringLeaves(4)

	testList := []param{
		{
			desc: "Happy case: #1 - sorted insertion",
			actions: []nodeAction[string]{
				{kind: insertAction, key: 3, child: sampleLeaves[0]},
				{kind: insertAction, key: 1, child: sampleLeaves[1]},
				{kind: insertAction, key: 2, child: sampleLeaves[2]},
			},
			expectedChildrenLen: 3,
			expectedAscKeys:     []byte{1, 2, 3},
			expectedGetChild: map[byte]INode[string]{
				1: sampleLeaves[1],
				2: sampleLeaves[2],
				3: sampleLeaves[0],
			},
		},
		{
			desc: "Happy case: #2 - insert then remove everything",
			actions: []nodeAction[string]{
				{kind: insertAction, key: 1, child: sampleLeaves[0]},
				{kind: insertAction, key: 2, child: sampleLeaves[1]},
				{kind: removeAction, key: 1},
				{kind: removeAction, key: 2},
			},
			expectedChildrenLen: 0,
			expectedAscKeys:     []byte{},
			expectedGetChild:    map[byte]INode[string]{},
		},
		{
			desc: "Happy case: #3 - remove from the middle keeps the order",
			actions: []nodeAction[string]{
				{kind: insertAction, key: 10, child: sampleLeaves[0]},
				{kind: insertAction, key: 20, child: sampleLeaves[1]},
				{kind: insertAction, key: 30, child: sampleLeaves[2]},
				{kind: insertAction, key: 40, child: sampleLeaves[3]},
				{kind: removeAction, key: 20},
			},
			expectedChildrenLen: 3,
			expectedAscKeys:     []byte{10, 30, 40},
			expectedGetChild: map[byte]INode[string]{
				10: sampleLeaves[0],
				30: sampleLeaves[2],
				40: sampleLeaves[3],
			},
		},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			n := new(Node4[string])
			for _, action := range tc.actions {
				switch action.kind {
				case insertAction:
					require.NoError(t, n.addChild(action.key, action.child))
				case removeAction:
					require.NoError(t, n.removeChild(action.key))
				}
			}

			assert.Equal(t, tc.expectedChildrenLen, n.getChildrenLen())
			for i, key := range tc.expectedAscKeys {
				k, child, err := n.getChildByIndex(i)
				require.NoError(t, err)
				assert.Equal(t, key, k)
				assert.Equal(t, tc.expectedGetChild[key], child)
			}
			_, _, err := n.getChildByIndex(len(tc.expectedAscKeys))
			assert.Error(t, err)

			for key, expected := range tc.expectedGetChild {
				slot := n.findChild(key)
				require.NotNil(t, slot)
				assert.Equal(t, expected, *slot)
			}
		})
	}
}

func Test_node4_nextPartialKey(t *testing.T) {
	sampleLeaves := generateStringLeaves(3)
	n := new(Node4[string])
	require.NoError(t, n.addChild(5, sampleLeaves[0]))
	require.NoError(t, n.addChild(100, sampleLeaves[1]))
	require.NoError(t, n.addChild(200, sampleLeaves[2]))

	k, ok := n.nextPartialKey(0)
	require.True(t, ok)
	assert.Equal(t, byte(5), k)

	k, ok = n.nextPartialKey(6)
	require.True(t, ok)
	assert.Equal(t, byte(100), k)

	k, ok = n.nextPartialKey(200)
	require.True(t, ok)
	assert.Equal(t, byte(200), k)

	_, ok = n.nextPartialKey(201)
	assert.False(t, ok)
}

func Test_node4_grow(t *testing.T) {
	sampleLeaves := generateStringLeaves(4)
	n := new(Node4[string])
	n.setPrefix([]byte("compressed"))
	n.SetValue(RandomQuote())

	_, err := n.grow()
	assert.Error(t, err, "a node4 with free room must not grow")

	for i := 0; i < Node4KeysMax; i++ {
		require.NoError(t, n.addChild(byte(i*10), sampleLeaves[i]))
	}
	assert.False(t, n.hasEnoughSpace())

	grown, err := n.grow()
	require.NoError(t, err)
	require.Equal(t, KindNode16, grown.GetKind())
	assert.Equal(t, []byte("compressed"), grown.getPrefix())

	v, ok := grown.Value()
	require.True(t, ok)
	oldV, oldOk := n.Value()
	require.True(t, oldOk)
	assert.Equal(t, oldV, v)

	assert.Equal(t, Node4KeysMax, grown.getChildrenLen())
	for i := 0; i < Node4KeysMax; i++ {
		slot := grown.findChild(byte(i * 10))
		require.NotNil(t, slot)
		assert.Equal(t, sampleLeaves[i], *slot)
	}
}
