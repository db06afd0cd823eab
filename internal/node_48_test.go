package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_node48_insertAndRemoveChildren_str(t *testing.T) {
	sampleLeaves := generateStringLeaves(48)
	n := newNode48[string]()

	for i := 0; i < Node48PointersMax; i++ {
		require.NoError(t, n.addChild(byte(i*5), sampleLeaves[i]))
	}
	assert.Equal(t, Node48PointersMax, n.getChildrenLen())
	assert.False(t, n.hasEnoughSpace())
	assert.Error(t, n.addChild(255, sampleLeaves[0]), "a maxed out node48 must reject new children")

	// removing from the middle recycles the slot of the last Child
	require.NoError(t, n.removeChild(byte(10*5)))
	assert.Equal(t, Node48PointersMax-1, n.getChildrenLen())
	assert.Error(t, n.addChild(0, sampleLeaves[0]), "duplicated partial keys must be rejected")
	assert.Nil(t, n.findChild(byte(10*5)))
	for i := 0; i < Node48PointersMax; i++ {
		if i == 10 {
			continue
		}
		slot := n.findChild(byte(i * 5))
		require.NotNil(t, slot)
		assert.Equal(t, sampleLeaves[i], *slot)
	}

	// enumeration stays ordered by partial Key, not by slot
	prev := -1
	for i := 0; i < n.getChildrenLen(); i++ {
		k, _, err := n.getChildByIndex(i)
		require.NoError(t, err)
		assert.Greater(t, int(k), prev)
		prev = int(k)
	}
}

func Test_node48_nextPartialKey(t *testing.T) {
	sampleLeaves := generateStringLeaves(3)
	n := newNode48[string]()
	require.NoError(t, n.addChild(7, sampleLeaves[0]))
	require.NoError(t, n.addChild(130, sampleLeaves[1]))
	require.NoError(t, n.addChild(255, sampleLeaves[2]))

	k, ok := n.nextPartialKey(0)
	require.True(t, ok)
	assert.Equal(t, byte(7), k)

	k, ok = n.nextPartialKey(8)
	require.True(t, ok)
	assert.Equal(t, byte(130), k)

	k, ok = n.nextPartialKey(255)
	require.True(t, ok)
	assert.Equal(t, byte(255), k)

	_, ok = n.nextPartialKey(256)
	assert.False(t, ok)
}

func Test_node48_growAndShrink(t *testing.T) {
	sampleLeaves := generateStringLeaves(48)
	n := newNode48[string]()
	n.setPrefix([]byte("pfx"))

	for i := 0; i < Node48PointersMax; i++ {
		require.NoError(t, n.addChild(byte(i), sampleLeaves[i]))
	}

	grown, err := n.grow()
	require.NoError(t, err)
	require.Equal(t, KindNode256, grown.GetKind())
	assert.Equal(t, []byte("pfx"), grown.getPrefix())
	assert.Equal(t, Node48PointersMax, grown.getChildrenLen())
	for i := 0; i < Node48PointersMax; i++ {
		slot := grown.findChild(byte(i))
		require.NotNil(t, slot)
		assert.Equal(t, sampleLeaves[i], *slot)
	}

	small := newNode48[string]()
	for i := 0; i < Node48PointersMin; i++ {
		require.NoError(t, small.addChild(byte(i), sampleLeaves[i]))
	}
	_, err = small.shrink()
	assert.Error(t, err, "a node48 above the lower threshold must not shrink")

	require.NoError(t, small.removeChild(byte(3)))
	require.True(t, small.isShrinkable())
	shrunk, err := small.shrink()
	require.NoError(t, err)
	require.Equal(t, KindNode16, shrunk.GetKind())
	assert.Equal(t, Node16KeysMax, shrunk.getChildrenLen())
	for i := 0; i < Node48PointersMin; i++ {
		if i == 3 {
			continue
		}
		require.NotNil(t, shrunk.findChild(byte(i)))
	}
}
