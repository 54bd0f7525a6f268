package inspect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KubanjaElijahEldred/Data-Structures-and-algorithms-linear-and-non-linear-vectors-and-skip-lists/skiplist"
)

type stubSource struct {
	values []uint64
	idx    int
}

func (s *stubSource) Uint64() uint64 {
	if s.idx >= len(s.values) {
		return 0
	}
	value := s.values[s.idx]
	s.idx++
	return value
}

// buildList creates a list with pinned node heights: 5 at height 1,
// 9 at height 3, 17 at height 2.
func buildList(t *testing.T) *skiplist.SkipList[string] {
	t.Helper()
	src := &stubSource{values: []uint64{1, 1 << 2, 1 << 1}}
	list, err := skiplist.New[string](skiplist.WithMaxLevel(8), skiplist.WithRandomSource(src))
	require.NoError(t, err)

	list.Put(5, "five")
	list.Put(9, "nine")
	list.Put(17, "seventeen")
	require.Equal(t, 3, list.Level())
	return list
}

func TestFprint(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		list, err := skiplist.New[string]()
		require.NoError(t, err)

		var buf bytes.Buffer
		Fprint(&buf, list)
		assert.Equal(t, "skip list is empty\n", buf.String())
	})

	t.Run("aligned towers", func(t *testing.T) {
		list := buildList(t)

		var buf bytes.Buffer
		Fprint(&buf, list)

		expected := "level 3 : " + "      " + "  9 ->" + "      " + "\n" +
			"level 2 : " + "      " + "  9 ->" + " 17 ->" + "\n" +
			"level 1 : " + "  5 ->" + "  9 ->" + " 17 ->" + "\n"
		assert.Equal(t, expected, buf.String())
	})
}

func TestLevels(t *testing.T) {
	t.Parallel()

	list := buildList(t)
	assert.Equal(t, []int{3, 2, 1}, Levels(list))
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	list := buildList(t)

	var buf bytes.Buffer
	RenderTable(&buf, list)
	out := buf.String()

	assert.Contains(t, out, "LEVEL")
	assert.Contains(t, out, "NODES")
	assert.Contains(t, out, "FIRST")
	assert.Contains(t, out, "LAST")
	assert.Contains(t, out, "17")
	assert.Contains(t, out, "9")
}

func TestSearchCost(t *testing.T) {
	t.Parallel()

	// All nodes at height 1 makes the cost model exact.
	src := &stubSource{values: []uint64{1, 1, 1, 1, 1}}
	list, err := skiplist.New[int](skiplist.WithMaxLevel(8), skiplist.WithRandomSource(src))
	require.NoError(t, err)
	for i := int64(1); i <= 5; i++ {
		list.Put(i, int(i))
	}
	require.Equal(t, 1, list.Level())

	t.Run("present key", func(t *testing.T) {
		sizeBefore := list.Len()
		total, perLevel := SearchCost(list, 3)
		// Two horizontal moves past 1 and 2, then one step onto 3.
		assert.Equal(t, 3, total)
		assert.Equal(t, []int{3}, perLevel)
		assert.Equal(t, sizeBefore, list.Len())
	})

	t.Run("absent key", func(t *testing.T) {
		total, perLevel := SearchCost(list, 10)
		// Five horizontal moves, plus the final drop off level 1.
		assert.Equal(t, 6, total)
		assert.Equal(t, []int{5}, perLevel)
	})

	t.Run("first key", func(t *testing.T) {
		total, perLevel := SearchCost(list, 1)
		assert.Equal(t, 1, total)
		assert.Equal(t, []int{1}, perLevel)
	})
}
