package deepline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMoveContainer_PopOrderNonIncreasing is invariant 6.
func TestMoveContainer_PopOrderNonIncreasing(t *testing.T) {
	var c MoveContainer
	c.Push(Move{From: 0, To: 1, Quality: Motion})
	c.Push(Move{From: 2, To: 3, Quality: GoodCapture})
	c.Push(Move{From: 4, To: 5, Quality: LowCapture})
	c.Push(Move{From: 6, To: 7, Quality: EqualCapture})

	var last MoveQuality = Principal + 1 // sentinel above the max
	for c.HasNext() {
		m := c.PopNextMove()
		require.LessOrEqual(t, int(m.Quality), int(last))
		last = m.Quality
	}
}

func TestMoveContainer_SetFirstMovePopsFirst(t *testing.T) {
	var c MoveContainer
	c.Push(Move{From: 0, To: 1, Quality: GoodCapture})
	c.Push(Move{From: 2, To: 3, Quality: EqualCapture})
	seed := Move{From: 10, To: 20, Quality: Motion}
	c.SetFirstMove(seed)

	first := c.PopNextMove()
	assert.True(t, first.SameMove(seed))
	assert.Equal(t, Principal, first.Quality)
}

func TestMoveContainer_KillerOutranksCaptureAndMotion(t *testing.T) {
	var c MoveContainer
	c.Push(Move{From: 0, To: 1, Quality: Motion})
	c.Push(Move{From: 2, To: 3, Quality: GoodCapture})
	killer := Move{From: 10, To: 20, Quality: Motion}
	c.AddKillerMove(killer)

	first := c.PopNextMove()
	assert.True(t, first.SameMove(killer))
	assert.Equal(t, KillerMove, first.Quality)
}

func TestMoveContainer_ResetClearsCount(t *testing.T) {
	var c MoveContainer
	c.Push(Move{From: 0, To: 1})
	c.Push(Move{From: 2, To: 3})
	c.Reset()
	assert.Equal(t, 0, c.Count())
	assert.False(t, c.HasNext())
}
