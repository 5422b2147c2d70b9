package deepline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertDisjoint asserts invariant 1: the six piece bitboards are
// pairwise disjoint and whites is a subset of their union.
func assertDisjoint(t *testing.T, pos Position) {
	t.Helper()
	var union uint64
	for i := range pos.Piece {
		for j := i + 1; j < len(pos.Piece); j++ {
			assert.Zero(t, pos.Piece[i]&pos.Piece[j], "piece bitboards %d and %d overlap", i, j)
		}
		union |= pos.Piece[i]
	}
	assert.Zero(t, pos.Whites&^union, "whites is not a subset of the piece union")
}

func TestParseFEN_StandardStart_Disjoint(t *testing.T) {
	pos := ParseFEN(InitialPos)
	assertDisjoint(t, pos)

	require.Equal(t, 8, popCount(pos.Piece[Pawn]&pos.Whites))
	require.Equal(t, 8, popCount(pos.Piece[Pawn]&^pos.Whites))
	require.Equal(t, 1, popCount(pos.Piece[King]&pos.Whites))
	require.Equal(t, 1, popCount(pos.Piece[King]&^pos.Whites))
}

// TestApplyMove_ClonePreservesOriginal is invariant 2: applying a move to
// a clone must not alter the original.
func TestApplyMove_ClonePreservesOriginal(t *testing.T) {
	pos := ParseFEN(InitialPos)
	original := pos // value copy

	clone := pos
	clone.ApplyMove(Move{From: Square(12), To: Square(28), IsWhite: true}) // e2e4

	if diff := cmp.Diff(original, pos); diff != "" {
		t.Fatalf("original position mutated through supposedly independent clone (-want +got):\n%s", diff)
	}
	assert.NotEqual(t, original, clone)
}

// TestScore_StandardStartIsZero is invariant 7.
func TestScore_StandardStartIsZero(t *testing.T) {
	pos := ParseFEN(InitialPos)
	assert.Equal(t, 0, pos.Score())
}

func TestApplyMove_PromotionBecomesQueen(t *testing.T) {
	pos := ParseFEN("8/P7/8/8/8/8/8/k6K")
	pos.ApplyMove(Move{From: Square(48), To: Square(56), IsWhite: true}) // a7a8

	pt, ok := pos.TypeAt(Square(56))
	require.True(t, ok)
	assert.Equal(t, Queen, pt)
	assert.True(t, pos.IsWhiteAt(Square(56)))
	assert.Zero(t, pos.Piece[Pawn]&pos.Whites)
}

func TestApplyMove_CastlingMovesRookAndSetsFlags(t *testing.T) {
	pos := ParseFEN("4k3/8/8/8/8/8/8/R3K3")
	pos.ApplyMove(Move{From: Square(4), To: Square(2), IsWhite: true}) // e1c1, long castle

	kingType, ok := pos.TypeAt(Square(2))
	require.True(t, ok)
	assert.Equal(t, King, kingType)

	rookType, ok := pos.TypeAt(Square(3))
	require.True(t, ok)
	assert.Equal(t, Rook, rookType)

	assert.NotZero(t, pos.Flags&FlagWhiteKingMoved)
	assert.NotZero(t, pos.Flags&FlagWhiteKingCastled)
}

func TestIsTerminal_OnlyWhenAKingIsMissing(t *testing.T) {
	pos := ParseFEN(InitialPos)
	assert.False(t, pos.IsTerminal())

	pos.clearSquare(Square(60)) // remove black king (e8)
	assert.True(t, pos.IsTerminal())
}
