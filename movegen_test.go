package deepline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneratePseudoLegal_StandardStartTwentyPerSide is invariant 3.
func TestGeneratePseudoLegal_StandardStartTwentyPerSide(t *testing.T) {
	pos := ParseFEN(InitialPos)

	var white, black MoveContainer
	GeneratePseudoLegal(&pos, true, &white)
	GeneratePseudoLegal(&pos, false, &black)

	assert.Equal(t, 20, white.Count())
	assert.Equal(t, 20, black.Count())
}

// TestGeneratePseudoLegal_BlockedPawnsTwelvePerSide is invariant 4: with
// castling unavailable (no rooks on the board), each side has exactly 12
// pseudo-legal moves in this blocked-pawn position.
func TestGeneratePseudoLegal_BlockedPawnsTwelvePerSide(t *testing.T) {
	pos := ParseFEN("4k3/4p3/4n3/8/8/4N3/4P3/4K3")

	var white, black MoveContainer
	GeneratePseudoLegal(&pos, true, &white)
	GeneratePseudoLegal(&pos, false, &black)

	assert.Equal(t, 12, white.Count())
	assert.Equal(t, 12, black.Count())
}

// TestGeneratePseudoLegal_NoDoublePushWhenBlockedTwoAhead is invariant 5.
func TestGeneratePseudoLegal_NoDoublePushWhenBlockedTwoAhead(t *testing.T) {
	// White pawn on e2, empty e3, black pawn on e4: the pawn may step to
	// e3 but not leap to e4.
	pos := ParseFEN("4k3/8/8/8/4p3/8/4P3/4K3")

	var moves MoveContainer
	GeneratePseudoLegal(&pos, true, &moves)

	sawSingle, sawDouble := false, false
	for moves.HasNext() {
		m := moves.PopNextMove()
		if m.From == Square(12) && m.To == Square(20) {
			sawSingle = true
		}
		if m.From == Square(12) && m.To == Square(28) {
			sawDouble = true
		}
	}
	assert.True(t, sawSingle, "expected single push e2-e3")
	assert.False(t, sawDouble, "double push e2-e4 should be blocked by the pawn on e4")
}

func TestGeneratePseudoLegal_MVVLVACaptureQuality(t *testing.T) {
	// White knight on e4, black pawn on d6 and black queen on
	// f6: knight(3) capturing pawn(1) is LowCapture, knight(3) capturing
	// queen(10) is GoodCapture.
	pos := ParseFEN("4k3/8/3p1q2/8/4N3/8/8/4K3")

	var moves MoveContainer
	GeneratePseudoLegal(&pos, true, &moves)

	found := map[Square]MoveQuality{}
	for moves.HasNext() {
		m := moves.PopNextMove()
		if m.From == Square(28) {
			found[m.To] = m.Quality
		}
	}

	require.Contains(t, found, Square(43)) // d6
	assert.Equal(t, LowCapture, found[Square(43)])
	require.Contains(t, found, Square(45)) // f6
	assert.Equal(t, GoodCapture, found[Square(45)])
}

func TestGenerateCastling_ShortCastleWhenClear(t *testing.T) {
	pos := ParseFEN("4k3/8/8/8/8/8/8/4K2R")

	var moves MoveContainer
	GeneratePseudoLegal(&pos, true, &moves)

	sawCastle := false
	for moves.HasNext() {
		m := moves.PopNextMove()
		if m.From == Square(4) && m.To == Square(6) {
			sawCastle = true
		}
	}
	assert.True(t, sawCastle, "expected short castle e1g1")
}

func TestGenerateCastling_BlockedWhenKingMoved(t *testing.T) {
	pos := ParseFEN("4k3/8/8/8/8/8/8/4K2R")
	pos.Flags |= FlagWhiteKingMoved

	var moves MoveContainer
	GeneratePseudoLegal(&pos, true, &moves)

	for moves.HasNext() {
		m := moves.PopNextMove()
		assert.False(t, m.From == Square(4) && m.To == Square(6), "castle should be unavailable once the king-moved flag is set")
	}
}
