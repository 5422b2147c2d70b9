package deepline

// Square identifies one of the 64 board squares as index = file + 8*rank,
// with a1 = 0 and h8 = 63.
type Square uint8

// File and Rank extract the zero-based file (a-h) and rank (1-8) of sq.
func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

// OnBoard reports whether file and rank are both within the 0..7 range.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// PieceType enumerates the six color-agnostic chess piece types.
type PieceType uint8

const (
	Pawn PieceType = iota
	Bishop
	Knight
	Rook
	Queen
	King
	numPieceTypes
)

// pieceSymbols is used only by the debug position dump.
var pieceSymbols = [numPieceTypes]byte{'P', 'B', 'N', 'R', 'Q', 'K'}

// materialValue holds the point value of each piece type, per the scoring
// rule: pawn=1, bishop=knight=3, rook=5, queen=10, king=1000.
var materialValue = [numPieceTypes]int{
	Pawn:   1,
	Bishop: 3,
	Knight: 3,
	Rook:   5,
	Queen:  10,
	King:   1000,
}

// MoveQuality totally orders moves for search ordering purposes. Higher
// values are searched first.
type MoveQuality uint8

const (
	Motion MoveQuality = iota
	LowCapture
	EqualCapture
	GoodCapture
	KillerMove
	Principal
)

// Move describes a single ply. Promotion is implicit: a
// pawn move to the back rank is always a queen promotion. En-passant is
// not supported: a diagonal pawn move is only ever generated onto a
// square occupied by an opponent piece, never onto an empty one. Castling
// is a king move of two files. Equality between moves is defined on
// (From, To) only; Quality is ordering metadata, not identity.
type Move struct {
	From, To Square
	IsWhite  bool
	Quality  MoveQuality
}

// SameMove reports whether m and other describe the same (from, to) ply,
// ignoring quality.
func (m Move) SameMove(other Move) bool {
	return m.From == other.From && m.To == other.To
}

// SearchResult is the outcome of a bounded search: the best score found,
// as an absolute white-positive evaluation, and the move that achieves it
// (nil at a terminal call and at a position with no pseudo-legal moves).
type SearchResult struct {
	Score    int
	BestMove *Move
}
