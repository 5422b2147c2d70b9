package deepline

import "strings"

// InitialPos is the board-placement field of the standard chess starting
// position.
const InitialPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

var pieceFromFENLetter = map[byte]PieceType{
	'p': Pawn, 'b': Bishop, 'n': Knight, 'r': Rook, 'q': Queen, 'k': King,
}

// ParseFEN reads only the board-placement field of fen (the first
// space-separated token); side-to-move, castling rights, en-passant, and
// clocks are ignored, so the returned Position always has Flags == 0 and
// castling reads as available until a king or rook actually moves. The
// caller guarantees fen is well-formed; malformed placement data panics,
// matching the teacher's own FEN parser.
func ParseFEN(fen string) Position {
	placement := fen
	if i := strings.IndexByte(fen, ' '); i >= 0 {
		placement = fen[:i]
	}

	var pos Position
	rank := 7
	file := 0
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			lower := c | 0x20
			pt, ok := pieceFromFENLetter[lower]
			if !ok || file > 7 || rank < 0 {
				panic("deepline: malformed FEN placement: " + fen)
			}
			sq := Square(file + 8*rank)
			pos.setSquare(sq, pt, c < 'a') // uppercase FEN letters are white
			file++
		}
	}
	return pos
}
