package deepline

import "math/bits"

// Flag bits packed into Position.Flags.
const (
	FlagWhiteKingMoved uint64 = 1 << iota
	FlagBlackKingMoved
	FlagWhiteKingCastled
	FlagBlackKingCastled
)

// Position is the full board state: one bitboard per piece type (color
// agnostic), one bitboard marking which of those squares hold a white
// piece, and a flags word tracking king-moved/king-castled history needed
// for castling legality. It intentionally carries no side-to-move, clocks,
// or en-passant target: the search passes side-to-move explicitly,
// promotion is inferred from geometry at apply time, and en-passant is not
// supported.
//
// Position is a plain comparable struct of eight uint64 words, so it can
// be used directly as a map key without a custom hash function.
type Position struct {
	Piece  [numPieceTypes]uint64
	Whites uint64
	Flags  uint64
}

// Occupied returns the union of all occupied squares.
func (p *Position) Occupied() uint64 {
	var occ uint64
	for _, bb := range p.Piece {
		occ |= bb
	}
	return occ
}

// Blacks returns the bitboard of squares holding a black piece.
func (p *Position) Blacks() uint64 {
	return p.Occupied() &^ p.Whites
}

// TypeAt returns the piece type occupying sq and whether any piece is
// there at all.
func (p *Position) TypeAt(sq Square) (PieceType, bool) {
	mask := uint64(1) << sq
	for pt, bb := range p.Piece {
		if bb&mask != 0 {
			return PieceType(pt), true
		}
	}
	return 0, false
}

// IsWhiteAt reports whether sq holds a white piece. Only meaningful when
// the square is occupied.
func (p *Position) IsWhiteAt(sq Square) bool {
	return p.Whites&(uint64(1)<<sq) != 0
}

// IsTerminal reports whether one of the two kings has already been
// captured, which ends the search immediately regardless of depth.
func (p *Position) IsTerminal() bool {
	return bits.OnesCount64(p.Piece[King]) != 2
}

func (p *Position) clearSquare(sq Square) {
	mask := ^(uint64(1) << sq)
	for pt := range p.Piece {
		p.Piece[pt] &= mask
	}
	p.Whites &= mask
}

func (p *Position) setSquare(sq Square, pt PieceType, white bool) {
	mask := uint64(1) << sq
	p.Piece[pt] |= mask
	if white {
		p.Whites |= mask
	} else {
		p.Whites &^= mask
	}
}

// castleRookSquares maps a king's castling destination file to the rook's
// origin and destination squares, for white (rank 0) and black (rank 7).
func castleRookSquares(toFile int, rank int) (from, to Square) {
	if toFile == 6 { // king side
		return Square(7 + 8*rank), Square(5 + 8*rank)
	}
	return Square(0 + 8*rank), Square(3 + 8*rank) // queen side
}

// ApplyMove mutates p in place to reflect m. The caller is responsible for
// cloning p beforehand if the prior state must be preserved (Position is a
// plain value type, so `prev := p` is a full copy). ApplyMove assumes m is
// at least pseudo-legal: a piece of the moving color occupies From.
func (p *Position) ApplyMove(m Move) {
	pt, ok := p.TypeAt(m.From)
	if !ok {
		return
	}

	if _, captured := p.TypeAt(m.To); captured {
		p.clearSquare(m.To)
	}

	isCastle := pt == King && absInt(m.To.File()-m.From.File()) == 2

	p.clearSquare(m.From)

	finalType := pt
	if pt == Pawn {
		destRank := m.To.Rank()
		if (m.IsWhite && destRank == 7) || (!m.IsWhite && destRank == 0) {
			finalType = Queen
		}
	}
	p.setSquare(m.To, finalType, m.IsWhite)

	if isCastle {
		rank := m.From.Rank()
		rFrom, rTo := castleRookSquares(m.To.File(), rank)
		p.clearSquare(rFrom)
		p.setSquare(rTo, Rook, m.IsWhite)
		if m.IsWhite {
			p.Flags |= FlagWhiteKingCastled
		} else {
			p.Flags |= FlagBlackKingCastled
		}
	}

	if pt == King {
		if m.IsWhite {
			p.Flags |= FlagWhiteKingMoved
		} else {
			p.Flags |= FlagBlackKingMoved
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Score evaluates p from white's perspective: positive favors white. It
// blends material balance with pseudo-legal mobility: the material
// difference is weighted by 20, then the raw difference in pseudo-legal
// move counts is added on top.
func (p *Position) Score() int {
	material := 0
	for pt, bb := range p.Piece {
		whiteCount := bits.OnesCount64(bb & p.Whites)
		blackCount := bits.OnesCount64(bb &^ p.Whites)
		material += (whiteCount - blackCount) * materialValue[pt]
	}

	var whiteMoves, blackMoves MoveContainer
	GeneratePseudoLegal(p, true, &whiteMoves)
	GeneratePseudoLegal(p, false, &blackMoves)

	return material*20 + whiteMoves.Count() - blackMoves.Count()
}

// String renders a debug board dump: an 8x8 grid of piece symbols (upper
// case white, lower case black) with rank numbers on the left and file
// letters underneath. The flags word is not printed. It is diagnostic only
// and plays no role in search or move generation.
func (p *Position) String() string {
	buf := make([]byte, 0, 8*18)
	for rank := 7; rank >= 0; rank-- {
		buf = append(buf, byte('1'+rank), ' ', ' ')
		for file := 0; file < 8; file++ {
			sq := Square(file + 8*rank)
			pt, ok := p.TypeAt(sq)
			sym := byte('.')
			if ok {
				sym = pieceSymbols[pt]
				if !p.IsWhiteAt(sq) {
					sym += 'a' - 'A'
				}
			}
			buf = append(buf, sym, ' ', ' ')
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, "  a  b  c  d  e  f  g  h\n"...)
	return string(buf)
}
