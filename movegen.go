package deepline

// captureQuality applies the MVV-LVA rule: an attacker weaker than its
// victim is a GoodCapture, equal value is an EqualCapture, and stronger is
// a LowCapture. A king capture is always an EqualCapture, since the king
// has no material value for ordering purposes.
func captureQuality(attacker, victim PieceType) MoveQuality {
	if attacker == King {
		return EqualCapture
	}
	a, v := materialValue[attacker], materialValue[victim]
	switch {
	case a < v:
		return GoodCapture
	case a == v:
		return EqualCapture
	default:
		return LowCapture
	}
}

func emit(mc *MoveContainer, p *Position, from, to Square, white bool, pt PieceType) {
	m := Move{From: from, To: to, IsWhite: white, Quality: Motion}
	if victim, ok := p.TypeAt(to); ok {
		m.Quality = captureQuality(pt, victim)
	}
	mc.Push(m)
}

// GeneratePseudoLegal appends every pseudo-legal move for the side `white`
// in position p to mc. "Pseudo-legal" means geometric legality only: moves
// that would leave the mover's own king capturable are not filtered out
// here, since this engine detects that case at search time instead
// (Position.IsTerminal after the reply).
func GeneratePseudoLegal(p *Position, white bool, mc *MoveContainer) {
	var own uint64
	if white {
		own = p.Whites
	} else {
		own = p.Blacks()
	}
	occ := p.Occupied()

	for sq := Square(0); sq < 64; sq++ {
		mask := uint64(1) << sq
		if own&mask == 0 {
			continue
		}
		pt, _ := p.TypeAt(sq)

		switch pt {
		case Pawn:
			generatePawnMoves(p, mc, sq, white, occ)
		case Knight:
			generateFromBitboard(p, mc, sq, white, pt, knightAttack[sq]&^own)
		case King:
			generateFromBitboard(p, mc, sq, white, pt, kingAttack[sq]&^own)
			generateCastling(p, mc, white)
		case Bishop:
			generateFromBitboard(p, mc, sq, white, pt, bishopAttacks(sq, occ)&^own)
		case Rook:
			generateFromBitboard(p, mc, sq, white, pt, rookAttacks(sq, occ)&^own)
		case Queen:
			generateFromBitboard(p, mc, sq, white, pt, queenAttacks(sq, occ)&^own)
		}
	}
}

func generateFromBitboard(p *Position, mc *MoveContainer, from Square, white bool, pt PieceType, targets uint64) {
	for targets != 0 {
		to := Square(trailingZeros64(targets))
		targets &= targets - 1
		emit(mc, p, from, to, white, pt)
	}
}

func generatePawnMoves(p *Position, mc *MoveContainer, from Square, white bool, occ uint64) {
	file, rank := from.File(), from.Rank()
	dr := 1
	startRank := 1
	if !white {
		dr = -1
		startRank = 6
	}

	// Single push.
	r1 := rank + dr
	if OnBoard(file, r1) {
		to := Square(file + 8*r1)
		if occ&(uint64(1)<<to) == 0 {
			mc.Push(Move{From: from, To: to, IsWhite: white, Quality: Motion})

			// Double push from the starting rank, only when the single
			// push square was itself empty.
			if rank == startRank {
				r2 := rank + 2*dr
				to2 := Square(file + 8*r2)
				if occ&(uint64(1)<<to2) == 0 {
					mc.Push(Move{From: from, To: to2, IsWhite: white, Quality: Motion})
				}
			}
		}
	}

	// Diagonal captures: emitted only when the target is occupied by an
	// opponent piece. En-passant (a diagonal move onto an empty square) is
	// not supported, so it is never generated.
	attacks := pawnAttack[boolToIndex(white)][from]
	for attacks != 0 {
		to := Square(trailingZeros64(attacks))
		attacks &= attacks - 1
		victim, ok := p.TypeAt(to)
		if !ok {
			continue
		}
		if white == p.IsWhiteAt(to) {
			continue
		}
		mc.Push(Move{From: from, To: to, IsWhite: white, Quality: captureQuality(Pawn, victim)})
	}
}

// generateCastling appends the available castling moves for `white`,
// encoded as a king move of two files, per §4.4: the king-moved flag must
// be clear, the king must stand on its home square and the relevant rook on
// its corner (rook moves themselves are not tracked), the squares between
// them must be empty, and the king's start, transit, and destination
// squares must not be attacked by the opponent.
func generateCastling(p *Position, mc *MoveContainer, white bool) {
	rank := 0
	kingMovedFlag := FlagWhiteKingMoved
	if !white {
		rank = 7
		kingMovedFlag = FlagBlackKingMoved
	}
	if p.Flags&kingMovedFlag != 0 {
		return
	}

	kingSq := Square(4 + 8*rank)
	if pt, ok := p.TypeAt(kingSq); !ok || pt != King || p.IsWhiteAt(kingSq) != white {
		return
	}
	occ := p.Occupied()
	attacked := AttackedSquares(p, !white)
	if attacked&(uint64(1)<<kingSq) != 0 {
		return
	}

	// King side: rook on h-file, king passes through f and g.
	if rookPresent(p, Square(7+8*rank), white) {
		between := uint64(1)<<Square(5+8*rank) | uint64(1)<<Square(6+8*rank)
		if occ&between == 0 && attacked&between == 0 {
			mc.Push(Move{From: kingSq, To: Square(6 + 8*rank), IsWhite: white, Quality: Motion})
		}
	}
	// Queen side: rook on a-file, king passes through d and c, b must be
	// empty (but need not be unattacked since the king never lands there).
	if rookPresent(p, Square(0+8*rank), white) {
		between := uint64(1)<<Square(1+8*rank) | uint64(1)<<Square(2+8*rank) | uint64(1)<<Square(3+8*rank)
		kingPath := uint64(1)<<Square(2+8*rank) | uint64(1)<<Square(3+8*rank)
		if occ&between == 0 && attacked&kingPath == 0 {
			mc.Push(Move{From: kingSq, To: Square(2 + 8*rank), IsWhite: white, Quality: Motion})
		}
	}
}

func rookPresent(p *Position, sq Square, white bool) bool {
	pt, ok := p.TypeAt(sq)
	return ok && pt == Rook && p.IsWhiteAt(sq) == white
}

// trailingZeros64 returns the index of the least significant set bit.
func trailingZeros64(bb uint64) int {
	return leastSignificantBit(bb)
}
