package deepline

import (
	"fmt"

	"go.uber.org/zap"
)

// Adapter is the external seam between the pure search core and an
// interactive front-end (a UCI loop, a test harness, or anything else).
// It is the only part of the deepline package that logs or touches
// configuration;
// Position, the move generator, and the searcher stay free of both.
type Adapter struct {
	cfg   Config
	log   *zap.SugaredLogger
	pos   Position
	white bool // side to move
}

// NewAdapter builds an Adapter over cfg, logging through log.
func NewAdapter(cfg Config, log *zap.SugaredLogger) *Adapter {
	a := &Adapter{cfg: cfg, log: log}
	a.NewGame()
	return a
}

// NewGame installs the standard starting position with white to move.
func (a *Adapter) NewGame() {
	a.pos = ParseFEN(InitialPos)
	a.white = true
	a.log.Info("new game installed")
}

// SetPositionFromFEN installs the board-placement field of fen (see
// spec.md §6.1: only piece placement is honoured) with white to move.
func (a *Adapter) SetPositionFromFEN(fen string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("deepline: rejected malformed FEN %q: %v", fen, r)
			a.log.Errorw("rejected malformed FEN", "fen", fen, "error", r)
		}
	}()
	a.pos = ParseFEN(fen)
	a.white = true
	return nil
}

// squareFromString parses a two-character square string ("e4") into a
// Square. ok is false for anything else.
func squareFromString(s string) (Square, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, false
	}
	return Square(int(file-'a') + 8*int(rank-'1')), true
}

// squareToString renders sq as a two-character square string.
func squareToString(sq Square) string {
	return fmt.Sprintf("%c%c", 'a'+byte(sq.File()), '1'+byte(sq.Rank()))
}

// ApplyUCIMove parses a wire move ("e2e4") and, if it names a pseudo-legal
// move of the side to move, applies it and flips the side to move.
// Malformed notation or a move that fails geometry leaves state
// unchanged and returns false; nothing panics.
func (a *Adapter) ApplyUCIMove(uci string) bool {
	if len(uci) < 4 {
		a.log.Warnw("rejected malformed move notation", "move", uci)
		return false
	}
	from, ok1 := squareFromString(uci[0:2])
	to, ok2 := squareFromString(uci[2:4])
	if !ok1 || !ok2 {
		a.log.Warnw("rejected malformed move notation", "move", uci)
		return false
	}

	var moves MoveContainer
	GeneratePseudoLegal(&a.pos, a.white, &moves)
	for moves.HasNext() {
		m := moves.PopNextMove()
		if m.From == from && m.To == to {
			a.pos.ApplyMove(m)
			a.white = !a.white
			return true
		}
	}
	a.log.Warnw("rejected illegal move", "move", uci)
	return false
}

// FindBestMove runs the iterative-deepening driver with the adapter's
// configured (InitialDepth, FinalDepth, ExtraDepth) and returns the move
// found, or ok == false if the position has no pseudo-legal moves
// (resignation).
func (a *Adapter) FindBestMove() (Move, bool) {
	result := IterativeDeepen(a.pos, a.white, a.cfg.InitialDepth, a.cfg.FinalDepth, a.cfg.ExtraDepth)
	if result.BestMove == nil {
		a.log.Infow("no move found", "score", result.Score)
		return Move{}, false
	}
	a.log.Infow("best move found",
		"move", squareToString(result.BestMove.From)+squareToString(result.BestMove.To),
		"score", result.Score,
		"depth", a.cfg.FinalDepth,
	)
	return *result.BestMove, true
}

// Position returns a copy of the adapter's current position, for display
// or test inspection.
func (a *Adapter) Position() Position {
	return a.pos
}

// WhiteToMove reports whether white is to move in the adapter's current
// position.
func (a *Adapter) WhiteToMove() bool {
	return a.white
}
