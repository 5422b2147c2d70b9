package deepline

import "math"

// Searcher performs a fail-soft alpha-beta search with absolute,
// white-positive scoring (not negamax). Each instance owns its own
// killer-move table and terminal-score cache for the lifetime of an
// iterative-deepening run.
type Searcher struct {
	DepthLimit int
	ExtraDepth int

	killerMoves map[int][]Move
	cache       map[Position]int
}

// NewSearcher builds a Searcher configured for a fixed depth limit and
// quiescence-lite extra depth.
func NewSearcher(depthLimit, extraDepth int) *Searcher {
	return &Searcher{
		DepthLimit:  depthLimit,
		ExtraDepth:  extraDepth,
		killerMoves: make(map[int][]Move),
		cache:       make(map[Position]int),
	}
}

// Configure updates the depth parameters for the next call, matching the
// iterative-deepening driver's "configure the searcher, then invoke at the
// root" contract; the terminal-score cache is deliberately left intact
// across configurations.
func (s *Searcher) Configure(depthLimit, extraDepth int) {
	s.DepthLimit = depthLimit
	s.ExtraDepth = extraDepth
}

// SearchRoot resets the killer-move table and invokes the recursive search
// at ply 0, optionally seeding the move container with the prior
// iteration's best move.
func (s *Searcher) SearchRoot(pos Position, white bool, seed *Move) SearchResult {
	s.killerMoves = make(map[int][]Move)
	return s.search(pos, white, 0, math.MinInt32, math.MaxInt32, false, seed)
}

func (s *Searcher) isTerminalCall(pos *Position, ply int, lastWasCapture bool) bool {
	if pos.IsTerminal() {
		return true
	}
	if !lastWasCapture && ply >= s.DepthLimit {
		return true
	}
	if lastWasCapture && ply >= s.DepthLimit+s.ExtraDepth {
		return true
	}
	return false
}

func (s *Searcher) terminalScore(pos Position) int {
	if score, ok := s.cache[pos]; ok {
		return score
	}
	score := pos.Score()
	s.cache[pos] = score
	return score
}

func (s *Searcher) saveKiller(ply int, m Move) {
	lst := append([]Move{m}, s.killerMoves[ply]...)
	if len(lst) > 2 {
		lst = lst[:2]
	}
	s.killerMoves[ply] = lst
}

func (s *Searcher) search(pos Position, white bool, ply int, alpha, beta int, lastWasCapture bool, seed *Move) SearchResult {
	if s.isTerminalCall(&pos, ply, lastWasCapture) {
		return SearchResult{Score: s.terminalScore(pos), BestMove: nil}
	}

	var moves MoveContainer
	GeneratePseudoLegal(&pos, white, &moves)

	if ply == 0 && seed != nil {
		moves.SetFirstMove(*seed)
	}
	for _, km := range s.killerMoves[ply] {
		moves.AddKillerMove(km)
	}

	var bestScore int
	var bestMove *Move
	if white {
		bestScore = math.MinInt32
	} else {
		bestScore = math.MaxInt32
	}

	for moves.HasNext() {
		m := moves.PopNextMove()

		_, isCapture := pos.TypeAt(m.To)

		child := pos
		child.ApplyMove(m)

		result := s.search(child, !white, ply+1, alpha, beta, isCapture, nil)
		childScore := result.Score

		if white {
			if childScore > bestScore {
				bestScore = childScore
				mv := m
				bestMove = &mv
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if bestScore >= beta {
				s.saveKiller(ply, m)
				break
			}
		} else {
			if childScore < bestScore {
				bestScore = childScore
				mv := m
				bestMove = &mv
			}
			if bestScore < beta {
				beta = bestScore
			}
			if bestScore <= alpha {
				s.saveKiller(ply, m)
				break
			}
		}
	}

	return SearchResult{Score: bestScore, BestMove: bestMove}
}
