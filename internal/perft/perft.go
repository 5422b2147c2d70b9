// Package perft counts pseudo-legal moves reachable from a position, to a
// fixed depth, over the pseudo-legal generator. It exists to express
// spec.md §8's move-count invariants (20 moves per side at the standard
// start, 12 at a fixed blocked-pawn position) as a reusable test helper,
// not as a CLI tool: this engine never filters for legality, so perft
// here counts pseudo-legal nodes, not strictly-legal ones.
package perft

import "github.com/arn-halden/deepline"

// Count returns the number of pseudo-legal move sequences of length depth
// reachable from pos with the side given by white to move first
// (alternating sides each ply).
func Count(pos deepline.Position, white bool, depth int) int {
	if depth <= 0 {
		return 1
	}

	var moves deepline.MoveContainer
	deepline.GeneratePseudoLegal(&pos, white, &moves)

	if depth == 1 {
		return moves.Count()
	}

	nodes := 0
	for moves.HasNext() {
		m := moves.PopNextMove()
		child := pos
		child.ApplyMove(m)
		nodes += Count(child, !white, depth-1)
	}
	return nodes
}
