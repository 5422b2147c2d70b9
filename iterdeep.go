package deepline

// IterativeDeepen runs the searcher from initialDepth up to finalDepth,
// re-seeding the move container at each depth with the previous
// iteration's best move so it is examined first. A single Searcher
// instance is reused across iterations, so its terminal-score cache
// stays warm from one depth to the next. initialDepth below 1 or above
// finalDepth is clamped, so the loop always runs at least once, at
// finalDepth.
func IterativeDeepen(pos Position, white bool, initialDepth, finalDepth, extraDepth int) SearchResult {
	start := initialDepth
	if start < 1 {
		start = 1
	}
	if start > finalDepth {
		start = finalDepth
	}

	searcher := NewSearcher(start, extraDepth)

	var seed *Move
	var result SearchResult
	for d := start; d <= finalDepth; d++ {
		searcher.Configure(d, extraDepth)
		result = searcher.SearchRoot(pos, white, seed)
		if d == finalDepth {
			return result
		}
		seed = result.BestMove
	}
	return result
}
