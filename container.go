package deepline

// numQualities is the number of distinct MoveQuality buckets.
const numQualities = int(Principal) + 1

// MoveContainer retrieves moves in strictly non-increasing quality order.
// Rather than a binary heap, it keeps one small slice per quality bucket
// (as many as 128 moves ever live in one, per the position's branching
// factor), which is equivalent to a heap at these sizes and considerably
// simpler: push is an append, and pop drains the highest non-empty bucket
// from its tail.
type MoveContainer struct {
	buckets [numQualities][]Move
	count   int
}

// Reset empties the container for reuse, keeping the underlying slice
// capacity.
func (c *MoveContainer) Reset() {
	for i := range c.buckets {
		c.buckets[i] = c.buckets[i][:0]
	}
	c.count = 0
}

// Push adds m to its quality's bucket.
func (c *MoveContainer) Push(m Move) {
	c.buckets[m.Quality] = append(c.buckets[m.Quality], m)
	c.count++
}

// HasNext reports whether any move remains.
func (c *MoveContainer) HasNext() bool {
	return c.count > 0
}

// PopNextMove removes and returns the highest-quality remaining move. It
// panics if the container is empty; callers must check HasNext first.
func (c *MoveContainer) PopNextMove() Move {
	for q := numQualities - 1; q >= 0; q-- {
		n := len(c.buckets[q])
		if n == 0 {
			continue
		}
		m := c.buckets[q][n-1]
		c.buckets[q] = c.buckets[q][:n-1]
		c.count--
		return m
	}
	panic("deepline: PopNextMove on empty MoveContainer")
}

// Count reports how many moves remain.
func (c *MoveContainer) Count() int {
	return c.count
}

// SetFirstMove retags m as Principal and inserts it, so it is retrieved
// before every other move regardless of its generation-time quality. Used
// to seed the move ordering with the prior iterative-deepening pass's best
// move.
func (c *MoveContainer) SetFirstMove(m Move) {
	m.Quality = Principal
	c.Push(m)
}

// AddKillerMove retags m as KillerMove and inserts it, ranking it above
// ordinary captures but below the seeded principal move.
func (c *MoveContainer) AddKillerMove(m Move) {
	m.Quality = KillerMove
	c.Push(m)
}
