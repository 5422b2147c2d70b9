// Package cli formats engine values for plain-text display. It is the
// repository's only visual surface; no terminal UI framework is used,
// since a graphical or interactive front-end is out of scope.
package cli

import (
	"strings"

	"github.com/arn-halden/deepline"
)

// FormatBitboard renders a 64-bit bitboard as an 8x8 grid of '1'/'.' with
// rank 8 printed first, matching board reading order.
func FormatBitboard(bb uint64) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := file + 8*rank
			if bb&(1<<uint(sq)) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('.')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatPosition renders the full board, delegating to Position.String.
func FormatPosition(pos deepline.Position) string {
	return pos.String()
}
