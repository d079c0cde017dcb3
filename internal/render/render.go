// Package render draws positions as text for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/davidknaack/hnefatafl/internal/board"
)

// Options controls Board.
type Options struct {
	// Color enables ANSI colours.
	Color bool
	// Coordinates adds rank numbers on the left and column letters below.
	Coordinates bool
}

// Board draws p with the first layout row at the top. Attackers are red,
// Defenders cyan, the King bold yellow and empty restricted squares magenta.
func Board(p *board.Position, opts Options) string {
	au := aurora.NewAurora(opts.Color)
	n := p.Size()

	var sb strings.Builder
	for y := 0; y < n; y++ {
		if opts.Coordinates {
			fmt.Fprintf(&sb, "%2d ", y+1)
		}
		for x := 0; x < n; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(square(au, p.At(board.Coord{X: x, Y: y})))
		}
		sb.WriteByte('\n')
	}

	if opts.Coordinates {
		sb.WriteString("   ")
		for x := 0; x < n; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(byte('A' + x))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func square(au aurora.Aurora, sq board.Square) string {
	switch sq.Piece {
	case board.Attacker:
		return au.Red("A").String()
	case board.Defender:
		return au.Cyan("D").String()
	case board.King:
		return au.Yellow("K").Bold().String()
	}
	switch {
	case sq.Throne:
		return au.Magenta("T").String()
	case sq.Restricted:
		return au.Magenta("R").String()
	default:
		return "."
	}
}
