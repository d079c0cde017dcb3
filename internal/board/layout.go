package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedLayout  = errors.New("malformed layout")
	ErrInvalidKingCount = errors.New("invalid king count")
)

// ClassicLayout is the standard 11×11 starting position.
var ClassicLayout = []string{
	"R..AAAAA..R",
	".....A.....",
	"...........",
	"A....D....A",
	"A...DDD...A",
	"AA.DDKDD.AA",
	"A...DDD...A",
	"A....D....A",
	"...........",
	".....A.....",
	"R..AAAAA..R",
}

// Glyph is what a layout character places on its square.
type Glyph struct {
	Piece      Piece
	Throne     bool
	Restricted bool
}

// Glyphs maps layout characters to square contents.
type Glyphs map[rune]Glyph

// DefaultGlyphs is used when BuildPosition receives a nil map.
// 'K' places the King on the throne, 'k' places him on a plain square and
// 'T' is an empty throne.
var DefaultGlyphs = Glyphs{
	'A': {Piece: Attacker},
	'a': {Piece: Attacker},
	'D': {Piece: Defender},
	'd': {Piece: Defender},
	'K': {Piece: King, Throne: true, Restricted: true},
	'k': {Piece: King},
	'T': {Throne: true, Restricted: true},
	'R': {Restricted: true},
	' ': {},
	'.': {},
}

// BuildPosition interprets N rows of N characters as a position.
// A nil glyph map selects DefaultGlyphs.
func BuildPosition(layout []string, glyphs Glyphs) (*Position, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformedLayout)
	}
	if glyphs == nil {
		glyphs = DefaultGlyphs
	}

	size := len(layout)
	pos := newPosition(size)

	for y, row := range layout {
		cells := []rune(row)
		if len(cells) != size {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d", ErrMalformedLayout, y+1, len(cells), size)
		}
		for x, ch := range cells {
			g, ok := glyphs[ch]
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at row %d column %d", ErrMalformedLayout, ch, y+1, x+1)
			}
			pos.squares[y*size+x] = Square{
				Piece:      g.Piece,
				Throne:     g.Throne,
				Restricted: g.Restricted || g.Throne,
			}
		}
	}

	return pos, nil
}

// ParseLayout builds a position with the default glyphs and checks that
// exactly one King is present.
func ParseLayout(layout []string) (*Position, error) {
	pos, err := BuildPosition(layout, nil)
	if err != nil {
		return nil, err
	}
	if n := pos.Count(King); n != 1 {
		return nil, fmt.Errorf("%w: found %d kings", ErrInvalidKingCount, n)
	}
	return pos, nil
}

// MustParseLayout is ParseLayout for layouts known to be valid.
func MustParseLayout(layout ...string) *Position {
	pos, err := ParseLayout(layout)
	if err != nil {
		panic(err)
	}
	return pos
}

// Layout returns the position as rows of default glyphs.
// ParseLayout(p.Layout()) reproduces p unless the King stands on an escape
// square, which has no glyph of its own.
func (p *Position) Layout() []string {
	rows := make([]string, p.size)
	var sb strings.Builder
	for y := 0; y < p.size; y++ {
		sb.Reset()
		for x := 0; x < p.size; x++ {
			sb.WriteByte(squareGlyph(p.At(Coord{x, y})))
		}
		rows[y] = sb.String()
	}
	return rows
}

func squareGlyph(sq Square) byte {
	switch sq.Piece {
	case Attacker:
		return 'A'
	case Defender:
		return 'D'
	case King:
		if sq.Throne {
			return 'K'
		}
		// Off the throne the King's square can only be plain or an
		// escape square; 'K' would re-create a throne on parse.
		return 'k'
	}
	switch {
	case sq.Throne:
		return 'T'
	case sq.Restricted:
		return 'R'
	default:
		return '.'
	}
}
