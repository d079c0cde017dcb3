// Package notation reads and writes the text form of squares and moves.
//
// A square is a column letter followed by a rank: "A1" is column 0, row 0.
// A move is "<from>-<to>" with an optional capture list, "A1-A3(A2)". The
// hyphen may be left out on input. A sequence is a comma separated list of
// moves; commas inside a capture list do not split it.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/davidknaack/hnefatafl/internal/board"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("notation: syntax error")

func syntaxErr(input, format string, args ...any) error {
	return fmt.Errorf("%w: %q: %s", ErrSyntax, input, fmt.Sprintf(format, args...))
}

// ParseCoord parses a single square such as "C7". The column letter is case
// insensitive. Whether the square lies on a given board is not checked.
func ParseCoord(s string) (board.Coord, error) {
	sc := scanner{src: strings.TrimSpace(s)}
	c, err := sc.coord()
	if err != nil {
		return board.NoCoord, err
	}
	if !sc.done() {
		return board.NoCoord, syntaxErr(s, "trailing %q", sc.rest())
	}
	return c, nil
}

// FormatCoord returns the text form of c.
func FormatCoord(c board.Coord) string {
	return c.String()
}

// ParseMove parses one move with an optional capture list.
func ParseMove(s string) (board.Move, error) {
	sc := scanner{src: stripSpace(s)}
	m, err := sc.move()
	if err != nil {
		return board.Move{}, err
	}
	if !sc.done() {
		return board.Move{}, syntaxErr(s, "trailing %q", sc.rest())
	}
	return m, nil
}

// FormatMove returns the canonical form of m: always hyphenated, captures
// sorted, and no list when there are none.
func FormatMove(m board.Move) string {
	caps := append([]board.Coord(nil), m.Captures...)
	board.SortCoords(caps)
	return board.Move{From: m.From, To: m.To, Captures: caps}.String()
}

// ParseSequence parses a comma separated list of moves. An empty string is an
// empty sequence.
func ParseSequence(s string) ([]board.Move, error) {
	s = stripSpace(s)
	if s == "" {
		return nil, nil
	}

	var moves []board.Move
	for i, tok := range splitTopLevel(s) {
		if tok == "" {
			return nil, syntaxErr(s, "empty move at position %d", i+1)
		}
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence joins the canonical forms of moves with commas.
func FormatSequence(moves []board.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = FormatMove(m)
	}
	return strings.Join(parts, ",")
}

// splitTopLevel splits s on commas outside parentheses.
func splitTopLevel(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

type scanner struct {
	src string
	pos int
}

func (sc *scanner) done() bool   { return sc.pos >= len(sc.src) }
func (sc *scanner) rest() string { return sc.src[sc.pos:] }

func (sc *scanner) peek() byte {
	if sc.done() {
		return 0
	}
	return sc.src[sc.pos]
}

func (sc *scanner) accept(b byte) bool {
	if sc.peek() == b {
		sc.pos++
		return true
	}
	return false
}

func (sc *scanner) coord() (board.Coord, error) {
	ch := sc.peek()
	var x int
	switch {
	case ch >= 'A' && ch <= 'Z':
		x = int(ch - 'A')
	case ch >= 'a' && ch <= 'z':
		x = int(ch - 'a')
	case ch == 0:
		return board.NoCoord, syntaxErr(sc.src, "missing square")
	default:
		return board.NoCoord, syntaxErr(sc.src, "bad column %q", ch)
	}
	sc.pos++

	start := sc.pos
	for ch := sc.peek(); ch >= '0' && ch <= '9'; ch = sc.peek() {
		sc.pos++
	}
	if start == sc.pos {
		return board.NoCoord, syntaxErr(sc.src, "missing rank after column %c", 'A'+x)
	}
	rank, err := strconv.Atoi(sc.src[start:sc.pos])
	if err != nil || rank < 1 || rank > board.MaxSize {
		return board.NoCoord, syntaxErr(sc.src, "bad rank %q", sc.src[start:sc.pos])
	}
	return board.Coord{X: x, Y: rank - 1}, nil
}

func (sc *scanner) move() (board.Move, error) {
	from, err := sc.coord()
	if err != nil {
		return board.Move{}, err
	}
	sc.accept('-')
	to, err := sc.coord()
	if err != nil {
		return board.Move{}, err
	}

	m := board.Move{From: from, To: to}
	if !sc.accept('(') {
		return m, nil
	}
	if sc.accept(')') {
		return m, nil
	}
	for {
		c, err := sc.coord()
		if err != nil {
			return board.Move{}, err
		}
		m.Captures = append(m.Captures, c)
		if sc.accept(')') {
			return m, nil
		}
		if !sc.accept(',') {
			return board.Move{}, syntaxErr(sc.src, "unterminated capture list")
		}
	}
}
