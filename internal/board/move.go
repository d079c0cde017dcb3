package board

import "strings"

// Move relocates one piece along a row or column. Captures lists the squares
// the mover claims will be removed; it may be empty.
type Move struct {
	From     Coord
	To       Coord
	Captures []Coord
}

// NewMove creates a move without declared captures.
func NewMove(from, to Coord, captures ...Coord) Move {
	return Move{From: from, To: to, Captures: captures}
}

// Straight returns true if the move stays on one row or column and actually
// goes somewhere.
func (m Move) Straight() bool {
	if m.From == m.To {
		return false
	}
	return m.From.X == m.To.X || m.From.Y == m.To.Y
}

// Step returns the unit direction from From towards To for straight moves.
func (m Move) Step() Coord {
	return Coord{sign(m.To.X - m.From.X), sign(m.To.Y - m.From.Y)}
}

// Between returns the squares strictly between From and To.
func (m Move) Between() []Coord {
	if !m.Straight() {
		return nil
	}
	step := m.Step()
	var out []Coord
	for c := m.From.Add(step); c != m.To; c = c.Add(step) {
		out = append(out, c)
	}
	return out
}

// String returns a compact form like "A1-A3(A2)".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteByte('-')
	sb.WriteString(m.To.String())
	if len(m.Captures) > 0 {
		sb.WriteByte('(')
		for i, c := range m.Captures {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(c.String())
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// ApplyOptions controls ApplyMove.
type ApplyOptions struct {
	// Captures clears every square listed in Move.Captures.
	Captures bool
}

// ApplyMove returns a new position with the piece on m.From moved to m.To.
// p is left untouched. No legality checks are made.
func ApplyMove(p *Position, m Move, opts ApplyOptions) *Position {
	next := p.Clone()
	piece := next.PieceAt(m.From)
	next.setPiece(m.From, NoPiece)
	next.setPiece(m.To, piece)

	if opts.Captures {
		for _, c := range m.Captures {
			if next.InBounds(c) {
				next.setPiece(c, NoPiece)
			}
		}
	}
	return next
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
