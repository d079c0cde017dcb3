package board

import "strings"

// Position is an N×N grid of squares stored row-major.
// Operations that produce a new position never share squares with the source.
type Position struct {
	size    int
	squares []Square
}

func newPosition(size int) *Position {
	return &Position{
		size:    size,
		squares: make([]Square, size*size),
	}
}

// Size returns N for an N×N board.
func (p *Position) Size() int {
	return p.size
}

// InBounds returns true if c lies on the board.
func (p *Position) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < p.size && c.Y < p.size
}

// OnBoundary returns true if c is on the outermost ring of the board.
func (p *Position) OnBoundary(c Coord) bool {
	return p.InBounds(c) && (c.X == 0 || c.Y == 0 || c.X == p.size-1 || c.Y == p.size-1)
}

// At returns the square at c. c must be in bounds.
func (p *Position) At(c Coord) Square {
	return p.squares[c.Y*p.size+c.X]
}

// PieceAt returns the piece at c, or NoPiece if c is empty or off the board.
func (p *Position) PieceAt(c Coord) Piece {
	if !p.InBounds(c) {
		return NoPiece
	}
	return p.squares[c.Y*p.size+c.X].Piece
}

// IsEmpty returns true if c is on the board and unoccupied.
func (p *Position) IsEmpty(c Coord) bool {
	return p.InBounds(c) && p.PieceAt(c) == NoPiece
}

// setPiece places piece on c, replacing any occupant.
func (p *Position) setPiece(c Coord, piece Piece) {
	p.squares[c.Y*p.size+c.X].Piece = piece
}

// Clone creates a deep copy of the position.
func (p *Position) Clone() *Position {
	cp := newPosition(p.size)
	copy(cp.squares, p.squares)
	return cp
}

// KingSquare returns the King's coordinate, or false if the King is gone.
func (p *Position) KingSquare() (Coord, bool) {
	for i, sq := range p.squares {
		if sq.Piece == King {
			return Coord{i % p.size, i / p.size}, true
		}
	}
	return NoCoord, false
}

// Count returns how many squares hold the given piece.
func (p *Position) Count(piece Piece) int {
	n := 0
	for _, sq := range p.squares {
		if sq.Piece == piece {
			n++
		}
	}
	return n
}

// Coords returns the coordinates of every square holding one of the pieces.
func (p *Position) Coords(pieces ...Piece) []Coord {
	var out []Coord
	for i, sq := range p.squares {
		for _, pc := range pieces {
			if sq.Piece == pc {
				out = append(out, Coord{i % p.size, i / p.size})
				break
			}
		}
	}
	return out
}

// Neighbors returns the on-board orthogonal neighbours of c.
func (p *Position) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range Directions {
		if n := c.Add(d); p.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// String returns a plain visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	for _, row := range p.Layout() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
