package board

import "fmt"

// Side is one of the two players.
type Side uint8

const (
	Attackers Side = iota
	Defenders
	NoSide Side = 2
)

// Other returns the opposing side.
func (s Side) Other() Side {
	return s ^ 1
}

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Attackers:
		return "Attackers"
	case Defenders:
		return "Defenders"
	default:
		return "NoSide"
	}
}

// Piece is the occupant of a square. The zero value is an empty square.
type Piece uint8

const (
	NoPiece Piece = iota
	Attacker
	Defender
	King
)

// Owner returns the side the piece belongs to. The King is a Defender.
func (p Piece) Owner() Side {
	switch p {
	case NoPiece:
		return NoSide
	case Attacker:
		return Attackers
	case Defender, King:
		return Defenders
	default:
		panic(fmt.Sprintf("board: unknown piece %d", p))
	}
}

// IsKing returns true for the King.
func (p Piece) IsKing() bool {
	return p == King
}

// String returns the layout glyph for the piece.
func (p Piece) String() string {
	switch p {
	case NoPiece:
		return " "
	case Attacker:
		return "A"
	case Defender:
		return "D"
	case King:
		return "K"
	default:
		panic(fmt.Sprintf("board: unknown piece %d", p))
	}
}

// Square is one cell of the grid.
// Invariant: Throne implies Restricted.
type Square struct {
	Piece      Piece
	Throne     bool
	Restricted bool
}

// Empty returns true if nothing stands on the square.
func (sq Square) Empty() bool {
	return sq.Piece == NoPiece
}
