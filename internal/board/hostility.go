package board

import "fmt"

// HostileTo reports whether sq counts against pieces of the given side when
// deciding captures. This is the only hostility rule; sandwich, enclosure,
// King and fort checks all go through it.
//
// Restricted squares are hostile to everyone, except that a throne holding
// the King shields Defenders. Otherwise an occupied square is hostile to the
// side that does not own its occupant, and an empty square is neutral.
func HostileTo(sq Square, side Side) bool {
	if side != Attackers && side != Defenders {
		panic(fmt.Sprintf("board: hostility to unknown side %d", side))
	}
	if sq.Restricted {
		if sq.Throne && sq.Piece == King {
			return side == Attackers
		}
		return true
	}
	if sq.Piece != NoPiece {
		return sq.Piece.Owner() != side
	}
	return false
}

// HostileAt is HostileTo for a coordinate of p. Off-board coordinates are
// never hostile.
func (p *Position) HostileAt(c Coord, side Side) bool {
	if !p.InBounds(c) {
		return false
	}
	return HostileTo(p.At(c), side)
}
