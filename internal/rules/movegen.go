package rules

import "github.com/davidknaack/hnefatafl/internal/board"

// Option is one legal destination for a piece.
type Option struct {
	To       board.Coord
	Captures []board.Coord
	Status   Status
}

// Destinations lists every legal destination of the piece on from, walking
// each direction until a piece or the edge blocks it. Restricted squares a
// piece may not stop on are passed through.
func (r *Rules) Destinations(p *board.Position, from board.Coord, side board.Side, history []board.Fingerprint) []Option {
	var opts []Option
	for _, d := range board.Directions {
		for to := from.Add(d); p.IsEmpty(to); to = to.Add(d) {
			v := r.Validate(p, board.NewMove(from, to), side, history)
			if !v.Valid() {
				continue
			}
			opts = append(opts, Option{To: to, Captures: v.Expected, Status: v.Status})
		}
	}
	return opts
}

// HasAnyMove reports whether side has at least one legal move on p.
func (r *Rules) HasAnyMove(p *board.Position, side board.Side, history []board.Fingerprint) bool {
	for _, from := range p.Coords(sidePieces(side)...) {
		for _, d := range board.Directions {
			for to := from.Add(d); p.IsEmpty(to); to = to.Add(d) {
				if reason, _ := r.check(p, board.NewMove(from, to), side, history); reason == OK {
					return true
				}
			}
		}
	}
	return false
}

// sidePieces returns the piece kinds side may move.
func sidePieces(side board.Side) []board.Piece {
	if side == board.Defenders {
		return []board.Piece{board.Defender, board.King}
	}
	return []board.Piece{board.Attacker}
}
