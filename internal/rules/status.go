package rules

import "github.com/davidknaack/hnefatafl/internal/board"

// Status is the state of a game after a move.
type Status uint8

const (
	InProgress Status = iota
	AttackerWin
	DefenderWin
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case AttackerWin:
		return "AttackerWin"
	case DefenderWin:
		return "DefenderWin"
	default:
		return "Unknown"
	}
}

// Over returns true once one side has won.
func (s Status) Over() bool {
	return s == AttackerWin || s == DefenderWin
}

// Winner returns the winning side, or NoSide while the game is running.
func (s Status) Winner() board.Side {
	switch s {
	case AttackerWin:
		return board.Attackers
	case DefenderWin:
		return board.Defenders
	default:
		return board.NoSide
	}
}

// Ending says why a game finished.
type Ending uint8

const (
	NotOver Ending = iota
	KingCaptured
	KingEscaped
	EdgeFort
	Encircled
	NoLegalMoves
)

// String returns the ending name.
func (e Ending) String() string {
	switch e {
	case NotOver:
		return "NotOver"
	case KingCaptured:
		return "KingCaptured"
	case KingEscaped:
		return "KingEscaped"
	case EdgeFort:
		return "EdgeFort"
	case Encircled:
		return "Encircled"
	case NoLegalMoves:
		return "NoLegalMoves"
	default:
		return "Unknown"
	}
}

// Outcome classifies p, the position after mover's move with captures
// removed.
func (r *Rules) Outcome(p *board.Position, mover board.Side) (Status, Ending) {
	king, ok := p.KingSquare()
	if !ok {
		return AttackerWin, KingCaptured
	}
	if sq := p.At(king); sq.Restricted && !sq.Throne {
		return DefenderWin, KingEscaped
	}
	if HasFort(p) {
		return DefenderWin, EdgeFort
	}
	if mover == board.Attackers && !r.defendersReachEdge(p) {
		return AttackerWin, Encircled
	}
	return InProgress, NotOver
}

// defendersReachEdge floods from every Defender and the King through empty
// and Defender squares and reports whether any edge square is reached.
func (r *Rules) defendersReachEdge(p *board.Position) bool {
	queue := p.Coords(board.Defender, board.King)
	seen := board.NewCoordSet(queue...)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if r.edges.Has(c) {
			return true
		}
		for _, n := range p.Neighbors(c) {
			if seen.Has(n) {
				continue
			}
			if owner := p.PieceAt(n).Owner(); owner == board.NoSide || owner == board.Defenders {
				seen.Add(n)
				queue = append(queue, n)
			}
		}
	}
	return false
}
