// Package rules decides whether Hnefatafl moves are legal, which pieces they
// capture and how they leave the game.
//
// Every function here is a pure computation over the positions it is given:
// nothing is cached between calls and no input position is modified.
package rules

import "github.com/davidknaack/hnefatafl/internal/board"

// Rules holds the sets derived once from a game's starting position.
// Square restrictions never change during a game, so one Rules value serves
// every position of that game.
type Rules struct {
	size  int
	edges board.CoordSet
}

// New derives the rule context for games that start from p.
func New(p *board.Position) *Rules {
	return &Rules{
		size:  p.Size(),
		edges: board.EdgeSquares(p),
	}
}

// Size returns the board size the rules were derived for.
func (r *Rules) Size() int {
	return r.size
}

// EdgeSquares returns a copy of the squares that count as reaching the edge.
func (r *Rules) EdgeSquares() board.CoordSet {
	out := make(board.CoordSet, len(r.edges))
	out.Union(r.edges)
	return out
}
