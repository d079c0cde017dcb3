package rules

import "github.com/davidknaack/hnefatafl/internal/board"

// Captures returns every square m would capture when played by side on p:
// sandwich captures around the destination plus edge enclosures the move
// completes. p itself is not modified.
func Captures(p *board.Position, m board.Move, side board.Side) board.CoordSet {
	after := board.ApplyMove(p, m, board.ApplyOptions{})

	caps := sandwichCaptures(after, m.To, side)
	caps.Union(enclosureCaptures(p, after, side))
	return caps
}

// sandwichCaptures checks the four squares next to `to` on the board as it
// stands after the move.
func sandwichCaptures(after *board.Position, to board.Coord, side board.Side) board.CoordSet {
	caps := make(board.CoordSet)
	for _, d := range board.Directions {
		mid := to.Add(d)
		victim := after.PieceAt(mid)
		if victim == board.NoPiece || victim.Owner() == side {
			continue
		}
		if victim.IsKing() {
			if side == board.Attackers && kingSurrounded(after, mid) {
				caps.Add(mid)
			}
			continue
		}
		if after.HostileAt(mid.Add(d), victim.Owner()) {
			caps.Add(mid)
		}
	}
	return caps
}

// kingSurrounded reports whether all four neighbours of the King are on the
// board and hostile to him. The board edge protects the King.
func kingSurrounded(p *board.Position, king board.Coord) bool {
	return kingSurroundedBy(p, king, func(c board.Coord) bool {
		return p.HostileAt(c, board.Defenders)
	})
}

func kingSurroundedBy(p *board.Position, king board.Coord, hostile func(board.Coord) bool) bool {
	for _, d := range board.Directions {
		n := king.Add(d)
		if !p.InBounds(n) || !hostile(n) {
			return false
		}
	}
	return true
}

// edgeLine walks one side of the board: from start along `along`, with
// `inward` pointing towards the centre.
type edgeLine struct {
	start  board.Coord
	along  board.Coord
	inward board.Coord
}

func edgeLines(size int) [4]edgeLine {
	last := size - 1
	return [4]edgeLine{
		{start: board.Coord{X: 0, Y: 0}, along: board.Coord{X: 1}, inward: board.Coord{Y: 1}},
		{start: board.Coord{X: 0, Y: last}, along: board.Coord{X: 1}, inward: board.Coord{Y: -1}},
		{start: board.Coord{X: 0, Y: 0}, along: board.Coord{Y: 1}, inward: board.Coord{X: 1}},
		{start: board.Coord{X: last, Y: 0}, along: board.Coord{Y: 1}, inward: board.Coord{X: -1}},
	}
}

// edgeRuns returns the maximal runs of non-King pieces owned by owner along
// the line. The King ends a run.
func edgeRuns(p *board.Position, line edgeLine, owner board.Side) [][]board.Coord {
	var runs [][]board.Coord
	var run []board.Coord
	for c := line.start; p.InBounds(c); c = c.Add(line.along) {
		piece := p.PieceAt(c)
		if piece != board.NoPiece && !piece.IsKing() && piece.Owner() == owner {
			run = append(run, c)
			continue
		}
		if len(run) > 0 {
			runs = append(runs, run)
			run = nil
		}
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}

// runEnclosed reports whether both ends of the run and every inward
// neighbour are on the board and satisfy hostile.
func runEnclosed(p *board.Position, run []board.Coord, line edgeLine, hostile func(board.Coord) bool) bool {
	back := board.Coord{X: -line.along.X, Y: -line.along.Y}
	ends := [2]board.Coord{run[0].Add(back), run[len(run)-1].Add(line.along)}
	for _, e := range ends {
		if !p.InBounds(e) || !hostile(e) {
			return false
		}
	}
	for _, c := range run {
		in := c.Add(line.inward)
		if !p.InBounds(in) || !hostile(in) {
			return false
		}
	}
	return true
}

// enclosureCaptures finds edge runs of the mover's opponents that are
// enclosed after the move but were not enclosed before it.
func enclosureCaptures(before, after *board.Position, side board.Side) board.CoordSet {
	victims := side.Other()
	hostileAfter := func(c board.Coord) bool { return after.HostileAt(c, victims) }
	hostileBefore := func(c board.Coord) bool { return before.HostileAt(c, victims) }

	caps := make(board.CoordSet)
	for _, line := range edgeLines(after.Size()) {
		for _, run := range edgeRuns(after, line, victims) {
			if !runEnclosed(after, run, line, hostileAfter) {
				continue
			}
			if runEnclosed(before, run, line, hostileBefore) {
				continue
			}
			for _, c := range run {
				caps.Add(c)
			}
		}
	}
	return caps
}
