package rules

import "github.com/davidknaack/hnefatafl/internal/board"

// HasFort reports whether the Defenders hold an unbreakable position touching
// the board edge: the King cannot be captured and a region of safe squares
// around him reaches the boundary. Safe squares are Defenders that can never
// be captured and empty squares Attackers can never get to.
//
// A board without Attackers never scores a fort.
func HasFort(p *board.Position) bool {
	if p.Count(board.Attacker) == 0 {
		return false
	}
	king, ok := p.KingSquare()
	if !ok {
		return false
	}

	pr := attackerPressure(p)
	if pr.capturable.Has(king) {
		return false
	}

	for c := range safeFill(p, king, pr.capturable, pr.visited) {
		if p.OnBoundary(c) {
			return true
		}
	}
	return false
}

// pressure is what the Attackers could eventually achieve on a position.
type pressure struct {
	// reach holds squares an Attacker could stand on.
	reach board.CoordSet
	// visited is reach plus restricted squares Attackers can pass through.
	visited board.CoordSet
	// capturable holds Defender and King squares that could be captured.
	capturable board.CoordSet
}

// attackerPressure alternates reachability and capturability until neither
// grows: a capturable Defender's square is one Attackers can later cross.
func attackerPressure(p *board.Position) pressure {
	capturable := make(board.CoordSet)
	for {
		reach, visited := attackerReach(p, capturable)
		next := capturableDefenders(p, reach)
		next.Union(capturable)
		if next.Len() == capturable.Len() {
			return pressure{reach: reach, visited: visited, capturable: capturable}
		}
		capturable = next
	}
}

// attackerReach floods outward from every Attacker through empty squares,
// other Attackers and the squares in open. Restricted squares are crossed but
// never occupied, so they appear in visited and not in reach.
func attackerReach(p *board.Position, open board.CoordSet) (reach, visited board.CoordSet) {
	queue := p.Coords(board.Attacker)
	visited = board.NewCoordSet(queue...)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range p.Neighbors(c) {
			if visited.Has(n) {
				continue
			}
			piece := p.PieceAt(n)
			if piece == board.NoPiece || piece == board.Attacker || open.Has(n) {
				visited.Add(n)
				queue = append(queue, n)
			}
		}
	}

	reach = make(board.CoordSet, len(visited))
	for c := range visited {
		if !p.At(c).Restricted {
			reach.Add(c)
		}
	}
	return reach, visited
}

// capturableDefenders returns the Defender and King squares that could be
// captured if Attackers were placed on any squares of reach, by sandwich,
// King surround or edge enclosure.
func capturableDefenders(p *board.Position, reach board.CoordSet) board.CoordSet {
	hostile := func(c board.Coord) bool {
		return p.HostileAt(c, board.Defenders) || reach.Has(c)
	}

	caps := make(board.CoordSet)
	for _, c := range p.Coords(board.Defender, board.King) {
		if p.PieceAt(c).IsKing() {
			if kingSurroundedBy(p, c, hostile) {
				caps.Add(c)
			}
			continue
		}
		if sandwichable(p, c, hostile) {
			caps.Add(c)
		}
	}

	for _, line := range edgeLines(p.Size()) {
		for _, run := range edgeRuns(p, line, board.Defenders) {
			if runEnclosed(p, run, line, hostile) {
				for _, c := range run {
					caps.Add(c)
				}
			}
		}
	}
	return caps
}

// sandwichable reports whether both squares on either side of c, along one
// row or column, are on the board and satisfy hostile.
func sandwichable(p *board.Position, c board.Coord, hostile func(board.Coord) bool) bool {
	for _, d := range board.Directions[:2] {
		a := c.Add(d)
		b := board.Coord{X: c.X - d.X, Y: c.Y - d.Y}
		if p.InBounds(a) && p.InBounds(b) && hostile(a) && hostile(b) {
			return true
		}
	}
	return false
}

// safeFill floods from the King through Defenders that are not capturable
// and empty squares Attackers never visit.
func safeFill(p *board.Position, king board.Coord, capturable, visited board.CoordSet) board.CoordSet {
	safe := func(c board.Coord) bool {
		switch p.PieceAt(c).Owner() {
		case board.Defenders:
			return !capturable.Has(c)
		case board.NoSide:
			return !visited.Has(c)
		default:
			return false
		}
	}

	region := board.NewCoordSet(king)
	queue := []board.Coord{king}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range p.Neighbors(c) {
			if region.Has(n) || !safe(n) {
				continue
			}
			region.Add(n)
			queue = append(queue, n)
		}
	}
	return region
}
