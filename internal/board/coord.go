// Package board implements the Hnefatafl board model: squares, pieces,
// positions built from text layouts, and the hostility rule shared by every
// capture check.
package board

import (
	"fmt"
	"sort"
)

// MaxSize is the largest board the column-letter notation can address.
const MaxSize = 26

// Coord addresses a square: X is the column, Y the row, both 0-based.
// Row 0 is the first row of the layout the position was built from.
type Coord struct {
	X, Y int
}

// NoCoord is returned when a lookup finds nothing.
var NoCoord = Coord{-1, -1}

// String returns the notation for the square (e.g., "A1" for (0,0)).
func (c Coord) String() string {
	if c.X < 0 || c.Y < 0 || c.X >= MaxSize {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'A'+c.X, c.Y+1)
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// Directions are the four orthogonal unit steps.
var Directions = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// CoordSet is an unordered set of coordinates.
type CoordSet map[Coord]struct{}

// NewCoordSet creates a set holding the given coordinates.
func NewCoordSet(cs ...Coord) CoordSet {
	s := make(CoordSet, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c into the set.
func (s CoordSet) Add(c Coord) {
	s[c] = struct{}{}
}

// Has returns true if c is in the set.
func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of coordinates in the set.
func (s CoordSet) Len() int {
	return len(s)
}

// Union adds every coordinate of o to s.
func (s CoordSet) Union(o CoordSet) {
	for c := range o {
		s[c] = struct{}{}
	}
}

// Equal returns true if both sets hold the same coordinates.
func (s CoordSet) Equal(o CoordSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the coordinates ordered by row, then column.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	SortCoords(out)
	return out
}

// SortCoords orders cs in place by row, then column.
func SortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}
