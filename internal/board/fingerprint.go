package board

import "strings"

// Fingerprint records which squares hold Defenders or the King, one string
// per row. It exists only for repetition checks.
type Fingerprint []string

// Equal returns true if both fingerprints mark the same squares.
func (f Fingerprint) Equal(o Fingerprint) bool {
	if len(f) != len(o) {
		return false
	}
	for i := range f {
		if f[i] != o[i] {
			return false
		}
	}
	return true
}

// Key joins the rows into a single string.
func (f Fingerprint) Key() string {
	return strings.Join(f, "/")
}

// Fingerprint returns the defender occupancy of p.
func (p *Position) Fingerprint() Fingerprint {
	rows := make(Fingerprint, p.size)
	buf := make([]byte, p.size)
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			if p.At(Coord{x, y}).Piece.Owner() == Defenders {
				buf[x] = 'D'
			} else {
				buf[x] = ' '
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// FingerprintAfter returns the defender occupancy p would have after m,
// without changing p. Declared captures are not applied: they only ever
// remove Attackers from a Defender move.
func (p *Position) FingerprintAfter(m Move) Fingerprint {
	rows := make(Fingerprint, p.size)
	buf := make([]byte, p.size)
	moved := p.PieceAt(m.From)
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			c := Coord{x, y}
			piece := p.At(c).Piece
			switch c {
			case m.From:
				piece = NoPiece
			case m.To:
				piece = moved
			}
			if piece.Owner() == Defenders {
				buf[x] = 'D'
			} else {
				buf[x] = ' '
			}
		}
		rows[y] = string(buf)
	}
	return rows
}

// EdgeSquares returns the board perimeter plus every restricted square that
// is not the throne: the squares that count as reaching the edge.
func EdgeSquares(p *Position) CoordSet {
	set := make(CoordSet)
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			c := Coord{x, y}
			sq := p.At(c)
			if p.OnBoundary(c) || (sq.Restricted && !sq.Throne) {
				set.Add(c)
			}
		}
	}
	return set
}
