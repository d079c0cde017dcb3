package board

import "testing"

func TestCloneIsIndependent(t *testing.T) {
	pos := MustParseLayout(
		"R A R",
		"     ",
		"  K  ",
		"  D  ",
		"R   R",
	)
	cp := pos.Clone()
	cp.setPiece(Coord{2, 0}, NoPiece)

	if pos.PieceAt(Coord{2, 0}) != Attacker {
		t.Error("modifying the clone changed the original")
	}
	if cp.PieceAt(Coord{2, 0}) != NoPiece {
		t.Error("clone was not modified")
	}
}

func TestApplyMove(t *testing.T) {
	pos := MustParseLayout(
		"R   R",
		"  A  ",
		" DK  ",
		"  A  ",
		"R   R",
	)
	before := pos.String()

	m := NewMove(Coord{2, 1}, Coord{1, 1}, Coord{1, 2})
	next := ApplyMove(pos, m, ApplyOptions{})
	if next.PieceAt(Coord{1, 1}) != Attacker || !next.IsEmpty(Coord{2, 1}) {
		t.Errorf("piece not relocated:\n%s", next)
	}
	if next.PieceAt(Coord{1, 2}) != Defender {
		t.Error("captures applied without ApplyOptions.Captures")
	}

	withCaps := ApplyMove(pos, m, ApplyOptions{Captures: true})
	if !withCaps.IsEmpty(Coord{1, 2}) {
		t.Error("declared capture not removed")
	}

	if pos.String() != before {
		t.Errorf("ApplyMove modified its input:\n%s", pos)
	}
}

func TestMoveBetween(t *testing.T) {
	m := NewMove(Coord{1, 4}, Coord{1, 1})
	got := m.Between()
	want := []Coord{{1, 3}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("Between() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Between()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if NewMove(Coord{0, 0}, Coord{2, 2}).Straight() {
		t.Error("diagonal move reported as straight")
	}
	if NewMove(Coord{3, 3}, Coord{3, 3}).Straight() {
		t.Error("null move reported as straight")
	}
}

func TestEdgeSquares(t *testing.T) {
	pos := MustParseLayout(
		"R   R",
		"     ",
		"  K  ",
		"     ",
		"R   R",
	)
	edges := EdgeSquares(pos)

	// 16 perimeter squares; the corners are restricted too but counted once.
	if edges.Len() != 16 {
		t.Errorf("EdgeSquares() has %d squares, want 16", edges.Len())
	}
	if edges.Has(Coord{2, 2}) {
		t.Error("throne must not be an edge square")
	}

	inner := MustParseLayout(
		"     ",
		" R   ",
		"  K  ",
		"     ",
		"     ",
	)
	if !EdgeSquares(inner).Has(Coord{1, 1}) {
		t.Error("interior restricted square should count as an escape point")
	}
}

func TestFingerprint(t *testing.T) {
	pos := MustParseLayout(
		"R A R",
		"  D  ",
		" DK  ",
		"     ",
		"R   R",
	)
	want := Fingerprint{"     ", "  D  ", " DD  ", "     ", "     "}
	if got := pos.Fingerprint(); !got.Equal(want) {
		t.Errorf("Fingerprint() = %q, want %q", got, want)
	}

	m := NewMove(Coord{1, 2}, Coord{1, 3})
	after := pos.FingerprintAfter(m)
	wantAfter := Fingerprint{"     ", "  D  ", "  D  ", " D   ", "     "}
	if !after.Equal(wantAfter) {
		t.Errorf("FingerprintAfter() = %q, want %q", after, wantAfter)
	}
	if !pos.Fingerprint().Equal(want) {
		t.Error("FingerprintAfter modified the position")
	}

	// Same inputs, same output.
	applied := ApplyMove(pos, m, ApplyOptions{Captures: true})
	if !applied.Fingerprint().Equal(after) || applied.Fingerprint().Key() != after.Key() {
		t.Errorf("applied fingerprint %q differs from virtual %q", applied.Fingerprint(), after)
	}

	// Attackers moving leave the fingerprint alone.
	if !pos.FingerprintAfter(NewMove(Coord{2, 0}, Coord{3, 0})).Equal(want) {
		t.Error("attacker move changed the defender fingerprint")
	}
}

func TestCoordString(t *testing.T) {
	tests := []struct {
		c    Coord
		want string
	}{
		{Coord{0, 0}, "A1"},
		{Coord{5, 5}, "F6"},
		{Coord{10, 10}, "K11"},
		{NoCoord, "-"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestCoordSet(t *testing.T) {
	s := NewCoordSet(Coord{2, 1}, Coord{0, 1}, Coord{3, 0}, Coord{0, 1})
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	got := s.Sorted()
	want := []Coord{{3, 0}, {0, 1}, {2, 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sorted()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !s.Equal(NewCoordSet(want...)) {
		t.Error("Equal() = false for same members")
	}
	if s.Equal(NewCoordSet(Coord{3, 0})) {
		t.Error("Equal() = true for different sets")
	}
}
