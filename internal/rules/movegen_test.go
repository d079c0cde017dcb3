package rules

import (
	"testing"

	"github.com/davidknaack/hnefatafl/internal/board"
)

func TestDestinations(t *testing.T) {
	p := mustBuild(t, []string{
		"R...R",
		".....",
		"A.T..",
		".....",
		"R.k.R",
	})
	r := New(p)

	got := make(board.CoordSet)
	for _, o := range r.Destinations(p, c(0, 2), board.Attackers, nil) {
		got.Add(o.To)
	}
	want := board.NewCoordSet(c(0, 1), c(0, 3), c(1, 2), c(3, 2), c(4, 2))
	if !got.Equal(want) {
		t.Errorf("Destinations() = %v, want %v", got.Sorted(), want.Sorted())
	}

	wins := make(board.CoordSet)
	for _, o := range r.Destinations(p, c(2, 4), board.Defenders, nil) {
		if o.Status == DefenderWin {
			wins.Add(o.To)
		}
	}
	if !wins.Has(c(0, 4)) || !wins.Has(c(4, 4)) {
		t.Errorf("winning king destinations = %v, want both bottom corners", wins.Sorted())
	}

	if opts := r.Destinations(p, c(0, 2), board.Defenders, nil); len(opts) != 0 {
		t.Errorf("Destinations() for the wrong side = %v, want none", opts)
	}
}

func TestDestinationsCarryCaptures(t *testing.T) {
	p := mustBuild(t, []string{
		"R.....R",
		".......",
		"AD....A",
		"...K...",
		".......",
		".......",
		"R.....R",
	})
	r := New(p)
	for _, o := range r.Destinations(p, c(6, 2), board.Attackers, nil) {
		if o.To == c(2, 2) {
			if len(o.Captures) != 1 || o.Captures[0] != c(1, 2) {
				t.Errorf("captures at C3 = %v, want [B3]", o.Captures)
			}
			return
		}
	}
	t.Error("C3 missing from destinations")
}

func TestHasAnyMove(t *testing.T) {
	boxed := mustBuild(t, []string{
		"AAA",
		"AkA",
		"AAA",
	})
	r := New(boxed)
	if r.HasAnyMove(boxed, board.Defenders, nil) {
		t.Error("boxed king reported a move")
	}
	if r.HasAnyMove(boxed, board.Attackers, nil) {
		t.Error("full board reported an attacker move")
	}

	open := mustBuild(t, []string{
		"A.A",
		"AkA",
		"AAA",
	})
	if !New(open).HasAnyMove(open, board.Defenders, nil) {
		t.Error("king with an open square reported no move")
	}
}
