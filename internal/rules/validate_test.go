package rules

import (
	"errors"
	"testing"

	"github.com/davidknaack/hnefatafl/internal/board"
)

func validate(t *testing.T, layout []string, m board.Move, side board.Side, history ...board.Fingerprint) Verdict {
	t.Helper()
	p := mustBuild(t, layout)
	return New(p).Validate(p, m, side, history)
}

var scenarioA = []string{
	"R  K ",
	"     ",
	"  A  ",
	"  D  ",
	"     ",
}

func TestValidateReasons(t *testing.T) {
	tests := []struct {
		name string
		move board.Move
		side board.Side
		want Reason
	}{
		{"path blocked", board.NewMove(c(2, 2), c(2, 4)), board.Attackers, PathBlocked},
		{"empty source", board.NewMove(c(1, 1), c(1, 2)), board.Attackers, NoPieceAtSource},
		{"not your piece", board.NewMove(c(2, 3), c(1, 3)), board.Attackers, NotYourPiece},
		{"king belongs to defenders", board.NewMove(c(3, 0), c(3, 1)), board.Attackers, NotYourPiece},
		{"destination occupied", board.NewMove(c(2, 2), c(2, 3)), board.Attackers, DestinationOccupied},
		{"off board", board.NewMove(c(2, 2), c(2, 5)), board.Attackers, OutOfBounds},
		{"diagonal", board.NewMove(c(2, 2), c(3, 1)), board.Attackers, NotStraightLine},
		{"standing still", board.NewMove(c(2, 2), c(2, 2)), board.Attackers, NotStraightLine},
		{"defender move", board.NewMove(c(2, 3), c(0, 3)), board.Defenders, OK},
		{"plain move", board.NewMove(c(2, 2), c(0, 2)), board.Attackers, OK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := validate(t, scenarioA, tc.move, tc.side)
			if v.Reason != tc.want {
				t.Errorf("Validate(%s) = %v, want %v", tc.move, v.Reason, tc.want)
			}
			if v.Valid() != (tc.want == OK) {
				t.Errorf("Valid() = %v for reason %v", v.Valid(), v.Reason)
			}
		})
	}
}

func TestRestrictedSquares(t *testing.T) {
	layout := []string{
		"R...R",
		".....",
		"A.T..",
		".....",
		"R.k.R",
	}

	v := validate(t, layout, board.NewMove(c(0, 2), c(0, 0)), board.Attackers)
	if v.Reason != RestrictedDestination {
		t.Errorf("attacker onto corner = %v, want RestrictedDestination", v.Reason)
	}
	v = validate(t, layout, board.NewMove(c(0, 2), c(2, 2)), board.Attackers)
	if v.Reason != RestrictedDestination {
		t.Errorf("attacker onto throne = %v, want RestrictedDestination", v.Reason)
	}
	v = validate(t, layout, board.NewMove(c(0, 2), c(4, 2)), board.Attackers)
	if !v.Valid() {
		t.Errorf("attacker passing the empty throne = %v, want OK", v.Reason)
	}
	v = validate(t, layout, board.NewMove(c(2, 4), c(2, 2)), board.Defenders)
	if !v.Valid() {
		t.Errorf("king back onto the throne = %v, want OK", v.Reason)
	}
}

func TestScenarioKingEscapes(t *testing.T) {
	layout := []string{
		"R K  ",
		"     ",
		"  A  ",
		"  D  ",
		"     ",
	}
	v := validate(t, layout, board.NewMove(c(2, 0), c(0, 0)), board.Defenders)
	if !v.Valid() {
		t.Fatalf("king to corner rejected: %v", v.Reason)
	}
	if v.Status != DefenderWin || v.Ending != KingEscaped {
		t.Errorf("status = %v/%v, want DefenderWin/KingEscaped", v.Status, v.Ending)
	}
}

func TestScenarioEdgeEnclosure(t *testing.T) {
	layout := []string{
		"R.....R",
		".......",
		"A......",
		"DA.K...",
		"DA.....",
		"...A...",
		"R.....R",
	}
	want := []board.Coord{c(0, 3), c(0, 4)}

	v := validate(t, layout, board.NewMove(c(3, 5), c(0, 5)), board.Attackers)
	if !v.Valid() || !sameCoords(v.Expected, want) {
		t.Fatalf("undeclared captures: %v expected %v, want OK with %v", v.Reason, v.Expected, want)
	}
	if v.Status != InProgress {
		t.Errorf("status = %v, want InProgress", v.Status)
	}

	v = validate(t, layout, board.NewMove(c(3, 5), c(0, 5), c(0, 3)), board.Attackers)
	if v.Reason != InvalidCaptures {
		t.Fatalf("partial captures = %v, want InvalidCaptures", v.Reason)
	}
	if !sameCoords(v.Expected, want) {
		t.Errorf("Expected = %v, want %v", v.Expected, want)
	}
	err := v.Err()
	if !errors.Is(err, InvalidCaptures) {
		t.Errorf("Err() = %v, want to match InvalidCaptures", err)
	}
	var me *MoveError
	if !errors.As(err, &me) || !sameCoords(me.Expected, want) {
		t.Errorf("MoveError = %+v, want expected %v", me, want)
	}
	t.Log(err)

	v = validate(t, layout, board.NewMove(c(3, 5), c(0, 5), c(0, 4), c(0, 3)), board.Attackers)
	if !v.Valid() {
		t.Errorf("exact captures rejected: %v", v.Reason)
	}

	v = validate(t, layout, board.NewMove(c(3, 5), c(0, 5), c(0, 3), c(0, 4), c(3, 3)), board.Attackers)
	if v.Reason != InvalidCaptures {
		t.Errorf("extra capture = %v, want InvalidCaptures", v.Reason)
	}
}

func TestScenarioKingCaptured(t *testing.T) {
	layout := []string{
		"R.........R",
		"...........",
		"...........",
		"...........",
		".....A.....",
		"....AKA....",
		"...........",
		"...........",
		"...........",
		".....A.....",
		"R.........R",
	}
	v := validate(t, layout, board.NewMove(c(5, 9), c(5, 6), c(5, 5)), board.Attackers)
	if !v.Valid() {
		t.Fatalf("capturing move rejected: %v (expected %v)", v.Reason, v.Expected)
	}
	if !sameCoords(v.Expected, []board.Coord{c(5, 5)}) {
		t.Errorf("Expected = %v, want [F6]", v.Expected)
	}
	if v.Status != AttackerWin || v.Ending != KingCaptured {
		t.Errorf("status = %v/%v, want AttackerWin/KingCaptured", v.Status, v.Ending)
	}
}

func TestScenarioFort(t *testing.T) {
	layout := []string{
		"R.D.D.R",
		"..DkD..",
		"...D...",
		".......",
		"...A...",
		".......",
		"R.....R",
	}
	v := validate(t, layout, board.NewMove(c(3, 1), c(3, 0)), board.Defenders)
	if !v.Valid() {
		t.Fatalf("king move rejected: %v", v.Reason)
	}
	if v.Status != DefenderWin || v.Ending != EdgeFort {
		t.Errorf("status = %v/%v, want DefenderWin/EdgeFort", v.Status, v.Ending)
	}
}

func TestEncirclement(t *testing.T) {
	layout := []string{
		"R.....R",
		"...A...",
		"..ADA..",
		"..AKA..",
		".......",
		".......",
		"R..A..R",
	}
	v := validate(t, layout, board.NewMove(c(3, 6), c(3, 4)), board.Attackers)
	if !v.Valid() {
		t.Fatalf("closing move rejected: %v", v.Reason)
	}
	if v.Status != AttackerWin || v.Ending != Encircled {
		t.Errorf("status = %v/%v, want AttackerWin/Encircled", v.Status, v.Ending)
	}

	// One gap in the ring keeps the game going.
	v = validate(t, layout, board.NewMove(c(3, 6), c(3, 5)), board.Attackers)
	if v.Status != InProgress {
		t.Errorf("status with a gap = %v, want InProgress", v.Status)
	}
}

func TestRepeatedPosition(t *testing.T) {
	layout := []string{
		"R...R",
		".....",
		".DK.A",
		".....",
		"R...R",
	}
	p := mustBuild(t, layout)
	r := New(p)
	m := board.NewMove(c(1, 2), c(1, 1))
	seen := p.FingerprintAfter(m)

	v := r.Validate(p, m, board.Defenders, []board.Fingerprint{p.Fingerprint(), seen})
	if v.Reason != RepeatedPosition {
		t.Errorf("repeat = %v, want RepeatedPosition", v.Reason)
	}

	// Attackers are never held to the repetition rule.
	am := board.NewMove(c(4, 2), c(4, 1))
	if v := r.Validate(p, am, board.Attackers, []board.Fingerprint{p.FingerprintAfter(am)}); !v.Valid() {
		t.Errorf("attacker move = %v, want OK", v.Reason)
	}

	if v := r.Validate(p, board.NewMove(c(1, 2), c(1, 3)), board.Defenders, []board.Fingerprint{seen}); !v.Valid() {
		t.Errorf("fresh position = %v, want OK", v.Reason)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	p := mustBuild(t, board.ClassicLayout)
	r := New(p)
	before := p.String()
	m := board.NewMove(c(3, 0), c(3, 2))

	first := r.Validate(p, m, board.Attackers, nil)
	second := r.Validate(p, m, board.Attackers, nil)

	if first.Reason != second.Reason || first.Status != second.Status || !sameCoords(first.Expected, second.Expected) {
		t.Errorf("verdicts differ: %+v vs %+v", first, second)
	}
	if p.String() != before {
		t.Error("Validate modified the position")
	}
	if !first.Valid() {
		t.Errorf("opening move rejected: %v", first.Reason)
	}
}
