package rules

import (
	"fmt"

	"github.com/davidknaack/hnefatafl/internal/board"
)

// Reason says why a move was rejected. OK marks an accepted move.
// Reason implements error so rejected verdicts can be matched with errors.Is.
type Reason uint8

const (
	OK Reason = iota
	OutOfBounds
	NotStraightLine
	NoPieceAtSource
	NotYourPiece
	DestinationOccupied
	PathBlocked
	RestrictedDestination
	InvalidCaptures
	RepeatedPosition
)

var reasonNames = [...]string{
	OK:                    "ok",
	OutOfBounds:           "out of bounds",
	NotStraightLine:       "not a straight line",
	NoPieceAtSource:       "no piece at source",
	NotYourPiece:          "not your piece",
	DestinationOccupied:   "destination occupied",
	PathBlocked:           "path blocked",
	RestrictedDestination: "restricted destination",
	InvalidCaptures:       "invalid captures",
	RepeatedPosition:      "repeated position",
}

// String returns a short description of the reason.
func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("reason(%d)", r)
}

func (r Reason) Error() string {
	return r.String()
}

// Verdict is the result of validating one move.
type Verdict struct {
	Move   board.Move
	Reason Reason
	// Expected holds the captures the move really makes, sorted. It is set
	// for valid moves and for moves rejected at or after the capture check.
	Expected []board.Coord
	Status   Status
	Ending   Ending
}

// Valid returns true if the move was accepted.
func (v Verdict) Valid() bool {
	return v.Reason == OK
}

// Err returns nil for a valid verdict and a *MoveError otherwise.
func (v Verdict) Err() error {
	if v.Valid() {
		return nil
	}
	return &MoveError{Move: v.Move, Reason: v.Reason, Expected: v.Expected}
}

// MoveError describes a rejected move.
type MoveError struct {
	Move     board.Move
	Reason   Reason
	Expected []board.Coord
}

func (e *MoveError) Error() string {
	if e.Reason == InvalidCaptures {
		return fmt.Sprintf("%s: %s, expected %s", e.Move, e.Reason, formatCoords(e.Expected))
	}
	return fmt.Sprintf("%s: %s", e.Move, e.Reason)
}

func (e *MoveError) Unwrap() error {
	return e.Reason
}

func formatCoords(cs []board.Coord) string {
	if len(cs) == 0 {
		return "no captures"
	}
	s := ""
	for i, c := range cs {
		if i > 0 {
			s += ","
		}
		s += c.String()
	}
	return s
}

// Validate checks m for side on p against the fingerprints of earlier
// Defender positions. Calling it never changes p or history.
func (r *Rules) Validate(p *board.Position, m board.Move, side board.Side, history []board.Fingerprint) Verdict {
	reason, expected := r.check(p, m, side, history)
	v := Verdict{Move: m, Reason: reason, Expected: expected}
	if reason != OK {
		return v
	}

	next := board.ApplyMove(p, board.Move{From: m.From, To: m.To, Captures: expected}, board.ApplyOptions{Captures: true})
	v.Status, v.Ending = r.Outcome(next, side)
	return v
}

// check runs every legality test without classifying the result.
func (r *Rules) check(p *board.Position, m board.Move, side board.Side, history []board.Fingerprint) (Reason, []board.Coord) {
	if !p.InBounds(m.From) || !p.InBounds(m.To) {
		return OutOfBounds, nil
	}
	if !m.Straight() {
		return NotStraightLine, nil
	}

	piece := p.PieceAt(m.From)
	if piece == board.NoPiece {
		return NoPieceAtSource, nil
	}
	// The King belongs to the Defenders, so this also lets them move him.
	if piece.Owner() != side {
		return NotYourPiece, nil
	}
	if !p.IsEmpty(m.To) {
		return DestinationOccupied, nil
	}
	for _, c := range m.Between() {
		if !p.IsEmpty(c) {
			return PathBlocked, nil
		}
	}
	if !piece.IsKing() && p.At(m.To).Restricted {
		return RestrictedDestination, nil
	}

	caps := Captures(p, m, side)
	expected := caps.Sorted()
	if len(m.Captures) > 0 && !board.NewCoordSet(m.Captures...).Equal(caps) {
		return InvalidCaptures, expected
	}

	if side == board.Defenders {
		fp := p.FingerprintAfter(m)
		for _, prev := range history {
			if fp.Equal(prev) {
				return RepeatedPosition, expected
			}
		}
	}

	return OK, expected
}
