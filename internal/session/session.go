// Package session plays a game of Hnefatafl move by move on top of the rules
// engine. A Session keeps the position, the side to move, the capture tally,
// the move list and the Defender fingerprint history used for repetition.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/davidknaack/hnefatafl/internal/board"
	"github.com/davidknaack/hnefatafl/internal/notation"
	"github.com/davidknaack/hnefatafl/internal/rules"
)

// ErrGameOver is returned by moves attempted after the game has ended.
var ErrGameOver = errors.New("session: game is over")

// State is a snapshot of a game. Every accepted move produces a new State;
// snapshots handed out earlier are never changed.
type State struct {
	ID       string
	Position *board.Position
	Turn     board.Side
	// Captured counts pieces removed by each side, indexed by board.Side.
	Captured     [2]int
	Moves        []string
	Fingerprints []board.Fingerprint
	Status       rules.Status
	Ending       rules.Ending
}

func (s State) clone() State {
	out := s
	out.Position = s.Position.Clone()
	out.Moves = append([]string(nil), s.Moves...)
	out.Fingerprints = append([]board.Fingerprint(nil), s.Fingerprints...)
	return out
}

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	layout []string
	rules  *rules.Rules
	state  State
	logger logx.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for move and game events.
func WithLogger(l logx.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// New starts a game from layout, or from the classic 11x11 layout when
// layout is empty. Attackers move first.
func New(layout []string, opts ...Option) (*Session, error) {
	if len(layout) == 0 {
		layout = board.ClassicLayout
	}
	p, err := board.ParseLayout(layout)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s := &Session{
		layout: p.Layout(),
		rules:  rules.New(p),
		logger: logx.WithContext(context.Background()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.start(p)
	return s, nil
}

func (s *Session) start(p *board.Position) {
	s.state = State{
		ID:       uuid.New().String(),
		Position: p,
		Turn:     board.Attackers,
	}
	s.logger.Infow("new game",
		logx.Field("game", s.state.ID),
		logx.Field("size", p.Size()))
}

// Reset starts a fresh game with the same layout and a new ID.
func (s *Session) Reset() {
	s.start(board.MustParseLayout(s.layout...))
}

// ID returns the game ID.
func (s *Session) ID() string {
	return s.state.ID
}

// Layout returns the starting layout of the game.
func (s *Session) Layout() []string {
	return append([]string(nil), s.layout...)
}

// State returns a copy of the current game state.
func (s *Session) State() State {
	return s.state.clone()
}

// Play parses and plays one move for the side to move. Declared captures are
// optional; when given they must match what the move captures. A rejected
// move returns its verdict together with a *rules.MoveError.
func (s *Session) Play(move string) (rules.Verdict, error) {
	m, err := notation.ParseMove(move)
	if err != nil {
		return rules.Verdict{}, err
	}
	return s.PlayMove(m)
}

// PlayMove is Play for an already parsed move.
func (s *Session) PlayMove(m board.Move) (rules.Verdict, error) {
	if s.state.Status.Over() {
		return rules.Verdict{Move: m, Status: s.state.Status, Ending: s.state.Ending}, ErrGameOver
	}

	cur := s.state
	v := s.rules.Validate(cur.Position, m, cur.Turn, cur.Fingerprints)
	if !v.Valid() {
		s.logger.Infow("move rejected",
			logx.Field("game", cur.ID),
			logx.Field("side", cur.Turn.String()),
			logx.Field("move", notation.FormatMove(m)),
			logx.Field("reason", v.Reason.String()))
		return v, v.Err()
	}

	played := board.Move{From: m.From, To: m.To, Captures: v.Expected}
	next := cur.clone()
	next.Position = board.ApplyMove(cur.Position, played, board.ApplyOptions{Captures: true})
	next.Moves = append(next.Moves, notation.FormatMove(played))
	next.Captured[cur.Turn] += len(v.Expected)
	if len(v.Expected) > 0 {
		next.Fingerprints = nil
	}
	if cur.Turn == board.Defenders {
		next.Fingerprints = append(next.Fingerprints, next.Position.Fingerprint())
	}
	next.Turn = cur.Turn.Other()
	next.Status, next.Ending = v.Status, v.Ending

	if !next.Status.Over() && !s.rules.HasAnyMove(next.Position, next.Turn, next.Fingerprints) {
		// The side left without a move loses.
		next.Status, next.Ending = rules.AttackerWin, rules.NoLegalMoves
		if next.Turn == board.Attackers {
			next.Status = rules.DefenderWin
		}
	}
	v.Status, v.Ending = next.Status, next.Ending
	s.state = next

	s.logger.Infow("move played",
		logx.Field("game", next.ID),
		logx.Field("side", cur.Turn.String()),
		logx.Field("move", next.Moves[len(next.Moves)-1]),
		logx.Field("captures", len(v.Expected)))
	if next.Status.Over() {
		s.logger.Infow("game over",
			logx.Field("game", next.ID),
			logx.Field("status", next.Status.String()),
			logx.Field("ending", next.Ending.String()),
			logx.Field("moves", len(next.Moves)))
	}
	return v, nil
}

// PlaySequence plays a comma separated list of moves, stopping at the first
// one that fails. It returns how many moves were applied.
func (s *Session) PlaySequence(seq string) (int, error) {
	moves, err := notation.ParseSequence(seq)
	if err != nil {
		return 0, err
	}
	for i, m := range moves {
		if _, err := s.PlayMove(m); err != nil {
			return i, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return len(moves), nil
}

// Legal lists the legal destinations of the piece on square for the side to
// move. A piece of the other side has none.
func (s *Session) Legal(square string) ([]rules.Option, error) {
	c, err := notation.ParseCoord(square)
	if err != nil {
		return nil, err
	}
	if s.state.Status.Over() {
		return nil, ErrGameOver
	}
	if !s.state.Position.InBounds(c) {
		return nil, fmt.Errorf("%s: %w", c, rules.OutOfBounds)
	}
	return s.rules.Destinations(s.state.Position, c, s.state.Turn, s.state.Fingerprints), nil
}
