package session

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"
)

// ErrBadRecord is wrapped by Replay errors.
var ErrBadRecord = errors.New("session: bad game record")

// Record is the JSON form of a game: its starting layout and the canonical
// moves played so far.
type Record struct {
	ID       string   `json:"id"`
	Layout   []string `json:"layout"`
	Moves    []string `json:"moves"`
	Status   string   `json:"status"`
	Ending   string   `json:"ending,omitempty"`
	Captured [2]int   `json:"captured"`
}

// Record encodes the game as JSON.
func (s *Session) Record() (string, error) {
	st := s.state
	rec := Record{
		ID:       st.ID,
		Layout:   s.Layout(),
		Moves:    append([]string{}, st.Moves...),
		Status:   st.Status.String(),
		Captured: st.Captured,
	}
	if st.Status.Over() {
		rec.Ending = st.Ending.String()
	}
	return sonic.MarshalString(rec)
}

// Replay rebuilds a game from a JSON record by playing its moves from the
// recorded layout. The recorded status, when present, must match the result.
func Replay(record string, opts ...Option) (*Session, error) {
	var rec Record
	if err := sonic.UnmarshalString(record, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	s, err := New(rec.Layout, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRecord, err)
	}
	if rec.ID != "" {
		s.state.ID = rec.ID
	}

	for i, move := range rec.Moves {
		if _, err := s.Play(move); err != nil {
			s.logger.Errorw("replay failed",
				logx.Field("game", s.state.ID),
				logx.Field("move", move),
				logx.Field("error", err.Error()))
			return nil, fmt.Errorf("%w: move %d %q: %w", ErrBadRecord, i+1, move, err)
		}
	}

	if rec.Status != "" && rec.Status != s.state.Status.String() {
		return nil, fmt.Errorf("%w: recorded status %s, replayed %s", ErrBadRecord, rec.Status, s.state.Status)
	}
	return s, nil
}
