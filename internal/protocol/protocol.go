// Package protocol implements a line-oriented text protocol for playing a
// session. Each command is one line; each reply starts with "ok", "error" or
// a command-specific keyword.
//
//	new                 start a new game
//	move <m>            play one move, e.g. "move D1-D3"
//	play <m>,<m>...     play several moves
//	legal <square>      list legal moves of a piece
//	d                   draw the board
//	state               dump the game state as JSON
//	record              print the game record as JSON
//	load <json>         replace the game with a replayed record
//	help                list commands
//	quit                stop
package protocol

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/davidknaack/hnefatafl/internal/board"
	"github.com/davidknaack/hnefatafl/internal/notation"
	"github.com/davidknaack/hnefatafl/internal/render"
	"github.com/davidknaack/hnefatafl/internal/rules"
	"github.com/davidknaack/hnefatafl/internal/session"
)

const maxLine = 1 << 20

// Handler runs the protocol against one session at a time.
type Handler struct {
	session *session.Session
	out     io.Writer
	render  render.Options
	opts    []session.Option
}

// New creates a protocol handler writing replies to out. opts are passed on
// to sessions created by the load command.
func New(s *session.Session, out io.Writer, ro render.Options, opts ...session.Option) *Handler {
	return &Handler{session: s, out: out, render: ro, opts: opts}
}

// Session returns the session currently being played.
func (h *Handler) Session() *session.Session {
	return h.session
}

// Run reads commands from in until quit or end of input.
func (h *Handler) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "new":
			h.handleNew()
		case "move":
			h.handleMove(rest)
		case "play":
			h.handlePlay(rest)
		case "legal":
			h.handleLegal(rest)
		case "d":
			h.handleDraw()
		case "state":
			h.handleState()
		case "record":
			h.handleRecord()
		case "load":
			h.handleLoad(rest)
		case "help":
			h.handleHelp()
		case "quit":
			return nil
		default:
			h.errorf("unknown command %q", cmd)
		}
	}
	return scanner.Err()
}

func (h *Handler) println(a ...any) {
	fmt.Fprintln(h.out, a...)
}

func (h *Handler) errorf(format string, args ...any) {
	fmt.Fprintf(h.out, "error "+format+"\n", args...)
}

// reportError writes the reply for a failed move. Wrong declared captures are
// followed by the captures the move really makes.
func (h *Handler) reportError(err error) {
	var me *rules.MoveError
	if errors.As(err, &me) {
		h.errorf("%s", me.Reason)
		if me.Reason == rules.InvalidCaptures {
			h.println("expected", formatCoords(me.Expected))
		}
		return
	}
	h.errorf("%v", err)
}

func statusText(st session.State) string {
	if st.Status.Over() {
		return st.Status.String() + " " + st.Ending.String()
	}
	return st.Status.String()
}

func formatCoords(cs []board.Coord) string {
	if len(cs) == 0 {
		return "none"
	}
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = notation.FormatCoord(c)
	}
	return strings.Join(parts, ",")
}

func (h *Handler) handleNew() {
	h.session.Reset()
	h.println("ok new", h.session.ID())
}

func (h *Handler) handleMove(arg string) {
	if arg == "" {
		h.errorf("usage: move <from>-<to>[(captures)]")
		return
	}
	if _, err := h.session.Play(arg); err != nil {
		h.reportError(err)
		return
	}
	st := h.session.State()
	h.println("ok", st.Moves[len(st.Moves)-1], statusText(st))
}

func (h *Handler) handlePlay(arg string) {
	n, err := h.session.PlaySequence(arg)
	if err != nil {
		var me *rules.MoveError
		if errors.As(err, &me) {
			h.errorf("move %d: %s", n+1, me.Reason)
			if me.Reason == rules.InvalidCaptures {
				h.println("expected", formatCoords(me.Expected))
			}
			return
		}
		h.errorf("%v", err)
		return
	}
	h.println("ok", n, statusText(h.session.State()))
}

func (h *Handler) handleLegal(arg string) {
	opts, err := h.session.Legal(arg)
	if err != nil {
		h.reportError(err)
		return
	}
	from, _ := notation.ParseCoord(arg)
	moves := make([]string, 0, len(opts))
	for _, o := range opts {
		moves = append(moves, notation.FormatMove(board.NewMove(from, o.To, o.Captures...)))
	}
	if len(moves) == 0 {
		h.println("ok none")
		return
	}
	h.println("ok", strings.Join(moves, " "))
}

func (h *Handler) handleDraw() {
	st := h.session.State()
	ro := h.render
	ro.Coordinates = true
	fmt.Fprint(h.out, render.Board(st.Position, ro))
	h.println("turn", st.Turn, statusText(st))
}

type stateDump struct {
	ID       string   `json:"id"`
	Turn     string   `json:"turn"`
	Status   string   `json:"status"`
	Ending   string   `json:"ending,omitempty"`
	Captured [2]int   `json:"captured"`
	Moves    []string `json:"moves"`
	Position []string `json:"position"`
	History  int      `json:"fingerprints"`
}

func (h *Handler) handleState() {
	st := h.session.State()
	dump := stateDump{
		ID:       st.ID,
		Turn:     st.Turn.String(),
		Status:   st.Status.String(),
		Captured: st.Captured,
		Moves:    append([]string{}, st.Moves...),
		Position: st.Position.Layout(),
		History:  len(st.Fingerprints),
	}
	if st.Status.Over() {
		dump.Ending = st.Ending.String()
	}
	out, err := sonic.MarshalString(dump)
	if err != nil {
		h.errorf("%v", err)
		return
	}
	h.println(out)
}

func (h *Handler) handleRecord() {
	rec, err := h.session.Record()
	if err != nil {
		h.errorf("%v", err)
		return
	}
	h.println(rec)
}

func (h *Handler) handleLoad(arg string) {
	s, err := session.Replay(arg, h.opts...)
	if err != nil {
		h.errorf("%v", err)
		return
	}
	h.session = s
	st := s.State()
	logx.Infow("game loaded", logx.Field("game", st.ID), logx.Field("moves", len(st.Moves)))
	h.println("ok load", st.ID, len(st.Moves), statusText(st))
}

func (h *Handler) handleHelp() {
	for _, l := range []string{
		"new",
		"move <from>-<to>[(captures)]",
		"play <move>,<move>...",
		"legal <square>",
		"d",
		"state",
		"record",
		"load <json>",
		"quit",
	} {
		h.println("help", l)
	}
}
