package domain

import (
	"time"

	"github.com/rs/zerolog"
)

type State int

const (
	StateSpawning State = iota
	StateFalling
	StateLocking
	StateGameOver
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateGameOver:
		return "game-over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Reason records why a session reached StateGameOver.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonSpawnBlocked
	ReasonIllegalSwitch
)

func (r Reason) String() string {
	switch r {
	case ReasonSpawnBlocked:
		return "no room for the next piece"
	case ReasonIllegalSwitch:
		return "piece collided after a board switch"
	default:
		return ""
	}
}

type Piece struct {
	Kind   Kind
	Matrix Matrix
	X      int
	Y      int
}

func (p Piece) Clone() Piece {
	p.Matrix = p.Matrix.Clone()
	return p
}

// Session owns the three boards and every piece of game state. It is not
// safe for concurrent use; the caller drives it from a single loop.
type Session struct {
	rules Rules
	clock Clock
	rng   Rand
	log   zerolog.Logger

	boards [boardCount]*Grid
	active BoardID

	piece Piece
	next  Kind

	score        int
	lines        int
	fallInterval time.Duration
	lastFall     time.Duration
	lastSwitch   time.Duration

	state  State
	reason Reason
}

// NewSession starts a game: three empty boards, Center active, score 0, and
// the first piece already spawned. If that spawn fails the session starts
// in StateGameOver.
func NewSession(rules Rules, clock Clock, rng Rand, log zerolog.Logger) *Session {
	s := &Session{
		rules:        rules,
		clock:        clock,
		rng:          rng,
		log:          log,
		active:       Center,
		fallInterval: rules.FallInterval,
	}
	for _, id := range Boards() {
		s.boards[id] = NewGrid(rules.Width, rules.Height)
	}

	now := clock.Now()
	s.lastFall = now
	s.lastSwitch = now

	s.next = s.drawKind()
	s.spawn()
	s.log.Info().
		Int("width", rules.Width).
		Int("height", rules.Height).
		Dur("fall_interval", rules.FallInterval).
		Msg("session started")
	return s
}

func (s *Session) State() State                { return s.state }
func (s *Session) Reason() Reason              { return s.reason }
func (s *Session) Score() int                  { return s.score }
func (s *Session) Lines() int                  { return s.lines }
func (s *Session) Active() BoardID             { return s.active }
func (s *Session) Next() Kind                  { return s.next }
func (s *Session) FallInterval() time.Duration { return s.fallInterval }
func (s *Session) Rules() Rules                { return s.rules }

// Over reports whether the session has ended by loss or quit.
func (s *Session) Over() bool {
	return s.state == StateGameOver || s.state == StateQuit
}

// Piece returns a copy of the active piece.
func (s *Session) Piece() Piece { return s.piece.Clone() }

// Board returns the live grid for id, or nil for an invalid id.
func (s *Session) Board(id BoardID) *Grid {
	if !id.Valid() {
		return nil
	}
	return s.boards[id]
}

func (s *Session) activeGrid() *Grid { return s.boards[s.active] }

func (s *Session) drawKind() Kind {
	return kinds[s.rng.IntN(len(kinds))]
}

// spawn promotes the next piece to active at the top centre of the active
// board and draws a new next piece.
func (s *Session) spawn() {
	s.state = StateSpawning

	kind := s.next
	m := ShapeOf(kind)
	x := s.rules.Width/2 - m.Cols()/2
	s.piece = Piece{Kind: kind, Matrix: m, X: x, Y: 0}
	s.next = s.drawKind()
	s.lastFall = s.clock.Now()

	if !s.activeGrid().CanPlace(m, x, 0) {
		s.gameOver(ReasonSpawnBlocked)
		return
	}
	s.state = StateFalling
	s.log.Debug().
		Str("kind", string(kind)).
		Str("board", s.active.String()).
		Int("x", x).
		Msg("spawned")
}

func (s *Session) gameOver(r Reason) {
	s.state = StateGameOver
	s.reason = r
	s.log.Info().
		Str("reason", r.String()).
		Str("board", s.active.String()).
		Int("score", s.score).
		Int("lines", s.lines).
		Msg("game over")
}

// Quit ends the session immediately.
func (s *Session) Quit() {
	if s.Over() {
		return
	}
	s.state = StateQuit
	s.log.Info().Int("score", s.score).Msg("quit")
}

// Snapshot is an immutable copy of everything a frame needs.
type Snapshot struct {
	Width  int
	Height int
	Boards [boardCount][][]Cell
	Active BoardID
	Piece  Piece
	Next   Piece // only Kind and Matrix are meaningful
	Score  int
	Lines  int
	State  State
	Reason Reason
}

func (s *Session) Snapshot() Snapshot {
	ss := Snapshot{
		Width:  s.rules.Width,
		Height: s.rules.Height,
		Active: s.active,
		Piece:  s.piece.Clone(),
		Next:   Piece{Kind: s.next, Matrix: ShapeOf(s.next)},
		Score:  s.score,
		Lines:  s.lines,
		State:  s.state,
		Reason: s.reason,
	}
	for _, id := range Boards() {
		ss.Boards[id] = s.boards[id].Rows()
	}
	return ss
}
