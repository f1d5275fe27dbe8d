package domain

// Step advances the session by one tick: the automatic switch timer, then
// at most one command, then the fall timer. It does nothing once the
// session is over.
func (s *Session) Step(cmd Command) {
	if s.Over() {
		return
	}
	if cmd == CmdQuit {
		s.Quit()
		return
	}

	s.autoSwitch()
	if s.Over() {
		return
	}

	if locked := s.Apply(cmd); locked || s.Over() {
		return
	}
	s.fall()
}

// Apply performs one command against the active board and reports whether
// it locked the piece. Illegal moves and rotations are ignored.
func (s *Session) Apply(cmd Command) bool {
	if s.Over() {
		return false
	}

	switch cmd {
	case CmdMoveLeft:
		s.shift(-1)
	case CmdMoveRight:
		s.shift(1)
	case CmdRotate:
		s.rotate()
	case CmdSoftDrop:
		if !s.moveDown() {
			s.lock()
			return true
		}
	case CmdHardDrop:
		s.HardDrop()
		return true
	case CmdSwitchForward:
		s.TrySwitch(s.active.Next())
	case CmdSwitchBackward:
		s.TrySwitch(s.active.Prev())
	case CmdQuit:
		s.Quit()
	}
	return false
}

// HardDrop moves the piece down until it rests, then locks it.
func (s *Session) HardDrop() {
	if s.state != StateFalling {
		return
	}
	for s.moveDown() {
	}
	s.lock()
}

func (s *Session) shift(dx int) bool {
	p := &s.piece
	if !s.activeGrid().CanPlace(p.Matrix, p.X+dx, p.Y) {
		return false
	}
	p.X += dx
	return true
}

func (s *Session) rotate() bool {
	p := &s.piece
	r := Rotate(p.Matrix)
	if !s.activeGrid().CanPlace(r, p.X, p.Y) {
		return false
	}
	p.Matrix = r
	return true
}

func (s *Session) moveDown() bool {
	p := &s.piece
	if !s.activeGrid().CanPlace(p.Matrix, p.X, p.Y+1) {
		return false
	}
	p.Y++
	return true
}

// fall moves the piece one row once the fall interval has elapsed, and
// locks it when it cannot move.
func (s *Session) fall() {
	now := s.clock.Now()
	if now-s.lastFall <= s.fallInterval {
		return
	}
	if s.moveDown() {
		s.lastFall = now
		return
	}
	s.lock()
}

// lock commits the piece to the active board, clears lines, scores and
// spawns the next piece.
func (s *Session) lock() {
	s.state = StateLocking

	g := s.activeGrid()
	g.Commit(s.piece.Matrix, s.piece.X, s.piece.Y)
	cleared := g.ClearFullLines()
	s.award(cleared)

	s.log.Debug().
		Str("kind", string(s.piece.Kind)).
		Str("board", s.active.String()).
		Int("x", s.piece.X).
		Int("y", s.piece.Y).
		Int("cleared", cleared).
		Msg("locked")

	s.spawn()
}

func (s *Session) award(cleared int) {
	if cleared <= 0 {
		return
	}
	before := s.score
	s.score += PointsFor(cleared)
	s.lines += cleared

	if crossedSpeedUp(before, s.score) {
		s.fallInterval = s.rules.spedUp(s.fallInterval)
		s.log.Info().
			Int("score", s.score).
			Dur("fall_interval", s.fallInterval).
			Msg("speed up")
	}
}
