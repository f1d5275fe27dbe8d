package domain

// TrySwitch makes target the active board if the piece, unchanged, fits
// there. A piece that does not fit ends the game.
func (s *Session) TrySwitch(target BoardID) bool {
	if s.Over() || !target.Valid() {
		return false
	}

	p := s.piece
	if !s.boards[target].CanPlace(p.Matrix, p.X, p.Y) {
		s.log.Info().
			Str("from", s.active.String()).
			Str("to", target.String()).
			Msg("illegal switch")
		s.gameOver(ReasonIllegalSwitch)
		return false
	}

	if target != s.active {
		s.log.Debug().
			Str("from", s.active.String()).
			Str("to", target.String()).
			Msg("switched")
	}
	s.active = target
	return true
}

// autoSwitch moves the piece to a random board (possibly the current one)
// each time the switch interval elapses.
func (s *Session) autoSwitch() {
	now := s.clock.Now()
	if now-s.lastSwitch <= SwitchInterval(s.score) {
		return
	}
	s.lastSwitch = now
	s.TrySwitch(BoardID(s.rng.IntN(boardCount)))
}
