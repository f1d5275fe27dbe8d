package domain

// Command is one player input. CmdNone means no key this tick.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotate
	CmdSwitchForward
	CmdSwitchBackward
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:           "none",
	CmdMoveLeft:       "move-left",
	CmdMoveRight:      "move-right",
	CmdSoftDrop:       "soft-drop",
	CmdHardDrop:       "hard-drop",
	CmdRotate:         "rotate",
	CmdSwitchForward:  "switch-forward",
	CmdSwitchBackward: "switch-backward",
	CmdQuit:           "quit",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseCommand maps a command token ("move-left", "rotate", ...) to its
// Command. Unknown tokens yield CmdNone and false.
func ParseCommand(token string) (Command, bool) {
	for c, s := range commandNames {
		if s == token && c != CmdNone {
			return c, true
		}
	}
	return CmdNone, false
}
