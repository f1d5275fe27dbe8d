package domain

// BoardID names one of the three playfields.
type BoardID int

const (
	Left BoardID = iota
	Center
	Right
)

const boardCount = 3

var boardNames = [boardCount]string{"left", "center", "right"}

// Boards returns the boards in display order.
func Boards() []BoardID {
	return []BoardID{Left, Center, Right}
}

func (b BoardID) Valid() bool { return b >= 0 && b < boardCount }

func (b BoardID) String() string {
	if !b.Valid() {
		return "invalid"
	}
	return boardNames[b]
}

// Next steps Left -> Center -> Right -> Left.
func (b BoardID) Next() BoardID { return (b + 1) % boardCount }

// Prev steps Left -> Right -> Center -> Left.
func (b BoardID) Prev() BoardID { return (b + boardCount - 1) % boardCount }
