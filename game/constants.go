package game

type CellState int
type BoardState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Flag
	Mine
)

func (state CellState) String() string {
	switch state {
	case Unrevealed:
		return "unrevealed"
	case Empty:
		return "empty"
	case Flag:
		return "flag"
	case Mine:
		return "mine"
	default:
		return "unknown"
	}
}

const (
	Width        = 10
	Height       = 10
	NumCells     = Width * Height
	DefaultMines = 10
)

const (
	NotStarted BoardState = iota
	Ongoing
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case NotStarted:
		return "not started"
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further moves are accepted
func (state BoardState) IsTerminal() bool {
	return state == Won || state == Lost
}
