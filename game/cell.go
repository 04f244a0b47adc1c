package game

import "fmt"

// Cell is a read-only view of one square of the board. Boards hand out
// copies, so mutating the engine always goes through Board methods.
type Cell struct {
	exposed, flagged, isMine bool
}

func NewCell(exposed, flagged, isMine bool) Cell {
	return Cell{exposed: exposed, flagged: flagged, isMine: isMine}
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(exposed=%v, flagged=%v, mine=%v)", cell.exposed, cell.flagged, cell.isMine)
}

func (cell Cell) IsExposed() bool {
	return cell.exposed
}

func (cell Cell) IsFlagged() bool {
	return cell.flagged
}

func (cell Cell) IsMine() bool {
	return cell.isMine
}

// State maps the cell onto the four states a renderer draws
func (cell Cell) State() CellState {
	switch {
	case cell.exposed && cell.isMine:
		return Mine
	case cell.exposed:
		return Empty
	case cell.flagged:
		return Flag
	default:
		return Unrevealed
	}
}

func (cell Cell) serialize() string {
	switch {
	case cell.isMine:
		switch {
		case cell.exposed:
			return "*"
		case cell.flagged:
			return "F"
		default:
			return "O"
		}
	case cell.flagged:
		return "f"
	case cell.exposed:
		return "."
	default:
		return "#"
	}
}

func (cell *Cell) deserialize(c rune) bool {
	*cell = Cell{}

	switch c {
	case '*':
		cell.isMine = true
		cell.exposed = true
	case 'F':
		cell.isMine = true
		cell.flagged = true
	case 'O':
		cell.isMine = true
	case 'f':
		cell.flagged = true
	case '.':
		cell.exposed = true
	case '#':
	default:
		return false
	}

	return true
}

// ToIndex converts grid coordinates into a flat cell index, returning false
// when the coordinates fall outside the board
func ToIndex(x, y int) (int, bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, false
	}
	return y*Width + x, true
}

// ToCoords converts a flat cell index into grid coordinates
func ToCoords(index int) (x, y int) {
	return index % Width, index / Width
}

func validIndex(index int) bool {
	return index >= 0 && index < NumCells
}

var neighborOffsets = [8][2]int{
	{-1, -1},
	{0, -1},
	{1, -1},
	{-1, 0},
	{1, 0},
	{-1, 1},
	{0, 1},
	{1, 1},
}

// Neighbors returns the indexes of the cells surrounding index, in a fixed
// order. Edge and corner cells have fewer than 8 neighbors; an index outside
// the board has none.
func Neighbors(index int) []int {
	if !validIndex(index) {
		return nil
	}

	x, y := ToCoords(index)
	neighbors := make([]int, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if neighbor, ok := ToIndex(x+offset[0], y+offset[1]); ok {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}
