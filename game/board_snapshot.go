package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// Snapshot is a detached copy of a board: every cell in index order, plus
// the remaining-mines counter
type Snapshot struct {
	Cells     []Cell
	Remaining int
}

func (board *Board) Snapshot() Snapshot {
	return Snapshot{
		Cells:     board.Cells(),
		Remaining: board.remaining,
	}
}

// Restore builds a board equivalent to the one snapshot was taken from. The
// board state is derived from the cells: an exposed mine means the game was
// lost, all safe cells exposed means it was won, and a board without mines
// or moves has not been started.
func Restore(snapshot Snapshot) (*Board, error) {
	if len(snapshot.Cells) != NumCells {
		return nil, fmt.Errorf("snapshot has %d cells, want %d: %w", len(snapshot.Cells), NumCells, ErrInvalidIndex)
	}

	board := &Board{
		state:     Ongoing,
		remaining: snapshot.Remaining,
	}

	untouched := true
	for i, cell := range snapshot.Cells {
		if cell.exposed && cell.flagged {
			return nil, fmt.Errorf("cell %d is both exposed and flagged: %w", i, ErrInvalidSnapshot)
		}
		if cell != (Cell{}) {
			untouched = false
		}

		board.cells[i] = cell
		if cell.isMine {
			board.numMines++
			if cell.exposed {
				board.state = Lost
			}
		}
	}

	switch {
	case untouched:
		board.state = NotStarted
	case board.state == Ongoing && board.CheckWin():
		board.state = Won
	}

	return board, nil
}

// BoardSnapshot is the YAML form of a Snapshot. The board is stored as one
// row of runes per line:
//
//	#  hidden          .  exposed
//	f  flagged         O  hidden mine
//	F  flagged mine    *  exposed mine
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Remaining       int    `yaml:"remaining"`
	SerializedBoard string `yaml:"board"`
}

func NewBoardSnapshot(snapshot Snapshot, seed int64) *BoardSnapshot {
	var rows strings.Builder
	for i, cell := range snapshot.Cells {
		if i > 0 && i%Width == 0 {
			rows.WriteString("\n")
		}
		rows.WriteString(cell.serialize())
	}

	return &BoardSnapshot{
		Seed:            seed,
		Remaining:       snapshot.Remaining,
		SerializedBoard: rows.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Snapshot decodes the serialized board. Every row must be Width cells wide.
func (snapshot *BoardSnapshot) Snapshot() (Snapshot, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	cells := make([]Cell, 0, NumCells)
	for y, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != Width {
			return Snapshot{}, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), Width, ErrInvalidIndex)
		}

		for x, c := range row {
			var cell Cell
			if !cell.deserialize(c) {
				return Snapshot{}, fmt.Errorf("cell (%d, %d) has unknown value %q: %w", x, y, c, ErrInvalidSnapshot)
			}
			cells = append(cells, cell)
		}
	}

	return Snapshot{
		Cells:     cells,
		Remaining: snapshot.Remaining,
	}, nil
}

func (snapshot *BoardSnapshot) CreateBoard() (*Board, error) {
	decoded, err := snapshot.Snapshot()
	if err != nil {
		return nil, err
	}
	return Restore(decoded)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
