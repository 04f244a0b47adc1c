package game

import (
	"fmt"

	"github.com/they4kman/tensweep/util/collections"
)

// Rand is the random source mines are placed from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Board struct {
	cells [NumCells]Cell

	state     BoardState
	numMines  int
	remaining int // mines left to flag, as shown to the player
}

type RevealResult struct {
	Index   int
	HitMine bool
	// Exposed lists every cell exposed by the move, in reveal order
	Exposed   []int
	State     BoardState
	Remaining int
}

// NewBoard creates an empty board. Mines still have to be placed with
// PlaceMines before any move is accepted.
func NewBoard() *Board {
	return &Board{
		state:     NotStarted,
		remaining: DefaultMines,
	}
}

// NewGameBoard creates a board with DefaultMines mines placed from rng
func NewGameBoard(rng Rand) *Board {
	board := NewBoard()
	if err := board.PlaceMines(rng, DefaultMines); err != nil {
		panic(err)
	}
	return board
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) Remaining() int {
	return board.remaining
}

func (board *Board) CellAt(index int) (Cell, error) {
	if !validIndex(index) {
		return Cell{}, fmt.Errorf("cell %d: %w", index, ErrInvalidIndex)
	}
	return board.cells[index], nil
}

// Cells returns a copy of every cell, in index order
func (board *Board) Cells() []Cell {
	cells := make([]Cell, NumCells)
	copy(cells, board.cells[:])
	return cells
}

func (board *Board) Mines() collections.Set[int] {
	mines := collections.NewSet[int]()
	for i, cell := range board.cells {
		if cell.isMine {
			mines.Add(i)
		}
	}
	return mines
}

func (board *Board) NumExposed() int {
	numExposed := 0
	for _, cell := range board.cells {
		if cell.exposed {
			numExposed++
		}
	}
	return numExposed
}

// PlaceMines marks count distinct random cells as mines, drawing indexes
// uniformly and rejecting ones that are already mines. It may only be called
// once, on a board fresh from NewBoard.
func (board *Board) PlaceMines(rng Rand, count int) error {
	if board.state != NotStarted {
		return ErrMinesPlaced
	}
	if count < 0 || count > NumCells {
		return fmt.Errorf("%d mines: %w", count, ErrInvalidMineCount)
	}

	placed := 0
	for placed < count {
		index := rng.Intn(NumCells)
		if !board.cells[index].isMine {
			board.cells[index].isMine = true
			placed++
		}
	}

	board.numMines = count
	board.remaining = count
	board.state = Ongoing
	return nil
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

func (board *Board) checkMove(index int) error {
	if !validIndex(index) {
		return fmt.Errorf("cell %d: %w", index, ErrInvalidIndex)
	}
	if !board.canPlay() {
		return fmt.Errorf("board is %s: %w", board.state, ErrNotPlaying)
	}
	return nil
}

// Reveal exposes the cell at index. Exposed and flagged cells are left alone.
// Revealing a mine loses the game; revealing any other cell exposes every
// safe cell reachable from it, whatever the number of mines around them.
func (board *Board) Reveal(index int) (RevealResult, error) {
	if err := board.checkMove(index); err != nil {
		return RevealResult{}, err
	}

	result := RevealResult{Index: index}
	cell := &board.cells[index]

	if cell.exposed || cell.flagged {
		result.State = board.state
		result.Remaining = board.remaining
		return result, nil
	}

	if cell.isMine {
		cell.exposed = true
		result.HitMine = true
		result.Exposed = []int{index}
		board.state = Lost
	} else {
		result.Exposed = board.cascade(index)

		if board.CheckWin() {
			board.state = Won
		}
	}

	result.State = board.state
	result.Remaining = board.remaining
	return result, nil
}

func (board *Board) cascade(start int) []int {
	exposed := make([]int, 0)

	flood(
		start,
		func(index int) bool {
			cell := &board.cells[index]
			if cell.exposed || cell.flagged || cell.isMine {
				return false
			}

			cell.exposed = true
			exposed = append(exposed, index)
			return true
		},
		Neighbors,
	)

	return exposed
}

// ToggleFlag flags or unflags a hidden cell, returning the number of mines
// left to flag. Placing a flag decrements the counter and removing one
// increments it.
func (board *Board) ToggleFlag(index int) (int, error) {
	if err := board.checkMove(index); err != nil {
		return board.remaining, err
	}

	cell := &board.cells[index]
	if cell.exposed {
		return board.remaining, nil
	}

	cell.flagged = !cell.flagged
	if cell.flagged {
		board.remaining--
	} else {
		board.remaining++
	}

	return board.remaining, nil
}

// CheckWin reports whether every safe cell has been exposed without any
// mine being exposed
func (board *Board) CheckWin() bool {
	numExposed := 0
	for _, cell := range board.cells {
		if cell.exposed {
			if cell.isMine {
				return false
			}
			numExposed++
		}
	}
	return numExposed == NumCells-board.numMines
}
