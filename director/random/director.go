package random

import (
	"github.com/they4kman/tensweep/game"
)

// Director reveals hidden, unflagged cells in a random order fixed when the
// game starts
type Director struct {
	game  *game.Game
	order []int
	ended bool
}

func (director *Director) Init(g *game.Game) {
	director.game = g
	director.order = g.Rand().Perm(game.NumCells)
	director.ended = false
}

func (director *Director) Act() bool {
	if director.game == nil || director.ended {
		return false
	}

	board := director.game.Board()
	for _, index := range director.order {
		cell, err := board.CellAt(index)
		if err != nil || cell.IsExposed() || cell.IsFlagged() {
			continue
		}

		if _, err := director.game.Reveal(index); err != nil {
			game.Log.WithError(err).Warn("director could not reveal cell")
			return false
		}
		return true
	}

	return false
}

func (director *Director) End() {
	director.ended = true
}
