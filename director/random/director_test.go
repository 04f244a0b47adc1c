package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/tensweep/game"
)

func TestDirectorPlaysUntilGameEnds(t *testing.T) {
	director := &Director{}
	config := game.NewGameConfig()
	config.Seed = 42
	config.Director = director

	g, err := game.NewGame(config)
	require.NoError(t, err)

	moves := 0
	for director.Act() {
		moves++
		require.LessOrEqual(t, moves, game.NumCells)
	}

	assert.Positive(t, moves)
	assert.True(t, g.Board().State().IsTerminal())
	assert.False(t, director.Act(), "no moves after the game has ended")
}

func TestDirectorRestartsWithNewGame(t *testing.T) {
	director := &Director{}
	config := game.NewGameConfig()
	config.Director = director

	g, err := game.NewGame(config)
	require.NoError(t, err)
	for director.Act() {
	}

	g.NewGame()
	assert.Equal(t, game.Ongoing, g.Board().State())
	assert.True(t, director.Act())
}

func TestDirectorSkipsFlaggedCells(t *testing.T) {
	director := &Director{}
	config := game.NewGameConfig()
	config.Director = director

	g, err := game.NewGame(config)
	require.NoError(t, err)

	first := director.order[0]
	_, err = g.ToggleFlag(first)
	require.NoError(t, err)

	require.True(t, director.Act())
	cell, err := g.Board().CellAt(first)
	require.NoError(t, err)
	assert.False(t, cell.IsExposed())
	assert.True(t, cell.IsFlagged())
}

func TestDirectorResumesAfterFlagsAreRemoved(t *testing.T) {
	director := &Director{}
	config := game.NewGameConfig()
	config.Seed = 3
	config.Director = director

	g, err := game.NewGame(config)
	require.NoError(t, err)

	for index := 0; index < game.NumCells; index++ {
		_, err := g.ToggleFlag(index)
		require.NoError(t, err)
	}
	assert.False(t, director.Act(), "every cell is flagged")

	for index := 0; index < game.NumCells; index++ {
		_, err := g.ToggleFlag(index)
		require.NoError(t, err)
	}
	assert.True(t, director.Act())
	assert.Positive(t, g.Board().NumExposed())
}
