package shell

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/tensweep/director/random"
	"github.com/they4kman/tensweep/game"
)

func TestMain(m *testing.M) {
	game.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newShell(t *testing.T, config game.GameConfig) (*Shell, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	shell, err := New(config, out)
	require.NoError(t, err)
	return shell, out
}

// safeCell finds coordinates of a cell that isn't a mine
func safeCell(t *testing.T, board *game.Board) (int, int) {
	t.Helper()
	mines := board.Mines()
	for index := 0; index < game.NumCells; index++ {
		if !mines.Contains(index) {
			return game.ToCoords(index)
		}
	}
	t.Fatal("no safe cell")
	return 0, 0
}

func TestRender(t *testing.T) {
	board := game.NewBoard()
	out := &bytes.Buffer{}

	Render(out, board)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, game.Height+2)
	assert.Equal(t, "mines: 010  not started", lines[0])
	assert.Equal(t, "   0 1 2 3 4 5 6 7 8 9", lines[1])
	assert.Equal(t, "0  # # # # # # # # # #", lines[2])
}

func TestShellFlagCommand(t *testing.T) {
	shell, out := newShell(t, game.NewGameConfig())
	out.Reset()

	quit, err := shell.Execute("f 3 2")
	require.NoError(t, err)
	assert.False(t, quit)

	assert.Contains(t, out.String(), "mines: 009  ongoing")
	assert.Contains(t, out.String(), "2  # # # F # # # # # #")

	cell, err := shell.Game().Board().CellAt(23)
	require.NoError(t, err)
	assert.True(t, cell.IsFlagged())
}

func TestShellRevealCommand(t *testing.T) {
	shell, out := newShell(t, game.NewGameConfig())
	x, y := safeCell(t, shell.Game().Board())
	out.Reset()

	_, err := shell.Execute(fmt.Sprintf("reveal %d %d", x, y))
	require.NoError(t, err)

	index, _ := game.ToIndex(x, y)
	cell, err := shell.Game().Board().CellAt(index)
	require.NoError(t, err)
	assert.True(t, cell.IsExposed())
	assert.Contains(t, out.String(), ".")
}

func TestShellRejectsBadInput(t *testing.T) {
	shell, _ := newShell(t, game.NewGameConfig())

	tests := []struct {
		line     string
		expected error
	}{
		{"r 10 0", game.ErrInvalidIndex},
		{"f -1 3", game.ErrInvalidIndex},
		{"dance", ErrUnknownCommand},
	}
	for _, tt := range tests {
		_, err := shell.Execute(tt.line)
		assert.ErrorIs(t, err, tt.expected, tt.line)
	}

	_, err := shell.Execute("r 1")
	assert.Error(t, err)
	_, err = shell.Execute("r a 1")
	assert.Error(t, err)
	_, err = shell.Execute("a")
	assert.Error(t, err, "no director configured")

	quit, err := shell.Execute("   ")
	assert.NoError(t, err)
	assert.False(t, quit)
}

func TestShellSnapshotCommand(t *testing.T) {
	shell, out := newShell(t, game.NewGameConfig())
	out.Reset()

	_, err := shell.Execute("s")
	require.NoError(t, err)

	snapshot, err := game.LoadSnapshot(out.String())
	require.NoError(t, err)
	board, err := snapshot.CreateBoard()
	require.NoError(t, err)
	assert.Equal(t, shell.Game().Board().Cells(), board.Cells())
}

func TestShellRun(t *testing.T) {
	config := game.NewGameConfig()
	config.Director = &random.Director{}
	shell, out := newShell(t, config)

	in := strings.NewReader("?\na\nbogus\nn\nq\nr 0 0\n")
	require.NoError(t, shell.Run(in))

	output := out.String()
	assert.Contains(t, output, "commands:")
	assert.Contains(t, output, "error: \"bogus\": unknown command")
	assert.Equal(t, game.Ongoing, shell.Game().Board().State(), "new game started and nothing after quit ran")
	assert.Equal(t, 0, shell.Game().Board().NumExposed())
}
