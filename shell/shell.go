package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/they4kman/tensweep/game"
)

var ErrUnknownCommand = errors.New("unknown command")

var cellRunes = map[game.CellState]rune{
	game.Unrevealed: '#',
	game.Flag:       'F',
	game.Empty:      '.',
	game.Mine:       '*',
}

const help = `commands:
  r X Y   reveal the cell at column X, row Y
  f X Y   flag or unflag the cell at column X, row Y
  a       let the director make a move
  n       start a new game
  s       print a snapshot of the board
  q       quit
`

// Shell plays the game over a line-oriented terminal
type Shell struct {
	game *game.Game
	out  io.Writer
}

func New(config game.GameConfig, out io.Writer) (*Shell, error) {
	shell := &Shell{out: out}
	config.Renderer = shell.render

	g, err := game.NewGame(config)
	if err != nil {
		return nil, err
	}
	shell.game = g
	return shell, nil
}

func (shell *Shell) Game() *game.Game {
	return shell.game
}

// Run reads commands from in until it is exhausted or the player quits
func (shell *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprint(shell.out, "> ")
	for scanner.Scan() {
		quit, err := shell.Execute(scanner.Text())
		if err != nil {
			game.Log.WithError(err).Debug("command failed")
			fmt.Fprintf(shell.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
		fmt.Fprint(shell.out, "> ")
	}
	return scanner.Err()
}

// Execute runs a single command line, reporting whether the player quit
func (shell *Shell) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "r", "reveal":
		index, err := parseCell(fields[1:])
		if err != nil {
			return false, err
		}
		result, err := shell.game.Reveal(index)
		if err != nil {
			return false, err
		}
		if result.HitMine {
			fmt.Fprintln(shell.out, "BOOM! You lose. Type n for a new game.")
		} else if result.State == game.Won {
			fmt.Fprintln(shell.out, "WIN! Type n for a new game.")
		}

	case "f", "flag":
		index, err := parseCell(fields[1:])
		if err != nil {
			return false, err
		}
		if _, err := shell.game.ToggleFlag(index); err != nil {
			return false, err
		}

	case "a", "auto":
		director := shell.game.Director()
		if director == nil {
			return false, errors.New("no director configured")
		}
		if !director.Act() {
			fmt.Fprintln(shell.out, "director has no move to make")
		}

	case "n", "new":
		shell.game.NewGame()

	case "s", "snapshot":
		fmt.Fprint(shell.out, shell.game.BoardSnapshot().Serialize())

	case "q", "quit":
		return true, nil

	case "?", "h", "help":
		fmt.Fprint(shell.out, help)

	default:
		return false, fmt.Errorf("%q: %w", fields[0], ErrUnknownCommand)
	}

	return false, nil
}

func parseCell(args []string) (int, error) {
	if len(args) != 2 {
		return 0, fmt.Errorf("expected X and Y, got %d arguments", len(args))
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("column: %w", err)
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("row: %w", err)
	}

	index, ok := game.ToIndex(x, y)
	if !ok {
		return 0, fmt.Errorf("(%d, %d): %w", x, y, game.ErrInvalidIndex)
	}
	return index, nil
}

func (shell *Shell) render(board *game.Board) {
	Render(shell.out, board)
}

// Render draws the board as text, one row per line, under a header with the
// mine counter and game state
func Render(w io.Writer, board *game.Board) {
	var b strings.Builder

	fmt.Fprintf(&b, "mines: %03d  %s\n", board.Remaining(), board.State())

	b.WriteString("  ")
	for x := 0; x < game.Width; x++ {
		fmt.Fprintf(&b, " %d", x)
	}
	b.WriteString("\n")

	cells := board.Cells()
	for y := 0; y < game.Height; y++ {
		fmt.Fprintf(&b, "%d ", y)
		for x := 0; x < game.Width; x++ {
			fmt.Fprintf(&b, " %c", cellRunes[cells[y*game.Width+x].State()])
		}
		b.WriteString("\n")
	}

	io.WriteString(w, b.String())
}
