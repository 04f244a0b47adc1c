package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/they4kman/tensweep/game"
	"github.com/they4kman/tensweep/util/collections"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	cellWidth    = 32
	headerHeight = 50
	gridWidth    = game.Width * cellWidth
	gridHeight   = game.Height * cellWidth
)

// Delay between director moves while it plays continuously
const directorInterval = 500 * time.Millisecond

var cellColors = map[game.CellState]color.Color{
	game.Unrevealed: colornames.Darkgray,
	game.Flag:       colornames.Orange,
	game.Empty:      colornames.Whitesmoke,
	game.Mine:       colornames.Red,
}

func screenToIndex(pos pixel.Vec) (int, bool) {
	if pos.X < 0 || pos.Y < 0 {
		return 0, false
	}
	return game.ToIndex(int(pos.X)/cellWidth, game.Height-int(pos.Y)/cellWidth-1)
}

func cellRect(index int) pixel.Rect {
	x, y := game.ToCoords(index)
	minX := float64(x * cellWidth)
	minY := float64((game.Height - y - 1) * cellWidth)
	return pixel.R(minX+1, minY+1, minX+cellWidth-1, minY+cellWidth-1)
}

func drawBoard(imd *imdraw.IMDraw, board *game.Board) {
	imd.Clear()

	var lostMines collections.Set[int]
	if board.State() == game.Lost {
		lostMines = board.Mines()
	}

	for i, cell := range board.Cells() {
		imd.Color = cellColors[cell.State()]
		if lostMines.Contains(i) && cell.State() == game.Unrevealed {
			imd.Color = colornames.Dimgray
		}

		rect := cellRect(i)
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0) // 0 = filled
	}
}

// Run opens the game window and plays until it is closed. It must be called
// from within pixelgl.Run.
func Run(config game.GameConfig) error {
	cfg := pixelgl.WindowConfig{
		Title:  "tensweep",
		Bounds: pixel.R(0, 0, gridWidth, gridHeight+headerHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}

	isDirty := true
	config.Renderer = func(*game.Board) {
		isDirty = true
	}

	g, err := game.NewGame(config)
	if err != nil {
		return err
	}

	imd := imdraw.New(nil)
	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	topLeft := win.Bounds().Vertices()[1]
	topRight := win.Bounds().Max

	scoreText := text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
	cellPosText := text.New(topRight.Add(pixel.V(-60, -30)), basicAtlas)
	cellPosText.Color = colornames.Darkcyan

	paused := false
	directorTick := time.NewTicker(directorInterval)
	defer directorTick.Stop()

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		board := g.Board()

		scoreText.Clear()
		scoreText.Color = colornames.Black
		fmt.Fprintf(scoreText, "%03d", board.Remaining())
		switch board.State() {
		case game.Won:
			scoreText.Color = colornames.Green
			fmt.Fprint(scoreText, "   WIN!")
		case game.Lost:
			scoreText.Color = colornames.Red
			fmt.Fprint(scoreText, "   LOSE :(")
		default:
			if paused {
				fmt.Fprint(scoreText, "   PAUSED")
			}
		}
		scoreText.Draw(win, pixel.IM)

		hovered, isHovered := 0, false
		if win.MouseInsideWindow() {
			hovered, isHovered = screenToIndex(win.MousePosition())
		}

		cellPosText.Clear()
		if isHovered {
			x, y := game.ToCoords(hovered)
			fmt.Fprintf(cellPosText, "(%d, %d)", x, y)
			cellPosText.Draw(win, pixel.IM)
		}

		if isDirty {
			drawBoard(imd, board)
			isDirty = false
		}
		imd.Draw(win)

		if board.State().IsTerminal() {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				g.NewGame()
			}
			continue
		}

		if director := g.Director(); director != nil {
			// Pause with Space
			if win.JustPressed(pixelgl.KeySpace) {
				paused = !paused
			}

			select {
			case <-directorTick.C:
				if !paused {
					director.Act()
				}
			default:
			}

			// Perform single step while paused with Right Arrow
			if paused && (win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight)) {
				director.Act()
			}
		}

		if !isHovered {
			continue
		}
		if win.JustPressed(pixelgl.MouseButtonLeft) {
			if _, err := g.Reveal(hovered); err != nil {
				game.Log.WithError(err).Warn("reveal failed")
			}
		}
		if win.JustPressed(pixelgl.MouseButtonRight) {
			if _, err := g.ToggleFlag(hovered); err != nil {
				game.Log.WithError(err).Warn("flag failed")
			}
		}
	}

	return nil
}
