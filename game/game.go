package game

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var Log = logrus.New()

// Renderer is called with the active board after every change to it
type Renderer func(board *Board)

type GameConfig struct {
	// Seed for mine placement. The command line picks one from the clock when
	// it is left at zero.
	Seed int64 `yaml:"seed"`

	// Snapshot to load board configuration from
	Snapshot *BoardSnapshot `yaml:"-"`
	// Whether to set all cells as unrevealed when loading the Snapshot
	LoadSnapshotFresh bool `yaml:"load_snapshot_fresh"`

	Director Director `yaml:"-"`
	Renderer Renderer `yaml:"-"`

	// Path to directory where final snapshots of boards should be saved
	SavedSnapshotsDir string `yaml:"saved_snapshots_dir"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Seed:              0,
		LoadSnapshotFresh: false,
	}
}

// LoadGameConfig overrides the fields of config present in the YAML document
func LoadGameConfig(in []byte, config *GameConfig) error {
	if err := yaml.UnmarshalStrict(in, config); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Game owns the active board and everything around it a host needs: the
// random source, the renderer and the director.
type Game struct {
	config GameConfig

	seed  int64
	rand  *rand.Rand
	board *Board
}

func NewGame(config GameConfig) (*Game, error) {
	game := &Game{config: config}

	if config.Snapshot != nil {
		board, err := config.createSnapshotBoard()
		if err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}
		game.reset(config.Snapshot.Seed, board)
	} else {
		game.reset(config.Seed, nil)
	}

	return game, nil
}

func (config GameConfig) createSnapshotBoard() (*Board, error) {
	snapshot, err := config.Snapshot.Snapshot()
	if err != nil {
		return nil, err
	}

	if config.LoadSnapshotFresh {
		snapshot.Remaining = 0
		for i, cell := range snapshot.Cells {
			snapshot.Cells[i] = Cell{isMine: cell.isMine}
			if cell.isMine {
				snapshot.Remaining++
			}
		}
	}

	return Restore(snapshot)
}

// reset replaces the active board. A nil board is replaced by a freshly
// mined one.
func (game *Game) reset(seed int64, board *Board) {
	game.seed = seed
	game.rand = rand.New(rand.NewSource(seed))
	if board == nil {
		board = NewGameBoard(game.rand)
	}
	game.board = board

	Log.WithFields(logrus.Fields{
		"seed":  seed,
		"mines": board.NumMines(),
		"state": board.State(),
	}).Info("new game")

	if game.config.Director != nil {
		game.config.Director.Init(game)
	}

	game.render()
}

func (game *Game) Board() *Board {
	return game.board
}

func (game *Game) Seed() int64 {
	return game.seed
}

func (game *Game) Rand() *rand.Rand {
	return game.rand
}

func (game *Game) Director() Director {
	return game.config.Director
}

// NewGame discards the active board and starts over with a new one, seeded
// from the current game
func (game *Game) NewGame() {
	if game.config.Director != nil && !game.board.State().IsTerminal() {
		game.config.Director.End()
	}
	game.reset(game.rand.Int63(), nil)
}

func (game *Game) Reveal(index int) (RevealResult, error) {
	x, y := ToCoords(index)
	logger := Log.WithFields(logrus.Fields{"index": index, "x": x, "y": y})

	result, err := game.board.Reveal(index)
	if err != nil {
		logger.WithError(err).Debug("reveal rejected")
		return result, err
	}
	logger.WithFields(logrus.Fields{
		"exposed": len(result.Exposed),
		"mine":    result.HitMine,
	}).Debug("reveal")

	game.render()
	if result.State.IsTerminal() {
		game.endGame()
	}
	return result, nil
}

func (game *Game) ToggleFlag(index int) (int, error) {
	x, y := ToCoords(index)
	logger := Log.WithFields(logrus.Fields{"index": index, "x": x, "y": y})

	remaining, err := game.board.ToggleFlag(index)
	if err != nil {
		logger.WithError(err).Debug("flag rejected")
		return remaining, err
	}
	logger.WithField("remaining", remaining).Debug("toggle flag")

	game.render()
	return remaining, nil
}

func (game *Game) render() {
	if game.config.Renderer != nil {
		game.config.Renderer(game.board)
	}
}

func (game *Game) endGame() {
	Log.WithFields(logrus.Fields{
		"seed":    game.seed,
		"state":   game.board.State(),
		"exposed": game.board.NumExposed(),
	}).Info("game over")

	if game.config.Director != nil {
		game.config.Director.End()
	}

	if _, err := game.saveSnapshot(time.Now()); err != nil {
		Log.WithError(err).Error("could not save snapshot")
	}
}

func (game *Game) BoardSnapshot() *BoardSnapshot {
	return NewBoardSnapshot(game.board.Snapshot(), game.seed)
}

// saveSnapshot writes the board to SavedSnapshotsDir, if one is configured,
// and returns the path written
func (game *Game) saveSnapshot(t time.Time) (string, error) {
	dir := game.config.SavedSnapshotsDir
	if dir == "" {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}

	base := game.generateReplayFilename(t)
	path := filepath.Join(dir, base+".yaml")
	for i := 1; ; i++ {
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if errors.Is(err, os.ErrExist) {
			path = filepath.Join(dir, fmt.Sprintf("%s_%d.yaml", base, i))
			continue
		}
		if err != nil {
			return "", err
		}

		_, err = file.WriteString(game.BoardSnapshot().Serialize())
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return "", err
		}

		Log.WithField("path", path).Info("saved snapshot")
		return path, nil
	}
}

func (game *Game) generateReplayFilename(t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch game.board.State() {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	return filenameBuilder.String()
}
