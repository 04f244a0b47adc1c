package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/tensweep/game"
	"github.com/they4kman/tensweep/internal/config"
	"github.com/they4kman/tensweep/shell"
	"github.com/they4kman/tensweep/ui"
)

var (
	flags    config.Flags
	textMode bool
	logLevel logrus.Level
)

var rootCmd = &cobra.Command{
	Use:   "tensweep",
	Short: "Play Minesweeper on a 10x10 board",
	Long: `tensweep is a 10x10 Minesweeper game with 10 mines, playable in a
window or in the terminal, by a human or by the computer.

Run with no arguments to play in a window
	tensweep

Use the text flag to play in the terminal
	tensweep --text

Use the director flag to make the computer play for you
	tensweep --director
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		game.Log.SetLevel(logLevel)

		flags.Changed = cmd.Flags().Changed
		gameConfig, err := flags.GameConfig(time.Now)
		if err != nil {
			return err
		}

		if textMode {
			sh, err := shell.New(gameConfig, os.Stdout)
			if err != nil {
				return err
			}
			return sh.Run(os.Stdin)
		}

		pixelgl.Run(func() {
			err = ui.Run(gameConfig)
		})
		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type logLevelValue logrus.Level

func newLogLevelValue(val logrus.Level, p *logrus.Level) *logLevelValue {
	*p = val
	return (*logLevelValue)(p)
}

func (levelVal *logLevelValue) String() string {
	return logrus.Level(*levelVal).String()
}

func (levelVal *logLevelValue) Set(value string) error {
	level, err := logrus.ParseLevel(value)
	if err != nil {
		return err
	}
	*levelVal = logLevelValue(level)
	return nil
}

func (levelVal *logLevelValue) Type() string {
	return "logrus.Level"
}

func init() {
	rootCmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "YAML file to read game configuration from")
	rootCmd.Flags().StringVar(&flags.SnapshotPath, "snapshot", "", "Board snapshot to resume playing from")
	rootCmd.Flags().BoolVar(&flags.LoadFresh, "fresh", false, "Hide all cells of the loaded snapshot, keeping only its mines")
	rootCmd.Flags().Int64VarP(&flags.Seed, "seed", "s", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&flags.SavedDir, "save-dir", "", "Directory to save a snapshot of every finished board to")
	rootCmd.Flags().BoolVarP(&flags.UseDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().BoolVarP(&textMode, "text", "t", false, "Play in the terminal instead of a window")
	rootCmd.Flags().Var(newLogLevelValue(logrus.InfoLevel, &logLevel), "log-level", "Log level (debug, info, warn, error)")
}
