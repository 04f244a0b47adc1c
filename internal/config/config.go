package config

import (
	"fmt"
	"os"
	"time"

	"github.com/they4kman/tensweep/director/random"
	"github.com/they4kman/tensweep/game"
)

// Flags holds the command line options that shape a game
type Flags struct {
	ConfigPath   string
	SnapshotPath string
	Seed         int64
	SavedDir     string
	LoadFresh    bool
	UseDirector  bool

	// Changed reports whether the named flag was set on the command line
	Changed func(name string) bool
}

func (flags Flags) changed(name string) bool {
	return flags.Changed != nil && flags.Changed(name)
}

// GameConfig layers the config file, if any, over the defaults, and
// explicitly set flags over both. A seed still at zero is taken from now.
func (flags Flags) GameConfig(now func() time.Time) (game.GameConfig, error) {
	config := game.NewGameConfig()

	if flags.ConfigPath != "" {
		in, err := os.ReadFile(flags.ConfigPath)
		if err != nil {
			return config, err
		}
		if err := game.LoadGameConfig(in, &config); err != nil {
			return config, fmt.Errorf("%s: %w", flags.ConfigPath, err)
		}
	}

	if flags.changed("seed") {
		config.Seed = flags.Seed
	}
	if flags.changed("save-dir") {
		config.SavedSnapshotsDir = flags.SavedDir
	}
	if flags.changed("fresh") {
		config.LoadSnapshotFresh = flags.LoadFresh
	}

	if config.Seed == 0 {
		config.Seed = now().UnixNano()
	}

	if flags.SnapshotPath != "" {
		in, err := os.ReadFile(flags.SnapshotPath)
		if err != nil {
			return config, err
		}
		snapshot, err := game.LoadSnapshot(string(in))
		if err != nil {
			return config, fmt.Errorf("%s: %w", flags.SnapshotPath, err)
		}
		config.Snapshot = snapshot
	}

	if flags.UseDirector {
		config.Director = &random.Director{}
	}

	return config, nil
}
