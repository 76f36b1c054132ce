package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/games/flap"
	"github.com/vovakirdan/flap/internal/platform/tui"
	"github.com/vovakirdan/flap/internal/registry"
	"github.com/vovakirdan/flap/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing right away.

Controls:
  Space/W/Up   - Flap
  A/Left       - Move left
  D/Right      - Move right
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or after game over)
  Q/Ctrl+C     - Quit

Examples:
  flap play
  flap play --seed 42
  flap play --config ./my-flap.yaml --log-file flap.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	logger, logCloser := openLogger()
	defer logCloser.Close()

	game, err := registry.Create(flap.GameID)
	if err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, runtimeConfig(), tui.Services{
		Store:      store,
		Logger:     logger,
		HoldWindow: gameCfg.Input.HoldDuration(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
