package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/games/flap"
	"github.com/vovakirdan/flap/internal/platform/tui"
	"github.com/vovakirdan/flap/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select, Tab for high scores.
After a round ends, press Esc to return to the menu.

Examples:
  flap menu
  flap menu --fps 30
  flap menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg := loadConfig()
	logger, logCloser := openLogger()
	defer logCloser.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.RunSession(flap.GameID, runtimeConfig(), tui.Services{
		Store:      store,
		Logger:     logger,
		HoldWindow: gameCfg.Input.HoldDuration(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("%v", runErr)
	}
}
