package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/games/flap"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the configuration a round would use, after the search order
(--config, ~/.flap/configs/flap.yaml, ./configs/flap.yaml, built-in defaults).

With --defaults the commented built-in file is printed instead; save it to
~/.flap/configs/flap.yaml as a starting point for your own tuning.

Examples:
  flap config
  flap config --defaults > ~/.flap/configs/flap.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		if _, err := os.Stdout.Write(config.GetDefaultYAML(flap.GameID)); err != nil {
			fail("%v", err)
		}
		return
	}

	cfg := loadConfig()
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("encoding config: %v", err)
	}
	if err := enc.Close(); err != nil {
		fail("%v", err)
	}
}
