// stardrift is a side-scrolling space shooter for the desktop.
//
// Usage:
//
//	stardrift play [view]    - Launch the game (default view: menu)
//	stardrift list           - List available views
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible runs
//	--log-level <l>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stardrift",
	Short: "Stardrift - A side-scrolling space shooter",
	Long: `Stardrift is a side-scrolling space shooter. Fly your ship, dodge
asteroids, and cycle through cannon types while the starfield drifts by.

Available commands:
  play     - Launch the game
  list     - Show all registered views

Examples:
  stardrift play
  stardrift play game
  stardrift play --fps 120 --seed 42
  stardrift play --config ./my-stardrift.yaml`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			log.Warn("unknown log level, using info", "level", flagLogLevel)
			level = log.InfoLevel
		}
		log.SetLevel(level)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
}
