// skillquest is an idle mining game played in the terminal.
//
// Usage:
//
//	skillquest                    - Start the game (same as play)
//	skillquest play               - Start the game
//	skillquest catalog            - List resources and their drop tables
//	skillquest records [skill]    - Show recent sessions or the best runs for a skill
//
// Global flags:
//
//	--config <path>   - Settings file (default: search ~/.skillquest/configs, ./configs)
//	--catalog <path>  - Catalog file (same search order)
//	--db <path>       - Records database (default: ~/.skillquest/records.db)
//	--log <path>      - Log file (default: ~/.skillquest/skillquest.log)
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagCatalog string
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skillquest",
	Short: "SkillQuest - an idle mining game for your terminal",
	Long: `SkillQuest is a tick-based idle game. Type commands to mine ores,
level up your skills and fill your vault.

Available commands:
  play     - Start the game (default)
  catalog  - List resources and drop tables
  records  - View finished sessions

Examples:
  skillquest
  skillquest play --tick 300 --seed 42
  skillquest catalog
  skillquest records mining`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom skillquest.yaml")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Path to a custom catalog.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the records database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to the log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(recordsCmd)
}
