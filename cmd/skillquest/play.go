package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skillquest/internal/platform/tui"
)

var (
	flagTickMS int
	flagFPS    int
	flagSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start SkillQuest.

Commands typed at the prompt:
  mine <resource>              - Start mining (m)
  stop                         - Stop the current action (s)
  deposit <item> [count|all]   - Move items to the vault (d)
  view inventory|vault|skills  - Switch the side panel (v)
  help                         - List commands and resources

Keys:
  i/v/k     - Inventory, vault, skills (with an empty prompt)
  Esc       - Pause menu
  Ctrl+C    - Quit

Examples:
  skillquest play
  skillquest play --tick 300
  skillquest play --seed 42 --catalog ./my-catalog.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the tuning flags on both the root and play
// commands so a bare "skillquest" accepts them too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagTickMS, "tick", 600, "Game tick in milliseconds")
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Frames rendered per second")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	logger, logFile, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	rt := cfg.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	opts := tui.Options{
		Catalog: cat,
		Runtime: rt,
		Player:  cfg.PlayerOptions(),
		Logger:  logger,
	}

	store, err := openStore(cfg)
	if err != nil {
		// Continue without storage - the game still works
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		logger.Warn("could not open records database", "error", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	logger.Debug("starting", "tick", rt.TickInterval, "fps", rt.FPS, "resources", len(cat.Resources()))
	if err := tui.Run(opts); err != nil {
		logger.Error("tui failed", "error", err)
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
