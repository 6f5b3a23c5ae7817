package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/storage"
)

var (
	flagRecordsLimit int
	flagSessionID    string
	flagClear        bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [skill]",
	Short: "Show finished sessions",
	Long: `Without arguments, lists the most recent sessions. With a skill
name, lists the sessions that reached the most experience in it.

Examples:
  skillquest records
  skillquest records mining
  skillquest records --session 1b4e28ba-2fa1-11d2-883f-0016d3cca427
  skillquest records --clear`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRecords,
}

func init() {
	recordsCmd.Flags().IntVarP(&flagRecordsLimit, "limit", "n", 10, "Number of rows to show")
	recordsCmd.Flags().StringVar(&flagSessionID, "session", "", "Show one session in detail")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded session")
}

func runRecords(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening records database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		n, err := store.SessionCount()
		if err != nil {
			return err
		}
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Printf("Deleted %d sessions.\n", n)
		return nil

	case flagSessionID != "":
		id, err := uuid.Parse(flagSessionID)
		if err != nil {
			return fmt.Errorf("invalid session id %q: %w", flagSessionID, err)
		}
		return printSession(store, id)

	case len(args) == 1:
		skill, ok := catalog.ParseSkill(args[0])
		if !ok {
			return fmt.Errorf("unknown skill %q", args[0])
		}
		return printTopSkill(store, skill.String())
	}

	return printRecent(store)
}

func printRecent(store *storage.Store) error {
	recs, err := store.RecentSessions(flagRecordsLimit)
	if err != nil {
		return err
	}
	total, err := store.SessionCount()
	if err != nil {
		return err
	}

	fmt.Printf("Recent sessions (%d recorded)\n", total)
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'skillquest play' and mine something!")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %6s  %5s  %-8s  %s\n", "Ended", "Time", "Items", "Lvl+", "ID", "Skills")
	fmt.Printf("  %-16s  %-8s  %6s  %5s  %-8s  %s\n", "-----", "----", "-----", "----", "--", "------")
	for _, rec := range recs {
		fmt.Printf("  %-16s  %-8s  %6d  %5d  %-8s  %s\n",
			rec.EndedAt.Local().Format("2006-01-02 15:04"),
			rec.Duration().Round(time.Second),
			rec.ItemsObtained,
			rec.LevelUps,
			rec.ID.String()[:8],
			skillLevels(rec.Skills),
		)
	}
	return nil
}

func printTopSkill(store *storage.Store, skill string) error {
	entries, err := store.TopSkills(skill, flagRecordsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best sessions - %s\n", skill)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-10s  %s\n", "Rank", "Level", "Exp", "Date")
	fmt.Printf("  %-4s  %-5s  %-10s  %s\n", "----", "-----", "---", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-5d  %-10d  %s\n", i+1, e.Level, e.Experience, e.EndedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestLevel(skill); err == nil {
		fmt.Printf("Best level: %d\n", best)
	}
	return nil
}

func printSession(store *storage.Store, id uuid.UUID) error {
	rec, err := store.Session(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("no such session")
	}

	fmt.Printf("Session %s\n", rec.ID)
	fmt.Printf("  Started:    %s\n", rec.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Ended:      %s\n", rec.EndedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Ticks:      %d\n", rec.Ticks)
	fmt.Printf("  Items:      %d\n", rec.ItemsObtained)
	fmt.Printf("  Level-ups:  %d\n", rec.LevelUps)
	fmt.Println()
	fmt.Printf("  %-8s  %5s  %10s  %8s\n", "Skill", "Level", "Exp", "Gained")
	for _, sk := range rec.Skills {
		fmt.Printf("  %-8s  %5d  %10d  %8d\n", sk.Skill, sk.Level, sk.Experience, sk.Gained)
	}
	return nil
}

func skillLevels(skills []storage.SkillRecord) string {
	out := ""
	for i, sk := range skills {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%s %d", sk.Skill, sk.Level)
	}
	return out
}
