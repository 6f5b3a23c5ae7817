package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List resources and their drop tables",
	Long: `Shows every resource in the loaded catalog with the level it
requires and what it can drop each tick.

Examples:
  skillquest catalog
  skillquest catalog --catalog ./my-catalog.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	resources := cat.Resources()
	if len(resources) == 0 {
		fmt.Println("No resources available.")
		return nil
	}

	// Calculate column widths
	maxItemLen := 4 // "Item" header
	for _, res := range resources {
		for _, d := range res.Drops() {
			maxItemLen = max(maxItemLen, len(d.Item.Name))
		}
	}

	for _, res := range resources {
		fmt.Printf("%s (%s, level %d)\n", res.Name, res.Skill, res.MinLevel())
		fmt.Printf("  %-*s  %5s  %4s  %7s  %s\n", maxItemLen, "Item", "Level", "Exp", "Chance", "Rarity")
		fmt.Printf("  %-*s  %5s  %4s  %7s  %s\n", maxItemLen, "----", "-----", "---", "------", "------")
		for _, d := range res.Drops() {
			fmt.Printf("  %-*s  %5d  %4d  %7s  %s\n",
				maxItemLen, d.Item.Name, d.Level, d.Exp, fmt.Sprintf("1/%d", d.Rate), d.Rarity())
		}
		fmt.Println()
	}

	fmt.Println("Type 'mine <resource>' in the game to start mining.")
	return nil
}
