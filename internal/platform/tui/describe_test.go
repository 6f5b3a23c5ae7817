package tui

import (
	"testing"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/progression"
)

func TestDescribe(t *testing.T) {
	cat := catalog.Default()
	copper, _ := cat.ResourceByName("copper")
	ore, _ := cat.ItemByName("copper ore")

	tests := []struct {
		name string
		ev   progression.Event
		want string
	}{
		{"started", progression.StartedEvent{Skill: catalog.SkillMining, Resource: copper}, "You started to mine copper."},
		{"obtained", progression.ObtainedEvent{Item: ore, Rarity: catalog.RarityCommon}, "You mined a copper ore."},
		{"experience", progression.ExperienceEvent{Skill: catalog.SkillMining, Amount: 4, Total: 87}, "+4 mining exp (87)"},
		{"level up", progression.LevelUpEvent{Skill: catalog.SkillMining, Level: 2}, "Congratulations! Your mining level is now 2."},
		{"inventory full", progression.InventoryFullEvent{Resource: copper}, "Your inventory is full!"},
		{"stopped", progression.StoppedEvent{Resource: copper}, "You stop working on copper."},
		{"deposited", progression.DepositedEvent{Item: ore, Quantity: 5, Stored: 12}, "You deposit 5 copper ore (12 in the vault)."},
		{"not carried", progression.NotCarriedEvent{Item: ore}, "You are not carrying any copper ore."},
		{"unknown resource", progression.UnknownTargetEvent{Verb: progression.VerbMine, Name: "mithril"}, `There is nothing called "mithril" to mine.`},
		{"unknown panel", progression.UnknownTargetEvent{Verb: progression.VerbView, Name: "map"}, `There is no "map" panel.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := describe(tt.ev).Plain(); got != tt.want {
				t.Errorf("describe() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestDescribeColorsItemsByRarity(t *testing.T) {
	cat := catalog.Default()
	gem, _ := cat.ItemByName("uncut sapphire")

	line := describe(progression.ObtainedEvent{Item: gem, Rarity: catalog.RarityVeryRare})
	if len(line) != 3 || line[1].Text != gem.Name {
		t.Fatalf("line = %+v", line)
	}
	if line[1].Color != catalog.RarityVeryRare.Color() {
		t.Errorf("item color = %v, expected %v", line[1].Color, catalog.RarityVeryRare.Color())
	}
}

func TestDescribeViewHasNoLine(t *testing.T) {
	if line := describe(progression.ViewEvent{Panel: progression.PanelVault}); line != nil {
		t.Errorf("describe(ViewEvent) = %+v, expected nil", line)
	}
}
