package tui

import (
	"fmt"

	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/core"
	"github.com/vovakirdan/skillquest/internal/progression"
)

const (
	textColor   = core.ColorWhite
	detailColor = core.ColorGray
	goodColor   = core.ColorGreen
	badColor    = core.ColorRed
	accentColor = core.ColorCyan
)

// describe turns an event into a narration line. ViewEvent has no line;
// the running screen switches panels instead.
func describe(ev progression.Event) Line {
	switch ev := ev.(type) {
	case progression.StartedEvent:
		return Line{
			{Text: fmt.Sprintf("You started to %s ", verbFor(ev.Skill)), Color: textColor},
			{Text: ev.Resource.Name, Color: accentColor},
			{Text: ".", Color: textColor},
		}

	case progression.NotEnoughLevelEvent:
		return Line{
			{Text: fmt.Sprintf("You need %s level %d to %s %s.", ev.Skill, ev.Required, verbFor(ev.Skill), ev.Resource.Name), Color: textColor},
			{Text: fmt.Sprintf(" Yours is %d.", ev.Current), Color: detailColor},
		}

	case progression.UnknownTargetEvent:
		switch ev.Verb {
		case progression.VerbMine:
			return Line{{Text: fmt.Sprintf("There is nothing called %q to mine.", ev.Name), Color: badColor}}
		case progression.VerbView:
			return Line{{Text: fmt.Sprintf("There is no %q panel.", ev.Name), Color: badColor}}
		default:
			return Line{{Text: fmt.Sprintf("You don't know any item called %q.", ev.Name), Color: badColor}}
		}

	case progression.ObtainedEvent:
		return Line{
			{Text: "You mined a ", Color: textColor},
			{Text: ev.Item.Name, Color: ev.Rarity.Color()},
			{Text: ".", Color: textColor},
		}

	case progression.ExperienceEvent:
		return Line{{Text: fmt.Sprintf("+%d %s exp (%d)", ev.Amount, ev.Skill, ev.Total), Color: detailColor}}

	case progression.LevelUpEvent:
		return Line{{Text: fmt.Sprintf("Congratulations! Your %s level is now %d.", ev.Skill, ev.Level), Color: goodColor}}

	case progression.InventoryFullEvent:
		return Line{{Text: "Your inventory is full!", Color: core.ColorYellow}}

	case progression.StoppedEvent:
		return Line{{Text: fmt.Sprintf("You stop working on %s.", ev.Resource.Name), Color: textColor}}

	case progression.DepositedEvent:
		return Line{
			{Text: fmt.Sprintf("You deposit %d ", ev.Quantity), Color: textColor},
			{Text: ev.Item.Name, Color: accentColor},
			{Text: fmt.Sprintf(" (%d in the vault).", ev.Stored), Color: detailColor},
		}

	case progression.VaultFullEvent:
		return Line{{Text: fmt.Sprintf("Your vault has no room for %s.", ev.Item.Name), Color: core.ColorYellow}}

	case progression.NotCarriedEvent:
		return Line{{Text: fmt.Sprintf("You are not carrying any %s.", ev.Item.Name), Color: badColor}}
	}
	return nil
}

func verbFor(s catalog.Skill) string {
	if s == catalog.SkillMining {
		return "mine"
	}
	return "train " + s.String()
}
