package progression

import (
	"math"
	"strings"
)

// Verb is the kind of a player command.
type Verb int

const (
	VerbNone Verb = iota
	VerbMine
	VerbStop
	VerbDeposit
	VerbView
)

func (v Verb) String() string {
	switch v {
	case VerbMine:
		return "mine"
	case VerbStop:
		return "stop"
	case VerbDeposit:
		return "deposit"
	case VerbView:
		return "view"
	default:
		return "none"
	}
}

// QuantityAll deposits every carried unit.
const QuantityAll = math.MaxInt

// Command is a validated player instruction. Target is a resource, item
// or panel name depending on the verb.
type Command struct {
	Verb     Verb
	Target   string
	Quantity int
}

// Panel is a side panel of the running screen.
type Panel int

const (
	PanelInventory Panel = iota
	PanelVault
	PanelSkills
)

var panelNames = [...]string{
	PanelInventory: "inventory",
	PanelVault:     "vault",
	PanelSkills:    "skills",
}

func (p Panel) String() string {
	if p < 0 || int(p) >= len(panelNames) {
		return "unknown"
	}
	return panelNames[p]
}

// ParsePanel resolves a panel by name or unambiguous prefix.
func ParsePanel(name string) (Panel, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for i, n := range panelNames {
		if strings.HasPrefix(n, name) {
			return Panel(i), true
		}
	}
	return 0, false
}
