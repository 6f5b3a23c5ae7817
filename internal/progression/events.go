package progression

import "github.com/vovakirdan/skillquest/internal/catalog"

// Event is a narration outcome produced by the core. The front-end decides
// how to render each variant.
type Event interface {
	event()
}

// StartedEvent is emitted when an action begins on a resource.
type StartedEvent struct {
	Skill    catalog.Skill
	Resource *catalog.Resource
}

func (StartedEvent) event() {}

// NotEnoughLevelEvent is emitted when a resource is above the player's level.
type NotEnoughLevelEvent struct {
	Skill    catalog.Skill
	Required int
	Current  int
	Resource *catalog.Resource
}

func (NotEnoughLevelEvent) event() {}

// UnknownTargetEvent is emitted when a command names nothing in the catalog.
type UnknownTargetEvent struct {
	Verb Verb
	Name string
}

func (UnknownTargetEvent) event() {}

// ObtainedEvent is emitted for each drop that landed in the inventory.
type ObtainedEvent struct {
	Item   catalog.Item
	Rarity catalog.Rarity
}

func (ObtainedEvent) event() {}

// ExperienceEvent follows every ObtainedEvent.
type ExperienceEvent struct {
	Skill  catalog.Skill
	Amount int
	Total  int
}

func (ExperienceEvent) event() {}

// LevelUpEvent follows an ExperienceEvent that crossed a threshold.
type LevelUpEvent struct {
	Skill catalog.Skill
	Level int
}

func (LevelUpEvent) event() {}

// InventoryFullEvent ends the action when nothing more can be carried.
type InventoryFullEvent struct {
	Resource *catalog.Resource
}

func (InventoryFullEvent) event() {}

// StoppedEvent is emitted when the player stops an action.
type StoppedEvent struct {
	Resource *catalog.Resource
}

func (StoppedEvent) event() {}

// DepositedEvent reports units moved into the vault.
type DepositedEvent struct {
	Item     catalog.Item
	Quantity int
	Stored   int // Units in the vault after the deposit
}

func (DepositedEvent) event() {}

// VaultFullEvent is emitted when the vault has no room for the item.
type VaultFullEvent struct {
	Item catalog.Item
}

func (VaultFullEvent) event() {}

// NotCarriedEvent is emitted when depositing an item the player lacks.
type NotCarriedEvent struct {
	Item catalog.Item
}

func (NotCarriedEvent) event() {}

// ViewEvent asks the front-end to show a panel.
type ViewEvent struct {
	Panel Panel
}

func (ViewEvent) event() {}
