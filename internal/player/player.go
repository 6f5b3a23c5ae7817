// Package player aggregates everything a character owns: skills,
// carried inventory, vault and the current action.
package player

import (
	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/inventory"
	"github.com/vovakirdan/skillquest/internal/skills"
)

// Options sizes the player's containers. Zero fields take defaults.
type Options struct {
	InventoryCapacity int
	VaultCapacity     int
	StackLimit        int // 0 means unlimited
	Partitions        int
}

// DefaultOptions returns the standard container sizes.
func DefaultOptions() Options {
	return Options{
		InventoryCapacity: inventory.DefaultCapacity,
		VaultCapacity:     inventory.DefaultVaultCapacity,
		StackLimit:        inventory.DefaultStackLimit,
		Partitions:        skills.DefaultPartitions,
	}
}

// State is the current action. Target is nil while idle.
type State struct {
	Action catalog.Action
	Skill  catalog.Skill
	Target *catalog.Resource
}

// Active reports whether an action is in progress.
func (s State) Active() bool {
	return s.Action != catalog.ActionIdle && s.Target != nil
}

// Player is the sole owner of its skills and containers.
type Player struct {
	skills *skills.Set
	inv    *inventory.Inventory
	vault  *inventory.Vault
	state  State
}

// New creates a fresh character.
func New(cat *catalog.Catalog, opts Options) *Player {
	def := DefaultOptions()
	if opts.InventoryCapacity == 0 {
		opts.InventoryCapacity = def.InventoryCapacity
	}
	if opts.VaultCapacity == 0 {
		opts.VaultCapacity = def.VaultCapacity
	}
	if opts.Partitions == 0 {
		opts.Partitions = def.Partitions
	}

	sk := skills.New(cat)
	sk.SetPartitions(opts.Partitions)

	return &Player{
		skills: sk,
		inv:    inventory.New(opts.InventoryCapacity),
		vault:  inventory.NewVault(opts.VaultCapacity, opts.StackLimit),
	}
}

func (p *Player) Skills() *skills.Set             { return p.skills }
func (p *Player) Inventory() *inventory.Inventory { return p.inv }
func (p *Player) Vault() *inventory.Vault         { return p.vault }
func (p *Player) State() State                    { return p.state }
func (p *Player) Active() bool                    { return p.state.Active() }

// Start switches to the action that trains skill on target.
// Level requirements are checked by the caller.
func (p *Player) Start(skill catalog.Skill, target *catalog.Resource) {
	action, ok := catalog.ActionForSkill(skill)
	if !ok || target == nil {
		p.Stop()
		return
	}
	p.state = State{Action: action, Skill: skill, Target: target}
}

// Stop returns to idle and clears the target.
func (p *Player) Stop() {
	p.state = State{}
}
