// Package progression is the tick handler. It turns commands into action
// state changes and resolves one fixed tick of work into narration events.
//
// A Core is owned by a single goroutine; the front-end calls HandleCommand
// and Tick from its update loop and only reads state while rendering.
package progression

import (
	"github.com/vovakirdan/skillquest/internal/catalog"
	"github.com/vovakirdan/skillquest/internal/extraction"
	"github.com/vovakirdan/skillquest/internal/inventory"
	"github.com/vovakirdan/skillquest/internal/player"
)

// Stats summarizes a session for the records table.
type Stats struct {
	ItemsObtained int
	LevelUps      int
	Experience    map[catalog.Skill]int // Gained this session
}

// Core drives one player through the catalog.
type Core struct {
	cat    *catalog.Catalog
	player *player.Player
	engine *extraction.Engine

	ticks int
	stats Stats
}

// New wires a core around an existing player.
func New(cat *catalog.Catalog, p *player.Player, engine *extraction.Engine) *Core {
	return &Core{
		cat:    cat,
		player: p,
		engine: engine,
		stats:  Stats{Experience: make(map[catalog.Skill]int)},
	}
}

func (c *Core) Player() *player.Player    { return c.player }
func (c *Core) Catalog() *catalog.Catalog { return c.cat }

// Ticks returns how many ticks ran while the player was working.
func (c *Core) Ticks() int { return c.ticks }

// Stats returns a copy of the session counters.
func (c *Core) Stats() Stats {
	out := c.stats
	out.Experience = make(map[catalog.Skill]int, len(c.stats.Experience))
	for k, v := range c.stats.Experience {
		out.Experience[k] = v
	}
	return out
}

// HandleCommand applies a parsed command.
func (c *Core) HandleCommand(cmd Command) []Event {
	switch cmd.Verb {
	case VerbMine:
		res, ok := c.cat.ResourceByName(cmd.Target)
		if !ok || res.Skill != catalog.SkillMining {
			return []Event{UnknownTargetEvent{Verb: cmd.Verb, Name: cmd.Target}}
		}
		return c.StartAction(catalog.SkillMining, res)
	case VerbStop:
		return c.StopAction()
	case VerbDeposit:
		return c.deposit(cmd.Target, cmd.Quantity)
	case VerbView:
		panel, ok := ParsePanel(cmd.Target)
		if !ok {
			return []Event{UnknownTargetEvent{Verb: cmd.Verb, Name: cmd.Target}}
		}
		return []Event{ViewEvent{Panel: panel}}
	default:
		return nil
	}
}

// StartAction begins training skill on res if the player's level allows
// it. A rejected start leaves the current state untouched. Switching
// targets while active is allowed.
func (c *Core) StartAction(skill catalog.Skill, res *catalog.Resource) []Event {
	if res == nil {
		return nil
	}
	if _, ok := catalog.ActionForSkill(skill); !ok {
		return nil
	}

	sk := c.player.Skills()
	if !sk.HasLevelAtLeast(skill, res.MinLevel()) {
		return []Event{NotEnoughLevelEvent{
			Skill:    skill,
			Required: res.MinLevel(),
			Current:  sk.Level(skill),
			Resource: res,
		}}
	}

	c.player.Start(skill, res)
	return []Event{StartedEvent{Skill: skill, Resource: res}}
}

// StopAction returns to idle. It is silent when already idle.
func (c *Core) StopAction() []Event {
	st := c.player.State()
	c.player.Stop()
	if !st.Active() {
		return nil
	}
	return []Event{StoppedEvent{Resource: st.Target}}
}

// Tick resolves one fixed interval. It is a no-op while idle.
//
// Each drop yields ObtainedEvent, ExperienceEvent and, when the skill
// leveled, LevelUpEvent, in drop order. When nothing dropped and the
// inventory is full the action ends with InventoryFullEvent.
func (c *Core) Tick() []Event {
	st := c.player.State()
	if !st.Active() {
		return nil
	}
	c.ticks++

	inv := c.player.Inventory()
	drops := c.engine.ResolveTick(st.Target, inv)
	if len(drops) == 0 {
		if inv.IsFull() {
			c.player.Stop()
			return []Event{InventoryFullEvent{Resource: st.Target}}
		}
		return nil
	}

	sk := c.player.Skills()
	events := make([]Event, 0, len(drops)*2)
	for _, d := range drops {
		events = append(events, ObtainedEvent{Item: d.Item, Rarity: d.Rarity})
		c.stats.ItemsObtained++

		leveled := sk.GainExperience(st.Skill, d.Exp)
		c.stats.Experience[st.Skill] += max(d.Exp, 0)
		events = append(events, ExperienceEvent{
			Skill:  st.Skill,
			Amount: d.Exp,
			Total:  sk.Experience(st.Skill),
		})
		if leveled {
			c.stats.LevelUps++
			events = append(events, LevelUpEvent{Skill: st.Skill, Level: sk.Level(st.Skill)})
		}
	}
	return events
}

func (c *Core) deposit(name string, qty int) []Event {
	item, ok := c.cat.ItemByName(name)
	if !ok {
		return []Event{UnknownTargetEvent{Verb: VerbDeposit, Name: name}}
	}
	if qty <= 0 {
		return nil
	}

	inv, vault := c.player.Inventory(), c.player.Vault()
	if !inv.Contains(item.ID) {
		return []Event{NotCarriedEvent{Item: item}}
	}
	if vault.Room(item.ID) == 0 {
		return []Event{VaultFullEvent{Item: item}}
	}

	n := inventory.Deposit(inv, vault, item.ID, qty)
	return []Event{DepositedEvent{Item: item, Quantity: n, Stored: vault.Quantity(item.ID)}}
}
