// Package inventory implements the player's carried slots and the vault
// that stores items in stacks.
package inventory

import (
	"fmt"

	"github.com/vovakirdan/skillquest/internal/catalog"
)

// DefaultCapacity is the number of carried slots a new character has.
const DefaultCapacity = 50

// Slot is one inventory position. Empty slots have Filled == false.
type Slot struct {
	Item   catalog.Item
	Filled bool
}

// Inventory is a fixed number of slots holding one item each.
type Inventory struct {
	slots    []Slot
	occupied int
}

// New creates an inventory with the given number of slots.
// It panics if capacity is not positive.
func New(capacity int) *Inventory {
	if capacity < 1 {
		panic(fmt.Sprintf("inventory: capacity must be positive, got %d", capacity))
	}
	return &Inventory{slots: make([]Slot, capacity)}
}

// Add places the item into the first empty slot.
// Returns false without changes when every slot is filled.
func (inv *Inventory) Add(item catalog.Item) bool {
	if inv.IsFull() {
		return false
	}
	for i := range inv.slots {
		if !inv.slots[i].Filled {
			inv.slots[i] = Slot{Item: item, Filled: true}
			inv.occupied++
			return true
		}
	}
	return false
}

// IsFull reports whether every slot is filled.
func (inv *Inventory) IsFull() bool {
	return inv.occupied == len(inv.slots)
}

// Contains reports whether at least one unit of the item is carried.
func (inv *Inventory) Contains(id catalog.ItemID) bool {
	for _, s := range inv.slots {
		if s.Filled && s.Item.ID == id {
			return true
		}
	}
	return false
}

// Count returns how many units of the item are carried.
func (inv *Inventory) Count(id catalog.ItemID) int {
	n := 0
	for _, s := range inv.slots {
		if s.Filled && s.Item.ID == id {
			n++
		}
	}
	return n
}

// Len returns the number of filled slots.
func (inv *Inventory) Len() int {
	return inv.occupied
}

// Cap returns the total number of slots.
func (inv *Inventory) Cap() int {
	return len(inv.slots)
}

// Snapshot returns a copy of all slots in index order.
func (inv *Inventory) Snapshot() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Totals returns per-item unit counts in first-seen slot order.
func (inv *Inventory) Totals() []Stack {
	var out []Stack
	idx := make(map[catalog.ItemID]int)
	for _, s := range inv.slots {
		if !s.Filled {
			continue
		}
		if i, ok := idx[s.Item.ID]; ok {
			out[i].Quantity++
			continue
		}
		idx[s.Item.ID] = len(out)
		out = append(out, Stack{Item: s.Item, Quantity: 1})
	}
	return out
}

func (inv *Inventory) removeAt(i int) catalog.Item {
	item := inv.slots[i].Item
	inv.slots[i] = Slot{}
	inv.occupied--
	return item
}
