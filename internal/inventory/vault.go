package inventory

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skillquest/internal/catalog"
)

// Vault defaults.
const (
	DefaultVaultCapacity = 100
	DefaultStackLimit    = 0 // unlimited
)

// Stack is a quantity of one item kind.
type Stack struct {
	Item     catalog.Item
	Quantity int
}

// Vault stores items in stacks, at most one stack per item kind.
// Occupancy counts stacks, not units.
type Vault struct {
	stacks     []Stack
	capacity   int
	stackLimit int
}

// NewVault creates a vault with room for capacity stacks. A stackLimit of
// zero means stacks grow without bound. It panics on a non-positive
// capacity or a negative limit.
func NewVault(capacity, stackLimit int) *Vault {
	if capacity < 1 {
		panic(fmt.Sprintf("inventory: vault capacity must be positive, got %d", capacity))
	}
	if stackLimit < 0 {
		panic(fmt.Sprintf("inventory: negative stack limit %d", stackLimit))
	}
	return &Vault{capacity: capacity, stackLimit: stackLimit}
}

// IsFull reports whether no new stack can be created.
func (v *Vault) IsFull() bool {
	return len(v.stacks) >= v.capacity
}

// HasItem reports whether a stack for the item exists.
func (v *Vault) HasItem(id catalog.ItemID) bool {
	return v.find(id) >= 0
}

// Quantity returns the number of stored units of the item.
func (v *Vault) Quantity(id catalog.ItemID) int {
	if i := v.find(id); i >= 0 {
		return v.stacks[i].Quantity
	}
	return 0
}

// Len returns the number of stacks.
func (v *Vault) Len() int {
	return len(v.stacks)
}

// Cap returns the maximum number of stacks.
func (v *Vault) Cap() int {
	return v.capacity
}

// StackLimit returns the per-stack unit cap, 0 if unlimited.
func (v *Vault) StackLimit() int {
	return v.stackLimit
}

// Room returns how many more units of the item the vault accepts.
func (v *Vault) Room(id catalog.ItemID) int {
	i := v.find(id)
	if i < 0 && v.IsFull() {
		return 0
	}
	if v.stackLimit == 0 {
		return math.MaxInt
	}
	if i < 0 {
		return v.stackLimit
	}
	return v.stackLimit - v.stacks[i].Quantity
}

// Snapshot returns a copy of the stacks in creation order.
func (v *Vault) Snapshot() []Stack {
	out := make([]Stack, len(v.stacks))
	copy(out, v.stacks)
	return out
}

func (v *Vault) find(id catalog.ItemID) int {
	for i, s := range v.stacks {
		if s.Item.ID == id {
			return i
		}
	}
	return -1
}

// Deposit moves up to qty units of the item from inv into v and returns
// the number moved. The amount is bounded by what is carried and by the
// room left in the item's stack. Slots are emptied in index order.
func Deposit(inv *Inventory, v *Vault, id catalog.ItemID, qty int) int {
	if qty <= 0 {
		return 0
	}
	n := min(qty, inv.Count(id), v.Room(id))
	if n <= 0 {
		return 0
	}

	var item catalog.Item
	moved := 0
	for i := range inv.slots {
		if moved == n {
			break
		}
		if inv.slots[i].Filled && inv.slots[i].Item.ID == id {
			item = inv.removeAt(i)
			moved++
		}
	}

	idx := v.find(id)
	if idx < 0 {
		v.stacks = append(v.stacks, Stack{Item: item})
		idx = len(v.stacks) - 1
	}
	v.stacks[idx].Quantity += moved
	return moved
}
