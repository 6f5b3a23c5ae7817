package inventory

import (
	"testing"

	"github.com/vovakirdan/skillquest/internal/catalog"
)

var (
	stone  = catalog.Item{ID: "stone", Name: "stone"}
	stick  = catalog.Item{ID: "stick", Name: "stick"}
	copper = catalog.Item{ID: "copper_ore", Name: "copper ore"}
)

func TestInventoryAddFillsFirstEmptySlot(t *testing.T) {
	inv := New(3)

	if !inv.Add(stone) || !inv.Add(stick) || !inv.Add(copper) {
		t.Fatal("Add should succeed while slots are free")
	}
	if !inv.IsFull() {
		t.Error("inventory with 3/3 slots should be full")
	}
	if inv.Add(stone) {
		t.Error("Add on a full inventory should fail")
	}
	if inv.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", inv.Len())
	}

	// Free the middle slot, the next add must land there
	inv.removeAt(1)
	if inv.IsFull() {
		t.Error("inventory should not be full after removal")
	}
	inv.Add(copper)

	slots := inv.Snapshot()
	if slots[1].Item.ID != "copper_ore" {
		t.Errorf("slot 1 = %q, expected copper_ore", slots[1].Item.ID)
	}
}

func TestInventoryCounting(t *testing.T) {
	inv := New(5)
	inv.Add(stone)
	inv.Add(stick)
	inv.Add(stone)

	tests := []struct {
		id       catalog.ItemID
		count    int
		contains bool
	}{
		{"stone", 2, true},
		{"stick", 1, true},
		{"copper_ore", 0, false},
	}
	for _, tc := range tests {
		if got := inv.Count(tc.id); got != tc.count {
			t.Errorf("Count(%q) = %d, expected %d", tc.id, got, tc.count)
		}
		if got := inv.Contains(tc.id); got != tc.contains {
			t.Errorf("Contains(%q) = %v, expected %v", tc.id, got, tc.contains)
		}
	}

	totals := inv.Totals()
	if len(totals) != 2 || totals[0].Item.ID != "stone" || totals[0].Quantity != 2 {
		t.Errorf("Totals() = %+v", totals)
	}
}

func TestInventorySnapshotIsCopy(t *testing.T) {
	inv := New(2)
	inv.Add(stone)

	snap := inv.Snapshot()
	snap[0] = Slot{}
	if !inv.Contains("stone") {
		t.Error("mutating a snapshot must not change the inventory")
	}
}

func TestNewPanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0) should panic")
		}
	}()
	New(0)
}

func TestDeposit(t *testing.T) {
	tests := []struct {
		name       string
		carried    int // units of stone in the inventory
		stackLimit int
		preStored  int
		qty        int
		moved      int
		left       int
	}{
		{"all carried", 3, 0, 0, 3, 3, 0},
		{"partial", 3, 0, 0, 2, 2, 1},
		{"more than carried", 2, 0, 0, 10, 2, 0},
		{"zero quantity", 2, 0, 0, 0, 0, 2},
		{"bounded by stack room", 5, 4, 1, 5, 3, 2},
		{"stack already full", 2, 4, 4, 2, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := New(10)
			for i := 0; i < tc.carried; i++ {
				inv.Add(stone)
			}
			v := NewVault(5, tc.stackLimit)
			if tc.preStored > 0 {
				v.stacks = append(v.stacks, Stack{Item: stone, Quantity: tc.preStored})
			}

			moved := Deposit(inv, v, "stone", tc.qty)
			if moved != tc.moved {
				t.Errorf("Deposit() = %d, expected %d", moved, tc.moved)
			}
			if inv.Count("stone") != tc.left {
				t.Errorf("inventory still holds %d, expected %d", inv.Count("stone"), tc.left)
			}
			if v.Quantity("stone") != tc.preStored+tc.moved {
				t.Errorf("vault quantity = %d, expected %d", v.Quantity("stone"), tc.preStored+tc.moved)
			}
		})
	}
}

func TestDepositStacksAndOccupancy(t *testing.T) {
	inv := New(10)
	inv.Add(stone)
	inv.Add(stick)
	inv.Add(stone)
	inv.Add(stone)
	v := NewVault(2, 0)

	Deposit(inv, v, "stone", 1)
	Deposit(inv, v, "stone", 2)
	if v.Len() != 1 {
		t.Errorf("same item should share one stack, Len() = %d", v.Len())
	}
	if v.Quantity("stone") != 3 {
		t.Errorf("Quantity(stone) = %d, expected 3", v.Quantity("stone"))
	}

	Deposit(inv, v, "stick", 1)
	if !v.IsFull() {
		t.Error("vault with 2/2 stacks should be full")
	}

	// A full vault refuses new kinds but still grows existing stacks
	inv.Add(copper)
	inv.Add(stone)
	if got := Deposit(inv, v, "copper_ore", 1); got != 0 {
		t.Errorf("Deposit into a full vault without a stack moved %d", got)
	}
	if !inv.Contains("copper_ore") {
		t.Error("refused deposit must leave the inventory untouched")
	}
	if got := Deposit(inv, v, "stone", 1); got != 1 {
		t.Errorf("Deposit onto an existing stack moved %d, expected 1", got)
	}
}

func TestDepositEmptiesSlotsInIndexOrder(t *testing.T) {
	inv := New(4)
	inv.Add(stone)
	inv.Add(stick)
	inv.Add(stone)
	inv.Add(stone)
	v := NewVault(1, 0)

	Deposit(inv, v, "stone", 2)

	slots := inv.Snapshot()
	if slots[0].Filled || slots[2].Filled {
		t.Error("the two lowest stone slots should be emptied first")
	}
	if !slots[1].Filled || !slots[3].Filled {
		t.Error("other slots should be untouched")
	}
	if inv.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", inv.Len())
	}
}
