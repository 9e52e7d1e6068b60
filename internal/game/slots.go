package game

import (
	"encoding/json"
	"fmt"

	"github.com/thryft-app/thryft/internal/models"
)

// Built-in closet categories that the game knows how to wear
const (
	CategoryTops        = "Tops"
	CategoryBottoms     = "Bottoms"
	CategoryShoes       = "Shoes"
	CategoryHats        = "Hats"
	CategoryJackets     = "Jackets"
	CategoryAccessories = "Accessories"
)

// Slot is an equipment position on the avatar
type Slot int

const (
	SlotTop Slot = iota
	SlotBottom
	SlotShoes
	SlotHat
	SlotJacket
	SlotAccessory

	slotCount
)

var slotNames = [slotCount]string{"top", "bottom", "shoes", "hat", "jacket", "accessory"}

func (s Slot) String() string {
	if s < 0 || s >= slotCount {
		return "unknown"
	}
	return slotNames[s]
}

// categorySlots maps a closet category to the slot it is worn in.
// Categories missing here (including user-defined ones) cannot be worn.
var categorySlots = map[string]Slot{
	CategoryTops:        SlotTop,
	CategoryBottoms:     SlotBottom,
	CategoryShoes:       SlotShoes,
	CategoryHats:        SlotHat,
	CategoryJackets:     SlotJacket,
	CategoryAccessories: SlotAccessory,
}

// SlotForCategory returns the slot a category is worn in
func SlotForCategory(category string) (Slot, bool) {
	slot, ok := categorySlots[category]
	return slot, ok
}

// BaseCategories returns the built-in categories in slot order
func BaseCategories() []string {
	return []string{CategoryTops, CategoryBottoms, CategoryShoes, CategoryHats, CategoryJackets, CategoryAccessories}
}

// Equipment holds at most one closet item per slot. The zero value is empty.
// Copies share item pointers, which are never mutated after Equip.
type Equipment struct {
	items [slotCount]*models.ClosetItem
}

// Equip puts item in the slot for its category, replacing any occupant.
// It returns false, leaving the equipment untouched, when the category has no slot.
func (e *Equipment) Equip(item models.ClosetItem) (Slot, bool) {
	slot, ok := SlotForCategory(item.Category)
	if !ok {
		return 0, false
	}
	e.items[slot] = &item
	return slot, true
}

// Get returns the item in slot
func (e *Equipment) Get(slot Slot) (models.ClosetItem, bool) {
	if slot < 0 || slot >= slotCount || e.items[slot] == nil {
		return models.ClosetItem{}, false
	}
	return *e.items[slot], true
}

// Occupied reports whether slot holds an item
func (e *Equipment) Occupied(slot Slot) bool {
	return slot >= 0 && slot < slotCount && e.items[slot] != nil
}

// Clear empties every slot
func (e *Equipment) Clear() {
	e.items = [slotCount]*models.ClosetItem{}
}

// HasAny reports whether at least one slot is occupied
func (e *Equipment) HasAny() bool {
	for _, it := range e.items {
		if it != nil {
			return true
		}
	}
	return false
}

// HasRequired reports whether top, bottom and shoes are all occupied
func (e *Equipment) HasRequired() bool {
	return e.Occupied(SlotTop) && e.Occupied(SlotBottom) && e.Occupied(SlotShoes)
}

// ItemIDs returns the ids of occupied slots in slot order
func (e *Equipment) ItemIDs() []string {
	ids := make([]string, 0, slotCount)
	for _, it := range e.items {
		if it != nil {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// MarshalJSON renders every slot by name, with null for empty ones
func (e Equipment) MarshalJSON() ([]byte, error) {
	out := make(map[string]*models.ClosetItem, slotCount)
	for i, it := range e.items {
		out[slotNames[i]] = it
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the slot-name form written by MarshalJSON. Unknown
// slot names are rejected.
func (e *Equipment) UnmarshalJSON(data []byte) error {
	var in map[string]*models.ClosetItem
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var out Equipment
	for name, it := range in {
		slot, ok := slotByName(name)
		if !ok {
			return fmt.Errorf("unknown slot %q", name)
		}
		out.items[slot] = it
	}
	*e = out
	return nil
}

func slotByName(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}
