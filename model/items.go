package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrItemNotFound is returned when an inventory action names an item the
// player does not carry. Recoverable: the caller re-prompts.
var ErrItemNotFound = errors.New("item not found")

// Item carries an effect applied to a Combatant. Consumables are removed
// from the inventory on use; legendary artifacts stay but guard against
// being equipped twice.
type Item struct {
	Name        string
	Description string
	Reusable    bool

	// Effect mutates the target and returns a narration line. The second
	// return reports whether the item actually took effect; a false means
	// the use did not spend the turn and the item is kept.
	Effect func(*Combatant) (string, bool)
}

func HealthPotion() Item {
	return Item{
		Name:        "Health Potion",
		Description: "Restores 40 HP.",
		Effect: func(c *Combatant) (string, bool) {
			healed := c.Heal(40)
			return fmt.Sprintf("A warm glow spreads through you, mending your wounds. %s healed for %d HP (%d/%d).",
				c.Name, healed, c.CurrentHP, c.MaxHP), true
		},
	}
}

func ScrollOfProtection() Item {
	return Item{
		Name:        "Scroll of Protection",
		Description: "Grants +15 temporary defense against the next blow.",
		Effect: func(c *Combatant) (string, bool) {
			c.TempShield = 15
			return "The scroll disintegrates, leaving a shimmering magical shield around you.", true
		},
	}
}

func ElvenBlade() Item {
	return Item{
		Name:        "Elven Blade",
		Description: "A legendary weapon granting a permanent +5 Strength boost.",
		Reusable:    true,
		Effect: func(c *Combatant) (string, bool) {
			if c.Artifact != "" {
				return "You already carry a legendary artifact and cannot equip another.", false
			}
			c.Artifact = "Elven Blade"
			c.Strength += 5
			return "You equip the Elven Blade. A surge of power runs through you! +5 Strength.", true
		},
	}
}

func ArcaneFocus() Item {
	return Item{
		Name:        "Arcane Focus",
		Description: "An ancient artifact granting a permanent +5 Magic boost.",
		Reusable:    true,
		Effect: func(c *Combatant) (string, bool) {
			if c.Artifact != "" {
				return "You already carry a legendary artifact and cannot equip another.", false
			}
			c.Artifact = "Arcane Focus"
			c.Magic += 5
			return "The Arcane Focus enhances your mind! +5 Magic.", true
		},
	}
}

// Inventory is the ordered collection of items the player carries.
type Inventory struct {
	items []Item
}

func NewInventory(items ...Item) *Inventory {
	return &Inventory{items: items}
}

func (inv *Inventory) Add(it Item) {
	inv.items = append(inv.items, it)
}

func (inv *Inventory) Empty() bool {
	return len(inv.items) == 0
}

func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.items))
	for i, it := range inv.items {
		names[i] = it.Name
	}
	return names
}

// Has reports whether the inventory holds an item by name, case-insensitive.
func (inv *Inventory) Has(name string) bool {
	return inv.find(name) >= 0
}

// Use applies the named item's effect to target. On success consumables are
// removed. spent reports whether the use counts as the turn's action.
func (inv *Inventory) Use(name string, target *Combatant) (msg string, spent bool, err error) {
	i := inv.find(name)
	if i < 0 {
		return "", false, fmt.Errorf("use %q: %w", name, ErrItemNotFound)
	}
	it := inv.items[i]
	msg, spent = it.Effect(target)
	if spent && !it.Reusable {
		inv.items = append(inv.items[:i], inv.items[i+1:]...)
	}
	return msg, spent, nil
}

func (inv *Inventory) find(name string) int {
	for i, it := range inv.items {
		if strings.EqualFold(it.Name, name) {
			return i
		}
	}
	return -1
}
