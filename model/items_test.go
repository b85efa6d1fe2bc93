package model

import (
	"errors"
	"testing"
)

func TestHealthPotion(t *testing.T) {
	c := NewWarrior("Borin")
	c.CurrentHP = 50
	inv := NewInventory(HealthPotion())

	msg, spent, err := inv.Use("health potion", c)
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if !spent {
		t.Error("potion did not take effect")
	}
	if c.CurrentHP != 90 {
		t.Errorf("HP = %d, want 90 after healing 40", c.CurrentHP)
	}
	if msg == "" {
		t.Error("expected a narration line")
	}
	if inv.Has("Health Potion") {
		t.Error("consumable not removed after use")
	}
}

func TestScrollOfProtection(t *testing.T) {
	c := NewMage("Lyra")
	inv := NewInventory(ScrollOfProtection())

	if _, _, err := inv.Use("Scroll of Protection", c); err != nil {
		t.Fatalf("Use: %v", err)
	}
	if c.TempShield != 15 {
		t.Errorf("shield = %d, want 15", c.TempShield)
	}
	if inv.Has("Scroll of Protection") {
		t.Error("scroll not consumed")
	}
}

func TestUseMissingItem(t *testing.T) {
	c := NewRogue("Vex")
	inv := NewInventory()

	_, _, err := inv.Use("Elixir of Life", c)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
}

func TestElvenBladeEquipsOnce(t *testing.T) {
	c := NewWarrior("Borin")
	inv := NewInventory(ElvenBlade())

	_, spent, err := inv.Use("elven blade", c)
	if err != nil || !spent {
		t.Fatalf("first use: spent=%v err=%v", spent, err)
	}
	if c.Strength != 19 || c.Artifact != "Elven Blade" {
		t.Errorf("strength = %d artifact = %q, want 19 and Elven Blade", c.Strength, c.Artifact)
	}
	if !inv.Has("Elven Blade") {
		t.Error("legendary removed from inventory")
	}

	_, spent, err = inv.Use("elven blade", c)
	if err != nil {
		t.Fatalf("second use: %v", err)
	}
	if spent {
		t.Error("legendary equipped twice")
	}
	if c.Strength != 19 {
		t.Errorf("strength = %d after blocked re-equip, want 19", c.Strength)
	}
}

func TestLegendariesExcludeEachOther(t *testing.T) {
	c := NewMage("Lyra")
	inv := NewInventory(ElvenBlade(), ArcaneFocus())

	if _, spent, _ := inv.Use("Arcane Focus", c); !spent {
		t.Fatal("focus did not equip")
	}
	if c.Magic != 20 {
		t.Errorf("magic = %d, want 20", c.Magic)
	}
	if _, spent, _ := inv.Use("Elven Blade", c); spent {
		t.Error("second legendary equipped over the first")
	}
	if c.Strength != 6 {
		t.Errorf("strength = %d, want unchanged 6", c.Strength)
	}
}

func TestInventoryNamesOrdered(t *testing.T) {
	inv := NewInventory(HealthPotion(), ScrollOfProtection())
	inv.Add(HealthPotion())
	names := inv.Names()
	want := []string{"Health Potion", "Scroll of Protection", "Health Potion"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
