package model

import "testing"

func TestApplyDamage(t *testing.T) {
	c := NewWarrior("Borin")

	if hp := c.ApplyDamage(20); hp != 100 {
		t.Errorf("post-damage HP = %d, want 100", hp)
	}
	if hp := c.ApplyDamage(500); hp != 0 {
		t.Errorf("post-damage HP = %d, want floor at 0", hp)
	}
	if c.Alive() {
		t.Error("combatant alive at 0 HP")
	}
	if hp := c.ApplyDamage(-5); hp != 0 {
		t.Errorf("negative damage changed HP to %d", hp)
	}
}

func TestHealCapsAtMax(t *testing.T) {
	c := NewMage("Lyra")
	c.CurrentHP = 60

	if healed := c.Heal(40); healed != 30 {
		t.Errorf("healed = %d, want 30 capped at MaxHP", healed)
	}
	if c.CurrentHP != c.MaxHP {
		t.Errorf("HP = %d, want %d", c.CurrentHP, c.MaxHP)
	}
	if healed := c.Heal(10); healed != 0 {
		t.Errorf("healed = %d at full HP, want 0", healed)
	}
}

func TestConsumeDefend(t *testing.T) {
	c := NewRogue("Vex")
	if c.ConsumeDefend() {
		t.Error("defend flag set on a fresh combatant")
	}
	c.SetDefending(true)
	if !c.ConsumeDefend() {
		t.Error("defend flag not reported")
	}
	if c.ConsumeDefend() {
		t.Error("defend flag survived consumption")
	}
}

func TestAbilityCooldown(t *testing.T) {
	c := NewWarrior("Borin")
	if !c.AbilityReady() {
		t.Fatal("fresh combatant not ability-ready")
	}
	c.StartAbilityCooldown(2)
	if c.AbilityReady() {
		t.Fatal("ability ready while on cooldown")
	}
	c.TickCooldown()
	c.TickCooldown()
	if !c.AbilityReady() {
		t.Fatal("ability not ready after cooldown elapsed")
	}
	c.TickCooldown() // no-op at zero
	if c.AbilityCooldown != 0 {
		t.Error("cooldown went negative")
	}
}

func TestClassTemplates(t *testing.T) {
	tests := []struct {
		name    string
		c       *Combatant
		hp      int
		str     int
		agi     int
		mag     int
		ability string
	}{
		{"warrior", NewWarrior("a"), 120, 14, 8, 5, "Shield Bash"},
		{"mage", NewMage("a"), 90, 6, 9, 15, "Arcane Bolt"},
		{"rogue", NewRogue("a"), 100, 10, 13, 7, "Sneak Attack"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c.MaxHP != tt.hp || tt.c.CurrentHP != tt.hp {
				t.Errorf("HP = %d/%d, want %d", tt.c.CurrentHP, tt.c.MaxHP, tt.hp)
			}
			if tt.c.Strength != tt.str || tt.c.Agility != tt.agi || tt.c.Magic != tt.mag {
				t.Errorf("stats = %d/%d/%d, want %d/%d/%d",
					tt.c.Strength, tt.c.Agility, tt.c.Magic, tt.str, tt.agi, tt.mag)
			}
			if tt.c.Ability != tt.ability {
				t.Errorf("ability = %q, want %q", tt.c.Ability, tt.ability)
			}
		})
	}
}

func TestEnemyTemplates(t *testing.T) {
	if b := NewMinorBandit(); b.MaxHP != 60 || b.Strength != 8 {
		t.Errorf("minor bandit = HP %d STR %d, want 60/8", b.MaxHP, b.Strength)
	}
	if k := NewBanditKing(); k.MaxHP != 150 || k.Strength != 12 {
		t.Errorf("bandit king = HP %d STR %d, want 150/12", k.MaxHP, k.Strength)
	}
	if l := NewArchLich(); l.MaxHP != 200 || l.Magic != 18 {
		t.Errorf("arch-lich = HP %d MAG %d, want 200/18", l.MaxHP, l.Magic)
	}
}
