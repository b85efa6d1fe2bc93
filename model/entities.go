package model

import "fmt"

// Class selects which ability the Magic action triggers.
type Class int

const (
	ClassNone Class = iota
	ClassWarrior
	ClassMage
	ClassRogue
)

func (c Class) String() string {
	switch c {
	case ClassWarrior:
		return "Warrior"
	case ClassMage:
		return "Mage"
	case ClassRogue:
		return "Rogue"
	}
	return "Unknown"
}

// Combatant is any creature that can take part in an encounter, the hero
// and enemies alike. Stats are fixed by the class or enemy template and
// only change through story rewards and legendary artifacts.
type Combatant struct {
	Name      string
	Class     Class
	MaxHP     int
	CurrentHP int
	Strength  int
	Agility   int
	Magic     int
	Ability   string

	IsDefending     bool
	AbilityCooldown int
	TempShield      int // one-hit damage absorb from the Scroll of Protection
	WeakenPenalty   int // subtracted from the next outgoing hit
	Artifact        string
}

// NewWarrior creates a physical fighter with high Strength and a defensive ability.
func NewWarrior(name string) *Combatant {
	return newCombatant(name, ClassWarrior, 120, 14, 8, 5, "Shield Bash")
}

// NewMage creates a caster with high Magic and a powerful, sometimes
// unreliable, spell.
func NewMage(name string) *Combatant {
	return newCombatant(name, ClassMage, 90, 6, 9, 15, "Arcane Bolt")
}

// NewRogue creates a fast fighter that relies on Agility for critical hits.
func NewRogue(name string) *Combatant {
	return newCombatant(name, ClassRogue, 100, 10, 13, 7, "Sneak Attack")
}

// Enemy templates. Each encounter gets a fresh copy.

func NewMinorBandit() *Combatant {
	return newCombatant("Minor Bandit", ClassNone, 60, 8, 10, 5, "Quick Strike")
}

func NewBanditKing() *Combatant {
	return newCombatant("Bandit King", ClassNone, 150, 12, 9, 7, "King's Roar")
}

func NewArchLich() *Combatant {
	return newCombatant("Arch-Lich", ClassNone, 200, 10, 15, 18, "Arcane Drain")
}

func newCombatant(name string, class Class, hp, str, agi, mag int, ability string) *Combatant {
	return &Combatant{
		Name:      name,
		Class:     class,
		MaxHP:     hp,
		CurrentHP: hp,
		Strength:  str,
		Agility:   agi,
		Magic:     mag,
		Ability:   ability,
	}
}

// ApplyDamage subtracts amount from CurrentHP, flooring at zero, and
// returns the post-damage HP. Callers check Alive immediately after every
// application so the killing blow is attributable.
func (c *Combatant) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	return c.CurrentHP
}

// Heal restores up to amount HP, capped at MaxHP, returning the amount
// actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := c.CurrentHP
	c.CurrentHP += amount
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}
	return c.CurrentHP - before
}

func (c *Combatant) Alive() bool {
	return c.CurrentHP > 0
}

func (c *Combatant) SetDefending(v bool) {
	c.IsDefending = v
}

// ConsumeDefend clears the defend flag and reports whether it was set.
// The flag lasts for exactly one incoming hit, landed or dodged.
func (c *Combatant) ConsumeDefend() bool {
	was := c.IsDefending
	c.IsDefending = false
	return was
}

func (c *Combatant) AbilityReady() bool {
	return c.AbilityCooldown == 0
}

func (c *Combatant) StartAbilityCooldown(turns int) {
	c.AbilityCooldown = turns
}

// TickCooldown advances the ability cooldown by one turn.
func (c *Combatant) TickCooldown() {
	if c.AbilityCooldown > 0 {
		c.AbilityCooldown--
	}
}

// StatLines renders the stat sheet shown by the free "stats" action.
func (c *Combatant) StatLines() []string {
	lines := []string{
		fmt.Sprintf("%s Stats", c.Name),
		fmt.Sprintf("  HP: %d/%d", c.CurrentHP, c.MaxHP),
		fmt.Sprintf("  Strength: %d", c.Strength),
		fmt.Sprintf("  Agility: %d", c.Agility),
		fmt.Sprintf("  Magic: %d", c.Magic),
		fmt.Sprintf("  Ability: %s", c.Ability),
	}
	if c.Artifact != "" {
		lines = append(lines, fmt.Sprintf("  Artifact: %s", c.Artifact))
	}
	return lines
}
