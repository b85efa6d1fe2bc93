package combat

// Stat model: pure functions mapping attributes to damage and chances.
// All chances are clamped to their caps and non-decreasing in the stat.

const (
	critBase       = 0.05
	critPerAgility = 0.03
	critCap        = 0.75

	dodgePerAgility = 0.02
	dodgeCap        = 0.50

	sneakCritBase = 0.20
)

// PhysicalDamage is a d6 multiplied by the attacker's Strength.
func PhysicalDamage(r Roller, strength int) int {
	return r.Roll(6) * strength
}

// AbilityPower scales a stat by the ability multiplier, truncating.
func AbilityPower(stat int, mult float64) int {
	return int(float64(stat) * mult)
}

// CritChance maps the attacker's Agility to the chance of a critical hit.
func CritChance(agility int) float64 {
	return clampChance(critBase+critPerAgility*float64(agility), critCap)
}

// SneakCritChance is the elevated crit chance of the Rogue's Sneak Attack.
func SneakCritChance(agility int) float64 {
	return clampChance(sneakCritBase+critPerAgility*float64(agility), critCap)
}

// DodgeChance maps the defender's Agility to the chance of negating a hit.
func DodgeChance(agility int) float64 {
	return clampChance(dodgePerAgility*float64(agility), dodgeCap)
}

func clampChance(c, limit float64) float64 {
	if c < 0 {
		return 0
	}
	if c > limit {
		return limit
	}
	return c
}
