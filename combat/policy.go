package combat

import (
	"fmt"

	"github.com/LKW000/The-Saga-of-Eldoria/model"
)

// EnemyAction is what the enemy does on its turn.
type EnemyAction int

const (
	EnemyAttack EnemyAction = iota
	EnemyDefend
	EnemySpecial
)

// Decision is the policy's choice for one enemy turn.
type Decision struct {
	Action  EnemyAction
	Special *Special
}

// Policy chooses the enemy's action each turn. Implementations may keep
// per-encounter state (cooldowns, last action).
type Policy interface {
	Choose(self, foe *model.Combatant, r Roller) Decision
}

// Special is a named enemy move outside the standard attack/defend pair.
type Special struct {
	Name string
	Use  func(e *Encounter) []string
}

// Scripted is the fixed enemy policy: defend when badly hurt (never twice
// in a row), use the special move on a cooldown, otherwise attack.
type Scripted struct {
	DefendBelow  float64 // fraction of MaxHP below which the enemy defends
	Special      *Special
	SpecialEvery int // enemy turns between special uses

	justDefended bool
	sinceSpecial int
}

func (p *Scripted) Choose(self, foe *model.Combatant, r Roller) Decision {
	if p.DefendBelow > 0 && !p.justDefended &&
		float64(self.CurrentHP) < p.DefendBelow*float64(self.MaxHP) {
		p.justDefended = true
		return Decision{Action: EnemyDefend}
	}
	p.justDefended = false

	if p.Special != nil && p.SpecialEvery > 0 {
		p.sinceSpecial++
		if p.sinceSpecial >= p.SpecialEvery {
			p.sinceSpecial = 0
			return Decision{Action: EnemySpecial, Special: p.Special}
		}
	}
	return Decision{Action: EnemyAttack}
}

// QuickStrike is the Minor Bandit's move: a weaker d4 hit that slips past
// the defend halving. The defend flag is still consumed by the hit.
func QuickStrike() *Special {
	return &Special{
		Name: "Quick Strike",
		Use: func(e *Encounter) []string {
			lines := []string{"The bandit attempts a swift, low-blow Quick Strike!"}
			res := e.resolveHit(hit{
				power:     e.Enemy.Strength,
				sides:     4,
				dodgeable: true,
				pierce:    true,
			}, e.Enemy, e.Player)
			lines = append(lines, res.Lines...)
			if !res.Dodged {
				lines = append(lines, "The Quick Strike slips past any guard!")
			}
			return lines
		},
	}
}

// KingsRoar is the Bandit King's move: weakens the player's next blow,
// then follows up with a standard attack.
func KingsRoar() *Special {
	return &Special{
		Name: "King's Roar",
		Use: func(e *Encounter) []string {
			lines := []string{
				"The Bandit King lets out a terrifying King's Roar, shaking your resolve!",
				"You are disoriented. Your next blow will land with less force.",
			}
			e.Player.WeakenPenalty = 5
			res := e.resolveHit(hit{
				power:     e.Enemy.Strength,
				crit:      CritChance(e.Enemy.Agility),
				dodgeable: true,
			}, e.Enemy, e.Player)
			return append(lines, res.Lines...)
		},
	}
}

// ArcaneDrain is the Arch-Lich's move: a heavy unavoidable magic hit that
// heals the Lich for half the damage dealt.
func ArcaneDrain() *Special {
	return &Special{
		Name: "Arcane Drain",
		Use: func(e *Encounter) []string {
			lines := []string{"The Arch-Lich whispers an ancient spell: Arcane Drain!"}
			res := e.resolveHit(hit{
				power:   e.Enemy.Magic,
				sides:   7,
				bonus:   3,
				magical: true,
			}, e.Enemy, e.Player)
			lines = append(lines, res.Lines...)
			if res.Damage > 0 {
				if healed := e.Enemy.Heal(res.Damage / 2); healed > 0 {
					lines = append(lines,
						fmt.Sprintf("The Arch-Lich drains your energy, healing itself for %d HP.", healed))
				}
			}
			return lines
		},
	}
}

// Per-enemy policies used by the story stages.

func BanditPolicy() Policy {
	return &Scripted{DefendBelow: 0.3, Special: QuickStrike(), SpecialEvery: 3}
}

func BanditKingPolicy() Policy {
	return &Scripted{DefendBelow: 0.3, Special: KingsRoar(), SpecialEvery: 3}
}

func ArchLichPolicy() Policy {
	return &Scripted{DefendBelow: 0.3, Special: ArcaneDrain(), SpecialEvery: 2}
}
