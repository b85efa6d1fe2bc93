package combat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LKW000/The-Saga-of-Eldoria/model"
)

// ErrAbilityNotReady is returned when the Magic action is taken while the
// class ability is still on cooldown. Recoverable: the caller re-prompts.
var ErrAbilityNotReady = errors.New("ability not ready")

// Action is one of the four combat commands chosen each turn.
type Action int

const (
	ActionAttack Action = iota
	ActionDefend
	ActionMagic
	ActionItem
)

// ParseAction maps a player token to an Action, case-insensitive.
func ParseAction(tok string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "attack":
		return ActionAttack, true
	case "defend":
		return ActionDefend, true
	case "magic":
		return ActionMagic, true
	case "item":
		return ActionItem, true
	}
	return 0, false
}

// Outcome is the terminal result of an encounter.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	// Special outcomes forced by the story without full HP depletion.
	OutcomeAlliance
	OutcomeCorruption
)

type phase int

const (
	phaseAwaitingPlayer phase = iota
	phaseResolvingPlayer
	phaseAwaitingEnemy
	phaseResolvingEnemy
	phaseCheckingTermination
	phaseTerminated
)

// Turns the class ability stays unavailable after use.
const abilityCooldownTurns = 2

// Report is the resolved result of one combat round: the narration lines
// to show, whether the player's action spent the turn, and the outcome if
// the encounter terminated during the round.
type Report struct {
	Lines     []string
	TurnSpent bool
	Outcome   Outcome
}

// Encounter runs one battle between the player and a scripted enemy. It is
// a synchronous request/response loop: one player action in, one resolved
// round out, repeated until termination.
type Encounter struct {
	Player *model.Combatant
	Enemy  *model.Combatant

	inv    *model.Inventory
	policy Policy
	roller Roller

	phase  phase
	result Outcome
	turn   int
}

func NewEncounter(player, enemy *model.Combatant, pol Policy, inv *model.Inventory, r Roller) *Encounter {
	return &Encounter{
		Player: player,
		Enemy:  enemy,
		inv:    inv,
		policy: pol,
		roller: r,
		turn:   1,
	}
}

func (e *Encounter) Done() bool {
	return e.phase == phaseTerminated
}

func (e *Encounter) Outcome() Outcome {
	return e.result
}

func (e *Encounter) Turn() int {
	return e.turn
}

// ForceOutcome terminates the encounter without HP depletion. Used by the
// story for the bargain and betrayal paths.
func (e *Encounter) ForceOutcome(o Outcome) {
	e.terminate(o)
}

func (e *Encounter) terminate(o Outcome) {
	e.result = o
	e.phase = phaseTerminated
}

// PlayerTurn applies the player's action, resolves the enemy's counter
// action and checks termination. Recoverable errors (ErrAbilityNotReady,
// model.ErrItemNotFound) leave all combat state untouched so the caller can
// re-prompt.
func (e *Encounter) PlayerTurn(a Action, arg string) (Report, error) {
	if e.phase != phaseAwaitingPlayer {
		return Report{Outcome: e.result}, nil
	}

	e.phase = phaseResolvingPlayer
	var rep Report
	switch a {
	case ActionAttack:
		res := e.resolveHit(hit{
			power:     e.Player.Strength,
			crit:      CritChance(e.Player.Agility),
			dodgeable: true,
		}, e.Player, e.Enemy)
		rep.Lines = append(rep.Lines, res.Lines...)

	case ActionDefend:
		e.Player.SetDefending(true)
		rep.Lines = append(rep.Lines,
			fmt.Sprintf("%s braces for the incoming attack. Damage will be reduced next turn.", e.Player.Name))

	case ActionMagic:
		if !e.Player.AbilityReady() {
			e.phase = phaseAwaitingPlayer
			return Report{}, fmt.Errorf("%s: %w", e.Player.Ability, ErrAbilityNotReady)
		}
		rep.Lines = append(rep.Lines, e.useAbility()...)
		e.Player.StartAbilityCooldown(abilityCooldownTurns)

	case ActionItem:
		msg, spent, err := e.inv.Use(arg, e.Player)
		if err != nil {
			e.phase = phaseAwaitingPlayer
			return Report{}, err
		}
		rep.Lines = append(rep.Lines, msg)
		if !spent {
			e.phase = phaseAwaitingPlayer
			return rep, nil
		}
	}
	rep.TurnSpent = true

	// Death is checked immediately after every damage application, so a
	// kill skips the enemy turn entirely.
	if !e.Enemy.Alive() {
		e.terminate(OutcomeWin)
		rep.Lines = append(rep.Lines, fmt.Sprintf("VICTORY! The %s has been defeated!", e.Enemy.Name))
		rep.Outcome = e.result
		return rep, nil
	}

	rep.Lines = append(rep.Lines, e.enemyTurn()...)
	if !e.Player.Alive() {
		e.terminate(OutcomeLoss)
		rep.Lines = append(rep.Lines, "You have fallen in battle.")
		rep.Outcome = e.result
		return rep, nil
	}

	e.phase = phaseCheckingTermination
	e.Player.TickCooldown()
	e.Enemy.TickCooldown()
	e.turn++
	e.phase = phaseAwaitingPlayer
	return rep, nil
}

func (e *Encounter) useAbility() []string {
	p := e.Player
	switch p.Class {
	case model.ClassMage:
		lines := []string{fmt.Sprintf("%s channels a powerful Arcane Bolt!", p.Name)}
		res := e.resolveHit(hit{
			power:     AbilityPower(p.Magic, 1.5),
			miss:      0.10,
			missLine:  "The Arcane Bolt fizzles! It misses the target!",
			crit:      CritChance(p.Agility),
			dodgeable: true,
			magical:   true,
		}, p, e.Enemy)
		return append(lines, res.Lines...)

	case model.ClassRogue:
		lines := []string{fmt.Sprintf("%s attempts a deadly Sneak Attack!", p.Name)}
		res := e.resolveHit(hit{
			power:     p.Strength,
			crit:      SneakCritChance(p.Agility),
			dodgeable: true,
		}, p, e.Enemy)
		return append(lines, res.Lines...)

	default: // Warrior
		lines := []string{fmt.Sprintf("%s slams forward with a Shield Bash!", p.Name)}
		p.SetDefending(true)
		res := e.resolveHit(hit{power: p.Strength, div: 2}, p, e.Enemy)
		lines = append(lines, res.Lines...)
		return append(lines, fmt.Sprintf("%s stays behind the shield, ready to defend.", p.Name))
	}
}

func (e *Encounter) enemyTurn() []string {
	e.phase = phaseAwaitingEnemy
	dec := e.policy.Choose(e.Enemy, e.Player, e.roller)
	e.phase = phaseResolvingEnemy

	lines := []string{fmt.Sprintf("--- %s's Turn ---", e.Enemy.Name)}
	switch dec.Action {
	case EnemyDefend:
		e.Enemy.SetDefending(true)
		lines = append(lines, fmt.Sprintf("%s falls back and guards against the next blow.", e.Enemy.Name))
	case EnemySpecial:
		lines = append(lines, dec.Special.Use(e)...)
	default:
		lines = append(lines, fmt.Sprintf("%s launches a vicious attack!", e.Enemy.Name))
		res := e.resolveHit(hit{
			power:     e.Enemy.Strength,
			crit:      CritChance(e.Enemy.Agility),
			dodgeable: true,
		}, e.Enemy, e.Player)
		lines = append(lines, res.Lines...)
	}
	return lines
}

// hit describes one attack for the resolution pipeline.
type hit struct {
	power     int     // stat multiplier applied to the die roll
	sides     int     // die sides, 0 means d6
	bonus     int     // flat add to the die roll
	div       int     // divisor applied to the product, 0 means 1
	miss      float64 // chance the attack never arrives
	missLine  string
	crit      float64 // chance to double damage, 0 disables the check
	dodgeable bool
	pierce    bool // skip the defend halving; the flag is still consumed
	magical   bool
}

// HitResult reports what one resolved attack did.
type HitResult struct {
	Damage int // damage actually applied, after all reductions
	Dodged bool
	Crit   bool
	Lines  []string
}

// resolveHit runs the full pipeline for a single attack: miss check, dodge
// check, base roll, crit doubling, weaken penalty, defend halving, shield
// absorb, then the HP application with an immediate death check.
func (e *Encounter) resolveHit(h hit, attacker, target *model.Combatant) HitResult {
	var res HitResult

	if h.miss > 0 && e.roller.Chance(h.miss) {
		line := h.missLine
		if line == "" {
			line = fmt.Sprintf("%s's attack goes wide!", attacker.Name)
		}
		res.Lines = append(res.Lines, line)
		return res
	}

	if h.dodgeable && e.roller.Chance(DodgeChance(target.Agility)) {
		target.ConsumeDefend()
		res.Dodged = true
		res.Lines = append(res.Lines, fmt.Sprintf("%s expertly dodged the attack!", target.Name))
		return res
	}

	sides := h.sides
	if sides == 0 {
		sides = 6
	}
	div := h.div
	if div == 0 {
		div = 1
	}
	dmg := (e.roller.Roll(sides) + h.bonus) * h.power / div

	if h.crit > 0 && e.roller.Chance(h.crit) {
		dmg *= 2
		res.Crit = true
		res.Lines = append(res.Lines, ">>> CRITICAL HIT! <<<")
	}

	if attacker.WeakenPenalty > 0 {
		dmg -= attacker.WeakenPenalty
		if dmg < 0 {
			dmg = 0
		}
		attacker.WeakenPenalty = 0
		res.Lines = append(res.Lines, fmt.Sprintf("%s is still shaken; the blow lands with less force.", attacker.Name))
	}

	if target.ConsumeDefend() && !h.pierce {
		dmg /= 2
		res.Lines = append(res.Lines, fmt.Sprintf("%s is defending and reduces the damage!", target.Name))
	}

	if target.TempShield > 0 {
		absorb := target.TempShield
		if absorb > dmg {
			absorb = dmg
		}
		dmg -= absorb
		target.TempShield = 0
		res.Lines = append(res.Lines, fmt.Sprintf("The protective aura absorbs %d damage!", absorb))
	}

	target.ApplyDamage(dmg)
	res.Damage = dmg
	kind := "physical"
	if h.magical {
		kind = "magic"
	}
	res.Lines = append(res.Lines,
		fmt.Sprintf("%s strikes %s for %d %s damage!", attacker.Name, target.Name, dmg, kind))
	return res
}
