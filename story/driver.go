// Package story sequences the stages of the saga: narration, branching
// choices, encounters and the three endings. It owns the run state and is
// the only consumer of the combat engine.
package story

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LKW000/The-Saga-of-Eldoria/combat"
	"github.com/LKW000/The-Saga-of-Eldoria/model"
)

// ConfusionLine is the fixed response to any unrecognized command. The
// prompt is re-issued and no state is mutated.
const ConfusionLine = "A moment of confusion, adventurer. That command is not understood."

// Mode tells the UI what kind of input the driver is waiting for.
type Mode int

const (
	ModeName Mode = iota
	ModeClass
	ModeChoice
	ModeCombat
	ModeItem
	ModeEnded
)

// Choice is a branching decision point with a closed set of options.
type Choice struct {
	Prompt  string
	Options []Option
}

// Option is one branch of a Choice. Apply mutates run state and may queue
// further beats; it returns narration lines.
type Option struct {
	Key   string
	Text  string
	Apply func(d *Driver) []string
}

// Beats are the units of story progression. Narration and loot flush
// through; choices, fights and endings stop and wait for input.
type (
	narrateBeat []string
	lootBeat    []model.Item
	applyBeat   func(d *Driver) []string
	chooseBeat  Choice
	fightBeat   struct {
		enemy  *model.Combatant
		policy combat.Policy
	}
	endBeat    Ending
	defeatBeat struct{ combatDeath bool }
	// verdictBeat settles an encounter whose outcome was forced without HP
	// depletion; the ending is read from the encounter the driver holds.
	verdictBeat struct{}
)

// Driver advances the saga one submitted token at a time. It blocks for
// nothing itself; the UI feeds it input and drains its output.
type Driver struct {
	game     *model.Game
	roller   combat.Roller
	mode     Mode
	out      []string
	queue    []beatAny
	choice   *Choice
	enc      *combat.Encounter
	heroName string
	ending   Ending
	defeated bool
}

type beatAny interface{}

func New(g *model.Game, r combat.Roller) *Driver {
	d := &Driver{game: g, roller: r, mode: ModeName}
	d.say("Welcome to The Saga of Eldoria!")
	return d
}

func (d *Driver) Mode() Mode        { return d.mode }
func (d *Driver) Ending() Ending    { return d.ending }
func (d *Driver) Defeated() bool    { return d.defeated }
func (d *Driver) Game() *model.Game { return d.game }

func (d *Driver) InCombat() bool {
	return d.mode == ModeCombat || d.mode == ModeItem
}

// Output drains the pending narration lines.
func (d *Driver) Output() []string {
	o := d.out
	d.out = nil
	return o
}

// StatusLine is the HP readout shown while an encounter is running.
func (d *Driver) StatusLine() string {
	if d.enc == nil {
		return ""
	}
	p, e := d.enc.Player, d.enc.Enemy
	return fmt.Sprintf("%s HP: %d/%d  |  %s HP: %d/%d",
		p.Name, p.CurrentHP, p.MaxHP, e.Name, e.CurrentHP, e.MaxHP)
}

// Prompt is the text for the current input request.
func (d *Driver) Prompt() string {
	switch d.mode {
	case ModeName:
		return "Enter your hero's name:"
	case ModeClass:
		return "Enter W, M, or R:"
	case ModeChoice:
		keys := make([]string, len(d.choice.Options))
		for i, o := range d.choice.Options {
			keys[i] = strings.ToUpper(o.Key)
		}
		return fmt.Sprintf("Your choice (%s):", strings.Join(keys, "/"))
	case ModeCombat:
		return fmt.Sprintf("Choose your action (Attack, Defend, Magic [%s], Item, Stats):", d.game.Player.Ability)
	case ModeItem:
		return "Use which item? (Type 'cancel' to return):"
	}
	return ""
}

// Submit feeds one input token to the driver. Unrecognized tokens emit
// ConfusionLine and mutate nothing.
func (d *Driver) Submit(input string) {
	tok := strings.TrimSpace(input)
	switch d.mode {
	case ModeName:
		d.submitName(tok)
	case ModeClass:
		d.submitClass(tok)
	case ModeChoice:
		d.submitChoice(tok)
	case ModeCombat:
		d.submitCombat(tok)
	case ModeItem:
		d.submitItem(tok)
	case ModeEnded:
	}
}

func (d *Driver) say(lines ...string) {
	d.out = append(d.out, lines...)
}

func (d *Driver) push(beats ...beatAny) {
	d.queue = append(d.queue, beats...)
}

func (d *Driver) submitName(tok string) {
	if tok == "" {
		d.say(ConfusionLine)
		return
	}
	d.heroName = tok
	d.mode = ModeClass
	d.say("",
		"Choose your class:",
		"  [W]arrior: High STR, moderate AGI, low MAG. Ability: Shield Bash.",
		"  [M]age: Low STR, moderate AGI, high MAG. Ability: Arcane Bolt.",
		"  [R]ogue: Moderate STR, high AGI, low MAG. Ability: Sneak Attack.")
}

func (d *Driver) submitClass(tok string) {
	var class model.Class
	switch strings.ToLower(tok) {
	case "w", "warrior":
		class = model.ClassWarrior
	case "m", "mage":
		class = model.ClassMage
	case "r", "rogue":
		class = model.ClassRogue
	default:
		d.say(ConfusionLine)
		return
	}
	d.game.CreateHero(d.heroName, class)
	d.say("", fmt.Sprintf("Welcome, %s the %s!", d.game.Player.Name, class))
	d.say(d.game.Player.StatLines()...)
	d.advance()
}

func (d *Driver) submitChoice(tok string) {
	for _, o := range d.choice.Options {
		if strings.EqualFold(tok, o.Key) {
			d.choice = nil
			d.say(o.Apply(d)...)
			d.advance()
			return
		}
	}
	d.say(ConfusionLine)
}

func (d *Driver) submitCombat(tok string) {
	if strings.EqualFold(tok, "stats") {
		d.say(d.game.Player.StatLines()...)
		return
	}
	act, ok := combat.ParseAction(tok)
	if !ok {
		d.say(ConfusionLine)
		return
	}
	if act == combat.ActionItem {
		if d.game.Inventory.Empty() {
			d.say("Your inventory is empty, adventurer.")
			return
		}
		d.mode = ModeItem
		d.say(fmt.Sprintf("--- Inventory: %s ---", strings.Join(d.game.Inventory.Names(), ", ")))
		return
	}
	d.resolveCombat(act, "")
}

func (d *Driver) submitItem(tok string) {
	if strings.EqualFold(tok, "cancel") {
		d.say("Action cancelled.")
		d.mode = ModeCombat
		return
	}
	d.resolveCombat(combat.ActionItem, tok)
}

func (d *Driver) resolveCombat(act combat.Action, arg string) {
	rep, err := d.enc.PlayerTurn(act, arg)
	switch {
	case errors.Is(err, combat.ErrAbilityNotReady):
		d.say(fmt.Sprintf("Your %s is still recovering. Choose another action.", d.game.Player.Ability))
		return
	case errors.Is(err, model.ErrItemNotFound):
		d.say(ConfusionLine)
		return
	case err != nil:
		d.say(ConfusionLine)
		return
	}
	d.say(rep.Lines...)
	if !rep.TurnSpent {
		return
	}
	if d.enc.Done() {
		out := d.enc.Outcome()
		d.enc = nil
		if out == combat.OutcomeLoss {
			d.queue = nil
			d.push(defeatBeat{combatDeath: true})
		}
		d.advance()
		return
	}
	d.mode = ModeCombat
}

// advance pops beats until one needs input or the saga ends.
func (d *Driver) advance() {
	for {
		if len(d.queue) == 0 {
			if !d.nextStage() {
				d.mode = ModeEnded
				return
			}
		}
		b := d.queue[0]
		d.queue = d.queue[1:]
		switch b := b.(type) {
		case narrateBeat:
			d.say(b...)
		case lootBeat:
			for _, it := range b {
				d.game.Inventory.Add(it)
				d.say(fmt.Sprintf("--- LOOT FOUND --- You acquired the %s!", it.Name))
			}
		case applyBeat:
			d.say(b(d)...)
		case chooseBeat:
			c := Choice(b)
			d.choice = &c
			d.say("", c.Prompt)
			for _, o := range c.Options {
				d.say(fmt.Sprintf("  [%s]: %s", strings.ToUpper(o.Key), o.Text))
			}
			d.mode = ModeChoice
			return
		case fightBeat:
			d.enc = combat.NewEncounter(d.game.Player, b.enemy, b.policy, d.game.Inventory, d.roller)
			d.say("",
				"======================================",
				fmt.Sprintf("A fierce battle begins against the %s!", b.enemy.Name),
				"======================================")
			d.mode = ModeCombat
			return
		case endBeat:
			d.ending = Ending(b)
			d.say(endingLines(d.ending, d.game.Player.Name)...)
			d.mode = ModeEnded
			return
		case defeatBeat:
			d.defeated = true
			d.say(defeatLines(b.combatDeath, d.game.Player.Name)...)
			d.mode = ModeEnded
			return
		case verdictBeat:
			out := d.enc.Outcome()
			d.enc = nil
			switch out {
			case combat.OutcomeAlliance:
				d.ending = EndingAlliance
			case combat.OutcomeCorruption:
				d.ending = EndingDarkLord
			default:
				d.defeated = true
				d.say(defeatLines(false, d.game.Player.Name)...)
				d.mode = ModeEnded
				return
			}
			d.say(endingLines(d.ending, d.game.Player.Name)...)
			d.mode = ModeEnded
			return
		}
	}
}

func (d *Driver) nextStage() bool {
	switch d.game.Stage {
	case 0:
		d.game.Stage = 1
		d.push(stage1Beats()...)
	case 1:
		d.game.Stage = 2
		d.push(stage2Beats()...)
	case 2:
		d.game.Stage = 3
		d.push(stage3Beats()...)
	default:
		return false
	}
	return true
}
