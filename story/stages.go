package story

import (
	"fmt"

	"github.com/LKW000/The-Saga-of-Eldoria/combat"
	"github.com/LKW000/The-Saga-of-Eldoria/model"
)

func stage1Beats() []beatAny {
	return []beatAny{
		narrateBeat{
			"",
			"==================================================",
			"STAGE 1: THE HAUNTED FOREST",
			"You enter the dark, mist-shrouded forest. The air is cold and carries a faint scent of decay.",
		},
		fightBeat{enemy: model.NewMinorBandit(), policy: combat.BanditPolicy()},
		lootBeat{model.HealthPotion()},
		narrateBeat{
			"",
			"As you continue, you find a small, injured creature whimpering beneath a root. It looks frightened.",
		},
		chooseBeat{
			Prompt: "Do you help the injured creature?",
			Options: []Option{
				{Key: "a", Text: "Heal it and offer comfort (risking time and resources).", Apply: helpCreature},
				{Key: "b", Text: "Ignore it and continue on the path (safest choice).", Apply: func(*Driver) []string {
					return []string{"You shrug and walk past, focusing on your mission."}
				}},
			},
		},
	}
}

// helpCreature grants a random permanent +1 stat boost.
func helpCreature(d *Driver) []string {
	d.game.Flags[model.FlagHelpedCreature] = true
	switch d.roller.Roll(3) {
	case 1:
		d.game.Player.Strength++
		return []string{"The creature lets out a happy chirp and disappears. You feel a surge of gratitude: +1 Strength."}
	case 2:
		d.game.Player.Agility++
		return []string{"The creature licks your hand. You feel lighter on your feet: +1 Agility."}
	default:
		d.game.Player.Magic++
		return []string{"A strange, warm energy settles in your chest: +1 Magic."}
	}
}

func stage2Beats() []beatAny {
	return []beatAny{
		narrateBeat{
			"",
			"==================================================",
			"STAGE 2: THE BANDIT'S LAIR",
			"You track the bandits to a hidden cave. The air is stale and filled with the stench of unwashed bodies.",
		},
		fightBeat{enemy: model.NewBanditKing(), policy: combat.BanditKingPolicy()},
		lootBeat{model.ScrollOfProtection(), model.HealthPotion()},
		narrateBeat{
			"",
			"After defeating the Bandit King, you notice a cleverly concealed passage behind his throne.",
		},
		chooseBeat{
			Prompt: "Do you explore the hidden passage?",
			Options: []Option{
				{Key: "a", Text: "Enter the dark, hidden passage (risk for reward).", Apply: takePassage},
				{Key: "b", Text: "Continue on the main, safer path.", Apply: func(*Driver) []string {
					return []string{"You ignore the passage and continue to the exit, saving your strength."}
				}},
			},
		},
	}
}

// takePassage grants the class-matched legendary artifact.
func takePassage(d *Driver) []string {
	d.game.Flags[model.FlagFoundArtifact] = true
	var it model.Item
	if d.game.Player.Class == model.ClassMage {
		it = model.ArcaneFocus()
	} else {
		it = model.ElvenBlade()
	}
	d.game.Inventory.Add(it)
	return []string{
		"-=- Entering the passage -=-",
		fmt.Sprintf("--- LOOT FOUND --- You acquired the %s!", it.Name),
		"The passage collapses behind you. You must find your own way out, but you have gained a powerful artifact.",
	}
}

func stage3Beats() []beatAny {
	return []beatAny{
		narrateBeat{
			"",
			"==================================================",
			"STAGE 3: THE ENCHANTED CASTLE",
			"You arrive at the crumbling, magically warded castle. In the central courtyard, you find the source of Eldoria's torment.",
			"",
			"Before you stands the terrifying Arch-Lich, radiating raw, corrupting magic.",
		},
		chooseBeat{
			Prompt: "The Arch-Lich turns its hollow gaze upon you. What is your final action?",
			Options: []Option{
				{Key: "a", Text: "Draw your weapon and charge! (FIGHT)", Apply: chooseFight},
				{Key: "b", Text: "Attempt to bargain or reason with the creature. (DIPLOMACY)", Apply: chooseDiplomacy},
				{Key: "c", Text: "Accept its power and betray your cause. (CORRUPTION)", Apply: chooseCorruption},
			},
		},
	}
}

func chooseFight(d *Driver) []string {
	d.push(
		fightBeat{enemy: model.NewArchLich(), policy: combat.ArchLichPolicy()},
		endBeat(EndingHeroic),
	)
	return []string{"", "HEROIC PATH CHOSEN! You enter the battle to save Eldoria!"}
}

// chooseDiplomacy resolves the bargain path: a stat or artifact check
// forces the encounter's outcome without any HP depletion. The queued
// verdict beat reads the outcome back to select the ending.
func chooseDiplomacy(d *Driver) []string {
	lines := []string{"", "DIPLOMATIC PATH CHOSEN! You attempt to breach the Lich's magical defenses with words."}
	p := d.game.Player
	d.enc = combat.NewEncounter(p, model.NewArchLich(), combat.ArchLichPolicy(), d.game.Inventory, d.roller)
	d.push(verdictBeat{})
	if p.Magic >= 15 || p.Artifact == "Arcane Focus" {
		d.enc.ForceOutcome(combat.OutcomeAlliance)
		return append(lines, "The Lich pauses, a flicker of ancient memory in its eyes. Your words and power resonate...")
	}
	d.enc.ForceOutcome(combat.OutcomeLoss)
	return append(lines,
		"The Lich cackles! 'Your mind is too weak to penetrate my veil!'",
		"A wave of psychic force overwhelms you, your quest ending abruptly.")
}

// chooseCorruption resolves the betrayal path: only a hero desperate
// enough (below half HP) can be molded into a vessel.
func chooseCorruption(d *Driver) []string {
	lines := []string{"", "CORRUPTION PATH CHOSEN! You feel the seductive pull of the Lich's power."}
	p := d.game.Player
	d.enc = combat.NewEncounter(p, model.NewArchLich(), combat.ArchLichPolicy(), d.game.Inventory, d.roller)
	d.push(verdictBeat{})
	if p.CurrentHP*2 < p.MaxHP {
		d.game.Flags[model.FlagLowHPTrigger] = true
		d.enc.ForceOutcome(combat.OutcomeCorruption)
		return append(lines, "Weakened and desperate, you accept the Lich's dark gift.")
	}
	d.enc.ForceOutcome(combat.OutcomeLoss)
	return append(lines,
		"The Lich scoffs. 'You are not desperate enough. Your will is too strong to be fully molded.'",
		"It crushes your mind, deeming you an unsuitable vessel.")
}
