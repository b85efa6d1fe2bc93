package story

import "fmt"

// Ending identifies which of the three mutually exclusive endings was
// reached. EndingNone while the saga is still running or on defeat.
type Ending int

const (
	EndingNone Ending = iota
	EndingHeroic
	EndingAlliance
	EndingDarkLord
)

func endingLines(e Ending, hero string) []string {
	switch e {
	case EndingHeroic:
		return []string{
			"",
			"##################################################",
			"ENDING 1: HEROIC VICTORY!",
			fmt.Sprintf("%s, with blade and spell, you have slain the Arch-Lich and banished the darkness!", hero),
			"Eldoria is saved. Your name will be sung forevermore.",
			"##################################################",
		}
	case EndingAlliance:
		return []string{
			"",
			"##################################################",
			"ENDING 2: DIPLOMATIC ALLIANCE",
			fmt.Sprintf("%s, you convinced the Lich to cease its destructive magic and turn its power toward benign creation.", hero),
			"Eldoria enters an era of uneasy, but safe, peace.",
			"##################################################",
		}
	case EndingDarkLord:
		return []string{
			"",
			"##################################################",
			"ENDING 3: THE DARK LORD",
			fmt.Sprintf("%s... no, you are now the Arch-Vessel. You inherit the Lich's dark power,", hero),
			"turning Eldoria's pain into your own corrupt empire.",
			"The Saga of Eldoria ends, and the Age of Shadow begins.",
			"##################################################",
		}
	}
	return nil
}

func defeatLines(combatDeath bool, hero string) []string {
	if combatDeath {
		return []string{
			"",
			"==================================================",
			"FATALITY: Your strength fails you. The darkness consumes your last breath.",
			fmt.Sprintf("%s's Saga ends here.", hero),
			"==================================================",
		}
	}
	return []string{
		"",
		"==================================================",
		"FATE SEALED: A critical error in judgment has ended your journey.",
		fmt.Sprintf("%s's Saga ends here.", hero),
		"==================================================",
	}
}
