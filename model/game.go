package model

// Flags set by story choices.
const (
	FlagHelpedCreature = "helped_creature"
	FlagFoundArtifact  = "found_artifact"
	FlagLowHPTrigger   = "low_hp_trigger"
)

// Game holds the state of a single playthrough: the hero, the inventory,
// the current stage and the flags set by prior choices. Discarded at game
// end; nothing persists across runs.
type Game struct {
	Player    *Combatant
	Inventory *Inventory
	Stage     int
	Flags     map[string]bool
}

func NewGame() *Game {
	return &Game{
		Inventory: NewInventory(),
		Flags:     make(map[string]bool),
	}
}

// CreateHero builds the player from the chosen class template and grants
// the starting inventory.
func (g *Game) CreateHero(name string, class Class) {
	switch class {
	case ClassMage:
		g.Player = NewMage(name)
	case ClassRogue:
		g.Player = NewRogue(name)
	default:
		g.Player = NewWarrior(name)
	}
	g.Inventory.Add(HealthPotion())
	g.Inventory.Add(ScrollOfProtection())
}
