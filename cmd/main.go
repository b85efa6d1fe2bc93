package main

import (
	"fmt"

	"github.com/LKW000/The-Saga-of-Eldoria/combat"
	"github.com/LKW000/The-Saga-of-Eldoria/model"
	"github.com/LKW000/The-Saga-of-Eldoria/story"
	"github.com/LKW000/The-Saga-of-Eldoria/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	game := model.NewGame()
	driver := story.New(game, combat.NewRoller())
	m := ui.NewModel(driver)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
	}
}
