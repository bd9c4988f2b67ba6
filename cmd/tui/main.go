package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"hobbyhub/internal/board"
	"hobbyhub/internal/config"
	"hobbyhub/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	p := tea.NewProgram(tui.New(board.New(), cfg.SiteTitle), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
