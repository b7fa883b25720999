package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"focustoday/internal/config"
	"focustoday/internal/goals"
	"focustoday/internal/storage"
	"focustoday/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the TUI, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "focustoday")
		if err != nil {
			fmt.Printf("failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := storage.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		fmt.Printf("failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Printf("opened %s store, config %s", cfg.DBDriver, configPath)

	mgr := goals.NewManager(storage.NewGoals(store), goals.WithDefaultSlots(cfg.DefaultGoals))
	if err := ui.Run(mgr, cfg); err != nil {
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
