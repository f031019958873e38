package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexmines/internal/config"
	"github.com/vovakirdan/hexmines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants and difficulties",
	Long:  `Shows the registered board variants and the available difficulty presets.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	boards := registry.List()

	if len(boards) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, b := range boards {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, b := range boards {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	for _, p := range config.Presets() {
		d := p.Density()
		fmt.Printf("  %-10s  1 mine per %d cells, score x%d\n", p, d.Den/d.Num, p.ScoreMultiplier())
	}

	fmt.Println()
	fmt.Println("Run 'hexmines play <id>' to play a board.")
}
