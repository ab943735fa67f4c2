package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glimmer/internal/registry"
	"github.com/vovakirdan/glimmer/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game variants",
	Long:  `Shows every registered glimmer variant with its best recorded score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()
	if len(variants) == 0 {
		fmt.Println("No variants registered.")
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("run database unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	width := len("ID")
	for _, v := range variants {
		width = max(width, len(v.ID))
	}

	fmt.Printf("  %-*s  %-18s  %s\n", width, "ID", "Title", "Best")
	for _, v := range variants {
		best := "-"
		if store != nil {
			if high, err := store.HighScore(v.ID); err == nil && high > 0 {
				best = fmt.Sprintf("%03d", high)
			}
		}
		fmt.Printf("  %-*s  %-18s  %s\n", width, v.ID, v.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'glimmer play <id>' to start a variant.")
}
