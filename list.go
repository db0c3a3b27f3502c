package main

import (
	"fmt"

	"github.com/automoto/sketchbook/config"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available demos",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	fmt.Println("Available demos:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, d := range config.Demos {
		if len(d) > maxIDLen {
			maxIDLen = len(d)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, d := range config.Demos {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d, d.Title())
	}

	fmt.Println()
	fmt.Println("Run 'sketchbook --demo <id>' to start a demo.")
}
