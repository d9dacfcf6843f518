package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/krotovic/stardrift/internal/registry"
)

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true)
	listIDStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	listHintStyle   = lipgloss.NewStyle().Faint(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available views",
	Long:  `Shows every view that can be passed to 'stardrift play'.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	infos := registry.List()

	if len(infos) == 0 {
		fmt.Println("No views available.")
		return
	}

	fmt.Println(listHeaderStyle.Render("Available views:"))
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, info := range infos {
		fmt.Printf("  %s  %s\n", listIDStyle.Render(fmt.Sprintf("%-*s", maxIDLen, info.ID)), info.Title)
	}

	fmt.Println()
	fmt.Println(listHintStyle.Render("Run 'stardrift play <id>' to start at a view."))
}
