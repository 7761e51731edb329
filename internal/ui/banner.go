package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner returns the ASCII art banner for the application header
var Banner = []string{
	"  ____ ___  __  __ __  __ ___ _____     ____ _   _ _____ ____ _  __",
	" / ___/ _ \\|  \\/  |  \\/  |_ _|_   _|   / ___| | | | ____/ ___| |/ /",
	"| |  | | | | |\\/| | |\\/| || |  | |    | |   | |_| |  _|| |   | ' / ",
	"| |__| |_| | |  | | |  | || |  | |    | |___|  _  | |__| |___| . \\ ",
	" \\____\\___/|_|  |_|_|  |_|___| |_|     \\____|_| |_|_____\\____|_|\\_\\",
}

// RenderBanner returns the styled banner as a string
func RenderBanner(dryRun bool) string {
	bannerStyle := lipgloss.NewStyle().
		Foreground(ColorCyan).
		Align(lipgloss.Center)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	// Add dry run warning if enabled
	if dryRun {
		lines = append(lines, "")
		warningStyle := lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true).
			Align(lipgloss.Center)
		lines = append(lines, warningStyle.Render("⚠ DRY RUN MODE"))
	}

	return strings.Join(lines, "\n")
}
