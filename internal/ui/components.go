package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// MessageDiagram draws the four message fields as joined boxes
// Example: [feat]|[backend]|[20250129]|[description]
func MessageDiagram(typeToken, taskID, date string, hasDescription bool) string {
	typeStyle := lipgloss.NewStyle().Foreground(TypeColor(typeToken)).Bold(true)
	taskStyle := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)
	sepStyle := lipgloss.NewStyle().Foreground(ColorWhite)
	dimStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	typeText := typeToken
	if typeText == "" {
		typeText = "type"
	}
	taskText := taskID
	if taskText == "" {
		taskText = "taskid"
	}
	dateText := date
	if dateText == "" {
		dateText = "YYYYMMDD"
	}

	var descPart string
	if hasDescription {
		descPart = sepStyle.Render("description")
	} else {
		descPart = dimStyle.Render("description")
	}

	return "  " +
		typeStyle.Render(typeText) + sepStyle.Render("|") +
		taskStyle.Render(taskText) + sepStyle.Render("|") +
		dateStyle.Render(dateText) + sepStyle.Render("|") +
		descPart
}

// InputBox renders a single-line text input with a block cursor.
// placeholder is shown dimmed when value is empty.
func InputBox(value, placeholder string, color lipgloss.Color, width int) string {
	borderStyle := lipgloss.NewStyle().Foreground(color)
	cursorStyle := lipgloss.NewStyle().Foreground(color)

	var displayText string
	var textColor lipgloss.Color
	if value == "" {
		displayText = placeholder
		textColor = ColorDarkGray
	} else {
		displayText = value
		textColor = ColorWhite
	}
	textStyle := lipgloss.NewStyle().Foreground(textColor)

	top := borderStyle.Render("  ┌") + borderStyle.Render(strings.Repeat("─", width)) + borderStyle.Render("┐")
	middle := borderStyle.Render("  │ ") + textStyle.Render(displayText) + cursorStyle.Render("█")
	bottom := borderStyle.Render("  └") + borderStyle.Render(strings.Repeat("─", width)) + borderStyle.Render("┘")

	return top + "\n" + middle + "\n" + bottom
}

// CharCounter renders a "n/max" length indicator, colored by validity
func CharCounter(current, min, max int) string {
	var color lipgloss.Color
	if current >= min && current <= max {
		color = ColorGreen
	} else {
		color = ColorRed
	}
	style := lipgloss.NewStyle().Foreground(color)
	return style.Render(fmt.Sprintf("%d/%d", current, max))
}

// YesNoButtons creates interactive Yes/No buttons
// selection: 0 for Yes, 1 for No
func YesNoButtons(selection int) string {
	var yesBorder, yesText, yesIcon lipgloss.Color
	var noBorder, noText, noIcon lipgloss.Color

	if selection == 0 {
		yesBorder = ColorGreen
		yesText = ColorGreen
		yesIcon = ColorGreen
	} else {
		yesBorder = ColorDarkGray
		yesText = ColorWhite
		yesIcon = ColorDarkGray
	}

	if selection == 1 {
		noBorder = ColorRed
		noText = ColorRed
		noIcon = ColorRed
	} else {
		noBorder = ColorDarkGray
		noText = ColorWhite
		noIcon = ColorDarkGray
	}

	yesStyle := lipgloss.NewStyle().Foreground(yesBorder)
	yesTextStyle := lipgloss.NewStyle().Foreground(yesText).Bold(true)
	yesIconStyle := lipgloss.NewStyle().Foreground(yesIcon)

	noStyle := lipgloss.NewStyle().Foreground(noBorder)
	noTextStyle := lipgloss.NewStyle().Foreground(noText).Bold(true)
	noIconStyle := lipgloss.NewStyle().Foreground(noIcon)

	var iconYes, iconNo string
	if selection == 0 {
		iconYes = ">"
	} else {
		iconYes = " "
	}
	if selection == 1 {
		iconNo = ">"
	} else {
		iconNo = " "
	}

	line1 := yesStyle.Render("  ┌────────┐") + " " + noStyle.Render("┌───────┐")
	line2 := fmt.Sprintf("%s%s%s %s%s%s",
		yesStyle.Render("  │"),
		yesTextStyle.Render(fmt.Sprintf(" %s  YES ", yesIconStyle.Render(iconYes))),
		yesStyle.Render("│"),
		noStyle.Render("│"),
		noTextStyle.Render(fmt.Sprintf(" %s  NO ", noIconStyle.Render(iconNo))),
		noStyle.Render("│"),
	)
	line3 := yesStyle.Render("  └────────┘") + " " + noStyle.Render("└───────┘")

	return line1 + "\n" + line2 + "\n" + line3
}

// Spinner frames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// StatusIcon returns the appropriate status icon and color
func StatusIcon(status string) (string, lipgloss.Color) {
	switch status {
	case "accepted", "success":
		return "✓", ColorGreen
	case "special":
		return "⊘", ColorYellow
	case "rejected", "error":
		return "✗", ColorRed
	case "loading":
		return "⏳", ColorYellow
	default:
		return "·", ColorWhite
	}
}

// max returns the maximum of two integers
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MenuRow renders a menu row with optional highlight background
// width should be the inner width of the panel (excluding border)
func MenuRow(icon, title, desc string, color lipgloss.Color, selected bool, width int) []string {
	arrow := "  "
	if selected {
		arrow = "▶ "
	}

	if selected {
		// For selected items, render the whole line with background
		rowStyle := lipgloss.NewStyle().Background(ColorDarkGray).Width(width)
		arrowStyle := lipgloss.NewStyle().Foreground(color).Background(ColorDarkGray)
		iconStyle := lipgloss.NewStyle().Background(ColorDarkGray)
		titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Background(ColorDarkGray)
		descStyle := lipgloss.NewStyle().Foreground(ColorWhite).Background(ColorDarkGray)

		line1 := rowStyle.Render(arrowStyle.Render(arrow) + iconStyle.Render(icon+"  ") + titleStyle.Render(title))
		line2 := rowStyle.Render("       " + descStyle.Render(desc))

		return []string{line1, line2}
	}

	// Non-selected items - no background
	arrowStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	line1 := arrowStyle.Render(arrow) + icon + "  " + titleStyle.Render(title)
	line2 := "       " + descStyle.Render(desc)

	return []string{line1, line2}
}

// UnifiedPanel creates two columns with a vertical separator (no border - outer border is in View)
func UnifiedPanel(leftContent, rightContent string, leftWidth, rightWidth int, borderColor lipgloss.Color) string {
	leftStyle := lipgloss.NewStyle().Width(leftWidth).Padding(0, 1)
	rightStyle := lipgloss.NewStyle().Width(rightWidth).Padding(0, 1)

	leftCol := leftStyle.Render(leftContent)
	rightCol := rightStyle.Render(rightContent)

	// Build vertical separator to match column height
	separatorStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	separator := separatorStyle.Render("│")

	leftLines := strings.Split(leftCol, "\n")
	rightLines := strings.Split(rightCol, "\n")
	maxLines := len(leftLines)
	if len(rightLines) > maxLines {
		maxLines = len(rightLines)
	}
	var sepLines []string
	for i := 0; i < maxLines; i++ {
		sepLines = append(sepLines, separator)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, leftCol, strings.Join(sepLines, "\n"), rightCol)
}

// MenuInfoPanel returns the description panel for a main menu item
func MenuInfoPanel(index int) (title string, lines []string) {
	switch index {
	case 0: // Compose commit
		title = "Compose Commit"
		box := lipgloss.NewStyle().Foreground(ColorCyan)
		text := lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
		lines = []string{
			"",
			box.Render("   ┌──────────────────────┐"),
			box.Render("   │") + text.Render(" type|task|date|desc  ") + box.Render("│"),
			box.Render("   └──────────────────────┘"),
			"",
			"  • Pick a type from the menu",
			"  • Enter task id and description",
			"  • Each field checked as you go",
			"  • Runs git commit on confirm",
		}
	case 1: // Create branch
		title = "Create Branch"
		box := lipgloss.NewStyle().Foreground(ColorMagenta)
		text := lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)
		lines = []string{
			"",
			box.Render("   ┌──────────────┐"),
			box.Render("   │") + text.Render(" feat/task-id ") + box.Render("│"),
			box.Render("   └──────────────┘"),
			"",
			"  • Same type and task id rules",
			"  • Runs git checkout -b",
		}
	case 2: // Check HEAD
		title = "Check HEAD"
		ok := lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
		lines = []string{
			"",
			"  " + ok.Render("✓") + " validate the last commit",
			"",
			"  • Same verdict as the hook and CI",
			"  • Merge/revert/fixup/squash pass",
		}
	case 3: // Install hook
		title = "Install Hook"
		lines = []string{
			"",
			"  Writes .git/hooks/commit-msg",
			"",
			"  • Every commit is checked locally",
			"  • Never touches a foreign hook",
		}
	default: // Quit
		title = "Quit"
		lines = []string{
			"",
			"  Exit the application",
		}
	}
	return title, lines
}
