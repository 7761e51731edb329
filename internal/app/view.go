package app

import (
	"fmt"
	"math"
	"strings"

	"github.com/wahlandcase/attuned.commitcheck/internal/commitmsg"
	"github.com/wahlandcase/attuned.commitcheck/internal/ui"
	"github.com/wahlandcase/attuned.commitcheck/internal/update"

	"github.com/charmbracelet/lipgloss"
)

// contentWidth returns the usable content width, adapting to terminal size
func (m Model) contentWidth() int {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	var sections []string

	// Banner
	sections = append(sections, ui.RenderBanner(m.dryRun))
	sections = append(sections, "")

	contentWidth := m.contentWidth()

	outerBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorPurple).
		Width(contentWidth).
		Padding(1, 2)

	sections = append(sections, outerBox.Render(m.renderContent()))

	// Status bar
	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	content := strings.Join(sections, "\n")

	// Center horizontally in the terminal
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m Model) renderContent() string {
	switch m.screen {
	case ScreenMainMenu:
		return m.renderMainMenu()
	case ScreenTypeSelect:
		return m.renderTypeSelect()
	case ScreenTaskIDInput:
		return m.renderTaskIDInput()
	case ScreenDescriptionInput:
		return m.renderDescriptionInput()
	case ScreenConfirmation:
		return m.renderConfirmation()
	case ScreenCommitting:
		return m.renderCommitting()
	case ScreenComplete:
		return m.renderComplete()
	case ScreenError:
		return m.renderError()
	case ScreenHeadCheck:
		return m.renderHeadCheck()
	case ScreenSessionHistory:
		return m.renderSessionHistory()
	case ScreenUpdatePrompt:
		return m.renderUpdatePrompt()
	case ScreenUpdating:
		return m.renderUpdating()
	default:
		return ""
	}
}

func (m Model) renderMainMenu() string {
	hookTitle := "INSTALL HOOK"
	hookDesc := "Add the commit-msg gate to this repo"
	if m.hookInstalled {
		hookTitle = "REMOVE HOOK"
		hookDesc = "Remove the commit-msg gate"
	}

	menuItems := []struct {
		icon  string
		title string
		desc  string
		color lipgloss.Color
	}{
		{"1.", "COMPOSE COMMIT", "Build a compliant commit message", ui.ColorCyan},
		{"2.", "CREATE BRANCH", "Build a compliant branch name", ui.ColorMagenta},
		{"3.", "CHECK HEAD", "Validate the last commit message", ui.ColorYellow},
		{"4.", hookTitle, hookDesc, ui.ColorOrange},
		{"5.", "QUIT", "Exit application", ui.ColorRed},
	}

	// Build left column (menu) content
	var menuLines []string
	menuLines = append(menuLines, "")
	for i, item := range menuItems {
		rows := ui.MenuRow(item.icon, item.title, item.desc, item.color, i == m.menuIndex, 46)
		menuLines = append(menuLines, rows...)
		menuLines = append(menuLines, "")
	}

	menuTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorOrange)
	menuContent := menuTitleStyle.Render(" Select Action ") + "\n" + strings.Join(menuLines, "\n")

	// Build right column (info panel)
	infoTitle, infoLines := ui.MenuInfoPanel(m.menuIndex)

	// Repo context at the bottom of the info panel
	infoLines = append(infoLines, "")
	infoLines = append(infoLines, ui.SectionHeader("REPO", ui.ColorCyan))
	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	valueStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	if m.repoInfo != nil {
		infoLines = append(infoLines, labelStyle.Render("  Repo:   ")+valueStyle.Render(m.repoInfo.DisplayName))
		infoLines = append(infoLines, labelStyle.Render("  Branch: ")+valueStyle.Render(m.repoInfo.CurrentBranch))
		hookStatus := "not installed"
		hookColor := ui.ColorDarkGray
		if m.hookInstalled {
			hookStatus = "installed"
			hookColor = ui.ColorGreen
		}
		hookStyle := lipgloss.NewStyle().Foreground(hookColor)
		infoLines = append(infoLines, labelStyle.Render("  Hook:   ")+hookStyle.Render(hookStatus))
	} else {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		infoLines = append(infoLines, dimStyle.Render("  "+m.repoErrText()))
	}

	if m.hookFeedback != "" {
		feedbackStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
		infoLines = append(infoLines, "")
		infoLines = append(infoLines, feedbackStyle.Render("  ✓ "+m.hookFeedback))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorWhite)
	infoContent := titleStyle.Render(" "+infoTitle+" ") + "\n" + strings.Join(infoLines, "\n")

	return ui.UnifiedPanel(menuContent, infoContent, 48, 48, ui.ColorCyan)
}

func (m Model) renderTypeSelect() string {
	types := commitmsg.AllTypes()

	var menuLines []string
	menuLines = append(menuLines, "")

	for i, t := range types {
		isSelected := i == m.typeIndex
		arrow := "  "
		if isSelected {
			arrow = "▶ "
		}
		num := fmt.Sprintf("%d.", i+1)
		color := ui.TypeColor(t.Token())

		var line string
		if isSelected {
			rowStyle := lipgloss.NewStyle().Background(ui.ColorDarkGray).Width(46)
			arrowStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Background(ui.ColorDarkGray)
			numStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true).Background(ui.ColorDarkGray)
			tokenStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Background(ui.ColorDarkGray)
			descStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite).Background(ui.ColorDarkGray)
			bgStyle := lipgloss.NewStyle().Background(ui.ColorDarkGray)

			line = rowStyle.Render(arrowStyle.Render(arrow) + numStyle.Render(num) + bgStyle.Render(" ") +
				tokenStyle.Render(fmt.Sprintf("%-9s", t.Token())) + descStyle.Render(t.Description()))
		} else {
			arrowStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
			numStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
			tokenStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
			descStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)

			line = arrowStyle.Render(arrow) + numStyle.Render(num) + " " +
				tokenStyle.Render(fmt.Sprintf("%-9s", t.Token())) + descStyle.Render(t.Description())
		}

		menuLines = append(menuLines, line)
	}
	menuLines = append(menuLines, "")

	panelTitle := " Select Type "
	if m.mode == ModeBranch {
		panelTitle = " Select Type (branch) "
	}

	menuTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	menuContent := menuTitleStyle.Render(panelTitle) + "\n" + strings.Join(menuLines, "\n")

	// Right column shows what the result will look like
	var infoLines []string
	infoLines = append(infoLines, "")
	infoLines = append(infoLines, ui.SectionHeader("PREVIEW", ui.ColorMagenta))
	infoLines = append(infoLines, "")

	token := types[m.typeIndex].Token()
	if m.mode == ModeBranch {
		branchStyle := lipgloss.NewStyle().Foreground(ui.TypeColor(token)).Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		infoLines = append(infoLines, "  "+branchStyle.Render(token)+dimStyle.Render("/taskid"))
	} else {
		infoLines = append(infoLines, ui.MessageDiagram(token, "", "", false))
	}
	infoLines = append(infoLines, "")
	descStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	infoLines = append(infoLines, descStyle.Render("  "+types[m.typeIndex].Description()))

	rightTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorMagenta)
	infoContent := rightTitleStyle.Render(" Preview ") + "\n" + strings.Join(infoLines, "\n")

	return ui.UnifiedPanel(menuContent, infoContent, 48, 48, ui.ColorCyan)
}

func (m Model) renderTaskIDInput() string {
	var leftLines []string
	leftLines = append(leftLines, "")

	token := ""
	if m.commitType != nil {
		token = m.commitType.Token()
	}

	if m.mode == ModeBranch {
		branchStyle := lipgloss.NewStyle().Foreground(ui.TypeColor(token)).Bold(true)
		taskStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		taskText := m.taskID
		if taskText == "" {
			taskText = "taskid"
			leftLines = append(leftLines, "  "+branchStyle.Render(token)+dimStyle.Render("/"+taskText))
		} else {
			leftLines = append(leftLines, "  "+branchStyle.Render(token)+dimStyle.Render("/")+taskStyle.Render(taskText))
		}
	} else {
		leftLines = append(leftLines, ui.MessageDiagram(token, m.taskID, "", false))
	}
	leftLines = append(leftLines, "")

	leftLines = append(leftLines, ui.SectionHeader("ENTER TASK ID", ui.ColorYellow))
	leftLines = append(leftLines, "")
	leftLines = append(leftLines, ui.InputBox(m.taskID, "e.g. backend-auth", ui.ColorYellow, 38))
	leftLines = append(leftLines, "")

	if m.fieldHint != "" {
		errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
		leftLines = append(leftLines, errStyle.Render("  ✗ "+m.fieldHint))
		leftLines = append(leftLines, "")
	}

	leftLines = append(leftLines, m.inputHints()...)

	leftTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorYellow)
	leftContent := leftTitleStyle.Render(" Task ID ") + "\n" + strings.Join(leftLines, "\n")

	// Right column: rules
	var rightLines []string
	rightLines = append(rightLines, "")
	rightLines = append(rightLines, ui.SectionHeader("RULES", ui.ColorMagenta))
	rightLines = append(rightLines, "")
	ruleStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	rightLines = append(rightLines, ruleStyle.Render("  • Letters, digits, hyphens"))
	rightLines = append(rightLines, ruleStyle.Render("  • At least one character"))
	rightLines = append(rightLines, ruleStyle.Render("  • No spaces, dots, underscores"))

	rightTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorMagenta)
	rightContent := rightTitleStyle.Render(" Rules ") + "\n" + strings.Join(rightLines, "\n")

	return ui.UnifiedPanel(leftContent, rightContent, 60, 35, ui.ColorYellow)
}

func (m Model) renderDescriptionInput() string {
	var leftLines []string
	leftLines = append(leftLines, "")

	token := ""
	if m.commitType != nil {
		token = m.commitType.Token()
	}
	leftLines = append(leftLines, ui.MessageDiagram(token, m.taskID, commitmsg.DateToken(m.config.Now()), len(m.description) > 0))
	leftLines = append(leftLines, "")

	leftLines = append(leftLines, ui.SectionHeader("ENTER DESCRIPTION", ui.ColorCyan))
	leftLines = append(leftLines, "")
	leftLines = append(leftLines, ui.InputBox(m.description, "what does this commit do", ui.ColorCyan, 38))
	leftLines = append(leftLines, "  "+ui.CharCounter(len(m.description), 5, 100))
	leftLines = append(leftLines, "")

	if m.fieldHint != "" {
		errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
		leftLines = append(leftLines, errStyle.Render("  ✗ "+m.fieldHint))
		leftLines = append(leftLines, "")
	}

	leftLines = append(leftLines, m.inputHints()...)

	leftTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	leftContent := leftTitleStyle.Render(" Description ") + "\n" + strings.Join(leftLines, "\n")

	var rightLines []string
	rightLines = append(rightLines, "")
	rightLines = append(rightLines, ui.SectionHeader("RULES", ui.ColorMagenta))
	rightLines = append(rightLines, "")
	ruleStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	rightLines = append(rightLines, ruleStyle.Render("  • 5 to 100 characters"))
	rightLines = append(rightLines, ruleStyle.Render("  • Letters, digits, spaces"))
	rightLines = append(rightLines, ruleStyle.Render("  • Punctuation: . , ! ? -"))
	rightLines = append(rightLines, ruleStyle.Render("  • ASCII only, no emoji"))

	rightTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorMagenta)
	rightContent := rightTitleStyle.Render(" Rules ") + "\n" + strings.Join(rightLines, "\n")

	return ui.UnifiedPanel(leftContent, rightContent, 60, 35, ui.ColorCyan)
}

func (m Model) inputHints() []string {
	hintStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	enterStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
	escStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow).Bold(true)
	return []string{
		hintStyle.Render("  Press ") + enterStyle.Render("Enter") + hintStyle.Render(" to continue"),
		hintStyle.Render("  ") + escStyle.Render("Esc") + hintStyle.Render(" to go back"),
	}
}

func (m Model) renderConfirmation() string {
	var leftLines []string
	leftLines = append(leftLines, "")

	if m.mode == ModeBranch {
		leftLines = append(leftLines, ui.SectionHeader("BRANCH NAME", ui.ColorCyan))
		leftLines = append(leftLines, "")
		branchStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
		leftLines = append(leftLines, "  "+branchStyle.Render(m.branchName))
	} else {
		leftLines = append(leftLines, ui.SectionHeader("COMMIT MESSAGE", ui.ColorCyan))
		leftLines = append(leftLines, "")
		msgStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite).Bold(true)
		leftLines = append(leftLines, "  "+msgStyle.Render(m.message))
	}
	leftLines = append(leftLines, "")

	// Every composed value must pass the shared validator before the
	// confirm button is shown; display the verdict so the round trip
	// is visible
	var checkedValue string
	if m.mode == ModeBranch {
		checkedValue = "branch name ready"
	} else if commitmsg.IsAccepted(commitmsg.Validate(m.message)) {
		checkedValue = "passes validation"
	} else {
		checkedValue = "DOES NOT VALIDATE"
	}
	okStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen)
	leftLines = append(leftLines, okStyle.Render("  ✓ "+checkedValue))
	leftLines = append(leftLines, "")

	leftLines = append(leftLines, ui.SectionHeader("CONFIRM", ui.ColorGreen))
	leftLines = append(leftLines, "")
	if m.mode == ModeBranch {
		leftLines = append(leftLines, "  Create this branch?")
	} else {
		leftLines = append(leftLines, "  Commit with this message?")
	}
	leftLines = append(leftLines, "")
	leftLines = append(leftLines, ui.YesNoButtons(m.confirmSelection))

	leftTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	panelTitle := " Commit "
	if m.mode == ModeBranch {
		panelTitle = " Branch "
	}
	leftContent := leftTitleStyle.Render(panelTitle) + "\n" + strings.Join(leftLines, "\n")

	// Right column: field summary
	var rightLines []string
	rightLines = append(rightLines, "")
	rightLines = append(rightLines, ui.SectionHeader("FIELDS", ui.ColorMagenta))
	rightLines = append(rightLines, "")

	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	if m.commitType != nil {
		typeStyle := lipgloss.NewStyle().Foreground(ui.TypeColor(m.commitType.Token())).Bold(true)
		rightLines = append(rightLines, labelStyle.Render("  Type:  ")+typeStyle.Render(m.commitType.Token()))
	}
	taskStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	rightLines = append(rightLines, labelStyle.Render("  Task:  ")+taskStyle.Render(m.taskID))
	if m.mode == ModeCommit {
		dateStyle := lipgloss.NewStyle().Foreground(ui.ColorMagenta)
		rightLines = append(rightLines, labelStyle.Render("  Date:  ")+dateStyle.Render(commitmsg.DateToken(m.config.Now())))
		rightLines = append(rightLines, labelStyle.Render("  Desc:  ")+fmt.Sprintf("%d chars", len(m.description)))
	}
	if m.repoInfo != nil {
		repoStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
		rightLines = append(rightLines, "")
		rightLines = append(rightLines, labelStyle.Render("  Repo:  ")+repoStyle.Render(m.repoInfo.DisplayName))
	}

	rightTitleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorMagenta)
	rightContent := rightTitleStyle.Render(" Summary ") + "\n" + strings.Join(rightLines, "\n")

	return ui.UnifiedPanel(leftContent, rightContent, 60, 35, ui.ColorGreen)
}

func (m Model) renderCommitting() string {
	var lines []string
	lines = append(lines, "")

	spinner := ui.Spinner(m.spinnerFrame)
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	statusStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)

	action := "Committing..."
	if m.mode == ModeBranch {
		action = "Creating branch..."
	}
	lines = append(lines, fmt.Sprintf("  %s %s", spinnerStyle.Render(spinner), statusStyle.Render(action)))
	lines = append(lines, "")

	if m.repoInfo != nil {
		lines = append(lines, ui.SectionHeader("DETAILS", ui.ColorMagenta))
		lines = append(lines, "")

		labelStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
		repoStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
		valueStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)

		lines = append(lines, labelStyle.Render("  Repo:    ")+repoStyle.Render(m.repoInfo.DisplayName))
		if m.mode == ModeBranch {
			lines = append(lines, labelStyle.Render("  Branch:  ")+valueStyle.Render(m.branchName))
		} else {
			lines = append(lines, labelStyle.Render("  Message: ")+valueStyle.Render(m.message))
		}
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	return titleStyle.Render(" Working ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderComplete() string {
	var lines []string

	// Use pulsing green effect based on sine wave
	var successColor lipgloss.Color
	pulseIntensity := (math.Sin(m.pulsePhase) + 1.0) / 2.0
	if pulseIntensity > 0.5 {
		successColor = ui.ColorGreen
	} else {
		successColor = ui.ColorLightGreen
	}

	// Typewriter effect for message
	message := "Commit created successfully!"
	if m.mode == ModeBranch {
		message = "Branch created successfully!"
	}
	if m.dryRun {
		message += " (dry run)"
	}
	revealedChars := m.typewriterPos
	if revealedChars > len(message) {
		revealedChars = len(message)
	}
	revealedText := message[:revealedChars]

	successStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	iconStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)

	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s %s", iconStyle.Render("✓"), successStyle.Render(revealedText)))
	lines = append(lines, "")
	if m.mode == ModeBranch {
		lines = append(lines, fmt.Sprintf("  🌿 %s", valueStyle.Render(m.branchName)))
	} else {
		lines = append(lines, fmt.Sprintf("  📝 %s", valueStyle.Render(m.message)))
	}
	lines = append(lines, "")

	// Render confetti
	confettiLines := m.renderConfetti()
	if confettiLines != "" {
		lines = append(lines, confettiLines)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorGreen)
	return titleStyle.Render(" 🎉 Success ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderConfetti() string {
	if len(m.confetti) == 0 {
		return ""
	}

	// Create a grid for confetti
	width := 80
	height := 5
	grid := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		colors[i] = make([]lipgloss.Color, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Place particles in grid
	for _, p := range m.confetti {
		x := int(p.X)
		y := int(p.Y) - 5 // offset for display area
		if x >= 0 && x < width && y >= 0 && y < height {
			grid[y][x] = p.Char
			colors[y][x] = p.Color
		}
	}

	// Render grid
	var lines []string
	for y := 0; y < height; y++ {
		var line strings.Builder
		line.WriteString("   ")
		for x := 0; x < width; x++ {
			if grid[y][x] != ' ' {
				style := lipgloss.NewStyle().Foreground(colors[y][x])
				line.WriteString(style.Render(string(grid[y][x])))
			} else {
				line.WriteRune(' ')
			}
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderError() string {
	var lines []string

	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)

	lines = append(lines, "")
	lines = append(lines, errorStyle.Render("   ✗ Error"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("   %s", m.errorMessage))
	lines = append(lines, "")
	lines = append(lines, "   Press Enter to go back")

	return strings.Join(lines, "\n")
}

func (m Model) renderHeadCheck() string {
	var lines []string
	lines = append(lines, "")

	if m.headVerdict == nil {
		spinner := ui.Spinner(m.spinnerFrame)
		spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
		lines = append(lines, "  "+spinnerStyle.Render(spinner)+" Reading HEAD...")
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorYellow)
		return titleStyle.Render(" Check HEAD ") + "\n" + strings.Join(lines, "\n")
	}

	msgStyle := lipgloss.NewStyle().Foreground(ui.ColorWhite)
	subject := strings.Split(m.headMessage, "\n")[0]
	lines = append(lines, "  "+msgStyle.Render(subject))
	lines = append(lines, "")

	if commitmsg.IsAccepted(m.headVerdict) {
		status := "accepted"
		if commitmsg.IsSpecial(m.headMessage) {
			status = "special"
		}
		icon, color := ui.StatusIcon(status)
		okStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
		verdictText := "Message is valid"
		if status == "special" {
			verdictText = "Special commit - format exempt"
		}
		lines = append(lines, "  "+okStyle.Render(icon+" "+verdictText))
	} else {
		icon, color := ui.StatusIcon("rejected")
		badStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
		field, _ := commitmsg.RejectedField(m.headVerdict)
		lines = append(lines, "  "+badStyle.Render(icon+" Invalid "+field.String()))
		lines = append(lines, "")

		// Show the expected format
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		for _, helpLine := range strings.Split(strings.TrimRight(commitmsg.FormatHelp(), "\n"), "\n") {
			lines = append(lines, dimStyle.Render("  "+helpLine))
		}
	}

	lines = append(lines, "")
	lines = append(lines, "   Press Enter to go back")

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorYellow)
	return titleStyle.Render(" Check HEAD ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderSessionHistory() string {
	var lines []string
	lines = append(lines, "")

	if len(m.sessionCommits) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, dimStyle.Render("  Nothing composed this session"))
		lines = append(lines, "")
	} else {
		for i, c := range m.sessionCommits {
			isSelected := i == m.historyIndex
			arrow := "  "
			if isSelected {
				arrow = "▶ "
			}

			var repoStyle, kindStyle, msgStyle, arrowStyle lipgloss.Style
			if isSelected {
				repoStyle = lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true).Background(ui.ColorDarkGray)
				kindStyle = lipgloss.NewStyle().Foreground(ui.ColorYellow).Background(ui.ColorDarkGray)
				msgStyle = lipgloss.NewStyle().Foreground(ui.ColorWhite).Background(ui.ColorDarkGray)
				arrowStyle = lipgloss.NewStyle().Foreground(ui.ColorCyan).Background(ui.ColorDarkGray)
			} else {
				repoStyle = lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
				kindStyle = lipgloss.NewStyle().Foreground(ui.ColorYellow)
				msgStyle = lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
				arrowStyle = lipgloss.NewStyle().Foreground(ui.ColorCyan)
			}

			line := arrowStyle.Render(arrow) + repoStyle.Render(c.repoName) + " " + kindStyle.Render("("+c.kind+")")
			lines = append(lines, line)
			lines = append(lines, "   "+msgStyle.Render(c.message))
			lines = append(lines, "")
		}
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorMagenta)
	return titleStyle.Render(fmt.Sprintf(" 📋 Session History (%d) ", len(m.sessionCommits))) + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderUpdatePrompt() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, ui.SectionHeader("Update Available!", ui.ColorCyan))
	lines = append(lines, "")

	if m.updateAvailable != nil {
		versionStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
		currentStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)

		lines = append(lines, fmt.Sprintf("   Current version: %s", currentStyle.Render(m.version)))
		lines = append(lines, fmt.Sprintf("   New version:     %s", versionStyle.Render(update.VersionDisplay(m.updateAvailable.TagName))))
		lines = append(lines, "")
	}

	lines = append(lines, "   What would you like to do?")
	lines = append(lines, "")

	options := []struct {
		key   string
		label string
		color lipgloss.Color
	}{
		{"y", "Update now", ui.ColorGreen},
		{"n", "Skip for now", ui.ColorYellow},
		{"s", "Skip this version", ui.ColorRed},
	}

	for i, opt := range options {
		text := fmt.Sprintf("[%s] %s", opt.key, opt.label)
		var style lipgloss.Style
		if i == m.updateSelection {
			style = lipgloss.NewStyle().
				Background(opt.color).
				Foreground(lipgloss.Color("#000000")).
				Padding(0, 1).
				Bold(true)
		} else {
			style = lipgloss.NewStyle().
				Foreground(opt.color).
				Padding(0, 1)
		}
		lines = append(lines, "   "+style.Render(text))
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	return titleStyle.Render(" Update ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderUpdating() string {
	var lines []string
	lines = append(lines, "")

	spinner := ui.Spinner(m.spinnerFrame)
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	statusStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan).Bold(true)
	lines = append(lines, fmt.Sprintf("  %s %s", spinnerStyle.Render(spinner), statusStyle.Render("Downloading update...")))

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorCyan)
	return titleStyle.Render(" Updating ") + "\n" + strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	var hints []string

	switch m.screen {
	case ScreenMainMenu:
		hints = []string{
			ui.KeyBinding("1-5", "Select", ui.ColorYellow),
			ui.KeyBinding("↑↓", "Navigate", ui.ColorWhite),
			ui.KeyBinding("Enter", "Select", ui.ColorGreen),
		}
		if len(m.sessionCommits) > 0 {
			hints = append(hints, ui.KeyBinding("h", "History", ui.ColorBlue))
		}
		hints = append(hints, ui.KeyBinding("q", "Quit", ui.ColorRed))
	case ScreenTypeSelect:
		hints = []string{
			ui.KeyBinding("1-7", "Select", ui.ColorYellow),
			ui.KeyBinding("↑↓", "Navigate", ui.ColorWhite),
			ui.KeyBinding("Enter", "Select", ui.ColorGreen),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	case ScreenTaskIDInput, ScreenDescriptionInput:
		hints = []string{
			ui.KeyBinding("Enter", "Submit", ui.ColorGreen),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	case ScreenConfirmation:
		hints = []string{
			ui.KeyBinding("←→", "Select", ui.ColorWhite),
			ui.KeyBinding("y/n", "Quick", ui.ColorGreen),
			ui.KeyBinding("Enter", "Confirm", ui.ColorGreen),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	case ScreenComplete, ScreenError, ScreenHeadCheck, ScreenSessionHistory:
		hints = []string{
			ui.KeyBinding("Enter", "Done", ui.ColorGreen),
		}
	case ScreenUpdatePrompt:
		hints = []string{
			ui.KeyBinding("y/n/s", "Choose", ui.ColorGreen),
			ui.KeyBinding("↑↓", "Navigate", ui.ColorWhite),
			ui.KeyBinding("Enter", "Confirm", ui.ColorGreen),
		}
	}

	barStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorDarkGray).
		Padding(0, 1)

	return barStyle.Render(strings.Join(hints, "  "))
}
