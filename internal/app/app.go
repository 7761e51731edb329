package app

import (
	"math"
	"math/rand"
	"time"

	"github.com/wahlandcase/attuned.commitcheck/internal/commitmsg"
	"github.com/wahlandcase/attuned.commitcheck/internal/config"
	"github.com/wahlandcase/attuned.commitcheck/internal/models"
	"github.com/wahlandcase/attuned.commitcheck/internal/ui"
	"github.com/wahlandcase/attuned.commitcheck/internal/update"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfettiParticle represents a single confetti particle
type ConfettiParticle struct {
	X, Y   float64
	VX, VY float64
	Char   rune
	Color  lipgloss.Color
}

// sessionCommit holds info about a commit or branch composed this session
type sessionCommit struct {
	repoName  string
	message   string // commit message or branch name
	kind      string // "commit" or "branch"
	createdAt time.Time
}

// Model is the main application state
type Model struct {
	// Configuration
	config     *config.Config
	dryRun     bool
	testUpdate bool

	// Navigation
	screen     Screen
	menuIndex  int
	shouldQuit bool

	// Compose flow state
	mode        ComposeMode
	typeIndex   int
	commitType  *commitmsg.Type
	taskID      string
	description string
	fieldHint   string // Set when a field fails validation on Enter
	message     string // Composed commit message (confirmation onward)
	branchName  string // Composed branch name in branch mode

	// Repository state
	repoInfo      *models.RepoInfo
	repoErr       string
	hookInstalled bool
	hookFeedback  string // Brief feedback after hook toggle, clears on next action

	// HEAD check state
	headMessage string
	headVerdict commitmsg.Verdict

	// UI state
	confirmSelection int // 0=Yes, 1=No
	errorMessage     string
	spinnerFrame     int

	// Update state
	version               string
	updateAvailable       *update.Release // Non-nil if update available
	updateSelection       int             // 0=Update now, 1=Skip, 2=Skip this version
	updateCheckInProgress bool

	// Animation state
	confetti      []ConfettiParticle
	pulsePhase    float64 // 0.0 - 2*PI for sine wave
	typewriterPos int     // Characters revealed so far

	// Session history (survives reset)
	sessionCommits []sessionCommit
	historyIndex   int

	// Window size
	width  int
	height int
}

// New creates a new application model
func New(cfg *config.Config, dryRun, testUpdate bool, version string) Model {
	return Model{
		config:         cfg,
		dryRun:         dryRun,
		testUpdate:     testUpdate,
		version:        version,
		screen:         ScreenMainMenu,
		menuIndex:      0,
		width:          80,
		height:         24,
		sessionCommits: loadHistory(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
		loadRepoCmd(),
	}
	if !m.dryRun && m.config.ShouldCheckForUpdate() {
		cmds = append(cmds, checkUpdateCmd(m.version, m.config.Update.Repo))
	}
	// Test update flag shows fake update prompt
	if m.testUpdate {
		cmds = append(cmds, func() tea.Msg {
			return updateCheckResult{release: &update.Release{TagName: "v99.0.0"}}
		})
	}
	return tea.Batch(cmds...)
}

// tickMsg is sent on each tick for animations
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// spawnConfetti creates confetti particles for celebration
func (m *Model) spawnConfetti() {
	colors := []lipgloss.Color{
		ui.ColorCyan,
		ui.ColorMagenta,
		ui.ColorYellow,
		ui.ColorGreen,
		ui.ColorRed,
		ui.ColorWhite,
	}
	chars := []rune{'*', '•', '✦', '✧', '◆', '◇', '▪', '♦', '★', '☆'}

	m.confetti = nil
	for i := 0; i < 40; i++ {
		angle := (float64(i) / 40.0) * math.Pi * 2.0
		speed := 2.0 + float64(i%5)*0.5
		m.confetti = append(m.confetti, ConfettiParticle{
			X:     40.0, // center-ish
			Y:     5.0,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle)*speed - 2.0, // bias upward initially
			Char:  chars[rand.Intn(len(chars))],
			Color: colors[rand.Intn(len(colors))],
		})
	}
	m.typewriterPos = 0
}

// updateAnimations updates all animation state
func (m *Model) updateAnimations() {
	// Update pulse phase (smooth sine wave)
	m.pulsePhase = math.Mod(m.pulsePhase+0.08, 2.0*math.Pi)

	// Update confetti physics
	for i := range m.confetti {
		m.confetti[i].X += m.confetti[i].VX
		m.confetti[i].Y += m.confetti[i].VY
		m.confetti[i].VY += 0.15 // gravity
		m.confetti[i].VX *= 0.98 // air resistance
	}

	// Remove particles that fell off screen
	filtered := m.confetti[:0]
	for _, p := range m.confetti {
		if p.Y < 50.0 {
			filtered = append(filtered, p)
		}
	}
	m.confetti = filtered

	// Typewriter effect - reveal more characters on the success screen
	if m.screen == ScreenComplete && m.typewriterPos < 100 {
		m.typewriterPos++
	}
}

// resetCompose clears the compose flow state for a fresh run
func (m *Model) resetCompose() {
	m.typeIndex = 0
	m.commitType = nil
	m.taskID = ""
	m.description = ""
	m.fieldHint = ""
	m.message = ""
	m.branchName = ""
	m.confirmSelection = 0
}
