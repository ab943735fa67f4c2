package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glimmer/internal/config"
	"github.com/vovakirdan/glimmer/internal/core"
	"github.com/vovakirdan/glimmer/internal/registry"
	"github.com/vovakirdan/glimmer/internal/storage"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// Model is the Bubble Tea model that runs one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	pacer      *config.Pacer
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	termW      int
	termH      int
	lastShot   string
	quitting   bool
	backToMenu bool
	quitOnBack bool // standalone play has no menu to return to
}

// NewModel creates a model for the given game. The screen is sized from cfg;
// the terminal size only decides whether it fits.
func NewModel(game registry.Game, store *storage.Store, pacer *config.Pacer, cfg core.RuntimeConfig) Model {
	if pacer == nil {
		pacer = config.NewPacer(config.PacingConfig{}, cfg.TickRate)
	}

	best := 0
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			best = high
		}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		pacer:      pacer,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		best:       best,
		termW:      cfg.ScreenW,
		termH:      cfg.ScreenH + 1,
	}
}

// Init resets the game into the model's screen and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config, m.screen)
	return tickCmd(m.pacer.Interval(0))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.lastShot = m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleTick runs one simulation step with the input queued since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended {
		m.recordRun(result.FinalScore, result.FinalLevel)
	}

	return m, tickCmd(m.pacer.Interval(m.gameState.Level))
}

// recordRun stores a finished run. Saving is best effort: the session goes on
// without a database.
func (m *Model) recordRun(score, level int) {
	if score > m.best {
		m.best = score
	}
	if m.store == nil || score == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.game.ID(), score, level)
}

// saveScreenshot writes the current grid as text and returns the file path.
func (m Model) saveScreenshot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".glimmer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return ""
	}
	return path
}

// View renders the grid followed by a one-line status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.termW < m.screen.Width() || m.termH < m.screen.Height()+1 {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height()+1, m.termW, m.termH,
		))
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	return b.String()
}

func (m Model) statusLine() string {
	state := "arrows: move  p: pause  ctrl+s: screenshot  q: quit"
	switch {
	case m.gameState.GameOver:
		state = "r: restart  b: menu  q: quit"
	case m.gameState.Paused:
		state = "PAUSED  p: resume  b: menu  q: quit"
	}
	line := fmt.Sprintf("%s  best %d  |  %s", m.game.Title(), m.best, state)
	if m.lastShot != "" {
		line += "  |  saved " + filepath.Base(m.lastShot)
	}
	return line
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Screen returns the display the game draws into.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, pacer *config.Pacer, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, pacer, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
