package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glimmer/internal/core"
	"github.com/vovakirdan/glimmer/internal/registry"
	"github.com/vovakirdan/glimmer/internal/storage"
)

// MenuItem is one selectable variant with its recorded history.
type MenuItem struct {
	GameID    string
	Title     string
	Best      int
	BestLevel int
	Runs      int
}

// variantBlurbs describe each registered variant in the menu.
var variantBlurbs = map[string]string{
	"glimmer":         "level up every 3 glyphs, ticks speed up with the level",
	"glimmer_classic": "level up every 10 glyphs",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(termColor(core.ColorPink))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(termColor(core.ColorYellow))
	menuDimStyle    = lipgloss.NewStyle().Foreground(termColor(core.ColorDarkGray))
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
	standalone     bool      // Quit the program on selection instead of handing over
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if stats, err := store.Stats(g.ID); err == nil {
				item.Best = stats.HighScore
				item.BestLevel = stats.BestLevel
				item.Runs = stats.RunsCount
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey moves the cursor (wrapping at both ends) or hands over to the
// selected variant or the run list.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp, MenuActionDown:
		if n := len(m.items); n > 0 {
			step := 1
			if action == MenuActionUp {
				step = n - 1
			}
			m.cursor = (m.cursor + step) % n
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			if m.standalone {
				return m, tea.Quit
			}
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		if m.standalone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("G L I M M E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.legend(), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-18s best %03d  lvl %2d  runs %3d", item.Title, item.Best, item.BestLevel, item.Runs)
		if i == m.cursor {
			line = menuCursorStyle.Render(">" + line[1:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuDimStyle.Render(variantBlurbs[m.items[m.cursor].GameID]), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Runs  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// legend shows what the reserved colors mean on the grid.
func (m MenuModel) legend() string {
	swatch := func(c core.Color, label string) string {
		return lipgloss.NewStyle().Background(termColor(c)).Render("  ") + " " + label
	}
	return strings.Join([]string{
		swatch(core.ColorPink, "collect"),
		swatch(core.ColorBlack, "avoid"),
		swatch(core.ColorRed, "you"),
	}, "   ")
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config games started from this menu receive.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring styling escapes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)
	model.standalone = true

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil && !m.IsQuitting():
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
