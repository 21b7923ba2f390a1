package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quotient/internal/core"
	"github.com/vovakirdan/quotient/internal/games/quotient"
	"github.com/vovakirdan/quotient/internal/storage"
)

// QuotientSelection holds the user's selection from the level picker.
type QuotientSelection struct {
	Level int // 0 = start from beginning, 1-N = specific level
}

// levelChoice is one pickable level with its best earned rating.
type levelChoice struct {
	id    string
	name  string
	stars int
}

// QuotientLevelModel is the level picker for Quotient.
type QuotientLevelModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	choices      []levelChoice
	selection    QuotientSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        QuotientTheme
}

// NewQuotientLevelModel creates a new level selection model. Best star
// ratings come from the store when one is available.
func NewQuotientLevelModel(store *storage.Store, width, height int) QuotientLevelModel {
	var choices []levelChoice
	entries, err := quotient.AvailableLevels()
	if err == nil {
		for _, e := range entries {
			c := levelChoice{id: e.Level.ID, name: e.Level.Name}
			if store != nil {
				//nolint:errcheck // Missing stars render as unearned
				c.stars, _ = store.BestStars(e.Level.ID)
			}
			choices = append(choices, c)
		}
	}
	if len(choices) == 0 {
		choices = []levelChoice{{name: "No levels found"}}
	}

	return QuotientLevelModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choices:   choices,
		choosing:  true,
		theme:     GetQuotientTheme(),
	}
}

// Init initializes the model.
func (m QuotientLevelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m QuotientLevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m QuotientLevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.choices) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = QuotientSelection{Level: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *QuotientLevelModel) updateScroll() {
	visibleItems := m.height - 10 // Account for header and footer
	if visibleItems < 3 {
		visibleItems = 3
	}

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visibleItems {
		m.scrollOffset = m.cursor - visibleItems + 1
	}
}

// starRating renders the earned stars out of three.
func (m QuotientLevelModel) starRating(stars int) string {
	if stars < 0 {
		stars = 0
	}
	if stars > 3 {
		stars = 3
	}
	earned := m.theme.StarEarned.Render(strings.Repeat("★", stars))
	empty := m.theme.StarEmpty.Render(strings.Repeat("☆", 3-stars))
	return earned + empty
}

// View renders the level selection.
func (m QuotientLevelModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	title := m.theme.MenuTitle.Render("Q U O T I E N T")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	// Subtitle
	subtitle := m.theme.MenuDescription.Render("Select a level:")
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	// Calculate visible range
	visibleItems := m.height - 10
	if visibleItems < 3 {
		visibleItems = 3
	}

	// "Start from Beginning" option
	if m.scrollOffset == 0 {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if m.cursor == 0 {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := style.Render(cursor + "Start from Beginning")
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Level list
	startIdx := m.scrollOffset
	endIdx := startIdx + visibleItems
	if endIdx > len(m.choices) {
		endIdx = len(m.choices)
	}

	for i := startIdx; i < endIdx; i++ {
		actualIdx := i + 1 // Account for "Start from Beginning" option
		cursor := "  "
		style := m.theme.MenuItemNormal
		if actualIdx == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		levelNum := fmt.Sprintf("%2d. ", i+1)
		name := fmt.Sprintf("%-24s", m.choices[i].name)
		line := style.Render(cursor+levelNum+name) + " " + m.starRating(m.choices[i].stars)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	// Scroll indicators
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if endIdx < len(m.choices) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m QuotientLevelModel) Selected() *QuotientSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m QuotientLevelModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m QuotientLevelModel) WantsBack() bool {
	return m.back
}

// RunQuotientLevelSelector runs the level selection and returns the selection.
func RunQuotientLevelSelector(store *storage.Store, cfg core.RuntimeConfig) (*QuotientSelection, core.RuntimeConfig, error) {
	model := NewQuotientLevelModel(store, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(QuotientLevelModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
