package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// startLevelCount is the number of selectable starting levels (0..9).
const startLevelCount = 10

// TetrisSelection holds the user's pre-game choices.
type TetrisSelection struct {
	Difficulty string // "easy", "normal", "hard"
	StartLevel int    // 0-9
}

// difficultyOptions are the menu entries, in display order.
var difficultyOptions = []struct {
	id    string
	label string
}{
	{"easy", "Easy     (slow gravity, long lock delay)"},
	{"normal", "Normal   (classic feel)"},
	{"hard", "Hard     (fast gravity, snappy shifts)"},
}

// TetrisMenuModel lets users choose difficulty and starting level.
type TetrisMenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     TetrisSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewTetrisMenuModel creates a new pre-game selection model.
func NewTetrisMenuModel(width, height int) TetrisMenuModel {
	return TetrisMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TetrisMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TetrisMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m TetrisMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleDifficultyKey(action)
}

func (m TetrisMenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = difficultyOptions[m.cursor].id
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m TetrisMenuModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < startLevelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.StartLevel = m.levelCursor
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the difficulty/level selection.
func (m TetrisMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewDifficultySelect()
}

func (m TetrisMenuModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T E T R I S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt.label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m TetrisMenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("STARTING LEVEL", m.width))
	b.WriteString("\n\n")

	for lvl := 0; lvl < startLevelCount; lvl++ {
		cursor := "  "
		if lvl == m.levelCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%sLevel %d", cursor, lvl), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m TetrisMenuModel) Selected() *TetrisSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m TetrisMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TetrisMenuModel) WantsBack() bool {
	return m.back
}

// RunTetrisMenu runs the pre-game selection and returns the selection,
// or nil when the user backed out or quit.
func RunTetrisMenu(cfg core.RuntimeConfig) (*TetrisSelection, error) {
	model := NewTetrisMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(TetrisMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
