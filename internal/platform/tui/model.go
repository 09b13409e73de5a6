package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// maxCatchUpMillis caps the simulation debt after a stall (suspended
// terminal, debugger). Anything older is dropped instead of fast-forwarded.
const maxCatchUpMillis = 250.0

// Model is the Bubble Tea model that runs a game session. Frame ticks
// arrive on wall-clock time; the model converts them into fixed-length
// simulation steps so gameplay speed is independent of render timing.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	lastTick time.Time
	accumMs  float64

	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back exits the session once the game is no longer running.
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The game re-evaluates its layout against the new size.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick drains the elapsed wall-clock time in fixed simulation steps.
// The pending input frame is applied to the first step only, so edge
// actions fire exactly once no matter how many steps a late frame drains.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	tickMs := m.config.TickMillis()

	if m.lastTick.IsZero() {
		m.accumMs += tickMs
	} else {
		m.accumMs += float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	if m.accumMs > maxCatchUpMillis {
		m.accumMs = maxCatchUpMillis
	}

	stepped := false
	for m.accumMs >= tickMs {
		m.accumMs -= tickMs

		frame := core.NewInputFrame()
		if !stepped {
			frame = m.inputFrame
		}
		result := m.game.Step(frame)
		m.gameState = result.State
		stepped = true
	}

	if stepped {
		m.saveScoreOnGameOver()
		m.inputFrame = core.NewInputFrame()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScoreOnGameOver persists the final score once per game over.
func (m *Model) saveScoreOnGameOver() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Lines, m.gameState.Level)
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
