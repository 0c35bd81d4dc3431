package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"aviator/internal/game"
)

// keyHold is how long a key press counts as held. Terminals only
// deliver presses, so a held arrow key shows up as auto-repeat; as
// long as repeats arrive faster than this window the input stays on.
const keyHold = 200 * time.Millisecond

// frameMsg drives the fixed-rate game tick.
type frameMsg time.Time

type Model struct {
	width  int
	height int

	world *game.World
	keys  keyMap
	help  help.Model
	fuel  progress.Model

	fps       int
	lastFrame time.Time

	// held-key emulation
	upUntil    time.Time
	downUntil  time.Time
	boostUntil time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithFPS overrides the default frame rate.
func WithFPS(fps int) Option {
	return func(m *Model) {
		if fps > 0 {
			m.fps = fps
		}
	}
}

// WithSeed fixes the world's random seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(m *Model) {
		m.world = game.NewWorld(rand.New(rand.NewSource(seed)))
	}
}

func New(opts ...Option) Model {
	m := Model{
		world: game.NewWorld(rand.New(rand.NewSource(time.Now().UnixNano()))),
		keys:  newKeyMap(),
		help:  help.New(),
		fps:   30,
	}
	m.fuel = progress.New(progress.WithScaledGradient("#FF4D1A", "#2ECC40"))
	m.fuel.ShowPercentage = false
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.fuel.Width = min(40, max(10, msg.Width/4))

	case tea.KeyMsg:
		now := time.Now()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Start):
			if m.world.State == game.Menu || m.world.State == game.GameOver {
				m.world.Start()
			}
		case key.Matches(msg, m.keys.Pause):
			m.world.TogglePause()
		case key.Matches(msg, m.keys.Boost):
			// space starts from the menu and boosts in flight
			if m.world.State == game.Menu || m.world.State == game.GameOver {
				m.world.Start()
			} else {
				m.boostUntil = now.Add(keyHold)
			}
		case key.Matches(msg, m.keys.Up):
			m.upUntil = now.Add(keyHold)
		case key.Matches(msg, m.keys.Down):
			m.downUntil = now.Add(keyHold)
		}

	case frameMsg:
		t := time.Time(msg)
		dt := 1.0 / float64(m.fps)
		if !m.lastFrame.IsZero() {
			dt = t.Sub(m.lastFrame).Seconds()
		}
		m.lastFrame = t
		m.world.Update(dt, game.Input{
			Up:    t.Before(m.upUntil),
			Down:  t.Before(m.downUntil),
			Boost: t.Before(m.boostUntil),
		})
		return m, m.tick()
	}
	return m, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
