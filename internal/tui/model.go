// Package tui provides the Bubble Tea game interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typerush/internal/game"
	"github.com/verte-zerg/typerush/internal/generator"
	"github.com/verte-zerg/typerush/internal/model"
	"github.com/verte-zerg/typerush/internal/tone"
	"github.com/verte-zerg/typerush/internal/wordbank"
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	timeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	urgentStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	messageStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80"))
	soundOnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADE80"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	modalStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A")).
				Padding(1, 2)
	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
)

// Model implements the Bubble Tea game UI and renders game state.
type Model struct {
	game   *game.Game
	player *tone.Player
	sched  *tickScheduler
	input  textinput.Model

	width  int
	height int

	prompt       string
	score        int
	seconds      int
	urgent       bool
	wpm          int
	levelLabel   string
	canAdvance   bool
	message      string
	inputEnabled bool
	dialog       *model.Dialog
}

// NewModel constructs the game UI with an idle game behind it.
func NewModel(bank *wordbank.Bank, gen *generator.Generator, player *tone.Player, logger zerolog.Logger) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type the words above"
	// Prompts have no length cap, so neither does the input.
	input.CharLimit = 0

	m := &Model{
		player: player,
		sched:  newTickScheduler(),
		input:  input,
	}
	m.game = game.New(bank, gen, m, player, m.sched, game.WithLogger(logger))
	m.game.Init()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.contentWidth() - lipgloss.Width(m.input.Prompt) - 1
		return m, nil
	case tickMsg:
		cmd := m.sched.handle(msg)
		return m, tea.Batch(cmd, m.sched.flush())
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.game.AdvanceLevel()
		return m, m.sched.flush()
	case tea.KeyCtrlS:
		m.player.Toggle()
		return m, nil
	case tea.KeyEnter:
		if m.dialog != nil {
			m.game.Start()
			return m, m.sched.flush()
		}
		return m, nil
	}
	if !m.inputEnabled {
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.game.OnInputChanged(after)
	}
	return m, tea.Batch(cmd, m.sched.flush())
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	if m.dialog != nil {
		content = m.renderDialog()
	} else {
		content = m.renderBoard()
	}
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) contentWidth() int {
	w := int(float64(m.width) * 0.70)
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) renderBoard() string {
	width := m.contentWidth()
	prompt := wrapStyledRunes(styledPrompt(m.prompt, m.input.Value()), width)
	lines := []string{
		m.renderStats(),
		"",
		lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(prompt),
		"",
		m.input.View(),
		"",
		messageStyle.Render(m.message),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderStats() string {
	ts := timeStyle
	if m.urgent {
		ts = urgentStyle
	}
	segments := []string{
		valueStyle.Render(m.levelLabel),
		labelStyle.Render("Score ") + valueStyle.Render(fmt.Sprintf("%d", m.score)),
		labelStyle.Render("Time ") + ts.Render(fmt.Sprintf("%ds", m.seconds)),
		labelStyle.Render("WPM ") + valueStyle.Render(fmt.Sprintf("%d", m.wpm)),
	}
	return strings.Join(segments, "   ")
}

func (m *Model) renderDialog() string {
	d := m.dialog
	lines := []string{titleStyle.Render(d.Title), "", d.Description}
	if d.Final != nil {
		lines = append(lines, "",
			fmt.Sprintf("Score: %d", d.Final.Score),
			fmt.Sprintf("WPM:   %d", d.Final.WPM),
			fmt.Sprintf("Level: %d", d.Final.Level),
		)
	}
	lines = append(lines, "", actionStyle.Render("enter · "+d.Action))
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m *Model) renderFooter() string {
	var segments []string
	if m.canAdvance {
		segments = append(segments, "tab next level")
	}
	sound := "ctrl+s no sound"
	if m.player.Enabled() {
		sound = "ctrl+s " + soundOnStyle.Render("sound on")
	}
	segments = append(segments, sound, "esc quit")
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}

// SetPrompt implements game.Renderer.
func (m *Model) SetPrompt(text string) { m.prompt = text }

// SetScore implements game.Renderer.
func (m *Model) SetScore(score int) { m.score = score }

// SetTime implements game.Renderer.
func (m *Model) SetTime(seconds int, urgent bool) {
	m.seconds = seconds
	m.urgent = urgent
}

// SetWPM implements game.Renderer.
func (m *Model) SetWPM(wpm int) { m.wpm = wpm }

// SetLevel implements game.Renderer.
func (m *Model) SetLevel(label string, canAdvance bool) {
	m.levelLabel = label
	m.canAdvance = canAdvance
}

// SetMessage implements game.Renderer.
func (m *Model) SetMessage(msg string) { m.message = msg }

// SetInputEnabled implements game.Renderer.
func (m *Model) SetInputEnabled(enabled bool) {
	m.inputEnabled = enabled
	if enabled {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

// ClearInput implements game.Renderer.
func (m *Model) ClearInput() { m.input.Reset() }

// ShowDialog implements game.Renderer.
func (m *Model) ShowDialog(d model.Dialog) { m.dialog = &d }

// HideDialog implements game.Renderer.
func (m *Model) HideDialog() { m.dialog = nil }

var _ game.Renderer = (*Model)(nil)
