package animator

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Interactive redraws the board in place on the terminal. A generation passes every
// poll timeout or on any keypress; q quits.
type Interactive struct {
	renderer *model.Renderer
	timeout  time.Duration
	in       io.Reader
	out      io.Writer
}

// NewInteractive creates an interactive animator. A nil in or out uses the terminal.
func NewInteractive(renderer *model.Renderer, timeout time.Duration, in io.Reader, out io.Writer) *Interactive {
	return &Interactive{renderer: renderer, timeout: timeout, in: in, out: out}
}

func (i *Interactive) Animate(ctx context.Context, b *model.Board) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if i.in != nil {
		opts = append(opts, tea.WithInput(i.in))
	}
	if i.out != nil {
		opts = append(opts, tea.WithOutput(i.out))
	} else {
		opts = append(opts, tea.WithAltScreen())
	}

	_, err := tea.NewProgram(newLifeModel(b, i.renderer, i.timeout), opts...).Run()
	return exitError(ctx, err)
}

// exitError maps the program's exit to Animate's result. Interrupts and
// cancellation of ctx are clean exits.
func exitError(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted):
		return nil
	case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		return nil
	default:
		return errors.Wrap(err, "[Interactive] program failed")
	}
}

// tickMsg is one poll cycle. Ticks scheduled before the latest step are stale.
type tickMsg struct {
	id int
}

type keyMap struct {
	Step key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Step: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("any key", "next generation"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type styles struct {
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Status lipgloss.Style
	Board  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("71")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Board: lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1),
	}
}

type lifeModel struct {
	board    *model.Board
	renderer *model.Renderer
	timeout  time.Duration

	iteration int
	tickID    int
	lastStep  time.Time
	stats     *utils.Stats

	keys     keyMap
	help     help.Model
	styles   styles
	quitting bool
}

func newLifeModel(b *model.Board, renderer *model.Renderer, timeout time.Duration) lifeModel {
	stats := utils.NewStats()
	stats.Update(1, b.Population(), 0)
	stats.Observe(b.Fingerprint())
	return lifeModel{
		board:     b,
		renderer:  renderer,
		timeout:   timeout,
		iteration: 1,
		lastStep:  time.Now(),
		stats:     stats,
		keys:      defaultKeyMap(),
		help:      help.New(),
		styles:    defaultStyles(),
	}
}

func (m lifeModel) Init() tea.Cmd {
	return m.tick()
}

func (m lifeModel) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.timeout, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

func (m lifeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.advance()

	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		return m.advance()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// advance steps the board and restarts the poll timer
func (m lifeModel) advance() (tea.Model, tea.Cmd) {
	m.board.Step()
	m.iteration++
	m.tickID++

	now := time.Now()
	m.stats.Update(m.iteration, m.board.Population(), now.Sub(m.lastStep))
	m.stats.Observe(m.board.Fingerprint())
	m.lastStep = now

	return m, m.tick()
}

func (m lifeModel) View() string {
	if m.quitting {
		return ""
	}

	status := fmt.Sprintf("Iteration %d | Living: %d | Status: %s\nAvg Pop: %.1f | %.1f gen/sec | Runtime: %.1fs",
		m.iteration, m.stats.Population, m.stats.Status(),
		m.stats.AveragePopulation, m.stats.GenerationsPerSecond, m.stats.Runtime().Seconds())

	return strings.Join([]string{
		m.styles.Title.Render("Game Of Life"),
		m.styles.Muted.Render("Hit q to quit, or press or hold any other key to speed up the animation"),
		"",
		m.styles.Status.Render(status),
		m.styles.Board.Render(m.renderer.Render(m.board)),
		m.help.View(m.keys),
	}, "\n")
}
