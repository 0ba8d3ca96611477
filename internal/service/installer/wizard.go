package installer

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/relaybot/internal/config"
)

var ErrAborted = errors.New("relaybot installation interrupted")

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	itemStyle  = lipgloss.NewStyle().PaddingLeft(2)
	selStyle   = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("5"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Step is one screen of the wizard. Update returns nil once the step is finished;
// a step that does not apply to the collected state finishes on its first message.
type Step interface {
	Init() tea.Cmd
	Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd)
	View(state *InstallState) string
}

type nextMsg struct{}

type wizard struct {
	steps   []Step
	pos     int
	state   *InstallState
	aborted bool
	width   int
	height  int
}

func newWizard(cfg *config.AppConfig) *wizard {
	return &wizard{
		steps: []Step{
			NewProviderStep(),
			NewBaseURLStep(),
			NewAPIKeyStep(),
			NewModelStep(),
			NewChannelStep(),
			NewTelegramTokenStep(),
			NewAllowedUsersStep(),
			NewSaveStep(cfg),
		},
		state: NewInstallState(),
	}
}

func (w *wizard) finished() bool {
	return w.pos >= len(w.steps)
}

func (w *wizard) Init() tea.Cmd {
	if w.finished() {
		return tea.Quit
	}
	return w.steps[w.pos].Init()
}

func (w *wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			w.aborted = true
			return w, tea.Quit
		}
	}

	if w.aborted || w.finished() {
		return w, tea.Quit
	}

	step, cmd := w.steps[w.pos].Update(msg, w.state, w.width, w.height)
	if step != nil {
		w.steps[w.pos] = step
		return w, cmd
	}

	w.pos++
	return w, w.Init()
}

func (w *wizard) View() string {
	switch {
	case w.aborted:
		return "Installation cancelled.\n"
	case w.finished():
		return "Configuration complete!\n"
	}

	header := titleStyle.Render("Setting up RelayBot 📨") + " " +
		hintStyle.Render(fmt.Sprintf("step %d of %d", w.pos+1, len(w.steps)))
	return header + "\n\n" + w.steps[w.pos].View(w.state)
}

// RunWizard collects provider and channel settings and saves them into cfg's
// runtime directory.
func RunWizard(cfg *config.AppConfig) (*InstallState, error) {
	m, err := tea.NewProgram(newWizard(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	w := m.(*wizard)
	if w.aborted || !w.finished() {
		return nil, ErrAborted
	}
	return w.state, nil
}
