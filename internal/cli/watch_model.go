package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/gktimer/internal/app"
	"github.com/alexanderramin/gktimer/internal/cli/formatter"
	"github.com/alexanderramin/gktimer/internal/domain"
	"github.com/alexanderramin/gktimer/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const watchRefresh = time.Second

type watchKeyMap struct {
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newWatchKeyMap() watchKeyMap {
	return watchKeyMap{
		Toggle: key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s/space", "start/stop")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Quit, k.Help}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle}, {k.Help, k.Quit}}
}

type watchTickMsg time.Time

// watchTransitionMsg carries the outcome of a start or stop issued from
// the live view.
type watchTransitionMsg struct {
	stopped *domain.Session
	err     error
}

// watchModel is the live timer view. The counter is re-read from the
// timer service on every tick, so the display never drifts from the
// stored start time.
type watchModel struct {
	ctx    context.Context
	timer  service.TimerService
	loc    *time.Location
	use24h bool

	keys watchKeyMap
	help help.Model

	status    app.TimerStatus
	completed *domain.Session
	err       error
	busy      bool
	quitting  bool
}

func newWatchModel(ctx context.Context, a *App) watchModel {
	return watchModel{
		ctx:    ctx,
		timer:  a.Timer,
		loc:    a.location(),
		use24h: a.Clock24h,
		keys:   newWatchKeyMap(),
		help:   help.New(),
		status: a.Timer.Status(),
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchRefresh, func(t time.Time) tea.Msg { return watchTickMsg(t) })
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case watchTickMsg:
		m.status = m.timer.Status()
		return m, watchTick()

	case watchTransitionMsg:
		m.busy = false
		m.err = msg.err
		if msg.stopped != nil {
			m.completed = msg.stopped
		}
		m.status = m.timer.Status()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if m.busy {
				return m, nil
			}
			m.busy = true
			m.err = nil
			return m, m.toggle()
		}
	}
	return m, nil
}

func (m watchModel) toggle() tea.Cmd {
	ctx, timer, running := m.ctx, m.timer, m.status.Running()
	return func() tea.Msg {
		if running {
			s, err := timer.Stop(ctx)
			return watchTransitionMsg{stopped: s, err: err}
		}
		_, err := timer.Start(ctx)
		return watchTransitionMsg{err: err}
	}
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.StatePill(m.status.State))
	b.WriteString("\n\n")
	b.WriteString("  " + formatter.StyleClock.Render(formatter.FormatElapsed(m.status.Elapsed)))
	b.WriteString("\n\n")
	b.WriteString(formatter.Dim(formatter.TimerLine(m.status, m.loc, m.use24h)))
	if !m.status.Running() && m.completed != nil {
		b.WriteString("\n")
		b.WriteString(formatter.StyleGreen.Render(formatter.CompletedLine(m.completed)))
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(formatter.StyleRed.Render(ErrorMessage(m.err)))
	}

	return formatter.RenderBox("gktimer", b.String()) + "\n" + m.help.View(m.keys) + "\n"
}
