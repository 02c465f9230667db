// Package treeview is a read-only bubbletea inspector for the live
// container tree: it fetches a snapshot over the IPC socket, then keeps
// it current by subscribing to the outbound event stream and re-fetching
// whenever a tree-shaped event arrives.
package treeview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/tilewm/internal/ipc"
)

type treeMsg struct {
	root ipc.ContainerDto
	err  error
}

type eventMsg struct {
	evt ipc.Event
	err error
}

type model struct {
	client *ipc.Client
	keys   keyMap

	events  <-chan ipc.Event
	errs    <-chan error
	stop    chan struct{}

	root      ipc.ContainerDto
	lines     []line
	cursor    int
	collapsed map[uint64]struct{}

	status string
	vp     viewport.Model
	ready  bool

	width, height int
}

// New builds the inspector's root model, bound to a daemon reachable at
// socketPath.
func New(socketPath string) model {
	return model{
		client:    ipc.NewClient(socketPath),
		keys:      defaultKeyMap(),
		collapsed: make(map[uint64]struct{}),
		stop:      make(chan struct{}),
	}
}

func fetchTree(client *ipc.Client) tea.Cmd {
	return func() tea.Msg {
		root, err := client.GetTree()
		return treeMsg{root: root, err: err}
	}
}

func waitForEvent(events <-chan ipc.Event, errs <-chan error) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt, ok := <-events:
			if !ok {
				return eventMsg{err: <-errs}
			}
			return eventMsg{evt: evt}
		case err := <-errs:
			return eventMsg{err: err}
		}
	}
}

func subscribe(m model) tea.Cmd {
	return func() tea.Msg {
		events, errs := m.client.Subscribe(m.stop)
		return subscribedMsg{events: events, errs: errs}
	}
}

type subscribedMsg struct {
	events <-chan ipc.Event
	errs   <-chan error
}

func (m model) Init() tea.Cmd {
	return tea.Batch(fetchTree(m.client), subscribe(m))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		vpHeight := m.height - headerHeight - footerHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = m.width
			m.vp.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil

	case treeMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("daemon unreachable: %v", msg.err)
			return m, nil
		}
		m.root = msg.root
		m.status = ""
		m.rebuildLines()
		return m, nil

	case subscribedMsg:
		m.events, m.errs = msg.events, msg.errs
		return m, waitForEvent(m.events, m.errs)

	case eventMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("event stream ended: %v", msg.err)
			return m, nil
		}
		return m, tea.Batch(fetchTree(m.client), waitForEvent(m.events, m.errs))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			close(m.stop)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.refreshViewport()
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.lines)-1 {
				m.cursor++
			}
			m.refreshViewport()
		case key.Matches(msg, m.keys.Toggle):
			m.toggleCursor()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *model) rebuildLines() {
	m.lines = flatten(m.root, m.collapsed)
	if m.cursor >= len(m.lines) {
		m.cursor = len(m.lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.refreshViewport()
}

func (m *model) toggleCursor() {
	if m.cursor >= len(m.lines) {
		return
	}
	l := m.lines[m.cursor]
	if !l.hasKids {
		return
	}
	if _, ok := m.collapsed[l.id]; ok {
		delete(m.collapsed, l.id)
	} else {
		m.collapsed[l.id] = struct{}{}
	}
	m.rebuildLines()
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	rows := make([]string, len(m.lines))
	for i, l := range m.lines {
		rows[i] = l.render(i == m.cursor)
	}
	content := ""
	for i, r := range rows {
		if i > 0 {
			content += "\n"
		}
		content += r
	}
	m.vp.SetContent(content)
}

func (m model) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("tilewm tree inspector")
	if m.status != "" {
		title += "  " + dimStyle.Render(m.status)
	}
	return title
}

func (m model) footerView() string {
	return dimStyle.Render(m.keys.helpLine())
}

func (m model) View() string {
	if !m.ready {
		return "loading...\n"
	}
	return m.headerView() + "\n" + m.vp.View() + "\n" + m.footerView()
}

// Run starts the inspector, blocking until the user quits.
func Run(socketPath string) error {
	m := New(socketPath)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
