package ui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"termviz/internal/config"
	"termviz/internal/dataset"
	"termviz/internal/resize"
	"termviz/internal/selection"
	"termviz/internal/ui/views"
)

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	Unselect  key.Binding
	Clear     key.Binding
	Mode      key.Binding
	Log       key.Binding
	Pager     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle selection")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Unselect:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unselect")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "switch mode")),
		Log:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "event log")),
		Pager:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log pager")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns the bindings shown in the mini help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Clear, k.Mode, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Toggle, k.SelectAll, k.Unselect, k.Clear, k.Mode},
		{k.Log, k.Pager, k.Help, k.Quit},
	}
}

// Model represents the UI state
type Model struct {
	cfg      *config.Config
	selector *selection.Selector[*dataset.Series]
	notifier *resize.Notifier
	hook     *resize.Hook

	series   []*dataset.Series
	stepFor  map[string]float64 // live tick step per series name, from config
	capFor   map[string]int     // sliding window capacity per series name
	rng      *rand.Rand
	tickRate time.Duration

	// UI-specific state
	width         int
	height        int
	help          help.Model
	keys          keyMap
	loading       bool
	resizeCount   int
	showEventLog  bool
	statusMessage string
	inPagerMode   bool

	navigator *Navigator
	eventLog  *EventLog
	renderer  *views.Renderer

	// wiring teardown for the current selector, used on mode switch
	offSelector []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, sel *selection.Selector[*dataset.Series], notifier *resize.Notifier, hook *resize.Hook, eventLog *EventLog) *Model {
	m := &Model{
		cfg:          cfg,
		notifier:     notifier,
		hook:         hook,
		stepFor:      make(map[string]float64),
		capFor:       make(map[string]int),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		tickRate:     500 * time.Millisecond,
		help:         help.New(),
		keys:         newKeyMap(),
		showEventLog: cfg.UI.ShowEventLog,
		navigator:    NewNavigator(),
		eventLog:     eventLog,
		renderer:     views.NewRenderer(),
	}

	for _, spec := range cfg.Series {
		m.stepFor[spec.Name] = spec.Step
		m.capFor[spec.Name] = spec.Points
	}

	m.wireSelector(sel)

	notifier.Subscribe(resize.EventResize, func(any) {
		m.resizeCount++
		m.eventLog.Append(resize.EventResize, fmt.Sprintf("%dx%d", m.width, m.height))
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Selector returns the model's current selector.
func (m *Model) Selector() *selection.Selector[*dataset.Series] {
	return m.selector
}

// wireSelector installs sel as the model's selector and subscribes the
// event log to its notifications, tearing down the previous wiring first.
func (m *Model) wireSelector(sel *selection.Selector[*dataset.Series]) {
	for _, off := range m.offSelector {
		off()
	}
	m.selector = sel
	m.offSelector = []func(){
		sel.Subscribe(selection.EventAdd, func(payload any) {
			m.eventLog.Append(selection.EventAdd, seriesName(payload))
		}),
		sel.Subscribe(selection.EventRemove, func(payload any) {
			m.eventLog.Append(selection.EventRemove, seriesName(payload))
		}),
		sel.Subscribe(selection.EventEmpty, func(any) {
			m.eventLog.Append(selection.EventEmpty, "")
		}),
	}
}

func seriesName(payload any) string {
	if s, ok := payload.(*dataset.Series); ok && s != nil {
		return s.Name
	}
	return ""
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		// Republish the host signal through the notifier so decoupled
		// subscribers observe it.
		m.hook.Fire()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleKey processes one key press.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.navigator.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.navigator.MoveDown()
	case key.Matches(msg, m.keys.PageUp):
		m.navigator.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.navigator.PageDown()
	case key.Matches(msg, m.keys.Home):
		m.navigator.Home()
	case key.Matches(msg, m.keys.End):
		m.navigator.End()

	case key.Matches(msg, m.keys.Toggle):
		if s := m.currentSeries(); s != nil {
			m.selector.Toggle(s)
		}

	case key.Matches(msg, m.keys.SelectAll):
		for _, s := range m.series {
			if !m.selector.Contains(s) {
				m.selector.Select(s)
			}
		}

	case key.Matches(msg, m.keys.Unselect):
		if s := m.currentSeries(); s != nil {
			if !m.selector.Unselect(s) {
				m.statusMessage = fmt.Sprintf("%s is not selected", s.Name)
				return m, m.clearStatusLater()
			}
		}

	case key.Matches(msg, m.keys.Clear):
		m.selector.Empty()

	case key.Matches(msg, m.keys.Mode):
		return m.switchMode()

	case key.Matches(msg, m.keys.Log):
		m.showEventLog = !m.showEventLog
		m.updateViewportHeight()

	case key.Matches(msg, m.keys.Pager):
		return m, m.showLogPager()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// switchMode replaces the selector with a fresh one of the other
// cardinality; mode is immutable per selector instance, so switching
// starts over with an empty selection.
func (m *Model) switchMode() (tea.Model, tea.Cmd) {
	mode := selection.Single
	if m.selector.Mode() == selection.Single {
		mode = selection.Multiple
	}
	m.wireSelector(selection.New[*dataset.Series](m.selector.ItemType(), mode))
	log.Info().Stringer("mode", mode).Msg("selection mode switched")
	m.statusMessage = fmt.Sprintf("selection mode: %s", mode)
	return m, m.clearStatusLater()
}

// handleNonKeyboardMsg handles everything that is not a key press.
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m.handleEvent(msg)

	case tickMsg:
		// Don't advance or continue the tick loop while the pager owns
		// the terminal.
		if m.inPagerMode {
			return m, nil
		}
		m.advanceSeries()
		return m, m.tick()

	case logPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Error().Err(msg.err).Msg("log pager failed")
			m.statusMessage = "pager failed, see log file"
			return m, tea.Batch(m.tick(), m.clearStatusLater())
		}
		return m, m.tick()

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

// handleEvent processes notifications forwarded from the application bus.
func (m *Model) handleEvent(msg EventMsg) (tea.Model, tea.Cmd) {
	switch payload := msg.Payload.(type) {
	case dataset.LoadStartedEvent:
		m.loading = true
		m.eventLog.Append(msg.Name, fmt.Sprintf("%d specs", payload.Specs))

	case dataset.SeriesAddedEvent:
		m.series = append(m.series, payload.Series)
		m.navigator.SetMaxIndex(len(m.series) - 1)
		m.eventLog.Append(msg.Name, payload.Series.Name)

	case dataset.LoadCompletedEvent:
		m.loading = false
		m.eventLog.Append(msg.Name, fmt.Sprintf("%d series", payload.Count))
		m.statusMessage = fmt.Sprintf("loaded %d series", payload.Count)
		return m, m.clearStatusLater()

	case config.LoadedEvent:
		m.eventLog.Append(msg.Name, payload.Path)

	case config.SavedEvent:
		m.eventLog.Append(msg.Name, payload.Path)

	default:
		m.eventLog.Append(msg.Name, "")
	}

	return m, nil
}

// advanceSeries pushes one fresh sample onto every series.
func (m *Model) advanceSeries() {
	for _, s := range m.series {
		step, ok := m.stepFor[s.Name]
		if !ok {
			step = 1
		}
		capacity, ok := m.capFor[s.Name]
		if !ok {
			capacity = 60
		}
		s.Push(dataset.NextPoint(m.rng, s.Last(), step), capacity)
	}
}

// currentSeries returns the series under the cursor, if any.
func (m *Model) currentSeries() *dataset.Series {
	i := m.navigator.Cursor()
	if i < 0 || i >= len(m.series) {
		return nil
	}
	return m.series[i]
}

// updateViewportHeight calculates the available height for the series list
func (m *Model) updateViewportHeight() {
	// Account for title, status bar, legend, help and padding
	reserved := 8
	if m.showEventLog {
		reserved += m.cfg.UI.LogLines + 2
	}
	m.navigator.SetViewportHeight(m.height - reserved)
}

// showLogPager opens the full event log in the ov pager.
func (m *Model) showLogPager() tea.Cmd {
	content := m.eventLog.Dump()
	if content == "" {
		m.statusMessage = "event log is empty"
		return m.clearStatusLater()
	}
	m.inPagerMode = true
	program := m.program
	return func() tea.Msg {
		return logPagerMsg{err: NewPagerOps(program).ShowInPager(content)}
	}
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Series:         m.series,
		Cursor:         m.navigator.Cursor(),
		ViewportOffset: m.navigator.ViewportOffset(),
		ViewportHeight: m.navigator.ViewportHeight(),
		Selector:       m.selector,
		Loading:        m.loading,
		StatusMessage:  m.statusMessage,
		ResizeCount:    m.resizeCount,
		ShowEventLog:   m.showEventLog,
		LogLines:       m.eventLog.Tail(m.cfg.UI.LogLines),
		ShowLegend:     m.cfg.UI.ShowLegend,
		HelpView:       m.help.View(m.keys),
	})
}
