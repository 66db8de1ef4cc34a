// Package tui provides a Bubble Tea terminal user interface for discogs-labels.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/discogs-labels/internal/config"
	"github.com/handiism/discogs-labels/internal/discogs"
	"github.com/handiism/discogs-labels/internal/generate"
	"github.com/handiism/discogs-labels/internal/model"
	"github.com/handiism/discogs-labels/internal/printing"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

const maxLogs = 10

var errCancelled = errors.New("cancelled by user")

// State represents the current UI state.
type State int

const (
	StateSelect State = iota
	StatePreparing
	StateGenerating
	StateComplete
	StateError
)

type focus int

const (
	focusProfiles focus = iota
	focusOutput
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   generate.ProgressLevel
}

// eventFeed collects progress events from the generation goroutine until
// the next tick picks them up.
type eventFeed struct {
	mu     sync.Mutex
	events []generate.ProgressEvent
}

func (f *eventFeed) push(e generate.ProgressEvent) {
	f.mu.Lock()
	f.events = append(f.events, e)
	f.mu.Unlock()
}

func (f *eventFeed) drain() []generate.ProgressEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.events
	f.events = nil
	return events
}

// Options configures a TUI session.
type Options struct {
	ConfigPath string
	InputPath  string
	OutputPath string
	Renderer   printing.PDFRenderer
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	focus    focus
	output   textinput.Model
	spinner  spinner.Model
	progress progress.Model

	file      *config.File
	profiles  []string
	cursor    int
	inputPath string
	renderer  printing.PDFRenderer

	logs    []LogEntry
	feed    *eventFeed
	run     int
	manager *generate.Manager
	total   int
	built   int
	result  *generate.Result
	err     error

	// Generation context
	ctx    context.Context
	cancel context.CancelFunc

	// Options
	inventory   bool
	gridLines   bool
	skipInvalid bool
	verbose     bool

	width  int
	height int
}

// NewModel loads the configuration file and creates a new TUI model.
func NewModel(opts Options) (Model, error) {
	file, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Model{}, err
	}
	return newModel(file, opts), nil
}

func newModel(file *config.File, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "labels.pdf"
	ti.CharLimit = 500
	ti.Width = 60
	ti.SetValue(opts.OutputPath)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateSelect,
		focus:     focusProfiles,
		output:    ti,
		spinner:   sp,
		progress:  prog,
		file:      file,
		profiles:  file.ProfileNames(),
		inputPath: opts.InputPath,
		renderer:  opts.Renderer,
		feed:      &eventFeed{},
		gridLines: true,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// PreparedMsg is sent once the profile is resolved and the export
	// counted. Run identifies the attempt it belongs to.
	PreparedMsg struct {
		Run     int
		Manager *generate.Manager
		Total   int
		Err     error
	}

	// DoneMsg is sent when generation finishes.
	DoneMsg struct {
		Run    int
		Result *generate.Result
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case PreparedMsg:
		// results of a cancelled or reset attempt are dropped
		if msg.Run != m.run || m.state != StatePreparing {
			break
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.manager = msg.Manager
		m.total = msg.Total
		m.state = StateGenerating
		cmds = append(cmds, m.startGeneration(), m.tickProgress())

	case DoneMsg:
		if msg.Run != m.run || m.state != StateGenerating {
			break
		}
		m.collectLogs()
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = errCancelled
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			m.result = msg.Result
			m.built = msg.Result.Labels
		}

	case TickMsg:
		if m.manager != nil && m.state == StateGenerating {
			m.collectLogs()
			m.built = m.manager.Progress()
			cmds = append(cmds, m.progress.SetPercent(m.percent()), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateSelect && m.focus == focusOutput {
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey reacts to key presses. It reports false when the key should
// reach the text input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return tea.Quit, true

	case "esc":
		switch m.state {
		case StateSelect:
			return tea.Quit, true
		case StatePreparing, StateGenerating:
			m.cancel()
			m.state = StateError
			m.err = errCancelled
		}
		return nil, true

	case "tab":
		if m.state == StateSelect {
			m.toggleFocus()
		}
		return nil, true

	case "enter":
		if m.state == StateSelect && len(m.profiles) > 0 && strings.TrimSpace(m.output.Value()) != "" {
			m.state = StatePreparing
			m.output.Blur()
			return tea.Batch(m.prepare(), m.spinner.Tick), true
		}
		return nil, true
	}

	if m.state == StateSelect && m.focus == focusOutput {
		return nil, false
	}

	switch msg.String() {
	case "up", "k":
		if m.state == StateSelect && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.state == StateSelect && m.cursor < len(m.profiles)-1 {
			m.cursor++
		}
	case "i":
		if m.state == StateSelect {
			m.inventory = !m.inventory
		}
	case "g":
		if m.state == StateSelect {
			m.gridLines = !m.gridLines
		}
	case "s":
		if m.state == StateSelect {
			m.skipInvalid = !m.skipInvalid
		}
	case "v":
		if m.state == StateSelect {
			m.verbose = !m.verbose
		}
	case "q":
		if m.state == StateComplete || m.state == StateError {
			return tea.Quit, true
		}
	case "r":
		if m.state == StateComplete || m.state == StateError {
			m.reset()
		}
	}
	return nil, true
}

func (m *Model) toggleFocus() {
	if m.focus == focusProfiles {
		m.focus = focusOutput
		m.output.Focus()
		return
	}
	m.focus = focusProfiles
	m.output.Blur()
}

// reset prepares the model for another run with the same configuration.
func (m *Model) reset() {
	m.state = StateSelect
	m.focus = focusProfiles
	m.logs = nil
	m.feed = &eventFeed{}
	m.manager = nil
	m.total = 0
	m.built = 0
	m.result = nil
	m.err = nil
	m.run++
	m.ctx, m.cancel = context.WithCancel(context.Background())
}

func (m *Model) collectLogs() {
	for _, event := range m.feed.drain() {
		// Filter verbose messages if not in verbose mode
		if event.Level == generate.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	}
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m Model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.built) / float64(m.total)
}

func (m Model) shape() model.Shape {
	return model.ShapeFor(m.inventory)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Discogs Labels"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("QR code label sheets from Discogs exports"))
	b.WriteString("\n\n")

	switch m.state {
	case StateSelect:
		b.WriteString(m.viewSelect())
	case StatePreparing:
		b.WriteString(m.viewPreparing())
	case StateGenerating:
		b.WriteString(m.viewGenerating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewSelect() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Select a profile:"))
	b.WriteString("\n\n")

	if len(m.profiles) == 0 {
		b.WriteString(warningStyle.Render(fmt.Sprintf("  no profiles in %s", m.file.Path())))
		b.WriteString("\n")
	}
	for i, name := range m.profiles {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render("Output PDF:"))
	b.WriteString("\n")
	b.WriteString(m.output.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s Inventory export (i)\n", check(m.inventory))
	fmt.Fprintf(&b, "  %s Grid lines (g)\n", check(m.gridLines))
	fmt.Fprintf(&b, "  %s Skip rows without id (s)\n", check(m.skipInvalid))
	fmt.Fprintf(&b, "  %s Verbose output (v)\n", check(m.verbose))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Input: %s", m.inputPath)))
	b.WriteString("\n")

	return b.String()
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewPreparing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading export..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewGenerating() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Generating %s labels", m.profiles[m.cursor])))
	b.WriteString("\n\n")

	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Labels: %d/%d", m.built, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.result == nil || !m.result.Written {
		b.WriteString(warningStyle.Render("No records found, nothing written."))
		b.WriteString("\n")
		return b.String()
	}

	box := boxStyle.Render(fmt.Sprintf(
		"Sheet written!\n\n"+
			"Labels: %d\n"+
			"Skipped: %d\n"+
			"Pages: %d\n"+
			"Output: %s",
		m.result.Labels,
		m.result.Skipped,
		m.result.Pages,
		m.result.OutputPath,
	))
	b.WriteString(box)
	b.WriteString("\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		fmt.Fprintf(&b, "  %s\n\n", m.err.Error())
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case generate.LevelError:
			style = errorStyle
			prefix = "✗"
		case generate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case generate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case generate.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateSelect:
		if m.focus == focusOutput {
			return "enter: generate • tab: profiles • esc: quit"
		}
		return "↑/↓: profile • tab: output • i/g/s/v: options • enter: generate • esc: quit"
	case StatePreparing, StateGenerating:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new sheet • q: quit"
	}
	return ""
}

// prepare resolves the selected profile, counts the records and creates
// the manager.
func (m Model) prepare() tea.Cmd {
	name := m.profiles[m.cursor]
	file := m.file
	renderer := m.renderer
	feed := m.feed
	path := m.inputPath
	shape := m.shape()
	run := m.run

	return func() tea.Msg {
		profile, err := file.Profile(name)
		if err != nil {
			return PreparedMsg{Run: run, Err: err}
		}

		total, err := countRecords(path, shape)
		if err != nil {
			return PreparedMsg{Run: run, Err: err}
		}

		manager := generate.NewManager(profile, renderer, feed.push)
		return PreparedMsg{Run: run, Manager: manager, Total: total}
	}
}

// startGeneration runs the pipeline in background.
func (m Model) startGeneration() tea.Cmd {
	ctx := m.ctx
	manager := m.manager
	run := m.run
	opts := generate.Options{
		InputPath:   m.inputPath,
		OutputPath:  strings.TrimSpace(m.output.Value()),
		Shape:       m.shape(),
		SkipInvalid: m.skipInvalid,
		GridLines:   m.gridLines,
	}

	return func() tea.Msg {
		result, err := manager.Run(ctx, opts)
		return DoneMsg{Run: run, Result: result, Err: err}
	}
}

func countRecords(path string, shape model.Shape) (int, error) {
	reader, err := discogs.Open(path, shape)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	n := 0
	for _, err := range reader.Records() {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// Run starts the TUI application.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
