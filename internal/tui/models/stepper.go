package models

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"github.com/Dallionking/stepper-tabs/internal/stepfile"
	"github.com/Dallionking/stepper-tabs/internal/stepper"
	"github.com/Dallionking/stepper-tabs/internal/tui/components"
	"github.com/Dallionking/stepper-tabs/internal/tui/styles"
)

// scrollFrame is the delay between two frames of the scroll animation.
const scrollFrame = 16 * time.Millisecond

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type scrollFrameMsg struct{}

type stepFileMsg stepfile.Update

type stepFileClosedMsg struct{}

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Jump key.Binding
	Quit key.Binding
}

func defaultKeyMap(inputEnabled bool) keyMap {
	km := keyMap{
		Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump"),
		),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	km.Jump.SetEnabled(inputEnabled)
	return km
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Jump, k.Quit}
}

// ---------------------------------------------------------------------------
// StepperModel
// ---------------------------------------------------------------------------

// scrollRequest is shared between a model and its selection subscription so
// that copies of the model made by Bubble Tea all see the same request.
type scrollRequest struct {
	index   int
	pending bool
}

// StepperModel is the Bubble Tea model hosting a stepper tab strip, the notes
// of the selected step and a footer.
type StepperModel struct {
	title     string
	presenter *stepper.Presenter
	notes     []string
	cancelSub func()
	request   *scrollRequest

	// Scroll animation.
	offset    int
	target    int
	animating bool

	keys      keyMap
	notesView viewport.Model
	updates   <-chan stepfile.Update
	status    string
	log       pslog.Logger

	// Layout.
	width  int
	height int
}

// NewStepperModel builds a model for doc rendered with cfg.
func NewStepperModel(doc *stepfile.Document, cfg stepper.TabRenderConfig, log pslog.Logger) (StepperModel, error) {
	state, err := doc.State()
	if err != nil {
		return StepperModel{}, err
	}

	title := doc.Title
	if title == "" {
		title = "Stepper"
	}

	m := StepperModel{
		title:     title,
		notes:     doc.Notes(),
		request:   &scrollRequest{},
		keys:      defaultKeyMap(cfg.UserInputEnabled),
		notesView: viewport.New(80, 10),
		log:       log,
		width:     80,
		height:    24,
	}
	m.bind(state, cfg)
	m.refreshNotes()
	return m, nil
}

// WithUpdates makes the model apply step file reloads received on ch.
func (m StepperModel) WithUpdates(ch <-chan stepfile.Update) StepperModel {
	m.updates = ch
	return m
}

// State returns the hosted step state.
func (m StepperModel) State() *stepper.State {
	return m.presenter.State()
}

// Offset returns the current scroll offset of the strip.
func (m StepperModel) Offset() int {
	return m.offset
}

// bind attaches the model to state, replacing any previous subscription.
func (m *StepperModel) bind(state *stepper.State, cfg stepper.TabRenderConfig) {
	if m.cancelSub != nil {
		m.cancelSub()
	}
	req := m.request
	m.cancelSub = state.Subscribe(func(i int) {
		req.index = i
		req.pending = true
	})
	m.presenter = stepper.NewPresenter(state, cfg)
}

// ---------------------------------------------------------------------------
// Bubble Tea Interface
// ---------------------------------------------------------------------------

// Init starts listening for step file reloads, if any.
func (m StepperModel) Init() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	return waitForStepFile(m.updates)
}

// Update handles all messages for the stepper.
func (m StepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notesView.Width = m.width
		m.notesView.Height = m.notesHeight()
		m.refreshNotes()
		// Resizing snaps instead of animating.
		m.offset = m.strip().CenterOffset(m.State().Selected())
		m.target = m.offset
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.State().Next()
		case key.Matches(msg, m.keys.Prev):
			m.State().Previous()
		case key.Matches(msg, m.keys.Jump):
			m.tap(int(msg.Runes[0]-'1'), "key")
		default:
			m.notesView, cmd = m.notesView.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == m.stripRow() {
			if i := m.strip().TabAt(msg.X); i >= 0 {
				m.tap(i, "mouse")
			}
			break
		}
		m.notesView, cmd = m.notesView.Update(msg)

	case scrollFrameMsg:
		return m.stepScroll()

	case stepFileMsg:
		m.applyStepFile(stepfile.Update(msg))
		return m.afterChange(waitForStepFile(m.updates))

	case stepFileClosedMsg:
		m.updates = nil
		return m, nil
	}

	return m.afterChange(cmd)
}

// View renders the full stepper screen.
func (m StepperModel) View() string {
	sections := []string{
		m.renderHeader(),
		"",
		m.strip().Render(),
		"",
	}
	if m.hasNotes() {
		sections = append(sections, m.notesView.View(), "")
	}
	if m.status != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(styles.StatusWarn).Render(m.status))
	}
	sections = append(sections, components.Footer{Bindings: m.keys.bindings(), Width: m.width}.Render())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// ---------------------------------------------------------------------------
// Selection
// ---------------------------------------------------------------------------

func (m *StepperModel) tap(i int, source string) {
	if i >= m.State().Len() {
		return
	}
	if m.presenter.Tap(i) {
		m.log.Debug("tap accepted", "tab", i, "source", source)
		return
	}
	m.log.Debug("tap rejected", "tab", i, "source", source, "selected", m.State().Selected())
}

// afterChange turns a pending selection change into a scroll animation and
// refreshes whatever depends on the selection.
func (m StepperModel) afterChange(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if !m.request.pending {
		return m, cmd
	}
	m.request.pending = false
	m.refreshNotes()
	m.target = m.strip().CenterOffset(m.request.index)
	if m.animating || m.target == m.offset {
		return m, cmd
	}
	m.animating = true
	return m, tea.Batch(cmd, tickScroll())
}

func (m StepperModel) stepScroll() (tea.Model, tea.Cmd) {
	diff := m.target - m.offset
	if diff == 0 {
		m.animating = false
		return m, nil
	}
	step := diff / 2
	if step == 0 {
		step = diff
	}
	m.offset += step
	if m.offset == m.target {
		m.animating = false
		return m, nil
	}
	return m, tickScroll()
}

// ---------------------------------------------------------------------------
// Step file reloads
// ---------------------------------------------------------------------------

func (m *StepperModel) applyStepFile(u stepfile.Update) {
	if u.Err != nil {
		m.status = "reload failed: " + u.Err.Error()
		m.log.Warn("step file reload failed", "err", u.Err)
		return
	}
	m.status = ""

	prev := m.State().Selected()
	state, err := stepper.New(u.Doc.Labels())
	if err != nil {
		m.status = "reload failed: " + err.Error()
		return
	}
	state.SetSelected(prev)

	if u.Doc.Title != "" {
		m.title = u.Doc.Title
	}
	m.notes = u.Doc.Notes()
	m.bind(state, m.presenter.Config())

	// The new state never notified, so request the scroll by hand.
	m.request.index = state.Selected()
	m.request.pending = true
	m.log.Info("step file reloaded", "steps", state.Len(), "selected", state.Selected())
}

// ---------------------------------------------------------------------------
// Tea Commands
// ---------------------------------------------------------------------------

func waitForStepFile(ch <-chan stepfile.Update) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		u, ok := <-ch
		if !ok {
			return stepFileClosedMsg{}
		}
		return stepFileMsg(u)
	}
}

func tickScroll() tea.Cmd {
	return tea.Tick(scrollFrame, func(_ time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

// ---------------------------------------------------------------------------
// View helpers
// ---------------------------------------------------------------------------

func (m StepperModel) strip() components.StepperTabs {
	return components.StepperTabs{
		Tabs:   m.presenter.Tabs(),
		Config: m.presenter.Config(),
		Width:  m.width,
		Offset: m.offset,
	}
}

func (m StepperModel) renderHeader() string {
	cfg := m.presenter.Config()
	return components.Header{
		Title:   m.title,
		Current: m.State().Selected(),
		Total:   m.State().Len(),
		Flat:    !cfg.Procedural,
		Locked:  !cfg.UserInputEnabled || m.State().Selected() > cfg.AllowInputUntil,
		Width:   m.width,
	}.Render()
}

// stripRow is the screen row the strip is drawn on.
func (m StepperModel) stripRow() int {
	return lipgloss.Height(m.renderHeader()) + 1
}

func (m StepperModel) notesHeight() int {
	return max(m.height-7, 3)
}

func (m StepperModel) hasNotes() bool {
	for _, n := range m.notes {
		if strings.TrimSpace(n) != "" {
			return true
		}
	}
	return false
}

func (m *StepperModel) refreshNotes() {
	i := m.State().Selected()
	if i >= len(m.notes) || strings.TrimSpace(m.notes[i]) == "" {
		m.notesView.SetContent(styles.Dim("No notes for this step."))
		return
	}
	m.notesView.SetContent(renderMarkdown(m.notes[i], max(m.width-2, 20)))
	m.notesView.GotoTop()
}

func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
