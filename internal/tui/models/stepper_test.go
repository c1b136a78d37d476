package models

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dallionking/stepper-tabs/internal/logx"
	"github.com/Dallionking/stepper-tabs/internal/stepfile"
	"github.com/Dallionking/stepper-tabs/internal/stepper"
)

func newModel(t *testing.T, cfg stepper.TabRenderConfig, width int) StepperModel {
	t.Helper()
	m, err := NewStepperModel(stepfile.FromLabels([]string{"A", "B", "C"}), cfg, logx.Discard())
	require.NoError(t, err)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: 24})
	return m
}

func update(t *testing.T, m StepperModel, msg tea.Msg) (StepperModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(StepperModel)
	require.True(t, ok)
	return sm, cmd
}

func enabled(t *testing.T) stepper.TabRenderConfig {
	t.Helper()
	cfg, err := stepper.NewConfig(true)
	require.NoError(t, err)
	return cfg
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestStepperModelNavigationKeys(t *testing.T) {
	m := newModel(t, enabled(t), 80)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.State().Selected())

	m, _ = update(t, m, runes("l"))
	m, _ = update(t, m, runes("l"))
	assert.Equal(t, 0, m.State().Selected(), "next wraps")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.State().Selected(), "previous wraps")
}

func TestStepperModelJumpKeys(t *testing.T) {
	m := newModel(t, enabled(t), 80)

	m, _ = update(t, m, runes("3"))
	assert.Equal(t, 2, m.State().Selected())

	m, _ = update(t, m, runes("9"))
	assert.Equal(t, 2, m.State().Selected(), "jump past the last tab is ignored")
}

func TestStepperModelJumpDisabled(t *testing.T) {
	cfg, err := stepper.NewConfig(false)
	require.NoError(t, err)
	m := newModel(t, cfg, 80)

	m, _ = update(t, m, runes("2"))
	m, _ = update(t, m, click(12, 2))
	assert.Equal(t, 0, m.State().Selected())
	assert.NotContains(t, m.View(), "jump")

	// Programmatic navigation is not gated.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.State().Selected())
}

func TestStepperModelJumpBounded(t *testing.T) {
	cfg, err := stepper.NewBoundedConfig(1)
	require.NoError(t, err)
	m := newModel(t, cfg, 80)

	m, _ = update(t, m, runes("3"))
	assert.Equal(t, 0, m.State().Selected())

	m, _ = update(t, m, runes("1"))
	assert.Equal(t, 0, m.State().Selected())
}

func TestStepperModelMouseTap(t *testing.T) {
	m := newModel(t, enabled(t), 80)

	// Second tab spans columns [10, 18) of the strip on row 2.
	m, _ = update(t, m, click(12, 2))
	assert.Equal(t, 1, m.State().Selected())

	m, _ = update(t, m, click(20, 0))
	assert.Equal(t, 1, m.State().Selected(), "clicks off the strip row are ignored")

	m, _ = update(t, m, click(9, 2))
	assert.Equal(t, 1, m.State().Selected(), "clicks on a gap are ignored")
}

func TestStepperModelScrollAnimation(t *testing.T) {
	m := newModel(t, enabled(t), 10)
	require.Equal(t, 0, m.Offset())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd, "selection change should start the scroll animation")

	for i := 0; i < 20 && m.Offset() != 9; i++ {
		m, _ = update(t, m, scrollFrameMsg{})
	}
	assert.Equal(t, 9, m.Offset())

	m, cmd = update(t, m, scrollFrameMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, 9, m.Offset())
}

func TestStepperModelNoScrollWhenStripFits(t *testing.T) {
	m := newModel(t, enabled(t), 80)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Offset())
}

func TestStepperModelResizeSnaps(t *testing.T) {
	m := newModel(t, enabled(t), 80)
	m, _ = update(t, m, runes("3"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 24})
	assert.Equal(t, 18, m.Offset())
}

func TestStepperModelReloadKeepsSelection(t *testing.T) {
	m := newModel(t, enabled(t), 80)
	m, _ = update(t, m, runes("3"))

	doc := stepfile.FromLabels([]string{"x", "y"})
	doc.Title = "Renamed"
	m, _ = update(t, m, stepFileMsg(stepfile.Update{Doc: doc}))

	assert.Equal(t, 2, m.State().Len())
	assert.Equal(t, 1, m.State().Selected())
	assert.Contains(t, m.View(), "Renamed")
	assert.Contains(t, m.View(), "2. y")

	// The new state is wired up: taps still work.
	m, _ = update(t, m, runes("1"))
	assert.Equal(t, 0, m.State().Selected())
}

func TestStepperModelReloadError(t *testing.T) {
	m := newModel(t, enabled(t), 80)
	m, _ = update(t, m, stepFileMsg(stepfile.Update{Err: errors.New("boom")}))

	assert.Equal(t, 3, m.State().Len())
	assert.Contains(t, m.View(), "reload failed: boom")
}

func TestStepperModelUpdatesChannel(t *testing.T) {
	ch := make(chan stepfile.Update, 1)
	m := newModel(t, enabled(t), 80).WithUpdates(ch)

	cmd := m.Init()
	require.NotNil(t, cmd)

	ch <- stepfile.Update{Doc: stepfile.FromLabels([]string{"only"})}
	msg := cmd()
	m, cmd = update(t, m, msg)
	assert.Equal(t, 1, m.State().Len())
	require.NotNil(t, cmd)

	close(ch)
	m, _ = update(t, m, stepFileClosedMsg{})
	assert.Nil(t, m.Init())
}

func TestStepperModelView(t *testing.T) {
	m := newModel(t, enabled(t), 80)
	out := m.View()

	assert.Contains(t, out, "Stepper")
	assert.Contains(t, out, "1. A")
	assert.Contains(t, out, "3. C")
	assert.Contains(t, out, "Step")
	assert.Contains(t, out, "quit")
}

func TestStepperModelQuit(t *testing.T) {
	m := newModel(t, enabled(t), 80)
	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
