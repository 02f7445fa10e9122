package tui

import (
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bthakur/termfolio/internal/blog"
	"github.com/bthakur/termfolio/internal/portfolio"
	"github.com/bthakur/termfolio/internal/terminal"
)

func newTestModel(t *testing.T) (Model, *terminal.Session) {
	t.Helper()
	exit := &atomic.Bool{}
	p, err := portfolio.Default()
	require.NoError(t, err)
	store := blog.NewBlogService(blog.NewMemoryStore())
	session := terminal.NewSession(p, store, terminal.OnClose(func() { exit.Store(true) }))
	t.Cleanup(session.Close)
	return NewModel(session, nil, exit), session
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	for _, r := range line {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func TestModelSubmit(t *testing.T) {
	m, session := newTestModel(t)
	m = typeLine(t, m, "whoami")
	assert.Equal(t, "whoami", m.input.Value())

	m, _ = press(m, tea.KeyEnter)
	assert.Equal(t, "", m.input.Value())
	require.Equal(t, 2, session.History.Len())
	assert.Contains(t, m.View(), "bishwathakur")
}

func TestModelBreadcrumb(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeLine(t, m, "skills")
	m, _ = press(m, tea.KeyEnter)

	assert.Contains(t, m.View(), terminal.Prompt+"/skills")
}

func TestModelHistoryRecall(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeLine(t, m, "pwd")
	m, _ = press(m, tea.KeyEnter)
	m = typeLine(t, m, "about")
	m, _ = press(m, tea.KeyEnter)

	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "about", m.input.Value())
	m, _ = press(m, tea.KeyUp)
	assert.Equal(t, "pwd", m.input.Value())
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, "about", m.input.Value())
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, "", m.input.Value())
}

func TestModelTabCompletion(t *testing.T) {
	m, _ := newTestModel(t)

	m = typeLine(t, m, "edu")
	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, "education", m.input.Value())
	assert.Empty(t, m.hint)

	m.input.SetValue("e")
	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, "e", m.input.Value())
	assert.Contains(t, m.hint, "experience")
	assert.Contains(t, m.hint, "exit")
}

func TestModelExit(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeLine(t, m, "exit")

	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Equal(t, "", m.View())
}

func TestModelBootSequence(t *testing.T) {
	m, _ := newTestModel(t)
	for range bootSequence {
		next, _ := m.Update(bootStepMsg{})
		m = next.(Model)
	}
	view := m.View()
	for _, line := range bootSequence {
		assert.Contains(t, view, line)
	}
	assert.Contains(t, view, terminal.WelcomeMessage)
}
