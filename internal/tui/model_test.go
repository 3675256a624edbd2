package tui

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Veraticus/pocketwatch/internal/api"
	"github.com/Veraticus/pocketwatch/internal/dashboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() Model {
	return newModel(dashboard.New(api.NewMockFetcher()))
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitialPhaseIsLoading(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, phaseLoading, m.phase)
	assert.NotNil(t, m.Init())
}

func TestLoadedReady(t *testing.T) {
	m := newTestModel()
	snap := dashboard.SampleSnapshot()

	updated, _ := m.Update(loadedMsg{result: dashboard.Result{
		State:    dashboard.StateReady,
		Snapshot: snap,
	}})
	model := updated.(Model)

	assert.Equal(t, phaseReady, model.phase)
	assert.Same(t, snap, model.snapshot)
	assert.NoError(t, model.lastError)
}

func TestLoadedGuestShowsSampleData(t *testing.T) {
	m := newTestModel()
	authErr := &api.Error{StatusCode: http.StatusUnauthorized}

	updated, _ := m.Update(loadedMsg{result: dashboard.Result{
		State: dashboard.StateGuest,
		Err:   authErr,
	}})
	model := updated.(Model)

	assert.Equal(t, phaseGuest, model.phase)
	require.NotNil(t, model.snapshot)
	assert.NotEmpty(t, model.snapshot.Accounts)
}

func TestLoadedFailedKeepsError(t *testing.T) {
	m := newTestModel()
	boom := errors.New("connection refused")

	updated, _ := m.Update(loadedMsg{result: dashboard.Result{
		State: dashboard.StateFailed,
		Err:   boom,
	}})
	model := updated.(Model)

	assert.Equal(t, phaseFailed, model.phase)
	assert.Nil(t, model.snapshot)
	assert.ErrorIs(t, model.lastError, boom)
}

func TestReloadResetsToLoading(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(loadedMsg{result: dashboard.Result{
		State: dashboard.StateFailed,
		Err:   errors.New("boom"),
	}})
	model := updated.(Model)

	updated, cmd := model.Update(keyPress('r'))
	model = updated.(Model)

	assert.Equal(t, phaseLoading, model.phase)
	assert.Nil(t, model.snapshot)
	assert.NoError(t, model.lastError)
	assert.NotNil(t, cmd)
}

func TestReloadIgnoredWhileLoading(t *testing.T) {
	m := newTestModel()

	updated, cmd := m.Update(keyPress('r'))
	model := updated.(Model)

	assert.Equal(t, phaseLoading, model.phase)
	assert.Nil(t, cmd)
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyPress('q'), {Type: tea.KeyCtrlC}} {
		m := newTestModel()
		updated, cmd := m.Update(msg)
		model := updated.(Model)

		assert.True(t, model.quitting)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(Model)

	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}

func TestViewPerPhase(t *testing.T) {
	m := newTestModel()
	m.width = 100
	m.height = 40

	assert.NotEmpty(t, m.View())

	updated, _ := m.Update(loadedMsg{result: dashboard.Result{
		State:    dashboard.StateReady,
		Snapshot: dashboard.SampleSnapshot(),
	}})
	ready := updated.(Model)
	ready.width = 100
	assert.Contains(t, ready.View(), "Everyday Checking")

	updated, _ = m.Update(loadedMsg{result: dashboard.Result{State: dashboard.StateGuest}})
	guest := updated.(Model)
	guest.width = 100
	assert.Contains(t, guest.View(), "Guest mode")

	updated, _ = m.Update(loadedMsg{result: dashboard.Result{
		State: dashboard.StateFailed,
		Err:   errors.New("connection refused"),
	}})
	failed := updated.(Model)
	assert.Contains(t, failed.View(), "connection refused")
}
