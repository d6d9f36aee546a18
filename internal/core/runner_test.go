package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pseudonium/Cell-simulator/pkg/life"
)

// mockRenderer records the calls made through the Renderer boundary.
type mockRenderer struct {
	inits   int
	updates [][]life.Coordinate
}

func (m *mockRenderer) InitGrid(*life.Grid) { m.inits++ }

func (m *mockRenderer) UpdateCells(_ *life.Grid, changed []life.Coordinate) {
	m.updates = append(m.updates, changed)
}

func blinkerGrid(t *testing.T) *life.Grid {
	t.Helper()
	g, err := life.New(life.Config{
		Size:  5,
		Alive: []life.Coordinate{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
	})
	require.NoError(t, err)
	return g
}

func TestRunnerPaintsSnapshotThenForwardsTicks(t *testing.T) {
	m := &mockRenderer{}
	r := NewRunner(blinkerGrid(t), m, nil)

	require.Equal(t, 1, m.inits, "runner must paint the initial snapshot")
	require.Empty(t, m.updates, "no ticks before Update")

	// A nil timer means one tick per Update.
	r.Update()
	r.Update()
	require.Len(t, m.updates, 2)
	for _, changed := range m.updates {
		assert.NotEmpty(t, changed)
	}
}

func TestRunnerPauseAndSingleStep(t *testing.T) {
	m := &mockRenderer{}
	r := NewRunner(blinkerGrid(t), m, nil)

	r.TogglePause()
	require.True(t, r.Paused())
	r.Update()
	assert.Empty(t, m.updates, "paused runner must not tick")

	r.StepOnce()
	r.Update()
	r.Update()
	assert.Len(t, m.updates, 1, "single step runs exactly one tick while paused")

	r.Resume()
	require.False(t, r.Paused())
	r.Update()
	assert.Len(t, m.updates, 2)
}

func TestRunnerReplaceRepaintsSnapshot(t *testing.T) {
	m := &mockRenderer{}
	r := NewRunner(blinkerGrid(t), m, nil)

	fresh := blinkerGrid(t)
	r.Replace(fresh)

	assert.Equal(t, 2, m.inits)
	assert.Same(t, fresh, r.Grid())
}
