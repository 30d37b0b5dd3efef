package session_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/grid"
	"github.com/katalvlaran/astargrid/internal/session"
)

func pos(r, c int) grid.Position { return grid.Position{Row: r, Col: c} }

// TestPaint_Sequence follows the click order: start, end, then walls.
func TestPaint_Sequence(t *testing.T) {
	s, err := session.New(4, nil)
	require.NoError(t, err)
	assert.False(t, s.Ready())

	steps := []struct {
		at   grid.Position
		want grid.State
	}{
		{pos(0, 0), grid.Start},
		{pos(0, 0), grid.Start}, // clicking the start again is a no-op
		{pos(3, 3), grid.End},
		{pos(1, 1), grid.Wall},
		{pos(3, 3), grid.End}, // endpoints never become walls
		{pos(0, 0), grid.Start},
	}
	for i, st := range steps {
		got, err := s.Paint(st.at)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, st.want, got, "step %d at %v", i, st.at)
	}
	assert.True(t, s.Ready())
	assert.Equal(t, pos(0, 0), s.Start().Position())
	assert.Equal(t, pos(3, 3), s.End().Position())
}

// TestErase_DropsEndpoint re-places the start after erasing it.
func TestErase_DropsEndpoint(t *testing.T) {
	s, err := session.New(3, nil)
	require.NoError(t, err)
	_, _ = s.Paint(pos(0, 0))
	_, _ = s.Paint(pos(2, 2))

	require.NoError(t, s.Erase(pos(0, 0)))
	assert.Nil(t, s.Start())
	assert.False(t, s.Ready())
	assert.Equal(t, grid.Empty, s.Grid().Cell(pos(0, 0)).State())

	// Next free click becomes the start again, even on another cell.
	got, err := s.Paint(pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, grid.Start, got)

	require.NoError(t, s.Erase(pos(2, 2)))
	assert.Nil(t, s.End())
}

func TestPaint_OutOfRange(t *testing.T) {
	s, err := session.New(2, nil)
	require.NoError(t, err)
	_, err = s.Paint(pos(2, 0))
	assert.ErrorIs(t, err, session.ErrOutOfRange)
	assert.ErrorIs(t, s.Erase(pos(-1, 0)), session.ErrOutOfRange)
}

func TestReset_ForgetsEndpoints(t *testing.T) {
	s, err := session.New(3, nil)
	require.NoError(t, err)
	_, _ = s.Paint(pos(0, 0))
	_, _ = s.Paint(pos(2, 2))
	_, _ = s.Paint(pos(1, 1))

	require.NoError(t, s.Reset())
	assert.Nil(t, s.Start())
	assert.Nil(t, s.End())
	assert.Equal(t, 9, s.Grid().Count(grid.Empty))
}

func TestFromGrid_AdoptsEndpoints(t *testing.T) {
	g, err := grid.Parse([]string{
		"..S",
		".#.",
		"E..",
	})
	require.NoError(t, err)
	s := session.FromGrid(g, nil)
	require.True(t, s.Ready())
	assert.Equal(t, pos(0, 2), s.Start().Position())
	assert.Equal(t, pos(2, 0), s.End().Position())
}

//----------------------------------------------------------------------------//
// Run
//----------------------------------------------------------------------------//

func TestRun_NotReady(t *testing.T) {
	s, err := session.New(3, nil)
	require.NoError(t, err)
	_, _ = s.Paint(pos(0, 0))
	_, err = s.Run(context.Background(), nil)
	assert.ErrorIs(t, err, session.ErrNotReady)
}

// TestRun_RecomputesAfterEdits paints walls after a first run and expects the
// second run to see them without any manual recompute.
func TestRun_RecomputesAfterEdits(t *testing.T) {
	s, err := session.New(5, nil)
	require.NoError(t, err)
	_, _ = s.Paint(pos(0, 0))
	_, _ = s.Paint(pos(0, 4))

	res, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 4, res.Cost)

	// Column 2 walled on rows 0–3: route must dip to row 4.
	for r := 0; r < 4; r++ {
		_, err := s.Paint(pos(r, 2))
		require.NoError(t, err)
	}
	res, err = s.Run(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 12, res.Cost)
	assert.Contains(t, res.Path, pos(4, 2))
	assert.Equal(t, 11, s.Grid().Count(grid.Path), "stale marks from the first run were cleared")
}

// TestRun_BusyDuringSearch tries to mutate the grid from inside the step hook.
func TestRun_BusyDuringSearch(t *testing.T) {
	s, err := session.New(4, nil)
	require.NoError(t, err)
	_, _ = s.Paint(pos(0, 0))
	_, _ = s.Paint(pos(3, 3))

	var paintErr, eraseErr, resetErr, runErr error
	once := false
	res, err := s.Run(context.Background(), func() {
		if once {
			return
		}
		once = true
		assert.True(t, s.Running())
		_, paintErr = s.Paint(pos(1, 1))
		eraseErr = s.Erase(pos(0, 0))
		resetErr = s.Reset()
		_, runErr = s.Run(context.Background(), nil)
	})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.False(t, s.Running())

	assert.ErrorIs(t, paintErr, session.ErrBusy)
	assert.ErrorIs(t, eraseErr, session.ErrBusy)
	assert.ErrorIs(t, resetErr, session.ErrBusy)
	assert.ErrorIs(t, runErr, session.ErrBusy)
}

func TestRun_Cancelled(t *testing.T) {
	s, err := session.New(10, nil)
	require.NoError(t, err)
	_, _ = s.Paint(pos(0, 0))
	_, _ = s.Paint(pos(9, 9))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Run(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Running())
}

// TestRun_CancelThenRerunKeepsEndpoints cancels from the step hook while end
// is still pending, then reruns: both markers must survive.
func TestRun_CancelThenRerunKeepsEndpoints(t *testing.T) {
	s, err := session.New(3, nil)
	require.NoError(t, err)
	_, _ = s.Paint(pos(0, 0))
	_, _ = s.Paint(pos(0, 1))

	ctx, cancel := context.WithCancel(context.Background())
	_, err = s.Run(ctx, cancel)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, grid.End, s.End().State())

	_, err = s.Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	g := s.Grid()
	assert.Equal(t, 1, g.Count(grid.End))
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, grid.End, s.End().State())

	res, err := s.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Cost)
}

func TestRun_Logs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	s, err := session.New(3, logger)
	require.NoError(t, err)
	_, _ = s.Paint(pos(0, 0))
	_, _ = s.Paint(pos(2, 2))
	_, err = s.Run(context.Background(), nil)
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "search started", entries[0].Message)
	assert.Equal(t, "search finished", entries[1].Message)
	assert.Equal(t, true, entries[1].Data["found"])
	assert.Equal(t, 4, entries[1].Data["cost"])
}
