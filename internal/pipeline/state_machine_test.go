package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

var moveNow = time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

func TestMoveBoardAnyToAny(t *testing.T) {
	// The board is permissive: every pair of statuses is a legal move.
	for _, from := range types.BoardColumns {
		for _, to := range types.BoardColumns {
			app := types.Application{ID: "a1", Status: from}
			got, _, err := MoveBoard(app, types.Job{}, to, moveNow)
			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got.Status)
			assert.Equal(t, moveNow, got.UpdatedAt)
		}
	}
}

func TestMoveBoardInvalidStatus(t *testing.T) {
	app := types.Application{Status: types.StatusNew}
	_, _, err := MoveBoard(app, types.Job{}, types.Status("Limbo"), moveNow)

	var invalid *InvalidStatusError
	assert.ErrorAs(t, err, &invalid)
}

func TestMoveBoardNeverTouchesRejectReason(t *testing.T) {
	app := types.Application{Status: types.StatusInterviewing}

	got, _, err := MoveBoard(app, types.Job{}, types.StatusRejected, moveNow)
	require.NoError(t, err)
	assert.Empty(t, got.RejectReason, "a manually dragged rejection carries no reason")

	app.RejectReason = ReasonWrongTiming
	got, _, err = MoveBoard(app, types.Job{}, types.StatusInterviewing, moveNow)
	require.NoError(t, err)
	assert.Equal(t, ReasonWrongTiming, got.RejectReason)
}

func TestMoveBoardHiredCount(t *testing.T) {
	job := types.Job{ID: "j1", HiredCount: 0}
	app := types.Application{ID: "a1", Status: types.StatusOffer}

	app, job, err := MoveBoard(app, job, types.StatusHired, moveNow)
	require.NoError(t, err)
	assert.Equal(t, 1, job.HiredCount)

	// Re-applying Hired must not double-count.
	app, job, err = MoveBoard(app, job, types.StatusHired, moveNow)
	require.NoError(t, err)
	assert.Equal(t, 1, job.HiredCount)

	// Dragging back out of Hired releases the slot.
	app, job, err = MoveBoard(app, job, types.StatusOffer, moveNow)
	require.NoError(t, err)
	assert.Equal(t, 0, job.HiredCount)

	// The count never goes negative, even if bookkeeping started at zero.
	app.Status = types.StatusHired
	_, job, err = MoveBoard(app, types.Job{HiredCount: 0}, types.StatusNew, moveNow)
	require.NoError(t, err)
	assert.Equal(t, 0, job.HiredCount)
}
