// Package pipeline validates and applies status transitions on Applications:
// direct board moves and interview scorecard evaluations.
package pipeline

import (
	"time"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// legalMoves is the single place a transition table would live. A nil table
// admits every move: the board is advisory tooling, not an enforced workflow,
// and any status may be set to any other status.
var legalMoves map[types.Status][]types.Status

func moveAllowed(from, to types.Status) bool {
	if legalMoves == nil {
		return true
	}
	for _, s := range legalMoves[from] {
		if s == to {
			return true
		}
	}
	return false
}

// MoveBoard applies a direct board move to dest and returns the updated
// Application and Job. The job's hired count tracks transitions across the
// Hired boundary: entering Hired increments it, leaving Hired takes it back,
// so repeated drags never double-count.
//
// The board path never touches RejectReason: an application dragged into
// Rejected carries no reason.
func MoveBoard(app types.Application, job types.Job, dest types.Status, now time.Time) (types.Application, types.Job, error) {
	if !dest.Valid() {
		return app, job, &InvalidStatusError{Status: dest}
	}
	if !moveAllowed(app.Status, dest) {
		return app, job, &IllegalMoveError{From: app.Status, To: dest}
	}

	prev := app.Status
	app.Status = dest
	app.UpdatedAt = now

	if dest == types.StatusHired && prev != types.StatusHired {
		job.HiredCount++
	}
	if prev == types.StatusHired && dest != types.StatusHired && job.HiredCount > 0 {
		job.HiredCount--
	}

	return app, job, nil
}
