package pipeline

import (
	"fmt"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// InvalidStatusError indicates a board move targeted an unknown status.
type InvalidStatusError struct {
	Status types.Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid pipeline status: %q", e.Status)
}

// IllegalMoveError indicates a board move rejected by the transition table.
// It cannot occur while the table is permissive.
type IllegalMoveError struct {
	From types.Status
	To   types.Status
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal pipeline move: %s -> %s", e.From, e.To)
}

// InvalidDecisionError indicates a scorecard carried an unknown decision.
type InvalidDecisionError struct {
	Decision types.Decision
}

func (e *InvalidDecisionError) Error() string {
	return fmt.Sprintf("invalid scorecard decision: %q", e.Decision)
}
