package types

// Status represents the pipeline state of an Application. A Candidate viewed
// outside any job context carries the virtual StatusTalentPool.
type Status string

// Pipeline statuses. New through Hired form the main track; Rejected and
// TalentPool are side-exits reachable from any non-terminal state.
const (
	StatusNew          Status = "New"
	StatusScreened     Status = "Screened"
	StatusInterviewing Status = "Interviewing"
	StatusOffer        Status = "Offer"
	StatusHired        Status = "Hired"
	StatusRejected     Status = "Rejected"
	StatusTalentPool   Status = "Talent Pool"
)

// BoardColumns is the display order of the pipeline board.
var BoardColumns = []Status{
	StatusNew,
	StatusScreened,
	StatusInterviewing,
	StatusOffer,
	StatusHired,
	StatusRejected,
	StatusTalentPool,
}

// Valid reports whether s is a known pipeline status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusScreened, StatusInterviewing, StatusOffer,
		StatusHired, StatusRejected, StatusTalentPool:
		return true
	}
	return false
}

// IsTerminal reports whether s is a terminal state for an Application.
// An Application never transitions out of Hired or Rejected; a new hiring
// cycle requires a new Application.
func (s Status) IsTerminal() bool {
	return s == StatusHired || s == StatusRejected
}

// IsActive reports whether an Application in this status still occupies a
// pipeline slot. TalentPool counts as active for cross-job conflict checks
// because the Application remains open, merely dormant.
func (s Status) IsActive() bool {
	return !s.IsTerminal()
}

// Decision is the outcome of a submitted interview scorecard.
type Decision string

// Scorecard decisions.
const (
	DecisionPass   Decision = "Pass"
	DecisionReject Decision = "Reject"
	DecisionHold   Decision = "Hold"
)

// Valid reports whether d is a known scorecard decision.
func (d Decision) Valid() bool {
	return d == DecisionPass || d == DecisionReject || d == DecisionHold
}
