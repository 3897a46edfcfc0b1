package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/ljylun/InterviewManagementMaster/internal/types"
)

// Fixed reasons attached by the interview path. This reducer is the only
// writer of RejectReason.
const (
	ReasonTechnicalFit = "Technical fit issue"
	ReasonWrongTiming  = "Good candidate, wrong timing"
)

// maxInterviewRounds is the depth of the interview loop: a Pass on the final
// round moves the application to Offer instead of advancing the round.
const maxInterviewRounds = 2

// ReviewInput is the scorecard metadata recorded alongside an evaluation.
type ReviewInput struct {
	InterviewerName string
	Comment         string
}

// ApplyEvaluation folds a submitted scorecard into the next Application
// state. The round defaults to 1 when interviewing has not formally begun.
// Score is overwritten, last evaluation wins; UpdatedAt is refreshed; the
// review is appended to the application's history.
func ApplyEvaluation(app types.Application, score float64, decision types.Decision, review ReviewInput, now time.Time) (types.Application, error) {
	if !decision.Valid() {
		return app, &InvalidDecisionError{Decision: decision}
	}

	round := app.InterviewRound
	if round == 0 {
		round = 1
	}
	app.RejectReason = ""

	switch decision {
	case types.DecisionPass:
		if round < maxInterviewRounds {
			round++
		} else {
			app.Status = types.StatusOffer
		}
	case types.DecisionReject:
		app.Status = types.StatusRejected
		app.RejectReason = ReasonTechnicalFit
	case types.DecisionHold:
		// Soft rejection: back to the pool, eligibility preserved.
		app.Status = types.StatusTalentPool
		app.RejectReason = ReasonWrongTiming
	}

	app.InterviewRound = round
	app.Score = &score
	app.UpdatedAt = now
	app.Reviews = append(app.Reviews, types.InterviewReview{
		ID:              uuid.NewString(),
		InterviewerName: review.InterviewerName,
		Score:           score,
		Decision:        decision,
		Comment:         review.Comment,
		Date:            now,
	})

	return app, nil
}
