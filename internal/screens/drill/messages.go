package drill

import (
	"time"

	"github.com/idelarosa/subjunto/internal/coach"
	"github.com/idelarosa/subjunto/internal/exercise"
	sess "github.com/idelarosa/subjunto/internal/session"
)

// drillInitMsg is sent when session initialization (plan building) is complete.
type drillInitMsg struct {
	State *sess.State
	Err   error
}

// exerciseReadyMsg is sent when the next exercise has been generated.
type exerciseReadyMsg struct {
	Exercise *exercise.Exercise
	Err      error
}

// explanationMsg carries the coach's feedback for the last answer.
type explanationMsg struct {
	Explanation *coach.Explanation
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// feedbackDoneMsg is sent when the learner dismisses the feedback view.
type feedbackDoneMsg struct{}

// drillEndMsg is sent to trigger the session end flow.
type drillEndMsg struct{}
