package store

import (
	"context"
	"time"

	"github.com/idelarosa/subjunto/internal/srs"
)

// AttemptEventData captures one conjugation attempt for the event log.
type AttemptEventData struct {
	SessionID       string
	Verb            string
	Tense           string
	Person          string
	TriggerCategory string
	Tier            int
	Expected        string
	Answer          string
	Classification  string
	Correct         bool
	Quality         int
	Distance        int
	HintUsed        bool
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string
	ExercisesServed int
	CorrectAnswers  int
	FinalTier       int
	DurationSecs    int
	PlanSummary     []PlanSlotSummaryData
}

// PlanSlotSummaryData is one planned slot, serialized on session start.
type PlanSlotSummaryData struct {
	Verb     string
	Category string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a read-model row for LLM event inspection.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates token usage per request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AttemptRecord is a read-model row for recent-attempt queries.
type AttemptRecord struct {
	Verb            string
	TriggerCategory string
	Classification  string
	Correct         bool
	Timestamp       time.Time
}

// CategoryStats aggregates accuracy per WEIRDO trigger category.
type CategoryStats struct {
	Category string
	Total    int
	Correct  int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records one conjugation attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentAttempts returns the last n attempts, oldest first.
	RecentAttempts(ctx context.Context, n int) ([]AttemptRecord, error)

	// VerbAccuracy returns historical accuracy and attempt count for a verb.
	VerbAccuracy(ctx context.Context, verb string) (float64, int, error)

	// CategoryAccuracy aggregates attempts per trigger category.
	CategoryAccuracy(ctx context.Context) ([]CategoryStats, error)

	// LatestTier returns the final tier of the most recently ended
	// session, or 0 when no session has ended yet.
	LatestTier(ctx context.Context) (int, error)

	// QueryLLMEvents returns the most recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// ScheduleRepo persists per-verb review schedules. The engine computes
// schedules as pure values; this repo is the durable side.
type ScheduleRepo interface {
	// Get returns the schedule for a verb, or (zero, false) when the
	// verb has never been scheduled.
	Get(ctx context.Context, verb string) (srs.Schedule, bool, error)

	// Put inserts or updates the schedule for its verb.
	Put(ctx context.Context, schedule srs.Schedule) error

	// DueBefore returns schedules due at or before t, most overdue first.
	DueBefore(ctx context.Context, t time.Time) ([]srs.Schedule, error)

	// All returns every schedule, ordered by verb.
	All(ctx context.Context) ([]srs.Schedule, error)
}
