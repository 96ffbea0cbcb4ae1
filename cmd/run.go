package cmd

import (
	"fmt"
	"os"

	"github.com/idelarosa/subjunto/internal/app"
	"github.com/idelarosa/subjunto/internal/coach"
	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/exercise"
	"github.com/idelarosa/subjunto/internal/llm"
	"github.com/idelarosa/subjunto/internal/session"
	"github.com/idelarosa/subjunto/internal/store"
	"github.com/idelarosa/subjunto/internal/verbs"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	lexicon := verbs.Default()
	engine := conjugate.NewEngine(lexicon)
	eventRepo := st.EventRepo()
	scheduleRepo := st.ScheduleRepo()

	// LLM provider is optional — the coach falls back to rule-based
	// explanations without one.
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Explanations will be rule-based only.")
		provider = nil
	}

	opts := app.Options{
		Orchestrator: exercise.NewOrchestrator(engine, exercise.DefaultScenarios(), nil),
		Coach:        coach.New(provider, coach.DefaultConfig()),
		EventRepo:    eventRepo,
		ScheduleRepo: scheduleRepo,
		Planner:      session.NewPlanner(ctx, scheduleRepo, eventRepo, lexicon),
		Lexicon:      lexicon,
	}

	return app.Run(opts)
}
