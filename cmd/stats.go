package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accuracy per trigger category",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		categories, err := s.EventRepo().CategoryAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query category accuracy: %w", err)
		}

		if len(categories) == 0 {
			fmt.Println("No attempts recorded yet. Run a drill first.")
			return nil
		}

		fmt.Printf("%-28s  %8s  %8s  %9s\n", "Trigger Category", "Attempts", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 60))

		var totalAttempts, totalCorrect int
		for _, c := range categories {
			label := c.Category
			if cat := adaptive.TriggerCategory(c.Category); cat.Valid() {
				label = cat.Label()
			}
			accuracy := 0.0
			if c.Total > 0 {
				accuracy = float64(c.Correct) / float64(c.Total)
			}
			fmt.Printf("%-28s  %8d  %8d  %8.0f%%\n", label, c.Total, c.Correct, accuracy*100)
			totalAttempts += c.Total
			totalCorrect += c.Correct
		}

		fmt.Println(strings.Repeat("─", 60))
		overall := 0.0
		if totalAttempts > 0 {
			overall = float64(totalCorrect) / float64(totalAttempts)
		}
		fmt.Printf("%-28s  %8d  %8d  %8.0f%%\n", "TOTAL", totalAttempts, totalCorrect, overall*100)

		tier, err := s.EventRepo().LatestTier(ctx)
		if err == nil && tier > 0 {
			fmt.Printf("\nCurrent difficulty tier: %d\n", tier)
		}
		return nil
	},
}
