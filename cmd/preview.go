package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/idelarosa/subjunto/internal/adaptive"
	"github.com/idelarosa/subjunto/internal/conjugate"
	"github.com/idelarosa/subjunto/internal/exercise"
	"github.com/idelarosa/subjunto/internal/srs"
	"github.com/idelarosa/subjunto/internal/validate"
	"github.com/idelarosa/subjunto/internal/verbs"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Drill a specific verb interactively (no database)",
	Long: `Generate and answer drills for a specific verb at a chosen tier.

This is a stateless developer tool — no database, no schedules, no events.
Useful for checking conjugation output and answer classification.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("verb", "", "Infinitive to drill (required)")
	previewCmd.Flags().Int("tier", 1, "Difficulty tier (1-5)")
	previewCmd.Flags().Int("count", 5, "Number of drills to generate")
	_ = previewCmd.MarkFlagRequired("verb")
}

func runPreview(cmd *cobra.Command, args []string) error {
	verb, _ := cmd.Flags().GetString("verb")
	tier, _ := cmd.Flags().GetInt("tier")
	count, _ := cmd.Flags().GetInt("count")

	if tier < adaptive.MinTier || tier > adaptive.MaxTier {
		return fmt.Errorf("invalid tier %d: must be %d-%d", tier, adaptive.MinTier, adaptive.MaxTier)
	}

	lexicon := verbs.Default()
	rec, ok := lexicon.Lookup(strings.ToLower(strings.TrimSpace(verb)))
	if !ok {
		return fmt.Errorf("verb %q not in the lexicon (try: subjunto verbs list)", verb)
	}

	engine := conjugate.NewEngine(lexicon)
	orch := exercise.NewOrchestrator(engine, exercise.DefaultScenarios(), nil)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Verb: %s — %s (tier %d)\n", rec.Infinitive, rec.Translation, tier)
	fmt.Printf("Generating %d drills...\n\n", count)

	var correct int
	for i := 1; i <= count; i++ {
		ex, err := orch.Generate(tier, adaptive.TriggerNone, []string{rec.Infinitive})
		if err != nil {
			fmt.Printf("Drill %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Drill %d/%d ──\n", i, count)
		fmt.Println(ex.Prompt())
		fmt.Printf("(%s)\n", ex.Hint())

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		sub := orch.Submit(ex, answer, srs.NewSchedule(rec.Infinitive, time.Now()), false, time.Now())
		if sub.Outcome.Correct {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ %s.\033[0m Answer: %s\n",
				classificationLabel(sub.Outcome.Classification), ex.Result.Primary)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}

func classificationLabel(c validate.Classification) string {
	switch c {
	case validate.MinorTypo:
		return "Minor typo"
	case validate.WrongPerson:
		return "Wrong person"
	case validate.WrongTense:
		return "Wrong tense"
	case validate.WrongMood:
		return "Wrong mood"
	default:
		return "Wrong"
	}
}
