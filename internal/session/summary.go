package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Duration       time.Duration
	TotalExercises int
	TotalCorrect   int
	Accuracy       float64
	FinalTier      int
	VerbResults    []VerbResult
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State) *Summary {
	var results []VerbResult
	for _, slot := range state.Plan.Slots {
		if vr, ok := state.PerVerbResults[slot.Verb]; ok {
			// Avoid duplicates — only add each verb once.
			found := false
			for _, r := range results {
				if r.Verb == vr.Verb {
					found = true
					break
				}
			}
			if !found {
				results = append(results, *vr)
			}
		}
	}

	var accuracy float64
	if state.TotalExercises > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalExercises)
	}

	return &Summary{
		Duration:       state.Elapsed,
		TotalExercises: state.TotalExercises,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		FinalTier:      state.Tier,
		VerbResults:    results,
	}
}
