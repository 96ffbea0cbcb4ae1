package adaptive

const (
	// MinTier and MaxTier bound the difficulty ladder.
	MinTier = 1
	MaxTier = 5

	// minObservations gates any tier adjustment.
	minObservations = 5

	raiseThreshold = 0.85
	lowerThreshold = 0.5

	// minCategoryObservations gates the weak-category bias.
	minCategoryObservations = 2
)

// Selection is the selector's advice for the next exercise.
type Selection struct {
	Tier int

	// PreferredCategory biases scenario selection toward the learner's
	// weakest trigger pattern; TriggerNone means no bias.
	PreferredCategory TriggerCategory
}

// SelectNext computes the next difficulty tier and category bias.
// Below minObservations the tier holds. A full window at or above the
// raise threshold moves up one tier; accuracy at or below the lower
// threshold moves down one. The tier never leaves [MinTier, MaxTier].
func SelectNext(w *Window, currentTier int) Selection {
	tier := clampTier(currentTier)

	if w.Len() >= minObservations {
		accuracy := w.Accuracy()
		switch {
		case accuracy >= raiseThreshold && w.Full():
			tier = clampTier(tier + 1)
		case accuracy <= lowerThreshold:
			tier = clampTier(tier - 1)
		}
	}

	return Selection{Tier: tier, PreferredCategory: weakestCategory(w)}
}

// weakestCategory returns the category with the lowest accuracy among
// those with at least minCategoryObservations observations, or
// TriggerNone. Ties keep the earlier WEIRDO category.
func weakestCategory(w *Window) TriggerCategory {
	type tally struct{ seen, correct int }
	counts := make(map[TriggerCategory]*tally)
	for _, o := range w.Observations() {
		if !o.Category.Valid() {
			continue
		}
		t := counts[o.Category]
		if t == nil {
			t = &tally{}
			counts[o.Category] = t
		}
		t.seen++
		if o.Correct {
			t.correct++
		}
	}

	weakest := TriggerNone
	weakestAccuracy := 0.0
	for _, cat := range TriggerCategories {
		t := counts[cat]
		if t == nil || t.seen < minCategoryObservations {
			continue
		}
		accuracy := float64(t.correct) / float64(t.seen)
		if weakest == TriggerNone || accuracy < weakestAccuracy {
			weakest = cat
			weakestAccuracy = accuracy
		}
	}
	return weakest
}

func clampTier(tier int) int {
	if tier < MinTier {
		return MinTier
	}
	if tier > MaxTier {
		return MaxTier
	}
	return tier
}
