// Package adaptive chooses the next exercise's difficulty tier and
// trigger-category bias from a rolling window of recent outcomes.
package adaptive

// TriggerCategory is a WEIRDO subjunctive trigger group. Categories are
// a closed set; exercises carry exactly one.
type TriggerCategory string

const (
	TriggerWishes          TriggerCategory = "wishes"
	TriggerEmotions        TriggerCategory = "emotions"
	TriggerImpersonal      TriggerCategory = "impersonal"
	TriggerRecommendations TriggerCategory = "recommendations"
	TriggerDoubt           TriggerCategory = "doubt"
	TriggerOjala           TriggerCategory = "ojala"

	// TriggerNone means no category bias.
	TriggerNone TriggerCategory = ""
)

// TriggerCategories lists every category in WEIRDO order.
var TriggerCategories = []TriggerCategory{
	TriggerWishes,
	TriggerEmotions,
	TriggerImpersonal,
	TriggerRecommendations,
	TriggerDoubt,
	TriggerOjala,
}

// Valid reports whether c is a known category (TriggerNone excluded).
func (c TriggerCategory) Valid() bool {
	for _, known := range TriggerCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the learner-facing name of the category.
func (c TriggerCategory) Label() string {
	switch c {
	case TriggerWishes:
		return "Wishes & wants"
	case TriggerEmotions:
		return "Emotions"
	case TriggerImpersonal:
		return "Impersonal expressions"
	case TriggerRecommendations:
		return "Recommendations"
	case TriggerDoubt:
		return "Doubt & denial"
	case TriggerOjala:
		return "Ojalá"
	}
	return string(c)
}
