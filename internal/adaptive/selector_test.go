package adaptive

import "testing"

func fill(w *Window, correct int, wrong int, cat TriggerCategory) {
	for i := 0; i < correct; i++ {
		w.Add(Observation{Correct: true, Category: cat})
	}
	for i := 0; i < wrong; i++ {
		w.Add(Observation{Correct: false, Category: cat})
	}
}

func TestSelectNext_HoldsBelowMinimumWindow(t *testing.T) {
	w := NewWindow(10)
	fill(w, 4, 0, TriggerWishes)

	sel := SelectNext(w, 3)
	if sel.Tier != 3 {
		t.Errorf("tier = %d, want hold at 3", sel.Tier)
	}
}

func TestSelectNext_RaisesOnHighAccuracyFullWindow(t *testing.T) {
	w := NewWindow(10)
	fill(w, 9, 1, TriggerWishes)

	sel := SelectNext(w, 2)
	if sel.Tier != 3 {
		t.Errorf("tier = %d, want 3", sel.Tier)
	}
}

func TestSelectNext_HighAccuracyPartialWindowHolds(t *testing.T) {
	w := NewWindow(10)
	fill(w, 6, 0, TriggerWishes)

	sel := SelectNext(w, 2)
	if sel.Tier != 2 {
		t.Errorf("tier = %d, want hold at 2 until window fills", sel.Tier)
	}
}

func TestSelectNext_LowersOnLowAccuracy(t *testing.T) {
	w := NewWindow(10)
	fill(w, 3, 3, TriggerDoubt)

	sel := SelectNext(w, 4)
	if sel.Tier != 3 {
		t.Errorf("tier = %d, want 3", sel.Tier)
	}
}

func TestSelectNext_MiddlingAccuracyHolds(t *testing.T) {
	w := NewWindow(10)
	fill(w, 7, 3, TriggerEmotions)

	sel := SelectNext(w, 3)
	if sel.Tier != 3 {
		t.Errorf("tier = %d, want hold at 3", sel.Tier)
	}
}

func TestSelectNext_TierBounds(t *testing.T) {
	high := NewWindow(10)
	fill(high, 10, 0, TriggerWishes)
	for i := 0; i < 20; i++ {
		sel := SelectNext(high, MaxTier)
		if sel.Tier != MaxTier {
			t.Fatalf("tier escaped ceiling: %d", sel.Tier)
		}
	}

	low := NewWindow(10)
	fill(low, 0, 10, TriggerWishes)
	for i := 0; i < 20; i++ {
		sel := SelectNext(low, MinTier)
		if sel.Tier != MinTier {
			t.Fatalf("tier escaped floor: %d", sel.Tier)
		}
	}

	sel := SelectNext(NewWindow(10), 42)
	if sel.Tier != MaxTier {
		t.Errorf("out-of-range tier = %d, want clamped to %d", sel.Tier, MaxTier)
	}
}

func TestSelectNext_WeakestCategory(t *testing.T) {
	w := NewWindow(12)
	fill(w, 4, 0, TriggerWishes)
	fill(w, 1, 3, TriggerDoubt)
	fill(w, 2, 1, TriggerEmotions)

	sel := SelectNext(w, 3)
	if sel.PreferredCategory != TriggerDoubt {
		t.Errorf("preferred = %q, want doubt", sel.PreferredCategory)
	}
}

func TestSelectNext_NoCategoryWithEnoughObservations(t *testing.T) {
	w := NewWindow(12)
	w.Add(Observation{Correct: false, Category: TriggerWishes})
	w.Add(Observation{Correct: false, Category: TriggerDoubt})
	w.Add(Observation{Correct: true, Category: TriggerOjala})

	sel := SelectNext(w, 3)
	if sel.PreferredCategory != TriggerNone {
		t.Errorf("preferred = %q, want none", sel.PreferredCategory)
	}
}

func TestWindow_EvictsOldest(t *testing.T) {
	w := NewWindow(3)
	w.Add(Observation{Correct: false, Category: TriggerWishes})
	w.Add(Observation{Correct: true, Category: TriggerDoubt})
	w.Add(Observation{Correct: true, Category: TriggerOjala})
	w.Add(Observation{Correct: true, Category: TriggerEmotions})

	if !w.Full() || w.Len() != 3 {
		t.Fatalf("len = %d full = %v, want 3/true", w.Len(), w.Full())
	}
	obs := w.Observations()
	if obs[0].Category != TriggerDoubt {
		t.Errorf("oldest = %q, want doubt after eviction", obs[0].Category)
	}
	if w.Accuracy() != 1.0 {
		t.Errorf("accuracy = %v, want 1.0", w.Accuracy())
	}
}
