package srs

import (
	"testing"
	"time"

	"github.com/idelarosa/subjunto/internal/validate"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestQualityFor(t *testing.T) {
	tests := []struct {
		classification validate.Classification
		hintUsed       bool
		want           int
	}{
		{validate.Correct, false, 5},
		{validate.Correct, true, 4},
		{validate.MinorTypo, false, 3},
		{validate.MinorTypo, true, 3},
		{validate.WrongPerson, false, 2},
		{validate.WrongTense, false, 2},
		{validate.WrongMood, false, 2},
		{validate.Unrecognized, false, 0},
	}

	for _, tt := range tests {
		out := &validate.Outcome{Classification: tt.classification}
		if got := QualityFor(out, tt.hintUsed); got != tt.want {
			t.Errorf("QualityFor(%s, hint=%v) = %d, want %d", tt.classification, tt.hintUsed, got, tt.want)
		}
	}
}

func TestUpdate_IntervalProgression(t *testing.T) {
	s := NewSchedule("hablar", testNow)

	s = Update(s, 5, testNow)
	if s.Repetitions != 1 || s.IntervalDays != 1 {
		t.Fatalf("after 1st review: reps=%d interval=%d, want 1/1", s.Repetitions, s.IntervalDays)
	}

	s = Update(s, 5, testNow)
	if s.Repetitions != 2 || s.IntervalDays != 6 {
		t.Fatalf("after 2nd review: reps=%d interval=%d, want 2/6", s.Repetitions, s.IntervalDays)
	}

	s = Update(s, 5, testNow)
	if s.Repetitions != 3 || s.IntervalDays != 15 {
		t.Fatalf("after 3rd review: reps=%d interval=%d, want 3/15", s.Repetitions, s.IntervalDays)
	}
	if !s.NextReview.Equal(testNow.AddDate(0, 0, 15)) {
		t.Errorf("NextReview = %v, want now+15d", s.NextReview)
	}
}

func TestUpdate_Monotonicity(t *testing.T) {
	s := NewSchedule("tener", testNow)

	prev := 0
	for i := 0; i < 8; i++ {
		s = Update(s, 5, testNow)
		if s.IntervalDays < prev {
			t.Fatalf("interval decreased at review %d: %d -> %d", i+1, prev, s.IntervalDays)
		}
		if i >= 2 && s.IntervalDays <= prev {
			t.Fatalf("interval not strictly increasing at review %d: %d -> %d", i+1, prev, s.IntervalDays)
		}
		prev = s.IntervalDays
	}
}

func TestUpdate_LapseResets(t *testing.T) {
	for _, quality := range []int{0, 1, 2} {
		s := Schedule{Verb: "ser", EasinessFactor: 2.3, IntervalDays: 42, Repetitions: 7}
		s = Update(s, quality, testNow)
		if s.Repetitions != 0 {
			t.Errorf("q=%d: repetitions = %d, want 0", quality, s.Repetitions)
		}
		if s.IntervalDays != 1 {
			t.Errorf("q=%d: interval = %d, want 1", quality, s.IntervalDays)
		}
	}
}

func TestUpdate_MinorTypoAdvancesWithoutLapse(t *testing.T) {
	s := Schedule{Verb: "pedir", EasinessFactor: 2.5, IntervalDays: 6, Repetitions: 2}
	s = Update(s, 3, testNow)
	if s.Repetitions != 3 {
		t.Errorf("repetitions = %d, want 3", s.Repetitions)
	}
	// q=3 drops the easiness by 0.14.
	if s.EasinessFactor >= 2.5 || s.EasinessFactor < 2.3 {
		t.Errorf("easiness = %v, want slightly below 2.5", s.EasinessFactor)
	}
}

func TestUpdate_EasinessClamps(t *testing.T) {
	s := Schedule{Verb: "ir", EasinessFactor: 1.32, IntervalDays: 1, Repetitions: 0}
	for i := 0; i < 5; i++ {
		s = Update(s, 0, testNow)
	}
	if s.EasinessFactor != 1.3 {
		t.Errorf("easiness floor = %v, want 1.3", s.EasinessFactor)
	}

	s = Schedule{Verb: "ir", EasinessFactor: 2.5, IntervalDays: 6, Repetitions: 2}
	s = Update(s, 5, testNow)
	if s.EasinessFactor != 2.5 {
		t.Errorf("easiness ceiling = %v, want 2.5", s.EasinessFactor)
	}
}

func TestUpdate_EndToEnd(t *testing.T) {
	// A verb at ef=2.5, interval=6, reps=2 answered perfectly moves to
	// reps=3 with interval round(6*2.5)=15 and easiness held at the cap.
	s := Schedule{Verb: "hablar", EasinessFactor: 2.5, IntervalDays: 6, Repetitions: 2}
	out := &validate.Outcome{Classification: validate.Correct, Correct: true}

	s = Apply(s, out, false, testNow)
	if s.Repetitions != 3 {
		t.Errorf("repetitions = %d, want 3", s.Repetitions)
	}
	if s.IntervalDays != 15 {
		t.Errorf("interval = %d, want 15", s.IntervalDays)
	}
	if s.EasinessFactor != 2.5 {
		t.Errorf("easiness = %v, want 2.5", s.EasinessFactor)
	}
	if !s.LastReviewed.Equal(testNow) {
		t.Errorf("LastReviewed = %v, want %v", s.LastReviewed, testNow)
	}
}

func TestSchedule_Due(t *testing.T) {
	s := NewSchedule("dar", testNow)
	if !s.Due(testNow) {
		t.Error("new schedule should be due immediately")
	}

	s = Update(s, 5, testNow)
	if s.Due(testNow) {
		t.Error("just-reviewed schedule should not be due")
	}
	if !s.Due(testNow.AddDate(0, 0, 2)) {
		t.Error("schedule should be due after its interval")
	}
	if got := s.OverdueDays(testNow.AddDate(0, 0, 4)); got != 3 {
		t.Errorf("OverdueDays = %d, want 3", got)
	}
}
