package service

import (
	"studyhub_backend/internal/model"
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func goalOf(typ model.GoalType, target, current string) model.AcademicGoal {
	return model.AcademicGoal{
		ID:           "g",
		Description:  "test goal",
		Type:         typ,
		TargetValue:  model.GoalValue(target),
		CurrentValue: model.GoalValue(current),
		CreatedAt:    testNow,
	}
}

func TestComputeProgress(t *testing.T) {
	cases := []struct {
		name string
		goal model.AcademicGoal
		want float64
	}{
		{"completion uses current", goalOf(model.GoalTypeCompletion, "100", "45"), 45},
		{"completion not clamped", goalOf(model.GoalTypeCompletion, "100", "120"), 120},
		{"completion unparseable", goalOf(model.GoalTypeCompletion, "100", "abc"), 0},
		{"grade ratio", goalOf(model.GoalTypeGrade, "90", "45"), 50},
		{"grade clamped high", goalOf(model.GoalTypeGrade, "80", "120"), 100},
		{"grade clamped low", goalOf(model.GoalTypeGrade, "80", "-10"), 0},
		{"grade empty current", goalOf(model.GoalTypeGrade, "90", ""), 0},
		{"hours ratio", goalOf(model.GoalTypeStudyHours, "20", "5"), 25},
		{"zero target with progress", goalOf(model.GoalTypeStudyHours, "0", "3"), 100},
		{"zero target without progress", goalOf(model.GoalTypeGrade, "0", "0"), 0},
	}
	for _, c := range cases {
		if got := ComputeProgress(c.goal); got != c.want {
			t.Fatalf("%s: progress=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestComputeStatus(t *testing.T) {
	yesterday := testNow.Add(-24 * time.Hour)
	earlierToday := testNow.Add(-6 * time.Hour)

	done := goalOf(model.GoalTypeCompletion, "100", "100")
	done.TargetDate = &yesterday
	if got := ComputeStatus(done, testNow); got != model.GoalCompleted {
		t.Fatalf("completed past due: status=%s, want completed", got)
	}

	late := goalOf(model.GoalTypeGrade, "90", "75")
	late.TargetDate = &yesterday
	if got := ComputeStatus(late, testNow); got != model.GoalOverdue {
		t.Fatalf("past due: status=%s, want overdue", got)
	}

	today := goalOf(model.GoalTypeGrade, "90", "75")
	today.TargetDate = &earlierToday
	if got := ComputeStatus(today, testNow); got != model.GoalInProgress {
		t.Fatalf("due today: status=%s, want in_progress", got)
	}

	open := goalOf(model.GoalTypeStudyHours, "10", "1")
	if got := ComputeStatus(open, testNow); got != model.GoalInProgress {
		t.Fatalf("no date: status=%s, want in_progress", got)
	}
}

func TestSuggestIncrement(t *testing.T) {
	cases := []struct {
		goal model.AcademicGoal
		want model.GoalValue
	}{
		{goalOf(model.GoalTypeCompletion, "100", "40"), "50"},
		{goalOf(model.GoalTypeCompletion, "100", "95"), "100"},
		{goalOf(model.GoalTypeCompletion, "100", ""), "10"},
		{goalOf(model.GoalTypeGrade, "90", "75"), "80"},
		{goalOf(model.GoalTypeGrade, "90", "88"), "90"},
		{goalOf(model.GoalTypeStudyHours, "20", ""), "1"},
		{goalOf(model.GoalTypeStudyHours, "20", "2.5"), "3.5"},
	}
	for _, c := range cases {
		if got := SuggestIncrement(c.goal); got != c.want {
			t.Fatalf("%s %q/%q: got %q, want %q", c.goal.Type, c.goal.CurrentValue, c.goal.TargetValue, got, c.want)
		}
	}
}

func TestTimeRemaining(t *testing.T) {
	in3 := testNow.Add(72 * time.Hour)
	ago3 := testNow.Add(-72 * time.Hour)

	g := goalOf(model.GoalTypeGrade, "90", "80")
	if got := TimeRemaining(g, testNow); got != "" {
		t.Fatalf("no date: %q", got)
	}

	g.TargetDate = &in3
	if got := TimeRemaining(g, testNow); got != "3 days left" {
		t.Fatalf("future: %q", got)
	}

	g.TargetDate = &ago3
	if got := TimeRemaining(g, testNow); got != "3 days overdue" {
		t.Fatalf("past: %q", got)
	}

	now := testNow
	g.TargetDate = &now
	if got := TimeRemaining(g, testNow); got != "due now" {
		t.Fatalf("now: %q", got)
	}
}

func TestNewGoalView(t *testing.T) {
	g := goalOf(model.GoalTypeCompletion, "100", "40")
	g.CreatedAt = testNow.Add(-5 * 24 * time.Hour)

	v := NewGoalView(g, testNow)
	if v.Progress != 40 || v.Status != model.GoalInProgress || v.Unit != "%" {
		t.Fatalf("unexpected view %+v", v)
	}
	if v.CreatedAgo != "5 days ago" {
		t.Fatalf("createdAgo=%q", v.CreatedAgo)
	}
}
