package repository

import (
	"context"
	"errors"
	"studyhub_backend/internal/model"
	"testing"
	"time"
)

func TestGoalRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBlobStore()
	repo := NewGoalRepository(store, "")

	due := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	goals := []model.AcademicGoal{
		{
			ID:           "g1",
			Description:  "Finish lab report",
			Type:         model.GoalTypeCompletion,
			TargetValue:  model.NumberValue(100),
			CurrentValue: model.NumberValue(30),
			TargetDate:   &due,
			CreatedAt:    due.Add(-72 * time.Hour),
		},
		{
			ID:          "g2",
			Description: "Study every evening",
			Type:        model.GoalTypeStudyHours,
			TargetValue: model.NumberValue(20),
			CreatedAt:   due,
		},
	}

	if err := repo.Save(ctx, "", goals); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := repo.Load(ctx, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if got[0].ID != "g1" || got[0].CurrentValue != "30" || !got[0].TargetDate.Equal(due) {
		t.Fatalf("first goal mismatch: %+v", got[0])
	}
	if got[1].TargetDate != nil || got[1].CurrentValue != "" {
		t.Fatalf("second goal mismatch: %+v", got[1])
	}
}

func TestGoalRepositoryKeysPerOwner(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBlobStore()
	repo := NewGoalRepository(store, "academicGoals")

	if repo.Key("") != "academicGoals" || repo.Key("u1") != "academicGoals:u1" {
		t.Fatalf("unexpected keys %q %q", repo.Key(""), repo.Key("u1"))
	}

	if err := repo.Save(ctx, "u1", []model.AcademicGoal{{ID: "x", Type: model.GoalTypeGrade}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	anon, err := repo.Load(ctx, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if anon != nil {
		t.Fatalf("anonymous collection should be missing, got %+v", anon)
	}
}

func TestGoalRepositoryLoadEdgeCases(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBlobStore()
	repo := NewGoalRepository(store, "k")

	cases := []struct {
		raw       string
		wantNil   bool
		malformed bool
	}{
		{raw: "", wantNil: true},
		{raw: "   ", wantNil: true},
		{raw: "null", wantNil: true},
		{raw: "[]", wantNil: false},
		{raw: "{not json", malformed: true},
		{raw: `{"id":"x"}`, malformed: true},
	}
	for _, c := range cases {
		if err := store.Put(ctx, "k", []byte(c.raw)); err != nil {
			t.Fatalf("put: %v", err)
		}
		got, err := repo.Load(ctx, "")
		if c.malformed {
			if !errors.Is(err, ErrMalformedGoals) {
				t.Fatalf("raw %q: err=%v, want ErrMalformedGoals", c.raw, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("raw %q: %v", c.raw, err)
		}
		if (got == nil) != c.wantNil {
			t.Fatalf("raw %q: got %#v, wantNil=%v", c.raw, got, c.wantNil)
		}
	}
}

func TestEncodeGoalsNil(t *testing.T) {
	b, err := EncodeGoals(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("encode nil = %s, want []", b)
	}
}

func TestMemoryBlobStoreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryBlobStore()

	v := []byte("abc")
	if err := store.Put(ctx, "k", v); err != nil {
		t.Fatalf("put: %v", err)
	}
	v[0] = 'z'

	got, _ := store.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value changed through caller slice: %s", got)
	}
	missing, err := store.Get(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("missing key = %v, %v", missing, err)
	}
}
