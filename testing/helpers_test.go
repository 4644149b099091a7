package metistest

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/metis"
)

func TestRecordingHistory(t *testing.T) {
	store := NewRecordingHistory()
	ctx := context.Background()

	t.Run("empty user", func(t *testing.T) {
		recent, err := store.Recent(ctx, "nobody")
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(recent) != 0 {
			t.Errorf("expected empty history, got %v", recent)
		}
	})

	t.Run("record and read back", func(t *testing.T) {
		if err := store.Record(ctx, "u", "five-whys"); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
		recent, err := store.Recent(ctx, "u")
		if err != nil {
			t.Fatalf("Recent failed: %v", err)
		}
		if len(recent) != 1 || recent[0] != "five-whys" {
			t.Errorf("expected [five-whys], got %v", recent)
		}
		if len(store.Records) != 1 || store.Records[0] != [2]string{"u", "five-whys"} {
			t.Errorf("call capture wrong: %v", store.Records)
		}
	})

	t.Run("seed", func(t *testing.T) {
		seeded := NewRecordingHistory().Seed("u", "a", "b")
		recent, _ := seeded.Recent(ctx, "u")
		if len(recent) != 2 || recent[0] != "a" {
			t.Errorf("expected seeded [a b], got %v", recent)
		}
	})

	t.Run("injected errors", func(t *testing.T) {
		broken := NewRecordingHistory()
		broken.RecentErr = errors.New("read down")
		broken.RecordErr = errors.New("write down")

		if _, err := broken.Recent(ctx, "u"); err == nil {
			t.Error("expected injected Recent error")
		}
		if err := broken.Record(ctx, "u", "x"); err == nil {
			t.Error("expected injected Record error")
		}
	})
}

func TestNewTestSelector(t *testing.T) {
	s, store := NewTestSelector(t,
		StubFramework("triage", metis.CategoryPrioritization, metis.DifficultyBeginner, 10),
	)

	result, err := s.Select(context.Background(), &metis.Context{Topic: "prioritize the week"}, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	RequireRecommended(t, result, "triage")

	if len(store.Records) != 1 || store.Records[0][1] != "triage" {
		t.Errorf("expected the choice recorded, got %v", store.Records)
	}
}

func TestRequireNoMatch(t *testing.T) {
	s, _ := NewTestSelector(t)

	result, err := s.Select(context.Background(), &metis.Context{Topic: "anything"}, nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	RequireNoMatch(t, result)
}
