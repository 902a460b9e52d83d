package storage

import (
	"context"
	"os"
	"testing"

	"github.com/nguyenvandai202/sodoku-solver/internal/domain"
)

func TestSaveLoadList(t *testing.T) {
	ctx := context.Background()
	s := NewFS(t.TempDir())

	p := &domain.Puzzle{
		ID:         "p-1",
		Seed:       42,
		Difficulty: domain.Hard,
		Name:       "evening grind",
		CreatedAt:  1700000000,
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true

	if err := s.Save(ctx, p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, "p-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Difficulty != domain.Hard || got.Board.Values != p.Board.Values || !got.Board.Fixed[0][0] {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != "p-1" || metas[0].Name != "evening grind" {
		t.Fatalf("unexpected listing: %+v", metas)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !os.IsNotExist(err) {
		t.Fatalf("want not-exist, got %v", err)
	}
}

func TestSaveRejectsMissingID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("expected error for empty ID")
	}
}
