package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"space-horror/internal/domain"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "saves", "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLatestOnEmptyStore(t *testing.T) {
	s := openTest(t)
	_, ok, err := s.Latest(context.Background())
	if err != nil || ok {
		t.Errorf("Latest = ok %v err %v, want nothing", ok, err)
	}
}

func TestSaveAndLatest(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	saves := []domain.SaveGame{
		{ID: "save_a", LevelFile: "assets/levels/level1.json", Health: 5, Stamina: 100, CreatedAt: base},
		{
			ID: "save_b", LevelFile: "assets/levels/level2.json", Health: 2, Stamina: 40.5,
			Inventory: []domain.Item{{ID: "item_1", Name: "Medkit", Kind: domain.ItemMedkit}},
			Notes:     []domain.Note{{ID: "note_1", Title: "Log", Text: "Do not trust the lights"}},
			CreatedAt: base.Add(time.Minute),
		},
	}
	for _, g := range saves {
		if err := s.Save(ctx, g); err != nil {
			t.Fatalf("Save %s: %v", g.ID, err)
		}
	}

	got, ok, err := s.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("Latest: ok %v err %v", ok, err)
	}
	if got.ID != "save_b" || got.Health != 2 || got.Stamina != 40.5 {
		t.Errorf("latest = %+v", got)
	}
	if len(got.Inventory) != 1 || got.Inventory[0].Kind != domain.ItemMedkit {
		t.Errorf("inventory = %+v", got.Inventory)
	}
	if len(got.Notes) != 1 || got.Notes[0].Text != "Do not trust the lights" {
		t.Errorf("notes = %+v", got.Notes)
	}
	if !got.CreatedAt.Equal(base.Add(time.Minute)) {
		t.Errorf("created_at = %v", got.CreatedAt)
	}

	list, err := s.List(ctx, 10)
	if err != nil || len(list) != 2 || list[1].ID != "save_a" {
		t.Errorf("List = %v, %v", list, err)
	}
	if list[1].Inventory == nil || len(list[1].Inventory) != 0 {
		t.Errorf("empty inventory should decode as empty slice, got %#v", list[1].Inventory)
	}
}

func TestSaveErrors(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	tests := []struct {
		name string
		save domain.SaveGame
	}{
		{"missing id", domain.SaveGame{LevelFile: "l.json"}},
		{"duplicate id", domain.SaveGame{ID: "dup", LevelFile: "l.json"}},
	}
	if err := s.Save(ctx, domain.SaveGame{ID: "dup", LevelFile: "l.json"}); err != nil {
		t.Fatalf("seed save: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Save(ctx, tt.save); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReopenKeepsSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(context.Background(), domain.SaveGame{ID: "keep", LevelFile: "l.json", Health: 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, ok, err := s.Latest(context.Background())
	if err != nil || !ok || got.ID != "keep" {
		t.Errorf("Latest after reopen = %+v ok %v err %v", got, ok, err)
	}
}
