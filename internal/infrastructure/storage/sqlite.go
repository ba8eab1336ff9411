// Package storage - слоты сохранений в локальной SQLite.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"space-horror/internal/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS saves (
		id         TEXT PRIMARY KEY,
		level_file TEXT NOT NULL,
		health     INTEGER NOT NULL,
		stamina    REAL NOT NULL,
		inventory  TEXT NOT NULL,
		notes      TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_saves_created_at ON saves(created_at);`,
}

// Store реализует engine.SaveStore.
type Store struct {
	db *sql.DB
}

// Open открывает (или создает) базу по пути dbPath и накатывает схему.
// ":memory:" - база в памяти для тестов.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// Одно соединение: у каждой :memory: базы своя копия.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	for _, q := range schema {
		if _, err := db.Exec(q); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Save(ctx context.Context, g domain.SaveGame) error {
	if g.ID == "" {
		return errors.New("save without id")
	}
	inv, err := json.Marshal(nonNil(g.Inventory))
	if err != nil {
		return fmt.Errorf("marshal inventory: %w", err)
	}
	notes, err := json.Marshal(nonNil(g.Notes))
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	created := g.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saves (id, level_file, health, stamina, inventory, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.LevelFile, g.Health, g.Stamina, string(inv), string(notes), created.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert save %s: %w", g.ID, err)
	}
	return nil
}

// Latest возвращает самое свежее сохранение; ok == false, если сохранений нет.
func (s *Store) Latest(ctx context.Context) (domain.SaveGame, bool, error) {
	list, err := s.List(ctx, 1)
	if err != nil || len(list) == 0 {
		return domain.SaveGame{}, false, err
	}
	return list[0], true, nil
}

// List - последние limit сохранений, новые первыми.
func (s *Store) List(ctx context.Context, limit int) ([]domain.SaveGame, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level_file, health, stamina, inventory, notes, created_at
		 FROM saves ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query saves: %w", err)
	}
	defer rows.Close()

	var out []domain.SaveGame
	for rows.Next() {
		var (
			g           domain.SaveGame
			inv, notes  string
			createdNano int64
		)
		if err := rows.Scan(&g.ID, &g.LevelFile, &g.Health, &g.Stamina, &inv, &notes, &createdNano); err != nil {
			return nil, fmt.Errorf("scan save: %w", err)
		}
		if err := json.Unmarshal([]byte(inv), &g.Inventory); err != nil {
			return nil, fmt.Errorf("save %s inventory: %w", g.ID, err)
		}
		if err := json.Unmarshal([]byte(notes), &g.Notes); err != nil {
			return nil, fmt.Errorf("save %s notes: %w", g.ID, err)
		}
		g.CreatedAt = time.Unix(0, createdNano)
		out = append(out, g)
	}
	return out, rows.Err()
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
