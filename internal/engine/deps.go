package engine

import (
	"context"
	"time"

	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/internal/i18n"
	"space-horror/internal/terminal"
	"space-horror/pkg/api"
)

// Clock - монотонные часы игры. Время считается от старта процесса.
type Clock interface {
	Now() time.Duration
}

// SystemClock - часы на time.Since.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock { return &SystemClock{start: time.Now()} }

func (c *SystemClock) Now() time.Duration { return time.Since(c.start) }

// SaveStore - хранилище сохранений.
type SaveStore interface {
	Save(ctx context.Context, s domain.SaveGame) error
	Latest(ctx context.Context) (domain.SaveGame, bool, error)
}

// StoryTeller генерирует строки вступления.
type StoryTeller interface {
	Story(ctx context.Context, level int) ([]string, error)
}

// Publisher получает снимок уровня после каждого тика.
type Publisher interface {
	Publish(s api.Snapshot)
}

// Dependencies - внешние коллабораторы игры. Любой, кроме Config, может быть nil.
type Dependencies struct {
	Config    *config.Config
	Text      *i18n.Catalog
	Responder terminal.Responder
	Story     StoryTeller
	Saves     SaveStore
	Publisher Publisher
	Clock     Clock
}

func (d Dependencies) clock() Clock {
	if d.Clock == nil {
		return NewSystemClock()
	}
	return d.Clock
}

// translator - каталог или ключи как есть.
func (d Dependencies) translator() i18n.Translator {
	if d.Text == nil {
		return i18n.Identity{}
	}
	return d.Text
}
