package engine

import (
	"context"
	"time"

	"space-horror/internal/domain"
	"space-horror/internal/entities"
	"space-horror/pkg/utils"
)

const saveTimeout = 5 * time.Second

type saveResult struct {
	save domain.SaveGame
	err  error
}

// saveGame собирает текущий прогресс игрока.
func (l *Level) saveGame() domain.SaveGame {
	inv := make([]domain.Item, len(l.Player.Inventory.Items))
	copy(inv, l.Player.Inventory.Items)
	notes := make([]domain.Note, len(l.Player.Notes))
	copy(notes, l.Player.Notes)
	return domain.SaveGame{
		ID:        utils.PrefixedID("save"),
		LevelFile: l.file,
		Health:    l.Player.Health(),
		Stamina:   l.Player.Stamina(),
		Inventory: inv,
		Notes:     notes,
		CreatedAt: time.Now(),
	}
}

// saveAsync пишет сохранение в фоне. Результат приходит в drainSaves на одном из следующих тиков.
func (l *Level) saveAsync() {
	if l.deps.Saves == nil {
		l.say("Saving is unavailable", entities.MsgWarning)
		return
	}
	if l.saving {
		l.say("Save already in progress", entities.MsgWarning)
		return
	}
	l.saving = true
	save := l.saveGame()
	store, out := l.deps.Saves, l.saves
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		out <- saveResult{save: save, err: store.Save(ctx, save)}
	}()
}

func (l *Level) drainSaves() {
	select {
	case r := <-l.saves:
		l.saving = false
		if r.err != nil {
			l.log.WithError(r.err).Warn("Save failed")
			l.say("Save failed", entities.MsgDanger)
			return
		}
		l.log.WithField("save_id", r.save.ID).Info("Progress saved")
		l.say("Progress saved", entities.MsgSystem)
	default:
	}
}

// ApplySave загружает уровень сохранения и возвращает игроку вещи и показатели.
func (l *Level) ApplySave(s domain.SaveGame) {
	l.load(s.LevelFile, false)
	l.Player.SetHealth(s.Health)
	l.Player.SetStamina(s.Stamina)
	for _, it := range s.Inventory {
		l.Player.AddToInventory(it)
	}
	for _, n := range s.Notes {
		l.Player.AddNote(n)
	}
	l.say("Progress loaded", entities.MsgSystem)
}
