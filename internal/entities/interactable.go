package entities

import (
	"time"

	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
)

// Interactable - объект с подсказкой рядом с игроком и действием по клавише E.
type Interactable interface {
	Entity
	// PromptText возвращает ключ подсказки; false - подсказку не рисовать.
	PromptText(p *Player) (string, bool)
	Interact(ctx *Context) Result
}

// Context передает объекту состояние, нужное для взаимодействия.
type Context struct {
	Player *Player
	Now    time.Duration
	Text   i18n.Translator
}

// EventType - что Level должен сделать после взаимодействия.
type EventType uint8

const (
	EventNone EventType = iota
	EventOpenCodeTask
	EventOpenChat
	EventSaveGame
	EventDoorOpening
	EventDoorLocked
	EventHideToggled
)

func (e EventType) String() string {
	switch e {
	case EventOpenCodeTask:
		return "open_code_task"
	case EventOpenChat:
		return "open_chat"
	case EventSaveGame:
		return "save_game"
	case EventDoorOpening:
		return "door_opening"
	case EventDoorLocked:
		return "door_locked"
	case EventHideToggled:
		return "hide_toggled"
	default:
		return "none"
	}
}

// Типы сообщений журнала
const (
	MsgInfo    = "INFO"
	MsgWarning = "WARNING"
	MsgDanger  = "DANGER"
	MsgSystem  = "SYSTEM"
)

// Result - итог взаимодействия. Объект не трогает Level напрямую,
// он возвращает данные, а Level их обрабатывает.
type Result struct {
	Msg     string // ключ локализации
	MsgType string
	Event   EventType
}

// DrawPrompt рисует подсказку объекта, если он ее предлагает.
func DrawPrompt(c gfx.Canvas, it Interactable, ctx *Context) {
	key, ok := it.PromptText(ctx.Player)
	if !ok {
		return
	}
	gfx.DrawPrompt(c, it.Rect(), ctx.Text.Get(key))
}

// InPromptRange - рисовать ли подсказку: объект пересекает прямоугольник игрока, расширенный на 20px (по 10px с каждой стороны).
func InPromptRange(it Entity, p *Player) bool {
	return it.Rect().Intersects(p.Rect().Inflate(20, 20))
}

// Сводная проверка, что типы реализуют интерфейс.
var (
	_ Interactable = (*Door)(nil)
	_ Interactable = (*Shelve)(nil)
	_ Interactable = (*CodeTerminal)(nil)
	_ Interactable = (*ChatTerminal)(nil)
	_ Interactable = (*SaveTerminal)(nil)
)
