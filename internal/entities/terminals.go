package entities

import (
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/pkg/utils"
)

// TaskState - состояние задачи, к которой привязан терминал.
type TaskState interface {
	IsSolved() bool
}

func terminalRect(at domain.Vec2) domain.Rect {
	return domain.Rect{X: at.X, Y: at.Y, W: domain.TerminalWidth, H: domain.TerminalHeight}
}

// CodeTerminal открывает задачу с кодом. Решенная задача отпирает дверь.
type CodeTerminal struct {
	id     string
	rect   domain.Rect
	task   TaskState
	solved bool
}

func NewCodeTerminal(at domain.Vec2, task TaskState) *CodeTerminal {
	return &CodeTerminal{id: utils.PrefixedID("code_terminal"), rect: terminalRect(at), task: task}
}

func (t *CodeTerminal) ID() string        { return t.id }
func (t *CodeTerminal) Rect() domain.Rect { return t.rect }

// Solved - задача решена. Однажды решенный терминал остается решенным.
func (t *CodeTerminal) Solved() bool {
	if !t.solved && t.task != nil && t.task.IsSolved() {
		t.solved = true
	}
	return t.solved
}

// MarkSolved - принудительно (чит администратора).
func (t *CodeTerminal) MarkSolved() { t.solved = true }

func (t *CodeTerminal) PromptText(_ *Player) (string, bool) {
	if t.Solved() {
		return "Task already solved!", true
	}
	return "Press E to interact", true
}

func (t *CodeTerminal) Interact(_ *Context) Result {
	if t.Solved() {
		return Result{Msg: "Task already solved!", MsgType: MsgInfo}
	}
	return Result{Event: EventOpenCodeTask}
}

func (t *CodeTerminal) Update(_ domain.Tick) { t.Solved() }

func (t *CodeTerminal) Draw(c gfx.Canvas) {
	idx := 0
	if t.Solved() {
		idx = 1
	}
	c.DrawFrame(gfx.Frame{Sheet: gfx.SheetCodeTerminal, Index: idx, Alpha: alphaVisible}, t.rect)
}

// ChatTerminal открывает чат с бортовым ИИ.
type ChatTerminal struct {
	id   string
	rect domain.Rect
}

func NewChatTerminal(at domain.Vec2) *ChatTerminal {
	return &ChatTerminal{id: utils.PrefixedID("chat_terminal"), rect: terminalRect(at)}
}

func (t *ChatTerminal) ID() string                          { return t.id }
func (t *ChatTerminal) Rect() domain.Rect                   { return t.rect }
func (t *ChatTerminal) Update(_ domain.Tick)                {}
func (t *ChatTerminal) PromptText(_ *Player) (string, bool) { return "Press E to chat", true }
func (t *ChatTerminal) Interact(_ *Context) Result          { return Result{Event: EventOpenChat} }

func (t *ChatTerminal) Draw(c gfx.Canvas) {
	c.DrawFrame(gfx.Frame{Sheet: gfx.SheetChatTerminal, Alpha: alphaVisible}, t.rect)
}

// SaveTerminal записывает прогресс.
type SaveTerminal struct {
	id   string
	rect domain.Rect
}

func NewSaveTerminal(at domain.Vec2) *SaveTerminal {
	return &SaveTerminal{id: utils.PrefixedID("save_terminal"), rect: terminalRect(at)}
}

func (t *SaveTerminal) ID() string                          { return t.id }
func (t *SaveTerminal) Rect() domain.Rect                   { return t.rect }
func (t *SaveTerminal) Update(_ domain.Tick)                {}
func (t *SaveTerminal) PromptText(_ *Player) (string, bool) { return "Press E to save progress", true }

func (t *SaveTerminal) Interact(_ *Context) Result {
	return Result{Msg: "Saving progress...", MsgType: MsgSystem, Event: EventSaveGame}
}

func (t *SaveTerminal) Draw(c gfx.Canvas) {
	c.DrawFrame(gfx.Frame{Sheet: gfx.SheetSaveTerminal, Alpha: alphaVisible}, t.rect)
}
