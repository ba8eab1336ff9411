// Package gfx описывает минимальный интерфейс отрисовки, которым пользуется ядро игры.
// Реализация поверх ebiten живет в internal/render; в тестах используется Recorder.
package gfx

import "space-horror/internal/domain"

// Color - RGBA 0..255.
type Color struct {
	R, G, B, A uint8
}

var (
	Black  = Color{0, 0, 0, 255}
	White  = Color{255, 255, 255, 255}
	Gray   = Color{60, 60, 60, 255}
	Red    = Color{200, 30, 30, 255}
	Yellow = Color{230, 200, 40, 255}
	Green  = Color{60, 200, 90, 255}
	Shade  = Color{0, 0, 0, 180}
)

// Sheet - имя спрайт-листа в атласе.
type Sheet string

const (
	SheetBackground   Sheet = "background"
	SheetPlayerIdle   Sheet = "player_idle"
	SheetPlayerMove   Sheet = "player_move"
	SheetPlayerDeath  Sheet = "player_death"
	SheetMonsterMove  Sheet = "monster_move"
	SheetMonsterAtk   Sheet = "monster_attack"
	SheetDoor         Sheet = "door"
	SheetShelve       Sheet = "shelve"
	SheetCodeTerminal Sheet = "code_terminal"
	SheetChatTerminal Sheet = "chat_terminal"
	SheetSaveTerminal Sheet = "save_terminal"
	SheetItem         Sheet = "item"
	SheetNote         Sheet = "note"
)

// Frame - ссылка на кадр спрайт-листа и параметры его вывода.
type Frame struct {
	Sheet Sheet
	Index int
	FlipX bool
	Alpha uint8 // 0 - полностью прозрачный
	Tint  domain.Tint
}

type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

type TextStyle struct {
	Size   float64
	Color  Color
	Anchor Anchor
}

// Canvas - поверхность кадра.
type Canvas interface {
	// DrawFrame выводит кадр, растянутый на dst.
	DrawFrame(f Frame, dst domain.Rect)
	// DrawBackground выводит фон уровня по имени файла; пустое имя - плейсхолдер.
	DrawBackground(name string)
	FillRect(r domain.Rect, c Color)
	StrokeRect(r domain.Rect, c Color)
	DrawText(s string, at domain.Vec2, style TextStyle)
	Size() (w, h int)
}

// PromptStyle - стиль подсказок над интерактивными объектами.
var PromptStyle = TextStyle{Size: 18, Color: White, Anchor: AnchorCenter}

// DrawPrompt рисует подсказку над прямоугольником.
func DrawPrompt(c Canvas, over domain.Rect, text string) {
	c.DrawText(text, domain.Vec2{X: over.Center().X, Y: over.Top() - 16}, PromptStyle)
}
