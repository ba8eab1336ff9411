// Package terminal - модальные окна терминалов: задача с кодом, чат с ИИ, связь.
// Пока модальное окно открыто, мир уровня заморожен и ввод получает только оно.
package terminal

import (
	"strings"

	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
)

// Modal - полноэкранное окно поверх уровня.
type Modal interface {
	Name() string
	// Update обрабатывает ввод. Возвращает false, когда окно закрывается.
	Update(in domain.Input, t domain.Tick) bool
	Draw(c gfx.Canvas, tr i18n.Translator)
}

var (
	titleStyle = gfx.TextStyle{Size: 28, Color: gfx.White, Anchor: gfx.AnchorTopLeft}
	bodyStyle  = gfx.TextStyle{Size: 18, Color: gfx.White, Anchor: gfx.AnchorTopLeft}
	hintStyle  = gfx.TextStyle{Size: 16, Color: gfx.Yellow, Anchor: gfx.AnchorTopLeft}
	errorStyle = gfx.TextStyle{Size: 18, Color: gfx.Red, Anchor: gfx.AnchorTopLeft}
	okStyle    = gfx.TextStyle{Size: 18, Color: gfx.Green, Anchor: gfx.AnchorTopLeft}
)

const (
	panelMargin = 50
	lineHeight  = 24
)

// panel рисует затемнение и рамку, возвращает прямоугольник содержимого.
func panel(c gfx.Canvas) domain.Rect {
	w, h := c.Size()
	c.FillRect(domain.Rect{W: float64(w), H: float64(h)}, gfx.Shade)
	r := domain.Rect{X: panelMargin, Y: panelMargin, W: float64(w) - 2*panelMargin, H: float64(h) - 2*panelMargin}
	c.FillRect(r, gfx.Black)
	c.StrokeRect(r, gfx.Gray)
	return r
}

// drawLines выводит многострочный текст, возвращает y после последней строки.
func drawLines(c gfx.Canvas, text string, x, y float64, style gfx.TextStyle) float64 {
	for _, line := range strings.Split(text, "\n") {
		c.DrawText(line, domain.Vec2{X: x, Y: y}, style)
		y += lineHeight
	}
	return y
}

// editLine применяет к буферу печать и служебные клавиши редактирования.
func editLine(buf []rune, in domain.Input, multiline bool) []rune {
	if in.Pressed(domain.KeyBackspace) && len(buf) > 0 {
		buf = buf[:len(buf)-1]
	}
	if multiline {
		if in.Pressed(domain.KeyEnter) {
			buf = append(buf, '\n')
		}
		if in.Pressed(domain.KeyTab) {
			buf = append(buf, []rune("    ")...)
		}
	}
	for _, r := range in.Chars {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		buf = append(buf, r)
	}
	return buf
}
