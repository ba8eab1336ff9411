package engine

import (
	"fmt"
	"time"

	"space-horror/internal/domain"
	"space-horror/internal/entities"
	"space-horror/internal/gfx"
)

var (
	hudStyle    = gfx.TextStyle{Size: 18, Color: gfx.White, Anchor: gfx.AnchorTopLeft}
	warnStyle   = gfx.TextStyle{Size: 28, Color: gfx.Red, Anchor: gfx.AnchorCenter}
	qteStyle    = gfx.TextStyle{Size: 36, Color: gfx.Yellow, Anchor: gfx.AnchorCenter}
	logStyle    = gfx.TextStyle{Size: 16, Color: gfx.White, Anchor: gfx.AnchorTopLeft}
	deathStyle  = gfx.TextStyle{Size: 40, Color: gfx.Red, Anchor: gfx.AnchorCenter}
	overlayText = gfx.TextStyle{Size: 18, Color: gfx.White, Anchor: gfx.AnchorTopLeft}
)

const (
	hudLogLines = 5
	barWidth    = 200
	barHeight   = 14
)

// DrawPlaceholder - фон пустого уровня: черная заливка и серый прямоугольник с отступом 100px.
func DrawPlaceholder(c gfx.Canvas) {
	w, h := c.Size()
	c.FillRect(domain.Rect{W: float64(w), H: float64(h)}, gfx.Black)
	c.FillRect(domain.Rect{X: 100, Y: 100, W: float64(w) - 200, H: float64(h) - 200}, gfx.Gray)
}

// Draw выводит кадр по слоям: фон, объекты, подсказки, интерфейс, модальное окно или экран смерти.
func (l *Level) Draw(c gfx.Canvas, now time.Duration) {
	if l.desc.Background == "" {
		DrawPlaceholder(c)
	} else {
		c.DrawBackground(l.desc.Background)
	}

	for _, o := range l.pop.Obstacles {
		o.Draw(c)
	}
	for _, it := range l.interactables {
		it.Draw(c)
	}
	for _, p := range l.pickups {
		p.Draw(c)
	}
	l.Player.Draw(c)
	for _, m := range l.Monsters {
		m.Draw(c)
	}

	if l.modal == nil && !l.Player.IsDying() {
		ctx := &entities.Context{Player: l.Player, Now: now, Text: l.tr}
		for _, it := range l.interactables {
			if entities.InPromptRange(it, l.Player) {
				entities.DrawPrompt(c, it, ctx)
			}
		}
	}

	l.drawHUD(c, now)

	switch {
	case l.modal != nil:
		l.modal.Draw(c, l.tr)
	case l.gameOver:
		l.drawDeath(c)
	}
}

func (l *Level) drawHUD(c gfx.Canvas, now time.Duration) {
	w, h := c.Size()
	p := l.Player

	c.DrawText(l.tr.Get("Health: %d/%d", p.Health(), p.MaxHealth()), domain.Vec2{X: 20, Y: 20}, hudStyle)
	drawBar(c, domain.Vec2{X: 20, Y: 48}, p.Stamina()/l.cfg.Player.MaxStamina, gfx.Green)
	c.DrawText(l.tr.Get("Stamina"), domain.Vec2{X: 30 + barWidth, Y: 44}, hudStyle)
	drawBar(c, domain.Vec2{X: 20, Y: 70}, p.Noise()/100, gfx.Yellow)
	c.DrawText(l.tr.Get("Noise"), domain.Vec2{X: 30 + barWidth, Y: 66}, hudStyle)

	if l.spawner.Phase() == SpawnWarning {
		c.DrawText(l.tr.Get("Monster arriving in %d", l.spawner.Countdown(now)),
			domain.Vec2{X: float64(w) / 2, Y: 40}, warnStyle)
	}
	if p.IsHiding() {
		c.DrawText(l.tr.Get("Hidden"), domain.Vec2{X: 20, Y: 92}, hudStyle)
	}
	if p.IsQTEActive() {
		left := p.QTERemaining(now).Seconds()
		c.DrawText(l.tr.Get("Press %s! (%.1fs)", p.QTETarget().String(), left),
			domain.Vec2{X: float64(w) / 2, Y: float64(h) / 2}, qteStyle)
	}

	y := float64(h) - 20 - hudLogLines*20
	logs := l.Logs
	if len(logs) > hudLogLines {
		logs = logs[len(logs)-hudLogLines:]
	}
	for _, e := range logs {
		c.DrawText(e.Text, domain.Vec2{X: 20, Y: y}, logStyle)
		y += 20
	}

	if p.ShowInventory {
		l.drawInventory(c)
	}
	if p.ShowNotes {
		l.drawNotes(c)
	}
}

func drawBar(c gfx.Canvas, at domain.Vec2, frac float64, col gfx.Color) {
	frac = domain.Clamp(frac, 0, 1)
	outline := domain.Rect{X: at.X, Y: at.Y, W: barWidth, H: barHeight}
	c.FillRect(domain.Rect{X: at.X, Y: at.Y, W: barWidth * frac, H: barHeight}, col)
	c.StrokeRect(outline, gfx.White)
}

func (l *Level) drawInventory(c gfx.Canvas) {
	w, _ := c.Size()
	r := domain.Rect{X: float64(w) - 320, Y: 20, W: 300, H: 40 + domain.InventoryCapacity*24}
	c.FillRect(r, gfx.Shade)
	c.StrokeRect(r, gfx.Gray)
	c.DrawText(l.tr.Get("Inventory"), domain.Vec2{X: r.X + 10, Y: r.Y + 8}, overlayText)
	for i := 0; i < domain.InventoryCapacity; i++ {
		label := "-"
		if i < len(l.Player.Inventory.Items) {
			label = l.tr.Get(l.Player.Inventory.Items[i].Name)
		}
		c.DrawText(fmt.Sprintf("%d. %s", i+1, label), domain.Vec2{X: r.X + 10, Y: r.Y + 34 + float64(i)*24}, overlayText)
	}
}

func (l *Level) drawNotes(c gfx.Canvas) {
	w, h := c.Size()
	r := domain.Rect{X: 200, Y: 120, W: float64(w) - 400, H: float64(h) - 240}
	c.FillRect(r, gfx.Shade)
	c.StrokeRect(r, gfx.Gray)
	c.DrawText(l.tr.Get("Notes"), domain.Vec2{X: r.X + 10, Y: r.Y + 8}, overlayText)
	if len(l.Player.Notes) == 0 {
		c.DrawText(l.tr.Get("No notes yet"), domain.Vec2{X: r.X + 10, Y: r.Y + 40}, overlayText)
		return
	}
	y := r.Y + 40
	for _, n := range l.Player.Notes {
		c.DrawText(l.tr.Get(n.Title), domain.Vec2{X: r.X + 10, Y: y}, hudStyle)
		c.DrawText(l.tr.Get(n.Text), domain.Vec2{X: r.X + 30, Y: y + 22}, overlayText)
		y += 56
	}
}

func (l *Level) drawDeath(c gfx.Canvas) {
	w, h := c.Size()
	c.FillRect(domain.Rect{W: float64(w), H: float64(h)}, gfx.Shade)
	c.DrawText(l.tr.Get("You died. Press E to respawn"), domain.Vec2{X: float64(w) / 2, Y: float64(h) / 2}, deathStyle)
}
