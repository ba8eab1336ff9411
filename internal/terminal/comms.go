package terminal

import (
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
)

// CommsText - статическое сообщение терминала связи.
const CommsText = "Welcome to the Communication Terminal. Here you can learn about the ship's history and current situation."

// Comms - терминал связи, вызывается клавишей T в любом месте уровня.
type Comms struct {
	Lines []string
}

func NewComms(extra ...string) *Comms {
	return &Comms{Lines: append([]string{CommsText}, extra...)}
}

func (m *Comms) Name() string { return "comms" }

func (m *Comms) Update(in domain.Input, _ domain.Tick) bool {
	return !(in.Pressed(domain.KeyEscape) || in.Pressed(domain.KeyEnter) || in.Pressed(domain.KeyComms))
}

func (m *Comms) Draw(c gfx.Canvas, tr i18n.Translator) {
	r := panel(c)
	x, y := r.X+20, r.Y+20
	c.DrawText(tr.Get("Communication Terminal"), domain.Vec2{X: x, Y: y}, titleStyle)
	y += 50
	for _, l := range m.Lines {
		y = drawLines(c, tr.Get(l), x, y, bodyStyle) + lineHeight/2
	}
	c.DrawText(tr.Get("Press Esc to close"), domain.Vec2{X: x, Y: r.Bottom() - 30}, hintStyle)
}
