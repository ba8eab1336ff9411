package terminal

import (
	"fmt"

	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
	"space-horror/pkg/logger"
)

// CodeTaskModal - редактор решения поверх уровня.
// F5 отправляет решение, F9 подставляет ответ (только в режиме администратора), Esc закрывает.
type CodeTaskModal struct {
	Task *CodeTask
	// AdminEnabled проверяется на каждое нажатие F9.
	AdminEnabled func() bool
}

func NewCodeTaskModal(task *CodeTask, adminEnabled func() bool) *CodeTaskModal {
	return &CodeTaskModal{Task: task, AdminEnabled: adminEnabled}
}

func (m *CodeTaskModal) Name() string { return "code_task" }

func (m *CodeTaskModal) Update(in domain.Input, _ domain.Tick) bool {
	if in.Pressed(domain.KeyEscape) {
		return false
	}
	if m.Task.IsSolved() {
		return true
	}

	if in.Pressed(domain.KeyAdminPaste) {
		if m.AdminEnabled != nil && m.AdminEnabled() {
			m.Task.Reveal()
			logger.For("code_task").WithField("task", m.Task.Index()).Warn("Admin paste used")
		}
		return true
	}
	if in.Pressed(domain.KeySubmit) {
		idx := m.Task.Index()
		ok := m.Task.Submit(m.Task.Buffer())
		logger.For("code_task").WithField("task", idx).WithField("accepted", ok).Info("Solution submitted")
		return true
	}

	m.Task.SetBuffer(string(editLine([]rune(m.Task.Buffer()), in, true)))
	return true
}

func (m *CodeTaskModal) Draw(c gfx.Canvas, tr i18n.Translator) {
	r := panel(c)
	x, y := r.X+20, r.Y+20

	task, ok := m.Task.Current()
	if !ok {
		c.DrawText(tr.Get(MsgAllSolved), domain.Vec2{X: x, Y: y}, okStyle)
		c.DrawText(tr.Get("Press Esc to close"), domain.Vec2{X: x, Y: r.Bottom() - 40}, hintStyle)
		return
	}

	title := tr.Get("Task %d of %d", m.Task.Index()+1, m.Task.Len())
	c.DrawText(title, domain.Vec2{X: x, Y: y}, titleStyle)
	y = drawLines(c, tr.Get(task.Description), x, y+40, bodyStyle)

	editor := domain.Rect{X: x, Y: y + 10, W: r.W - 40, H: r.H - (y - r.Y) - 110}
	c.StrokeRect(editor, gfx.Gray)
	drawLines(c, m.Task.Buffer()+"_", editor.X+10, editor.Y+10, bodyStyle)

	if msg := m.Task.Message(); msg != "" {
		style := okStyle
		if msg == MsgWrongSolution {
			style = errorStyle
		}
		c.DrawText(tr.Get(msg), domain.Vec2{X: x, Y: editor.Bottom() + 15}, style)
	}

	hint := tr.Get("F5 submit, Esc close")
	if m.AdminEnabled != nil && m.AdminEnabled() {
		hint = fmt.Sprintf("%s, %s", hint, tr.Get("F9 paste answer"))
	}
	c.DrawText(hint, domain.Vec2{X: x, Y: r.Bottom() - 30}, hintStyle)
}
