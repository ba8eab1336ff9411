package entities

import (
	"time"

	"space-horror/internal/animation"
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/pkg/utils"
)

const (
	shelveFrames   = 2
	shelveInterval = 200 * time.Millisecond
)

// Shelve - шкаф, в котором можно спрятаться.
type Shelve struct {
	id   string
	rect domain.Rect
	anim *animation.Animator
}

func NewShelve(at domain.Vec2) *Shelve {
	return &Shelve{
		id: utils.PrefixedID("shelve"),
		rect: domain.Rect{
			X: at.X, Y: at.Y,
			W: domain.PlayerWidth * domain.ShelveScaleW,
			H: domain.PlayerHeight * domain.ShelveScaleH,
		},
		anim: animation.New(shelveFrames, shelveInterval, animation.Cycle),
	}
}

func (s *Shelve) ID() string        { return s.id }
func (s *Shelve) Rect() domain.Rect { return s.rect }
func (s *Shelve) Animating() bool   { return s.anim.Running() }
func (s *Shelve) Frame() int        { return s.anim.Frame() }

// Animate проигрывает полный цикл дверцы.
func (s *Shelve) Animate(now time.Duration) { s.anim.Restart(now) }

func (s *Shelve) PromptText(p *Player) (string, bool) {
	switch {
	case p.IsHiding() && p.HidingSpot() == HidingSpot(s):
		return "Press F to unhide", true
	case !p.IsHiding():
		return "Press F to hide", true
	default:
		// Игрок прячется в другом месте.
		return "", false
	}
}

// Interact переключает укрытие. Анимация играет при любом исходе.
func (s *Shelve) Interact(ctx *Context) Result {
	p := ctx.Player
	res := Result{Event: EventHideToggled, MsgType: MsgInfo}
	switch {
	case p.IsHiding() && p.HidingSpot() == HidingSpot(s):
		p.Unhide()
		res.Msg = "You leave the hiding spot"
	case !p.IsHiding():
		if p.Hide(s) {
			res.Msg = "You hide inside the shelf"
		} else {
			res.Msg = "You can't hide yet"
		}
	}
	s.Animate(ctx.Now)
	return res
}

func (s *Shelve) Update(t domain.Tick) { s.anim.Tick(t.Now) }

func (s *Shelve) Draw(c gfx.Canvas) {
	c.DrawFrame(gfx.Frame{Sheet: gfx.SheetShelve, Index: s.anim.Frame(), Alpha: alphaVisible}, s.rect)
}
