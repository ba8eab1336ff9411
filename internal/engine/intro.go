package engine

import (
	"context"
	"time"

	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
	"space-horror/pkg/logger"
)

// FallbackStory - вступление без генерации.
var FallbackStory = []string{
	"You wake up in a strange, dark room...",
	"The last thing you remember is boarding a space shuttle...",
	"Now, you must survive and find a way to escape...",
}

const storyTimeout = 15 * time.Second

var (
	introText = gfx.TextStyle{Size: 24, Color: gfx.White, Anchor: gfx.AnchorCenter}
	introHint = gfx.TextStyle{Size: 16, Color: gfx.Gray, Anchor: gfx.AnchorCenter}
)

type storyReply struct {
	cards []string
	err   error
}

// Intro - карточки истории перед первым уровнем.
// Генерация идет в фоне, ответ забирается в Update.
type Intro struct {
	cards   []string
	current int
	pending bool
	replies chan storyReply
	cancel  context.CancelFunc
}

// NewIntro. teller == nil - сразу запасная история.
func NewIntro(teller StoryTeller, level int) *Intro {
	in := &Intro{cards: FallbackStory, replies: make(chan storyReply, 1)}
	if teller == nil {
		return in
	}
	ctx, cancel := context.WithTimeout(context.Background(), storyTimeout)
	in.pending, in.cancel = true, cancel
	go func() {
		defer cancel()
		cards, err := teller.Story(ctx, level)
		in.replies <- storyReply{cards: cards, err: err}
	}()
	return in
}

func (in *Intro) Cards() []string { return in.cards }
func (in *Intro) Current() int    { return in.current }
func (in *Intro) Pending() bool   { return in.pending }

func (in *Intro) poll() {
	if !in.pending {
		return
	}
	select {
	case r := <-in.replies:
		in.pending = false
		if r.err != nil || len(r.cards) == 0 {
			logger.For("intro").WithError(r.err).Warn("Story generation failed, using fallback")
			return
		}
		in.cards = r.cards
	default:
	}
}

// Update возвращает false, когда карточки закончились или вступление пропущено.
func (in *Intro) Update(input domain.Input) bool {
	in.poll()
	if input.Pressed(domain.KeyEscape) {
		in.stop()
		return false
	}
	if in.pending {
		return true
	}
	if input.Pressed(domain.KeySpace) || input.Pressed(domain.KeyEnter) {
		in.current++
	}
	return in.current < len(in.cards)
}

func (in *Intro) stop() {
	if in.cancel != nil {
		in.cancel()
	}
}

func (in *Intro) Draw(c gfx.Canvas, tr i18n.Translator) {
	w, h := c.Size()
	c.FillRect(domain.Rect{W: float64(w), H: float64(h)}, gfx.Black)
	center := domain.Vec2{X: float64(w) / 2, Y: float64(h) / 2}
	if in.pending {
		c.DrawText(tr.Get("Receiving transmission..."), center, introText)
		return
	}
	if in.current < len(in.cards) {
		c.DrawText(tr.Get(in.cards[in.current]), center, introText)
	}
	c.DrawText(tr.Get("Press Space to continue, Esc to skip"), domain.Vec2{X: center.X, Y: float64(h) - 60}, introHint)
}
