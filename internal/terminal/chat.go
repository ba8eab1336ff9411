package terminal

import (
	"context"
	"time"

	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
	"space-horror/pkg/logger"
)

// Persona - системная роль бортового ИИ.
const Persona = "You are an AI assistant in a space survival horror game. Provide information and guidance to the player."

const (
	MsgAIUnavailable = "AI is currently unavailable. Please try again later."
	MsgAIFailed      = "Sorry, I couldn't process your request. Please try again."
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	chatTimeout     = 30 * time.Second
	chatVisibleMsgs = 12
)

// Message - реплика диалога.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Responder - внешний ИИ-собеседник.
type Responder interface {
	Respond(ctx context.Context, persona string, history []Message, message string) (string, error)
}

type chatReply struct {
	text string
	err  error
}

// Chat - модальное окно переписки. Запрос к ИИ идет в отдельной горутине,
// ответ забирается только в тике (Poll), так что история меняется из одного потока.
type Chat struct {
	responder Responder
	history   []Message
	input     []rune

	pending bool
	replies chan chatReply
	cancel  context.CancelFunc
}

// NewChat. responder может быть nil: тогда на каждое сообщение приходит "недоступен".
func NewChat(responder Responder) *Chat {
	return &Chat{responder: responder, replies: make(chan chatReply, 1)}
}

func (c *Chat) Name() string       { return "chat" }
func (c *Chat) History() []Message { return c.history }
func (c *Chat) Pending() bool      { return c.pending }
func (c *Chat) Input() string      { return string(c.input) }
func (c *Chat) SetInput(s string)  { c.input = []rune(s) }

// Send отправляет текущий ввод. Одновременно в полете только один запрос.
func (c *Chat) Send() bool {
	msg := string(c.input)
	if msg == "" || c.pending {
		return false
	}
	c.input = c.input[:0]
	history := append([]Message(nil), c.history...)
	c.history = append(c.history, Message{Role: RoleUser, Content: msg})

	if c.responder == nil {
		c.history = append(c.history, Message{Role: RoleAssistant, Content: MsgAIUnavailable})
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), chatTimeout)
	c.cancel = cancel
	c.pending = true
	go func(r Responder) {
		defer cancel()
		text, err := r.Respond(ctx, Persona, history, msg)
		c.replies <- chatReply{text: text, err: err}
	}(c.responder)
	return true
}

// Poll забирает готовый ответ, если он есть. Вызывается каждый тик, даже при закрытом окне.
func (c *Chat) Poll() {
	if !c.pending {
		return
	}
	select {
	case r := <-c.replies:
		c.pending = false
		c.cancel = nil
		text := r.text
		if r.err != nil || text == "" {
			logger.For("chat").WithError(r.err).Warn("AI responder failed")
			text = MsgAIFailed
		}
		c.history = append(c.history, Message{Role: RoleAssistant, Content: text})
	default:
	}
}

// Abort отменяет запрос в полете (закрытие уровня).
func (c *Chat) Abort() {
	if c.cancel != nil {
		c.cancel()
	}
}

func (c *Chat) Update(in domain.Input, _ domain.Tick) bool {
	c.Poll()
	if in.Pressed(domain.KeyEscape) {
		return false
	}
	if in.Pressed(domain.KeyEnter) {
		c.Send()
		return true
	}
	c.input = editLine(c.input, in, false)
	return true
}

func (c *Chat) Draw(cv gfx.Canvas, tr i18n.Translator) {
	r := panel(cv)
	x, y := r.X+20, r.Y+20
	cv.DrawText(tr.Get("Ship AI"), domain.Vec2{X: x, Y: y}, titleStyle)
	y += 40

	msgs := c.history
	if len(msgs) > chatVisibleMsgs {
		msgs = msgs[len(msgs)-chatVisibleMsgs:]
	}
	for _, m := range msgs {
		prefix, style := "> ", bodyStyle
		if m.Role == RoleAssistant {
			prefix, style = "AI: ", okStyle
		}
		content := m.Content
		if m.Role == RoleAssistant {
			content = tr.Get(content)
		}
		y = drawLines(cv, prefix+content, x, y, style)
	}
	if c.pending {
		cv.DrawText(tr.Get("AI is thinking..."), domain.Vec2{X: x, Y: y}, hintStyle)
	}

	cv.StrokeRect(domain.Rect{X: x, Y: r.Bottom() - 80, W: r.W - 40, H: 32}, gfx.Gray)
	cv.DrawText(string(c.input)+"_", domain.Vec2{X: x + 8, Y: r.Bottom() - 74}, bodyStyle)
	cv.DrawText(tr.Get("Enter send, Esc close"), domain.Vec2{X: x, Y: r.Bottom() - 30}, hintStyle)
}
