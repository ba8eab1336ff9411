package terminal

import (
	"context"
	"errors"
	"testing"
	"time"

	"space-horror/internal/domain"
)

type fakeResponder struct {
	reply   string
	err     error
	gotHist []Message
	gotMsg  string
	persona string
	release chan struct{}
}

func (f *fakeResponder) Respond(ctx context.Context, persona string, history []Message, message string) (string, error) {
	f.persona, f.gotHist, f.gotMsg = persona, history, message
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

// waitReply опрашивает чат, пока ответ не придет.
func waitReply(t *testing.T, c *Chat) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for c.Pending() {
		if time.Now().After(deadline) {
			t.Fatal("reply never arrived")
		}
		c.Poll()
		time.Sleep(time.Millisecond)
	}
}

func TestChatWithoutResponder(t *testing.T) {
	c := NewChat(nil)
	c.SetInput("hello")
	c.Send()

	h := c.History()
	if len(h) != 2 || h[1].Content != MsgAIUnavailable {
		t.Errorf("history = %+v", h)
	}
}

func TestChatReplyArrivesOnPoll(t *testing.T) {
	f := &fakeResponder{reply: "Stay quiet near the vents.", release: make(chan struct{})}
	c := NewChat(f)

	c.SetInput("where am I?")
	if !c.Send() {
		t.Fatal("send rejected")
	}
	// Пока запрос в полете, второй не уходит.
	c.SetInput("again")
	if c.Send() {
		t.Error("second send must wait for the first reply")
	}
	if len(c.History()) != 1 {
		t.Fatalf("reply must not appear before Poll, history = %+v", c.History())
	}

	close(f.release)
	waitReply(t, c)

	h := c.History()
	if len(h) != 2 || h[1].Content != "Stay quiet near the vents." || h[1].Role != RoleAssistant {
		t.Errorf("history = %+v", h)
	}
	if f.persona != Persona || f.gotMsg != "where am I?" || len(f.gotHist) != 0 {
		t.Errorf("responder got persona=%q msg=%q hist=%v", f.persona, f.gotMsg, f.gotHist)
	}
}

func TestChatFailureDegrades(t *testing.T) {
	c := NewChat(&fakeResponder{err: errors.New("boom")})
	c.SetInput("hi")
	c.Send()
	waitReply(t, c)

	h := c.History()
	if h[len(h)-1].Content != MsgAIFailed {
		t.Errorf("last message = %q", h[len(h)-1].Content)
	}
}

func TestChatModalKeys(t *testing.T) {
	c := NewChat(nil)
	c.Update(domain.Input{Chars: []rune("hi")}, domain.Tick{})
	if c.Input() != "hi" {
		t.Fatalf("input = %q", c.Input())
	}
	var enter domain.Input
	enter.Press(domain.KeyEnter)
	c.Update(enter, domain.Tick{})
	if c.Input() != "" || len(c.History()) != 2 {
		t.Errorf("input = %q history = %d", c.Input(), len(c.History()))
	}
	var esc domain.Input
	esc.Press(domain.KeyEscape)
	if c.Update(esc, domain.Tick{}) {
		t.Error("Esc must close the chat")
	}
}
