package entities

import (
	"testing"
	"time"

	"space-horror/internal/domain"
	"space-horror/internal/i18n"
)

func ctxFor(p *Player, now time.Duration) *Context {
	return &Context{Player: p, Now: now, Text: i18n.Identity{}}
}

func TestDoor(t *testing.T) {
	task := &fakeTask{}
	term := NewCodeTerminal(domain.Vec2{X: 700, Y: 600}, task)
	door := NewDoor(domain.Vec2{X: 1000, Y: 330}, "level2.json")
	door.LinkTerminal(term)
	p := testPlayer()

	if prompt, _ := door.PromptText(p); prompt != "Solve the code task to unlock" {
		t.Errorf("locked prompt = %q", prompt)
	}
	res := door.Interact(ctxFor(p, 0))
	if res.Event != EventDoorLocked || door.State() != DoorClosed {
		t.Fatalf("locked door: %+v state %s", res, door.State())
	}

	task.solved = true
	if prompt, _ := door.PromptText(p); prompt != "Press E to enter save room" {
		t.Errorf("unlocked prompt = %q", prompt)
	}
	res = door.Interact(ctxFor(p, time.Second))
	if res.Event != EventDoorOpening || door.State() != DoorOpening {
		t.Fatalf("opening: %+v state %s", res, door.State())
	}
	if again := door.Interact(ctxFor(p, time.Second)); again != (Result{}) {
		t.Errorf("second interact = %+v", again)
	}

	door.Update(tick(time.Second + 100*time.Millisecond))
	if door.IsOpen() {
		t.Fatal("door opened before the animation ended")
	}
	door.Update(tick(time.Second + 200*time.Millisecond))
	if !door.IsOpen() || door.State().String() != "open" {
		t.Errorf("state = %s", door.State())
	}
}

func TestDoorWithoutTerminal(t *testing.T) {
	door := NewDoor(domain.Vec2{}, "")
	if door.Locked() {
		t.Error("door without terminal is never locked")
	}
	if prompt, _ := door.PromptText(nil); prompt != "Press E to enter" {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestCodeTerminalStaysSolved(t *testing.T) {
	task := &fakeTask{}
	term := NewCodeTerminal(domain.Vec2{}, task)
	if res := term.Interact(ctxFor(testPlayer(), 0)); res.Event != EventOpenCodeTask {
		t.Errorf("unsolved interact = %+v", res)
	}

	task.solved = true
	term.Update(tick(0))
	task.solved = false
	if !term.Solved() {
		t.Error("terminal must remain solved")
	}
	if res := term.Interact(ctxFor(testPlayer(), 0)); res.Msg != "Task already solved!" || res.Event != EventNone {
		t.Errorf("solved interact = %+v", res)
	}

	forced := NewCodeTerminal(domain.Vec2{}, nil)
	forced.MarkSolved()
	if !forced.Solved() {
		t.Error("MarkSolved should solve")
	}
}

func TestTerminalEvents(t *testing.T) {
	p := testPlayer()
	tests := []struct {
		name string
		it   Interactable
		want EventType
	}{
		{"chat", NewChatTerminal(domain.Vec2{}), EventOpenChat},
		{"save", NewSaveTerminal(domain.Vec2{}), EventSaveGame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.it.Interact(ctxFor(p, 0)).Event; got != tt.want {
				t.Errorf("event = %s, want %s", got, tt.want)
			}
			if _, ok := tt.it.PromptText(p); !ok {
				t.Error("prompt expected")
			}
		})
	}
}

func TestShelveInteract(t *testing.T) {
	p := testPlayer()
	a := NewShelve(domain.Vec2{X: 600, Y: 550})
	b := NewShelve(domain.Vec2{X: 900, Y: 550})

	res := a.Interact(ctxFor(p, 0))
	if res.Msg != "You hide inside the shelf" || !p.IsHiding() {
		t.Fatalf("hide: %+v", res)
	}
	if prompt, _ := a.PromptText(p); prompt != "Press F to unhide" {
		t.Errorf("own shelf prompt = %q", prompt)
	}
	if _, ok := b.PromptText(p); ok {
		t.Error("other shelf should not prompt while hiding")
	}

	// Цикл дверцы: 0 -> 1 -> 0.
	a.Update(tick(200 * time.Millisecond))
	if a.Frame() != 1 {
		t.Errorf("frame = %d", a.Frame())
	}
	a.Update(tick(400 * time.Millisecond))
	if a.Frame() != 0 || a.Animating() {
		t.Errorf("frame = %d animating = %v", a.Frame(), a.Animating())
	}

	res = a.Interact(ctxFor(p, time.Second))
	if res.Msg != "You leave the hiding spot" || p.IsHiding() {
		t.Errorf("unhide: %+v", res)
	}
	res = a.Interact(ctxFor(p, time.Second))
	if res.Msg != "You can't hide yet" {
		t.Errorf("cooldown: %+v", res)
	}
}

func TestPromptRange(t *testing.T) {
	p := testPlayer()
	r := p.Rect()
	tests := []struct {
		name string
		at   domain.Vec2
		want bool
	}{
		{"overlapping", domain.Vec2{X: r.X, Y: r.Y}, true},
		{"inside margin", domain.Vec2{X: r.Right() + 5, Y: r.Y}, true},
		{"past margin", domain.Vec2{X: r.Right() + 15, Y: r.Y}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InPromptRange(NewChatTerminal(tt.at), p); got != tt.want {
				t.Errorf("InPromptRange = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickups(t *testing.T) {
	p := testPlayer()
	note := NewNotePickup(domain.Vec2{}, domain.Note{Title: "Log", Text: "..."})
	if !note.Collect(p) || len(p.Notes) != 1 || note.Label() != "Log" {
		t.Errorf("note pickup failed: %+v", p.Notes)
	}

	for i := 0; i < domain.InventoryCapacity; i++ {
		if !NewItemPickup(domain.Vec2{}, domain.Item{Name: "Battery", Kind: domain.ItemBattery}).Collect(p) {
			t.Fatalf("item %d should fit", i)
		}
	}
	extra := NewItemPickup(domain.Vec2{}, domain.Item{Name: "Medkit", Kind: domain.ItemMedkit})
	if extra.Collect(p) {
		t.Error("full inventory must reject the item")
	}
	if extra.ID() == "" || extra.Label() != "Medkit" {
		t.Errorf("id=%q label=%q", extra.ID(), extra.Label())
	}
}
