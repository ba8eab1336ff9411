package entities

import (
	"time"

	"space-horror/internal/animation"
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/pkg/utils"
)

// DoorState - состояние двери.
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpen
)

func (s DoorState) String() string {
	switch s {
	case DoorOpening:
		return "opening"
	case DoorOpen:
		return "open"
	default:
		return "closed"
	}
}

const (
	doorFrames   = 2
	doorInterval = 200 * time.Millisecond
)

// Door ведет на следующий уровень. Заперта, пока связанный терминал не решен.
type Door struct {
	id        string
	rect      domain.Rect
	state     DoorState
	anim      *animation.Animator
	terminal  *CodeTerminal
	NextLevel string
}

func NewDoor(at domain.Vec2, nextLevel string) *Door {
	return &Door{
		id: utils.PrefixedID("door"),
		rect: domain.Rect{
			X: at.X, Y: at.Y,
			W: domain.PlayerWidth * domain.DoorScaleW,
			H: domain.PlayerHeight * domain.DoorScaleH,
		},
		anim:      animation.New(doorFrames, doorInterval, animation.Once),
		NextLevel: nextLevel,
	}
}

// LinkTerminal связывает дверь с терминалом-замком. nil снимает связь.
func (d *Door) LinkTerminal(t *CodeTerminal) { d.terminal = t }

func (d *Door) ID() string        { return d.id }
func (d *Door) Rect() domain.Rect { return d.rect }
func (d *Door) State() DoorState  { return d.state }
func (d *Door) IsOpen() bool      { return d.state == DoorOpen }

// Locked - связанный терминал существует и задача не решена.
func (d *Door) Locked() bool {
	return d.terminal != nil && !d.terminal.Solved()
}

func (d *Door) PromptText(_ *Player) (string, bool) {
	switch {
	case d.terminal == nil:
		return "Press E to enter", true
	case d.terminal.Solved():
		return "Press E to enter save room", true
	default:
		return "Solve the code task to unlock", true
	}
}

// Interact открывает дверь. Повторное взаимодействие ничего не меняет.
func (d *Door) Interact(ctx *Context) Result {
	if d.state != DoorClosed {
		return Result{}
	}
	if d.Locked() {
		return Result{Msg: "Solve the code task to unlock", MsgType: MsgWarning, Event: EventDoorLocked}
	}
	d.state = DoorOpening
	d.anim.Restart(ctx.Now)
	return Result{Msg: "The door slides open", MsgType: MsgInfo, Event: EventDoorOpening}
}

func (d *Door) Update(t domain.Tick) {
	if d.state != DoorOpening {
		return
	}
	d.anim.Tick(t.Now)
	if d.anim.Done() {
		d.state = DoorOpen
	}
}

func (d *Door) Draw(c gfx.Canvas) {
	c.DrawFrame(gfx.Frame{Sheet: gfx.SheetDoor, Index: d.anim.Frame(), Alpha: alphaVisible}, d.rect)
}
