package entities

import (
	"math/rand"
	"time"

	"space-horror/internal/animation"
	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/systems"
	"space-horror/pkg/utils"
)

const (
	walkFrames    = 4
	walkInterval  = 100 * time.Millisecond
	deathFrames   = 4
	deathInterval = 200 * time.Millisecond

	alphaVisible uint8 = 255
	alphaHidden  uint8 = 0
)

// PlayerEvent - заметное событие тика игрока, которое обрабатывает Level.
type PlayerEvent uint8

const (
	PlayerHid PlayerEvent = iota + 1
	PlayerUnhid
	PlayerNoHidingSpot
	PlayerQTEStarted
	PlayerQTEPassed
	PlayerQTEFailed
	PlayerQTETimeout
	PlayerUsedItem
	PlayerNothingToUse
)

// HidingSpot - место, где можно спрятаться.
type HidingSpot interface {
	Rect() domain.Rect
	// Animate проигрывает анимацию открытия/закрытия.
	Animate(now time.Duration)
}

// PlayerEnv - то, что игроку нужно знать об уровне в своем тике.
type PlayerEnv interface {
	HidingSpotAt(r domain.Rect) HidingSpot
	// ThreatNear - есть ли монстр, способный проверить укрытие в точке p.
	ThreatNear(p domain.Vec2) bool
	InVerticalZone(p domain.Vec2) bool
	Bounds() domain.Rect
}

// Player - единственный управляемый персонаж уровня.
// Инварианты: hiding и dying взаимоисключающие, hidingSpot != nil тогда и только тогда, когда hiding.
type Player struct {
	id     string
	pos    domain.Vec2 // центр спрайта
	prev   domain.Vec2
	w, h   float64
	tuning config.PlayerTuning
	rng    *rand.Rand

	Velocity      domain.Vec2
	savedVelocity domain.Vec2
	vitals        domain.Vitals
	noise         float64

	hiding         bool
	hidingSpot     HidingSpot
	hidingCooldown int

	qteActive bool
	qteTarget domain.Key
	qteStart  time.Duration

	Inventory domain.Inventory
	Notes     []domain.Note

	// Overlays, переключаемые клавишами C и Q.
	ShowInventory bool
	ShowNotes     bool

	// Invulnerable - режим администратора, урон не проходит.
	Invulnerable bool

	dying       bool
	alpha       uint8
	facingRight bool
	moving      bool
	lastItem    domain.Item

	walk  *animation.Animator
	death *animation.Animator
}

func NewPlayer(start domain.Vec2, tuning config.PlayerTuning, rng *rand.Rand) *Player {
	p := &Player{
		id:     utils.PrefixedID("player"),
		w:      domain.PlayerWidth,
		h:      domain.PlayerHeight,
		tuning: tuning,
		rng:    rng,
		walk:   animation.New(walkFrames, walkInterval, animation.Loop),
		death:  animation.New(deathFrames, deathInterval, animation.Once),
	}
	p.Reset(start, false)
	return p
}

// Reset возвращает игрока в начальное состояние в точке start.
// keepBelongings сохраняет инвентарь и записки (переход на следующий уровень).
func (p *Player) Reset(start domain.Vec2, keepBelongings bool) {
	p.pos, p.prev = start, start
	p.Velocity, p.savedVelocity = domain.Vec2{}, domain.Vec2{}
	p.vitals = domain.Vitals{
		Health:     p.tuning.MaxHealth,
		MaxHealth:  p.tuning.MaxHealth,
		Stamina:    p.tuning.MaxStamina,
		MaxStamina: p.tuning.MaxStamina,
	}
	p.noise = 0
	p.hiding, p.hidingSpot, p.hidingCooldown = false, nil, 0
	p.qteActive, p.qteTarget = false, domain.KeyNone
	p.dying = false
	p.alpha = alphaVisible
	p.facingRight = true
	p.moving = false
	p.ShowInventory, p.ShowNotes = false, false
	if !keepBelongings {
		p.Inventory = domain.Inventory{}
		p.Notes = nil
	}
	p.walk.Reset()
	p.death.Reset()
}

func (p *Player) ID() string { return p.id }

func (p *Player) Rect() domain.Rect { return domain.RectAround(p.pos, p.w, p.h) }

func (p *Player) Position() domain.Vec2     { return p.pos }
func (p *Player) Health() int               { return p.vitals.Health }
func (p *Player) MaxHealth() int            { return p.vitals.MaxHealth }
func (p *Player) Stamina() float64          { return p.vitals.Stamina }
func (p *Player) Noise() float64            { return p.noise }
func (p *Player) IsHiding() bool            { return p.hiding }
func (p *Player) HidingSpot() HidingSpot    { return p.hidingSpot }
func (p *Player) IsDying() bool             { return p.dying }
func (p *Player) IsQTEActive() bool         { return p.qteActive }
func (p *Player) QTETarget() domain.Key     { return p.qteTarget }
func (p *Player) Alpha() uint8              { return p.alpha }
func (p *Player) HidingCooldown() int       { return p.hidingCooldown }
func (p *Player) LastUsedItem() domain.Item { return p.lastItem }

// SetHealth - для читов администратора и загрузки сохранений.
func (p *Player) SetHealth(hp int) { p.vitals.Health = hp }

func (p *Player) SetStamina(v float64) {
	p.vitals.Stamina = domain.Clamp(v, 0, p.vitals.MaxStamina)
}

// MoveTo телепортирует игрока (чит, старт уровня).
func (p *Player) MoveTo(pos domain.Vec2) {
	p.pos, p.prev = pos, pos
}

// DeathFinished - анимация смерти доиграна до последнего кадра.
func (p *Player) DeathFinished() bool { return p.dying && p.death.Done() }

// State - обобщенное состояние для журнала и отладки.
func (p *Player) State() string {
	switch {
	case p.dying:
		return "dying"
	case p.qteActive:
		return "qte"
	case p.hiding:
		return "hiding"
	default:
		return "normal"
	}
}

// Control применяет ввод одного тика. Мир двигается только в состоянии normal.
func (p *Player) Control(in domain.Input, env PlayerEnv, t domain.Tick) []PlayerEvent {
	if p.dying {
		p.Velocity = domain.Vec2{}
		p.moving = false
		p.rest(t)
		return nil
	}
	if p.hiding {
		return p.controlHidden(in, env, t)
	}

	var events []PlayerEvent
	frames := t.Frames()
	p.prev = p.pos

	var dir domain.Vec2
	if in.Held(domain.KeyLeft) {
		dir.X = -1
		p.facingRight = false
	} else if in.Held(domain.KeyRight) {
		dir.X = 1
		p.facingRight = true
	}
	if env.InVerticalZone(p.pos) {
		if in.Held(domain.KeyUp) {
			dir.Y = -1
		} else if in.Held(domain.KeyDown) {
			dir.Y = 1
		}
	}

	p.moving = dir != (domain.Vec2{})
	gait := systems.ChooseGait(p.moving, in.Held(domain.KeyRun), p.vitals.Stamina)
	p.noise = systems.ApplyGait(&p.vitals, p.noise, gait, frames)

	p.Velocity = domain.Vec2{}
	if p.moving {
		speed := systems.SpeedFor(gait, p.tuning.Speed, p.tuning.RunMultiplier)
		p.Velocity = dir.Scale(speed / dir.Len())
	}
	p.pos = p.pos.Add(p.Velocity.Scale(frames))
	p.pos = systems.ClampInto(p.Rect(), env.Bounds()).Center()

	if p.hidingCooldown > 0 {
		p.hidingCooldown--
	}

	if in.Pressed(domain.KeyHide) {
		spot := env.HidingSpotAt(p.Rect())
		switch {
		case spot == nil:
			events = append(events, PlayerNoHidingSpot)
		case p.Hide(spot):
			spot.Animate(t.Now)
			events = append(events, PlayerHid)
		}
	}
	if in.Pressed(domain.KeyUseItem) {
		if p.UseItem() {
			events = append(events, PlayerUsedItem)
		} else {
			events = append(events, PlayerNothingToUse)
		}
	}
	if in.Pressed(domain.KeyInventory) {
		p.ShowInventory = !p.ShowInventory
	}
	if in.Pressed(domain.KeyNotes) {
		p.ShowNotes = !p.ShowNotes
	}
	return events
}

// rest - тик без движения: шум спадает, силы восстанавливаются.
func (p *Player) rest(t domain.Tick) {
	p.noise = systems.ApplyGait(&p.vitals, p.noise, systems.GaitStill, t.Frames())
}

func (p *Player) controlHidden(in domain.Input, env PlayerEnv, t domain.Tick) []PlayerEvent {
	p.Velocity = domain.Vec2{}
	p.moving = false
	p.rest(t)

	if p.qteActive {
		return p.resolveQTE(in, t)
	}
	if in.Pressed(domain.KeyHide) {
		spot := p.hidingSpot
		if p.Unhide() {
			spot.Animate(t.Now)
			return []PlayerEvent{PlayerUnhid}
		}
		return nil
	}
	if env.ThreatNear(p.pos) && p.rng.Float64() < p.tuning.QTEChance {
		p.StartQTE(t.Now)
		return []PlayerEvent{PlayerQTEStarted}
	}
	return nil
}

// RevertMove откатывает последний шаг (столкновение с препятствием).
func (p *Player) RevertMove() {
	p.pos = p.prev
}

// TakeDamage наносит урон. Возвращает true, если этот удар убил игрока.
// Здоровье не обрезается: несколько ударов за тик складываются.
func (p *Player) TakeDamage(amount int, now time.Duration) bool {
	if p.dying || p.Invulnerable {
		return false
	}
	if p.vitals.TakeDamage(amount) {
		p.die(now)
		return true
	}
	return false
}

func (p *Player) die(now time.Duration) {
	if p.hiding {
		p.Unhide()
	}
	p.qteActive = false
	p.dying = true
	p.Velocity = domain.Vec2{}
	p.moving = false
	p.alpha = alphaVisible
	p.death.Restart(now)
}

func (p *Player) Heal(amount int) { p.vitals.Heal(amount) }

// AddToInventory возвращает false, если инвентарь полон.
func (p *Player) AddToInventory(it domain.Item) bool { return p.Inventory.Add(it) }

func (p *Player) AddNote(n domain.Note) { p.Notes = append(p.Notes, n) }

// UseItem использует первый предмет инвентаря.
func (p *Player) UseItem() bool {
	it, ok := p.Inventory.TakeFirst()
	if !ok {
		return false
	}
	switch it.Kind {
	case domain.ItemMedkit:
		p.vitals.Heal(1)
	case domain.ItemBattery:
		p.vitals.RestoreStamina(50)
	}
	p.lastItem = it
	return true
}

// Update продвигает анимации игрока.
func (p *Player) Update(t domain.Tick) {
	switch {
	case p.dying:
		p.death.Tick(t.Now)
	case p.moving:
		if !p.walk.Running() {
			p.walk.Start(t.Now)
		}
		p.walk.Tick(t.Now)
	default:
		p.walk.Reset()
	}
}

func (p *Player) Draw(c gfx.Canvas) {
	if p.alpha == alphaHidden {
		return
	}
	f := gfx.Frame{Sheet: gfx.SheetPlayerIdle, FlipX: !p.facingRight, Alpha: p.alpha}
	switch {
	case p.dying:
		f.Sheet, f.Index = gfx.SheetPlayerDeath, p.death.Frame()
	case p.moving:
		f.Sheet, f.Index = gfx.SheetPlayerMove, p.walk.Frame()
	}
	c.DrawFrame(f, p.Rect())
}
