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
	monsterMoveFrames   = 3
	monsterAttackFrames = 5
	monsterAnimInterval = 200 * time.Millisecond
)

// Monster - патрулирует, переходит в погоню и исчезает через фиксированное время.
// Варианты отличаются только профилем.
type Monster struct {
	id      string
	profile domain.CreatureProfile
	tuning  config.MonsterTuning
	rect    domain.Rect
	rng     *rand.Rand

	state     domain.AIState
	direction float64
	speed     float64

	despawnAt time.Duration
	nextTurn  time.Duration

	attacking  bool
	lastAttack time.Duration
	hasAttack  bool

	move   *animation.Animator
	attack *animation.Animator
}

// NewMonster создает монстра с левым верхним углом в at.
func NewMonster(profile domain.CreatureProfile, tuning config.MonsterTuning, at domain.Vec2, now time.Duration, rng *rand.Rand) *Monster {
	m := &Monster{
		id:      utils.PrefixedID("monster"),
		profile: profile,
		tuning:  tuning,
		rect: domain.Rect{
			X: at.X,
			Y: at.Y + domain.MonsterSpawnYOffset,
			W: domain.PlayerWidth * domain.MonsterScaleW,
			H: domain.PlayerHeight * domain.MonsterScaleH,
		},
		rng:       rng,
		state:     domain.AIStatePatrol,
		direction: 1,
		speed:     profile.Speed,
		despawnAt: now + tuning.Lifetime,
		move:      animation.New(monsterMoveFrames, monsterAnimInterval, animation.Loop),
		attack:    animation.New(monsterAttackFrames, monsterAnimInterval, animation.Once),
	}
	if rng.Intn(2) == 0 {
		m.direction = -1
	}
	m.nextTurn = now + utils.DurationBetween(rng, tuning.TurnMin, tuning.TurnMax)
	m.move.Start(now)
	return m
}

func (m *Monster) ID() string                      { return m.id }
func (m *Monster) Rect() domain.Rect               { return m.rect }
func (m *Monster) Damage() int                     { return m.profile.Damage }
func (m *Monster) Kind() domain.MonsterKind        { return m.profile.Kind }
func (m *Monster) Profile() domain.CreatureProfile { return m.profile }
func (m *Monster) State() domain.AIState           { return m.state }
func (m *Monster) Direction() float64              { return m.direction }
func (m *Monster) Speed() float64                  { return m.speed }
func (m *Monster) IsAttacking() bool               { return m.attacking }
func (m *Monster) DespawnAt() time.Duration        { return m.despawnAt }

// PlayerDiscovered переводит монстра в погоню. Обратного перехода нет.
func (m *Monster) PlayerDiscovered() bool {
	if m.state == domain.AIStateChase {
		return false
	}
	m.state = domain.AIStateChase
	m.speed = m.profile.Speed * m.tuning.ChaseMultiplier
	return true
}

// Expired - срок жизни вышел, независимо от состояния.
func (m *Monster) Expired(now time.Duration) bool {
	return now > m.despawnAt
}

// Think принимает решение AI и двигает монстра.
func (m *Monster) Think(target systems.TargetView, arena systems.Arena, t domain.Tick) systems.MonsterAction {
	if m.state == domain.AIStatePatrol && t.Now >= m.nextTurn {
		m.direction = -m.direction
		m.nextTurn = t.Now + utils.DurationBetween(m.rng, m.tuning.TurnMin, m.tuning.TurnMax)
	}

	act := systems.ComputeMonsterAction(systems.MonsterView{
		Rect:      m.rect,
		Profile:   m.profile,
		State:     m.state,
		Direction: m.direction,
		Speed:     m.speed,
	}, target, arena, t.Frames())

	m.rect = m.rect.Translate(act.Step)
	m.direction = act.Direction
	if act.Discover {
		m.PlayerDiscovered()
	}
	if act.Contact {
		m.TryAttack(t.Now)
	}
	return act
}

// TryAttack взводит атаку, если прошел attack_duration с начала предыдущей.
func (m *Monster) TryAttack(now time.Duration) bool {
	if m.attacking {
		return false
	}
	if m.hasAttack && now-m.lastAttack < m.tuning.AttackDuration {
		return false
	}
	m.attacking = true
	m.hasAttack = true
	m.lastAttack = now
	m.attack.Restart(now)
	return true
}

func (m *Monster) Update(t domain.Tick) {
	m.move.Tick(t.Now)
	if m.attacking {
		m.attack.Tick(t.Now)
		if m.attack.Done() {
			m.attacking = false
			m.attack.Reset()
		}
	}
}

func (m *Monster) Draw(c gfx.Canvas) {
	f := gfx.Frame{
		Sheet: gfx.SheetMonsterMove,
		Index: m.move.Frame(),
		FlipX: m.direction < 0,
		Alpha: alphaVisible,
		Tint:  m.profile.Tint,
	}
	if m.attacking {
		f.Sheet, f.Index = gfx.SheetMonsterAtk, m.attack.Frame()
	}
	c.DrawFrame(f, m.rect)
}
