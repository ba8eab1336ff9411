package systems

import (
	"math"

	"space-horror/internal/domain"
)

// MonsterView - то, что AI знает о монстре.
type MonsterView struct {
	Rect      domain.Rect
	Profile   domain.CreatureProfile
	State     domain.AIState
	Direction float64 // -1 влево, +1 вправо
	Speed     float64 // текущая скорость, px за кадр
}

// TargetView - то, что AI знает об игроке.
type TargetView struct {
	Rect   domain.Rect
	Hidden bool
	Alive  bool
	Noise  float64
}

// Arena - границы и пороги восприятия.
type Arena struct {
	Bounds         domain.Rect
	NoiseThreshold float64
}

// MonsterAction - решение AI на один тик.
type MonsterAction struct {
	Step      domain.Vec2
	Direction float64
	// Discover - монстр заметил игрока в этом тике.
	Discover bool
	// Contact - монстр касается видимого игрока.
	Contact bool
}

// ComputeMonsterAction решает, куда сдвинуться монстру. Состояние не меняет.
// frames - длительность тика в кадрах эталонной частоты.
func ComputeMonsterAction(m MonsterView, target TargetView, arena Arena, frames float64) MonsterAction {
	act := MonsterAction{Direction: m.Direction}
	if act.Direction == 0 {
		act.Direction = 1
	}

	visible := target.Alive && !target.Hidden
	center := m.Rect.Center()
	tc := target.Rect.Center()
	dist := center.DistanceTo(tc)

	if m.State == domain.AIStatePatrol && visible &&
		dist <= m.Profile.DetectionRadius && target.Noise >= arena.NoiseThreshold {
		act.Discover = true
	}

	switch {
	case m.Profile.KeepsDistance() && target.Alive && dist <= m.Profile.PreferredMin:
		// Стрелок отходит от близкой цели в любом состоянии, даже от спрятавшейся.
		act.Step, act.Direction = fleeStep(m, center, tc, frames)
	case m.State == domain.AIStateChase && visible:
		act.Step, act.Direction = chaseStep(m, center, tc, dist, frames)
	default:
		act.Step = domain.Vec2{X: act.Direction * m.Speed * frames}
	}

	// Отскок от краев экрана.
	next := m.Rect.Translate(act.Step)
	if next.Left() < arena.Bounds.Left() {
		act.Step.X = arena.Bounds.Left() - m.Rect.Left()
		act.Direction = 1
	} else if next.Right() > arena.Bounds.Right() {
		act.Step.X = arena.Bounds.Right() - m.Rect.Right()
		act.Direction = -1
	}

	act.Contact = visible && m.Rect.Translate(act.Step).Intersects(target.Rect)
	return act
}

// facing - направление на цель по горизонтали; на одной вертикали - текущее.
func facing(m MonsterView, from, to domain.Vec2) float64 {
	if d := sign(to.X - from.X); d != 0 {
		return d
	}
	return m.Direction
}

// fleeStep - шаг от цели. Монстр остается повернут к ней.
func fleeStep(m MonsterView, from, to domain.Vec2, frames float64) (domain.Vec2, float64) {
	toward := facing(m, from, to)
	return domain.Vec2{X: -toward * m.Speed * frames}, toward
}

// chaseStep - шаг преследования по горизонтали.
// Стрелок стоит в коридоре до PreferredMax, дальше сближается.
func chaseStep(m MonsterView, from, to domain.Vec2, dist, frames float64) (domain.Vec2, float64) {
	dx := to.X - from.X
	toward := facing(m, from, to)
	step := m.Speed * frames

	if m.Profile.KeepsDistance() && dist <= m.Profile.PreferredMax {
		return domain.Vec2{}, toward
	}

	// Не проскакиваем центр цели.
	step = math.Min(step, math.Abs(dx))
	return domain.Vec2{X: toward * step}, toward
}

func sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
