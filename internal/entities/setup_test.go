package entities

import (
	"math"
	"math/rand"
	"os"
	"testing"
	"time"

	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const step = time.Second / 60

// fakeEnv - уровень без монстров с настраиваемыми ответами.
type fakeEnv struct {
	spot   HidingSpot
	threat bool
	zone   bool
}

func (e *fakeEnv) HidingSpotAt(domain.Rect) HidingSpot { return e.spot }
func (e *fakeEnv) ThreatNear(domain.Vec2) bool         { return e.threat }
func (e *fakeEnv) InVerticalZone(domain.Vec2) bool     { return e.zone }
func (e *fakeEnv) Bounds() domain.Rect {
	return domain.Rect{W: domain.ScreenWidth, H: domain.ScreenHeight}
}

type fakeTask struct{ solved bool }

func (t *fakeTask) IsSolved() bool { return t.solved }

func testPlayer(mod ...func(*config.PlayerTuning)) *Player {
	tuning := config.Default().Player
	for _, m := range mod {
		m(&tuning)
	}
	return NewPlayer(domain.Vec2{X: 640, Y: 600}, tuning, rand.New(rand.NewSource(1)))
}

func tick(now time.Duration) domain.Tick { return domain.Tick{Now: now, DT: step} }

func press(keys ...domain.Key) domain.Input {
	var in domain.Input
	in.Press(keys...)
	return in
}

func hold(keys ...domain.Key) domain.Input {
	var in domain.Input
	in.Hold(keys...)
	return in
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-3 }

func hasEvent(events []PlayerEvent, e PlayerEvent) bool {
	for _, got := range events {
		if got == e {
			return true
		}
	}
	return false
}
