package engine

import (
	"math/rand"
	"time"

	"space-horror/pkg/dungeon"
)

// SpawnPhase - фаза планировщика появления монстров.
type SpawnPhase uint8

const (
	SpawnIdle SpawnPhase = iota
	SpawnWarning
	SpawnSpawned
)

func (p SpawnPhase) String() string {
	switch p {
	case SpawnWarning:
		return "warning"
	case SpawnSpawned:
		return "spawned"
	default:
		return "idle"
	}
}

// Spawner решает, когда и кого выпустить на уровень.
// Сам монстров не создает: Update возвращает элемент пула, а Level его строит.
type Spawner struct {
	pool     []dungeon.MonsterSpawn
	interval time.Duration
	warning  time.Duration
	rng      *rand.Rand

	phase     SpawnPhase
	spawnTime time.Duration
}

func NewSpawner(pool []dungeon.MonsterSpawn, interval, warning time.Duration, rng *rand.Rand) *Spawner {
	return &Spawner{pool: pool, interval: interval, warning: warning, rng: rng}
}

// Arm заводит первый таймер относительно старта уровня.
func (s *Spawner) Arm(now time.Duration) {
	s.phase = SpawnIdle
	s.spawnTime = now + s.interval
}

func (s *Spawner) Phase() SpawnPhase        { return s.phase }
func (s *Spawner) SpawnTime() time.Duration { return s.spawnTime }
func (s *Spawner) PoolSize() int            { return len(s.pool) }

// Countdown - целых секунд до появления (для надписи "Monster arriving in N").
func (s *Spawner) Countdown(now time.Duration) int {
	left := s.spawnTime - now
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// Update продвигает автомат. alive - сколько монстров сейчас на уровне.
// Второе значение true, если в этом тике нужно создать монстра.
func (s *Spawner) Update(now time.Duration, alive int, enabled bool) (dungeon.MonsterSpawn, bool) {
	if len(s.pool) == 0 || !enabled {
		s.phase = SpawnIdle
		return dungeon.MonsterSpawn{}, false
	}
	if alive > 0 {
		s.phase = SpawnSpawned
		return dungeon.MonsterSpawn{}, false
	}
	if s.phase == SpawnSpawned {
		s.phase = SpawnIdle
	}

	switch {
	case now >= s.spawnTime:
		s.phase = SpawnSpawned
		s.spawnTime = now + s.interval
		return s.pool[s.rng.Intn(len(s.pool))], true
	case now >= s.spawnTime-s.warning:
		s.phase = SpawnWarning
	default:
		s.phase = SpawnIdle
	}
	return dungeon.MonsterSpawn{}, false
}
