package engine

import (
	"time"

	"space-horror/internal/domain"
	"space-horror/internal/entities"
	"space-horror/pkg/api"
)

// BuildSnapshot создает снимок уровня для наблюдателей. Уровень не меняет.
func (l *Level) BuildSnapshot(now time.Duration) api.Snapshot {
	p := l.Player
	pv := api.PlayerView{
		ID:        p.ID(),
		Pos:       vec(p.Position()),
		State:     p.State(),
		Health:    p.Health(),
		MaxHealth: p.MaxHealth(),
		Stamina:   p.Stamina(),
		Noise:     p.Noise(),
		Inventory: []string{},
		Notes:     []string{},
	}
	if p.IsQTEActive() {
		pv.QTEKey = p.QTETarget().String()
	}
	for _, it := range p.Inventory.Items {
		pv.Inventory = append(pv.Inventory, it.Name)
	}
	for _, n := range p.Notes {
		pv.Notes = append(pv.Notes, n.Title)
	}

	monsters := make([]api.MonsterView, 0, len(l.Monsters))
	for _, m := range l.Monsters {
		left := m.DespawnAt() - now
		if left < 0 {
			left = 0
		}
		monsters = append(monsters, api.MonsterView{
			ID:          m.ID(),
			Kind:        string(m.Kind()),
			State:       m.State().String(),
			Pos:         vec(m.Rect().Center()),
			Attacking:   m.IsAttacking(),
			DespawnInMs: left.Milliseconds(),
		})
	}

	ents := make([]api.EntityView, 0, len(l.interactables)+len(l.pop.Obstacles)+len(l.pickups))
	for _, it := range l.interactables {
		ents = append(ents, entityView(it))
	}
	for _, o := range l.pop.Obstacles {
		ents = append(ents, api.EntityView{ID: o.ID(), Type: "OBSTACLE", Pos: vec(o.Rect().Center())})
	}
	for _, pk := range l.pickups {
		ents = append(ents, api.EntityView{ID: pk.ID(), Type: "PICKUP", Pos: vec(pk.Rect().Center()), State: pk.Label()})
	}

	spawnIn := l.spawner.SpawnTime() - now
	if spawnIn < 0 {
		spawnIn = 0
	}
	snap := api.Snapshot{
		Type:     api.SnapshotType,
		Tick:     l.tick,
		Level:    l.file,
		Screen:   ScreenGame,
		GameOver: l.gameOver,
		Player:   pv,
		Monsters: monsters,
		Entities: ents,
		Spawner: api.SpawnerView{
			Phase:     l.spawner.Phase().String(),
			SpawnInMs: spawnIn.Milliseconds(),
			PoolSize:  l.spawner.PoolSize(),
			EnemiesOn: l.cfg.Flags().EnemiesEnabled,
		},
	}
	if l.modal != nil {
		snap.Modal = l.modal.Name()
	}
	if len(l.Logs) > 0 {
		snap.Logs = append([]api.LogEntry(nil), l.Logs...)
	}
	return snap
}

func entityView(it entities.Interactable) api.EntityView {
	v := api.EntityView{ID: it.ID(), Pos: vec(it.Rect().Center())}
	switch e := it.(type) {
	case *entities.Door:
		v.Type, v.State = "DOOR", e.State().String()
		if e.Locked() {
			v.State = "locked"
		}
	case *entities.Shelve:
		v.Type = "SHELVE"
	case *entities.CodeTerminal:
		v.Type, v.State = "CODE_TERMINAL", "unsolved"
		if e.Solved() {
			v.State = "solved"
		}
	case *entities.ChatTerminal:
		v.Type = "CHAT_TERMINAL"
	case *entities.SaveTerminal:
		v.Type = "SAVE_TERMINAL"
	}
	return v
}

func vec(v domain.Vec2) api.Vec { return api.Vec{X: v.X, Y: v.Y} }
