package dungeon

import (
	"fmt"
	"math/rand"
	"time"

	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/internal/entities"
	"space-horror/internal/terminal"
	"space-horror/pkg/logger"
)

// Population - объекты, построенные по описанию уровня.
// Порядок срезов - порядок отрисовки и опроса.
type Population struct {
	Start         domain.Vec2
	Shelves       []*entities.Shelve
	Door          *entities.Door
	CodeTerminal  *entities.CodeTerminal
	ChatTerminal  *entities.ChatTerminal
	SaveTerminal  *entities.SaveTerminal
	Obstacles     []*entities.Obstacle
	Pickups       []*entities.Pickup
	VerticalZones []domain.Rect
	CodeTask      *terminal.CodeTask
}

// Populate создает объекты уровня. Дверь одна: из нескольких записей берется последняя.
func Populate(d LevelDescriptor) Population {
	log := logger.For("level_factory")
	pop := Population{Start: d.Start(), CodeTask: terminal.NewCodeTask(d.Tasks())}

	for _, s := range d.Shelves {
		pop.Shelves = append(pop.Shelves, entities.NewShelve(s.Vec()))
	}

	if d.CodeTerminal != nil {
		pop.CodeTerminal = entities.NewCodeTerminal(d.CodeTerminal.Vec(), pop.CodeTask)
	}

	if n := len(d.Doors); n > 0 {
		if n > 1 {
			log.WithField("doors", n).Warn("Level declares several doors, only the last one is used")
		}
		spec := d.Doors[n-1]
		pop.Door = entities.NewDoor(domain.Vec2{X: spec.X, Y: spec.Y}, d.NextLevel)
		locked := spec.LockedByTerminal == nil || *spec.LockedByTerminal
		if locked && pop.CodeTerminal != nil {
			pop.Door.LinkTerminal(pop.CodeTerminal)
		}
	}

	if d.ChatTerminal != nil {
		pop.ChatTerminal = entities.NewChatTerminal(d.ChatTerminal.Vec())
	}
	if d.SaveTerminal != nil {
		pop.SaveTerminal = entities.NewSaveTerminal(d.SaveTerminal.Vec())
	}

	for i, o := range d.Obstacles {
		pop.Obstacles = append(pop.Obstacles, entities.NewObstacle(obstacleID(i), o.Rect()))
	}
	for _, z := range d.VerticalZones {
		pop.VerticalZones = append(pop.VerticalZones, z.Rect())
	}
	for _, it := range d.Items {
		pop.Pickups = append(pop.Pickups, entities.NewItemPickup(domain.Vec2{X: it.X, Y: it.Y}, domain.Item{Name: it.Name, Kind: it.Kind}))
	}
	for _, n := range d.Notes {
		pop.Pickups = append(pop.Pickups, entities.NewNotePickup(domain.Vec2{X: n.X, Y: n.Y}, domain.Note{Title: n.Title, Text: n.Text}))
	}
	return pop
}

// Interactables - интерактивные объекты в порядке создания (порядок важен для E).
func (p Population) Interactables() []entities.Interactable {
	var out []entities.Interactable
	for _, s := range p.Shelves {
		out = append(out, s)
	}
	if p.Door != nil {
		out = append(out, p.Door)
	}
	if p.CodeTerminal != nil {
		out = append(out, p.CodeTerminal)
	}
	if p.ChatTerminal != nil {
		out = append(out, p.ChatTerminal)
	}
	if p.SaveTerminal != nil {
		out = append(out, p.SaveTerminal)
	}
	return out
}

// SpawnMonster создает монстра из элемента пула.
func SpawnMonster(spawn MonsterSpawn, profiles Profiles, tuning config.MonsterTuning, now time.Duration, rng *rand.Rand) *entities.Monster {
	kind, err := ParseMonsterKind(spawn.Type)
	if err != nil {
		logger.For("level_factory").WithError(err).Warn("Falling back to a basic monster")
		kind = domain.MonsterBasic
	}
	return entities.NewMonster(profiles.For(kind), tuning, domain.Vec2{X: spawn.X, Y: spawn.Y}, now, rng)
}

func obstacleID(i int) string {
	return fmt.Sprintf("obstacle_%d", i)
}
