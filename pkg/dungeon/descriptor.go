package dungeon

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"space-horror/internal/domain"
)

// Point - координата в описании уровня (левый верхний угол объекта).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Vec() domain.Vec2 { return domain.Vec2{X: p.X, Y: p.Y} }

// Area - прямоугольная зона. Ключи width/height совместимы с файлами уровней игры.
type Area struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (a Area) Rect() domain.Rect { return domain.Rect{X: a.X, Y: a.Y, W: a.Width, H: a.Height} }

type DoorSpec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	// LockedByTerminal - запирать ли дверь терминалом уровня. По умолчанию да.
	LockedByTerminal *bool `json:"locked_by_terminal,omitempty"`
}

// MonsterSpawn - элемент пула монстров. Type: Monster, RangedMonster или EnhancedMonster.
type MonsterSpawn struct {
	Type string  `json:"type" jsonschema:"enum=Monster,enum=RangedMonster,enum=EnhancedMonster"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type ItemSpec struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
	Kind string  `json:"kind" jsonschema:"enum=medkit,enum=battery,enum=keycard"`
}

type NoteSpec struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Title string  `json:"title"`
	Text  string  `json:"text"`
}

type CodeTaskSpec struct {
	Description string `json:"description"`
	Template    string `json:"template"`
	Solution    string `json:"solution"`
}

// LevelDescriptor - JSON-описание уровня.
type LevelDescriptor struct {
	PlayerStart   *Point         `json:"player_start,omitempty"`
	Background    string         `json:"background,omitempty"`
	Shelves       []Point        `json:"shelves,omitempty"`
	Doors         []DoorSpec     `json:"doors,omitempty"`
	CodeTerminal  *Point         `json:"code_terminal,omitempty"`
	ChatTerminal  *Point         `json:"chat_terminal,omitempty"`
	SaveTerminal  *Point         `json:"save_terminal,omitempty"`
	VerticalZones []Area         `json:"vertical_zones,omitempty"`
	Monsters      []MonsterSpawn `json:"monsters,omitempty"`
	NextLevel     string         `json:"next_level,omitempty"`
	Obstacles     []Area         `json:"obstacles,omitempty"`
	Items         []ItemSpec     `json:"items,omitempty"`
	Notes         []NoteSpec     `json:"notes,omitempty"`
	CodeTasks     []CodeTaskSpec `json:"code_tasks,omitempty"`
}

// ErrEmptyDescriptor - файл уровня пуст.
var ErrEmptyDescriptor = errors.New("level descriptor is empty")

// Empty - запасной уровень: плейсхолдер фона, старт по умолчанию, без объектов.
func Empty() LevelDescriptor {
	return LevelDescriptor{}
}

// Start - точка старта игрока или значение по умолчанию.
func (d LevelDescriptor) Start() domain.Vec2 {
	if d.PlayerStart == nil {
		return domain.DefaultPlayerStart
	}
	return d.PlayerStart.Vec()
}

// HasInteractables - есть ли на уровне хоть один интерактивный объект.
func (d LevelDescriptor) HasInteractables() bool {
	return len(d.Shelves) > 0 || len(d.Doors) > 0 ||
		d.CodeTerminal != nil || d.ChatTerminal != nil || d.SaveTerminal != nil
}

// Validate проверяет пул монстров и размеры зон.
func (d LevelDescriptor) Validate() error {
	for i, m := range d.Monsters {
		if _, err := ParseMonsterKind(m.Type); err != nil {
			return fmt.Errorf("monsters[%d]: %w", i, err)
		}
	}
	for i, z := range d.VerticalZones {
		if z.Width <= 0 || z.Height <= 0 {
			return fmt.Errorf("vertical_zones[%d]: size must be positive", i)
		}
	}
	for i, o := range d.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("obstacles[%d]: size must be positive", i)
		}
	}
	for i, t := range d.CodeTasks {
		if strings.TrimSpace(t.Solution) == "" {
			return fmt.Errorf("code_tasks[%d]: solution is required", i)
		}
	}
	return nil
}

// Parse разбирает и проверяет описание уровня.
func Parse(data []byte) (LevelDescriptor, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return LevelDescriptor{}, ErrEmptyDescriptor
	}
	var d LevelDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return LevelDescriptor{}, fmt.Errorf("decode level: %w", err)
	}
	if err := d.Validate(); err != nil {
		return LevelDescriptor{}, fmt.Errorf("invalid level: %w", err)
	}
	return d, nil
}

// Load читает файл уровня. При любой ошибке возвращает Empty() и саму ошибку,
// так что вызывающий всегда получает играбельный уровень.
func Load(path string) (LevelDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Empty(), fmt.Errorf("read level %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return Empty(), fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
