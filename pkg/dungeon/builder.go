package dungeon

import (
	"encoding/json"
	"fmt"
)

// LevelBuilder предоставляет fluent API для сборки описания уровня
// (встроенные уровни, тесты, инструменты).
type LevelBuilder struct {
	d LevelDescriptor
}

// NewLevel создает builder с фоном background.
func NewLevel(background string) *LevelBuilder {
	return &LevelBuilder{d: LevelDescriptor{Background: background}}
}

// WithStart задает точку старта игрока (центр спрайта).
func (b *LevelBuilder) WithStart(x, y float64) *LevelBuilder {
	b.d.PlayerStart = &Point{X: x, Y: y}
	return b
}

func (b *LevelBuilder) WithShelf(x, y float64) *LevelBuilder {
	b.d.Shelves = append(b.d.Shelves, Point{X: x, Y: y})
	return b
}

// WithDoor добавляет дверь. Описание уровня поддерживает одну дверь: повторный вызов заменяет ее.
func (b *LevelBuilder) WithDoor(x, y float64, next string) *LevelBuilder {
	b.d.Doors = []DoorSpec{{X: x, Y: y}}
	b.d.NextLevel = next
	return b
}

// WithUnlockedDoor - дверь, которую терминал не запирает.
func (b *LevelBuilder) WithUnlockedDoor(x, y float64, next string) *LevelBuilder {
	off := false
	b.d.Doors = []DoorSpec{{X: x, Y: y, LockedByTerminal: &off}}
	b.d.NextLevel = next
	return b
}

func (b *LevelBuilder) WithCodeTerminal(x, y float64, tasks ...CodeTaskSpec) *LevelBuilder {
	b.d.CodeTerminal = &Point{X: x, Y: y}
	b.d.CodeTasks = append(b.d.CodeTasks, tasks...)
	return b
}

func (b *LevelBuilder) WithChatTerminal(x, y float64) *LevelBuilder {
	b.d.ChatTerminal = &Point{X: x, Y: y}
	return b
}

func (b *LevelBuilder) WithSaveTerminal(x, y float64) *LevelBuilder {
	b.d.SaveTerminal = &Point{X: x, Y: y}
	return b
}

func (b *LevelBuilder) WithVerticalZone(x, y, w, h float64) *LevelBuilder {
	b.d.VerticalZones = append(b.d.VerticalZones, Area{X: x, Y: y, Width: w, Height: h})
	return b
}

func (b *LevelBuilder) WithObstacle(x, y, w, h float64) *LevelBuilder {
	b.d.Obstacles = append(b.d.Obstacles, Area{X: x, Y: y, Width: w, Height: h})
	return b
}

// WithMonster добавляет вариант в пул появления.
func (b *LevelBuilder) WithMonster(kind string, x, y float64) *LevelBuilder {
	b.d.Monsters = append(b.d.Monsters, MonsterSpawn{Type: kind, X: x, Y: y})
	return b
}

func (b *LevelBuilder) WithItem(t ItemTemplate, x, y float64) *LevelBuilder {
	b.d.Items = append(b.d.Items, ItemSpec{X: x, Y: y, Name: t.Name, Kind: t.Kind})
	return b
}

func (b *LevelBuilder) WithNote(title, text string, x, y float64) *LevelBuilder {
	b.d.Notes = append(b.d.Notes, NoteSpec{X: x, Y: y, Title: title, Text: text})
	return b
}

// Build проверяет и возвращает описание.
func (b *LevelBuilder) Build() (LevelDescriptor, error) {
	if err := b.d.Validate(); err != nil {
		return LevelDescriptor{}, fmt.Errorf("build level: %w", err)
	}
	return b.d, nil
}

// JSON - описание уровня в формате файла.
func (b *LevelBuilder) JSON() ([]byte, error) {
	d, err := b.Build()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(d, "", "  ")
}
