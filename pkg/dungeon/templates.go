package dungeon

import (
	"fmt"
	"strings"

	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/internal/terminal"
)

// ParseMonsterKind понимает имена типов из файлов уровней и внутренние имена.
func ParseMonsterKind(s string) (domain.MonsterKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monster", "basic", "":
		return domain.MonsterBasic, nil
	case "rangedmonster", "ranged":
		return domain.MonsterRanged, nil
	case "enhancedmonster", "enhanced":
		return domain.MonsterEnhanced, nil
	default:
		return "", fmt.Errorf("unknown monster type %q", s)
	}
}

// Profiles - параметры вариантов монстров, собранные от базовой настройки.
type Profiles map[domain.MonsterKind]domain.CreatureProfile

// NewProfiles: стрелок быстрее на 20% и держит дистанцию 100-200px,
// усиленный видит на 50% дальше, бьет вдвое сильнее и медленнее на 20%.
func NewProfiles(t config.MonsterTuning) Profiles {
	return Profiles{
		domain.MonsterBasic: {
			Kind:            domain.MonsterBasic,
			Speed:           t.Speed,
			DetectionRadius: t.DetectionRadius,
			Damage:          1,
		},
		domain.MonsterRanged: {
			Kind:            domain.MonsterRanged,
			Speed:           t.Speed * 1.2,
			DetectionRadius: t.DetectionRadius,
			Damage:          1,
			Tint:            domain.Tint{R: 0, G: 255, B: 0, A: 255},
			PreferredMin:    100,
			PreferredMax:    200,
		},
		domain.MonsterEnhanced: {
			Kind:            domain.MonsterEnhanced,
			Speed:           t.Speed * 0.8,
			DetectionRadius: t.DetectionRadius * 1.5,
			Damage:          2,
			Tint:            domain.Tint{R: 0, G: 0, B: 255, A: 255},
		},
	}
}

// For возвращает профиль; неизвестный вид - базовый монстр.
func (p Profiles) For(kind domain.MonsterKind) domain.CreatureProfile {
	if prof, ok := p[kind]; ok {
		return prof
	}
	return p[domain.MonsterBasic]
}

// DefaultCodeTasks - задачи терминала, если уровень не задает свои.
func DefaultCodeTasks() []terminal.Task {
	return []terminal.Task{
		{
			Description: "Write a function that adds two numbers",
			Template:    "def add(a, b):\n    # Your code here\n    return",
			Solution:    "return a + b",
		},
		{
			Description: "Write a function that multiplies two numbers",
			Template:    "def multiply(a, b):\n    # Your code here\n    return",
			Solution:    "return a * b",
		},
	}
}

// Tasks - задачи уровня или задачи по умолчанию.
func (d LevelDescriptor) Tasks() []terminal.Task {
	if len(d.CodeTasks) == 0 {
		return DefaultCodeTasks()
	}
	out := make([]terminal.Task, len(d.CodeTasks))
	for i, t := range d.CodeTasks {
		out[i] = terminal.Task{Description: t.Description, Template: t.Template, Solution: t.Solution}
	}
	return out
}

// ItemTemplate - предмет, который может лежать на уровне.
type ItemTemplate struct {
	Name string
	Kind string
}

var (
	Medkit  = ItemTemplate{Name: "Medkit", Kind: domain.ItemMedkit}
	Battery = ItemTemplate{Name: "Battery", Kind: domain.ItemBattery}
	Keycard = ItemTemplate{Name: "Keycard", Kind: domain.ItemKeycard}
)

func (t ItemTemplate) Item() domain.Item {
	return domain.Item{Name: t.Name, Kind: t.Kind}
}

// ItemTemplates - предметы по виду, для выдачи командой администратора.
var ItemTemplates = map[string]ItemTemplate{
	domain.ItemMedkit:  Medkit,
	domain.ItemBattery: Battery,
	domain.ItemKeycard: Keycard,
}
