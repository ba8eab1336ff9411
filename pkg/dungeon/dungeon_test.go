package dungeon

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/pkg/logger"
	"space-horror/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const legacyLevel = `{
  "player_start": {"x": 100, "y": 600},
  "background": "room1.png",
  "shelves": [{"x": 300, "y": 550}],
  "doors": [{"x": 1000, "y": 330}],
  "code_terminal": {"x": 700, "y": 600},
  "chat_terminal": null,
  "vertical_zones": [{"x": 0, "y": 0, "width": 100, "height": 720}],
  "monsters": [{"type": "Monster", "x": 50, "y": 540}, {"type": "EnhancedMonster", "x": 900, "y": 540}],
  "next_level": "level2.json"
}`

func TestParseLevelFile(t *testing.T) {
	d, err := Parse([]byte(legacyLevel))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Start() != (domain.Vec2{X: 100, Y: 600}) {
		t.Errorf("start = %v", d.Start())
	}
	if d.ChatTerminal != nil {
		t.Error("null chat terminal must stay nil")
	}
	if len(d.VerticalZones) != 1 || d.VerticalZones[0].Rect().H != 720 {
		t.Errorf("zones = %+v", d.VerticalZones)
	}
	if d.NextLevel != "level2.json" || len(d.Monsters) != 2 {
		t.Errorf("next = %q monsters = %d", d.NextLevel, len(d.Monsters))
	}
}

func TestLoadFallsBackToEmptyLevel(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	os.WriteFile(broken, []byte(`{"player_start": {"x": `), 0o644)
	badType := filepath.Join(dir, "bad_type.json")
	os.WriteFile(badType, []byte(`{"monsters": [{"type": "Dragon", "x": 1, "y": 1}]}`), 0o644)
	empty := filepath.Join(dir, "empty.json")
	os.WriteFile(empty, nil, 0o644)

	for _, path := range []string{broken, badType, empty, filepath.Join(dir, "missing.json")} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			d, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if d.Start() != domain.DefaultPlayerStart {
				t.Errorf("start = %v, want default (640,670)", d.Start())
			}
			if d.HasInteractables() || len(d.Monsters) != 0 {
				t.Errorf("fallback level must be empty, got %+v", d)
			}
		})
	}
}

func TestParseMonsterKind(t *testing.T) {
	tests := map[string]domain.MonsterKind{
		"Monster":         domain.MonsterBasic,
		"RangedMonster":   domain.MonsterRanged,
		"EnhancedMonster": domain.MonsterEnhanced,
		"ranged":          domain.MonsterRanged,
	}
	for in, want := range tests {
		got, err := ParseMonsterKind(in)
		if err != nil || got != want {
			t.Errorf("ParseMonsterKind(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseMonsterKind("Dragon"); err == nil {
		t.Error("unknown type must fail")
	}
}

func TestProfiles(t *testing.T) {
	tuning := config.Default().Monster
	p := NewProfiles(tuning)
	basic, ranged, enhanced := p.For(domain.MonsterBasic), p.For(domain.MonsterRanged), p.For(domain.MonsterEnhanced)

	if basic.Speed != 3 || basic.Damage != 1 || basic.DetectionRadius != 200 {
		t.Errorf("basic = %+v", basic)
	}
	if enhanced.DetectionRadius != 300 || enhanced.Damage != 2 || math.Abs(enhanced.Speed-tuning.Speed*0.8) > 1e-9 {
		t.Errorf("enhanced = %+v", enhanced)
	}
	if !ranged.KeepsDistance() || ranged.PreferredMin != 100 || ranged.PreferredMax != 200 {
		t.Errorf("ranged = %+v", ranged)
	}
	if ranged.Tint != (domain.Tint{G: 255, A: 255}) || enhanced.Tint != (domain.Tint{B: 255, A: 255}) {
		t.Errorf("tints: ranged %+v enhanced %+v", ranged.Tint, enhanced.Tint)
	}
	if p.For("unknown").Kind != domain.MonsterBasic {
		t.Error("unknown kind must map to basic")
	}
}

func TestPopulateLinksDoorToTerminal(t *testing.T) {
	d, err := NewLevel("room.png").
		WithShelf(300, 550).
		WithDoor(1000, 330, "level2.json").
		WithCodeTerminal(700, 600).
		WithChatTerminal(500, 600).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	pop := Populate(d)
	if pop.Door == nil || pop.CodeTerminal == nil {
		t.Fatal("door and terminal expected")
	}
	if !pop.Door.Locked() {
		t.Error("door must be locked by an unsolved terminal")
	}
	if pop.CodeTask.Len() != 2 {
		t.Errorf("default tasks expected, got %d", pop.CodeTask.Len())
	}
	if got := len(pop.Interactables()); got != 4 {
		t.Errorf("interactables = %d, want 4", got)
	}

	unlocked, _ := NewLevel("").WithUnlockedDoor(10, 10, "").WithCodeTerminal(50, 50).Build()
	if Populate(unlocked).Door.Locked() {
		t.Error("locked_by_terminal=false must leave the door open")
	}
}

func TestPopulateCustomTasksAndPickups(t *testing.T) {
	d, err := NewLevel("").
		WithCodeTerminal(10, 10, CodeTaskSpec{Description: "sub", Template: "def sub(a, b):", Solution: "return a - b"}).
		WithItem(Medkit, 200, 600).
		WithNote("Log 1", "They hear you running.", 250, 600).
		WithObstacle(400, 500, 50, 200).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	pop := Populate(d)
	if pop.CodeTask.Len() != 1 {
		t.Errorf("tasks = %d", pop.CodeTask.Len())
	}
	if len(pop.Pickups) != 2 || len(pop.Obstacles) != 1 {
		t.Errorf("pickups = %d obstacles = %d", len(pop.Pickups), len(pop.Obstacles))
	}
}

func TestSpawnMonster(t *testing.T) {
	cfg := config.Default()
	m := SpawnMonster(MonsterSpawn{Type: "EnhancedMonster", X: 900, Y: 540}, NewProfiles(cfg.Monster), cfg.Monster, 0, utils.NewRand(1))
	if m.Kind() != domain.MonsterEnhanced || m.Damage() != 2 {
		t.Errorf("kind = %v damage = %d", m.Kind(), m.Damage())
	}
	if m.Rect().Y != 540+domain.MonsterSpawnYOffset {
		t.Errorf("y = %v", m.Rect().Y)
	}
	if m.DespawnAt() != cfg.Monster.Lifetime {
		t.Errorf("despawn at %s", m.DespawnAt())
	}
}

func TestBuilderJSONParsesBack(t *testing.T) {
	data, err := NewLevel("room.png").WithStart(200, 650).WithMonster("RangedMonster", 10, 540).JSON()
	if err != nil {
		t.Fatal(err)
	}
	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(builder JSON): %v", err)
	}
	if d.Start() != (domain.Vec2{X: 200, Y: 650}) || d.Monsters[0].Type != "RangedMonster" {
		t.Errorf("descriptor = %+v", d)
	}
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"player_start", "vertical_zones", "RangedMonster"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("schema lacks %q", key)
		}
	}
}
