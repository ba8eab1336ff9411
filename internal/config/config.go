package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPath - переменная окружения с путем к config.yaml.
const EnvPath = "HORROR_CONFIG"

const DefaultPath = "config.yaml"

// Flags - переключатели, доступные из меню настроек.
type Flags struct {
	AdminMode       bool `yaml:"admin_mode"`
	EnemiesEnabled  bool `yaml:"enemies_enabled"`
	ShowIntro       bool `yaml:"show_intro"`
	StoryGeneration bool `yaml:"story_generation"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`
}

// PlayerTuning - скорости заданы в пикселях за кадр при 60 TPS.
type PlayerTuning struct {
	Speed          float64       `yaml:"speed"`
	RunMultiplier  float64       `yaml:"run_multiplier"`
	MaxHealth      int           `yaml:"max_health"`
	MaxStamina     float64       `yaml:"max_stamina"`
	HidingCooldown int           `yaml:"hiding_cooldown_ticks"`
	QTEWindow      time.Duration `yaml:"qte_window"`
	QTEChance      float64       `yaml:"qte_chance"`
}

type MonsterTuning struct {
	Speed           float64       `yaml:"speed"`
	DetectionRadius float64       `yaml:"detection_radius"`
	NoiseThreshold  float64       `yaml:"noise_threshold"`
	HidingCheck     float64       `yaml:"hiding_check_radius"`
	ChaseMultiplier float64       `yaml:"chase_multiplier"`
	Lifetime        time.Duration `yaml:"lifetime"`
	AttackDuration  time.Duration `yaml:"attack_duration"`
	TurnMin         time.Duration `yaml:"turn_min"`
	TurnMax         time.Duration `yaml:"turn_max"`
}

type SpawnTuning struct {
	Interval time.Duration `yaml:"interval"`
	Warning  time.Duration `yaml:"warning"`
}

type AIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Timeout   time.Duration `yaml:"timeout"`
}

// Config - параметры запуска игры. Передается явно в Level и Player.
// Flags меняются только через UpdateFlags.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Player  PlayerTuning  `yaml:"player"`
	Monster MonsterTuning `yaml:"monster"`
	Spawn   SpawnTuning   `yaml:"spawn"`
	AI      AIConfig      `yaml:"ai"`

	LevelsDir  string `yaml:"levels_dir"`
	StartLevel string `yaml:"start_level"`
	MusicFile  string `yaml:"music_file"`
	AssetsDir  string `yaml:"assets_dir"`
	SaveDB     string `yaml:"save_db"`
	Language   string `yaml:"language"`
	DebugAddr  string `yaml:"debug_addr"`

	// Seed - зерно генератора уровня. 0 - от текущего времени.
	Seed int64 `yaml:"seed"`

	mu    sync.RWMutex
	flags Flags
}

// flagsSection - флаги лежат в config.yaml отдельной секцией.
type flagsSection struct {
	Flags *Flags `yaml:"flags"`
}

// Default возвращает конфиг со значениями оригинальной игры.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, TPS: 60, Title: "Space Horror"},
		Player: PlayerTuning{
			Speed:          5,
			RunMultiplier:  1.5,
			MaxHealth:      5,
			MaxStamina:     100,
			HidingCooldown: 60,
			QTEWindow:      2 * time.Second,
			QTEChance:      0.005,
		},
		Monster: MonsterTuning{
			Speed:           3,
			DetectionRadius: 200,
			NoiseThreshold:  50,
			HidingCheck:     100,
			ChaseMultiplier: 1.5,
			Lifetime:        10 * time.Second,
			AttackDuration:  time.Second,
			TurnMin:         3 * time.Second,
			TurnMax:         5 * time.Second,
		},
		Spawn: SpawnTuning{Interval: 20 * time.Second, Warning: 10 * time.Second},
		AI: AIConfig{
			BaseURL:   "https://api.openai.com/v1/chat/completions",
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
			Timeout:   20 * time.Second,
		},
		LevelsDir:  "assets/levels",
		StartLevel: "level1.json",
		MusicFile:  "assets/music/ambient.ogg",
		AssetsDir:  "assets/images",
		SaveDB:     "saves.db",
		Language:   "en",
		flags:      Flags{EnemiesEnabled: true, ShowIntro: true},
	}
}

// Load читает YAML поверх значений по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.parse(data); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// PathFromEnv возвращает путь к конфигу из HORROR_CONFIG или путь по умолчанию.
func PathFromEnv() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func (c *Config) parse(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	flags := c.flags
	if err := yaml.Unmarshal(data, &flagsSection{Flags: &flags}); err != nil {
		return err
	}
	c.flags = flags
	return nil
}

// Validate проверяет значения, без которых цикл игры не запустится.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Window.TPS)
	}
	if c.Monster.TurnMax < c.Monster.TurnMin {
		return fmt.Errorf("monster turn_max (%s) is less than turn_min (%s)", c.Monster.TurnMax, c.Monster.TurnMin)
	}
	if c.Spawn.Warning > c.Spawn.Interval {
		return fmt.Errorf("spawn warning (%s) exceeds interval (%s)", c.Spawn.Warning, c.Spawn.Interval)
	}
	if c.Player.QTEChance < 0 || c.Player.QTEChance > 1 {
		return fmt.Errorf("qte_chance must be within [0,1], got %v", c.Player.QTEChance)
	}
	return nil
}

// Flags возвращает копию текущих переключателей.
// Режим администратора вырезается в release-сборке.
func (c *Config) Flags() Flags {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f := c.flags
	if !AdminAllowed {
		f.AdminMode = false
	}
	return f
}

// UpdateFlags - единственный способ изменить переключатели.
func (c *Config) UpdateFlags(fn func(*Flags)) Flags {
	c.mu.Lock()
	fn(&c.flags)
	if !AdminAllowed {
		c.flags.AdminMode = false
	}
	f := c.flags
	c.mu.Unlock()
	return f
}

// SetLanguage меняет язык интерфейса.
func (c *Config) SetLanguage(lang string) {
	c.mu.Lock()
	c.Language = lang
	c.mu.Unlock()
}

func (c *Config) Lang() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Language
}

// TickDuration - длительность одного тика.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Window.TPS)
}
