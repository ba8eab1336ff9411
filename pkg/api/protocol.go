package api

// --- ИГРА -> НАБЛЮДАТЕЛЬ ---

// Snapshot - снимок уровня, который игра публикует для наблюдателей
// (debug-страница, /ws). Игру он ни к чему не обязывает: только чтение.
type Snapshot struct {
	// Type тип сообщения. Всегда "SNAPSHOT".
	Type string `json:"type"`

	// Tick номер тика симуляции с начала уровня.
	Tick int64 `json:"tick"`

	// Level путь к файлу текущего уровня.
	Level string `json:"level"`

	Screen   string `json:"screen"`
	GameOver bool   `json:"gameOver"`
	Modal    string `json:"modal,omitempty"`

	Player   PlayerView    `json:"player"`
	Monsters []MonsterView `json:"monsters"`
	Entities []EntityView  `json:"entities"`
	Spawner  SpawnerView   `json:"spawner"`

	// Logs последние сообщения журнала.
	Logs []LogEntry `json:"logs,omitempty"`
}

const SnapshotType = "SNAPSHOT"

type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlayerView - состояние игрока.
type PlayerView struct {
	ID        string   `json:"id"`
	Pos       Vec      `json:"pos"`
	State     string   `json:"state"` // normal, hiding, qte, dying
	Health    int      `json:"health"`
	MaxHealth int      `json:"maxHealth"`
	Stamina   float64  `json:"stamina"`
	Noise     float64  `json:"noise"`
	QTEKey    string   `json:"qteKey,omitempty"`
	Inventory []string `json:"inventory"`
	Notes     []string `json:"notes"`
}

// MonsterView - живой монстр.
type MonsterView struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	State     string `json:"state"` // patrol, chase
	Pos       Vec    `json:"pos"`
	Attacking bool   `json:"attacking"`
	// DespawnInMs - сколько миллисекунд осталось до исчезновения.
	DespawnInMs int64 `json:"despawnInMs"`
}

// EntityView - интерактивный объект или препятствие.
type EntityView struct {
	ID    string `json:"id"`
	Type  string `json:"type"` // DOOR, SHELVE, CODE_TERMINAL, CHAT_TERMINAL, SAVE_TERMINAL, OBSTACLE, PICKUP
	Pos   Vec    `json:"pos"`
	State string `json:"state,omitempty"`
}

// SpawnerView - состояние планировщика появления монстров.
type SpawnerView struct {
	Phase     string `json:"phase"` // idle, warning, spawned
	SpawnInMs int64  `json:"spawnInMs"`
	PoolSize  int    `json:"poolSize"`
	EnemiesOn bool   `json:"enemiesOn"`
}

// LogEntry представляет одну запись журнала уровня.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, WARNING, DANGER, SYSTEM
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- НАБЛЮДАТЕЛЬ -> ИГРА ---

// ClientMessage - команда наблюдателя по /ws. Пока только подписка.
type ClientMessage struct {
	Action string `json:"action"` // SUBSCRIBE, PING
}

const (
	ActionSubscribe = "SUBSCRIBE"
	ActionPing      = "PING"
)

// --- ОТЛАДКА -> ИГРА ---

// AdminCommand - чит-команда, принимаемая отладочным сервером (POST /debug/admin).
// Выполняется только при включенном режиме администратора.
type AdminCommand struct {
	Action string  `json:"action"`
	Kind   string  `json:"kind,omitempty"` // SPAWN: basic/ranged/enhanced, GIVE: medkit/battery/keycard
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

const (
	AdminHeal     = "HEAL"
	AdminTeleport = "TELEPORT"
	AdminSpawn    = "SPAWN"
	AdminKill     = "KILL"
	AdminSolve    = "SOLVE"
	AdminGive     = "GIVE"
)
