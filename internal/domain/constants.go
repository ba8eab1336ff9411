package domain

// Размер экрана по умолчанию.
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Базовый размер спрайта игрока; размеры остальных объектов - множители от него.
const (
	PlayerWidth  = 64
	PlayerHeight = 96
)

const (
	ShelveScaleW  = 1.5
	ShelveScaleH  = 1.2
	DoorScaleW    = 3
	DoorScaleH    = 4
	MonsterScaleW = 1.5
	MonsterScaleH = 1.5

	TerminalWidth  = 64
	TerminalHeight = 80
	PickupSize     = 32

	// Монстр появляется чуть ниже точки из описания уровня (ось Y направлена вниз).
	MonsterSpawnYOffset = 20
)

// Точка старта по умолчанию, если в описании уровня ее нет.
var DefaultPlayerStart = Vec2{X: 640, Y: 670}

// Максимальная длина журнала сообщений уровня.
const MaxLogHistory = 50
