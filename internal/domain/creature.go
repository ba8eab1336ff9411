package domain

// MonsterKind - вариант монстра из описания уровня.
type MonsterKind string

const (
	MonsterBasic    MonsterKind = "basic"
	MonsterRanged   MonsterKind = "ranged"
	MonsterEnhanced MonsterKind = "enhanced"
)

// AIState - состояние поведения монстра.
type AIState uint8

const (
	AIStatePatrol AIState = iota
	AIStateChase
)

func (s AIState) String() string {
	if s == AIStateChase {
		return "chase"
	}
	return "patrol"
}

// Tint - окраска спрайта, RGBA 0..255. Нулевое значение - без окраски.
type Tint struct {
	R, G, B, A uint8
}

func (t Tint) IsZero() bool { return t == Tint{} }

// CreatureProfile - параметры варианта монстра.
// Варианты отличаются только данными, поведение общее.
type CreatureProfile struct {
	Kind            MonsterKind
	Speed           float64 // px за кадр при 60 TPS
	DetectionRadius float64
	Damage          int
	Tint            Tint
	// Дистанция удержания для стрелков; нули - без ограничения.
	PreferredMin float64
	PreferredMax float64
}

// KeepsDistance - держит ли монстр дистанцию вместо сближения.
func (p CreatureProfile) KeepsDistance() bool {
	return p.PreferredMax > 0
}
