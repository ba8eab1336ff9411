package domain

// Key - логическая клавиша. Раскладка физических клавиш живет в render.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHide
	KeyInteract
	KeyUseItem
	KeyInventory
	KeyNotes
	KeyRun
	KeyComms
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeySpace
	KeySubmit
	KeyAdminPaste
	// Клавиши QTE. W/A/S/D совпадают с движением, но в QTE нужен сам символ.
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	keyCount
)

var keyNames = [...]string{
	KeyNone: "", KeyLeft: "left", KeyRight: "right", KeyUp: "up", KeyDown: "down",
	KeyHide: "hide", KeyInteract: "interact", KeyUseItem: "use_item",
	KeyInventory: "inventory", KeyNotes: "notes", KeyRun: "run", KeyComms: "comms",
	KeyEscape: "escape", KeyEnter: "enter", KeyBackspace: "backspace", KeyTab: "tab",
	KeySpace: "space", KeySubmit: "submit", KeyAdminPaste: "admin_paste",
	KeyW: "W", KeyA: "A", KeyS: "S", KeyD: "D", KeyQ: "Q", KeyE: "E",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// QTEKeys - набор, из которого выбирается цель QTE.
var QTEKeys = []Key{KeyW, KeyA, KeyS, KeyD, KeyQ, KeyE}

type keySet uint32

func (s keySet) has(k Key) bool { return s&(1<<k) != 0 }

// Input - снимок ввода за один тик.
// Held - удерживаемые клавиши, Pressed - нажатые именно в этом тике.
type Input struct {
	held    keySet
	pressed keySet
	// Chars - напечатанные символы (для редактора кода и чата).
	Chars []rune
}

func (in *Input) Hold(keys ...Key) *Input {
	for _, k := range keys {
		in.held |= 1 << k
	}
	return in
}

// Press отмечает клавишу как нажатую в этом тике (и удерживаемую).
func (in *Input) Press(keys ...Key) *Input {
	for _, k := range keys {
		in.pressed |= 1 << k
		in.held |= 1 << k
	}
	return in
}

func (in Input) Held(k Key) bool    { return in.held.has(k) }
func (in Input) Pressed(k Key) bool { return in.pressed.has(k) }

// FirstPressed возвращает первую нажатую клавишу из набора.
func (in Input) FirstPressed(keys []Key) (Key, bool) {
	for _, k := range keys {
		if in.Pressed(k) {
			return k, true
		}
	}
	return KeyNone, false
}

// AnyPressed - было ли хоть одно нажатие в этом тике.
func (in Input) AnyPressed() bool { return in.pressed != 0 || len(in.Chars) > 0 }

// NoInput - пустой ввод, который получает замороженный мир.
var NoInput = Input{}
