package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"space-horror/internal/domain"
)

// binding - физическая клавиша и логические клавиши, которые она дает.
// E одновременно "взаимодействие" и символ E для QTE, W/A/S/D - движение и символы QTE.
type binding struct {
	key   ebiten.Key
	logic []domain.Key
}

var bindings = []binding{
	{ebiten.KeyA, []domain.Key{domain.KeyLeft, domain.KeyA}},
	{ebiten.KeyD, []domain.Key{domain.KeyRight, domain.KeyD}},
	{ebiten.KeyW, []domain.Key{domain.KeyUp, domain.KeyW}},
	{ebiten.KeyS, []domain.Key{domain.KeyDown, domain.KeyS}},
	{ebiten.KeyArrowLeft, []domain.Key{domain.KeyLeft}},
	{ebiten.KeyArrowRight, []domain.Key{domain.KeyRight}},
	{ebiten.KeyArrowUp, []domain.Key{domain.KeyUp}},
	{ebiten.KeyArrowDown, []domain.Key{domain.KeyDown}},
	{ebiten.KeyF, []domain.Key{domain.KeyHide}},
	{ebiten.KeyE, []domain.Key{domain.KeyInteract, domain.KeyE}},
	{ebiten.KeyX, []domain.Key{domain.KeyUseItem}},
	{ebiten.KeyC, []domain.Key{domain.KeyInventory}},
	{ebiten.KeyQ, []domain.Key{domain.KeyNotes, domain.KeyQ}},
	{ebiten.KeyShiftLeft, []domain.Key{domain.KeyRun}},
	{ebiten.KeyT, []domain.Key{domain.KeyComms}},
	{ebiten.KeyEscape, []domain.Key{domain.KeyEscape}},
	{ebiten.KeyEnter, []domain.Key{domain.KeyEnter}},
	{ebiten.KeyNumpadEnter, []domain.Key{domain.KeyEnter}},
	{ebiten.KeyTab, []domain.Key{domain.KeyTab}},
	{ebiten.KeySpace, []domain.Key{domain.KeySpace}},
	{ebiten.KeyF5, []domain.Key{domain.KeySubmit}},
	{ebiten.KeyF9, []domain.Key{domain.KeyAdminPaste}},
}

// Автоповтор Backspace в тиках.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

// Poller собирает domain.Input из состояния клавиатуры ebiten. Вызывается раз в Update.
type Poller struct {
	chars []rune
}

func (p *Poller) Poll() domain.Input {
	var in domain.Input
	for _, b := range bindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Hold(b.logic...)
		}
		if inpututil.IsKeyJustPressed(b.key) {
			in.Press(b.logic...)
		}
	}
	if d := inpututil.KeyPressDuration(ebiten.KeyBackspace); d == 1 || (d >= repeatDelay && d%repeatInterval == 0) {
		in.Press(domain.KeyBackspace)
	}

	p.chars = ebiten.AppendInputChars(p.chars[:0])
	if len(p.chars) > 0 {
		in.Chars = append([]rune(nil), p.chars...)
	}
	return in
}
