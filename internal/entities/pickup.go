package entities

import (
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/pkg/utils"
)

// Pickup - предмет или записка на полу. Подбирается при касании.
type Pickup struct {
	id   string
	rect domain.Rect
	Item *domain.Item
	Note *domain.Note
}

func NewItemPickup(at domain.Vec2, it domain.Item) *Pickup {
	if it.ID == "" {
		it.ID = utils.PrefixedID("item")
	}
	return &Pickup{id: it.ID, rect: pickupRect(at), Item: &it}
}

func NewNotePickup(at domain.Vec2, n domain.Note) *Pickup {
	if n.ID == "" {
		n.ID = utils.PrefixedID("note")
	}
	return &Pickup{id: n.ID, rect: pickupRect(at), Note: &n}
}

func pickupRect(at domain.Vec2) domain.Rect {
	return domain.Rect{X: at.X, Y: at.Y, W: domain.PickupSize, H: domain.PickupSize}
}

func (p *Pickup) ID() string           { return p.id }
func (p *Pickup) Rect() domain.Rect    { return p.rect }
func (p *Pickup) Update(_ domain.Tick) {}

// Collect отдает содержимое игроку. false - в инвентаре нет места.
func (p *Pickup) Collect(pl *Player) bool {
	if p.Note != nil {
		pl.AddNote(*p.Note)
		return true
	}
	if p.Item != nil {
		return pl.AddToInventory(*p.Item)
	}
	return false
}

// Label - имя содержимого для журнала.
func (p *Pickup) Label() string {
	if p.Note != nil {
		return p.Note.Title
	}
	if p.Item != nil {
		return p.Item.Name
	}
	return ""
}

func (p *Pickup) Draw(c gfx.Canvas) {
	sheet := gfx.SheetItem
	if p.Note != nil {
		sheet = gfx.SheetNote
	}
	c.DrawFrame(gfx.Frame{Sheet: sheet, Alpha: alphaVisible}, p.rect)
}
