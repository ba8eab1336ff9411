package domain

import "time"

// Виды предметов
const (
	ItemMedkit  = "medkit"
	ItemBattery = "battery"
	ItemKeycard = "keycard"
)

const InventoryCapacity = 4

type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Inventory - упорядоченный список предметов ограниченной вместимости.
type Inventory struct {
	Items []Item `json:"items"`
}

// Add возвращает false, если инвентарь полон.
func (inv *Inventory) Add(it Item) bool {
	if len(inv.Items) >= InventoryCapacity {
		return false
	}
	inv.Items = append(inv.Items, it)
	return true
}

// TakeFirst извлекает первый предмет.
func (inv *Inventory) TakeFirst() (Item, bool) {
	if len(inv.Items) == 0 {
		return Item{}, false
	}
	it := inv.Items[0]
	inv.Items = inv.Items[1:]
	return it, true
}

func (inv *Inventory) Len() int { return len(inv.Items) }

// SaveGame - запись слота сохранения.
type SaveGame struct {
	ID        string    `json:"id"`
	LevelFile string    `json:"level_file"`
	Health    int       `json:"health"`
	Stamina   float64   `json:"stamina"`
	Inventory []Item    `json:"inventory"`
	Notes     []Note    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}
