package systems

import "space-horror/internal/domain"

// Hitter - источник контактного урона.
type Hitter interface {
	Collider
	Damage() int
}

// ContactHits возвращает урон каждого пересекающего target источника в порядке списка.
// Неуязвимости между ударами нет: каждый источник бьет каждый тик.
func ContactHits[T Hitter](target domain.Rect, hitters []T) []int {
	var hits []int
	for _, h := range hitters {
		if target.Intersects(h.Rect()) {
			hits = append(hits, h.Damage())
		}
	}
	return hits
}
