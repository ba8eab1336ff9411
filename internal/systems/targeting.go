package systems

import "space-horror/internal/domain"

// WithinRadius возвращает индексы объектов, центр которых не дальше radius от p.
func WithinRadius[T Collider](p domain.Vec2, others []T, radius float64) []int {
	var idx []int
	for i, o := range others {
		if o.Rect().Center().DistanceTo(p) <= radius {
			idx = append(idx, i)
		}
	}
	return idx
}

// AnyWithin - есть ли хоть один объект в радиусе.
func AnyWithin[T Collider](p domain.Vec2, others []T, radius float64) bool {
	for _, o := range others {
		if o.Rect().Center().DistanceTo(p) <= radius {
			return true
		}
	}
	return false
}
