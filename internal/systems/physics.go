package systems

import "space-horror/internal/domain"

// Collider - все, что имеет прямоугольник.
type Collider interface {
	Rect() domain.Rect
}

// FirstCollision возвращает индекс первого пересекающегося с r объекта или -1.
func FirstCollision[T Collider](r domain.Rect, others []T) int {
	for i, o := range others {
		if r.Intersects(o.Rect()) {
			return i
		}
	}
	return -1
}

// Collides - пересекается ли r хоть с одним объектом.
func Collides[T Collider](r domain.Rect, others []T) bool {
	return FirstCollision(r, others) >= 0
}

// ClampInto сдвигает r внутрь bounds, не меняя размера.
func ClampInto(r, bounds domain.Rect) domain.Rect {
	if r.W <= bounds.W {
		r.X = domain.Clamp(r.X, bounds.Left(), bounds.Right()-r.W)
	}
	if r.H <= bounds.H {
		r.Y = domain.Clamp(r.Y, bounds.Top(), bounds.Bottom()-r.H)
	}
	return r
}
