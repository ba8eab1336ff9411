// Package entities - объекты уровня: игрок, монстры и интерактивные предметы.
// Все они пассивны: их двигает и опрашивает Level, один раз за тик.
package entities

import (
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
)

// Entity - любой объект уровня с прямоугольником, тиком и отрисовкой.
type Entity interface {
	ID() string
	Rect() domain.Rect
	Update(t domain.Tick)
	Draw(c gfx.Canvas)
}

// Obstacle - непроходимый прямоугольник (стол, стена, ящик).
type Obstacle struct {
	id   string
	rect domain.Rect
}

func NewObstacle(id string, r domain.Rect) *Obstacle {
	return &Obstacle{id: id, rect: r}
}

func (o *Obstacle) ID() string           { return o.id }
func (o *Obstacle) Rect() domain.Rect    { return o.rect }
func (o *Obstacle) Update(_ domain.Tick) {}

func (o *Obstacle) Draw(c gfx.Canvas) {
	c.FillRect(o.rect, gfx.Gray)
}
