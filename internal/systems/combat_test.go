package systems

import (
	"testing"

	"space-horror/internal/domain"
)

func TestContactHitsStackPerMonster(t *testing.T) {
	player := domain.Rect{X: 100, Y: 100, W: 64, H: 96}
	monsters := []box{
		{r: domain.Rect{X: 120, Y: 120, W: 96, H: 96}, dmg: 1},
		{r: domain.Rect{X: 600, Y: 100, W: 96, H: 96}, dmg: 5},
		{r: domain.Rect{X: 90, Y: 150, W: 96, H: 96}, dmg: 2},
	}

	hits := ContactHits(player, monsters)
	if len(hits) != 2 || hits[0] != 1 || hits[1] != 2 {
		t.Errorf("hits = %v, want [1 2]", hits)
	}
}
