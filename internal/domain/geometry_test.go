package domain

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.o.Intersects(base); got != tt.want {
				t.Errorf("symmetric Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 40}
	in := r.Inflate(20, 20)
	if in.Center() != r.Center() {
		t.Errorf("center moved: %v -> %v", r.Center(), in.Center())
	}
	if in.W != 40 || in.H != 60 {
		t.Errorf("size = %vx%v, want 40x60", in.W, in.H)
	}
	// Касание превращается в пересечение после расширения.
	touching := Rect{X: 30, Y: 10, W: 5, H: 5}
	if r.Intersects(touching) || !in.Intersects(touching) {
		t.Error("inflate should turn an edge touch into an overlap")
	}
}

func TestInputPressAndHold(t *testing.T) {
	var in Input
	in.Press(KeyHide).Hold(KeyLeft)

	if !in.Pressed(KeyHide) || !in.Held(KeyHide) {
		t.Error("pressed key must also be held")
	}
	if in.Pressed(KeyLeft) {
		t.Error("held key must not be reported as pressed")
	}
	if k, ok := in.FirstPressed(QTEKeys); ok {
		t.Errorf("FirstPressed = %v, want none", k)
	}
	in.Press(KeyQ)
	if k, ok := in.FirstPressed(QTEKeys); !ok || k != KeyQ {
		t.Errorf("FirstPressed = %v,%v want Q", k, ok)
	}
}

func TestInventoryCapacity(t *testing.T) {
	var inv Inventory
	for i := 0; i < InventoryCapacity; i++ {
		if !inv.Add(Item{Name: "x"}) {
			t.Fatalf("add #%d failed", i)
		}
	}
	if inv.Add(Item{Name: "overflow"}) {
		t.Error("add into full inventory must fail")
	}
	if inv.Len() != InventoryCapacity {
		t.Errorf("len = %d", inv.Len())
	}
}

func TestVitalsDamageNotClamped(t *testing.T) {
	v := Vitals{Health: 1, MaxHealth: 5}
	if !v.TakeDamage(2) {
		t.Error("expected fatal damage")
	}
	if v.Health != -1 {
		t.Errorf("health = %d, want -1", v.Health)
	}
	v.Heal(3)
	if v.Health != -1 {
		t.Error("dead player must not heal")
	}
}

func TestVitalsSpendStamina(t *testing.T) {
	tests := []struct {
		name   string
		have   float64
		cost   float64
		ok     bool
		remain float64
	}{
		{"enough", 10, 4, true, 6},
		{"exact", 4, 4, true, 0},
		{"not enough", 3, 4, false, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vitals{Stamina: tt.have, MaxStamina: 100}
			if ok := v.SpendStamina(tt.cost); ok != tt.ok || v.Stamina != tt.remain {
				t.Errorf("SpendStamina(%v) = %v, stamina %v; want %v, %v", tt.cost, ok, v.Stamina, tt.ok, tt.remain)
			}
		})
	}
}
