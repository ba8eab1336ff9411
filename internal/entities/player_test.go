package entities

import (
	"testing"
	"time"

	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
)

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name   string
		in     domain.Input
		zone   bool
		dx, dy float64
	}{
		{"walk right", hold(domain.KeyRight), false, 5, 0},
		{"walk left", hold(domain.KeyLeft), false, -5, 0},
		{"run", hold(domain.KeyRight, domain.KeyRun), false, 7.5, 0},
		{"up outside zone", hold(domain.KeyUp), false, 0, 0},
		{"up inside zone", hold(domain.KeyUp), true, 0, -5},
		{"diagonal is normalized", hold(domain.KeyRight, domain.KeyDown), true, 5 / 1.41421356, 5 / 1.41421356},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			start := p.Position()
			p.Control(tt.in, &fakeEnv{zone: tt.zone}, tick(step))
			got := p.Position().Sub(start)
			if !near(got.X, tt.dx) || !near(got.Y, tt.dy) {
				t.Errorf("moved by %v, want (%v, %v)", got, tt.dx, tt.dy)
			}
		})
	}
}

func TestPlayerStaysOnScreen(t *testing.T) {
	p := testPlayer()
	p.MoveTo(domain.Vec2{X: 10, Y: 600})
	p.Control(hold(domain.KeyLeft), &fakeEnv{}, tick(step))
	if r := p.Rect(); r.X < 0 {
		t.Errorf("player rect left edge = %v", r.X)
	}
}

func TestPlayerNoiseAndStamina(t *testing.T) {
	p := testPlayer()
	env := &fakeEnv{}
	for i := 1; i <= 30; i++ {
		p.Control(hold(domain.KeyRight, domain.KeyRun), env, tick(time.Duration(i)*step))
	}
	if p.Noise() < 55 || p.Noise() > 65 {
		t.Errorf("noise after running = %v", p.Noise())
	}
	if p.Stamina() > 71 || p.Stamina() < 69 {
		t.Errorf("stamina after running = %v", p.Stamina())
	}

	for i := 31; i <= 200; i++ {
		p.Control(domain.NoInput, env, tick(time.Duration(i)*step))
	}
	if p.Noise() != 0 || p.Stamina() != p.tuning.MaxStamina {
		t.Errorf("after rest noise=%v stamina=%v", p.Noise(), p.Stamina())
	}
}

func TestPlayerHideAndUnhide(t *testing.T) {
	p := testPlayer()
	shelf := NewShelve(domain.Vec2{X: 600, Y: 550})
	env := &fakeEnv{spot: shelf}

	p.Control(hold(domain.KeyRight), env, tick(step))
	events := p.Control(press(domain.KeyHide), env, tick(2*step))
	if !hasEvent(events, PlayerHid) || !p.IsHiding() || p.HidingSpot() != HidingSpot(shelf) {
		t.Fatalf("events = %v hiding = %v", events, p.IsHiding())
	}
	if p.Alpha() != 0 || p.Velocity != (domain.Vec2{}) {
		t.Errorf("hidden player alpha=%d velocity=%v", p.Alpha(), p.Velocity)
	}
	if !shelf.Animating() {
		t.Error("shelf should animate on hide")
	}

	// В укрытии движение не работает.
	pos := p.Position()
	p.Control(hold(domain.KeyLeft), env, tick(3*step))
	if p.Position() != pos {
		t.Error("hidden player moved")
	}

	events = p.Control(press(domain.KeyHide), env, tick(4*step))
	if !hasEvent(events, PlayerUnhid) || p.IsHiding() {
		t.Fatalf("unhide events = %v", events)
	}
	if p.Alpha() != 255 || p.HidingCooldown() != p.tuning.HidingCooldown {
		t.Errorf("alpha=%d cooldown=%d", p.Alpha(), p.HidingCooldown())
	}

	// Кулдаун не дает сразу спрятаться снова.
	events = p.Control(press(domain.KeyHide), env, tick(5*step))
	if p.IsHiding() || hasEvent(events, PlayerHid) {
		t.Error("hide should be blocked by cooldown")
	}
}

func TestPlayerRestsWhileHiddenOrDying(t *testing.T) {
	tests := []struct {
		name  string
		enter func(p *Player, env *fakeEnv, now time.Duration)
		check func(p *Player) bool
	}{
		{
			name: "hidden",
			enter: func(p *Player, env *fakeEnv, now time.Duration) {
				env.spot = NewShelve(domain.Vec2{X: 600, Y: 550})
				p.Control(press(domain.KeyHide), env, tick(now))
			},
			check: (*Player).IsHiding,
		},
		{
			name: "dying",
			enter: func(p *Player, _ *fakeEnv, now time.Duration) {
				p.TakeDamage(100, now)
			},
			check: (*Player).IsDying,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			env := &fakeEnv{}
			now := time.Duration(0)
			for i := 0; i < 50; i++ {
				now += step
				p.Control(hold(domain.KeyRight, domain.KeyRun), env, tick(now))
			}
			p.SetStamina(0)
			if p.Noise() < 99 {
				t.Fatalf("noise after running = %v", p.Noise())
			}

			now += step
			tt.enter(p, env, now)
			if !tt.check(p) {
				t.Fatal("player did not enter the state")
			}
			for i := 0; i < 120; i++ {
				now += step
				p.Control(domain.NoInput, env, tick(now))
			}
			if p.Noise() != 0 || p.Stamina() != p.tuning.MaxStamina {
				t.Errorf("noise = %v stamina = %v, want 0 and %v", p.Noise(), p.Stamina(), p.tuning.MaxStamina)
			}
			if !tt.check(p) {
				t.Error("resting must not change the state")
			}
		})
	}
}

func TestPlayerHideWithoutSpot(t *testing.T) {
	p := testPlayer()
	events := p.Control(press(domain.KeyHide), &fakeEnv{}, tick(step))
	if !hasEvent(events, PlayerNoHidingSpot) || p.IsHiding() {
		t.Errorf("events = %v", events)
	}
}

func TestPlayerQTE(t *testing.T) {
	alwaysQTE := func(c *config.PlayerTuning) { c.QTEChance = 1 }

	wrongKey := func(target domain.Key) domain.Key {
		for _, k := range domain.QTEKeys {
			if k != target {
				return k
			}
		}
		return domain.KeyNone
	}

	tests := []struct {
		name        string
		input       func(target domain.Key) domain.Input
		at          time.Duration
		want        PlayerEvent
		stillHidden bool
	}{
		{"correct key", func(k domain.Key) domain.Input { return press(k) }, time.Second, PlayerQTEPassed, true},
		{"wrong key", func(k domain.Key) domain.Input { return press(wrongKey(k)) }, time.Second, PlayerQTEFailed, false},
		{"timeout", func(domain.Key) domain.Input { return domain.NoInput }, 3 * time.Second, PlayerQTETimeout, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer(alwaysQTE)
			env := &fakeEnv{spot: NewShelve(domain.Vec2{X: 600, Y: 550}), threat: true}
			p.Control(press(domain.KeyHide), env, tick(0))

			events := p.Control(domain.NoInput, env, tick(step))
			if !hasEvent(events, PlayerQTEStarted) || !p.IsQTEActive() {
				t.Fatalf("qte not started: %v", events)
			}
			if p.QTERemaining(step+500*time.Millisecond) != 1500*time.Millisecond {
				t.Errorf("remaining = %v", p.QTERemaining(step+500*time.Millisecond))
			}

			events = p.Control(tt.input(p.QTETarget()), env, tick(step+tt.at))
			if !hasEvent(events, tt.want) {
				t.Errorf("events = %v, want %v", events, tt.want)
			}
			if p.IsHiding() != tt.stillHidden {
				t.Errorf("hiding = %v, want %v", p.IsHiding(), tt.stillHidden)
			}
			if p.IsQTEActive() {
				t.Error("qte should be resolved")
			}
		})
	}
}

func TestPlayerDamageAndDeath(t *testing.T) {
	p := testPlayer()
	if p.TakeDamage(3, 0) {
		t.Fatal("3 damage should not kill")
	}
	if p.Health() != 2 {
		t.Errorf("health = %d", p.Health())
	}
	if !p.TakeDamage(5, time.Second) {
		t.Fatal("5 damage should kill")
	}
	if p.Health() != -3 || !p.IsDying() || p.State() != "dying" {
		t.Errorf("health=%d dying=%v", p.Health(), p.IsDying())
	}
	if p.TakeDamage(1, time.Second) || p.Health() != -3 {
		t.Error("dying player must not take more damage")
	}

	// Кадры смерти: 4 по 200ms.
	for _, at := range []time.Duration{1200, 1400, 1600} {
		if p.DeathFinished() {
			t.Fatalf("death finished too early at %dms", at)
		}
		p.Update(tick(at * time.Millisecond))
	}
	if !p.DeathFinished() {
		t.Error("death animation should be finished")
	}

	p.Reset(domain.Vec2{X: 100, Y: 600}, false)
	if p.IsDying() || p.Health() != p.MaxHealth() {
		t.Errorf("reset: dying=%v health=%d", p.IsDying(), p.Health())
	}
}

func TestPlayerDiesInsideHidingSpot(t *testing.T) {
	p := testPlayer()
	p.Hide(NewShelve(domain.Vec2{}))
	p.TakeDamage(10, 0)
	if p.IsHiding() || !p.IsDying() || p.Alpha() != 255 {
		t.Errorf("hiding=%v dying=%v alpha=%d", p.IsHiding(), p.IsDying(), p.Alpha())
	}
}

func TestPlayerInvulnerable(t *testing.T) {
	p := testPlayer()
	p.Invulnerable = true
	if p.TakeDamage(100, 0) || p.Health() != p.MaxHealth() {
		t.Error("invulnerable player took damage")
	}
}

func TestPlayerUseItem(t *testing.T) {
	tests := []struct {
		name    string
		item    *domain.Item
		prepare func(p *Player)
		check   func(t *testing.T, p *Player)
	}{
		{
			name:    "medkit heals one",
			item:    &domain.Item{Name: "Medkit", Kind: domain.ItemMedkit},
			prepare: func(p *Player) { p.TakeDamage(2, 0) },
			check: func(t *testing.T, p *Player) {
				if p.Health() != 4 {
					t.Errorf("health = %d", p.Health())
				}
			},
		},
		{
			name:    "battery restores stamina",
			item:    &domain.Item{Name: "Battery", Kind: domain.ItemBattery},
			prepare: func(p *Player) { p.SetStamina(10) },
			check: func(t *testing.T, p *Player) {
				if p.Stamina() != 60 {
					t.Errorf("stamina = %v", p.Stamina())
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPlayer()
			tt.prepare(p)
			p.AddToInventory(*tt.item)
			if !p.UseItem() || p.LastUsedItem().Name != tt.item.Name {
				t.Fatalf("last used = %+v", p.LastUsedItem())
			}
			if p.Inventory.Len() != 0 {
				t.Error("item should be consumed")
			}
			tt.check(t, p)
		})
	}

	p := testPlayer()
	if events := p.Control(press(domain.KeyUseItem), &fakeEnv{}, tick(step)); !hasEvent(events, PlayerNothingToUse) {
		t.Errorf("empty inventory events = %v", events)
	}
	p.AddToInventory(domain.Item{Name: "Battery", Kind: domain.ItemBattery})
	if events := p.Control(press(domain.KeyUseItem), &fakeEnv{}, tick(2*step)); !hasEvent(events, PlayerUsedItem) {
		t.Errorf("use events = %v", events)
	}
}

func TestPlayerOverlaysAndDraw(t *testing.T) {
	p := testPlayer()
	p.Control(press(domain.KeyInventory, domain.KeyNotes), &fakeEnv{}, tick(step))
	if !p.ShowInventory || !p.ShowNotes {
		t.Error("overlays should toggle on")
	}

	rec := gfx.NewRecorder()
	p.Draw(rec)
	if len(rec.Frames(gfx.SheetPlayerIdle)) != 1 {
		t.Error("idle frame expected")
	}

	rec.Reset()
	p.Hide(NewShelve(domain.Vec2{}))
	p.Draw(rec)
	if len(rec.Ops) != 0 {
		t.Error("hidden player must not be drawn")
	}
}
