package entities

import (
	"time"

	"space-horror/internal/domain"
)

// Hide прячет игрока в spot. Не срабатывает во время кулдауна или смерти.
func (p *Player) Hide(spot HidingSpot) bool {
	if p.hiding || p.dying || spot == nil || p.hidingCooldown > 0 {
		return false
	}
	p.hiding = true
	p.hidingSpot = spot
	p.savedVelocity = p.Velocity
	p.Velocity = domain.Vec2{}
	p.moving = false
	p.alpha = alphaHidden
	p.hidingCooldown = p.tuning.HidingCooldown
	return true
}

// Unhide выводит игрока из укрытия и возвращает скорость до укрытия.
func (p *Player) Unhide() bool {
	if !p.hiding {
		return false
	}
	p.hiding = false
	p.hidingSpot = nil
	p.qteActive = false
	p.qteTarget = domain.KeyNone
	p.Velocity = p.savedVelocity
	p.alpha = alphaVisible
	p.hidingCooldown = p.tuning.HidingCooldown
	return true
}

// StartQTE запускает проверку укрытия со случайной клавишей.
func (p *Player) StartQTE(now time.Duration) {
	if !p.hiding || p.qteActive {
		return
	}
	p.qteActive = true
	p.qteTarget = domain.QTEKeys[p.rng.Intn(len(domain.QTEKeys))]
	p.qteStart = now
}

// QTERemaining - сколько осталось до провала по времени.
func (p *Player) QTERemaining(now time.Duration) time.Duration {
	if !p.qteActive {
		return 0
	}
	left := p.tuning.QTEWindow - (now - p.qteStart)
	if left < 0 {
		return 0
	}
	return left
}

// resolveQTE: верная клавиша - остаемся в укрытии, неверная или таймаут - укрытие раскрыто.
func (p *Player) resolveQTE(in domain.Input, t domain.Tick) []PlayerEvent {
	if t.Now-p.qteStart > p.tuning.QTEWindow {
		p.Unhide()
		return []PlayerEvent{PlayerQTETimeout}
	}
	k, ok := in.FirstPressed(domain.QTEKeys)
	if !ok {
		return nil
	}
	if k == p.qteTarget {
		p.qteActive = false
		p.qteTarget = domain.KeyNone
		return []PlayerEvent{PlayerQTEPassed}
	}
	p.Unhide()
	return []PlayerEvent{PlayerQTEFailed}
}
