package domain

// Vitals - здоровье и выносливость игрока.
// Здоровье не обрезается снизу: урон от нескольких монстров за тик суммируется.
type Vitals struct {
	Health     int     `json:"health"`
	MaxHealth  int     `json:"maxHealth"`
	Stamina    float64 `json:"stamina"`
	MaxStamina float64 `json:"maxStamina"`
}

// TakeDamage наносит урон. Возвращает true, если здоровье опустилось до нуля или ниже.
func (v *Vitals) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	v.Health -= amount
	return v.Health <= 0
}

func (v *Vitals) Heal(amount int) {
	if v.Health <= 0 {
		return
	}
	v.Health += amount
	if v.Health > v.MaxHealth {
		v.Health = v.MaxHealth
	}
}

// SpendStamina тратит силы. Возвращает false, если не хватило.
func (v *Vitals) SpendStamina(cost float64) bool {
	if v.Stamina < cost {
		return false
	}
	v.Stamina -= cost
	return true
}

func (v *Vitals) RestoreStamina(amount float64) {
	v.Stamina += amount
	if v.Stamina > v.MaxStamina {
		v.Stamina = v.MaxStamina
	}
}
