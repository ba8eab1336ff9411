package systems

import "space-horror/internal/domain"

// Gait - темп движения игрока в тике.
type Gait uint8

const (
	GaitStill Gait = iota
	GaitWalk
	GaitRun
)

// Экономика шума и выносливости, в единицах за кадр при 60 TPS.
const (
	NoiseWalk      = 1
	NoiseRun       = 2
	NoiseDecay     = 1
	StaminaRunCost = 1
	StaminaWalk    = 0.5
	StaminaRest    = 1
	MaxNoise       = 100
)

// ChooseGait: бег возможен только в движении и при наличии выносливости.
func ChooseGait(moving, runHeld bool, stamina float64) Gait {
	switch {
	case !moving:
		return GaitStill
	case runHeld && stamina > 0:
		return GaitRun
	default:
		return GaitWalk
	}
}

// ApplyGait обновляет выносливость и возвращает новый уровень шума в [0,100].
func ApplyGait(v *domain.Vitals, noise float64, g Gait, frames float64) float64 {
	switch g {
	case GaitRun:
		noise += NoiseRun * frames
		if !v.SpendStamina(StaminaRunCost * frames) {
			v.Stamina = 0
		}
	case GaitWalk:
		noise += NoiseWalk * frames
		v.RestoreStamina(StaminaWalk * frames)
	default:
		noise -= NoiseDecay * frames
		v.RestoreStamina(StaminaRest * frames)
	}
	return domain.Clamp(noise, 0, MaxNoise)
}

// SpeedFor - скорость для темпа.
func SpeedFor(g Gait, base, runMultiplier float64) float64 {
	switch g {
	case GaitRun:
		return base * runMultiplier
	case GaitWalk:
		return base
	default:
		return 0
	}
}
