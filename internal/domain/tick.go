package domain

import "time"

// Tick - параметры одного шага симуляции.
// Now - монотонное время, DT - длительность шага.
type Tick struct {
	Now time.Duration
	DT  time.Duration
}

// Frames переводит DT в кадры эталонной частоты (60 TPS).
// Скорости в настройках заданы в пикселях за кадр при 60 TPS.
func (t Tick) Frames() float64 {
	return t.DT.Seconds() * ReferenceTPS
}

const ReferenceTPS = 60
