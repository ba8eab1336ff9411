package animation

import "time"

// Mode - способ прохода по кадрам.
type Mode uint8

const (
	// Loop крутит кадры по кругу, пока анимация не остановлена.
	Loop Mode = iota
	// Once доходит до последнего кадра и останавливается на нем.
	Once
	// Cycle проходит полный круг и останавливается, вернувшись на кадр 0.
	Cycle
)

// Animator переключает кадры по настенным часам.
// Кадр меняется не чаще одного раза за Tick, даже если пропущено несколько интервалов.
type Animator struct {
	frames   int
	interval time.Duration
	mode     Mode

	frame   int
	last    time.Duration
	running bool
}

func New(frames int, interval time.Duration, mode Mode) *Animator {
	if frames < 1 {
		frames = 1
	}
	return &Animator{frames: frames, interval: interval, mode: mode}
}

// Start запускает анимацию с текущего кадра.
func (a *Animator) Start(now time.Duration) {
	a.running = true
	a.last = now
}

// Restart сбрасывает кадр на 0 и запускает заново.
func (a *Animator) Restart(now time.Duration) {
	a.frame = 0
	a.Start(now)
}

func (a *Animator) Stop() { a.running = false }

// Reset останавливает анимацию и возвращает первый кадр.
func (a *Animator) Reset() {
	a.running = false
	a.frame = 0
}

// Tick продвигает анимацию. Возвращает true, если кадр сменился.
func (a *Animator) Tick(now time.Duration) bool {
	if !a.running || now-a.last < a.interval {
		return false
	}
	a.last = now

	switch a.mode {
	case Once:
		if a.frame < a.frames-1 {
			a.frame++
		}
		if a.frame == a.frames-1 {
			a.running = false
		}
	case Cycle:
		a.frame = (a.frame + 1) % a.frames
		if a.frame == 0 {
			a.running = false
		}
	default:
		a.frame = (a.frame + 1) % a.frames
	}
	return true
}

func (a *Animator) Frame() int    { return a.frame }
func (a *Animator) Frames() int   { return a.frames }
func (a *Animator) Running() bool { return a.running }

// Done - анимация Once дошла до последнего кадра.
func (a *Animator) Done() bool {
	return a.mode == Once && !a.running && a.frame == a.frames-1
}
