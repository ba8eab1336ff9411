package gfx

import "space-horror/internal/domain"

// Op - одна записанная операция Recorder.
type Op struct {
	Kind  string // frame, background, fill, stroke, text
	Frame Frame
	Rect  domain.Rect
	Text  string
	At    domain.Vec2
}

// Recorder - Canvas, который только запоминает вызовы. Используется в тестах и
// для headless-прогонов.
type Recorder struct {
	W, H int
	Ops  []Op
}

func NewRecorder() *Recorder {
	return &Recorder{W: domain.ScreenWidth, H: domain.ScreenHeight}
}

func (r *Recorder) DrawFrame(f Frame, dst domain.Rect) {
	r.Ops = append(r.Ops, Op{Kind: "frame", Frame: f, Rect: dst})
}

func (r *Recorder) DrawBackground(name string) {
	r.Ops = append(r.Ops, Op{Kind: "background", Text: name})
}

func (r *Recorder) FillRect(rc domain.Rect, _ Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Rect: rc})
}

func (r *Recorder) StrokeRect(rc domain.Rect, _ Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", Rect: rc})
}

func (r *Recorder) DrawText(s string, at domain.Vec2, _ TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: "text", Text: s, At: at})
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

// Texts возвращает все выведенные строки по порядку.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText - была ли выведена строка s.
func (r *Recorder) HasText(s string) bool {
	for _, t := range r.Texts() {
		if t == s {
			return true
		}
	}
	return false
}

// Frames возвращает кадры указанного листа.
func (r *Recorder) Frames(sheet Sheet) []Frame {
	var out []Frame
	for _, op := range r.Ops {
		if op.Kind == "frame" && op.Frame.Sheet == sheet {
			out = append(out, op.Frame)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
