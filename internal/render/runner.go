package render

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"space-horror/internal/config"
	"space-horror/internal/engine"
	"space-horror/pkg/logger"
)

// Runner реализует ebiten.Game. Паника в Update или Draw логируется вместе со стеком,
// после чего игра завершается через ebiten.Termination.
type Runner struct {
	game   *engine.Game
	input  Poller
	atlas  *Atlas
	fonts  *Fonts
	width  int
	height int
	log    *logrus.Entry
	fault  bool

	stopping atomic.Bool
}

func NewRunner(game *engine.Game, cfg *config.Config) (*Runner, error) {
	fonts, err := NewFonts()
	if err != nil {
		return nil, err
	}
	return &Runner{
		game:   game,
		atlas:  NewAtlas(cfg.AssetsDir),
		fonts:  fonts,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
		log:    logger.For("runner"),
	}, nil
}

// Run открывает окно и крутит цикл до выхода.
func (r *Runner) Run(cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func (r *Runner) Update() (err error) {
	defer r.guard("update", &err)
	if r.fault || r.stopping.Load() || r.game.Quit() {
		return ebiten.Termination
	}
	r.game.Update(r.input.Poll())
	return nil
}

func (r *Runner) Draw(screen *ebiten.Image) {
	var err error
	defer r.guard("draw", &err)
	r.game.Draw(NewCanvas(screen, r.atlas, r.fonts))
}

// Stop просит цикл завершиться на следующем тике. Безопасен из любой горутины.
func (r *Runner) Stop() { r.stopping.Store(true) }

func (r *Runner) Layout(_, _ int) (int, int) { return r.width, r.height }

func (r *Runner) guard(stage string, err *error) {
	if rec := recover(); rec != nil {
		r.log.WithFields(logrus.Fields{
			"stage": stage,
			"panic": rec,
			"stack": string(debug.Stack()),
		}).Error("Unexpected error in game loop")
		r.fault = true
		*err = ebiten.Termination
	}
}
