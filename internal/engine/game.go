package engine

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
	"space-horror/pkg/logger"
)

const (
	loadSaveTimeout = 2 * time.Second
	// Длинный кадр (окно перетаскивали, отладчик) не должен телепортировать объекты.
	maxTickFrames = 4
)

// Game - переключатель экранов: меню, настройки, вступление, уровень.
type Game struct {
	deps  Dependencies
	cfg   *config.Config
	tr    i18n.Translator
	clock Clock
	log   *logrus.Entry

	Level    *Level
	screen   string
	menu     MainMenu
	settings *SettingsMenu
	intro    *Intro

	last    time.Duration
	hasLast bool
	quit    bool
}

func NewGame(deps Dependencies) *Game {
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	if deps.Clock == nil {
		deps.Clock = NewSystemClock()
	}
	return &Game{
		deps:     deps,
		cfg:      deps.Config,
		tr:       deps.translator(),
		clock:    deps.Clock,
		log:      logger.For("game"),
		Level:    NewLevel(deps),
		screen:   ScreenMainMenu,
		settings: NewSettingsMenu(deps.Config, deps.Text),
	}
}

func (g *Game) Screen() string { return g.screen }

// Quit - пользователь выбрал выход в главном меню.
func (g *Game) Quit() bool { return g.quit }

// StartLevelPath - файл первого уровня.
func (g *Game) StartLevelPath() string {
	return filepath.Join(g.cfg.LevelsDir, g.cfg.StartLevel)
}

func (g *Game) nextTick() domain.Tick {
	now := g.clock.Now()
	step := g.cfg.TickDuration()
	dt := now - g.last
	if !g.hasLast || dt <= 0 {
		dt = step
	}
	if dt > maxTickFrames*step {
		dt = maxTickFrames * step
	}
	g.last, g.hasLast = now, true
	return domain.Tick{Now: now, DT: dt}
}

// Update - один тик игры.
func (g *Game) Update(in domain.Input) {
	t := g.nextTick()

	switch g.screen {
	case ScreenMainMenu:
		switch g.menu.Update(in) {
		case MenuNewGame:
			g.newGame()
		case MenuContinue:
			g.continueGame()
		case MenuSettings:
			g.switchTo(ScreenSettings)
		case MenuQuit:
			g.log.Info("Quit requested")
			g.quit = true
		}
	case ScreenSettings:
		if !g.settings.Update(in) {
			g.switchTo(ScreenMainMenu)
		}
	case ScreenIntro:
		if !g.intro.Update(in) {
			g.intro = nil
			g.Level.Load(g.StartLevelPath())
			g.switchTo(ScreenGame)
		}
	case ScreenGame:
		g.updateGame(in, t)
	}

	g.publish(t)
}

func (g *Game) updateGame(in domain.Input, t domain.Tick) {
	if g.Level.IsGameOver() {
		if in.Pressed(domain.KeyInteract) {
			g.Level.Restart()
		} else if in.Pressed(domain.KeyEscape) {
			g.switchTo(ScreenMainMenu)
		}
		return
	}
	if in.Pressed(domain.KeyEscape) && g.Level.Modal() == nil {
		g.switchTo(ScreenMainMenu)
		return
	}
	g.Level.Update(in, t)
}

// newGame показывает вступление (если включено), затем загружает первый уровень.
func (g *Game) newGame() {
	flags := g.cfg.Flags()
	if !flags.ShowIntro {
		g.Level.Load(g.StartLevelPath())
		g.switchTo(ScreenGame)
		return
	}
	var teller StoryTeller
	if flags.StoryGeneration {
		teller = g.deps.Story
	}
	g.intro = NewIntro(teller, 1)
	g.switchTo(ScreenIntro)
}

// continueGame загружает последнее сохранение.
func (g *Game) continueGame() {
	if g.deps.Saves == nil {
		g.menu.Notice = "No saved game"
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadSaveTimeout)
	defer cancel()
	save, ok, err := g.deps.Saves.Latest(ctx)
	switch {
	case err != nil:
		g.log.WithError(err).Warn("Failed to read saves")
		g.menu.Notice = "Could not read saved games"
	case !ok:
		g.menu.Notice = "No saved game"
	default:
		g.Level.ApplySave(save)
		g.switchTo(ScreenGame)
	}
}

func (g *Game) switchTo(screen string) {
	g.log.WithFields(logrus.Fields{"from": g.screen, "to": screen}).Debug("Screen switch")
	g.screen = screen
}

func (g *Game) publish(t domain.Tick) {
	if g.deps.Publisher == nil {
		return
	}
	snap := g.Level.BuildSnapshot(t.Now)
	snap.Screen = g.screen
	g.deps.Publisher.Publish(snap)
}

func (g *Game) Draw(c gfx.Canvas) {
	switch g.screen {
	case ScreenMainMenu:
		g.menu.Draw(c, g.tr)
	case ScreenSettings:
		g.settings.Draw(c, g.tr)
	case ScreenIntro:
		g.intro.Draw(c, g.tr)
	case ScreenGame:
		g.Level.Draw(c, g.clock.Now())
	}
}
