package engine

import (
	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/internal/gfx"
	"space-horror/internal/i18n"
)

// Имена экранов.
const (
	ScreenMainMenu = "main_menu"
	ScreenSettings = "settings"
	ScreenIntro    = "intro"
	ScreenGame     = "game"
)

var (
	menuTitle    = gfx.TextStyle{Size: 48, Color: gfx.Red, Anchor: gfx.AnchorCenter}
	menuItem     = gfx.TextStyle{Size: 24, Color: gfx.White, Anchor: gfx.AnchorCenter}
	menuSelected = gfx.TextStyle{Size: 24, Color: gfx.Yellow, Anchor: gfx.AnchorCenter}
	menuNotice   = gfx.TextStyle{Size: 18, Color: gfx.Gray, Anchor: gfx.AnchorCenter}
)

// MenuAction - выбор в главном меню.
type MenuAction uint8

const (
	MenuNone MenuAction = iota
	MenuNewGame
	MenuContinue
	MenuSettings
	MenuQuit
)

var mainMenuItems = []struct {
	label  string
	action MenuAction
}{
	{"Start Game", MenuNewGame},
	{"Continue", MenuContinue},
	{"Settings", MenuSettings},
	{"Quit", MenuQuit},
}

// selector - общий курсор вертикального списка.
type selector struct {
	cursor int
}

// move сдвигает курсор по W/S (или стрелками), возвращает true, если выбран пункт.
func (s *selector) move(in domain.Input, n int) bool {
	switch {
	case in.Pressed(domain.KeyUp):
		s.cursor = (s.cursor + n - 1) % n
	case in.Pressed(domain.KeyDown):
		s.cursor = (s.cursor + 1) % n
	}
	return in.Pressed(domain.KeyEnter) || in.Pressed(domain.KeySpace) || in.Pressed(domain.KeyInteract)
}

func drawList(c gfx.Canvas, tr i18n.Translator, title string, items []string, cursor int) {
	w, h := c.Size()
	c.FillRect(domain.Rect{W: float64(w), H: float64(h)}, gfx.Black)
	cx := float64(w) / 2
	c.DrawText(tr.Get(title), domain.Vec2{X: cx, Y: float64(h)/2 - 160}, menuTitle)
	for i, it := range items {
		style := menuItem
		if i == cursor {
			style = menuSelected
		}
		c.DrawText(it, domain.Vec2{X: cx, Y: float64(h)/2 - 50 + float64(i)*50}, style)
	}
}

// MainMenu - стартовый экран.
type MainMenu struct {
	selector
	// Notice - сообщение под меню ("No saved game").
	Notice string
}

func (m *MainMenu) Update(in domain.Input) MenuAction {
	if !m.move(in, len(mainMenuItems)) {
		return MenuNone
	}
	m.Notice = ""
	return mainMenuItems[m.cursor].action
}

func (m *MainMenu) Draw(c gfx.Canvas, tr i18n.Translator) {
	items := make([]string, len(mainMenuItems))
	for i, it := range mainMenuItems {
		items[i] = tr.Get(it.label)
	}
	drawList(c, tr, "Space Horror", items, m.cursor)
	if m.Notice != "" {
		w, h := c.Size()
		c.DrawText(tr.Get(m.Notice), domain.Vec2{X: float64(w) / 2, Y: float64(h) - 80}, menuNotice)
	}
}

// SettingsMenu переключает флаги конфигурации и язык.
type SettingsMenu struct {
	selector
	cfg  *config.Config
	text *i18n.Catalog
}

func NewSettingsMenu(cfg *config.Config, text *i18n.Catalog) *SettingsMenu {
	return &SettingsMenu{cfg: cfg, text: text}
}

const (
	settingEnemies = iota
	settingIntro
	settingStory
	settingAdmin
	settingLanguage
	settingBack
	settingCount
)

// Update возвращает false, когда пользователь выходит в главное меню.
func (s *SettingsMenu) Update(in domain.Input) bool {
	if in.Pressed(domain.KeyEscape) {
		return false
	}
	selected := s.move(in, settingCount)
	if !selected && !in.Pressed(domain.KeyLeft) && !in.Pressed(domain.KeyRight) {
		return true
	}
	switch s.cursor {
	case settingEnemies:
		s.cfg.UpdateFlags(func(f *config.Flags) { f.EnemiesEnabled = !f.EnemiesEnabled })
	case settingIntro:
		s.cfg.UpdateFlags(func(f *config.Flags) { f.ShowIntro = !f.ShowIntro })
	case settingStory:
		s.cfg.UpdateFlags(func(f *config.Flags) { f.StoryGeneration = !f.StoryGeneration })
	case settingAdmin:
		s.cfg.UpdateFlags(func(f *config.Flags) { f.AdminMode = !f.AdminMode })
	case settingLanguage:
		if s.text != nil {
			s.cfg.SetLanguage(s.text.Next())
		}
	case settingBack:
		return !selected
	}
	return true
}

func (s *SettingsMenu) Draw(c gfx.Canvas, tr i18n.Translator) {
	f := s.cfg.Flags()
	admin := onOff(tr, f.AdminMode)
	if !config.AdminAllowed {
		admin = tr.Get("unavailable")
	}
	items := []string{
		tr.Get("Enemies: %s", onOff(tr, f.EnemiesEnabled)),
		tr.Get("Intro: %s", onOff(tr, f.ShowIntro)),
		tr.Get("Story generation: %s", onOff(tr, f.StoryGeneration)),
		tr.Get("Admin mode: %s", admin),
		tr.Get("Language: %s", s.cfg.Lang()),
		tr.Get("Back"),
	}
	drawList(c, tr, "Settings", items, s.cursor)
}

func onOff(tr i18n.Translator, v bool) string {
	if v {
		return tr.Get("ON")
	}
	return tr.Get("OFF")
}
