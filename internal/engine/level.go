package engine

import (
	"math/rand"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"space-horror/internal/config"
	"space-horror/internal/domain"
	"space-horror/internal/entities"
	"space-horror/internal/i18n"
	"space-horror/internal/systems"
	"space-horror/internal/terminal"
	"space-horror/pkg/api"
	"space-horror/pkg/dungeon"
	"space-horror/pkg/logger"
	"space-horror/pkg/utils"
)

// Level - один загруженный уровень: игрок, объекты, монстры и планировщик.
// Все состояние меняется только из Update, то есть из одного тика.
type Level struct {
	deps   Dependencies
	cfg    *config.Config
	tr     i18n.Translator
	clock  Clock
	rng    *rand.Rand
	log    *logrus.Entry
	bounds domain.Rect

	file     string
	desc     dungeon.LevelDescriptor
	pop      dungeon.Population
	profiles dungeon.Profiles

	Player        *entities.Player
	Monsters      []*entities.Monster
	interactables []entities.Interactable
	pickups       []*entities.Pickup
	spawner       *Spawner

	modal         terminal.Modal
	chat          *terminal.Chat
	taskWasSolved bool

	saves      chan saveResult
	saving     bool
	deadEnd    bool
	transition string

	// Commands - команды администратора из отладочного сервера. Разбираются в тике.
	Commands chan api.AdminCommand

	Logs     []api.LogEntry
	gameOver bool
	tick     int64
	number   int
}

// NewLevel создает пустой уровень. Загрузка - через Load или Reset.
func NewLevel(deps Dependencies) *Level {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
		deps.Config = cfg
	}
	rng := utils.NewRand(cfg.Seed)
	l := &Level{
		deps:     deps,
		cfg:      cfg,
		tr:       deps.translator(),
		clock:    deps.clock(),
		rng:      rng,
		log:      logger.For("level"),
		bounds:   domain.Rect{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)},
		profiles: dungeon.NewProfiles(cfg.Monster),
		saves:    make(chan saveResult, 1),
		Commands: make(chan api.AdminCommand, 16),
	}
	l.Player = entities.NewPlayer(domain.DefaultPlayerStart, cfg.Player, rng)
	l.reset(dungeon.Empty(), "", false)
	return l
}

// Load читает файл уровня и перестраивает уровень. Ошибка не фатальна:
// в этом случае строится пустой уровень.
func (l *Level) Load(file string) {
	l.load(file, false)
}

func (l *Level) load(file string, keepBelongings bool) {
	desc, err := dungeon.Load(file)
	if err != nil {
		l.log.WithError(err).WithField("file", file).Warn("Falling back to an empty level")
	}
	l.reset(desc, file, keepBelongings)
}

// Reset полностью перестраивает уровень из описания. Вещи игрока сбрасываются.
func (l *Level) Reset(desc dungeon.LevelDescriptor, file string) {
	l.reset(desc, file, false)
}

func (l *Level) reset(desc dungeon.LevelDescriptor, file string, keepBelongings bool) {
	if l.chat != nil {
		l.chat.Abort()
	}
	now := l.clock.Now()

	l.file = file
	l.desc = desc
	l.pop = dungeon.Populate(desc)
	l.interactables = l.pop.Interactables()
	l.pickups = l.pop.Pickups
	l.Monsters = nil
	l.modal = nil
	l.chat = terminal.NewChat(l.deps.Responder)
	l.taskWasSolved = l.pop.CodeTask.IsSolved()
	l.deadEnd = false
	l.transition = ""
	l.gameOver = false
	l.tick = 0
	l.Logs = nil

	l.spawner = NewSpawner(desc.Monsters, l.cfg.Spawn.Interval, l.cfg.Spawn.Warning, l.rng)
	l.spawner.Arm(now)

	l.Player.Reset(l.pop.Start, keepBelongings)
	l.Player.Invulnerable = l.adminEnabled()

	l.log.WithFields(logrus.Fields{
		"file":          file,
		"interactables": len(l.interactables),
		"monster_pool":  len(desc.Monsters),
	}).Info("Level loaded")
}

// Restart перечитывает текущий файл уровня с диска.
func (l *Level) Restart() {
	l.log.WithField("file", l.file).Info("Restarting level")
	l.load(l.file, false)
}

// LoadNextLevel загружает уровень name. Путь считается от каталога текущего файла.
func (l *Level) LoadNextLevel(name string) {
	if name == "" {
		if !l.deadEnd {
			l.deadEnd = true
			l.say("This door leads nowhere", entities.MsgWarning)
		}
		return
	}
	next := name
	if !filepath.IsAbs(next) {
		next = filepath.Join(filepath.Dir(l.file), name)
	}
	l.log.WithFields(logrus.Fields{"from": l.file, "to": next}).Info("Level transition")
	l.number++
	l.load(next, true)
}

func (l *Level) File() string                    { return l.file }
func (l *Level) Number() int                     { return l.number }
func (l *Level) IsGameOver() bool                { return l.gameOver }
func (l *Level) Modal() terminal.Modal           { return l.modal }
func (l *Level) Spawner() *Spawner               { return l.spawner }
func (l *Level) Door() *entities.Door            { return l.pop.Door }
func (l *Level) CodeTask() *terminal.CodeTask    { return l.pop.CodeTask }
func (l *Level) Pickups() []*entities.Pickup     { return l.pickups }
func (l *Level) Obstacles() []*entities.Obstacle { return l.pop.Obstacles }

func (l *Level) Descriptor() dungeon.LevelDescriptor { return l.desc }

func (l *Level) Interactables() []entities.Interactable { return l.interactables }

func (l *Level) adminEnabled() bool {
	return config.AdminAllowed && l.cfg.Flags().AdminMode
}

// Update - один тик уровня.
func (l *Level) Update(in domain.Input, t domain.Tick) {
	if l.gameOver {
		return
	}
	l.tick++
	l.chat.Poll()
	l.drainSaves()
	l.drainCommands(t)

	// Анимации и позиции объектов идут даже под модальным окном.
	for _, it := range l.interactables {
		it.Update(t)
	}
	l.Player.Update(t)
	for _, m := range l.Monsters {
		m.Update(t)
	}

	if l.modal != nil {
		if !l.modal.Update(in, t) {
			l.closeModal()
		}
		return
	}

	l.Player.Invulnerable = l.adminEnabled()
	// На тике QTE нажатия принадлежат проверке укрытия: E не должна еще и открыть шкаф.
	qte := l.Player.IsQTEActive()
	l.handlePlayerEvents(l.Player.Control(in, l, t))
	if !l.Player.IsDying() && !qte {
		if in.Pressed(domain.KeyInteract) {
			l.CheckInteractables(t.Now)
		}
		if in.Pressed(domain.KeyComms) && l.modal == nil {
			l.openModal(terminal.NewComms())
		}
	}
	if l.modal != nil {
		return
	}

	if systems.Collides(l.Player.Rect(), l.pop.Obstacles) {
		l.Player.RevertMove()
	}
	l.collectPickups()
	l.resolveContacts(t)
	l.updateMonsters(t)
	l.updateSpawner(t)
	l.checkDoor()
	if l.transition != "" {
		name := l.transition
		l.transition = ""
		l.LoadNextLevel(name)
		return
	}

	if l.Player.DeathFinished() {
		l.gameOver = true
		l.log.WithField("file", l.file).Info("Game over")
	}
}

// CheckInteractables обрабатывает нажатие E: срабатывает первый объект, касающийся игрока.
func (l *Level) CheckInteractables(now time.Duration) bool {
	pr := l.Player.Rect()
	ctx := &entities.Context{Player: l.Player, Now: now, Text: l.tr}
	for _, it := range l.interactables {
		if !it.Rect().Intersects(pr) {
			continue
		}
		// Из укрытия доступно только само укрытие.
		if l.Player.IsHiding() {
			if spot, ok := it.(entities.HidingSpot); !ok || spot != l.Player.HidingSpot() {
				continue
			}
		}
		l.processResult(it.Interact(ctx))
		return true
	}
	return false
}

// processResult выполняет то, что объект попросил сделать уровень.
func (l *Level) processResult(res entities.Result) {
	if res.Msg != "" {
		l.say(res.Msg, res.MsgType)
	}
	switch res.Event {
	case entities.EventOpenCodeTask:
		l.taskWasSolved = l.pop.CodeTask.IsSolved()
		l.openModal(terminal.NewCodeTaskModal(l.pop.CodeTask, l.adminEnabled))
	case entities.EventOpenChat:
		l.openModal(l.chat)
	case entities.EventSaveGame:
		l.saveAsync()
	case entities.EventDoorOpening:
		l.log.WithField("next_level", l.pop.Door.NextLevel).Debug("Door opening")
	}
}

func (l *Level) openModal(m terminal.Modal) {
	l.modal = m
	l.log.WithField("modal", m.Name()).Debug("Modal opened")
}

func (l *Level) closeModal() {
	name := l.modal.Name()
	l.modal = nil
	if task := l.pop.CodeTask; !l.taskWasSolved && task.IsSolved() {
		l.taskWasSolved = true
		if l.pop.CodeTerminal != nil {
			l.pop.CodeTerminal.MarkSolved()
		}
		l.say(terminal.MsgAllSolved, entities.MsgSystem)
	}
	l.log.WithField("modal", name).Debug("Modal closed")
}

func (l *Level) handlePlayerEvents(events []entities.PlayerEvent) {
	for _, ev := range events {
		switch ev {
		case entities.PlayerHid:
			l.say("You hide inside the shelf", entities.MsgInfo)
		case entities.PlayerUnhid:
			l.say("You leave the hiding spot", entities.MsgInfo)
		case entities.PlayerNoHidingSpot:
			l.say("There is nowhere to hide here", entities.MsgInfo)
		case entities.PlayerQTEStarted:
			l.say("Something is checking your hiding spot! Press %s!", entities.MsgDanger, l.Player.QTETarget().String())
		case entities.PlayerQTEPassed:
			l.say("It didn't notice you", entities.MsgInfo)
		case entities.PlayerQTEFailed, entities.PlayerQTETimeout:
			l.say("You've been discovered!", entities.MsgDanger)
			l.discoverNear()
		case entities.PlayerUsedItem:
			l.say("Used %s", entities.MsgInfo, l.Player.LastUsedItem().Name)
		case entities.PlayerNothingToUse:
			l.say("Your inventory is empty", entities.MsgInfo)
		}
	}
}

// discoverNear переводит в погоню всех монстров, способных проверить укрытие.
func (l *Level) discoverNear() {
	p := l.Player.Position()
	for _, i := range systems.WithinRadius(p, l.Monsters, l.cfg.Monster.HidingCheck) {
		if l.Monsters[i].PlayerDiscovered() {
			l.log.WithField("monster", l.Monsters[i].ID()).Info("Monster starts chasing the player")
		}
	}
}

func (l *Level) collectPickups() {
	pr := l.Player.Rect()
	kept := l.pickups[:0]
	for _, p := range l.pickups {
		if !p.Rect().Intersects(pr) {
			kept = append(kept, p)
			continue
		}
		if p.Collect(l.Player) {
			l.say("Picked up %s", entities.MsgInfo, p.Label())
			continue
		}
		kept = append(kept, p)
	}
	l.pickups = kept
}

// resolveContacts: каждый пересекающий игрока монстр бьет каждый тик,
// в том числе спрятавшегося игрока.
func (l *Level) resolveContacts(t domain.Tick) {
	if l.Player.IsDying() {
		return
	}
	pr := l.Player.Rect()
	for _, dmg := range systems.ContactHits(pr, l.Monsters) {
		if l.Player.TakeDamage(dmg, t.Now) {
			l.say("You died", entities.MsgDanger)
			l.log.WithField("health", l.Player.Health()).Info("Player died")
		}
	}
	for _, m := range l.Monsters {
		if m.Rect().Intersects(pr) {
			m.TryAttack(t.Now)
		}
	}
}

func (l *Level) updateMonsters(t domain.Tick) {
	target := systems.TargetView{
		Rect:   l.Player.Rect(),
		Hidden: l.Player.IsHiding(),
		Alive:  !l.Player.IsDying(),
		Noise:  l.Player.Noise(),
	}
	arena := systems.Arena{Bounds: l.bounds, NoiseThreshold: l.cfg.Monster.NoiseThreshold}

	alive := l.Monsters[:0]
	for _, m := range l.Monsters {
		if m.Expired(t.Now) {
			l.say("The creature retreats into the darkness", entities.MsgInfo)
			l.log.WithField("monster", m.ID()).Info("Monster despawned")
			continue
		}
		if act := m.Think(target, arena, t); act.Discover {
			l.say("It heard you!", entities.MsgDanger)
		}
		alive = append(alive, m)
	}
	l.Monsters = alive
}

func (l *Level) updateSpawner(t domain.Tick) {
	before := l.spawner.Phase()
	spawn, ok := l.spawner.Update(t.Now, len(l.Monsters), l.cfg.Flags().EnemiesEnabled)
	if before == SpawnIdle && l.spawner.Phase() == SpawnWarning {
		l.say("Something is coming...", entities.MsgWarning)
	}
	if !ok {
		return
	}
	m := dungeon.SpawnMonster(spawn, l.profiles, l.cfg.Monster, t.Now, l.rng)
	l.Monsters = append(l.Monsters, m)
	l.say("A creature has appeared!", entities.MsgDanger)
	l.log.WithFields(logrus.Fields{"monster": m.ID(), "kind": string(m.Kind())}).Info("Monster spawned")
}

// checkDoor откладывает переход до конца тика: Reset внутри обхода опасен.
func (l *Level) checkDoor() {
	d := l.pop.Door
	if d == nil || !d.IsOpen() || !d.Rect().Intersects(l.Player.Rect()) {
		return
	}
	if d.NextLevel == "" {
		l.LoadNextLevel("")
		return
	}
	l.transition = d.NextLevel
}

// --- PlayerEnv ---

func (l *Level) HidingSpotAt(r domain.Rect) entities.HidingSpot {
	for _, s := range l.pop.Shelves {
		if s.Rect().Intersects(r) {
			return s
		}
	}
	return nil
}

func (l *Level) ThreatNear(p domain.Vec2) bool {
	return systems.AnyWithin(p, l.Monsters, l.cfg.Monster.HidingCheck)
}

func (l *Level) InVerticalZone(p domain.Vec2) bool {
	for _, z := range l.pop.VerticalZones {
		if z.Contains(p) {
			return true
		}
	}
	return false
}

func (l *Level) Bounds() domain.Rect { return l.bounds }

var _ entities.PlayerEnv = (*Level)(nil)
