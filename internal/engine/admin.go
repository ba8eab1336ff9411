package engine

import (
	"fmt"

	"space-horror/internal/domain"
	"space-horror/internal/entities"
	"space-horror/internal/terminal"
	"space-horror/pkg/api"
	"space-horror/pkg/dungeon"
)

// adminHandlers - чит-команды администратора. Каждая возвращает Result, как объекты уровня.
var adminHandlers = map[string]func(l *Level, cmd api.AdminCommand, t domain.Tick) entities.Result{
	api.AdminHeal:     handleHeal,
	api.AdminTeleport: handleTeleport,
	api.AdminSpawn:    handleSpawn,
	api.AdminKill:     handleKill,
	api.AdminSolve:    handleSolve,
	api.AdminGive:     handleGive,
}

// drainCommands выполняет очередь команд в тике, чтобы сервер не трогал уровень из своей горутины.
func (l *Level) drainCommands(t domain.Tick) {
	for {
		select {
		case cmd := <-l.Commands:
			l.processResult(l.ExecAdmin(cmd, t))
		default:
			return
		}
	}
}

// ExecAdmin выполняет одну команду. Вне режима администратора команды отклоняются.
func (l *Level) ExecAdmin(cmd api.AdminCommand, t domain.Tick) entities.Result {
	if !l.adminEnabled() {
		return entities.Result{Msg: "Admin mode is off", MsgType: entities.MsgWarning}
	}
	if err := cmd.Validate(); err != nil {
		return entities.Result{Msg: fmt.Sprintf("Admin command rejected: %v", err), MsgType: entities.MsgWarning}
	}
	l.log.WithField("action", cmd.Action).Info("Admin command")
	return adminHandlers[cmd.Action](l, cmd, t)
}

func handleHeal(l *Level, _ api.AdminCommand, _ domain.Tick) entities.Result {
	l.Player.SetHealth(l.Player.MaxHealth())
	l.Player.SetStamina(l.cfg.Player.MaxStamina)
	return entities.Result{Msg: "Fully healed", MsgType: entities.MsgSystem}
}

func handleTeleport(l *Level, cmd api.AdminCommand, _ domain.Tick) entities.Result {
	l.Player.MoveTo(domain.Vec2{X: cmd.X, Y: cmd.Y})
	return entities.Result{Msg: "Teleported", MsgType: entities.MsgSystem}
}

// handleSpawn выпускает монстра рядом с игроком в обход планировщика.
func handleSpawn(l *Level, cmd api.AdminCommand, t domain.Tick) entities.Result {
	if _, err := dungeon.ParseMonsterKind(cmd.Kind); err != nil {
		return entities.Result{Msg: "Unknown monster kind", MsgType: entities.MsgWarning}
	}
	p := l.Player.Position()
	spawn := dungeon.MonsterSpawn{Type: cmd.Kind, X: p.X + 200, Y: l.Player.Rect().Top()}
	if spawn.X > l.bounds.Right()-domain.PlayerWidth*domain.MonsterScaleW {
		spawn.X = p.X - 300
	}
	m := dungeon.SpawnMonster(spawn, l.profiles, l.cfg.Monster, t.Now, l.rng)
	l.Monsters = append(l.Monsters, m)
	return entities.Result{Msg: "A creature has appeared!", MsgType: entities.MsgDanger}
}

func handleKill(l *Level, _ api.AdminCommand, _ domain.Tick) entities.Result {
	n := len(l.Monsters)
	l.Monsters = nil
	if n == 0 {
		return entities.Result{Msg: "No creatures to remove", MsgType: entities.MsgInfo}
	}
	return entities.Result{Msg: "Creatures removed", MsgType: entities.MsgSystem}
}

// handleSolve закрывает все задачи терминала, открывая дверь.
func handleSolve(l *Level, _ api.AdminCommand, _ domain.Tick) entities.Result {
	if l.pop.CodeTerminal == nil {
		return entities.Result{Msg: "There is no code terminal here", MsgType: entities.MsgInfo}
	}
	l.pop.CodeTask.MarkSolved()
	l.pop.CodeTerminal.MarkSolved()
	l.taskWasSolved = true
	return entities.Result{Msg: terminal.MsgAllSolved, MsgType: entities.MsgSystem}
}

func handleGive(l *Level, cmd api.AdminCommand, _ domain.Tick) entities.Result {
	tmpl, ok := dungeon.ItemTemplates[cmd.Kind]
	if !ok {
		return entities.Result{Msg: "Unknown item kind", MsgType: entities.MsgWarning}
	}
	if !l.Player.AddToInventory(tmpl.Item()) {
		return entities.Result{Msg: "Inventory is full", MsgType: entities.MsgWarning}
	}
	return entities.Result{Msg: "Spawned item", MsgType: entities.MsgSystem}
}
