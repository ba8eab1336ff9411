package api

import (
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (m ClientMessage) Validate() error {
	switch m.Action {
	case ActionSubscribe, ActionPing:
		return nil
	case "":
		return errors.New("action is required")
	default:
		return fmt.Errorf("unknown action %q", m.Action)
	}
}

func (s Snapshot) Validate() error {
	if s.Type != SnapshotType {
		return fmt.Errorf("unexpected snapshot type %q", s.Type)
	}
	if s.Player.MaxHealth <= 0 {
		return errors.New("player max health must be positive")
	}
	return nil
}

func (c AdminCommand) Validate() error {
	switch c.Action {
	case AdminHeal, AdminKill, AdminSolve:
		return nil
	case AdminTeleport:
		if c.X < 0 || c.Y < 0 {
			return errors.New("teleport target must be on screen")
		}
		return nil
	case AdminSpawn, AdminGive:
		if c.Kind == "" {
			return fmt.Errorf("%s requires kind", c.Action)
		}
		return nil
	case "":
		return errors.New("action is required")
	default:
		return fmt.Errorf("unknown admin action %q", c.Action)
	}
}
