package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"space-horror/internal/domain"
	"space-horror/pkg/api"
	"space-horror/pkg/logger"
)

// AddLog добавляет сообщение в журнал уровня. Хранятся последние MaxLogHistory записей.
func (l *Level) AddLog(text, logType string) {
	l.Logs = append(l.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", l.tick, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	if over := len(l.Logs) - domain.MaxLogHistory; over > 0 {
		l.Logs = append(l.Logs[:0], l.Logs[over:]...)
	}
	logger.Log.WithFields(logrus.Fields{
		"level_file": l.file,
		"component":  "game_log",
		"log_type":   logType,
	}).Info(text)
}

// say переводит ключ и пишет его в журнал.
func (l *Level) say(key, logType string, vars ...interface{}) {
	l.AddLog(l.tr.Get(key, vars...), logType)
}
