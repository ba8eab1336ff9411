package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"space-horror/internal/config"
	"space-horror/internal/engine"
	"space-horror/internal/i18n"
	"space-horror/internal/infrastructure/ai"
	"space-horror/internal/infrastructure/storage"
	"space-horror/internal/network"
	"space-horror/internal/render"
	"space-horror/internal/server"
	"space-horror/internal/terminal"
	"space-horror/internal/version"
	"space-horror/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var cfgPath string
	var seed int64
	flag.StringVar(&cfgPath, "config", config.PathFromEnv(), "Path to config.yaml")
	flag.Int64Var(&seed, "seed", 0, "Level RNG seed (0 for random)")
	flag.Parse()

	logger.Log.Info("Starting Space Horror...")
	logger.Log.Info(version.String())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := engine.Dependencies{
		Config: cfg,
		Text:   i18n.Load(cfg.Lang()),
	}

	// Собеседник и генератор истории. Без ключа терминал отвечает "unavailable".
	var responder terminal.Responder
	client, err := ai.New(cfg.AI)
	switch {
	case errors.Is(err, ai.ErrNoAPIKey):
		logger.Log.Warnf("%s is not set, AI terminal and story generation are disabled", cfg.AI.APIKeyEnv)
	case err != nil:
		logger.Log.WithError(err).Warn("AI client unavailable")
	default:
		responder = client
		deps.Story = client
	}
	deps.Responder = responder

	store, err := storage.Open(cfg.SaveDB)
	if err != nil {
		logger.Log.WithError(err).Warn("Save storage unavailable, saving is disabled")
	} else {
		defer store.Close()
		deps.Saves = store
	}

	hub := network.NewBroadcaster()
	deps.Publisher = hub
	game := engine.NewGame(deps)

	if cfg.DebugAddr != "" {
		srv := server.New(hub, game.Level.Commands, cfg.DebugAddr)
		go func() {
			if err := srv.Run(ctx); err != nil {
				logger.Log.WithError(err).Error("Debug server stopped")
			}
		}()
	}

	if _, err := render.PlayMusic(cfg.MusicFile); err != nil {
		logger.Log.WithError(err).Warn("Music disabled")
	}

	runner, err := render.NewRunner(game, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to init renderer")
	}
	go func() {
		<-ctx.Done()
		logger.Log.Info("Shutting down...")
		runner.Stop()
	}()
	if err := runner.Run(cfg); err != nil {
		logger.Log.WithError(err).Fatal("Game crashed")
	}
	logger.Log.Info("Bye")
}
