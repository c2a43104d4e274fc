package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	authservice "github.com/stonehenge-collective/ladderserver/auth/service"
	authsqlite "github.com/stonehenge-collective/ladderserver/auth/storage/sqlite"
	botsqlite "github.com/stonehenge-collective/ladderserver/bot/botstorage/sqlite"
	"github.com/stonehenge-collective/ladderserver/bot/tgbot"
	"github.com/stonehenge-collective/ladderserver/internal/config"
	"github.com/stonehenge-collective/ladderserver/internal/logger"
	"github.com/stonehenge-collective/ladderserver/internal/service"
	"github.com/stonehenge-collective/ladderserver/internal/storage"
	"github.com/stonehenge-collective/ladderserver/internal/storage/matchdir"
	"github.com/stonehenge-collective/ladderserver/internal/storage/sqlite"
	"github.com/stonehenge-collective/ladderserver/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath string
	var botConfigPath string
	var authConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "path to bot configs")
	flag.StringVar(&authConfigPath, "auth-config", "configs/auth.toml", "path to auth configs")
	flag.Parse()

	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	var source storage.MatchSource
	switch cfg.Server.Source {
	case config.SourceDir:
		source = matchdir.New(log, cfg.Server.SinglesDir, cfg.Server.DoublesDir)
	case config.SourceSqlite:
		source, err = sqlite.New(log, cfg.Server.SqliteFile)
		if err != nil {
			return err
		}
	}
	ratingService := service.New(log, source)

	ctx := context.Background()
	authCfg, err := authservice.NewConfig(authConfigPath)
	if err != nil {
		return err
	}
	authStorage, err := authsqlite.New(log, authCfg.SqliteFile)
	if err != nil {
		return err
	}
	authService, err := authservice.New(ctx, authCfg, authStorage)
	if err != nil {
		return err
	}

	if cfg.TgBot.Enabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(ratingService, botStorage, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(ratingService, cfg.Server, authService)
	if err != nil {
		return err
	}
	log.WithField("host", cfg.Server.Host).WithField("port", cfg.Server.Port).Info("starting server")
	return server.Serve()
}
