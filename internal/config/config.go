package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	// SourceDir replays yaml match files from the configured dirs.
	SourceDir = "dir"
	// SourceSqlite replays matches recorded in the sqlite store.
	SourceSqlite = "sqlite"
)

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	Source     string `toml:"source"`
	SqliteFile string `toml:"sqlite_file"`
	SinglesDir string `toml:"singles_dir"`
	DoublesDir string `toml:"doubles_dir"`
}

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramAPIToken string `toml:"telegram_api_token"`
	SqliteFile       string `toml:"sqlite_file"`
	AdminPass        string `toml:"admin_pass"`
}

type Config struct {
	Server Server
	TgBot  TgBot
}

func New(serverPath, botPath string) (Config, error) {
	serverCfg := Server{
		Host:       "localhost",
		Port:       3000,
		Source:     SourceDir,
		SqliteFile: "ladder.sqlite",
		SinglesDir: "singles-matches",
		DoublesDir: "doubles-matches",
	}
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, fmt.Errorf("server config: %w", err)
	}
	switch serverCfg.Source {
	case SourceDir, SourceSqlite:
	default:
		return Config{}, fmt.Errorf("server config: unknown source %q", serverCfg.Source)
	}

	var botCfg TgBot
	_, err = toml.DecodeFile(botPath, &botCfg)
	if err != nil {
		return Config{}, fmt.Errorf("bot config: %w", err)
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		botCfg.TelegramAPIToken = token
	}

	return Config{
		Server: serverCfg,
		TgBot:  botCfg,
	}, nil
}
