package service

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	SqliteFile     string `toml:"sqlite_file"`
	Token          string `toml:"token"`
	Expiration     string `toml:"expiration"`
	RootPassword   string `toml:"root_password"`
	PasswordPepper string `toml:"password_pepper"`
	Rules          []Rule `toml:"rules"`
}

type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
}

func NewConfig(path string) (Config, error) {
	cfg := defaultConfig()
	file, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read auth config: %w", err)
	}
	if err := toml.Unmarshal(file, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse auth config: %w", err)
	}
	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		SqliteFile: "auth.sqlite",
		Expiration: "24h",
	}
}
