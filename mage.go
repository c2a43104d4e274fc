//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput       = "gen"
	jetBotOutput    = "bot/gen"
	jetAuthOutput   = "auth/gen"
	sqliteLadder    = "ladder.sqlite"
	sqliteBot       = "bot.sqlite"
	sqliteAuth      = "auth.sqlite"
	serverBin       = "./bin/server"
	certgenBin      = "./bin/certgen"
	lintTool        = "github.com/golangci/golangci-lint/cmd/golangci-lint@v1.52.2"
	jetTool         = "github.com/go-jet/jet/v2/cmd/jet@v2.9.0"
	testServerConf  = "test_configs/server.toml"
	testBotConf     = "test_configs/bot.toml"
	testAuthConf    = "test_configs/auth.toml"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the server and certgen binaries
func Build() error {
	mg.Deps(goModDownload)
	if err := sh.Run("go", "build", "-o", serverBin, "cmd/main.go"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", certgenBin, "cmd/certgen/main.go")
}

// Run starts the server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// GenJet regenerates the jet models from the sqlite schemas
func GenJet() error {
	if err := sh.Run("go", "run", jetTool, "-source", "sqlite", "-dsn", sqliteLadder, "-path", jetOutput); err != nil {
		return err
	}
	if err := sh.Run("go", "run", jetTool, "-source", "sqlite", "-dsn", sqliteAuth, "-path", jetAuthOutput); err != nil {
		return err
	}
	return sh.Run("go", "run", jetTool, "-source", "sqlite", "-dsn", sqliteBot, "-path", jetBotOutput)
}

func Lint() error {
	return sh.Run("go", "run", lintTool, "run", "./...")
}

func Test() error {
	return sh.Run("go", "test", "./...")
}

// AutoTest builds the server and drives it through the browser suite
func AutoTest() error {
	mg.Deps(Build)
	if err := os.Chdir("tests"); err != nil {
		return err
	}
	return sh.Run(
		"go", "test", "-v",
		"-server-config", testServerConf,
		"-bot-config", testBotConf,
		"-auth-config", testAuthConf,
		"./...",
	)
}
