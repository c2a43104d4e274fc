package tgbot

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/model"
)

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(_ context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	for s, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		if args == s {
			resp.Text = command.Help()
			return nil
		}
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for commandName, command := range c.commands {
		if !command.Visibility().Contains(user.Role) {
			continue
		}
		b.WriteString("/")
		b.WriteString(commandName)
		b.WriteString("\n")
	}
	b.WriteString("Details with /help and a command name")
	resp.Text = b.String()
	return nil
}

func (c *HelpCommand) Help() string {
	return "Lists the available commands"
}

func (c *HelpCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *HelpCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
