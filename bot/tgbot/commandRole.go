package tgbot

import (
	"context"
	"errors"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/botstorage"
	"github.com/stonehenge-collective/ladderserver/bot/model"
)

type RoleCommand struct {
	adminPassword string
	botStorage    botstorage.BotStorage
}

func (c *RoleCommand) Run(_ context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	text, err := c.handleRole(user, args)
	if err != nil {
		return err
	}
	resp.Text = text
	return nil
}

func (c *RoleCommand) Help() string {
	return `Change own role. Usage: /role user or /role admin <pass>`
}

func (c *RoleCommand) handleRole(user model.User, args string) (string, error) {
	a := strings.SplitN(args, " ", 2)
	switch a[0] {
	case "admin":
		if user.Role == model.RoleAdmin {
			return "", errors.New("role already set")
		}
		if len(a) != 2 {
			return "", ErrBadRequest
		}
		if a[1] != c.adminPassword { // wrong admin password
			return "", ErrBadRequest
		}
		user.Role = model.RoleAdmin
	case "user":
		if user.Role == model.RoleUser {
			return "", errors.New("role already set")
		}
		user.Role = model.RoleUser
	default:
		return "", ErrBadRequest
	}
	err := c.botStorage.UpdateUserRole(user)
	if err != nil {
		return "", err
	}
	return "role updated", nil
}

func (c *RoleCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *RoleCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}
