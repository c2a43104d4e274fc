package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/botstorage"
	"github.com/stonehenge-collective/ladderserver/bot/model"
)

type UnsubCommand struct {
	botStorage botstorage.BotStorage
	unsub      func(int)
}

func (c *UnsubCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	err := c.botStorage.Unsubscribe(user)
	if err != nil {
		return err
	}
	c.unsub(user.ID)
	resp.Text = "unsubscribed, /sub turns the notifications back on"
	return nil
}

func (c *UnsubCommand) Help() string {
	return `Unsubscribe from notifications`
}

func (c *UnsubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *UnsubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
