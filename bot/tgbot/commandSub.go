package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/botstorage"
	"github.com/stonehenge-collective/ladderserver/bot/model"
)

type SubCommand struct {
	botStorage botstorage.BotStorage
	sub        func(int)
}

func (c *SubCommand) Run(_ context.Context, user model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	err := c.botStorage.Subscribe(user)
	if err != nil {
		return err
	}
	c.sub(user.ID)
	resp.Text = "subscribed, /unsub stops the notifications"
	return nil
}

func (c *SubCommand) Help() string {
	return `Subscribe to new match notifications`
}

func (c *SubCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *SubCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
