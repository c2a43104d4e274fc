package tgbot

import (
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/botstorage"
	"github.com/stonehenge-collective/ladderserver/bot/model"
	"github.com/stonehenge-collective/ladderserver/internal/normalize"
	"github.com/stonehenge-collective/ladderserver/internal/service"
)

type MeCommand struct {
	ratingService *service.RatingService
	botStorage    botstorage.BotStorage
}

func (c *MeCommand) Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if args == "" {
		text, err := c.processMe(ctx, user)
		if err != nil {
			return err
		}
		resp.Text = text
		return nil
	}
	text, err := c.connectMe(ctx, user, args)
	if err != nil {
		return err
	}
	resp.Text = text
	return nil
}

func (c *MeCommand) Help() string {
	return `Your linked player's summary. "/me alice" links the player first.`
}

func (c *MeCommand) processMe(ctx context.Context, user model.User) (string, error) {
	if user.PlayerName == "" {
		return "", errors.New(`no player linked yet, link one with "/me" and your ladder name`)
	}
	standing, err := c.ratingService.GetByName(ctx, user.PlayerName)
	if err != nil {
		return "", err
	}
	return printStanding(standing), nil
}

func (c *MeCommand) connectMe(ctx context.Context, user model.User, playerName string) (string, error) {
	standing, err := c.ratingService.GetByName(ctx, playerName)
	if err != nil {
		return "", err
	}
	err = c.botStorage.LinkPlayer(user, normalize.Name(playerName))
	if err != nil {
		return "", err
	}
	return "player " + standing.Entity + " linked, /me now shows their summary", nil
}

func (c *MeCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *MeCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
