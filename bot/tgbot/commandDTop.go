package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/model"
	"github.com/stonehenge-collective/ladderserver/internal/service"
)

type DoublesTopCommand struct {
	ratingService *service.RatingService
}

func (c *DoublesTopCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	teams, players, err := c.ratingService.DoublesLeaderboards(ctx)
	if err != nil {
		return err
	}
	if args == "players" {
		resp.Text = printTop(players)
		return nil
	}
	resp.Text = printTop(teams)
	return nil
}

func (c *DoublesTopCommand) Help() string {
	return `Doubles ladder top 10. "/dtop players" ranks individual players instead of teams.`
}

func (c *DoublesTopCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *DoublesTopCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
