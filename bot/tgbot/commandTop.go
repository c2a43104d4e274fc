package tgbot

import (
	"context"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/model"
	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/service"
)

type TopCommand struct {
	ratingService *service.RatingService
}

func (c *TopCommand) Run(ctx context.Context, _ model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	standings, err := c.ratingService.SinglesLeaderboard(ctx)
	if err != nil {
		return err
	}
	resp.Text = printTop(standings)
	return nil
}

func (c *TopCommand) Help() string {
	return `Singles ladder top 10`
}

func (c *TopCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *TopCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func printTop(standings []domain.Standing) string {
	var buffer strings.Builder
	for i := range standings {
		if i > 9 {
			break
		}
		buffer.WriteString(strconv.Itoa(standings[i].Rank))
		buffer.WriteString(". ")
		buffer.WriteString(standings[i].Entity)
		buffer.WriteString(" (")
		buffer.WriteString(strconv.FormatFloat(standings[i].Rating, 'f', 1, 64))
		buffer.WriteString(")\n")
	}
	if buffer.Len() == 0 {
		return "no matches recorded yet"
	}
	return buffer.String()
}
