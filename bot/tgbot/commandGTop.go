package tgbot

import (
	"context"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/model"
	"github.com/stonehenge-collective/ladderserver/internal/service"
)

type Glicko2TopCommand struct {
	ratingService *service.RatingService
}

func (c *Glicko2TopCommand) Run(ctx context.Context, _ model.User, _ string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	ratings, err := c.ratingService.Glicko2Top(ctx)
	if err != nil {
		return err
	}
	var buffer strings.Builder
	for i := range ratings {
		if i > 9 {
			break
		}
		buffer.WriteString(strconv.Itoa(i + 1))
		buffer.WriteString(". ")
		buffer.WriteString(ratings[i].Player)
		buffer.WriteString(" - ")
		buffer.WriteString(strconv.Itoa(int(ratings[i].Rating)))
		buffer.WriteString(" (")
		buffer.WriteString(strconv.Itoa(int(ratings[i].Interval.Min)))
		buffer.WriteString("-")
		buffer.WriteString(strconv.Itoa(int(ratings[i].Interval.Max)))
		buffer.WriteString(")\n")
	}
	if buffer.Len() == 0 {
		buffer.WriteString("no matches recorded yet")
	}
	resp.Text = buffer.String()
	return nil
}

func (c *Glicko2TopCommand) Help() string {
	return `Singles top 10 by Glicko2 rating (beta)`
}

func (c *Glicko2TopCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *Glicko2TopCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}
