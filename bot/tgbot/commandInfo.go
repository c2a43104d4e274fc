package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/model"
	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/service"
)

type InfoCommand struct {
	ratingService *service.RatingService
}

func (c *InfoCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	fields := strings.Fields(args)
	if len(fields) < 1 {
		return errors.New(`player name goes in the same message, e.g. "/info alice"`)
	}
	standing, err := c.ratingService.GetByName(ctx, fields[0])
	if err != nil {
		return err
	}
	resp.Text = printStanding(standing)
	return nil
}

func (c *InfoCommand) Help() string {
	return `Player summary. Usage: /info and the player name.`
}

func printStanding(standing domain.Standing) string {
	var buf strings.Builder
	buf.WriteString("Player: ")
	buf.WriteString(standing.Entity)
	buf.WriteString("\n")
	buf.WriteString("Rank: ")
	buf.WriteString(prettifyRank(standing.Rank))
	buf.WriteString("\n")
	buf.WriteString("Rating: ")
	buf.WriteString(strconv.FormatFloat(standing.Rating, 'f', 1, 64))
	buf.WriteString("\n")
	buf.WriteString("Sets: ")
	buf.WriteString(strconv.Itoa(standing.SetWins))
	buf.WriteString("-")
	buf.WriteString(strconv.Itoa(standing.SetLosses))
	buf.WriteString("\n")
	buf.WriteString("Games: ")
	buf.WriteString(strconv.Itoa(standing.GameWins))
	buf.WriteString("-")
	buf.WriteString(strconv.Itoa(standing.GameLosses))
	return buf.String()
}

func prettifyRank(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return strconv.Itoa(rank)
}

func (c *InfoCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}

func (c *InfoCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator, model.RoleUser)
}
