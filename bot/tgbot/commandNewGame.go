package tgbot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/model"
	"github.com/stonehenge-collective/ladderserver/internal/domain"
	"github.com/stonehenge-collective/ladderserver/internal/normalize"
	"github.com/stonehenge-collective/ladderserver/internal/service"
)

type NewGameCommand struct {
	ratingService *service.RatingService
	notify        func(msg string)
}

var errGameUsage = errors.New(`usage: "/game alice bob 6-4 7-5"`)

func (c *NewGameCommand) Run(ctx context.Context, _ model.User, args string, resp *tgbotapi.MessageConfig) error {
	resp.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	m, err := parseGame(args)
	if err != nil {
		return err
	}
	created, err := c.ratingService.CreateMatch(ctx, m)
	if err != nil {
		return err
	}
	scores := make([]string, 0, len(created.Sets))
	for _, set := range created.Sets {
		scores = append(scores, set.Score())
	}
	text := "new match: " + created.PlayerA + " vs " + created.PlayerB + " " + strings.Join(scores, " ")
	c.notify(text)
	resp.Text = text
	return nil
}

func (c *NewGameCommand) Help() string {
	return `Record a singles match: /game, both player names, then the set scores.`
}

func parseGame(args string) (domain.Match, error) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		return domain.Match{}, errGameUsage
	}
	m := domain.Match{
		Kind:    domain.KindSingles,
		Date:    time.Now(),
		PlayerA: normalize.Name(fields[0]),
		PlayerB: normalize.Name(fields[1]),
	}
	for _, score := range fields[2:] {
		a, b, ok := strings.Cut(score, "-")
		if !ok {
			return domain.Match{}, errGameUsage
		}
		gamesA, err := strconv.Atoi(a)
		if err != nil || gamesA < 0 {
			return domain.Match{}, errGameUsage
		}
		gamesB, err := strconv.Atoi(b)
		if err != nil || gamesB < 0 {
			return domain.Match{}, errGameUsage
		}
		m.Sets = append(m.Sets, domain.Set{GamesA: gamesA, GamesB: gamesB})
	}
	return m, nil
}

func (c *NewGameCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}

func (c *NewGameCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleModerator)
}
