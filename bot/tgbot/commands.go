package tgbot

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/stonehenge-collective/ladderserver/bot/botstorage"
	"github.com/stonehenge-collective/ladderserver/bot/model"
	"github.com/stonehenge-collective/ladderserver/internal/service"
)

type Command interface {
	Run(ctx context.Context, user model.User, args string, resp *tgbotapi.MessageConfig) error
	Help() string
	Permission() mapset.Set[model.UserRole]
	Visibility() mapset.Set[model.UserRole]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(
	rs *service.RatingService,
	bs botstorage.BotStorage,
	adminPass string,
	subFn func(id int),
	unsubFn func(id int),
	sendNotifFn func(msg string),
) *Commands {
	hc := &HelpCommand{}
	uc := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"top": &TopCommand{
				ratingService: rs,
			},
			"dtop": &DoublesTopCommand{
				ratingService: rs,
			},
			"gtop": &Glicko2TopCommand{
				ratingService: rs,
			},
			"me": &MeCommand{
				ratingService: rs,
				botStorage:    bs,
			},
			"info": &InfoCommand{
				ratingService: rs,
			},
			"game": &NewGameCommand{
				ratingService: rs,
				notify:        sendNotifFn,
			},
			"role": &RoleCommand{
				adminPassword: adminPass,
				botStorage:    bs,
			},
			"sub": &SubCommand{
				botStorage: bs,
				sub:        subFn,
			},
			"unsub": &UnsubCommand{
				botStorage: bs,
				unsub:      unsubFn,
			},
		},
	}
	hc.commands = uc.list
	return &uc
}

func (uc *Commands) RunCommand(ctx context.Context, user model.User, cmd string, args string, resp *tgbotapi.MessageConfig) error {
	for s, command := range uc.list {
		if cmd == s {
			if command.Permission().Contains(user.Role) {
				return command.Run(ctx, user, args, resp)
			}
		}
	}
	return ErrBadRequest
}
