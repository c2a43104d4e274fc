package sqlite

import (
	"database/sql"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"

	"github.com/stonehenge-collective/ladderserver/bot/botstorage"
	dbmodel "github.com/stonehenge-collective/ladderserver/bot/gen/model"
	"github.com/stonehenge-collective/ladderserver/bot/gen/table"
	"github.com/stonehenge-collective/ladderserver/bot/model"
	"github.com/stonehenge-collective/ladderserver/internal/config"
	sqlite3 "github.com/stonehenge-collective/ladderserver/internal/migrate"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "bot-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	var dbuser dbmodel.Users
	err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		RETURNING(table.Users.AllColumns).
		Query(s.db, &dbuser)
	if err != nil {
		return model.User{}, err
	}
	return convertUserToDomain(dbuser), nil
}

type getUserModel struct {
	dbmodel.Users
	UserEvents []dbmodel.UserEvents
}

func (s *Storage) GetUser(id int) (model.User, error) {
	var dest getUserModel
	err := table.Users.
		SELECT(table.Users.AllColumns, table.UserEvents.AllColumns).
		FROM(table.Users.
			LEFT_JOIN(table.UserEvents, table.UserEvents.UserID.EQ(table.Users.ID)),
		).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(id)))).
		Query(s.db, &dest)
	if err != nil {
		return model.User{}, err
	}
	return convertGetUserModelToDomain(dest), nil
}

func (s *Storage) ListUsers() ([]model.User, error) {
	var dest []getUserModel
	err := table.Users.
		SELECT(table.Users.AllColumns, table.UserEvents.AllColumns).
		FROM(table.Users.
			LEFT_JOIN(table.UserEvents, table.UserEvents.UserID.EQ(table.Users.ID)),
		).
		Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	converted := make([]model.User, 0, len(dest))
	for i := range dest {
		converted = append(converted, convertGetUserModelToDomain(dest[i]))
	}
	return converted, nil
}

func (s *Storage) UpdateUserRole(user model.User) error {
	_, err := table.Users.
		UPDATE(table.Users.Role, table.Users.UpdatedAt).
		SET(int(user.Role), time.Now()).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(user.ID)))).
		Exec(s.db)
	return err
}

func (s *Storage) LinkPlayer(user model.User, playerName string) error {
	_, err := table.Users.
		UPDATE(table.Users.PlayerName, table.Users.UpdatedAt).
		SET(playerName, time.Now()).
		WHERE(table.Users.ID.EQ(sqlite.Int(int64(user.ID)))).
		Exec(s.db)
	return err
}

func (s *Storage) Subscribe(user model.User) error {
	userEvents := dbmodel.UserEvents{
		UserID: int32(user.ID),
		Event:  string(model.NewMatch),
	}
	_, err := table.UserEvents.
		INSERT(table.UserEvents.AllColumns).
		MODEL(userEvents).
		Exec(s.db)
	if err != nil {
		if strings.HasPrefix(err.Error(), "UNIQUE constraint failed") {
			return nil
		}
		return err
	}
	return nil
}

func (s *Storage) Unsubscribe(user model.User) error {
	_, err := table.UserEvents.
		DELETE().
		WHERE(
			table.UserEvents.UserID.EQ(sqlite.Int(int64(user.ID))).
				AND(table.UserEvents.Event.EQ(sqlite.String(string(model.NewMatch)))),
		).Exec(s.db)
	return err
}

func (s *Storage) Log(user model.User, msg string) error {
	message := dbmodel.MessageLog{
		UserID:    int32(user.ID),
		Text:      msg,
		CreatedAt: time.Now(),
	}
	_, err := table.MessageLog.
		INSERT(table.MessageLog.UserID, table.MessageLog.Text, table.MessageLog.CreatedAt).
		MODEL(message).
		Exec(s.db)
	return err
}

func convertUserFromDomain(user model.User) dbmodel.Users {
	return dbmodel.Users{
		ID:         int32(user.ID),
		FirstName:  user.FirstName,
		Username:   user.Username,
		PlayerName: user.PlayerName,
		Role:       int32(model.RoleUser),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func convertUserToDomain(user dbmodel.Users) model.User {
	return model.User{
		ID:         int(user.ID),
		FirstName:  user.FirstName,
		Username:   user.Username,
		PlayerName: user.PlayerName,
		Role:       model.UserRole(user.Role),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func convertGetUserModelToDomain(user getUserModel) model.User {
	converted := convertUserToDomain(user.Users)
	for i := range user.UserEvents {
		converted.Subscriptions = append(converted.Subscriptions, model.EventType(user.UserEvents[i].Event))
	}
	return converted
}
