package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/stonehenge-collective/ladderserver/auth/gen/model"
	"github.com/stonehenge-collective/ladderserver/auth/gen/table"
	"github.com/stonehenge-collective/ladderserver/auth/storage"
	"github.com/stonehenge-collective/ladderserver/auth/users"
	sqlite3 "github.com/stonehenge-collective/ladderserver/internal/migrate"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.AuthStorage = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "auth-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpAuthDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("auth storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (users.User, error) {
	var dest struct {
		model.Users
		UserRoles []model.UserRoles
	}
	err := table.Users.
		SELECT(
			table.Users.AllColumns.Except(
				table.Users.PasswordHash,
				table.Users.PasswordSalt,
			),
			table.UserRoles.AllColumns,
		).
		FROM(table.Users.INNER_JOIN(table.UserRoles, table.UserRoles.UserID.EQ(table.Users.ID))).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String())).
			AND(table.Users.DeletedAt.IS_NULL())).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToDomain(dest.Users, dest.UserRoles)
}

func (s *Storage) GetUserSecret(ctx context.Context, user users.User) (users.Secret, error) {
	var where sqlite.BoolExpression
	switch {
	case user.ID != uuid.Nil:
		where = table.Users.ID.EQ(sqlite.String(user.ID.String()))
	case user.Name != "":
		where = table.Users.Username.EQ(sqlite.String(user.Name))
	default:
		return users.Secret{}, errors.New("empty user")
	}

	var dbUser model.Users
	err := table.Users.
		SELECT(
			table.Users.PasswordHash,
			table.Users.PasswordSalt,
		).
		FROM(table.Users).
		WHERE(where).QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.Secret{}, sql.ErrNoRows
		}
		return users.Secret{}, err
	}
	hash, err := hex.DecodeString(dbUser.PasswordHash)
	if err != nil {
		return users.Secret{}, err
	}
	salt, err := hex.DecodeString(dbUser.PasswordSalt)
	if err != nil {
		return users.Secret{}, err
	}
	return users.Secret{
		PasswordHash: hash,
		Salt:         salt,
	}, nil
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, secret users.Secret) error {
	dbUser := model.Users{
		ID:           user.ID.String(),
		Username:     user.Name,
		PasswordHash: hex.EncodeToString(secret.PasswordHash),
		PasswordSalt: hex.EncodeToString(secret.Salt),
		CreatedAt:    time.Now(),
	}
	_, err := table.Users.INSERT(table.Users.MutableColumns, table.Users.ID).
		MODEL(dbUser).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	for _, role := range user.Roles {
		roleDB, ok := roleIDs[role]
		if !ok {
			continue
		}
		userRoleDB := model.UserRoles{
			UserID: user.ID.String(),
			RoleID: roleDB,
		}
		_, err = table.UserRoles.INSERT(table.UserRoles.AllColumns).MODEL(userRoleDB).ExecContext(ctx, s.db)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) SignIn(ctx context.Context, name string, passwordHash []byte) (users.User, error) {
	var dest struct {
		model.Users
		UserRoles []model.UserRoles
	}
	err := table.Users.
		SELECT(
			table.Users.AllColumns.Except(
				table.Users.PasswordHash,
				table.Users.PasswordSalt,
			),
			table.UserRoles.AllColumns,
		).
		FROM(table.Users.INNER_JOIN(table.UserRoles, table.UserRoles.UserID.EQ(table.Users.ID))).
		WHERE(
			table.Users.Username.EQ(sqlite.String(name)).
				AND(table.Users.DeletedAt.IS_NULL()).
				AND(table.Users.PasswordHash.EQ(sqlite.String(hex.EncodeToString(passwordHash)))),
		).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToDomain(dest.Users, dest.UserRoles)
}

var roleIDs = map[string]int32{
	"admin": 1,
	"user":  2,
}

var roleNames = map[int32]string{
	1: "admin",
	2: "user",
}

func convertUserToDomain(user model.Users, roles []model.UserRoles) (users.User, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return users.User{}, err
	}
	u := users.User{
		ID:           id,
		Name:         user.Username,
		Roles:        []string{},
		RegisteredAt: user.CreatedAt,
	}
	for _, role := range roles {
		if name, ok := roleNames[role.RoleID]; ok {
			u.Roles = append(u.Roles, name)
		}
	}
	return u, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}
