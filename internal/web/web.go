package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"

	embedded "github.com/stonehenge-collective/ladderserver"
	authservice "github.com/stonehenge-collective/ladderserver/auth/service"
	"github.com/stonehenge-collective/ladderserver/auth/users"
	"github.com/stonehenge-collective/ladderserver/internal/config"
	"github.com/stonehenge-collective/ladderserver/internal/service"
	"github.com/stonehenge-collective/ladderserver/internal/web/webpath"
)

type Server struct {
	auth          *authservice.Service
	ratingService *service.RatingService
	app           *fiber.App
	cfg           config.Server
}

func New(rs *service.RatingService, cfg config.Server, authService *authservice.Service) (*Server, error) {
	server := Server{
		ratingService: rs,
		auth:          authService,
		cfg:           cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)
	engine.AddFunc("FormatRating", formatRating)
	engine.AddFunc("JoinNames", joinNames)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				c.Status(fiber.StatusUnauthorized)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return nil
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Get(webpath.Signin, server.HandleGetSignIn)
	app.Post(webpath.Signin, server.HandlePostSignIn)
	app.Get(webpath.Signup, server.HandleGetSignup)
	app.Post(webpath.Signup, server.HandlePostSignup)
	app.Get(webpath.Signout, server.HandleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Api)
	})

	app.Get(webpath.ApiHome, server.handleMain)
	app.Get(webpath.ApiDoubles, server.handleDoubles)
	app.Get(webpath.ApiDoublesPlayers, server.handleDoublesPlayers)
	app.Get(webpath.ApiMatchesList, server.handleMatches)
	app.Get(webpath.ApiNewMatch, server.handleCreateMatchGet)
	app.Post(webpath.ApiNewMatch, server.handleCreateMatchPost)
	app.Get(webpath.ApiGetPlayer, server.HandlePlayerInfo)
	app.Get(webpath.ApiPlayerHistory, server.HandlePlayerHistory)
	app.Get(webpath.ApiExport, server.handleExport)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

const userKey = "user"

func (s *Server) handleMain(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	standings, err := s.ratingService.SinglesLeaderboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("index", newData("Singles ladder").
		WithButton("rating").
		WithUser(user).
		With("Standings", standings), "layouts/main")
}

func (s *Server) handleDoubles(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	teams, _, err := s.ratingService.DoublesLeaderboards(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("doubles", newData("Doubles ladder").
		WithButton("doubles").
		WithUser(user).
		With("Standings", teams).
		With("Board", "teams"), "layouts/main")
}

func (s *Server) handleDoublesPlayers(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	_, players, err := s.ratingService.DoublesLeaderboards(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("doubles", newData("Doubles ladder, by player").
		WithButton("doubles").
		WithUser(user).
		With("Standings", players).
		With("Board", "players"), "layouts/main")
}

func (s *Server) handleMatches(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	matches, err := s.ratingService.Matches(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("matches", newData("Matches").
		WithButton("matches").
		WithUser(user).
		With("Matches", matches), "layouts/main")
}

func (s *Server) handleCreateMatchGet(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return ctx.Render("newMatch", newData("Record a match").
		WithUser(user), "layouts/main")
}

func (s *Server) handleCreateMatchPost(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	req := createMatch{
		Kind:    ctx.FormValue("kind", "singles"),
		PlayerA: ctx.FormValue("player-a"),
		PlayerB: ctx.FormValue("player-b"),
		Team1:   [2]string{ctx.FormValue("team1-a"), ctx.FormValue("team1-b")},
		Team2:   [2]string{ctx.FormValue("team2-a"), ctx.FormValue("team2-b")},
		Date:    ctx.FormValue("date"),
		Sets:    ctx.FormValue("sets"),
	}
	if err := req.Validate(); err != nil {
		return ctx.Render("newMatch", newData("Record a match").
			WithUser(user).
			WithErrors(err), "layouts/main")
	}
	m, err := req.convertToDomainMatch()
	if err != nil {
		return err
	}
	_, err = s.ratingService.CreateMatch(ctx.Context(), m)
	if err != nil {
		return ctx.Render("newMatch", newData("Record a match").
			WithUser(user).
			WithErrors(err), "layouts/main")
	}
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) HandlePlayerInfo(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	name := ctx.Params("name")
	history, err := s.ratingService.PlayerHistory(ctx.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	standing, err := s.ratingService.GetByName(ctx.Context(), name)
	if err != nil && !errors.Is(err, service.ErrPlayerNotFound) {
		return err
	}
	return ctx.Render("playerCard", newData(history.Player).
		WithButton("playerCard").
		WithUser(user).
		With("History", history).
		With("Standing", standing), "layouts/main")
}

// HandlePlayerHistory serves the raw per-set trajectory as JSON, the feed the
// rating charts are drawn from.
func (s *Server) HandlePlayerHistory(ctx *fiber.Ctx) error {
	history, err := s.ratingService.PlayerHistory(ctx.Context(), ctx.Params("name"))
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return ctx.JSON(history)
}

func (s *Server) handleExport(ctx *fiber.Ctx) error {
	board := service.Board(ctx.Params("board"))
	out, err := s.ratingService.ExportCSV(ctx.Context(), board)
	if err != nil {
		if errors.Is(err, service.ErrUnknownBoard) {
			return fiber.ErrNotFound
		}
		return err
	}
	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+string(board)+`.csv"`)
	return ctx.Send(out)
}

func (s *Server) HandleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData("Sign in"), "layouts/main")
}

func (s *Server) HandlePostSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return ctx.Render("signin", newData("Sign in").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Login(ctx.Context(), req.name, req.password)
	if err != nil {
		return ctx.Render("signin", newData("Sign in").
			WithErrors(errors.New("wrong username or password")), "layouts/main")
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.ApiHome)
}

func (s *Server) HandleGetSignup(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData("Sign up"), "layouts/main")
}

func (s *Server) HandlePostSignup(ctx *fiber.Ctx) error {
	req, err := parseSignUpRequest(ctx)
	if err != nil {
		return ctx.Render("signup", newData("Sign up").WithErrors(err), "layouts/main")
	}
	err = s.auth.SignUp(ctx.Context(), req.name, req.password)
	if err != nil {
		return ctx.Render("signup", newData("Sign up").WithErrors(err), "layouts/main")
	}
	return ctx.Redirect(webpath.Signin)
}

func (s *Server) HandleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.ApiHome)
}

func formatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', 1, 64)
}

func joinNames(names []string) string {
	return strings.Join(names, " / ")
}
