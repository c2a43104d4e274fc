package webpath

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"

	Api               = "/api"
	ApiHome           = Api + Home
	ApiDoubles        = Api + "/doubles"
	ApiDoublesPlayers = Api + "/doubles-players"
	ApiMatchesList    = Api + "/matches-list"
	ApiNewMatch       = Api + "/matches"
	ApiGetPlayer      = Api + "/players/:name"
	ApiPlayerHistory  = Api + "/players/:name/history"
	ApiExport         = Api + "/export/:board"
)

func Path() map[string]string {
	return map[string]string{
		"SignUp":            Signup,
		"SignIn":            Signin,
		"SignOut":           Signout,
		"Home":              Home,
		"Api":               Api,
		"ApiHome":           ApiHome,
		"ApiDoubles":        ApiDoubles,
		"ApiDoublesPlayers": ApiDoublesPlayers,
		"ApiNewMatch":       ApiNewMatch,
		"ApiMatches":        ApiMatchesList,
	}
}
