package sel

const (
	PageTitle = ".page-title"

	NewMatchFormSets   = "#new-match-form-sets"
	NewMatchFormSubmit = "#new-match-form-submit"

	SignInFormUsername = "#username-field"
	SignInFormPass     = "#password-field"
	SignInFormSubmit   = "#signin-form-submit"
)
