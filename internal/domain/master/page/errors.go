package page

import "errors"

var (
	ErrPageNotFound  = errors.New("page not found")
	ErrPageKeyExists = errors.New("page with this key already exists")
	ErrTeamNotFound  = errors.New("team for page not found")
)
