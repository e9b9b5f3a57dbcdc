package account

import "errors"

// ExpertiseTags is the fixed vocabulary users can self-select from.
var ExpertiseTags = []string{
	"Computer Science",
	"Engineering",
	"Political",
	"Art & Design",
	"Business",
	"Psychology",
	"Media & Communication",
	"Law",
	"Education",
	"History",
}

var (
	ErrNameTaken    = errors.New("name already taken")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidTag   = errors.New("unknown expertise tag")
)

type UpdateProfileDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SetExpertiseTagsDTO struct {
	Tags []string `json:"tags" binding:"required"`
}

// auth0LogEvent is one entry of the log-stream webhook payload.
// Only "sdu" (successful user deletion) events are acted on.
type auth0LogEvent struct {
	Data struct {
		Type     string `json:"type"`
		UserID   string `json:"user_id"`
		UserName string `json:"user_name"`
	} `json:"data"`
}
