package payload

import (
	"regexp"

	"todoer/internal/core"

	"github.com/jellydator/validation"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type SignUpRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (s SignUpRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.Password, validation.Required),
		validation.Field(&s.FirstName, validation.Required),
		validation.Field(&s.LastName, validation.Required),
		validation.Field(&s.Email, validation.Required, validation.Match(emailRegex)),
	)
}

func (s SignUpRequest) ToMessage() core.SignUpMessage {
	return core.SignUpMessage{
		Username:  s.Username,
		Password:  s.Password,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
	}
}
