package payload

import (
	"todoer/internal/core"

	"github.com/jellydator/validation"
)

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s SignInRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.Password, validation.Required),
	)
}

func (s SignInRequest) ToMessage() core.SignInMessage {
	return core.SignInMessage{
		Username: s.Username,
		Password: s.Password,
	}
}
