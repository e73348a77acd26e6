package payload

import (
	"github.com/jellydator/validation"
)

type AddTodoRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

func (a AddTodoRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.UserID, validation.Required),
		validation.Field(&a.Content, validation.Required),
	)
}

type DeleteTodoRequest struct {
	UserID string `json:"userId"`
	TodoID int64  `json:"todoId"`
}

func (d DeleteTodoRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.UserID, validation.Required),
		validation.Field(&d.TodoID, validation.Required),
	)
}

type EditTodoRequest struct {
	UserID  string `json:"userId"`
	TodoID  int64  `json:"todoId"`
	Content string `json:"content"`
}

func (e EditTodoRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.UserID, validation.Required),
		validation.Field(&e.TodoID, validation.Required),
		validation.Field(&e.Content, validation.Required),
	)
}

type RefreshRequest struct {
	UserID string `json:"userId"`
	// Token is what the client had stored; the bearer header is what is
	// actually verified.
	Token string `json:"token"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID, validation.Required),
	)
}
