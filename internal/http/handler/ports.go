package handler

import (
	"context"
	"net/http"

	"todoer/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserService . UserService
type UserService interface {
	SignUp(ctx context.Context, msg core.SignUpMessage) (core.Session, error)
	SignIn(ctx context.Context, msg core.SignInMessage) (core.Session, error)
	Refresh(ctx context.Context, userID string) (core.Session, error)
	GetTodos(ctx context.Context, userID string) ([]core.TodoItem, error)
	AddTodo(ctx context.Context, userID, content string) (core.UserProfile, error)
	EditTodo(ctx context.Context, userID string, todoID int64, content string) (core.UserProfile, error)
	DeleteTodo(ctx context.Context, userID string, todoID int64) (core.UserProfile, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
