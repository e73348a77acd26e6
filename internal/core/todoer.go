package core

import (
	"context"
	"errors"
	"fmt"

	"todoer/internal/repository"
	tokenIssuer "todoer/pkg/jwt"

	"go.uber.org/zap"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrTodoConflict error = errors.New("todo list was modified concurrently")

// maxReplaceAttempts bounds the read-modify-write retry loop when two
// mutations for the same user race.
const maxReplaceAttempts = 3

// Todoer implements signup, signin, token refresh and the todo list
// mutations on top of the user repository.
type Todoer struct {
	logs      *zap.SugaredLogger
	repo      Repository
	jwtIssuer TokenIssuer
	hasher    PasswordHasher
}

func NewTodoer(logger *zap.SugaredLogger, repo Repository, jwt TokenIssuer, hasher PasswordHasher) *Todoer {
	return &Todoer{
		logs:      logger,
		repo:      repo,
		jwtIssuer: jwt,
		hasher:    hasher,
	}
}

// SignUp hashes the password, stores the new user and issues a first token.
func (t *Todoer) SignUp(ctx context.Context, msg SignUpMessage) (Session, error) {
	hashed, err := t.hasher.Hash(msg.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := t.repo.CreateUser(ctx, repository.User{
		Username:     msg.Username,
		PasswordHash: hashed,
		FirstName:    msg.FirstName,
		LastName:     msg.LastName,
		Email:        msg.Email,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return Session{}, ErrUsernameTaken
		}
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	t.logs.Infow("user created", "userId", user.ID, "username", user.Username)

	return t.issueSession(user)
}

// SignIn checks the credentials against the stored hash and issues a token.
// The user document itself is not touched.
func (t *Todoer) SignIn(ctx context.Context, msg SignInMessage) (Session, error) {
	user, err := t.repo.GetByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	ok, err := t.hasher.Verify(msg.Password, user.PasswordHash)
	if err != nil {
		return Session{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return Session{}, ErrIncorrectPassword
	}

	return t.issueSession(user)
}

// Refresh issues a new token with a fresh expiry window. Claims are re-read
// from the persisted user, not copied from the old token, so profile changes
// made since the last issuance are reflected.
func (t *Todoer) Refresh(ctx context.Context, userID string) (Session, error) {
	user, err := t.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, fmt.Errorf("get user from db: %w", err)
	}

	return t.issueSession(user)
}

func (t *Todoer) GetTodos(ctx context.Context, userID string) ([]TodoItem, error) {
	user, err := t.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user from db: %w", err)
	}

	return profileFromUser(user).TodoList, nil
}

// AddTodo appends a new entry with a freshly generated id to the end of the
// user's list.
func (t *Todoer) AddTodo(ctx context.Context, userID, content string) (UserProfile, error) {
	user, err := t.mutateTodoList(ctx, userID, func(list repository.TodoList) repository.TodoList {
		return append(list, repository.TodoItem{
			ID:      nextTodoID(list),
			Content: content,
		})
	})
	if err != nil {
		return UserProfile{}, err
	}

	t.logs.Infow("todo item added", "userId", userID, "todoCount", len(user.TodoList))

	return profileFromUser(user), nil
}

// EditTodo replaces the content of the entry with the given id, keeping
// order and every other entry untouched. An unknown id is a no-op, not an
// error.
func (t *Todoer) EditTodo(ctx context.Context, userID string, todoID int64, content string) (UserProfile, error) {
	user, err := t.mutateTodoList(ctx, userID, func(list repository.TodoList) repository.TodoList {
		for i, item := range list {
			if item.ID == todoID {
				list[i].Content = content
				break
			}
		}
		return list
	})
	if err != nil {
		return UserProfile{}, err
	}

	return profileFromUser(user), nil
}

// DeleteTodo removes the entry with the given id. An unknown id leaves the
// list unchanged.
func (t *Todoer) DeleteTodo(ctx context.Context, userID string, todoID int64) (UserProfile, error) {
	user, err := t.mutateTodoList(ctx, userID, func(list repository.TodoList) repository.TodoList {
		kept := make(repository.TodoList, 0, len(list))
		for _, item := range list {
			if item.ID != todoID {
				kept = append(kept, item)
			}
		}
		return kept
	})
	if err != nil {
		return UserProfile{}, err
	}

	t.logs.Infow("todo item deleted", "userId", userID, "todoId", todoID)

	return profileFromUser(user), nil
}

// mutateTodoList runs the read-modify-write cycle: load the current user,
// compute the new list in memory and persist it conditionally on the version
// that was read. A concurrent writer invalidates the version and triggers a
// retry against the fresh state.
func (t *Todoer) mutateTodoList(ctx context.Context, userID string, mutate func(repository.TodoList) repository.TodoList) (repository.User, error) {
	for attempt := 0; attempt < maxReplaceAttempts; attempt++ {
		user, err := t.repo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return repository.User{}, ErrUserNotFound
			}
			return repository.User{}, fmt.Errorf("get user from db: %w", err)
		}

		current := make(repository.TodoList, len(user.TodoList))
		copy(current, user.TodoList)

		updated, err := t.repo.ReplaceTodoList(ctx, user.ID, user.Version, mutate(current))
		if err != nil {
			if errors.Is(err, repository.ErrVersionConflict) {
				t.logs.Infow("todo list version conflict, retrying", "userId", userID, "attempt", attempt+1)
				continue
			}
			if errors.Is(err, repository.ErrUserNotFound) {
				return repository.User{}, ErrUserNotFound
			}
			return repository.User{}, fmt.Errorf("replace todo list: %w", err)
		}

		return updated, nil
	}

	return repository.User{}, ErrTodoConflict
}

func (t *Todoer) issueSession(user repository.User) (Session, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		Subject:   user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	}
	token := t.jwtIssuer.Generate(tokenInfo)
	signed, err := t.jwtIssuer.Sign(token)
	if err != nil {
		return Session{}, fmt.Errorf("signing token: %w", err)
	}

	return Session{
		User:  profileFromUser(user),
		Token: signed,
	}, nil
}

// nextTodoID picks an id guaranteed not to collide with any entry in the
// loaded list.
func nextTodoID(list repository.TodoList) int64 {
	var max int64
	for _, item := range list {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}
