package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"todoer/internal/db"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUsernameTaken error = errors.New("username already taken")
var ErrVersionConflict error = errors.New("user document version conflict")

type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Migrate() error {
	err := r.db.MigrateTable(&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser persists a new user and assigns its id. The password must
// already be hashed by the caller.
func (r *UserRepository) CreateUser(ctx context.Context, user User) (User, error) {
	user.ID = uuid.NewString()
	if user.TodoList == nil {
		user.TodoList = TodoList{}
	}

	err := r.db.CreateRecord(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUsernameTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// ReplaceTodoList swaps the embedded todo list of a user, touching no other
// field. The write only lands if the version read by the caller is still
// current; otherwise ErrVersionConflict is returned and the caller must
// re-read and retry.
func (r *UserRepository) ReplaceTodoList(ctx context.Context, id string, version int64, list TodoList) (User, error) {
	if list == nil {
		list = TodoList{}
	}

	raw, err := json.Marshal(list)
	if err != nil {
		return User{}, fmt.Errorf("marshal todo list: %w", err)
	}

	rows, err := r.db.UpdateColumns(ctx, &User{},
		map[string]any{"id": id, "version": version},
		map[string]any{"todo_list": raw, "version": version + 1})
	if err != nil {
		return User{}, fmt.Errorf("replace todo list: %w", err)
	}

	if rows == 0 {
		// disambiguate a stale version from a missing user
		if _, err := r.GetByID(ctx, id); err != nil {
			return User{}, err
		}
		return User{}, ErrVersionConflict
	}

	return r.GetByID(ctx, id)
}
