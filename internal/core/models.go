package core

import "todoer/internal/repository"

// TodoItem mirrors one entry of a user's todo list as exposed to clients.
type TodoItem struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// UserProfile is the outward-facing projection of a stored user. It is an
// allow-list: fields not named here, the password hash in particular, can
// never leak by accident.
type UserProfile struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Admin     bool       `json:"admin"`
	TodoList  []TodoItem `json:"todoList"`
}

// Session is what a client gets back from signup, signin and refresh.
type Session struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

type SignUpMessage struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

type SignInMessage struct {
	Username string
	Password string
}

func profileFromUser(user repository.User) UserProfile {
	todos := make([]TodoItem, len(user.TodoList))
	for i, item := range user.TodoList {
		todos[i] = TodoItem{
			ID:      item.ID,
			Content: item.Content,
		}
	}

	return UserProfile{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Admin:     user.Admin,
		TodoList:  todos,
	}
}
