package repository

// TodoItem is one entry of a user's embedded todo list.
type TodoItem struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

// TodoList is stored as a jsonb array inside the user row, not as a separate
// table. Order is insertion order.
type TodoList []TodoItem

type User struct {
	ID           string   `gorm:"primaryKey;autoIncrement:false"`
	Username     string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FirstName    string   `gorm:"type:varchar(255);not null"`
	LastName     string   `gorm:"type:varchar(255);not null"`
	Email        string   `gorm:"type:varchar(255);not null"`
	Admin        bool     `gorm:"not null;default:false"`
	TodoList     TodoList `gorm:"serializer:json;type:jsonb;not null;default:'[]'"`
	// Version guards the todo list against concurrent lost updates.
	Version int64 `gorm:"not null;default:0"`
}
