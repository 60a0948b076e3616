package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTodoTextLength is the maximum number of characters a todo text may hold
const MaxTodoTextLength = 500

var (
	ErrTodoTextRequired = errors.New("todo text is required")
	ErrTodoTextTooLong  = errors.New("todo text must be at most 500 characters")
)

// Todo represents a single todo item
type Todo struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Text        string    `gorm:"type:varchar(500);not null" json:"text"`
	IsCompleted bool      `gorm:"not null;default:false;index" json:"is_completed"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// TableName overrides the table name used by GORM
func (Todo) TableName() string {
	return "todo_items"
}

// ValidateTodoText trims the text and checks it against the length bounds
func ValidateTodoText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrTodoTextRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxTodoTextLength {
		return "", ErrTodoTextTooLong
	}
	return trimmed, nil
}

// NewTodo creates a pending todo stamped with now
func NewTodo(text string, now time.Time) (*Todo, error) {
	trimmed, err := ValidateTodoText(text)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Todo{
		Text:        trimmed,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetText replaces the text and bumps UpdatedAt
func (t *Todo) SetText(text string, now time.Time) error {
	trimmed, err := ValidateTodoText(text)
	if err != nil {
		return err
	}
	t.Text = trimmed
	t.touch(now)
	return nil
}

// SetCompleted changes the completion flag. It reports whether anything
// changed; a matching status leaves the item, UpdatedAt included, untouched.
func (t *Todo) SetCompleted(done bool, now time.Time) bool {
	if t.IsCompleted == done {
		return false
	}
	t.IsCompleted = done
	t.touch(now)
	return true
}

func (t *Todo) touch(now time.Time) {
	now = now.UTC()
	// clock skew must never put UpdatedAt before CreatedAt
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}
