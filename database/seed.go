package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sahilchouksey/todo-monkeys/model"
	"go.uber.org/zap"
)

// DefaultSeedTodos are inserted when SEED_TODOS=true and the store is empty
var DefaultSeedTodos = []string{
	"Buy milk",
	"Book the vet appointment",
	"Read the monkey field guide",
}

// Seeder handles database seeding operations
type Seeder struct {
	store  TodoStore
	logger *zap.Logger
	now    func() time.Time
}

// NewSeeder creates a new seeder instance
func NewSeeder(store TodoStore, logger *zap.Logger) *Seeder {
	return &Seeder{store: store, logger: logger, now: time.Now}
}

// SeedTodos inserts the given texts unless the store already holds todos.
// It returns how many todos were created.
func (s *Seeder) SeedTodos(ctx context.Context, texts []string) (int, error) {
	total, _, err := s.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	if total > 0 {
		s.logger.Info("todos already present, skipping seed", zap.Int64("count", total))
		return 0, nil
	}

	s.logger.Info("🌱 seeding todos", zap.Int("count", len(texts)))
	created := 0
	for _, text := range texts {
		todo, err := model.NewTodo(text, s.now())
		if err != nil {
			return created, fmt.Errorf("invalid seed todo %q: %w", text, err)
		}
		if err := s.store.Create(ctx, todo); err != nil {
			return created, fmt.Errorf("failed to seed todo %q: %w", text, err)
		}
		created++
	}

	s.logger.Info("✅ todo seeding completed", zap.Int("created", created))
	return created, nil
}
