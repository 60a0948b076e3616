package database

import (
	"context"
	"slices"
	"sync"

	"github.com/sahilchouksey/todo-monkeys/model"
)

// MemoryStore keeps todos in a process-local map keyed by id.
// Nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	todos  map[int64]model.Todo
	lastID int64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos: make(map[int64]model.Todo),
	}
}

func (s *MemoryStore) Init() error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

// Create assigns the next id and stores a copy of the todo
func (s *MemoryStore) Create(ctx context.Context, todo *model.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	todo.ID = s.lastID
	s.todos[todo.ID] = *todo
	return nil
}

// List returns every todo ordered by id
func (s *MemoryStore) List(ctx context.Context) ([]model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	todos := make([]model.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		todos = append(todos, todo)
	}
	s.mu.RUnlock()

	slices.SortFunc(todos, func(a, b model.Todo) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return todos, nil
}

func (s *MemoryStore) Get(ctx context.Context, id int64) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.todos[id]
	if !ok {
		return model.Todo{}, ErrTodoNotFound
	}
	return todo, nil
}

// Save replaces an existing todo. Unknown ids are not inserted.
func (s *MemoryStore) Save(ctx context.Context, todo model.Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[todo.ID]; !ok {
		return ErrTodoNotFound
	}
	s.todos[todo.ID] = todo
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return ErrTodoNotFound
	}
	delete(s.todos, id)
	return nil
}

func (s *MemoryStore) Count(ctx context.Context) (int64, int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var completed int64
	for _, todo := range s.todos {
		if todo.IsCompleted {
			completed++
		}
	}
	return int64(len(s.todos)), completed, nil
}
