package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilchouksey/todo-monkeys/config"
	"github.com/sahilchouksey/todo-monkeys/model"
	"go.uber.org/zap"
)

// ErrTodoNotFound is returned when no todo carries the requested id
var ErrTodoNotFound = errors.New("todo not found")

// Supported STORE_DRIVER values
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// TodoStore defines the interface that all todo storage implementations must satisfy
type TodoStore interface {
	// Lifecycle methods
	Init() error
	Close() error
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, todo *model.Todo) error
	List(ctx context.Context) ([]model.Todo, error)
	Get(ctx context.Context, id int64) (model.Todo, error)
	Save(ctx context.Context, todo model.Todo) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (total int64, completed int64, err error)
}

// Open builds the store selected by STORE_DRIVER and runs its migrations
func Open(env *config.EnviornmentVariable, logger *zap.Logger) (TodoStore, error) {
	var (
		store TodoStore
		err   error
	)

	switch driver := strings.ToLower(strings.TrimSpace(env.STORE_DRIVER)); driver {
	case "", DriverMemory:
		store = NewMemoryStore()
	case DriverSQLite:
		store, err = StartSQLite(env.SQLITE_DSN, env.IsProduction(), logger)
	case DriverPostgres:
		store, err = StartPostgres(env, logger)
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", driver)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Init(); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize %s store: %w", env.STORE_DRIVER, err)
	}

	logger.Info("todo store ready", zap.String("driver", env.STORE_DRIVER))
	return store, nil
}
