package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sahilchouksey/todo-monkeys/database"
	"github.com/sahilchouksey/todo-monkeys/model"
	"github.com/sahilchouksey/todo-monkeys/services/metrics"
	"github.com/sahilchouksey/todo-monkeys/utils/cache"
	"go.uber.org/zap"
)

// Operation names reported by the todo metrics
const (
	OpTodoCreate   = "todo.create"
	OpTodoList     = "todo.list"
	OpTodoGet      = "todo.get"
	OpTodoUpdate   = "todo.update"
	OpTodoComplete = "todo.complete"
	OpTodoDelete   = "todo.delete"
)

// TodoOperations lists every operation the service instruments
var TodoOperations = []string{OpTodoCreate, OpTodoList, OpTodoGet, OpTodoUpdate, OpTodoComplete, OpTodoDelete}

// TodoCache is the subset of utils/cache.RedisCache the service relies on
type TodoCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	SetJSONIfAbsent(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// cachedTodo is the cache value for one id. Ids are never reused, so a
// deleted marker stays valid until it expires.
type cachedTodo struct {
	Todo    model.Todo `json:"todo"`
	Deleted bool       `json:"deleted,omitempty"`
}

// TodoService handles todo CRUD on top of a TodoStore
type TodoService struct {
	store    database.TodoStore
	cache    TodoCache
	cacheTTL time.Duration
	metrics  *metrics.Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// TodoServiceOption customises a TodoService
type TodoServiceOption func(*TodoService)

// WithCache enables the read-through cache for single todo lookups
func WithCache(c TodoCache, ttl time.Duration) TodoServiceOption {
	return func(s *TodoService) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithClock overrides the time source used for timestamps
func WithClock(now func() time.Time) TodoServiceOption {
	return func(s *TodoService) {
		s.now = now
	}
}

// NewTodoService creates a new todo service
func NewTodoService(store database.TodoStore, recorder *metrics.Recorder, logger *zap.Logger, opts ...TodoServiceOption) *TodoService {
	if recorder == nil {
		recorder = metrics.NewRecorder(TodoOperations...)
	}
	s := &TodoService{
		store:   store,
		metrics: recorder,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Metrics exposes the recorder shared with the health endpoint and cron jobs
func (s *TodoService) Metrics() *metrics.Recorder {
	return s.metrics
}

// Create validates the text and stores a new pending todo
func (s *TodoService) Create(ctx context.Context, text string) (todo model.Todo, err error) {
	done := s.metrics.Time(OpTodoCreate)
	defer func() { done(err) }()

	item, err := model.NewTodo(text, s.now())
	if err != nil {
		return model.Todo{}, err
	}
	if err := s.store.Create(ctx, item); err != nil {
		return model.Todo{}, fmt.Errorf("failed to create todo: %w", err)
	}

	s.logger.Debug("todo created", zap.Int64("id", item.ID))
	return *item, nil
}

// List returns every todo ordered by id
func (s *TodoService) List(ctx context.Context) (todos []model.Todo, err error) {
	done := s.metrics.Time(OpTodoList)
	defer func() { done(err) }()

	todos, err = s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// Get returns one todo or database.ErrTodoNotFound
func (s *TodoService) Get(ctx context.Context, id int64) (todo model.Todo, err error) {
	done := s.metrics.Time(OpTodoGet)
	defer func() { done(ignoreNotFound(err)) }()

	if s.cache != nil {
		var cached cachedTodo
		cacheErr := s.cache.GetJSON(ctx, todoCacheKey(id), &cached)
		switch {
		case cacheErr == nil && cached.Deleted:
			return model.Todo{}, fmt.Errorf("todo %d: %w", id, database.ErrTodoNotFound)
		case cacheErr == nil:
			return cached.Todo, nil
		case !errors.Is(cacheErr, cache.ErrNotFound):
			s.logger.Warn("todo cache read failed", zap.Int64("id", id), zap.Error(cacheErr))
		}
	}

	todo, err = s.store.Get(ctx, id)
	if err != nil {
		return model.Todo{}, wrapStoreErr("get", id, err)
	}

	if s.cache != nil {
		// a mutation that finished after our read has already written a
		// newer entry, which must not be replaced
		if _, cacheErr := s.cache.SetJSONIfAbsent(ctx, todoCacheKey(id), cachedTodo{Todo: todo}, s.cacheTTL); cacheErr != nil {
			s.logger.Warn("todo cache write failed", zap.Int64("id", id), zap.Error(cacheErr))
		}
	}
	return todo, nil
}

// Update replaces the text and, when completed is set, the completion flag.
// An unknown id leaves the store untouched.
func (s *TodoService) Update(ctx context.Context, id int64, text string, completed *bool) (todo model.Todo, err error) {
	done := s.metrics.Time(OpTodoUpdate)
	defer func() { done(ignoreNotFound(err)) }()

	if _, err := model.ValidateTodoText(text); err != nil {
		return model.Todo{}, err
	}

	todo, err = s.store.Get(ctx, id)
	if err != nil {
		return model.Todo{}, wrapStoreErr("update", id, err)
	}

	now := s.now()
	if err := todo.SetText(text, now); err != nil {
		return model.Todo{}, err
	}
	if completed != nil {
		todo.SetCompleted(*completed, now)
	}

	if err := s.store.Save(ctx, todo); err != nil {
		return model.Todo{}, wrapStoreErr("update", id, err)
	}
	s.refresh(ctx, id, cachedTodo{Todo: todo})
	return todo, nil
}

// Complete sets the completion flag. When the flag already matches nothing is
// written and UpdatedAt keeps its value.
func (s *TodoService) Complete(ctx context.Context, id int64, completed bool) (todo model.Todo, err error) {
	done := s.metrics.Time(OpTodoComplete)
	defer func() { done(ignoreNotFound(err)) }()

	todo, err = s.store.Get(ctx, id)
	if err != nil {
		return model.Todo{}, wrapStoreErr("complete", id, err)
	}

	if !todo.SetCompleted(completed, s.now()) {
		return todo, nil
	}

	if err := s.store.Save(ctx, todo); err != nil {
		return model.Todo{}, wrapStoreErr("complete", id, err)
	}
	s.refresh(ctx, id, cachedTodo{Todo: todo})
	return todo, nil
}

// Delete removes a todo; deleting it again reports database.ErrTodoNotFound
func (s *TodoService) Delete(ctx context.Context, id int64) (err error) {
	done := s.metrics.Time(OpTodoDelete)
	defer func() { done(ignoreNotFound(err)) }()

	if err := s.store.Delete(ctx, id); err != nil {
		return wrapStoreErr("delete", id, err)
	}
	s.refresh(ctx, id, cachedTodo{Deleted: true})
	return nil
}

// TodoStats aggregates store counts and the operation metrics
type TodoStats struct {
	Total     int64            `json:"total"`
	Completed int64            `json:"completed"`
	Pending   int64            `json:"pending"`
	Metrics   metrics.Snapshot `json:"metrics"`
}

// Stats returns the current counts and metrics snapshot
func (s *TodoService) Stats(ctx context.Context) (TodoStats, error) {
	total, completed, err := s.store.Count(ctx)
	if err != nil {
		return TodoStats{}, fmt.Errorf("failed to count todos: %w", err)
	}
	return TodoStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Metrics:   s.metrics.Snapshot(),
	}, nil
}

// HealthCheck reports whether the backing store answers
func (s *TodoService) HealthCheck(ctx context.Context) error {
	return s.store.HealthCheck(ctx)
}

// refresh overwrites the cache entry after a successful mutation. If the
// write fails the key is dropped so the next read goes to the store.
func (s *TodoService) refresh(ctx context.Context, id int64, entry cachedTodo) {
	if s.cache == nil {
		return
	}
	key := todoCacheKey(id)
	if err := s.cache.SetJSON(ctx, key, entry, s.cacheTTL); err != nil {
		s.logger.Warn("todo cache refresh failed", zap.Int64("id", id), zap.Error(err))
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("todo cache invalidation failed", zap.Int64("id", id), zap.Error(err))
		}
	}
}

func todoCacheKey(id int64) string {
	return "todo:" + strconv.FormatInt(id, 10)
}

func wrapStoreErr(op string, id int64, err error) error {
	if errors.Is(err, database.ErrTodoNotFound) {
		return fmt.Errorf("todo %d: %w", id, database.ErrTodoNotFound)
	}
	return fmt.Errorf("failed to %s todo %d: %w", op, id, err)
}

// a missing id is an expected outcome, not a failed operation
func ignoreNotFound(err error) error {
	if errors.Is(err, database.ErrTodoNotFound) {
		return nil
	}
	return err
}

// DemoStep is one stage of the demo walkthrough
type DemoStep struct {
	Name       string  `json:"name"`
	Success    bool    `json:"success"`
	DurationMs float64 `json:"duration_ms"`
	Detail     string  `json:"detail"`
}

// DemoSummary is returned by RunDemo
type DemoSummary struct {
	RunID      string     `json:"run_id"`
	Success    bool       `json:"success"`
	TotalMs    float64    `json:"total_ms"`
	Steps      []DemoStep `json:"steps"`
	FinalCount int        `json:"final_count"`
}

// RunDemo walks one throwaway todo through create, list, update, complete and
// delete, stopping at the first failing step.
func (s *TodoService) RunDemo(ctx context.Context) (DemoSummary, error) {
	runID := uuid.NewString()
	summary := DemoSummary{RunID: runID, Steps: []DemoStep{}}
	started := time.Now()

	var current model.Todo
	steps := []struct {
		name string
		run  func() (string, error)
	}{
		{"create", func() (string, error) {
			todo, err := s.Create(ctx, "Demo todo "+runID[:8])
			if err != nil {
				return "", err
			}
			current = todo
			return fmt.Sprintf("created todo %d", todo.ID), nil
		}},
		{"list", func() (string, error) {
			todos, err := s.List(ctx)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("listed %d todos", len(todos)), nil
		}},
		{"update", func() (string, error) {
			todo, err := s.Update(ctx, current.ID, current.Text+" (updated)", nil)
			if err != nil {
				return "", err
			}
			current = todo
			return fmt.Sprintf("renamed todo %d to %q", todo.ID, todo.Text), nil
		}},
		{"complete", func() (string, error) {
			todo, err := s.Complete(ctx, current.ID, true)
			if err != nil {
				return "", err
			}
			current = todo
			return fmt.Sprintf("todo %d completed=%t", todo.ID, todo.IsCompleted), nil
		}},
		{"delete", func() (string, error) {
			if err := s.Delete(ctx, current.ID); err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted todo %d", current.ID), nil
		}},
	}

	var runErr error
	for _, step := range steps {
		stepStart := time.Now()
		detail, err := step.run()
		result := DemoStep{
			Name:       step.name,
			Success:    err == nil,
			DurationMs: float64(time.Since(stepStart)) / float64(time.Millisecond),
			Detail:     detail,
		}
		if err != nil {
			result.Detail = step.name + " step failed"
			runErr = fmt.Errorf("demo step %s: %w", step.name, err)
			s.logger.Warn("demo step failed", zap.String("run_id", runID), zap.String("step", step.name), zap.Error(err))
		}
		summary.Steps = append(summary.Steps, result)
		if runErr != nil {
			break
		}
	}

	// a failed run must not leave its todo behind
	if runErr != nil && current.ID != 0 {
		cleanupCtx := context.WithoutCancel(ctx)
		if err := s.Delete(cleanupCtx, current.ID); err != nil && !errors.Is(err, database.ErrTodoNotFound) {
			s.logger.Warn("demo cleanup failed", zap.String("run_id", runID), zap.Int64("id", current.ID), zap.Error(err))
		}
	}

	if todos, err := s.store.List(ctx); err == nil {
		summary.FinalCount = len(todos)
	}
	summary.Success = runErr == nil
	summary.TotalMs = float64(time.Since(started)) / float64(time.Millisecond)

	s.logger.Info("demo run finished",
		zap.String("run_id", runID),
		zap.Bool("success", summary.Success),
		zap.Int("steps", len(summary.Steps)))
	return summary, runErr
}
