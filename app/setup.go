package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sahilchouksey/todo-monkeys/api"
	"github.com/sahilchouksey/todo-monkeys/config"
	"github.com/sahilchouksey/todo-monkeys/database"
	"github.com/sahilchouksey/todo-monkeys/router"
	"github.com/sahilchouksey/todo-monkeys/services"
	"github.com/sahilchouksey/todo-monkeys/services/cron"
	"github.com/sahilchouksey/todo-monkeys/utils"
	"github.com/sahilchouksey/todo-monkeys/utils/cache"
	"github.com/sahilchouksey/todo-monkeys/utils/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Application holds the wired service and its long-running parts
type Application struct {
	Server      *api.APIServer
	TodoService *services.TodoService

	store  database.TodoStore
	cache  *cache.RedisCache
	cron   *cron.CronManager
	logger *zap.Logger
}

func SetupAndRunServer() error {
	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(getEnv.GO_ENV, getEnv.LOG_LEVEL)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := Build(ctx, getEnv, logger)
	if err != nil {
		logger.Error("failed to set up application", zap.Error(err))
		return err
	}
	defer application.Close()

	return application.Run(ctx)
}

// Build opens the store, seeds it when asked, and wires services, cron and routes
func Build(ctx context.Context, getEnv *config.EnviornmentVariable, logger *zap.Logger) (*Application, error) {
	store, err := database.Open(getEnv, logger)
	if err != nil {
		if getEnv.STORE_DRIVER == database.DriverPostgres {
			logger.Warn("check whether Postgres is running", zap.String("host", getEnv.DB_HOST), zap.String("port", getEnv.DB_PORT))
		}
		return nil, err
	}

	application := &Application{store: store, logger: logger}

	if getEnv.SEED_TODOS {
		if _, err := database.NewSeeder(store, logger).SeedTodos(ctx, database.DefaultSeedTodos); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to seed todos: %w", err)
		}
	}

	var opts []services.TodoServiceOption
	if getEnv.REDIS_URL != "" {
		redisCache, err := cache.NewRedisCache(getEnv.REDIS_URL, "todo-monkeys:")
		if err != nil {
			// Don't fail the app, lookups go straight to the store
			logger.Warn("redis unavailable, todo cache disabled", zap.Error(err))
		} else {
			application.cache = redisCache
			opts = append(opts, services.WithCache(redisCache, getEnv.CACHE_TTL))
		}
	}

	application.TodoService = services.NewTodoService(store, nil, logger, opts...)

	if getEnv.CRON_ENABLED {
		application.cron = cron.NewCronManager(application.TodoService, getEnv.METRICS_REPORT_SCHEDULE, logger)
	}

	application.Server = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT), logger)
	engine := application.Server.GetEngine()

	middleware.SetupSecurity(engine, middleware.SecurityConfig{
		AllowedOrigins:    getEnv.ALLOWED_ORIGINS,
		RateLimitRequests: getEnv.RATE_LIMIT_REQUESTS,
		RateLimitWindow:   getEnv.RATE_LIMIT_WINDOW,
	})

	router.SetupRoutes(engine, application.TodoService, logger)

	return application, nil
}

// Run serves HTTP and runs the cron jobs until ctx is cancelled or the
// listener fails, then shuts both down.
func (a *Application) Run(ctx context.Context) error {
	if a.cron != nil {
		if err := a.cron.Start(); err != nil {
			// Don't fail the app, just log the warning
			a.logger.Warn("failed to start cron jobs", zap.Error(err))
			a.cron = nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.Server.Run()
	})

	g.Go(func() error {
		<-gctx.Done()

		if a.cron != nil {
			a.cron.Stop()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info("server stopped")
	return nil
}

// Close releases the cache and store connections
func (a *Application) Close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("failed to close redis cache", zap.Error(err))
		}
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close todo store", zap.Error(err))
	}
}
