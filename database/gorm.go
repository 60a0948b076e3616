package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sahilchouksey/todo-monkeys/config"
	"github.com/sahilchouksey/todo-monkeys/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GORMStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// StartPostgres initializes a GORM connection to PostgreSQL
func StartPostgres(env *config.EnviornmentVariable, log *zap.Logger) (*GORMStore, error) {
	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		env.DB_HOST,
		env.DB_USER_NAME,
		env.DB_PASSWORD,
		env.DB_NAME,
		env.DB_PORT,
		env.DB_SSL_MODE,
	)

	store, err := openGORM(postgres.Open(dsn), env.IsProduction(), log)
	if err != nil {
		log.Error("unable to connect to PostgreSQL with GORM", zap.Error(err))
		return nil, err
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := store.db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("successfully connected to PostgreSQL database with GORM")
	return store, nil
}

// StartSQLite opens an SQLite database through GORM. The default DSN is a
// shared in-memory database that lives as long as the process.
func StartSQLite(dsn string, production bool, log *zap.Logger) (*GORMStore, error) {
	store, err := openGORM(sqlite.Open(dsn), production, log)
	if err != nil {
		log.Error("unable to open SQLite with GORM", zap.Error(err))
		return nil, err
	}

	sqlDB, err := store.db.DB()
	if err != nil {
		return nil, err
	}
	// an in-memory database disappears with its last connection, keep one pinned
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	log.Info("successfully opened SQLite database with GORM", zap.String("dsn", dsn))
	return store, nil
}

func openGORM(dialector gorm.Dialector, production bool, log *zap.Logger) (*GORMStore, error) {
	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if production {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true, // Prepare statements for better performance
	})
	if err != nil {
		return nil, err
	}

	return &GORMStore{db: db, logger: log}, nil
}

// Init runs the AutoMigrate to create/update tables
func (s *GORMStore) Init() error {
	s.logger.Info("running GORM AutoMigrate")

	if err := s.db.AutoMigrate(&model.Todo{}); err != nil {
		s.logger.Error("error running AutoMigrate", zap.Error(err))
		return err
	}

	s.logger.Info("GORM AutoMigrate completed")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	s.logger.Info("closing GORM connection")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance
func (s *GORMStore) GetDB() *gorm.DB {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Create inserts a todo; the generated id is written back into it
func (s *GORMStore) Create(ctx context.Context, todo *model.Todo) error {
	todo.ID = 0
	return s.db.WithContext(ctx).Create(todo).Error
}

// List retrieves all todos ordered by id
func (s *GORMStore) List(ctx context.Context) ([]model.Todo, error) {
	todos := []model.Todo{}
	result := s.db.WithContext(ctx).Order("id ASC").Find(&todos)
	return todos, result.Error
}

func (s *GORMStore) Get(ctx context.Context, id int64) (model.Todo, error) {
	var todo model.Todo
	if err := s.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Todo{}, ErrTodoNotFound
		}
		return model.Todo{}, err
	}
	return todo, nil
}

// Save updates an existing todo in the database
func (s *GORMStore) Save(ctx context.Context, todo model.Todo) error {
	result := s.db.WithContext(ctx).
		Model(&model.Todo{}).
		Where("id = ?", todo.ID).
		Updates(map[string]interface{}{
			"text":         todo.Text,
			"is_completed": todo.IsCompleted,
			"updated_at":   todo.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

// Delete deletes a todo by ID from the database
func (s *GORMStore) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&model.Todo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

func (s *GORMStore) Count(ctx context.Context) (int64, int64, error) {
	var total, completed int64
	if err := s.db.WithContext(ctx).Model(&model.Todo{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := s.db.WithContext(ctx).Model(&model.Todo{}).Where("is_completed = ?", true).Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return total, completed, nil
}
