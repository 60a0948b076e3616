package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sahilchouksey/todo-monkeys/config"
	"github.com/sahilchouksey/todo-monkeys/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSQLiteStore(t *testing.T) *GORMStore {
	t.Helper()
	// a named in-memory database per test keeps the shared cache isolated
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	store, err := StartSQLite(dsn, true, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreContract(t *testing.T) {
	exerciseStore(t, newSQLiteStore(t))
}

func TestSQLiteStoreMigratesTodoTable(t *testing.T) {
	db := newSQLiteStore(t).GetDB()

	assert.True(t, db.Migrator().HasTable("todo_items"))
	assert.True(t, db.Migrator().HasColumn(&model.Todo{}, "is_completed"))
}

func TestOpenSelectsDriver(t *testing.T) {
	store, err := Open(&config.EnviornmentVariable{STORE_DRIVER: "memory"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = Open(&config.EnviornmentVariable{
		STORE_DRIVER: "sqlite",
		SQLITE_DSN:   "file:open_selects_driver?mode=memory&cache=shared",
		GO_ENV:       "production",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &GORMStore{}, store)
	assert.NoError(t, store.Close())
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.EnviornmentVariable{STORE_DRIVER: "mongo"}, zap.NewNop())
	assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
}
