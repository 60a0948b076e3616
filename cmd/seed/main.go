package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/sahilchouksey/todo-monkeys/config"
	"github.com/sahilchouksey/todo-monkeys/database"
	"github.com/sahilchouksey/todo-monkeys/utils"
	"go.uber.org/zap"
)

// Seeds the configured store (STORE_DRIVER) with the default todos, or with
// the todo texts given as arguments.
func main() {
	if err := config.LoadENV(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	getEnv, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	logger, err := utils.NewLogger(getEnv.GO_ENV, getEnv.LOG_LEVEL)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	if getEnv.STORE_DRIVER == database.DriverMemory {
		logger.Warn("STORE_DRIVER=memory, seeded todos are discarded when this command exits")
	}

	store, err := database.Open(getEnv, logger)
	if err != nil {
		logger.Fatal("failed to open todo store", zap.Error(err))
	}
	defer store.Close()

	texts := database.DefaultSeedTodos
	if len(os.Args) > 1 {
		texts = os.Args[1:]
	}

	separator := strings.Repeat("=", 60)
	fmt.Println(separator)
	fmt.Println("Todo Monkeys - Todo Seeding")
	fmt.Println(separator)

	created, err := database.NewSeeder(store, logger).SeedTodos(context.Background(), texts)
	if err != nil {
		logger.Fatal("❌ seeding failed", zap.Error(err))
	}

	fmt.Println()
	fmt.Printf("🎉 Seeding completed, %d todo(s) created\n", created)
	fmt.Println(separator)
}
