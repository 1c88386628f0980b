package app

import (
	"database/sql"
	"embed"
	"fmt"
	"os"

	"employee-management/internal/department"
	"employee-management/internal/employee"
	"employee-management/internal/middleware"
	"employee-management/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// BuildApp connects the stores, runs migrations and wires every feature
// module onto the router.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "employee_management"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_SSLMODE", "disable"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := runMigrations(sqlDB); err != nil {
		return err
	}

	// An empty REDIS_ADDR disables the list cache; services degrade to
	// straight DB reads.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
	}

	logger := zap.L()
	router.Use(middleware.RequestID())
	api := router.Group("/")

	deptRepo := department.NewRepository(db)
	deptService := department.NewService(db, deptRepo, rdb, logger)
	deptHandler := department.NewHandler(deptService, logger)
	department.RegisterRoutes(api, deptHandler, logger)

	emplRepo := employee.NewRepository(db)
	emplService := employee.NewService(db, emplRepo, rdb, logger)
	emplHandler := employee.NewHandler(emplService, logger)
	employee.RegisterRoutes(api, emplHandler, logger)

	return nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
