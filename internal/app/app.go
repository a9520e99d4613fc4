package app

import (
	"database/sql"
	"os"
	"strconv"

	"go-attendance/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App bundles the shared infrastructure handles built once at startup.
type App struct {
	Router *gin.Engine
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

// BuildApp connects the stores and assembles the HTTP surface. The
// caller owns the server lifecycle.
func BuildApp(router *gin.Engine) (*App, error) {
	gormDB, err := connection.ConnectGORMWithRetry(
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "attendance"),
		getenv("DB_PORT", "5432"),
		getenv("DB_SSLMODE", "disable"),
		getenvInt("DB_MAX_RETRIES", 5),
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(
		getenv("REDIS_ADDR", "localhost:6379"),
		getenvInt("REDIS_MAX_RETRIES", 5),
	)
	if err != nil {
		return nil, err
	}

	registerModules(router, gormDB, sqlDB, rdb)

	return &App{Router: router, GormDB: gormDB, SQLDB: sqlDB, Redis: rdb}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
