package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio.site/configs"
	"portfolio.site/configs/configslog"
)

var db *gorm.DB

// InitDB opens the Postgres connection from DB_* environment variables and
// configures the pool. It terminates the process when the database is
// unreachable, the application cannot serve anything without it.
func InitDB() {
	host := configs.GetEnv("DB_HOST", "localhost")
	port := configs.GetEnv("DB_PORT", "5432")
	user := configs.GetEnv("DB_USER", "postgres")
	password := configs.GetEnv("DB_PASSWORD", "postgres")
	name := configs.GetEnv("DB_NAME", "portfolio")
	sslmode := configs.GetEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, user, password, name, sslmode)

	gormLogLevel := gormlogger.Warn
	if os.Getenv("APP_ENV") == "production" {
		gormLogLevel = gormlogger.Error
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		configslog.Log.Fatal("database connection failed",
			zap.String("host", host),
			zap.String("name", name),
			zap.Error(err),
		)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("could not access underlying sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Infof("database connection established: %s/%s", host, name)
}

// GetDB returns the shared connection. InitDB must have run first.
func GetDB() *gorm.DB {
	return db
}

// CloseDB closes the underlying connection pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("could not access sql.DB for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("database close failed", zap.Error(err))
	}
}
