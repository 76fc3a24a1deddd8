package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ContentDB is the raw pgx pool, used where we hand-write SQL
	// (article full-text search). ContentGorm is the same database
	// through GORM for the knowledge-base models.
	ContentDB   *pgxpool.Pool
	ContentGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	url := os.Getenv("CONTENT_DB_URL")
	if url == "" {
		url = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/leafline_content?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ CONTENT_DB_URL not set, using local default")
	}

	var err error
	ContentDB, err = pgxpool.New(context.Background(), url)
	if err != nil {
		log.Fatalf("❌ Unable to connect to content database: %v", err)
	}
	if err = ContentDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Content database ping failed: %v", err)
	}
	log.Println("✅ Content database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	dsn := os.Getenv("CONTENT_DB_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=leafline_content port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ CONTENT_DB_URL not set, using local GORM default")
	}

	var err error
	ContentGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to content database with GORM: %v", err)
	}
	if sqlDB, err := ContentGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Content database connected (GORM)")
}

func CloseDB() {
	if ContentDB != nil {
		ContentDB.Close()
		log.Println("✅ Content database connection closed (pgx)")
	}
	if ContentGorm != nil {
		if sqlDB, _ := ContentGorm.DB(); sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Content database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (managed Postgres cold
// starts need more than 5s).
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
