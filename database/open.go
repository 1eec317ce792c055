package database

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

var migrate = models.Migrate

// Open builds the Database selected by STORE_DRIVER (postgres by default).
func Open(ctx context.Context, c map[string]string) (Database, error) {
	driver := config.GetString(c, "STORE_DRIVER", DriverPostgres)
	log.Info().Str("driver", driver).Msg("opening store")

	switch driver {
	case DriverMemory:
		return NewInMemory()
	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     config.GetString(c, "REDIS_ADDR", "localhost:6379"),
			Password: config.GetString(c, "REDIS_PASSWORD", ""),
			DB:       config.GetInt(c, "REDIS_DB", 0),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return Database{}, errs.NewStorageUnavailableError("ping", "redis", err)
		}
		return New(NewRedisBackend(client, config.GetString(c, "REDIS_PREFIX", "portfolio:"))), nil
	case DriverPostgres, DriverMySQL, DriverSQLite:
		db, err := OpenGorm(c)
		if err != nil {
			return Database{}, err
		}
		if err := migrate(db); err != nil {
			closeGorm(db)
			return Database{}, fmt.Errorf("migrate kv_entries: %w", err)
		}
		return New(NewGormBackend(db)), nil
	default:
		return Database{}, errs.NewUnknownStoreDriverError(driver)
	}
}

// OpenGorm connects the SQL database for the postgres, mysql or sqlite driver. A replica DSN in
// DATABASE_REPLICA_URL is registered for reads.
func OpenGorm(c map[string]string) (*gorm.DB, error) {
	driver := config.GetString(c, "STORE_DRIVER", DriverPostgres)

	dialector, err := dialectorFor(driver, config.GetString(c, "DATABASE_URL", postgresDSNFromParts(c)), c)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, errs.NewDatabaseError("connect to", driver, err)
	}

	if replica := config.GetString(c, "DATABASE_REPLICA_URL", ""); replica != "" && driver != DriverSQLite {
		replicaDialector, err := dialectorFor(driver, replica, c)
		if err != nil {
			closeGorm(db)
			return nil, err
		}
		if err := db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{replicaDialector},
			Policy:   dbresolver.RandomPolicy{},
		})); err != nil {
			closeGorm(db)
			return nil, fmt.Errorf("register read replica: %w", err)
		}
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		closeGorm(db)
		return nil, errs.NewDatabaseError("ping", driver, err)
	}
	return db, nil
}

func closeGorm(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func dialectorFor(driver, dsn string, c map[string]string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(config.GetString(c, "SQLITE_PATH", "portfolio.db")), nil
	default:
		return nil, errs.NewUnknownStoreDriverError(driver)
	}
}

// postgresDSNFromParts builds a DSN from discrete SUPABASE_DB_* settings.
func postgresDSNFromParts(c map[string]string) string {
	host := config.GetString(c, "SUPABASE_DB_HOST", "")
	if host == "" {
		return ""
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		host,
		config.GetString(c, "SUPABASE_DB_USER", ""),
		config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
		config.GetString(c, "SUPABASE_DB_NAME", ""),
		config.GetString(c, "SUPABASE_DB_PORT", "5432"),
	)
}
