package database

import (
	"embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"blogCPT/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MethodsDB is the lifecycle surface the composition root hands to main.
type MethodsDB interface {
	CloseDB() error
	RunMigrations() error
	HealthCheck() error
	GetDB() *DB
}

var _ MethodsDB = (*DB)(nil)

type DB struct {
	*sqlx.DB
}

func dataSourceName(cfg *config.Config) (string, string, error) {
	switch cfg.DB.DbDRIVER {
	case DriverPostgres:
		return DriverPostgres, fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DB.DbHOST,
			cfg.DB.DbPORT,
			cfg.DB.DbUSER,
			cfg.DB.DbPASSWORD,
			cfg.DB.DbNAME,
			cfg.DB.DbSSLMODE,
		), nil
	case DriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DB.DbSQLITEPATH), 0755); err != nil {
			return "", "", fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		return DriverSQLite, fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.DB.DbSQLITEPATH), nil
	default:
		return "", "", fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.DbDRIVER)
	}
}

func ConnectDB(cfg *config.Config) (*DB, error) {
	driver, dsn, err := dataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	if driver == DriverPostgres {
		log.Printf("Connecting to database: host=%s, dbname=%s", cfg.DB.DbHOST, cfg.DB.DbNAME)
	} else {
		log.Printf("Connecting to database: sqlite file=%s", cfg.DB.DbSQLITEPATH)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY under load
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	dbStruct := &DB{db}

	if err := dbStruct.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	if err := dbStruct.HealthCheck(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	log.Printf("Connected to %s", driver)
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations applies the embedded schema for the connected driver. The
// schema is idempotent (IF NOT EXISTS everywhere).
func (db *DB) RunMigrations() error {
	migrationFile := fmt.Sprintf("migrations/%s.sql", migrationName(db.DriverName()))

	migrationSQL, err := migrationsFS.ReadFile(migrationFile)
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	log.Printf("Applying migrations from %s", migrationFile)

	if _, err = db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func migrationName(driver string) string {
	if driver == DriverSQLite {
		return "sqlite"
	}
	return "postgres"
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return errors.New("database connection is not initialised")
	}

	return db.Ping()
}

func (db *DB) GetDB() *DB {
	return db
}

// IsUniqueViolation reports whether err is a unique constraint failure from
// either supported driver.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// IsForeignKeyViolation reports whether err is a referential integrity failure.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}

// IsCheckViolation reports whether err is a CHECK constraint failure.
func IsCheckViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23514"
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintCheck
	}

	return false
}
