package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

func init() {
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
}

var schemas = map[string]string{
	DriverSQLite: `
CREATE TABLE IF NOT EXISTS product (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	p_name     TEXT    NOT NULL CHECK (length(p_name) <= 100),
	p_price    INTEGER NOT NULL,
	p_quantity INTEGER NOT NULL
)`,
	DriverPostgres: `
CREATE TABLE IF NOT EXISTS product (
	id         SERIAL       PRIMARY KEY,
	p_name     VARCHAR(100) NOT NULL,
	p_price    INTEGER      NOT NULL,
	p_quantity INTEGER      NOT NULL
)`,
}

// Connect opens the product database for the given driver and makes sure the
// product table exists. For sqlite the dsn is a file path.
func Connect(driver, dsn string) (*sqlx.DB, error) {
	schema, ok := schemas[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if dsn == "" {
		return nil, fmt.Errorf("database url is required for driver %q", driver)
	}

	if driver == DriverSQLite {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dsn)
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// sqlite serialises writers
		db.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create product table: %w", err)
	}

	return db, nil
}
