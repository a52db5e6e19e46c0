package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// Dialect 决定 SQL 占位符风格
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// OpenDB 按 driver 打开数据库并 Ping。sqlite 只允许单连接，避免 database is locked。
func OpenDB(ctx context.Context, driver, dsn string) (*sql.DB, Dialect, error) {
	var dialect Dialect
	switch driver {
	case "postgres", "postgresql":
		dialect = Postgres
	case "sqlite", "sqlite3":
		dialect = SQLite
	default:
		return nil, "", fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, "", err
	}
	if dialect == SQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", dialect, err)
	}
	return db, dialect, nil
}

// InitDB 打开数据库并设置全局 DB
func InitDB(ctx context.Context, driver, dsn string) (Dialect, error) {
	db, dialect, err := OpenDB(ctx, driver, dsn)
	if err != nil {
		return "", err
	}
	DB = db
	return dialect, nil
}
