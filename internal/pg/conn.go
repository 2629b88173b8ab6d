package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
)

const (
	connMaxLifetime = 30 * time.Minute
	maxOpenConns    = 10
	maxIdleConns    = 5
	pingTimeout     = 5 * time.Second
)

// Open открывает пул к Postgres и сразу проверяет коннект пингом.
func Open(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	logrus.WithField("component", "pg").Debug("postgres connection established")
	return db, nil
}
