package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// ApplyDDL выполняет map[key]sql. Ожидается idempotent DDL (create ... if not exists).
func ApplyDDL(db *sql.DB, ddl map[string]string) error {
	// стабильно: по ключу
	keys := make([]string, 0, len(ddl))
	for k := range ddl {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, k := range keys {
		sqlText := strings.TrimSpace(ddl[k])
		if sqlText == "" {
			continue
		}
		// duplicate_object (42710) не считаем ошибкой
		if _, err := db.ExecContext(ctx, sqlText); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "42710" {
				logrus.Infof("DDL skipped (already exists): %s (%s)", pgErr.ConstraintName, strings.TrimSpace(pgErr.Message))
				continue
			}
			// подстраховка по фразе (на случай других объектов)
			e := strings.ToLower(err.Error())
			if strings.Contains(e, "already exists") || strings.Contains(e, "duplicate") {
				logrus.Infof("DDL skipped (already exists): %v", err)
				continue
			}
			return fmt.Errorf("DDL apply failed: %w", err)
		}
	}
	return nil
}
