package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"rodizio/internal/scheme"

	"github.com/oklog/ulid/v2"
)

var entropy io.Reader = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)

func newSnapshotID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// SaveSnapshot пишет документ целиком (jsonb) плюс по строке на схему —
// чтобы по снапшотам можно было ходить обычным SQL.
func SaveSnapshot(ctx context.Context, db *sql.DB, doc scheme.Document, source string) (string, error) {
	raw, err := doc.Encode()
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	id := newSnapshotID()
	now := time.Now().UTC()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO circulation.snapshots (id, loaded_at, source, document) VALUES ($1, $2, $3, $4)`,
		id, now, source, raw,
	); err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}

	for _, key := range doc.Keys() {
		s := doc[key]
		payload, err := json.Marshal(s)
		if err != nil {
			return "", fmt.Errorf("encode scheme %q: %w", key, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO circulation.schemes (snapshot_id, key, name, payload) VALUES ($1, $2, $3, $4)`,
			id, key, s.Name, payload,
		); err != nil {
			return "", fmt.Errorf("insert scheme %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// LoadLatestSnapshot читает самый свежий снапшот. sql.ErrNoRows — снапшотов ещё нет.
func LoadLatestSnapshot(ctx context.Context, db *sql.DB) (scheme.Document, string, error) {
	var id string
	var raw []byte
	err := db.QueryRowContext(ctx,
		`SELECT id, document FROM circulation.snapshots ORDER BY loaded_at DESC, id DESC LIMIT 1`,
	).Scan(&id, &raw)
	if err != nil {
		return nil, "", err
	}
	doc, err := scheme.ParseDocument(raw)
	if err != nil {
		return nil, "", fmt.Errorf("snapshot %s: %w", id, err)
	}
	return doc, id, nil
}
