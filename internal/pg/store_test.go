package pg

import (
	"context"
	"testing"
	"time"

	"rodizio/internal/scheme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testDoc = `{
	"rodizio_municipal": {
		"name": "Rodízio Municipal de Veículos",
		"restriction_times": {"monday": ["07:00-10:00", "17:00-20:00"]},
		"plate_restrictions": {"monday": ["1", "2"]},
		"affected_area": {"boundaries": ["Marginal Tietê"]},
		"vehicle_types": ["Passenger cars", "Trucks"]
	},
	"zmrc": {
		"name": "ZMRC",
		"restriction_times": {"monday_to_friday": ["05:00-21:00"]},
		"affected_area": {"map_link": "http://cetsp"},
		"vehicle_types": ["Trucks", "VUCs"]
	}
}`

func TestSnapshotRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test, needs Docker")
	}

	ctx := context.Background()
	pgc, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("rodizio"),
		postgres.WithUsername("rodizio"),
		postgres.WithPassword("rodizio"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgc.Terminate(ctx) })

	url, err := pgc.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, ApplyDDL(db, SnapshotDDL()))
	// повторный прогон DDL должен быть no-op
	require.NoError(t, ApplyDDL(db, SnapshotDDL()))

	doc, err := scheme.ParseDocument([]byte(testDoc))
	require.NoError(t, err)

	opCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	id, err := SaveSnapshot(opCtx, db, doc, "test")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// по строке на схему
	var n int
	require.NoError(t, db.QueryRowContext(opCtx,
		`SELECT count(*) FROM circulation.schemes WHERE snapshot_id = $1`, id).Scan(&n))
	assert.Equal(t, 2, n)

	loaded, loadedID, err := LoadLatestSnapshot(opCtx, db)
	require.NoError(t, err)
	assert.Equal(t, id, loadedID)
	require.Len(t, loaded, 2)

	rodizio, ok := loaded.Get("rodizio_municipal")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, rodizio.PlateRestrictions["monday"])

	// второй снапшот становится последним
	id2, err := SaveSnapshot(opCtx, db, doc, "test-2")
	require.NoError(t, err)
	_, latestID, err := LoadLatestSnapshot(opCtx, db)
	require.NoError(t, err)
	assert.Equal(t, id2, latestID)
}
