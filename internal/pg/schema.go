package pg

// DDL снапшотов документа. Ключи с числовым префиксом — ApplyDDL идёт
// по отсортированным ключам, а schemes ссылается на snapshots.
func SnapshotDDL() map[string]string {
	return map[string]string{
		"1_schema": `CREATE SCHEMA IF NOT EXISTS circulation`,
		"2_snapshots": `
			CREATE TABLE IF NOT EXISTS circulation.snapshots (
				id         text PRIMARY KEY,
				loaded_at  timestamp with time zone NOT NULL,
				source     text NOT NULL,
				document   jsonb NOT NULL
			)`,
		"3_schemes": `
			CREATE TABLE IF NOT EXISTS circulation.schemes (
				snapshot_id text NOT NULL REFERENCES circulation.snapshots(id) ON DELETE CASCADE,
				key         text NOT NULL,
				name        text NOT NULL,
				payload     jsonb NOT NULL,
				PRIMARY KEY (snapshot_id, key)
			)`,
	}
}
