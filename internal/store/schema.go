// Package store provides the SQLite-backed event store for the Touchline API.
package store

// Schema contains the SQL schema definitions for the event store
// (touchline.db). All writes happen through batch ingestion; the API
// only ever reads.

// CreateActivityEventsTableSQL creates the core activity_events table.
// Timestamps are stored as UTC Unix milliseconds so range filters and
// date grouping stay integer comparisons. The people and team arrays
// are stored as JSON text, mirroring the denormalized source records.
const CreateActivityEventsTableSQL = `
CREATE TABLE IF NOT EXISTS activity_events (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    customer_org_id TEXT NOT NULL,
    account_id TEXT NOT NULL,
    touchpoint_id TEXT NOT NULL,
    timestamp_ms INTEGER NOT NULL,
    activity TEXT,
    channel TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    record_type TEXT,
    source_record_type TEXT,
    source_record_id TEXT,
    campaign_id TEXT,
    campaign_name TEXT,
    direction TEXT NOT NULL DEFAULT '',
    people TEXT NOT NULL DEFAULT '[]',
    involved_team_ids TEXT NOT NULL DEFAULT '[]',
    related_opportunity_ids TEXT NOT NULL DEFAULT '[]',
    activity_grouping_id TEXT,
    UNIQUE (customer_org_id, account_id, touchpoint_id)
)`

// CreateActivityEventsIndexesSQL creates indexes for the API's read paths.
var CreateActivityEventsIndexesSQL = []string{
	// Timeline listing and date-range filtering
	`CREATE INDEX IF NOT EXISTS idx_events_account_time
		ON activity_events(customer_org_id, account_id, timestamp_ms)`,

	// Daily counts filtered by direction
	`CREATE INDEX IF NOT EXISTS idx_events_account_direction_time
		ON activity_events(customer_org_id, account_id, direction, timestamp_ms)`,
}

// CreatePersonsTableSQL creates the persons table.
const CreatePersonsTableSQL = `
CREATE TABLE IF NOT EXISTS persons (
    id TEXT PRIMARY KEY,
    customer_org_id TEXT NOT NULL,
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    email_address TEXT NOT NULL DEFAULT '',
    job_title TEXT
)`

// CreatePersonsIndexesSQL creates indexes for person lookups.
var CreatePersonsIndexesSQL = []string{
	`CREATE INDEX IF NOT EXISTS idx_persons_org ON persons(customer_org_id)`,
}

// AllSchemaSQL returns every schema statement in execution order.
func AllSchemaSQL() []string {
	stmts := []string{
		CreateActivityEventsTableSQL,
		CreatePersonsTableSQL,
	}
	stmts = append(stmts, CreateActivityEventsIndexesSQL...)
	stmts = append(stmts, CreatePersonsIndexesSQL...)
	return stmts
}
