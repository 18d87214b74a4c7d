package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/touchline/touchline/internal/bloom"
)

// Store is the SQLite-backed event store. It keeps a single write
// connection (ingestion is the only writer) and a small read-only pool
// for API queries, both in WAL mode so readers never block the writer.
type Store struct {
	db     *sql.DB // Write connection (single writer)
	readDB *sql.DB // Read connection pool (concurrent readers)
	dbPath string
	mu     sync.Mutex // Write-only lock (reads don't need this)

	insertEventStmt  *sql.Stmt
	insertPersonStmt *sql.Stmt

	// personFilter short-circuits directory lookups for person ids that
	// were never ingested. Events routinely reference people missing
	// from the directory export, so negative lookups are common. The
	// filter is reseeded whenever the persons row count moves, which
	// covers rows written by a separate loader process sharing the
	// database file.
	filterMu     sync.Mutex
	personFilter *bloom.Filter
	personRows   int
}

// Open opens (creating if needed) the event store at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("store: failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // Single writer
	db.SetMaxIdleConns(1)

	readDB, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&mode=ro")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: failed to open read database: %w", err)
	}
	readDB.SetMaxOpenConns(4)
	readDB.SetMaxIdleConns(4)
	readDB.SetConnMaxLifetime(5 * time.Minute)

	s := &Store{
		db:     db,
		readDB: readDB,
		dbPath: dbPath,
	}

	if err := s.initSchema(); err != nil {
		readDB.Close()
		db.Close()
		return nil, fmt.Errorf("store: failed to initialize schema: %w", err)
	}

	if err := s.prepareStatements(); err != nil {
		readDB.Close()
		db.Close()
		return nil, err
	}

	if _, err := s.personFilterFor(context.Background()); err != nil {
		readDB.Close()
		db.Close()
		return nil, err
	}

	return s, nil
}

// personFilterFor returns the person id bloom filter, seeding or
// reseeding it when the persons row count no longer matches the count
// the filter was built from.
func (s *Store) personFilterFor(ctx context.Context) (*bloom.Filter, error) {
	var count int
	if err := s.readDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&count); err != nil {
		return nil, fmt.Errorf("store: failed to count persons: %w", err)
	}

	s.filterMu.Lock()
	defer s.filterMu.Unlock()

	if s.personFilter != nil && count == s.personRows {
		return s.personFilter, nil
	}

	filter := bloom.NewWithEstimates(count+1000, 0.01)

	rows, err := s.readDB.QueryContext(ctx, `SELECT id FROM persons`)
	if err != nil {
		return nil, fmt.Errorf("store: failed to scan person ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("store: failed to scan person id: %w", err)
		}
		filter.Add(id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.personFilter = filter
	s.personRows = count
	return filter, nil
}

// initSchema creates all required tables and indexes.
func (s *Store) initSchema() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range AllSchemaSQL() {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// prepareStatements prepares the cached insert statements on the write
// connection.
func (s *Store) prepareStatements() error {
	insertEvent, err := s.db.Prepare(`
		INSERT OR IGNORE INTO activity_events (
			customer_org_id, account_id, touchpoint_id, timestamp_ms,
			activity, channel, status, record_type,
			source_record_type, source_record_id,
			campaign_id, campaign_name, direction,
			people, involved_team_ids, related_opportunity_ids,
			activity_grouping_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("store: failed to prepare event insert: %w", err)
	}
	s.insertEventStmt = insertEvent

	insertPerson, err := s.db.Prepare(`
		INSERT INTO persons (id, customer_org_id, first_name, last_name, email_address, job_title)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			customer_org_id = excluded.customer_org_id,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email_address = excluded.email_address,
			job_title = excluded.job_title`)
	if err != nil {
		return fmt.Errorf("store: failed to prepare person insert: %w", err)
	}
	s.insertPersonStmt = insertPerson

	return nil
}

// Close closes both database connections.
func (s *Store) Close() error {
	if s.insertEventStmt != nil {
		s.insertEventStmt.Close()
	}
	if s.insertPersonStmt != nil {
		s.insertPersonStmt.Close()
	}
	if err := s.readDB.Close(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}
