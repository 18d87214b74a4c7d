package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/touchline/touchline/pkg/types"
)

// InsertPersons upserts a batch of persons inside a single transaction.
// Existing rows with the same id are overwritten with the new data.
func (s *Store) InsertPersons(ctx context.Context, persons []types.Person) (int, error) {
	if len(persons) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt := tx.StmtContext(ctx, s.insertPersonStmt)
	for i, p := range persons {
		if p.ID == "" {
			return 0, fmt.Errorf("store: person %d: id is required", i)
		}
		_, err := stmt.ExecContext(ctx,
			p.ID, p.CustomerOrgID, p.FirstName, p.LastName, p.EmailAddress, nullable(p.JobTitle),
		)
		if err != nil {
			return 0, fmt.Errorf("store: person %d: insert failed: %w", i, err)
		}
	}

	// Count inside the transaction: the write lock guarantees no other
	// writer can slip a row in between this count and the commit.
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&count); err != nil {
		return 0, fmt.Errorf("store: failed to count persons: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: failed to commit: %w", err)
	}
	s.filterMu.Lock()
	if s.personFilter != nil {
		for _, p := range persons {
			s.personFilter.Add(p.ID)
		}
		s.personRows = count
	}
	s.filterMu.Unlock()
	return len(persons), nil
}

// PersonsByID returns the persons with the given ids, keyed by id.
// Ids with no matching row are simply absent from the result.
func (s *Store) PersonsByID(ctx context.Context, ids []string) (map[string]types.Person, error) {
	if len(ids) == 0 {
		return map[string]types.Person{}, nil
	}

	// Drop ids the bloom filter proves were never loaded before touching
	// the database. A false positive just means one wasted placeholder.
	filter, err := s.personFilterFor(ctx)
	if err != nil {
		return nil, err
	}
	candidates := ids[:0:0]
	for _, id := range ids {
		if filter.MayContain(id) {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return map[string]types.Person{}, nil
	}

	placeholders := strings.Repeat("?,", len(candidates))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]interface{}, len(candidates))
	for i, id := range candidates {
		args[i] = id
	}

	rows, err := s.readDB.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, customer_org_id, first_name, last_name, email_address, job_title
		FROM persons WHERE id IN (%s)`, placeholders), args...)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query persons: %w", err)
	}
	defer rows.Close()

	result := make(map[string]types.Person, len(ids))
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		result[p.ID] = p
	}
	return result, rows.Err()
}

// RandomPersons returns up to limit random persons for the customer
// organization. Kept for the debug sampling endpoint.
func (s *Store) RandomPersons(ctx context.Context, customerOrgID string, limit int) ([]types.Person, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.readDB.QueryContext(ctx, `
		SELECT id, customer_org_id, first_name, last_name, email_address, job_title
		FROM persons
		WHERE customer_org_id = ?
		ORDER BY RANDOM()
		LIMIT ?`, customerOrgID, limit)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query random persons: %w", err)
	}
	defer rows.Close()

	persons := []types.Person{}
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	return persons, rows.Err()
}

func scanPerson(rows *sql.Rows) (types.Person, error) {
	var p types.Person
	var jobTitle sql.NullString
	if err := rows.Scan(&p.ID, &p.CustomerOrgID, &p.FirstName, &p.LastName, &p.EmailAddress, &jobTitle); err != nil {
		return types.Person{}, fmt.Errorf("store: failed to scan person row: %w", err)
	}
	p.JobTitle = jobTitle.String
	return p, nil
}
