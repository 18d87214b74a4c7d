package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/touchline/touchline/pkg/types"
)

// EventFilter selects the events returned by ListEvents.
// CustomerOrgID and AccountID are required; Start and End are optional
// inclusive bounds on the event timestamp.
type EventFilter struct {
	CustomerOrgID string
	AccountID     string
	Start         *time.Time
	End           *time.Time
	Page          int
	PageSize      int
}

// Pagination describes the page window of a ListEvents result.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// EventPage is one page of the account timeline, oldest first.
type EventPage struct {
	Events     []types.ActivityEvent `json:"events"`
	Pagination Pagination            `json:"pagination"`
}

const eventColumns = `id, customer_org_id, account_id, touchpoint_id, timestamp_ms,
	activity, channel, status, record_type,
	source_record_type, source_record_id,
	campaign_id, campaign_name, direction,
	people, involved_team_ids, related_opportunity_ids,
	activity_grouping_id`

// InsertEvents inserts a batch of events inside a single transaction.
// Rows that collide on the (customer_org_id, account_id, touchpoint_id)
// natural key are skipped, not overwritten. Returns inserted and skipped
// counts.
func (s *Store) InsertEvents(ctx context.Context, events []types.ActivityEvent) (inserted, skipped int, err error) {
	if len(events) == 0 {
		return 0, 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("store: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt := tx.StmtContext(ctx, s.insertEventStmt)
	for i, ev := range events {
		people, err := json.Marshal(ev.People)
		if err != nil {
			return 0, 0, fmt.Errorf("store: event %d: failed to encode people: %w", i, err)
		}
		teams, err := json.Marshal(stringsOrEmpty(ev.InvolvedTeamIDs))
		if err != nil {
			return 0, 0, fmt.Errorf("store: event %d: failed to encode involved_team_ids: %w", i, err)
		}
		opps, err := json.Marshal(stringsOrEmpty(ev.RelatedOpportunityIDs))
		if err != nil {
			return 0, 0, fmt.Errorf("store: event %d: failed to encode related_opportunity_ids: %w", i, err)
		}

		res, err := stmt.ExecContext(ctx,
			ev.CustomerOrgID, ev.AccountID, ev.TouchpointID, ev.Timestamp.UTC().UnixMilli(),
			ev.Activity, ev.Channel, ev.Status, nullable(ev.RecordType),
			nullable(ev.SourceRecordType), nullable(ev.SourceRecordID),
			nullable(ev.CampaignID), nullable(ev.CampaignName), ev.Direction,
			string(people), string(teams), string(opps),
			nullable(ev.ActivityGroupingID),
		)
		if err != nil {
			return 0, 0, fmt.Errorf("store: event %d: insert failed: %w", i, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return 0, 0, fmt.Errorf("store: event %d: rows affected: %w", i, err)
		}
		if n == 0 {
			skipped++
		} else {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("store: failed to commit: %w", err)
	}
	return inserted, skipped, nil
}

// ListEvents returns one page of the account timeline, ordered by
// timestamp ascending (id breaks ties so pagination is stable). People
// references are enriched from the persons table where the id is known.
// An out-of-range page is clamped to the nearest valid page.
func (s *Store) ListEvents(ctx context.Context, f EventFilter) (*EventPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 50
	}

	where := "customer_org_id = ? AND account_id = ?"
	args := []interface{}{f.CustomerOrgID, f.AccountID}
	if f.Start != nil {
		where += " AND timestamp_ms >= ?"
		args = append(args, f.Start.UTC().UnixMilli())
	}
	if f.End != nil {
		where += " AND timestamp_ms <= ?"
		args = append(args, f.End.UTC().UnixMilli())
	}

	var total int64
	countSQL := "SELECT COUNT(*) FROM activity_events WHERE " + where
	if err := s.readDB.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("store: failed to count events: %w", err)
	}

	totalPages := int((total + int64(f.PageSize) - 1) / int64(f.PageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if f.Page > totalPages {
		f.Page = totalPages
	}

	querySQL := fmt.Sprintf(`
		SELECT %s FROM activity_events
		WHERE %s
		ORDER BY timestamp_ms ASC, id ASC
		LIMIT ? OFFSET ?`, eventColumns, where)
	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)

	rows, err := s.readDB.QueryContext(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}

	if err := s.enrichPeople(ctx, events); err != nil {
		return nil, err
	}

	return &EventPage{
		Events: events,
		Pagination: Pagination{
			CurrentPage: f.Page,
			TotalPages:  totalPages,
			TotalCount:  total,
			HasNext:     f.Page < totalPages,
			HasPrevious: f.Page > 1,
		},
	}, nil
}

// RandomEvents returns up to limit random events for the account.
// Kept for the debug sampling endpoint.
func (s *Store) RandomEvents(ctx context.Context, customerOrgID, accountID string, limit int) ([]types.ActivityEvent, error) {
	if limit <= 0 {
		limit = 10
	}

	querySQL := fmt.Sprintf(`
		SELECT %s FROM activity_events
		WHERE customer_org_id = ? AND account_id = ?
		ORDER BY RANDOM()
		LIMIT ?`, eventColumns)

	rows, err := s.readDB.QueryContext(ctx, querySQL, customerOrgID, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query random events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Customers returns the distinct customer organizations observed in the
// event store, each with its sorted list of accounts.
func (s *Store) Customers(ctx context.Context) ([]types.Customer, error) {
	rows, err := s.readDB.QueryContext(ctx, `
		SELECT DISTINCT customer_org_id, account_id
		FROM activity_events
		ORDER BY customer_org_id, account_id`)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []types.Customer{}
	for rows.Next() {
		var orgID, accountID string
		if err := rows.Scan(&orgID, &accountID); err != nil {
			return nil, fmt.Errorf("store: failed to scan customer row: %w", err)
		}

		account := types.Account{AccountID: accountID, DisplayName: accountID}
		if n := len(customers); n > 0 && customers[n-1].CustomerOrgID == orgID {
			customers[n-1].Accounts = append(customers[n-1].Accounts, account)
			continue
		}
		customers = append(customers, types.Customer{
			CustomerOrgID: orgID,
			Accounts:      []types.Account{account},
		})
	}

	return customers, rows.Err()
}

// enrichPeople replaces each event's denormalized person refs with
// current data from the persons table. Unknown ids keep their snapshot.
func (s *Store) enrichPeople(ctx context.Context, events []types.ActivityEvent) error {
	idSet := make(map[string]struct{})
	for _, ev := range events {
		for _, ref := range ev.People {
			if ref.ID != "" {
				idSet[ref.ID] = struct{}{}
			}
		}
	}
	if len(idSet) == 0 {
		return nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	persons, err := s.PersonsByID(ctx, ids)
	if err != nil {
		return err
	}

	for i := range events {
		for j, ref := range events[i].People {
			p, ok := persons[ref.ID]
			if !ok {
				continue
			}
			events[i].People[j] = types.PersonRef{
				ID:               p.ID,
				FirstName:        p.FirstName,
				LastName:         p.LastName,
				EmailAddress:     p.EmailAddress,
				RoleInTouchpoint: ref.RoleInTouchpoint,
			}
		}
	}
	return nil
}

// scanEvents decodes event rows, including the JSON-encoded people and
// team arrays.
func scanEvents(rows *sql.Rows) ([]types.ActivityEvent, error) {
	events := []types.ActivityEvent{}
	for rows.Next() {
		var (
			ev          types.ActivityEvent
			timestampMs int64
			activity    sql.NullString
			recordType  sql.NullString
			srcType     sql.NullString
			srcID       sql.NullString
			campaignID  sql.NullString
			campaign    sql.NullString
			groupingID  sql.NullString
			peopleJSON  string
			teamsJSON   string
			oppsJSON    string
		)

		err := rows.Scan(
			&ev.ID, &ev.CustomerOrgID, &ev.AccountID, &ev.TouchpointID, &timestampMs,
			&activity, &ev.Channel, &ev.Status, &recordType,
			&srcType, &srcID,
			&campaignID, &campaign, &ev.Direction,
			&peopleJSON, &teamsJSON, &oppsJSON,
			&groupingID,
		)
		if err != nil {
			return nil, fmt.Errorf("store: failed to scan event row: %w", err)
		}

		ev.Timestamp = time.UnixMilli(timestampMs).UTC()
		ev.Activity = activity.String
		ev.RecordType = recordType.String
		ev.SourceRecordType = srcType.String
		ev.SourceRecordID = srcID.String
		ev.CampaignID = campaignID.String
		ev.CampaignName = campaign.String
		ev.ActivityGroupingID = groupingID.String

		if err := json.Unmarshal([]byte(peopleJSON), &ev.People); err != nil {
			return nil, fmt.Errorf("store: event %d: bad people JSON: %w", ev.ID, err)
		}
		if err := json.Unmarshal([]byte(teamsJSON), &ev.InvolvedTeamIDs); err != nil {
			return nil, fmt.Errorf("store: event %d: bad involved_team_ids JSON: %w", ev.ID, err)
		}
		if err := json.Unmarshal([]byte(oppsJSON), &ev.RelatedOpportunityIDs); err != nil {
			return nil, fmt.Errorf("store: event %d: bad related_opportunity_ids JSON: %w", ev.ID, err)
		}
		if ev.People == nil {
			ev.People = []types.PersonRef{}
		}
		if ev.InvolvedTeamIDs == nil {
			ev.InvolvedTeamIDs = []string{}
		}

		events = append(events, ev)
	}
	return events, rows.Err()
}

// nullable maps empty strings to NULL so optional columns stay NULL in
// the database instead of accumulating empty strings.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
