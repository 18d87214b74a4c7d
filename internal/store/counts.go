package store

import (
	"context"
	"fmt"

	"github.com/touchline/touchline/pkg/types"
)

// DailyCounts returns the number of events per UTC calendar date for the
// given account and direction, ordered by date ascending. The grouping
// happens in SQL; dates with no events are absent rather than zero.
func (s *Store) DailyCounts(ctx context.Context, customerOrgID, accountID, direction string) ([]types.DailyCount, error) {
	rows, err := s.readDB.QueryContext(ctx, `
		SELECT date(timestamp_ms / 1000, 'unixepoch') AS day, COUNT(*) AS count
		FROM activity_events
		WHERE customer_org_id = ? AND account_id = ? AND direction = ?
		GROUP BY day
		ORDER BY day ASC`, customerOrgID, accountID, direction)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query daily counts: %w", err)
	}
	defer rows.Close()

	counts := []types.DailyCount{}
	for rows.Next() {
		var dc types.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, fmt.Errorf("store: failed to scan daily count row: %w", err)
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}
