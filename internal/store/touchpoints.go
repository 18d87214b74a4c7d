package store

import (
	"context"
	"fmt"
	"time"

	"github.com/touchline/touchline/pkg/types"
)

// FirstTouchpoints returns, for every person referenced by any inbound
// event of the account, the earliest such event, ordered by timestamp
// ascending. Person names and emails come from the persons table when
// the id is known, falling back to the denormalized snapshot on the
// event.
func (s *Store) FirstTouchpoints(ctx context.Context, customerOrgID, accountID string) ([]types.FirstTouchpoint, error) {
	rows, err := s.readDB.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s FROM activity_events
		WHERE customer_org_id = ? AND account_id = ? AND direction = ?
		ORDER BY timestamp_ms ASC, id ASC`, eventColumns),
		customerOrgID, accountID, types.DirectionIn)
	if err != nil {
		return nil, fmt.Errorf("store: failed to query inbound events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}

	// First inbound event per person, in event order.
	seen := make(map[string]struct{})
	touchpoints := []types.FirstTouchpoint{}
	personIDs := []string{}
	for _, ev := range events {
		for _, ref := range ev.People {
			if ref.ID == "" {
				continue
			}
			if _, ok := seen[ref.ID]; ok {
				continue
			}
			seen[ref.ID] = struct{}{}
			personIDs = append(personIDs, ref.ID)

			name := joinName(ref.FirstName, ref.LastName)
			if name == "" {
				name = "Unknown"
			}
			touchpoints = append(touchpoints, types.FirstTouchpoint{
				PersonID:   ref.ID,
				PersonName: name,
				Email:      ref.EmailAddress,
				Timestamp:  ev.Timestamp.UTC().Format(time.RFC3339),
				Activity:   ev.Activity,
				Channel:    ev.Channel,
			})
		}
	}

	persons, err := s.PersonsByID(ctx, personIDs)
	if err != nil {
		return nil, err
	}
	for i := range touchpoints {
		p, ok := persons[touchpoints[i].PersonID]
		if !ok {
			continue
		}
		if name := p.FullName(); name != "" {
			touchpoints[i].PersonName = name
		}
		if p.EmailAddress != "" {
			touchpoints[i].Email = p.EmailAddress
		}
	}

	return touchpoints, nil
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
