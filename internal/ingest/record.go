package ingest

import (
	"encoding/json"
	"fmt"

	"github.com/touchline/touchline/pkg/types"
)

// eventRecord is the wire shape of one event line. The timestamp is
// kept raw so ParseTimestamp can accept either epoch ms or ISO-8601,
// and person refs carry both historical id keys.
type eventRecord struct {
	CustomerOrgID         string          `json:"customer_org_id"`
	AccountID             string          `json:"account_id"`
	TouchpointID          string          `json:"touchpoint_id"`
	Timestamp             json.RawMessage `json:"timestamp"`
	Activity              string          `json:"activity"`
	Channel               string          `json:"channel"`
	Status                string          `json:"status"`
	RecordType            string          `json:"record_type"`
	SourceRecordType      string          `json:"source_record_type"`
	SourceRecordID        string          `json:"source_record_id"`
	CampaignID            string          `json:"campaign_id"`
	CampaignName          string          `json:"campaign_name"`
	Direction             string          `json:"direction"`
	People                []personRecord  `json:"people"`
	InvolvedTeamIDs       []string        `json:"involved_team_ids"`
	RelatedOpportunityIDs []string        `json:"related_opportunity_ids"`
	ActivityGroupingID    string          `json:"activity_grouping_id"`
}

// personRecord tolerates both "id" and the legacy "person_id" key used
// by older exporters.
type personRecord struct {
	ID               string `json:"id"`
	PersonID         string `json:"person_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	EmailAddress     string `json:"email_address"`
	RoleInTouchpoint string `json:"role_in_touchpoint"`
}

func (p personRecord) ref() types.PersonRef {
	id := p.ID
	if id == "" {
		id = p.PersonID
	}
	return types.PersonRef{
		ID:               id,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		EmailAddress:     p.EmailAddress,
		RoleInTouchpoint: p.RoleInTouchpoint,
	}
}

// decodeEvent parses and validates a single JSONL event line.
func decodeEvent(line []byte) (types.ActivityEvent, error) {
	var rec eventRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return types.ActivityEvent{}, fmt.Errorf("malformed JSON: %w", err)
	}
	if rec.CustomerOrgID == "" {
		return types.ActivityEvent{}, fmt.Errorf("'customer_org_id' field is required")
	}
	if rec.AccountID == "" {
		return types.ActivityEvent{}, fmt.Errorf("'account_id' field is required")
	}
	if rec.TouchpointID == "" {
		return types.ActivityEvent{}, fmt.Errorf("'touchpoint_id' field is required")
	}
	ts, err := ParseTimestamp(rec.Timestamp)
	if err != nil {
		return types.ActivityEvent{}, err
	}

	ev := types.ActivityEvent{
		CustomerOrgID:         rec.CustomerOrgID,
		AccountID:             rec.AccountID,
		TouchpointID:          rec.TouchpointID,
		Timestamp:             ts,
		Activity:              rec.Activity,
		Channel:               rec.Channel,
		Status:                rec.Status,
		RecordType:            rec.RecordType,
		SourceRecordType:      rec.SourceRecordType,
		SourceRecordID:        rec.SourceRecordID,
		CampaignID:            rec.CampaignID,
		CampaignName:          rec.CampaignName,
		Direction:             rec.Direction,
		InvolvedTeamIDs:       rec.InvolvedTeamIDs,
		RelatedOpportunityIDs: rec.RelatedOpportunityIDs,
		ActivityGroupingID:    rec.ActivityGroupingID,
	}
	for _, p := range rec.People {
		ev.People = append(ev.People, p.ref())
	}
	return ev, nil
}

// decodePerson parses and validates a single JSONL person line.
func decodePerson(line []byte) (types.Person, error) {
	var p types.Person
	if err := json.Unmarshal(line, &p); err != nil {
		return types.Person{}, fmt.Errorf("malformed JSON: %w", err)
	}
	if p.ID == "" {
		return types.Person{}, fmt.Errorf("'id' field is required")
	}
	return p, nil
}
