// Package types provides core data types for the Touchline activity timeline.
package types

import "time"

// Direction values recorded on activity events.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// ActivityEvent represents a single customer-facing activity/touchpoint event.
// Events are created by ingestion and are read-only from the API's perspective.
// The natural key is (customer_org_id, account_id, touchpoint_id).
type ActivityEvent struct {
	// ID is the store-assigned row identifier.
	ID int64 `json:"id"`

	// CustomerOrgID identifies the customer organization the event belongs to.
	CustomerOrgID string `json:"customer_org_id"`

	// AccountID identifies the account within the customer organization.
	AccountID string `json:"account_id"`

	// TouchpointID is the source system's identifier for this touchpoint.
	TouchpointID string `json:"touchpoint_id,omitempty"`

	// Timestamp is when the activity occurred, always UTC.
	Timestamp time.Time `json:"timestamp"`

	// Activity is the free-text description of the activity.
	Activity string `json:"activity"`

	// Channel is the communication channel (email, call, meeting, ...).
	Channel string `json:"channel"`

	// Status is the event status in the source system.
	Status string `json:"status"`

	// RecordType categorizes the event in the source system.
	RecordType string `json:"record_type,omitempty"`

	// SourceRecordType and SourceRecordID link back to the source record.
	SourceRecordType string `json:"source_record_type,omitempty"`
	SourceRecordID   string `json:"source_record_id,omitempty"`

	// CampaignID and CampaignName are optional campaign linkage.
	CampaignID   string `json:"campaign_id,omitempty"`
	CampaignName string `json:"campaign_name,omitempty"`

	// Direction is IN for inbound activity, OUT for outbound.
	Direction string `json:"direction"`

	// People is the denormalized subset of persons involved in the event.
	People []PersonRef `json:"people"`

	// InvolvedTeamIDs lists the internal teams involved.
	InvolvedTeamIDs []string `json:"involved_team_ids"`

	// RelatedOpportunityIDs lists linked opportunities.
	RelatedOpportunityIDs []string `json:"related_opportunity_ids,omitempty"`

	// ActivityGroupingID groups related events together.
	ActivityGroupingID string `json:"activity_grouping_id,omitempty"`
}

// PersonRef is the denormalized person reference embedded in an event's
// people array. Fields other than ID may be stale snapshots; the API
// enriches them from the persons table when the id is known.
type PersonRef struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	EmailAddress     string `json:"email_address,omitempty"`
	RoleInTouchpoint string `json:"role_in_touchpoint,omitempty"`
}
