package types

// Person represents a single person/contact belonging to a customer
// organization. Field names match the keys in the persons JSONL fixtures
// so the ingestion command can decode records directly.
type Person struct {
	// ID is the primary key, scoped to the customer organization.
	ID string `json:"id"`

	// CustomerOrgID identifies the owning customer organization.
	CustomerOrgID string `json:"customer_org_id"`

	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
	JobTitle     string `json:"job_title,omitempty"`
}

// FullName returns "First Last" with surrounding whitespace trimmed.
func (p Person) FullName() string {
	name := p.FirstName + " " + p.LastName
	// Avoid a lone space when either part is empty.
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return name
}
