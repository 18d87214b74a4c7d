package types

// DailyCount is a (date, count) pair computed on query, never stored.
// Date is the local calendar date in YYYY-MM-DD form.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// FirstTouchpoint is the earliest recorded inbound event for a person
// within an account's activity history. Derived on query.
type FirstTouchpoint struct {
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name"`
	Email      string `json:"email"`
	Timestamp  string `json:"timestamp"`
	Activity   string `json:"activity"`
	Channel    string `json:"channel"`
}

// Account is a selectable account within a customer organization.
type Account struct {
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
}

// Customer groups the accounts observed for a customer organization.
// Derived from distinct (customer_org_id, account_id) pairs in the
// event store.
type Customer struct {
	CustomerOrgID string    `json:"customer_org_id"`
	Accounts      []Account `json:"accounts"`
}
