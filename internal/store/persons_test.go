package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/touchline/touchline/pkg/types"
)

func TestInsertPersons_Upsert(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	n, err := st.InsertPersons(ctx, []types.Person{
		{ID: "p-1", CustomerOrgID: "org-1", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "p-2", CustomerOrgID: "org-1", FirstName: "Grace", LastName: "Hopper"},
	})
	if err != nil {
		t.Fatalf("InsertPersons failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows, got %d", n)
	}

	// Re-inserting the same id updates in place.
	if _, err := st.InsertPersons(ctx, []types.Person{
		{ID: "p-1", CustomerOrgID: "org-1", FirstName: "Ada", LastName: "Lovelace", JobTitle: "Engineer"},
	}); err != nil {
		t.Fatalf("InsertPersons failed: %v", err)
	}

	persons, err := st.PersonsByID(ctx, []string{"p-1", "p-2", "p-missing"})
	if err != nil {
		t.Fatalf("PersonsByID failed: %v", err)
	}
	if len(persons) != 2 {
		t.Fatalf("expected 2 persons, got %d", len(persons))
	}
	if persons["p-1"].JobTitle != "Engineer" {
		t.Errorf("expected updated job title, got %+v", persons["p-1"])
	}
	if _, ok := persons["p-missing"]; ok {
		t.Error("did not expect missing id in result")
	}
}

func TestInsertPersons_RequiresID(t *testing.T) {
	st := newTestStore(t)

	if _, err := st.InsertPersons(context.Background(), []types.Person{{FirstName: "Nobody"}}); err == nil {
		t.Error("expected error for empty id")
	}
}

func TestPersonsByID_Empty(t *testing.T) {
	st := newTestStore(t)

	persons, err := st.PersonsByID(context.Background(), nil)
	if err != nil {
		t.Fatalf("PersonsByID failed: %v", err)
	}
	if len(persons) != 0 {
		t.Errorf("expected empty map, got %v", persons)
	}
}

// A loader run in a separate process shares the database file with the
// running server. Rows it writes must be visible through the server's
// handle even though the server's bloom filter was seeded before they
// existed.
func TestPersonsByID_SeesRowsFromSecondHandle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "touchline.db")
	ctx := context.Background()

	server, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open server store: %v", err)
	}
	t.Cleanup(func() { server.Close() })

	loader, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open loader store: %v", err)
	}
	t.Cleanup(func() { loader.Close() })

	if _, err := loader.InsertPersons(ctx, []types.Person{
		{ID: "p-late", CustomerOrgID: "org-1", FirstName: "Ada", LastName: "Lovelace"},
	}); err != nil {
		t.Fatalf("InsertPersons failed: %v", err)
	}

	persons, err := server.PersonsByID(ctx, []string{"p-late"})
	if err != nil {
		t.Fatalf("PersonsByID failed: %v", err)
	}
	p, ok := persons["p-late"]
	if !ok {
		t.Fatal("person loaded through second handle not returned")
	}
	if p.FirstName != "Ada" {
		t.Errorf("got first name %q, want %q", p.FirstName, "Ada")
	}
}

func TestListEvents_EnrichesAcrossHandles(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "touchline.db")
	ctx := context.Background()

	server, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open server store: %v", err)
	}
	t.Cleanup(func() { server.Close() })

	ev := makeEvent("tp-1", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	ev.People = []types.PersonRef{{ID: "p-9", FirstName: "Stale"}}
	if _, _, err := server.InsertEvents(ctx, []types.ActivityEvent{ev}); err != nil {
		t.Fatalf("InsertEvents failed: %v", err)
	}

	loader, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open loader store: %v", err)
	}
	t.Cleanup(func() { loader.Close() })

	if _, err := loader.InsertPersons(ctx, []types.Person{
		{ID: "p-9", CustomerOrgID: "org-1", FirstName: "Ada", LastName: "Lovelace", EmailAddress: "ada@example.com"},
	}); err != nil {
		t.Fatalf("InsertPersons failed: %v", err)
	}

	page, err := server.ListEvents(ctx, EventFilter{CustomerOrgID: "org-1", AccountID: "acct-1"})
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(page.Events) != 1 || len(page.Events[0].People) != 1 {
		t.Fatalf("unexpected page shape: %+v", page.Events)
	}
	if got := page.Events[0].People[0].FirstName; got != "Ada" {
		t.Errorf("got first name %q, want %q", got, "Ada")
	}
}

func TestRandomPersons(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	var batch []types.Person
	for _, id := range []string{"p-1", "p-2", "p-3", "p-4", "p-5", "p-6", "p-7"} {
		batch = append(batch, types.Person{ID: id, CustomerOrgID: "org-1"})
	}
	batch = append(batch, types.Person{ID: "p-other", CustomerOrgID: "org-2"})
	if _, err := st.InsertPersons(ctx, batch); err != nil {
		t.Fatalf("InsertPersons failed: %v", err)
	}

	persons, err := st.RandomPersons(ctx, "org-1", 0)
	if err != nil {
		t.Fatalf("RandomPersons failed: %v", err)
	}
	if len(persons) != 5 {
		t.Errorf("expected default limit 5, got %d", len(persons))
	}
	for _, p := range persons {
		if p.CustomerOrgID != "org-1" {
			t.Errorf("unexpected org in sample: %+v", p)
		}
	}
}
