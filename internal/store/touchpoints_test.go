package store

import (
	"context"
	"testing"
	"time"

	"github.com/touchline/touchline/pkg/types"
)

func TestFirstTouchpoints(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, err := st.InsertPersons(ctx, []types.Person{
		{ID: "p-1", CustomerOrgID: "org-1", FirstName: "Ada", LastName: "Lovelace", EmailAddress: "ada@example.com"},
	}); err != nil {
		t.Fatalf("InsertPersons failed: %v", err)
	}

	first := makeEvent("tp-1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	first.People = []types.PersonRef{{ID: "p-1"}}

	later := makeEvent("tp-2", time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC))
	later.Activity = "Call"
	later.People = []types.PersonRef{
		{ID: "p-1"},
		{ID: "p-2", FirstName: "Grace", LastName: "Hopper", EmailAddress: "grace@example.com"},
	}

	// Outbound contact predates everything but must not count.
	outbound := makeEvent("tp-0", time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC))
	outbound.Direction = types.DirectionOut
	outbound.People = []types.PersonRef{{ID: "p-1"}, {ID: "p-2"}}

	if _, _, err := st.InsertEvents(ctx, []types.ActivityEvent{later, outbound, first}); err != nil {
		t.Fatalf("InsertEvents failed: %v", err)
	}

	touchpoints, err := st.FirstTouchpoints(ctx, "org-1", "acct-1")
	if err != nil {
		t.Fatalf("FirstTouchpoints failed: %v", err)
	}
	if len(touchpoints) != 2 {
		t.Fatalf("expected 2 touchpoints, got %d: %v", len(touchpoints), touchpoints)
	}

	// p-1's first inbound contact is tp-1; name comes from the persons table.
	tp := touchpoints[0]
	if tp.PersonID != "p-1" {
		t.Errorf("expected p-1 first, got %s", tp.PersonID)
	}
	if tp.PersonName != "Ada Lovelace" || tp.Email != "ada@example.com" {
		t.Errorf("expected enrichment from persons table, got %+v", tp)
	}
	if tp.Timestamp != "2024-03-01T10:00:00Z" || tp.Activity != "Email received" {
		t.Errorf("unexpected first event: %+v", tp)
	}

	// p-2 is unknown to the persons table, so the snapshot on the event wins.
	tp = touchpoints[1]
	if tp.PersonID != "p-2" || tp.PersonName != "Grace Hopper" || tp.Email != "grace@example.com" {
		t.Errorf("expected snapshot fallback, got %+v", tp)
	}
	if tp.Activity != "Call" {
		t.Errorf("expected tp-2 as first inbound for p-2, got %+v", tp)
	}
}

func TestFirstTouchpoints_UnknownPersonName(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	ev := makeEvent("tp-1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	ev.People = []types.PersonRef{{ID: "p-ghost"}}
	if _, _, err := st.InsertEvents(ctx, []types.ActivityEvent{ev}); err != nil {
		t.Fatalf("InsertEvents failed: %v", err)
	}

	touchpoints, err := st.FirstTouchpoints(ctx, "org-1", "acct-1")
	if err != nil {
		t.Fatalf("FirstTouchpoints failed: %v", err)
	}
	if len(touchpoints) != 1 || touchpoints[0].PersonName != "Unknown" {
		t.Errorf("expected Unknown fallback, got %v", touchpoints)
	}
}

func TestFirstTouchpoints_Empty(t *testing.T) {
	st := newTestStore(t)

	touchpoints, err := st.FirstTouchpoints(context.Background(), "org-x", "acct-x")
	if err != nil {
		t.Fatalf("FirstTouchpoints failed: %v", err)
	}
	if len(touchpoints) != 0 {
		t.Errorf("expected no touchpoints, got %v", touchpoints)
	}
}
