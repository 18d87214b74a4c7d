package router

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	n := NewNotifier(4)

	sub := n.Subscribe("dashboard", nil)
	defer n.Unsubscribe(sub.ID)

	n.Publish(Notification{
		Type:          EventsIngested,
		CustomerOrgID: "acme",
		AccountID:     "acct-1",
		Inserted:      42,
	})

	select {
	case notif := <-sub.Ch:
		if notif.Type != EventsIngested {
			t.Errorf("expected EventsIngested, got %v", notif.Type)
		}
		if notif.CustomerOrgID != "acme" || notif.Inserted != 42 {
			t.Errorf("unexpected notification: %+v", notif)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestOrgFilter(t *testing.T) {
	n := NewNotifier(4)

	acmeCh := n.SubscribeAutoID("acme")
	allCh := n.SubscribeAutoID()

	n.Publish(Notification{Type: EventsIngested, CustomerOrgID: "globex"})

	select {
	case notif := <-acmeCh:
		t.Errorf("acme subscriber should not see globex: %+v", notif)
	default:
	}

	select {
	case <-allCh:
	case <-time.After(time.Second):
		t.Fatal("unfiltered subscriber missed notification")
	}
}

func TestFullChannelDropsInsteadOfBlocking(t *testing.T) {
	n := NewNotifier(1)

	ch := n.SubscribeAutoID()

	// Second publish must not block even though nobody is draining.
	done := make(chan struct{})
	go func() {
		n.Publish(Notification{Type: PersonsIngested})
		n.Publish(Notification{Type: PersonsIngested})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber channel")
	}

	if len(ch) != 1 {
		t.Errorf("expected exactly 1 buffered notification, got %d", len(ch))
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	n := NewNotifier(1)

	sub := n.Subscribe("closing", nil)
	n.Unsubscribe(sub.ID)

	if _, open := <-sub.Ch; open {
		t.Error("expected channel to be closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	n.Publish(Notification{Type: EventsIngested, CustomerOrgID: "acme"})
}
