// Package router provides an in-process ingest notification bus so read
// paths can invalidate cached views when new activity arrives.
package router

import (
	"sync"

	"github.com/google/uuid"
)

// NotificationType represents the type of notification.
type NotificationType int

const (
	EventsIngested NotificationType = iota
	PersonsIngested
)

// Notification announces a completed ingest batch.
type Notification struct {
	Type          NotificationType
	CustomerOrgID string
	AccountID     string
	Inserted      int
	TimestampMs   int64
}

// Notifier is an in-process pub/sub bus for ingest visibility.
type Notifier struct {
	subscribers sync.Map
	bufferSize  int
}

// NewNotifier creates a new notifier instance.
func NewNotifier(bufferSize int) *Notifier {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &Notifier{bufferSize: bufferSize}
}

// Publish sends a notification to all matching subscribers.
// Non-blocking: if a subscriber's channel is full, the notification is dropped.
func (n *Notifier) Publish(notif Notification) {
	n.subscribers.Range(func(key, value interface{}) bool {
		sub := value.(*Subscriber)
		if n.matchesFilter(sub, notif.CustomerOrgID) {
			select {
			case sub.Ch <- notif:
			default:
				// Channel full - drop notification, do NOT block
			}
		}
		return true
	})
}

// Subscribe adds a subscriber. Filters are customer org ids; an empty
// filter list receives every notification.
func (n *Notifier) Subscribe(id string, filters []string) *Subscriber {
	sub := &Subscriber{
		ID:      id,
		Filters: filters,
		Ch:      make(chan Notification, n.bufferSize),
	}
	n.subscribers.Store(sub.ID, sub)
	return sub
}

// SubscribeAutoID adds a subscriber with a generated ID and returns its
// channel.
func (n *Notifier) SubscribeAutoID(filters ...string) chan Notification {
	sub := n.Subscribe("sub_"+uuid.NewString(), filters)
	return sub.Ch
}

// Unsubscribe removes a subscriber and closes their channel.
func (n *Notifier) Unsubscribe(subID string) {
	if value, ok := n.subscribers.LoadAndDelete(subID); ok {
		close(value.(*Subscriber).Ch)
	}
}

func (n *Notifier) matchesFilter(sub *Subscriber, customerOrgID string) bool {
	if len(sub.Filters) == 0 {
		return true
	}
	for _, filter := range sub.Filters {
		if filter == "" || filter == customerOrgID {
			return true
		}
	}
	return false
}

// Subscriber represents a notification subscriber.
type Subscriber struct {
	ID      string
	Filters []string
	Ch      chan Notification
}
