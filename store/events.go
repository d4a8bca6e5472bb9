package store

import "time"

type Collection string

const (
	CollectionProducts    Collection = "products"
	CollectionReviews     Collection = "reviews"
	CollectionOrders      Collection = "orders"
	CollectionSiteContent Collection = "siteContent"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
	ActionToggled Action = "toggled"
)

// Event describes one committed mutation.
type Event struct {
	Collection Collection `json:"collection"`
	Action     Action     `json:"action"`
	ID         string     `json:"id,omitempty"`
	At         time.Time  `json:"at"`
}

const subscriberBuffer = 32

// Subscribe returns a channel that receives an Event after every successful
// mutation, and a cancel func that closes it. A subscriber that falls
// subscriberBuffer events behind misses events instead of stalling writers.
func (s *Store) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once bool
	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if once {
			return
		}
		once = true
		delete(s.subs, id)
		close(ch)
	}
	return ch, cancel
}

// publish must be called without s.mu held.
func (s *Store) publish(c Collection, a Action, id string) {
	ev := Event{Collection: c, Action: a, ID: id, At: s.now()}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
