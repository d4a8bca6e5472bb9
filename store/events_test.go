package store

import (
	"testing"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesMutations(t *testing.T) {
	s := newSeeded(t)
	events, cancel := s.Subscribe()
	defer cancel()

	p := s.AddProduct(models.Product{Name: "Roadster"})
	_, err := s.ToggleReviewApproval("1")
	require.NoError(t, err)
	s.UpdateSiteContent(models.SiteContentPatch{})
	assert.ErrorIs(t, s.DeleteOrder("missing"), ErrNotFound)

	got := []Event{<-events, <-events, <-events}
	assert.Equal(t, CollectionProducts, got[0].Collection)
	assert.Equal(t, ActionCreated, got[0].Action)
	assert.Equal(t, p.ID, got[0].ID)
	assert.Equal(t, Event{Collection: CollectionReviews, Action: ActionToggled, ID: "1", At: got[1].At}, got[1])
	assert.Equal(t, CollectionSiteContent, got[2].Collection)

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for failed mutation: %+v", ev)
	default:
	}
}

func TestCancelClosesChannel(t *testing.T) {
	s := newSeeded(t)
	events, cancel := s.Subscribe()
	cancel()
	cancel()

	_, open := <-events
	assert.False(t, open)

	// publishing after cancel must not panic
	s.AddOrder(models.Order{CustomerName: "late"})
}

func TestSlowSubscriberDoesNotBlockWriters(t *testing.T) {
	s := newSeeded(t)
	_, cancel := s.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer*3; i++ {
		s.AddReview(models.Review{Name: "flood", Rating: 3})
	}
	assert.Len(t, s.Reviews(), 3+subscriberBuffer*3)
}
