package store

import (
	"testing"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func publicIDs(s *Store) []string {
	var ids []string
	for _, r := range s.PublicReviews() {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestSubmittedReviewNeedsApproval(t *testing.T) {
	s := newSeeded(t)

	r := s.AddReview(models.Review{
		Name:        "Neha",
		Rating:      4,
		Comment:     "Smooth ride",
		ProductName: models.GeneralProductName,
	})
	assert.False(t, r.Approved)
	assert.Equal(t, "2024-02-01", r.Date)
	assert.Len(t, s.Reviews(), 4)
	assert.Len(t, s.PublicReviews(), 3)

	toggled, err := s.ToggleReviewApproval(r.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Approved)
	assert.Len(t, s.PublicReviews(), 4)
}

func TestToggleTwiceRestoresApproval(t *testing.T) {
	s := newSeeded(t)

	for _, id := range []string{"1", "2"} {
		before, _ := s.Review(id)
		_, err := s.ToggleReviewApproval(id)
		require.NoError(t, err)
		_, err = s.ToggleReviewApproval(id)
		require.NoError(t, err)
		after, _ := s.Review(id)
		assert.Equal(t, before.Approved, after.Approved)
	}
}

func TestPublicReviewsKeepInsertionOrder(t *testing.T) {
	s := newSeeded(t)
	a := s.AddReview(models.Review{Name: "A", Rating: 5, Approved: true})
	s.AddReview(models.Review{Name: "B", Rating: 5})
	c := s.AddReview(models.Review{Name: "C", Rating: 5, Approved: true})
	_, err := s.ToggleReviewApproval("2")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "3", a.ID, c.ID}, publicIDs(s))

	var want []string
	for _, r := range s.Reviews() {
		if r.Approved {
			want = append(want, r.ID)
		}
	}
	assert.Equal(t, want, publicIDs(s))
}

func TestRatingIsClamped(t *testing.T) {
	s := newSeeded(t)

	low := s.AddReview(models.Review{Name: "low", Rating: -2})
	assert.Equal(t, models.MinRating, low.Rating)

	high := 11
	r, err := s.UpdateReview(low.ID, models.ReviewPatch{Rating: &high})
	require.NoError(t, err)
	assert.Equal(t, models.MaxRating, r.Rating)
}

func TestAverageRating(t *testing.T) {
	s := newSeeded(t)
	assert.InDelta(t, 14.0/3.0, s.AverageRating(), 1e-9)

	empty := New(Seed{}, WithClock(fixedClock()))
	assert.Equal(t, float64(models.MaxRating), empty.AverageRating())

	// unapproved reviews do not count
	s.AddReview(models.Review{Name: "x", Rating: 1})
	assert.InDelta(t, 14.0/3.0, s.AverageRating(), 1e-9)
}

func TestDeleteReview(t *testing.T) {
	s := newSeeded(t)
	require.NoError(t, s.DeleteReview("2"))
	assert.Equal(t, []string{"1", "3"}, publicIDs(s))
}
