package store

import "github.com/amandhingra1/charzdev-ev/models"

// Reviews returns every review, approved or not, in insertion order.
func (s *Store) Reviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Review(nil), s.reviews...)
}

// PublicReviews returns only approved reviews, keeping their relative order.
func (s *Store) PublicReviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.approved()
}

func (s *Store) approved() []models.Review {
	out := make([]models.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.Approved {
			out = append(out, r)
		}
	}
	return out
}

// AverageRating is the mean rating of approved reviews, or MaxRating when
// there are none.
func (s *Store) AverageRating() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	approved := s.approved()
	if len(approved) == 0 {
		return models.MaxRating
	}
	sum := 0
	for _, r := range approved {
		sum += r.Rating
	}
	return float64(sum) / float64(len(approved))
}

func (s *Store) Review(id string) (models.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.reviewIndex(id)
	if i < 0 {
		return models.Review{}, false
	}
	return s.reviews[i], true
}

// AddReview stores r under a fresh id with its rating clamped. Approved is
// kept as given: the public form passes false, the admin form true.
func (s *Store) AddReview(r models.Review) models.Review {
	s.mu.Lock()
	r.ID = s.nextID(s.reviewIndex)
	r.Rating = models.ClampRating(r.Rating)
	if r.Date == "" {
		r.Date = s.now().Format(models.DateLayout)
	}
	s.reviews = append(s.reviews, r)
	s.mu.Unlock()

	s.publish(CollectionReviews, ActionCreated, r.ID)
	return r
}

func (s *Store) UpdateReview(id string, patch models.ReviewPatch) (models.Review, error) {
	s.mu.Lock()
	i := s.reviewIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Review{}, ErrNotFound
	}
	patch.Apply(&s.reviews[i])
	r := s.reviews[i]
	s.mu.Unlock()

	s.publish(CollectionReviews, ActionUpdated, id)
	return r, nil
}

func (s *Store) DeleteReview(id string) error {
	s.mu.Lock()
	i := s.reviewIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.reviews = append(s.reviews[:i:i], s.reviews[i+1:]...)
	s.mu.Unlock()

	s.publish(CollectionReviews, ActionDeleted, id)
	return nil
}

// ToggleReviewApproval flips Approved. It does not set it: two calls restore
// the original value. This is the admin "approve"/"hide" button.
func (s *Store) ToggleReviewApproval(id string) (models.Review, error) {
	s.mu.Lock()
	i := s.reviewIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Review{}, ErrNotFound
	}
	s.reviews[i].Approved = !s.reviews[i].Approved
	r := s.reviews[i]
	s.mu.Unlock()

	s.publish(CollectionReviews, ActionToggled, id)
	return r, nil
}
