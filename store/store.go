// Package store holds the site's products, reviews, orders and site content
// in process memory. Nothing is written anywhere else: a restart goes back to
// the seed.
package store

import (
	"errors"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/amandhingra1/charzdev-ev/models"
)

// ErrNotFound is returned by updates and deletes against an unknown id. The
// store is left untouched in that case.
var ErrNotFound = errors.New("record not found")

type Store struct {
	mu          sync.RWMutex
	products    []models.Product
	reviews     []models.Review
	orders      []models.Order
	siteContent models.SiteContent
	lastID      int64
	now         func() time.Time

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

type Option func(*Store)

// WithClock replaces time.Now for id assignment and review dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a store holding a copy of seed.
func New(seed Seed, opts ...Option) *Store {
	s := &Store{
		now:  time.Now,
		subs: make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, p := range seed.Products {
		p = p.Clone()
		if p.ID == "" || s.productIndex(p.ID) >= 0 {
			p.ID = s.nextID(s.productIndex)
		}
		s.products = append(s.products, p)
	}
	for _, r := range seed.Reviews {
		r.Rating = models.ClampRating(r.Rating)
		if r.ID == "" || s.reviewIndex(r.ID) >= 0 {
			r.ID = s.nextID(s.reviewIndex)
		}
		s.reviews = append(s.reviews, r)
	}
	for _, o := range seed.Orders {
		if o.ID == "" || s.orderIndex(o.ID) >= 0 {
			o.ID = s.nextID(s.orderIndex)
		}
		s.orders = append(s.orders, o)
	}
	s.siteContent = seed.SiteContent.Clone()
	return s
}

// Today is the store clock's date in models.DateLayout.
func (s *Store) Today() string {
	return s.now().Format(models.DateLayout)
}

// nextID returns a millisecond timestamp id, strictly greater than every id
// handed out before and not already present in the target collection.
// Callers hold s.mu.
func (s *Store) nextID(indexOf func(string) int) string {
	for {
		n := s.now().UnixMilli()
		if n <= s.lastID {
			n = s.lastID + 1
		}
		s.lastID = n
		id := strconv.FormatInt(n, 10)
		if indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store) productIndex(id string) int {
	return slices.IndexFunc(s.products, func(p models.Product) bool { return p.ID == id })
}

func (s *Store) reviewIndex(id string) int {
	return slices.IndexFunc(s.reviews, func(r models.Review) bool { return r.ID == id })
}

func (s *Store) orderIndex(id string) int {
	return slices.IndexFunc(s.orders, func(o models.Order) bool { return o.ID == id })
}

// Stats are the counters shown at the top of the admin dashboard.
type Stats struct {
	Products       int `json:"products"`
	Reviews        int `json:"reviews"`
	PendingReviews int `json:"pendingReviews"`
	Orders         int `json:"orders"`
	PendingOrders  int `json:"pendingOrders"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{
		Products: len(s.products),
		Reviews:  len(s.reviews),
		Orders:   len(s.orders),
	}
	for _, r := range s.reviews {
		if !r.Approved {
			st.PendingReviews++
		}
	}
	for _, o := range s.orders {
		if o.Status == models.OrderStatusPending {
			st.PendingOrders++
		}
	}
	return st
}
