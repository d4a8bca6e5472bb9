package store

import "github.com/amandhingra1/charzdev-ev/models"

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

func (s *Store) Order(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.orderIndex(id)
	if i < 0 {
		return models.Order{}, false
	}
	return s.orders[i], true
}

// AddOrder stores o under a fresh id. A missing status becomes pending and a
// missing date becomes today.
func (s *Store) AddOrder(o models.Order) models.Order {
	s.mu.Lock()
	o.ID = s.nextID(s.orderIndex)
	if o.Status == "" {
		o.Status = models.OrderStatusPending
	}
	if o.Date == "" {
		o.Date = s.now().Format(models.DateLayout)
	}
	s.orders = append(s.orders, o)
	s.mu.Unlock()

	s.publish(CollectionOrders, ActionCreated, o.ID)
	return o
}

func (s *Store) UpdateOrder(id string, patch models.OrderPatch) (models.Order, error) {
	s.mu.Lock()
	i := s.orderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Order{}, ErrNotFound
	}
	patch.Apply(&s.orders[i])
	o := s.orders[i]
	s.mu.Unlock()

	s.publish(CollectionOrders, ActionUpdated, id)
	return o, nil
}

func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	i := s.orderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.orders = append(s.orders[:i:i], s.orders[i+1:]...)
	s.mu.Unlock()

	s.publish(CollectionOrders, ActionDeleted, id)
	return nil
}
