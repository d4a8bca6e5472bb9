package store

import "github.com/amandhingra1/charzdev-ev/models"

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.productIndex(id)
	if i < 0 {
		return models.Product{}, false
	}
	return s.products[i].Clone(), true
}

// AddProduct assigns p a fresh id and appends it. Any id already on p is
// ignored.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	p = p.Clone()
	p.ID = s.nextID(s.productIndex)
	s.products = append(s.products, p)
	s.mu.Unlock()

	s.publish(CollectionProducts, ActionCreated, p.ID)
	return p.Clone()
}

func (s *Store) UpdateProduct(id string, patch models.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	i := s.productIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Product{}, ErrNotFound
	}
	patch.Apply(&s.products[i])
	p := s.products[i].Clone()
	s.mu.Unlock()

	s.publish(CollectionProducts, ActionUpdated, id)
	return p, nil
}

// DeleteProduct removes the product only. Reviews and orders naming it keep
// their copies of its id and name.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	i := s.productIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.mu.Unlock()

	s.publish(CollectionProducts, ActionDeleted, id)
	return nil
}
