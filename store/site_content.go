package store

import "github.com/amandhingra1/charzdev-ev/models"

func (s *Store) SiteContent() models.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.siteContent.Clone()
}

// UpdateSiteContent merges patch into the singleton record; see
// models.SiteContentPatch.Apply for the merge rules.
func (s *Store) UpdateSiteContent(patch models.SiteContentPatch) models.SiteContent {
	s.mu.Lock()
	patch.Apply(&s.siteContent)
	c := s.siteContent.Clone()
	s.mu.Unlock()

	s.publish(CollectionSiteContent, ActionUpdated, "")
	return c
}
