package catalog

import "healthportal/internal/domain"

type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// ListTests runs the catalog search over the full test collection.
func (s *Service) ListTests(query, category, sortKey string) []domain.LabTest {
	return Search(s.provider.Tests(), query, category, sortKey)
}

func (s *Service) FeaturedTests() []domain.LabTest {
	all := s.provider.Tests()
	out := make([]domain.LabTest, 0, len(all))
	for _, t := range all {
		if t.Featured {
			out = append(out, t)
		}
	}
	return out
}

func (s *Service) TestByID(id string) (domain.LabTest, error) {
	t, ok := s.provider.TestByID(id)
	if !ok {
		return domain.LabTest{}, ErrTestNotFound
	}
	return t, nil
}

func (s *Service) Categories() []domain.Category {
	return s.provider.Categories()
}

func (s *Service) Locations() []domain.Location {
	return s.provider.Locations()
}
