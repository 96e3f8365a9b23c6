package catalog

import "healthportal/internal/domain"

// Provider supplies the lab-test and location reference data. The static
// implementation backs the current portal; a service-backed one can replace
// it without touching search or booking logic.
type Provider interface {
	Tests() []domain.LabTest
	TestByID(id string) (domain.LabTest, bool)
	Categories() []domain.Category
	Locations() []domain.Location
	LocationByID(id string) (domain.Location, bool)
}
