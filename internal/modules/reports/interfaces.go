package reports

import "healthportal/internal/domain"

// Provider supplies the report collection produced by the external reporting
// collaborator. This module only reads it.
type Provider interface {
	Reports() []domain.TestReport
	ByID(id string) (domain.TestReport, bool)
}
