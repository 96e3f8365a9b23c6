package reports

import "healthportal/internal/domain"

// StaticProvider serves the sample report set until the real reporting
// service is connected.
type StaticProvider struct {
	reports []domain.TestReport
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{reports: testReports}
}

func (p *StaticProvider) Reports() []domain.TestReport {
	out := make([]domain.TestReport, len(p.reports))
	copy(out, p.reports)
	return out
}

func (p *StaticProvider) ByID(id string) (domain.TestReport, bool) {
	for _, r := range p.reports {
		if r.ID == id {
			return r, true
		}
	}
	return domain.TestReport{}, false
}

var testReports = []domain.TestReport{
	{
		ID:       "1",
		TestName: "Complete Blood Count (CBC)",
		Date:     "2024-01-10",
		Status:   domain.ReportCompleted,
		Doctor:   "Dr. Priya Sharma",
		Location: "Connaught Place Center",
		Price:    350,
		Results: &domain.TestResults{
			Summary: "All values within normal range. No significant abnormalities detected.",
			Findings: []domain.Finding{
				{Parameter: "Hemoglobin", Value: "13.8", Range: "12.0-15.5 g/dL", Status: domain.FindingNormal},
				{Parameter: "WBC Count", Value: "7.2", Range: "4.0-11.0 K/uL", Status: domain.FindingNormal},
				{Parameter: "Platelet Count", Value: "285", Range: "150-450 K/uL", Status: domain.FindingNormal},
			},
		},
	},
	{
		ID:       "2",
		TestName: "Blood Sugar (Fasting)",
		Date:     "2024-01-08",
		Status:   domain.ReportPending,
		Doctor:   "Dr. Rajesh Kumar",
		Location: "Karol Bagh Clinic",
		Price:    120,
	},
}
