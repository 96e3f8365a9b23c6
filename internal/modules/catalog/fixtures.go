package catalog

import "healthportal/internal/domain"

// StaticProvider serves the fixed catalog the portal ships with.
type StaticProvider struct {
	tests      []domain.LabTest
	categories []domain.Category
	locations  []domain.Location
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		tests:      labTests,
		categories: categories,
		locations:  locations,
	}
}

func (p *StaticProvider) Tests() []domain.LabTest {
	out := make([]domain.LabTest, len(p.tests))
	copy(out, p.tests)
	return out
}

func (p *StaticProvider) TestByID(id string) (domain.LabTest, bool) {
	for _, t := range p.tests {
		if t.ID == id {
			return t, true
		}
	}
	return domain.LabTest{}, false
}

func (p *StaticProvider) Categories() []domain.Category {
	out := make([]domain.Category, len(p.categories))
	copy(out, p.categories)
	return out
}

func (p *StaticProvider) Locations() []domain.Location {
	out := make([]domain.Location, len(p.locations))
	copy(out, p.locations)
	return out
}

func (p *StaticProvider) LocationByID(id string) (domain.Location, bool) {
	for _, l := range p.locations {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Location{}, false
}

var labTests = []domain.LabTest{
	{
		ID:          "1",
		Name:        "Complete Blood Count (CBC)",
		Description: "Comprehensive blood analysis including RBC, WBC, and platelets count",
		Price:       350,
		Duration:    "24 hours",
		Category:    "blood",
		Featured:    true,
	},
	{
		ID:                  "2",
		Name:                "Blood Sugar (Fasting)",
		Description:         "Fasting glucose test to check for diabetes and blood sugar levels",
		Price:               120,
		Duration:            "4 hours",
		Category:            "diabetes",
		PreparationRequired: true,
		Preparations: []string{
			"Fast for 8-12 hours before the test",
			"Only water is allowed during fasting",
			"Take medications as prescribed unless advised otherwise",
		},
		Featured: true,
	},
	{
		ID:                  "3",
		Name:                "Lipid Profile",
		Description:         "Cholesterol and triglyceride levels for heart health assessment",
		Price:               450,
		Duration:            "24 hours",
		Category:            "cardiovascular",
		PreparationRequired: true,
		Preparations: []string{
			"Fast for 9-12 hours before the test",
			"Avoid alcohol 24 hours before the test",
			"Continue regular medications unless advised otherwise",
		},
		Featured: true,
	},
	{
		ID:          "4",
		Name:        "Thyroid Profile (TSH, T3, T4)",
		Description: "Complete thyroid function test to evaluate hormone levels",
		Price:       650,
		Duration:    "48 hours",
		Category:    "hormonal",
	},
	{
		ID:                  "5",
		Name:                "Liver Function Test (LFT)",
		Description:         "Comprehensive liver enzyme panel to assess liver health",
		Price:               550,
		Duration:            "24 hours",
		Category:            "liver",
		PreparationRequired: true,
		Preparations: []string{
			"Fast for 8-12 hours before the test",
			"Avoid alcohol 48 hours before the test",
			"Inform about any medications you are taking",
		},
	},
	{
		ID:          "6",
		Name:        "Kidney Function Test (KFT)",
		Description: "Creatinine and urea levels to evaluate kidney function",
		Price:       400,
		Duration:    "24 hours",
		Category:    "kidney",
	},
}

var categories = []domain.Category{
	{Value: "all", Label: "All Categories"},
	{Value: "blood", Label: "Blood Tests"},
	{Value: "cardiovascular", Label: "Heart Health"},
	{Value: "hormonal", Label: "Hormonal"},
	{Value: "diabetes", Label: "Diabetes"},
	{Value: "liver", Label: "Liver"},
	{Value: "kidney", Label: "Kidney"},
}

var locations = []domain.Location{
	{ID: "connaught-place", Name: "Adarsh Krutika", Address: "molacha odha, Satara, Satara"},
	{ID: "karol-bagh", Name: "Patil Clinic", Address: "forest colony, shahu Nagar, Satara"},
	{ID: "lajpat-nagar", Name: "Shinde Laboratory", Address: "wadhe , Ashok Nagar, Satara"},
}
