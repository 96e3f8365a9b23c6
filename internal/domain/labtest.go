package domain

// LabTest is static reference data, loaded at process start and never mutated.
type LabTest struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	Duration            string   `json:"duration"`
	Category            string   `json:"category"`
	PreparationRequired bool     `json:"preparation_required"`
	Preparations        []string `json:"preparations,omitempty"`
	Featured            bool     `json:"featured"`
}

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// TimeSlot is one entry of the fixed daily schedule template. Availability
// does not vary by date or test.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}
