package domain

type ReportStatus string

const (
	ReportCompleted  ReportStatus = "completed"
	ReportPending    ReportStatus = "pending"
	ReportInProgress ReportStatus = "in-progress"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportCompleted, ReportPending, ReportInProgress:
		return true
	}
	return false
}

type FindingStatus string

const (
	FindingNormal FindingStatus = "normal"
	FindingHigh   FindingStatus = "high"
	FindingLow    FindingStatus = "low"
)

// Finding is one structured lab-parameter measurement within a completed
// report.
type Finding struct {
	Parameter string        `json:"parameter"`
	Value     string        `json:"value"`
	Range     string        `json:"range"`
	Status    FindingStatus `json:"status"`
}

type TestResults struct {
	Summary  string    `json:"summary"`
	Findings []Finding `json:"findings"`
}

// TestReport is produced by an external reporting collaborator and consumed
// read-only here. Results are present if and only if the report is completed.
type TestReport struct {
	ID       string       `json:"id"`
	TestName string       `json:"test_name"`
	Date     string       `json:"date"`
	Status   ReportStatus `json:"status"`
	Doctor   string       `json:"doctor"`
	Location string       `json:"location"`
	Price    float64      `json:"price"`
	Results  *TestResults `json:"results,omitempty"`
}

// Valid reports hold results exactly when they are completed.
func (r TestReport) Valid() bool {
	if !r.Status.Valid() {
		return false
	}
	return (r.Status == ReportCompleted) == (r.Results != nil)
}
