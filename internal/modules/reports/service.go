package reports

import (
	"fmt"
	"strings"
	"time"

	"healthportal/internal/domain"
)

const StatusAll = "all"

// Classification buckets a finding for display: normal values are fine,
// anything out of range needs attention. Total over the finding enum.
type Classification string

const (
	ClassificationOK        Classification = "ok"
	ClassificationAttention Classification = "attention"
)

func Classify(s domain.FindingStatus) Classification {
	switch s {
	case domain.FindingHigh, domain.FindingLow:
		return ClassificationAttention
	default:
		return ClassificationOK
	}
}

// Filter narrows reports by a case-insensitive substring match on the test
// name and an exact status match ("all" disables the status predicate).
func Filter(reports []domain.TestReport, query, status string) []domain.TestReport {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.TestReport, 0, len(reports))
	for _, r := range reports {
		if q != "" && !strings.Contains(strings.ToLower(r.TestName), q) {
			continue
		}
		if status != StatusAll && string(r.Status) != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

type Service struct {
	provider Provider
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) List(query, status string) ([]domain.TestReport, error) {
	if status == "" {
		status = StatusAll
	}
	if status != StatusAll && !domain.ReportStatus(status).Valid() {
		return nil, ErrInvalidStatus
	}
	return Filter(s.provider.Reports(), query, status), nil
}

func (s *Service) Get(id string) (domain.TestReport, error) {
	r, ok := s.provider.ByID(id)
	if !ok {
		return domain.TestReport{}, ErrReportNotFound
	}
	return r, nil
}

// Export builds the plain-text download artifact for a completed report.
// The payload is a pure function of the report identity and the generation
// time; no network is involved.
func (s *Service) Export(id string, now time.Time) (payload, filename string, err error) {
	r, ok := s.provider.ByID(id)
	if !ok {
		return "", "", ErrReportNotFound
	}
	if r.Status != domain.ReportCompleted {
		return "", "", ErrReportNotReady
	}

	payload = fmt.Sprintf("Lab Report for %s\nReport ID: %s\nGenerated on: %s",
		r.TestName, r.ID, now.Format("1/2/2006"))
	filename = fmt.Sprintf("%s_Report_%s.txt",
		strings.Join(strings.Fields(r.TestName), "_"), r.ID)
	return payload, filename, nil
}
