package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"healthportal/internal/domain"
)

type ReportProvider interface {
	Reports() []domain.TestReport
}

type BookingLister interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
}

type Summary struct {
	CompletedTests int             `json:"completed_tests"`
	PendingResults int             `json:"pending_results"`
	UpcomingTests  int             `json:"upcoming_tests"`
	RecentReports  []RecentReport  `json:"recent_reports"`
	Upcoming       []UpcomingEntry `json:"upcoming_appointments"`
}

type RecentReport struct {
	TestName string              `json:"test_name"`
	Date     string              `json:"date"`
	Status   domain.ReportStatus `json:"status"`
}

type UpcomingEntry struct {
	TestName string `json:"test_name"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

type Service struct {
	reports  ReportProvider
	bookings BookingLister
	now      func() time.Time
	log      *zap.Logger
}

func NewService(reports ReportProvider, bookings BookingLister, log *zap.Logger) *Service {
	return &Service{reports: reports, bookings: bookings, now: time.Now, log: log}
}

// Summarize aggregates report counts and the patient's upcoming bookings.
// An unreadable booking store just yields zero upcoming entries.
func (s *Service) Summarize(ctx context.Context, userID string) Summary {
	sum := Summary{
		RecentReports: []RecentReport{},
		Upcoming:      []UpcomingEntry{},
	}

	for _, r := range s.reports.Reports() {
		switch r.Status {
		case domain.ReportCompleted:
			sum.CompletedTests++
		case domain.ReportPending, domain.ReportInProgress:
			sum.PendingResults++
		}
		sum.RecentReports = append(sum.RecentReports, RecentReport{
			TestName: r.TestName,
			Date:     r.Date,
			Status:   r.Status,
		})
	}

	rows, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		s.log.Warn("booking history unreadable, omitting upcoming appointments",
			zap.String("user_id", userID), zap.Error(err))
		return sum
	}

	today := s.now().Format("2006-01-02")
	for _, b := range rows {
		if b.Date < today {
			continue
		}
		sum.UpcomingTests++
		sum.Upcoming = append(sum.Upcoming, UpcomingEntry{
			TestName: b.TestName,
			Date:     b.Date,
			Time:     b.Time,
		})
	}

	return sum
}
