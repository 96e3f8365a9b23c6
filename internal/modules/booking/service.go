package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"healthportal/internal/domain"
)

type Service struct {
	repo    Repository
	catalog CatalogProvider
	slots   SlotProvider

	submitDelay time.Duration
	now         func() time.Time
	log         *zap.Logger

	mu    sync.Mutex
	flows map[string]*Workflow // keyed by patient id
}

func NewService(repo Repository, catalog CatalogProvider, slots SlotProvider, submitDelay time.Duration, log *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		catalog:     catalog,
		slots:       slots,
		submitDelay: submitDelay,
		now:         time.Now,
		log:         log,
		flows:       make(map[string]*Workflow),
	}
}

// Slots exposes the schedule template for the booking form.
func (s *Service) Slots() []domain.TimeSlot {
	return s.slots.Slots()
}

// StartWorkflow begins a booking session for the patient. An empty or
// unresolvable test id lands in no_test_selected instead of failing.
// Restarting replaces any previous workflow for the same patient.
func (s *Service) StartWorkflow(p domain.Patient, testID string) *Workflow {
	var test *domain.LabTest
	if testID != "" {
		if t, ok := s.catalog.TestByID(testID); ok {
			test = &t
		}
	}

	w := newWorkflow(p, test)

	s.mu.Lock()
	s.flows[p.ID] = w
	s.mu.Unlock()

	if test == nil {
		s.log.Debug("booking workflow started without a resolvable test",
			zap.String("user_id", p.ID), zap.String("test_id", testID))
	}
	return w
}

func (s *Service) CurrentWorkflow(userID string) (*Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.flows[userID]
	if !ok {
		return nil, ErrNoWorkflow
	}
	return w, nil
}

// UpdateSelection applies the provided fields to the patient's workflow.
// Each field is validated independently; the first invalid one aborts the
// update.
func (s *Service) UpdateSelection(userID string, req UpdateSelectionRequest) (*Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.flows[userID]
	if !ok {
		return nil, ErrNoWorkflow
	}
	if w.State != StateCollectingDetails {
		return nil, ErrInvalidState
	}

	if req.Date != "" {
		if err := w.selectDate(req.Date, s.now()); err != nil {
			return nil, err
		}
	}
	if req.Time != "" {
		if err := w.selectTime(req.Time, s.slots.Slots()); err != nil {
			return nil, err
		}
	}
	if req.LocationID != "" {
		known := func(id string) bool {
			_, ok := s.catalog.LocationByID(id)
			return ok
		}
		if err := w.selectLocation(req.LocationID, known); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// Submit commits the workflow: it flips to submitting, waits out the
// simulated upstream latency, appends exactly one booking record and
// confirms. A persistence failure returns the workflow to
// collecting_details with a user-visible message and the selections kept.
func (s *Service) Submit(ctx context.Context, userID string) (*Workflow, error) {
	s.mu.Lock()
	w, ok := s.flows[userID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoWorkflow
	}
	switch {
	case w.State == StateSubmitting:
		s.mu.Unlock()
		return nil, ErrAlreadySubmitting
	case w.State != StateCollectingDetails:
		s.mu.Unlock()
		return nil, ErrInvalidState
	case !w.CanSubmit():
		s.mu.Unlock()
		return nil, ErrNotReady
	}

	w.State = StateSubmitting
	b := &domain.Booking{
		ID:         uuid.NewString(),
		UserID:     w.Patient.ID,
		TestID:     w.Test.ID,
		TestName:   w.Test.Name,
		Date:       w.Date,
		Time:       w.Time,
		LocationID: w.LocationID,
		Status:     domain.BookingScheduled,
		CreatedAt:  s.now(),
	}
	s.mu.Unlock()

	// Simulated upstream latency. Once triggered the submission runs to
	// completion; there is no cancellation.
	if s.submitDelay > 0 {
		time.Sleep(s.submitDelay)
	}

	err := s.repo.Save(ctx, b)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Error("booking save failed", zap.String("user_id", userID), zap.Error(err))
		w.State = StateCollectingDetails
		w.SubmitError = "Could not confirm your booking. Please try again."
		return w, ErrSubmitFailed
	}

	w.SubmitError = ""
	w.Booking = b
	w.State = StateConfirmed
	s.log.Info("booking confirmed",
		zap.String("booking_id", b.ID),
		zap.String("user_id", b.UserID),
		zap.String("test_id", b.TestID))
	return w, nil
}

// ListMyBookings returns the patient's booking history. The history is
// supplementary, so an unreadable store degrades to an empty collection
// instead of failing the request.
func (s *Service) ListMyBookings(ctx context.Context, userID string) []domain.Booking {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Warn("booking history unreadable, treating as empty",
			zap.String("user_id", userID), zap.Error(err))
		return []domain.Booking{}
	}
	if rows == nil {
		rows = []domain.Booking{}
	}
	return rows
}
