package booking

import (
	"time"

	"healthportal/internal/domain"
)

type State string

const (
	// StateNoTestSelected is terminal: no form is offered, only a way back
	// to the catalog.
	StateNoTestSelected    State = "no_test_selected"
	StateCollectingDetails State = "collecting_details"
	StateSubmitting        State = "submitting"
	StateConfirmed         State = "confirmed"
)

const dateLayout = "2006-01-02"

// Workflow is one patient's booking form progression. All mutations happen
// under the owning service's lock.
type Workflow struct {
	Patient domain.Patient
	Test    *domain.LabTest
	State   State

	Date       string
	Time       string
	LocationID string

	// SubmitError is set when a submission attempt fails and the workflow
	// returns to collecting_details; prior selections stay intact.
	SubmitError string

	Booking *domain.Booking
}

func newWorkflow(p domain.Patient, test *domain.LabTest) *Workflow {
	w := &Workflow{Patient: p, Test: test, State: StateNoTestSelected}
	if test != nil {
		w.State = StateCollectingDetails
	}
	return w
}

// MinDate is the earliest bookable date relative to now: tomorrow. Computed
// on every render so the constraint never goes stale.
func MinDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(dateLayout)
}

func (w *Workflow) selectDate(value string, now time.Time) error {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return ErrInvalidDate
	}
	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	if !d.After(today) {
		return ErrDateTooSoon
	}
	w.Date = value
	return nil
}

// selectTime accepts only a slot that exists in the template and is
// available. An unavailable slot is rejected here, so it can never reach
// submission.
func (w *Workflow) selectTime(value string, slots []domain.TimeSlot) error {
	for _, s := range slots {
		if s.Time != value {
			continue
		}
		if !s.Available {
			return ErrSlotUnavailable
		}
		w.Time = value
		return nil
	}
	return ErrUnknownSlot
}

func (w *Workflow) selectLocation(id string, known func(string) bool) error {
	if !known(id) {
		return ErrUnknownLocation
	}
	w.LocationID = id
	return nil
}

// CanSubmit gates the submit action: all three selections must be present.
// A missing field disables the action rather than producing a runtime error.
func (w *Workflow) CanSubmit() bool {
	return w.State == StateCollectingDetails &&
		w.Date != "" && w.Time != "" && w.LocationID != ""
}
