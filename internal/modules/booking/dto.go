package booking

import (
	"fmt"
	"time"

	"healthportal/internal/domain"
)

type StartWorkflowRequest struct {
	TestID string `json:"test_id"`
}

type UpdateSelectionRequest struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	LocationID string `json:"location_id"`
}

// WorkflowView is the rendered workflow state. MinDate is recomputed per
// render; Confirmation is only present in the confirmed state.
type WorkflowView struct {
	State        State           `json:"state"`
	Test         *domain.LabTest `json:"test,omitempty"`
	Date         string          `json:"date,omitempty"`
	Time         string          `json:"time,omitempty"`
	LocationID   string          `json:"location_id,omitempty"`
	MinDate      string          `json:"min_date,omitempty"`
	CanSubmit    bool            `json:"can_submit"`
	SubmitError  string          `json:"submit_error,omitempty"`
	Booking      *domain.Booking `json:"booking,omitempty"`
	Confirmation string          `json:"confirmation,omitempty"`
}

func viewOf(w *Workflow, now time.Time) WorkflowView {
	v := WorkflowView{
		State:       w.State,
		Test:        w.Test,
		Date:        w.Date,
		Time:        w.Time,
		LocationID:  w.LocationID,
		CanSubmit:   w.CanSubmit(),
		SubmitError: w.SubmitError,
		Booking:     w.Booking,
	}
	if w.State == StateCollectingDetails {
		v.MinDate = MinDate(now)
	}
	if w.State == StateConfirmed && w.Booking != nil {
		v.Confirmation = fmt.Sprintf(
			"Your appointment for %s has been scheduled for %s at %s. A confirmation SMS has been sent to %s with all the details and any preparation instructions.",
			w.Booking.TestName, w.Booking.Date, w.Booking.Time, w.Patient.Phone,
		)
	}
	return v
}
