package booking

import "errors"

var (
	ErrNoWorkflow        = errors.New("no active booking workflow")
	ErrInvalidState      = errors.New("action not valid in current workflow state")
	ErrAlreadySubmitting = errors.New("submission already in progress")
	ErrNotReady          = errors.New("date, time and location must be selected")
	ErrInvalidDate       = errors.New("invalid date")
	ErrDateTooSoon       = errors.New("date must be tomorrow or later")
	ErrUnknownSlot       = errors.New("unknown time slot")
	ErrSlotUnavailable   = errors.New("time slot is not available")
	ErrUnknownLocation   = errors.New("unknown location")
	ErrSubmitFailed      = errors.New("booking submission failed")
)
