package reports

import "errors"

var (
	ErrReportNotFound = errors.New("report not found")
	ErrReportNotReady = errors.New("report has no results yet")
	ErrInvalidStatus  = errors.New("invalid status filter")
)
