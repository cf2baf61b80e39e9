package queries

import (
	"fmt"

	"retail-analytics/internal/shared/svcerrors"
)

// QueryService errors
const (
	codeInsufficientData = "QRY_1000"

	codeInternalEventLogReadFailed = "QRY_9000"
)

// errInsufficientData returns an error when the log holds no record with
// a usable timestamp, so no window can be anchored.
func errInsufficientData() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeInsufficientData, "no records with a parseable timestamp", nil)
}

// errInternalEventLogReadFailed returns an error when the event log scan fails.
func errInternalEventLogReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogReadFailed, fmt.Errorf("eventLogReadFailed: %w", cause))
}
