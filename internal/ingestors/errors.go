package ingestors

import (
	"fmt"

	"retail-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"
	codeBatchTooLarge    = "ING_1001"

	codeInternalEventLogAppendFailed = "ING_9000"
)

// errValidationFailed returns an error when the batch payload itself is
// unusable, as opposed to individual records being skipped.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errBatchTooLarge returns an error when the request body exceeds the batch size limit.
func errBatchTooLarge() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeBatchTooLarge, fmt.Sprintf("batch too large: must be <= %d bytes", maxBatchBytes), nil)
}

// errInternalEventLogAppendFailed returns an error when the event log append fails.
func errInternalEventLogAppendFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventLogAppendFailed, fmt.Errorf("eventLogAppendFailed: %w", cause))
}
