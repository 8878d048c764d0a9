package recorders

import (
	"fmt"

	"platform-stats/internal/shared/svcerrors"
)

// RecordingService errors
const (
	codeUnknownEventType = "REC_1000"
	codeMissingDimension = "REC_1001"
	codeInvalidScore     = "REC_1002"
	codeInvalidEntityID  = "REC_1003"
	codeUnknownRole      = "REC_1004"

	codeStoreUnavailable       = "REC_9000"
	codeInternalIncrementFault = "REC_9001"
)

// errUnknownEventType returns an error when the event type is not in the routing table.
func errUnknownEventType(eventType string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownEventType, fmt.Sprintf("unknown event type %q", eventType), nil)
}

// errMissingDimension returns an error when an event lacks a dimension its routing requires.
func errMissingDimension(eventType, dimension string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingDimension, fmt.Sprintf("event %q requires dimension %q", eventType, dimension), nil)
}

// errInvalidScore returns an error when a rating score is not an integer in [1,5].
func errInvalidScore(score string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidScore, fmt.Sprintf("invalid rating score %q, expected integer 1..5", score), nil)
}

// errInvalidEntityID returns an error when a dimension value cannot form a counter key.
func errInvalidEntityID(entityID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidEntityID, fmt.Sprintf("invalid entity id %q", entityID), cause)
}

// errUnknownRole returns an error when a user_registered event carries an unrecognized role.
func errUnknownRole(role string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownRole, fmt.Sprintf("unknown user role %q", role), nil)
}

// errStoreUnavailable returns an error when the counter store is unreachable.
func errStoreUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeStoreUnavailable, "counter store unavailable", cause)
}

// errInternalIncrementFault returns an error when an increment fails for a non-availability reason.
func errInternalIncrementFault(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalIncrementFault, fmt.Errorf("incrementFailed: %w", cause))
}
