package seeders

import (
	"fmt"

	"platform-stats/internal/shared/svcerrors"
)

// Seeder errors
const (
	codeStoreUnavailable  = "SEED_9000"
	codeInternalSeedFault = "SEED_9001"
)

// errStoreUnavailable returns an error when the counter store is unreachable.
func errStoreUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeStoreUnavailable, "counter store unavailable", cause)
}

// errInternalSeedFault returns an error when a seed write fails for a
// non-availability reason.
func errInternalSeedFault(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSeedFault, fmt.Errorf("seedWriteFailed: %w", cause))
}
