package reporters

import (
	"fmt"

	"platform-stats/internal/shared/svcerrors"
)

// ReportingService errors
const (
	codeCategoryNotDimensional = "RPT_1000"
	codeInvalidMetricRequest   = "RPT_1001"
	codeInvalidOrder           = "RPT_1002"
	codeUnknownCategory        = "RPT_1003"

	codeStoreUnavailable  = "RPT_9000"
	codeInternalReadFault = "RPT_9001"
)

// errCategoryNotDimensional returns an error when a per-entity operation targets
// the platform category.
func errCategoryNotDimensional(category string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeCategoryNotDimensional, fmt.Sprintf("category %q has a single entity and cannot be reported per entity", category), nil)
}

// errInvalidMetricRequest returns an error when a metric does not belong to the
// requested category's metric set.
func errInvalidMetricRequest(category, metric string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidMetricRequest, fmt.Sprintf("metric %q is not tracked for category %q", metric, category), nil)
}

// errInvalidOrder returns an error for an unrecognized sort order.
func errInvalidOrder(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidOrder, "order must be asc or desc", cause)
}

// errUnknownCategory returns an error for an unrecognized category name.
func errUnknownCategory(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownCategory, "unknown category", cause)
}

// errStoreUnavailable returns an error when the counter store is unreachable.
func errStoreUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeStoreUnavailable, "counter store unavailable", cause)
}

// errInternalReadFault returns an error when a counter read fails for a
// non-availability reason.
func errInternalReadFault(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadFault, fmt.Errorf("counterReadFailed: %w", cause))
}
