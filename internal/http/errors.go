package http

import (
	"fmt"

	"platform-stats/internal/shared/svcerrors"
)

// Transport-boundary errors
const (
	codeInvalidRequestBody     = "API_1000"
	codeInvalidQueryParam      = "API_1001"
	codeUnknownCatalog         = "API_1002"
	codeStoreHealthUnavailable = "API_9000"
)

// errInvalidRequestBody returns an error for an unparsable or invalid body.
func errInvalidRequestBody(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, msg, cause)
}

// errInvalidQueryParam returns an error for a malformed query parameter.
func errInvalidQueryParam(param string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid query parameter %q", param), cause)
}

// errUnknownCatalog returns an error for an unrecognized reference catalog.
func errUnknownCatalog(catalog string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownCatalog, fmt.Sprintf("unknown reference catalog %q", catalog), nil)
}

// errStoreHealthUnavailable returns an error when the health probe cannot reach the store.
func errStoreHealthUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeStoreHealthUnavailable, "counter store unreachable", cause)
}
