package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// A record owned by a different user is reported as not found as well, so
// callers cannot probe for other users' record IDs.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation is blocked by dependent records,
// e.g. deleting an account that still has subaccounts.
var ErrConflict = errors.New("conflict with existing resources")

// ErrUnauthorized indicates a missing or invalid credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrRefreshTokenExpired indicates the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")
