package auth

import (
	apperrors "github.com/NVIDIA/k8s-test-api/pkg/errors"
)

// Authentication failure sentinels. The token verification sentinels
// exist for logging and tests only; every one of them surfaces to HTTP
// callers as the same 401 response so the failure mode never leaks.
var (
	// ErrInvalidCredentials is returned by Authenticate for an unknown
	// user or a wrong password.
	ErrInvalidCredentials = apperrors.New(apperrors.ErrCodeInvalidCredentials, "incorrect username or password")

	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = apperrors.New(apperrors.ErrCodeUnauthorized, "token is malformed or its signature does not verify")

	// ErrTokenExpired is returned for a token past its exp claim.
	ErrTokenExpired = apperrors.New(apperrors.ErrCodeUnauthorized, "token has expired")

	// ErrMissingSubject is returned for a valid token without a sub claim.
	ErrMissingSubject = apperrors.New(apperrors.ErrCodeUnauthorized, "token carries no subject claim")

	// ErrUnknownSubject is returned when the sub claim resolves to no
	// directory record.
	ErrUnknownSubject = apperrors.New(apperrors.ErrCodeUnauthorized, "token subject is not in the user directory")
)
