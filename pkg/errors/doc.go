// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnauthorized,
//	    "token verification failed",
//	    cause,
//	    map[string]interface{}{
//	        "subject": claims.Subject,
//	    },
//	)
package errors
