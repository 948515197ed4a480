// Package errors provides structured error types for better observability
// and programmatic error handling across the component host.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInternal,
//	    "failed to instantiate component forum",
//	    cause,
//	    map[string]any{
//	        "component": "forum",
//	        "type":      t.Name(),
//	    },
//	)
//
// Callers branch on the classification with IsCode or CodeOf rather than
// matching message text.
package errors
