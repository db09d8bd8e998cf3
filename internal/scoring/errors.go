package scoring

import "go.temporal.io/sdk/temporal"

// retryable wraps cause as an application error Temporal will retry.
func retryable(tag string, cause error, msg string) error {
	return temporal.NewApplicationErrorWithCause(msg, tag, cause)
}

// nonRetryable wraps cause as an application error that stops retries.
func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
