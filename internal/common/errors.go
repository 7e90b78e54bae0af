package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a publish-path failure so callers can decide
// between retrying on the next cycle and failing the post permanently.
type ErrorKind string

const (
	// KindResolution: the post references an account that does not exist.
	// The post is skipped with no state change.
	KindResolution ErrorKind = "resolution"
	// KindMedia: staging or platform media ingestion failed. The affected
	// platform is left unadvanced and retried on the next cycle.
	KindMedia ErrorKind = "media"
	// KindRejected: the platform rejected the content permanently.
	// The post is marked failed with the captured error text.
	KindRejected ErrorKind = "rejected"
	// KindTransient: rate limit, timeout or other recoverable API failure.
	// The post stays scheduled and is retried on the next cycle.
	KindTransient ErrorKind = "transient"
	// KindPersistence: a store write failed after the external publish
	// succeeded. Correctness-critical: the external id guard in the post
	// sub-document prevents a duplicate publish on the next cycle.
	KindPersistence ErrorKind = "persistence"
)

// PublishError carries the failure class alongside the platform it occurred on.
type PublishError struct {
	Kind     ErrorKind
	Platform Platform
	Err      error
}

func (e *PublishError) Error() string {
	if e.Platform != "" {
		return fmt.Sprintf("%s: %s: %v", e.Platform, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

func NewResolutionError(platform Platform, err error) *PublishError {
	return &PublishError{Kind: KindResolution, Platform: platform, Err: err}
}

func NewMediaError(platform Platform, err error) *PublishError {
	return &PublishError{Kind: KindMedia, Platform: platform, Err: err}
}

func NewRejectedError(platform Platform, err error) *PublishError {
	return &PublishError{Kind: KindRejected, Platform: platform, Err: err}
}

func NewTransientError(platform Platform, err error) *PublishError {
	return &PublishError{Kind: KindTransient, Platform: platform, Err: err}
}

func NewPersistenceError(platform Platform, err error) *PublishError {
	return &PublishError{Kind: KindPersistence, Platform: platform, Err: err}
}

// Classify extracts the error kind, defaulting unknown errors to transient
// so that an unclassified failure keeps the post retryable instead of
// silently burning it.
func Classify(err error) ErrorKind {
	var pe *PublishError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransient
}

// ClassifyStatus maps an HTTP status from a platform API to an error kind.
// 429 and 5xx are retryable; other 4xx means the content or request was
// rejected outright.
func ClassifyStatus(status int) ErrorKind {
	if status == 429 || status >= 500 {
		return KindTransient
	}
	return KindRejected
}
