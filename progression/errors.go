package progression

import "errors"

// Client-facing error kinds. Controllers match these with errors.Is and
// translate them to HTTP statuses; anything else is a store failure the
// caller may retry.
var (
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrEnrollmentNotActive = errors.New("enrollment is not active")
	ErrEnrollmentExpired   = errors.New("enrollment deadline has passed")
	ErrItemLocked          = errors.New("content item is locked")
	ErrAlreadyCompleted    = errors.New("content item already completed")
	ErrMissingAnswer       = errors.New("submission is malformed or missing an answer")
	ErrContentNotFound     = errors.New("content item not found")
)
