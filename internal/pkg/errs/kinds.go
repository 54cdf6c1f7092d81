package errs

// Error kinds surfaced by the reservation engine. Concrete errors carry a
// human message and are marked with one of these so callers can branch with Is.
var (
	ErrValidation      = New("validation failed")
	ErrNotFound        = New("not found")
	ErrConflict        = New("conflict")
	ErrNoCandidate     = New("no candidate available")
	ErrLimitExceeded   = New("limit exceeded")
	ErrForbidden       = New("forbidden")
	ErrAlreadyCanceled = New("already canceled")

	// ErrRetryable marks store failures (deadlock, serialization) that survived
	// the unit of work's own retries. The caller may resubmit.
	ErrRetryable = New("retryable store failure")
)

func Validation(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrValidation)
}

func NotFound(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrNotFound)
}

func Conflict(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrConflict)
}

// NoCandidate is a Conflict that additionally reports an exhausted random pick.
func NoCandidate(format string, args ...any) error {
	return Mark(Mark(Newf(format, args...), ErrConflict), ErrNoCandidate)
}

func LimitExceeded(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrLimitExceeded)
}

func Forbidden(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrForbidden)
}

func AlreadyCanceled(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrAlreadyCanceled)
}
