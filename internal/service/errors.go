package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrJobFailed is returned when the remote service reports a job as failed.
// Failed jobs are never reused; the next invocation submits a fresh one.
var ErrJobFailed = errors.New("job failed remotely")

// ErrPresenceUnconfirmed is returned by presence checks when no evidence
// recent enough could be obtained for the archive.
var ErrPresenceUnconfirmed = errors.New("archive presence not confirmed")

// RetryableError marks a transient condition: the requested work has been
// queued remotely but cannot finish within this invocation. Callers exit
// with a dedicated status so schedulers know to simply rerun the command.
type RetryableError struct {
	Reason string
}

func (e *RetryableError) Error() string {
	return e.Reason
}

// TimeoutError reports that a blocking wait exhausted its polling budget
// without the job reaching a terminal state.
type TimeoutError struct {
	Interval time.Duration
	Attempts int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("job still not complete after %d polls at %s intervals", e.Attempts, e.Interval)
}
