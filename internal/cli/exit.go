package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/icebox-archive/icebox/internal/service"
)

// Exit codes. ExitTempFail follows sysexits EX_TEMPFAIL so cron jobs and
// scripts can distinguish "rerun later" from genuine failure; ExitInterrupt
// is the conventional 128+SIGINT.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitTempFail  = 75
	ExitInterrupt = 130
)

// ExitCode maps an error from App.Run onto the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupt
	}

	var retryable *service.RetryableError
	if errors.As(err, &retryable) {
		return ExitTempFail
	}
	return ExitFailure
}

// silencedError wraps an error whose diagnostic the user asked to suppress
// (checkpresent -quiet). The exit code still reflects the wrapped error.
type silencedError struct {
	err error
}

func (e *silencedError) Error() string { return e.err.Error() }

func (e *silencedError) Unwrap() error { return e.err }

// Report writes err to w with every line prefixed by the program name, so
// multi-line diagnostics stay attributable when interleaved with other
// output. Silenced errors write nothing.
func Report(w io.Writer, err error) {
	var silenced *silencedError
	if errors.As(err, &silenced) {
		return
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(w, "icebox: %s\n", line)
	}
}
