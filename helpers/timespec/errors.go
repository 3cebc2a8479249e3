package timespec

import (
	"errors"
	"fmt"
	"time"

	"github.com/docker/go-units"
)

// ErrEmptyInput is returned by Parse when there are no arguments to
// classify.
var ErrEmptyInput = errors.New("no time specification provided")

// MalformedArgumentError reports a token that fits none of the accepted
// grammars, or fits one with a field out of range.
type MalformedArgumentError struct {
	Token  string
	Reason string
}

func (e *MalformedArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Token, e.Reason)
}

// PastTimestampError reports an absolute target that predates the reference
// instant.
type PastTimestampError struct {
	Target time.Time
	Now    time.Time
}

func (e *PastTimestampError) Error() string {
	return fmt.Sprintf(
		"timestamp %s has already passed (%s ago)",
		e.Target.Format(time.RFC3339),
		units.HumanDuration(e.Now.Sub(e.Target)),
	)
}
