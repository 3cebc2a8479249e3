// Package timespec parses command line time specifications and resolves them
// into absolute wait targets.
package timespec

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

// absoluteLayout is the compact ISO-8601 form accepted for timestamps,
// for example 20260220T123000+0900 or 20260220T123000Z.
const absoluteLayout = "20060102T150405Z0700"

// maxSeconds is the largest wait, in seconds, representable as a
// time.Duration.
const maxSeconds = math.MaxInt64 / int64(time.Second)

var (
	absolutePattern = regexp.MustCompile(`^\d{8}T\d{6}(Z|[+-]\d{4})$`)
	clockPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(:(\d{2}))?$`)
	durationPattern = regexp.MustCompile(`^(\d+)([hms]?)$`)
)

// Unit is the measure attached to a single duration component.
type Unit byte

const (
	Seconds Unit = 's'
	Minutes Unit = 'm'
	Hours   Unit = 'h'
)

// Duration returns the length of one unit.
func (u Unit) Duration() time.Duration {
	switch u {
	case Hours:
		return time.Hour
	case Minutes:
		return time.Minute
	default:
		return time.Second
	}
}

func (u Unit) String() string {
	return string(u)
}

// Component is one magnitude and unit pair from a duration argument, such as
// the 2h in "2h 5m".
type Component struct {
	Magnitude int64
	Unit      Unit
}

func (c Component) Duration() time.Duration {
	return time.Duration(c.Magnitude) * c.Unit.Duration()
}

// String renders the component with its unit spelled out, even when the
// input left an integer bare.
func (c Component) String() string {
	return strconv.FormatInt(c.Magnitude, 10) + c.Unit.String()
}

// DurationSpec is a relative wait built from components whose lengths add
// up, in whatever order they were written.
type DurationSpec struct {
	Components []Component
}

func (d DurationSpec) Duration() time.Duration {
	return lo.SumBy(d.Components, Component.Duration)
}

func (d DurationSpec) String() string {
	return strings.Join(lo.Map(d.Components, func(c Component, _ int) string {
		return c.String()
	}), " ")
}

// ClockTime is a wall clock reading within a day. It resolves to the next
// occurrence of that reading.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// AbsoluteTimestamp is a fully qualified instant with an explicit UTC
// offset.
type AbsoluteTimestamp struct {
	Instant time.Time
}

func (a AbsoluteTimestamp) String() string {
	return a.Instant.Format(absoluteLayout)
}

// Spec is one parsed time specification: a DurationSpec, a ClockTime or an
// AbsoluteTimestamp.
type Spec interface {
	fmt.Stringer

	isSpec()
}

func (DurationSpec) isSpec()      {}
func (ClockTime) isSpec()         {}
func (AbsoluteTimestamp) isSpec() {}

// Parse classifies an argument vector as exactly one specification. A single
// argument is tried as a timestamp, then as a clock time; anything else is
// read as duration components. The first grammar whose shape matches is
// committed to, so a token shaped like a clock time with an out of range
// field fails instead of being retried as a duration.
func Parse(args []string) (Spec, error) {
	if len(args) == 0 {
		return nil, ErrEmptyInput
	}

	if len(args) == 1 {
		arg := args[0]

		if absolutePattern.MatchString(arg) {
			return parseAbsolute(arg)
		}
		if match := clockPattern.FindStringSubmatch(arg); match != nil {
			return parseClock(arg, match)
		}
	}

	return parseDuration(args)
}

func parseAbsolute(arg string) (Spec, error) {
	instant, err := time.Parse(absoluteLayout, arg)
	if err != nil {
		return nil, &MalformedArgumentError{Token: arg, Reason: timestampReason(err)}
	}

	return AbsoluteTimestamp{Instant: instant}, nil
}

// timestampReason extracts the range message from a time.ParseError, falling
// back to a generic reason for plain shape mismatches.
func timestampReason(err error) string {
	var parseErr *time.ParseError
	if errors.As(err, &parseErr) && parseErr.Message != "" {
		return strings.TrimPrefix(parseErr.Message, ": ")
	}

	return "not a valid timestamp"
}

func parseClock(arg string, match []string) (Spec, error) {
	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])

	second := 0
	if match[4] != "" {
		second, _ = strconv.Atoi(match[4])
	}

	switch {
	case hour > 23:
		return nil, &MalformedArgumentError{Token: arg, Reason: "hour out of range 0-23"}
	case minute > 59:
		return nil, &MalformedArgumentError{Token: arg, Reason: "minute out of range 0-59"}
	case second > 59:
		return nil, &MalformedArgumentError{Token: arg, Reason: "second out of range 0-59"}
	}

	return ClockTime{Hour: hour, Minute: minute, Second: second}, nil
}

func parseDuration(args []string) (Spec, error) {
	components := make([]Component, 0, len(args))

	var merr *multierror.Error
	var totalSeconds int64
	for _, arg := range args {
		component, err := parseComponent(arg)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		unitSeconds := int64(component.Unit.Duration() / time.Second)
		if component.Magnitude > (maxSeconds-totalSeconds)/unitSeconds {
			merr = multierror.Append(merr, &MalformedArgumentError{Token: arg, Reason: "duration too large"})
			continue
		}
		totalSeconds += component.Magnitude * unitSeconds

		components = append(components, component)
	}

	if merr.ErrorOrNil() != nil {
		if len(merr.Errors) == 1 {
			return nil, merr.Errors[0]
		}
		return nil, merr
	}

	return DurationSpec{Components: components}, nil
}

func parseComponent(arg string) (Component, error) {
	match := durationPattern.FindStringSubmatch(arg)
	if match == nil {
		return Component{}, &MalformedArgumentError{
			Token:  arg,
			Reason: "expected an integer with an optional h, m or s suffix",
		}
	}

	magnitude, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return Component{}, &MalformedArgumentError{Token: arg, Reason: "number out of range"}
	}

	unit := Seconds
	if match[2] != "" {
		unit = Unit(match[2][0])
	}

	return Component{Magnitude: magnitude, Unit: unit}, nil
}
