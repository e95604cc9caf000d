package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrDivideByZero is returned when a rate is requested over a zero
	// duration.
	ErrDivideByZero = errors.New("division by zero")
	// ErrInvalidNumber is returned when a count or duration is not a real
	// number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrRateOverflow is returned when a rate is not finite or does not fit
	// in an int64.
	ErrRateOverflow = errors.New("rate out of range")
)

var maxRate = math.Exp2(63)

// PerSecond converts count events observed over durationMs milliseconds
// into whole events per second, truncating toward zero. Both inputs are
// text as captured from a log. Negative values are not rejected.
func PerSecond(count, durationMs string) (int64, error) {
	c, err := parseNumber(count)
	if err != nil {
		return 0, err
	}

	ms, err := parseNumber(durationMs)
	if err != nil {
		return 0, err
	}

	secs := ms / 1000.0
	if secs == 0 {
		return 0, fmt.Errorf("%s events in %sms: %w", count, durationMs, ErrDivideByZero)
	}

	rate := c / secs
	if math.IsNaN(rate) || rate >= maxRate || rate < -maxRate {
		return 0, fmt.Errorf("%s events in %sms: %w", count, durationMs, ErrRateOverflow)
	}

	return int64(rate), nil
}

// parseNumber accepts decimal numbers, inf and nan. ParseFloat alone would
// also take hexadecimal floats such as 0x1p4, which benchmarks never print.
func parseNumber(s string) (float64, error) {
	t := strings.TrimSpace(s)

	digits := strings.TrimLeft(t, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}

	return v, nil
}
