package doomsday

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	ErrFormat        = errors.New("invalid date format")
	ErrRange         = errors.New("date out of range")
	ErrConfiguration = errors.New("century not supported")
)

// FormatError is returned when input text does not match YYYY-MM-DD.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("date must be formatted as YYYY-MM-DD, got %q", e.Input)
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// RangeError is returned when a year, month or day lies outside its valid range.
type RangeError struct {
	Field string // year, month or day
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	switch e.Field {
	case "day":
		return fmt.Sprintf("day %d is out of range for the month (1-%d)", e.Value, e.Max)
	default:
		return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
	}
}

// Is reports whether target is ErrRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// ConfigurationError is returned when a century has no anchor in the fixed table.
type ConfigurationError struct {
	Century int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("century %d not supported by configured anchors", e.Century)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// IsFormat reports whether err is a FormatError.
func IsFormat(err error) bool {
	return errors.Is(err, ErrFormat)
}

// IsRange reports whether err is a RangeError.
func IsRange(err error) bool {
	return errors.Is(err, ErrRange)
}

// IsConfiguration reports whether err is a ConfigurationError.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
