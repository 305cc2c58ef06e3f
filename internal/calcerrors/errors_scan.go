package calcerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanInvalidNumber    = errors.New("invalid number")
	ErrScanInvalidCharacter = errors.New("invalid character")
)

type ScanError struct {
	col     int
	cause   error
	details string
}

func NewScanError(col int, cause error, details string) error {
	return &ScanError{col: col, cause: cause, details: details}
}

// Error implements error.
func (s *ScanError) Error() string {
	if s.details == "" {
		return fmt.Sprintf("[col %d] syntax error: %v", s.col, s.cause)
	}
	return fmt.Sprintf("[col %d] syntax error: %v %s", s.col, s.cause, s.details)
}

func (s *ScanError) Unwrap() error {
	return s.cause
}

var _ error = (*ScanError)(nil)
var _ unwrapInterface = (*ScanError)(nil)
