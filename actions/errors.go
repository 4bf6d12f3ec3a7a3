package actions

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedAction    = errors.New("malformed action")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrMissingAction      = errors.New("missing action")
)

// SyntaxError locates a scanning failure in the argument list.
type SyntaxError struct {
	Offset int
	Err    error
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %v", s.Offset, s.Err)
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}
