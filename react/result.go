package react

import (
	"errors"

	"github.com/reusee/taiact/generators"
)

var ErrTooManySteps = errors.New("too many steps")

type Status string

const (
	StatusAnswered  Status = "answered"
	StatusCancelled Status = "cancelled"
)

type Result struct {
	Status Status
	// Answer is empty when cancelled
	Answer   string
	Steps    int
	Messages []generators.Message
}
