package generators

import "fmt"

// OpenAIError carries the request that failed, for logging and taps.
type OpenAIError struct {
	Err     error
	Request ChatCompletionRequest
}

var _ error = OpenAIError{}

func (o OpenAIError) Error() string {
	return fmt.Sprintf("model %s: %v", o.Request.Model, o.Err)
}

func (o OpenAIError) Unwrap() error {
	return o.Err
}

type ErrorResponse struct {
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code           any     `json:"code,omitempty"`
	Message        string  `json:"message,omitempty"`
	Param          *string `json:"param,omitempty"`
	Type           string  `json:"type,omitempty"`
	HTTPStatusCode int     `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bad status: %d", e.HTTPStatusCode)
	}
	return fmt.Sprintf("status %d: %s", e.HTTPStatusCode, e.Message)
}
