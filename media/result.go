// Package media defines the domain models for normalized post media and their retrieval metadata.
package media

// Status is the outcome discriminator of a resolution call.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the envelope returned by URL resolution.
// Data may be empty even on success, e.g. when a node has no resolution variants.
type Result struct {
	Status   Status        `json:"status"`
	Message  string        `json:"message"`
	Username string        `json:"username,omitempty"`
	Data     []*Descriptor `json:"data"`
}

// Success constructs a successful resolution envelope.
func Success(message, username string, data []*Descriptor) *Result {
	if data == nil {
		data = []*Descriptor{}
	}
	return &Result{
		Status:   StatusSuccess,
		Message:  message,
		Username: username,
		Data:     data,
	}
}

// Failure constructs an error resolution envelope.
func Failure(message string) *Result {
	return &Result{
		Status:  StatusError,
		Message: message,
		Data:    []*Descriptor{},
	}
}

// Ok reports whether the resolution succeeded.
func (r *Result) Ok() bool {
	return r.Status == StatusSuccess
}
