package service

import (
	"errors"
	"fmt"
)

// ErrorKind tags why an ask failed.
type ErrorKind int

const (
	// KindTransportOrParse covers network failures, unreadable bodies and
	// unexpected response shapes. Untagged errors fall here too.
	KindTransportOrParse ErrorKind = iota
	// KindValidation means the question was missing or blank.
	KindValidation
	// KindUpstream means the completion service answered with a non-2xx status.
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	default:
		return "transport"
	}
}

// Texts shown to callers. Upstream detail never goes into them.
const (
	QuestionRequiredMessage = "Question is required"
	GenericErrorMessage     = "Sorry, I'm having trouble processing your request right now."
)

var (
	ErrQuestionRequired = errors.New("question is required")
	ErrNoChoices        = errors.New("response has no choices field")
)

// AskError carries the ErrorKind of a failed ask.
type AskError struct {
	Kind ErrorKind
	Err  error
}

func (e *AskError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *AskError) Unwrap() error {
	return e.Err
}

// UpstreamStatusError is returned when the completion service replies with a
// non-2xx status.
type UpstreamStatusError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("completion service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("completion service returned %d: %s", e.StatusCode, e.Message)
}

// KindOf reports the ErrorKind of err.
func KindOf(err error) ErrorKind {
	var askErr *AskError
	if errors.As(err, &askErr) {
		return askErr.Kind
	}
	if errors.Is(err, ErrQuestionRequired) {
		return KindValidation
	}
	var statusErr *UpstreamStatusError
	if errors.As(err, &statusErr) {
		return KindUpstream
	}
	return KindTransportOrParse
}

func tag(err error) error {
	if err == nil {
		return nil
	}
	var askErr *AskError
	if errors.As(err, &askErr) {
		return err
	}
	return &AskError{Kind: KindOf(err), Err: err}
}
