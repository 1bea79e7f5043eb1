package appointment

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxReasonLength   = 500
	maxFeedbackLength = 1000
)

type Reason struct {
	value string
}

func NewReason(s string) (Reason, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Reason{}, ErrReasonRequired
	}
	if utf8.RuneCountInString(s) > maxReasonLength {
		return Reason{}, ErrReasonTooLong
	}
	return Reason{value: s}, nil
}

func (r Reason) String() string { return r.value }

type Cancellation struct {
	Reason string
	By     CancelledBy
	ByID   uuid.UUID
	ByName string
	At     time.Time
}

type Feedback struct {
	stars int
	text  string
}

// NewFeedback is the customer path: stars and text are both required.
func NewFeedback(stars int, text string) (Feedback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Feedback{}, ErrFeedbackTextRequired
	}
	return newFeedback(stars, text)
}

// NewStaffFeedback is the completion path: a rating with an optional note.
func NewStaffFeedback(stars int, text string) (Feedback, error) {
	return newFeedback(stars, strings.TrimSpace(text))
}

func newFeedback(stars int, text string) (Feedback, error) {
	if stars < 1 || stars > 5 {
		return Feedback{}, ErrInvalidRating
	}
	if utf8.RuneCountInString(text) > maxFeedbackLength {
		return Feedback{}, ErrFeedbackTooLong
	}
	return Feedback{stars: stars, text: text}, nil
}

func ReconstructFeedback(stars int, text string) Feedback {
	return Feedback{stars: stars, text: text}
}

func (f Feedback) Stars() int   { return f.stars }
func (f Feedback) Text() string { return f.text }
