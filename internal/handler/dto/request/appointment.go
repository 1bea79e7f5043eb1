package request

import (
	"salon-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	Slot      string    `json:"slot" binding:"required"`
}

func (r *BookAppointmentRequest) ToInput() commands.BookAppointmentInput {
	return commands.BookAppointmentInput{
		ServiceID: r.ServiceID,
		Date:      r.Date,
		Slot:      r.Slot,
	}
}

// CancelRequest leaves the reason unchecked so a blank reason reaches the
// domain and is reported like any other invalid input.
type CancelRequest struct {
	Reason string `json:"reason"`
}

type FeedbackRequest struct {
	Stars int    `json:"stars"`
	Text  string `json:"text"`
}

// CompleteRequest optionally carries feedback recorded at the desk.
type CompleteRequest struct {
	Stars *int   `json:"stars"`
	Text  string `json:"text"`
}

func (r *CompleteRequest) ToFeedback() *commands.CompletionFeedback {
	if r.Stars == nil {
		return nil
	}
	return &commands.CompletionFeedback{Stars: *r.Stars, Text: r.Text}
}
