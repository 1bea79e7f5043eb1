package notification

import (
	"fmt"
	"time"

	"salon-booking/internal/domain/appointment"

	"github.com/google/uuid"
)

type Kind string

const (
	KindAppointmentCreated   Kind = "appointment_created"
	KindAppointmentConfirmed Kind = "appointment_confirmed"
	KindAppointmentCancelled Kind = "appointment_cancelled"
	KindAppointmentCompleted Kind = "appointment_completed"
	KindFeedbackReceived     Kind = "feedback_received"
)

func (k Kind) String() string { return string(k) }

// Audience decides who receives a notification. Staff notifications fan out to
// every active staff, admin and owner account when stored.
type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceStaff    Audience = "staff"
)

type Notification struct {
	id            uuid.UUID
	audience      Audience
	recipientID   uuid.UUID
	appointmentID uuid.UUID
	kind          Kind
	message       string
	createdAt     time.Time
}

func (n *Notification) ID() uuid.UUID            { return n.id }
func (n *Notification) Audience() Audience       { return n.audience }
func (n *Notification) RecipientID() uuid.UUID   { return n.recipientID }
func (n *Notification) AppointmentID() uuid.UUID { return n.appointmentID }
func (n *Notification) Kind() Kind               { return n.kind }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }

func toCustomer(a *appointment.Appointment, kind Kind, msg string, now time.Time) *Notification {
	return &Notification{
		id:            uuid.New(),
		audience:      AudienceCustomer,
		recipientID:   a.CustomerID(),
		appointmentID: a.ID(),
		kind:          kind,
		message:       msg,
		createdAt:     now,
	}
}

func toStaff(a *appointment.Appointment, kind Kind, msg string, now time.Time) *Notification {
	return &Notification{
		id:            uuid.New(),
		audience:      AudienceStaff,
		appointmentID: a.ID(),
		kind:          kind,
		message:       msg,
		createdAt:     now,
	}
}

func describe(a *appointment.Appointment) string {
	return fmt.Sprintf("%s on %s at %s", a.Service().Name, a.Date(), a.Slot())
}

// Booked tells the salon about a new request.
func Booked(a *appointment.Appointment, now time.Time) *Notification {
	return toStaff(a, KindAppointmentCreated,
		fmt.Sprintf("New booking from %s: %s", a.CustomerName(), describe(a)), now)
}

func Confirmed(a *appointment.Appointment, now time.Time) *Notification {
	return toCustomer(a, KindAppointmentConfirmed,
		fmt.Sprintf("Your appointment for %s is confirmed", describe(a)), now)
}

// Cancelled goes to the counterpart of whoever cancelled, carrying the reason.
func Cancelled(a *appointment.Appointment, now time.Time) *Notification {
	c := a.Cancellation()
	if c == nil {
		return nil
	}
	if c.By == appointment.CancelledByCustomer {
		return toStaff(a, KindAppointmentCancelled,
			fmt.Sprintf("%s cancelled %s. Reason: %s", c.ByName, describe(a), c.Reason), now)
	}
	return toCustomer(a, KindAppointmentCancelled,
		fmt.Sprintf("Your appointment for %s was cancelled by %s. Reason: %s", describe(a), c.ByName, c.Reason), now)
}

func Completed(a *appointment.Appointment, now time.Time) *Notification {
	return toCustomer(a, KindAppointmentCompleted,
		fmt.Sprintf("Thanks for visiting! Your appointment for %s is complete", describe(a)), now)
}

func FeedbackReceived(a *appointment.Appointment, now time.Time) *Notification {
	f := a.Feedback()
	if f == nil {
		return nil
	}
	return toStaff(a, KindFeedbackReceived,
		fmt.Sprintf("%s rated %s %d/5", a.CustomerName(), a.Service().Name, f.Stars()), now)
}
