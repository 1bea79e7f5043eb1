package appointment

import (
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/service"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errs.Kind("invalid appointment status", errs.ErrInvalidInput)
	ErrDateInPast           = errs.Kind("appointment date cannot be in the past", errs.ErrInvalidInput)
	ErrSlotInPast           = errs.Kind("slot has already started", errs.ErrInvalidInput)
	ErrSlotNotOffered       = errs.Kind("slot is not offered for this service on this date", errs.ErrInvalidInput)
	ErrReasonRequired       = errs.Kind("cancellation reason is required", errs.ErrInvalidInput)
	ErrReasonTooLong        = errs.Kind("cancellation reason is too long", errs.ErrInvalidInput)
	ErrInvalidRating        = errs.Kind("rating must be between 1 and 5", errs.ErrInvalidInput)
	ErrFeedbackTextRequired = errs.Kind("feedback text is required", errs.ErrInvalidInput)
	ErrFeedbackTooLong      = errs.Kind("feedback text is too long", errs.ErrInvalidInput)

	ErrSlotTaken = errs.Kind("slot is already booked", errs.ErrSlotConflict)

	ErrTransitionNotAllowed = errs.Kind("appointment cannot move to the requested status", errs.ErrInvalidTransition)
	ErrFeedbackExists       = errs.Kind("feedback has already been submitted", errs.ErrInvalidTransition)

	ErrBookForbidden     = errs.Kind("actor cannot book appointments", errs.ErrUnauthorized)
	ErrViewForbidden     = errs.Kind("actor cannot view this appointment", errs.ErrUnauthorized)
	ErrConfirmForbidden  = errs.Kind("only staff can confirm appointments", errs.ErrUnauthorized)
	ErrCancelForbidden   = errs.Kind("only the customer or staff can cancel this appointment", errs.ErrUnauthorized)
	ErrCompleteForbidden = errs.Kind("only staff can complete appointments", errs.ErrUnauthorized)
	ErrFeedbackForbidden = errs.Kind("only the customer can leave feedback", errs.ErrUnauthorized)
)

type Appointment struct {
	id           uuid.UUID
	customerID   uuid.UUID
	customerName string
	service      service.Snapshot
	date         schedule.Date
	slot         schedule.TimeRange
	status       Status
	cancellation *Cancellation
	feedback     *Feedback
	feedbackAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func Reconstruct(
	id, customerID uuid.UUID,
	customerName string,
	svc service.Snapshot,
	date schedule.Date,
	slot schedule.TimeRange,
	status Status,
	cancellation *Cancellation,
	feedback *Feedback,
	feedbackAt *time.Time,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:           id,
		customerID:   customerID,
		customerName: customerName,
		service:      svc,
		date:         date,
		slot:         slot,
		status:       status,
		cancellation: cancellation,
		feedback:     feedback,
		feedbackAt:   feedbackAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID               { return a.id }
func (a *Appointment) CustomerID() uuid.UUID       { return a.customerID }
func (a *Appointment) CustomerName() string        { return a.customerName }
func (a *Appointment) Service() service.Snapshot   { return a.service }
func (a *Appointment) Date() schedule.Date         { return a.date }
func (a *Appointment) Slot() schedule.TimeRange    { return a.slot }
func (a *Appointment) Status() Status              { return a.status }
func (a *Appointment) Cancellation() *Cancellation { return a.cancellation }
func (a *Appointment) Feedback() *Feedback         { return a.feedback }
func (a *Appointment) FeedbackAt() *time.Time      { return a.feedbackAt }
func (a *Appointment) CreatedAt() time.Time        { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time        { return a.updatedAt }

// Booking is what the availability resolver sees of this appointment.
func (a *Appointment) Booking() schedule.Booking {
	return schedule.Booking{Date: a.date, Slot: a.slot.String(), Active: a.status.HoldsSlot()}
}

func (a *Appointment) Confirm(by user.Actor, now time.Time) error {
	if !CanConfirm(by.Role) {
		return ErrConfirmForbidden
	}
	return a.transition(StatusConfirmed, now)
}

// Cancel leaves the appointment untouched on any error.
func (a *Appointment) Cancel(by user.Actor, reason string, now time.Time) error {
	if !CanCancel(by.ID, by.Role, a) {
		return ErrCancelForbidden
	}
	if !a.status.CanTransitionTo(StatusCancelled) {
		return a.transitionError(StatusCancelled)
	}
	r, err := NewReason(reason)
	if err != nil {
		return err
	}

	side := CancelledByOwner
	if by.ID == a.customerID {
		side = CancelledByCustomer
	}
	a.cancellation = &Cancellation{
		Reason: r.String(),
		By:     side,
		ByID:   by.ID,
		ByName: by.Name,
		At:     now,
	}
	return a.transition(StatusCancelled, now)
}

// Complete is the staff path; feedback is optional.
func (a *Appointment) Complete(by user.Actor, feedback *Feedback, now time.Time) error {
	if !CanComplete(by.Role) {
		return ErrCompleteForbidden
	}
	if err := a.transition(StatusCompleted, now); err != nil {
		return err
	}
	if feedback != nil {
		a.attachFeedback(*feedback, now)
	}
	return nil
}

// LeaveFeedback is the customer path. A confirmed appointment is completed with
// the feedback; a completed one without feedback gets it attached.
func (a *Appointment) LeaveFeedback(by user.Actor, feedback Feedback, now time.Time) error {
	if !CanLeaveFeedback(by.ID, a) {
		return ErrFeedbackForbidden
	}
	if a.feedback != nil {
		return ErrFeedbackExists
	}
	switch a.status {
	case StatusConfirmed:
		if err := a.transition(StatusCompleted, now); err != nil {
			return err
		}
	case StatusCompleted:
		a.updatedAt = now
	default:
		return a.transitionError(StatusCompleted)
	}
	a.attachFeedback(feedback, now)
	return nil
}

func (a *Appointment) attachFeedback(f Feedback, now time.Time) {
	a.feedback = &f
	a.feedbackAt = &now
}

func (a *Appointment) transition(next Status, now time.Time) error {
	if !a.status.CanTransitionTo(next) {
		return a.transitionError(next)
	}
	a.status = next
	a.updatedAt = now
	return nil
}

func (a *Appointment) transitionError(next Status) error {
	return errs.Wrapf(ErrTransitionNotAllowed, "%s -> %s", a.status, next)
}
