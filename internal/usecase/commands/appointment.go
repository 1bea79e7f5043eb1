package commands

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/notification"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookAppointmentInput struct {
	ServiceID uuid.UUID
	Date      string
	Slot      string
}

type BookAppointmentResult struct {
	AppointmentID uuid.UUID
}

// CompletionFeedback is the optional rating staff may record on completion.
type CompletionFeedback struct {
	Stars int
	Text  string
}

type AppointmentCommands interface {
	Book(ctx context.Context, actor user.Actor, in BookAppointmentInput) (*BookAppointmentResult, error)
	Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) error
	Cancel(ctx context.Context, actor user.Actor, id uuid.UUID, reason string) error
	Complete(ctx context.Context, actor user.Actor, id uuid.UUID, feedback *CompletionFeedback) error
	SubmitFeedback(ctx context.Context, actor user.Actor, id uuid.UUID, stars int, text string) error
}

type appointmentCommandsImpl struct {
	uow     shared.UnitOfWork
	factory *appointment.Factory
	clock   clock.Clock
	logger  *slog.Logger
}

func NewAppointmentCommands(uow shared.UnitOfWork, factory *appointment.Factory, clk clock.Clock, logger *slog.Logger) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:     uow,
		factory: factory,
		clock:   clk,
		logger:  logger,
	}
}

func (uc *appointmentCommandsImpl) Book(ctx context.Context, actor user.Actor, in BookAppointmentInput) (*BookAppointmentResult, error) {
	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	slot, err := schedule.ParseTimeRange(in.Slot)
	if err != nil {
		return nil, err
	}

	var booked *appointment.Appointment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		customer, derr := activeActor(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		svc, derr := tx.Reads().ServiceByID(ctx, in.ServiceID)
		if derr != nil {
			return notFoundAs(derr, shared.ErrServiceNotFound)
		}

		a, derr := uc.factory.Book(customer, svc.Snapshot(), date, slot)
		if derr != nil {
			return derr
		}

		taken, derr := tx.Reads().SlotTaken(ctx, date, slot.String())
		if derr != nil {
			return derr
		}
		if taken {
			metrics.RecordSlotConflict("precheck")
			return appointment.ErrSlotTaken
		}

		if derr = tx.Appointments().Create(ctx, tx.DB(), a); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				metrics.RecordSlotConflict("constraint")
				return errs.Translate(derr, appointment.ErrSlotTaken)
			}
			return derr
		}

		booked = a
		return tx.Notifications().Create(ctx, tx.DB(), notification.Booked(a, a.CreatedAt()))
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking()
	uc.logger.InfoContext(ctx, "appointment booked",
		slog.String("appointment_id", booked.ID().String()),
		slog.String("customer_id", actor.ID.String()),
		slog.String("date", date.String()),
		slog.String("slot", slot.String()))

	return &BookAppointmentResult{AppointmentID: booked.ID()}, nil
}

func (uc *appointmentCommandsImpl) Confirm(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return uc.mutate(ctx, actor, id, func(a *appointment.Appointment, by user.Actor) (*notification.Notification, error) {
		now := uc.clock.Now()
		if err := a.Confirm(by, now); err != nil {
			return nil, err
		}
		return notification.Confirmed(a, now), nil
	})
}

func (uc *appointmentCommandsImpl) Cancel(ctx context.Context, actor user.Actor, id uuid.UUID, reason string) error {
	return uc.mutate(ctx, actor, id, func(a *appointment.Appointment, by user.Actor) (*notification.Notification, error) {
		now := uc.clock.Now()
		if err := a.Cancel(by, reason, now); err != nil {
			return nil, err
		}
		return notification.Cancelled(a, now), nil
	})
}

func (uc *appointmentCommandsImpl) Complete(ctx context.Context, actor user.Actor, id uuid.UUID, feedback *CompletionFeedback) error {
	var fb *appointment.Feedback
	if feedback != nil {
		f, err := appointment.NewStaffFeedback(feedback.Stars, feedback.Text)
		if err != nil {
			return err
		}
		fb = &f
	}

	return uc.mutate(ctx, actor, id, func(a *appointment.Appointment, by user.Actor) (*notification.Notification, error) {
		now := uc.clock.Now()
		if err := a.Complete(by, fb, now); err != nil {
			return nil, err
		}
		return notification.Completed(a, now), nil
	})
}

func (uc *appointmentCommandsImpl) SubmitFeedback(ctx context.Context, actor user.Actor, id uuid.UUID, stars int, text string) error {
	fb, err := appointment.NewFeedback(stars, text)
	if err != nil {
		return err
	}

	return uc.mutate(ctx, actor, id, func(a *appointment.Appointment, by user.Actor) (*notification.Notification, error) {
		now := uc.clock.Now()
		if err := a.LeaveFeedback(by, fb, now); err != nil {
			return nil, err
		}
		return notification.FeedbackReceived(a, now), nil
	})
}

// mutate reloads the actor, loads the appointment under lock, applies change,
// persists it and stores the notification change returns, all in one transaction.
func (uc *appointmentCommandsImpl) mutate(
	ctx context.Context,
	actor user.Actor,
	id uuid.UUID,
	change func(a *appointment.Appointment, by user.Actor) (*notification.Notification, error),
) error {
	var updated *appointment.Appointment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		by, derr := activeActor(ctx, tx, actor)
		if derr != nil {
			return derr
		}

		a, derr := tx.Reads().AppointmentByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, shared.ErrAppointmentNotFound)
		}

		n, derr := change(a, by)
		if derr != nil {
			return derr
		}

		if derr = tx.Appointments().Update(ctx, tx.DB(), a); derr != nil {
			return notFoundAs(derr, shared.ErrAppointmentNotFound)
		}
		updated = a

		if n == nil {
			return nil
		}
		return tx.Notifications().Create(ctx, tx.DB(), n)
	})
	if err != nil {
		return err
	}

	metrics.RecordTransition(updated.Status().String())
	uc.logger.InfoContext(ctx, "appointment updated",
		slog.String("appointment_id", updated.ID().String()),
		slog.String("status", updated.Status().String()))
	return nil
}

// activeActor reloads the token's account so a deleted or deactivated user is
// refused while the token is still valid. Role and name come from storage.
func activeActor(ctx context.Context, tx shared.Tx, actor user.Actor) (user.Actor, error) {
	u, err := tx.Reads().UserByID(ctx, actor.ID)
	if err != nil {
		return user.Actor{}, notFoundAs(err, shared.ErrUserNotFound)
	}
	if !u.IsActive() {
		return user.Actor{}, user.ErrUserInactive
	}
	return u.Actor(), nil
}

// notFoundAs reports a repository not-found error as the use case sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Translate(err, sentinel)
	}
	return err
}
