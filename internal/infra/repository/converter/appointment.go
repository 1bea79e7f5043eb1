package converter

import (
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/service"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// AppointmentColumns is the column order AppointmentRow.ScanTargets expects.
const AppointmentColumns = `a.id, a.customer_id, a.customer_name, a.service_id, a.service_name,
	a.price_cents, a.duration_minutes, a.appointment_date, a.slot, a.status,
	a.cancellation_reason, a.cancelled_by, a.cancelled_by_id, a.cancelled_by_name, a.cancelled_at,
	a.feedback_stars, a.feedback_text, a.feedback_at, a.created_at, a.updated_at`

type AppointmentRow struct {
	ID                 uuid.UUID
	CustomerID         uuid.UUID
	CustomerName       string
	ServiceID          uuid.UUID
	ServiceName        string
	PriceCents         int64
	DurationMinutes    int32
	AppointmentDate    pgtype.Date
	Slot               string
	Status             string
	CancellationReason pgtype.Text
	CancelledBy        pgtype.Text
	CancelledByID      pgtype.UUID
	CancelledByName    pgtype.Text
	CancelledAt        pgtype.Timestamptz
	FeedbackStars      pgtype.Int2
	FeedbackText       pgtype.Text
	FeedbackAt         pgtype.Timestamptz
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (r *AppointmentRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.CustomerID, &r.CustomerName, &r.ServiceID, &r.ServiceName,
		&r.PriceCents, &r.DurationMinutes, &r.AppointmentDate, &r.Slot, &r.Status,
		&r.CancellationReason, &r.CancelledBy, &r.CancelledByID, &r.CancelledByName, &r.CancelledAt,
		&r.FeedbackStars, &r.FeedbackText, &r.FeedbackAt, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r *AppointmentRow) Date() schedule.Date {
	d := pgconv.DateFromPgtype(r.AppointmentDate)
	return schedule.NewDate(d.Year(), d.Month(), d.Day())
}

func AppointmentToDomain(r *AppointmentRow) (*appointment.Appointment, error) {
	status, err := appointment.NewStatus(r.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "appointment %s", r.ID)
	}
	slot, err := schedule.ParseTimeRange(r.Slot)
	if err != nil {
		return nil, errs.Wrapf(err, "appointment %s", r.ID)
	}

	var cancellation *appointment.Cancellation
	if r.CancelledAt.Valid {
		cancellation = &appointment.Cancellation{
			Reason: r.CancellationReason.String,
			By:     appointment.CancelledBy(r.CancelledBy.String),
			ByName: r.CancelledByName.String,
			At:     r.CancelledAt.Time,
		}
		if id := pgconv.UUIDPtrFromPgtype(r.CancelledByID); id != nil {
			cancellation.ByID = *id
		}
	}

	var feedback *appointment.Feedback
	if r.FeedbackStars.Valid {
		f := appointment.ReconstructFeedback(int(r.FeedbackStars.Int16), r.FeedbackText.String)
		feedback = &f
	}

	svc := service.Snapshot{
		ID:       r.ServiceID,
		Name:     r.ServiceName,
		Duration: time.Duration(r.DurationMinutes) * time.Minute,
		Price:    r.PriceCents,
	}

	return appointment.Reconstruct(
		r.ID, r.CustomerID, r.CustomerName, svc,
		r.Date(), slot, status,
		cancellation, feedback, pgconv.TimePtrFromPgtype(r.FeedbackAt),
		r.CreatedAt, r.UpdatedAt,
	), nil
}

// AppointmentToRow flattens the aggregate for INSERT and UPDATE statements.
func AppointmentToRow(a *appointment.Appointment) AppointmentRow {
	svc := a.Service()
	row := AppointmentRow{
		ID:              a.ID(),
		CustomerID:      a.CustomerID(),
		CustomerName:    a.CustomerName(),
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		PriceCents:      svc.Price,
		DurationMinutes: int32(svc.Duration / time.Minute),
		AppointmentDate: pgconv.DateToPgtype(a.Date().Time()),
		Slot:            a.Slot().String(),
		Status:          a.Status().String(),
		FeedbackAt:      pgconv.TimePtrToPgtype(a.FeedbackAt()),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}

	if c := a.Cancellation(); c != nil {
		row.CancellationReason = pgtype.Text{String: c.Reason, Valid: true}
		row.CancelledBy = pgtype.Text{String: c.By.String(), Valid: true}
		row.CancelledByID = pgconv.UUIDToPgtype(c.ByID)
		row.CancelledByName = pgtype.Text{String: c.ByName, Valid: true}
		row.CancelledAt = pgtype.Timestamptz{Time: c.At, Valid: true}
	}

	if f := a.Feedback(); f != nil {
		stars := f.Stars()
		row.FeedbackStars = pgconv.IntPtrToPgtype(&stars)
		if f.Text() != "" {
			row.FeedbackText = pgtype.Text{String: f.Text(), Valid: true}
		}
	}

	return row
}
