package repository

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/repository/converter"
)

const insertAppointmentSQL = `
INSERT INTO appointments (
	id, customer_id, customer_name, service_id, service_name,
	price_cents, duration_minutes, appointment_date, slot, status,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const updateAppointmentSQL = `
UPDATE appointments SET
	status = $2,
	cancellation_reason = $3,
	cancelled_by = $4,
	cancelled_by_id = $5,
	cancelled_by_name = $6,
	cancelled_at = $7,
	feedback_stars = $8,
	feedback_text = $9,
	feedback_at = $10,
	updated_at = $11
WHERE id = $1`

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// Create inserts a new appointment. A second active booking of the same date
// and slot violates uq_appointments_active_slot and comes back as KindDuplicateKey.
func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) error {
	row := converter.AppointmentToRow(a)
	_, err := tx.Exec(ctx, insertAppointmentSQL,
		row.ID, row.CustomerID, row.CustomerName, row.ServiceID, row.ServiceName,
		row.PriceCents, row.DurationMinutes, row.AppointmentDate, row.Slot, row.Status,
		row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, tx db.DBTX, a *appointment.Appointment) error {
	row := converter.AppointmentToRow(a)
	tag, err := tx.Exec(ctx, updateAppointmentSQL,
		row.ID, row.Status,
		row.CancellationReason, row.CancelledBy, row.CancelledByID, row.CancelledByName, row.CancelledAt,
		row.FeedbackStars, row.FeedbackText, row.FeedbackAt,
		row.UpdatedAt,
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
