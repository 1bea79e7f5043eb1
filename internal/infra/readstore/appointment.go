package readstore

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const appointmentViewSelect = `
SELECT a.id, a.customer_id, a.customer_name,
       COALESCE(u.email, ''), COALESCE(u.phone, ''),
       a.service_id, a.service_name, a.price_cents, a.duration_minutes,
       to_char(a.appointment_date, 'YYYY-MM-DD'), a.slot, a.status,
       a.cancellation_reason, a.cancelled_by, a.cancelled_by_name, a.cancelled_at,
       a.feedback_stars, a.feedback_text, a.feedback_at,
       a.created_at, a.updated_at
FROM appointments a
LEFT JOIN users u ON u.id = a.customer_id`

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(db db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, appointmentViewSelect+` WHERE a.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get appointment view", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[queries.AppointmentView])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan appointment view", err)
	}
	return v, nil
}

// ListByCustomer returns the customer's appointments, upcoming dates first.
func (r *AppointmentReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.AppointmentView, error) {
	rows, err := r.db.Query(ctx, appointmentViewSelect+`
		WHERE a.customer_id = $1
		ORDER BY a.appointment_date DESC, a.created_at DESC`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer appointments", err)
	}
	return collectAppointments(rows)
}

// List pages through all appointments newest first, keyed on (created_at, id).
func (r *AppointmentReadStore) List(ctx context.Context, p queries.AppointmentListParams) ([]*queries.AppointmentView, error) {
	date := pgtype.Date{}
	if p.Date != nil {
		date = pgconv.DateToPgtype(*p.Date)
	}

	rows, err := r.db.Query(ctx, appointmentViewSelect+`
		WHERE ($1::date IS NULL OR a.appointment_date = $1)
		  AND ($2::text IS NULL OR a.status = $2)
		  AND ($3::timestamptz IS NULL OR (a.created_at, a.id) < ($3, $4::uuid))
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $5`,
		date,
		pgconv.StringPtrToPgtype(p.Status),
		pgconv.TimePtrToPgtype(p.AfterCreatedAt),
		pgconv.UUIDPtrToPgtype(p.AfterID),
		p.Limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	return collectAppointments(rows)
}

// ActiveBookingsOn returns the slots held by pending or confirmed appointments on date.
func (r *AppointmentReadStore) ActiveBookingsOn(ctx context.Context, date schedule.Date) ([]schedule.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT slot FROM appointments
		WHERE appointment_date = $1 AND status = ANY($2)`,
		pgconv.DateToPgtype(date.Time()), activeStatuses(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active bookings", err)
	}

	slots, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan active bookings", err)
	}

	bookings := make([]schedule.Booking, len(slots))
	for i, s := range slots {
		bookings[i] = schedule.Booking{Date: date, Slot: s, Active: true}
	}
	return bookings, nil
}

func collectAppointments(rows pgx.Rows) ([]*queries.AppointmentView, error) {
	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.AppointmentView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan appointments", err)
	}
	return views, nil
}

func activeStatuses() []string {
	statuses := appointment.ActiveStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
