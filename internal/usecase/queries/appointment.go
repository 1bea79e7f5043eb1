package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentFilters struct {
	Date   string
	Status string
}

// AppointmentListParams is the storage-level form of a staff listing request.
type AppointmentListParams struct {
	Date           *time.Time
	Status         *string
	AfterCreatedAt *time.Time
	AfterID        *uuid.UUID
	Limit          int32
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*AppointmentView, error)
	List(ctx context.Context, params AppointmentListParams) ([]*AppointmentView, error)
	ActiveBookingsOn(ctx context.Context, date schedule.Date) ([]schedule.Booking, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*AppointmentView, error)
	ListMine(ctx context.Context, actor user.Actor) ([]*AppointmentView, error)
	List(ctx context.Context, actor user.Actor, filters AppointmentFilters, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
}

func NewAppointmentQueries(readStore AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{readStore: readStore}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*AppointmentView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrAppointmentNotFound
		}
		return nil, err
	}
	if !appointment.CanView(actor.ID, actor.Role, v.CustomerID) {
		return nil, appointment.ErrViewForbidden
	}
	return v, nil
}

func (q *appointmentQueriesImpl) ListMine(ctx context.Context, actor user.Actor) ([]*AppointmentView, error) {
	return q.readStore.ListByCustomer(ctx, actor.ID)
}

func (q *appointmentQueriesImpl) List(ctx context.Context, actor user.Actor, filters AppointmentFilters, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	if !appointment.CanListAll(actor.Role) {
		return nil, nil, appointment.ErrViewForbidden
	}

	limit = ValidateLimit(limit)
	params := AppointmentListParams{Limit: int32(limit + 1)}

	if filters.Date != "" {
		d, err := schedule.ParseDate(filters.Date)
		if err != nil {
			return nil, nil, err
		}
		t := d.Time()
		params.Date = &t
	}
	if filters.Status != "" {
		s, err := appointment.NewStatus(filters.Status)
		if err != nil {
			return nil, nil, err
		}
		status := s.String()
		params.Status = &status
	}
	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, err
		}
		params.AfterCreatedAt = &lastCreatedAt
		params.AfterID = &lastID
	}

	rows, err := q.readStore.List(ctx, params)
	if err != nil {
		return nil, nil, errs.Wrap(err, "list appointments")
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
