package uow

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/service"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/repository/converter"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type commandReads struct {
	dbtx db.DBTX
	// lock rows read for update; only meaningful inside a transaction
	lock bool
}

func newCommandReads(dbtx db.DBTX, lock bool) *commandReads {
	return &commandReads{dbtx: dbtx, lock: lock}
}

func (r *commandReads) forUpdate() string {
	if r.lock {
		return " FOR UPDATE"
	}
	return ""
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error) {
	var row converter.ServiceRow
	err := r.dbtx.QueryRow(ctx,
		`SELECT `+converter.ServiceColumns+` FROM services WHERE id = $1`, id,
	).Scan(row.ScanTargets()...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load service", err)
	}
	return converter.ServiceToDomain(&row), nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.user(ctx, `SELECT `+converter.UserColumns+` FROM users WHERE id = $1`+r.forUpdate(), id)
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.user(ctx, `SELECT `+converter.UserColumns+` FROM users WHERE email = $1`, email)
}

func (r *commandReads) user(ctx context.Context, query string, arg any) (*user.User, error) {
	var row converter.UserRow
	if err := r.dbtx.QueryRow(ctx, query, arg).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user", err)
	}
	return converter.UserToDomain(&row)
}

// AppointmentByID locks the row until the surrounding transaction ends, so
// concurrent transitions on one appointment serialize.
func (r *commandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	var row converter.AppointmentRow
	err := r.dbtx.QueryRow(ctx,
		`SELECT `+converter.AppointmentColumns+` FROM appointments a WHERE a.id = $1`+r.forUpdate(), id,
	).Scan(row.ScanTargets()...)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load appointment", err)
	}
	return converter.AppointmentToDomain(&row)
}

func (r *commandReads) SlotTaken(ctx context.Context, date schedule.Date, slot string) (bool, error) {
	var taken bool
	err := r.dbtx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE appointment_date = $1 AND slot = $2 AND status IN ('pending', 'confirmed')
		)`, pgconv.DateToPgtype(date.Time()), slot,
	).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return taken, nil
}
