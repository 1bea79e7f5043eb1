package shared

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/notification"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/service"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Services() ServiceRepository
	Users() UserRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads load aggregates for the write side. Inside a transaction the
// appointment is locked until commit.
type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*service.Service, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	SlotTaken(ctx context.Context, date schedule.Date, slot string) (bool, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) error
	Update(ctx context.Context, tx db.DBTX, a *appointment.Appointment) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *service.Service) error
	Update(ctx context.Context, tx db.DBTX, s *service.Service) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	Update(ctx context.Context, tx db.DBTX, u *user.User) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error
	MarkRead(ctx context.Context, tx db.DBTX, id, recipientID uuid.UUID) error
	MarkAllRead(ctx context.Context, tx db.DBTX, recipientID uuid.UUID) (int64, error)
}
