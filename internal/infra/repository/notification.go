package repository

import (
	"context"

	"salon-booking/internal/domain/notification"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// Create stores a customer notification as one row, and a staff notification
// as one row per active staff, admin or owner account.
func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	var err error
	switch n.Audience() {
	case notification.AudienceStaff:
		_, err = tx.Exec(ctx, `
			INSERT INTO notifications (recipient_id, appointment_id, kind, message, created_at)
			SELECT id, $1, $2, $3, $4
			FROM users
			WHERE is_active AND role = ANY($5)`,
			n.AppointmentID(), n.Kind().String(), n.Message(), n.CreatedAt(), staffRoles(),
		)
	default:
		_, err = tx.Exec(ctx, `
			INSERT INTO notifications (id, recipient_id, appointment_id, kind, message, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			n.ID(), n.RecipientID(), n.AppointmentID(), n.Kind().String(), n.Message(), n.CreatedAt(),
		)
	}
	if err != nil {
		return infra.ClassifyPgErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, id, recipientID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`, id, recipientID)
	if err != nil {
		return infra.ClassifyPgErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tx db.DBTX, recipientID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND NOT is_read`, recipientID)
	if err != nil {
		return 0, infra.ClassifyPgErr("failed to mark notifications read", err)
	}
	return tag.RowsAffected(), nil
}

func staffRoles() []string {
	return []string{user.RoleStaff.String(), user.RoleAdmin.String(), user.RoleOwner.String()}
}
