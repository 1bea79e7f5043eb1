package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

func (s *NotificationReadStore) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, appointment_id, kind, message, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1 AND (NOT $2 OR NOT is_read)
		ORDER BY created_at DESC, id DESC
		LIMIT $3`, recipientID, unreadOnly, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.NotificationView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan notifications", err)
	}
	return views, nil
}
