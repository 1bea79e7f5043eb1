package queries

import (
	"context"

	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit int32) ([]*NotificationView, error)
}

type NotificationQueries interface {
	ListMine(ctx context.Context, actor user.Actor, unreadOnly bool, limit int) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListMine(ctx context.Context, actor user.Actor, unreadOnly bool, limit int) ([]*NotificationView, error) {
	return q.readStore.ListByRecipient(ctx, actor.ID, unreadOnly, int32(ValidateLimit(limit)))
}
