package commands

import (
	"context"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor user.Actor, id uuid.UUID) error
	MarkAllRead(ctx context.Context, actor user.Actor) (int64, error)
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().MarkRead(ctx, tx.DB(), id, actor.ID); err != nil {
			return notFoundAs(err, shared.ErrNotificationNotFound)
		}
		return nil
	})
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, actor user.Actor) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		n, derr = tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.ID)
		return derr
	})
	return n, err
}
