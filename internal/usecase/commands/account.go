package commands

import (
	"context"
	"errors"
	"log/slog"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrWrongPassword = errs.Kind("current password is incorrect", errs.ErrUnauthorized)

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

type AccountCommands interface {
	UpdateProfile(ctx context.Context, actor user.Actor, in UpdateProfileInput) error
	ChangePassword(ctx context.Context, actor user.Actor, current, next string) error
	Deactivate(ctx context.Context, actor user.Actor) error
	Delete(ctx context.Context, actor user.Actor, currentPassword string) error
	ChangeRole(ctx context.Context, actor user.Actor, userID uuid.UUID, role string) error
}

type accountCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewAccountCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) AccountCommands {
	return &accountCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (c *accountCommandsImpl) UpdateProfile(ctx context.Context, actor user.Actor, in UpdateProfileInput) error {
	return c.withUser(ctx, actor.ID, func(ctx context.Context, tx shared.Tx, u *user.User) error {
		name, err := user.NewName(patch.CoalesceTrim(in.Name, u.Name().Value()))
		if err != nil {
			return err
		}
		phone, err := user.NewPhone(patch.CoalesceTrim(in.Phone, u.Phone().Value()))
		if err != nil {
			return err
		}
		u.UpdateProfile(name, phone, c.clock.Now())
		return tx.Users().Update(ctx, tx.DB(), u)
	})
}

func (c *accountCommandsImpl) ChangePassword(ctx context.Context, actor user.Actor, current, next string) error {
	pw, err := user.NewPassword(next)
	if err != nil {
		return err
	}
	return c.withUser(ctx, actor.ID, func(ctx context.Context, tx shared.Tx, u *user.User) error {
		if err := checkPassword(u, current); err != nil {
			return err
		}
		hash, err := password.HashPassword(pw.Value())
		if err != nil {
			return errs.Wrap(err, "hash password")
		}
		u.ChangePasswordHash(hash, c.clock.Now())
		return tx.Users().Update(ctx, tx.DB(), u)
	})
}

func (c *accountCommandsImpl) Deactivate(ctx context.Context, actor user.Actor) error {
	return c.withUser(ctx, actor.ID, func(ctx context.Context, tx shared.Tx, u *user.User) error {
		u.Deactivate(c.clock.Now())
		return tx.Users().Update(ctx, tx.DB(), u)
	})
}

func (c *accountCommandsImpl) Delete(ctx context.Context, actor user.Actor, currentPassword string) error {
	err := c.withUser(ctx, actor.ID, func(ctx context.Context, tx shared.Tx, u *user.User) error {
		if err := checkPassword(u, currentPassword); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, tx.DB(), u.ID())
	})
	if err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "account deleted", slog.String("user_id", actor.ID.String()))
	return nil
}

func (c *accountCommandsImpl) ChangeRole(ctx context.Context, actor user.Actor, userID uuid.UUID, role string) error {
	r, err := user.NewRole(role)
	if err != nil {
		return err
	}
	return c.withUser(ctx, userID, func(ctx context.Context, tx shared.Tx, u *user.User) error {
		if err := u.ChangeRole(actor, r, c.clock.Now()); err != nil {
			return err
		}
		return tx.Users().Update(ctx, tx.DB(), u)
	})
}

func (c *accountCommandsImpl) withUser(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, tx shared.Tx, u *user.User) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Reads().UserByID(ctx, id)
		if err != nil {
			return notFoundAs(err, shared.ErrUserNotFound)
		}
		return fn(ctx, tx, u)
	})
}

func checkPassword(u *user.User, plain string) error {
	if err := password.ComparePassword(u.PasswordHash(), plain); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) || errors.Is(err, password.ErrInvalidPassword) {
			return ErrWrongPassword
		}
		return errs.Wrap(err, "compare password")
	}
	return nil
}
