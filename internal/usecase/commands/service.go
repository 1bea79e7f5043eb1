package commands

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/service"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCatalogForbidden = errs.Kind("only admins and owners can manage services", errs.ErrUnauthorized)

type ServiceInput struct {
	Name            string
	DurationMinutes int
	Price           int64
	Description     string
}

type ServiceCommands interface {
	Create(ctx context.Context, actor user.Actor, in ServiceInput) (uuid.UUID, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in ServiceInput) error
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
}

type serviceCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewServiceCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ServiceCommands {
	return &serviceCommandsImpl{uow: uow, clock: clk, logger: logger}
}

func (c *serviceCommandsImpl) Create(ctx context.Context, actor user.Actor, in ServiceInput) (uuid.UUID, error) {
	if !actor.Role.IsAdmin() {
		return uuid.Nil, ErrCatalogForbidden
	}
	name, duration, price, err := parseServiceInput(in)
	if err != nil {
		return uuid.Nil, err
	}

	svc := service.NewService(name, duration, price, in.Description, c.clock.Now())
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Create(ctx, tx.DB(), svc)
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.logger.InfoContext(ctx, "service created",
		slog.String("service_id", svc.ID().String()),
		slog.String("name", svc.Name().String()))
	return svc.ID(), nil
}

// Update never touches existing appointments; they keep the snapshot taken at booking.
func (c *serviceCommandsImpl) Update(ctx context.Context, actor user.Actor, id uuid.UUID, in ServiceInput) error {
	if !actor.Role.IsAdmin() {
		return ErrCatalogForbidden
	}
	name, duration, price, err := parseServiceInput(in)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, derr := tx.Reads().ServiceByID(ctx, id)
		if derr != nil {
			return notFoundAs(derr, shared.ErrServiceNotFound)
		}
		svc.Update(name, duration, price, in.Description, c.clock.Now())
		return tx.Services().Update(ctx, tx.DB(), svc)
	})
}

func (c *serviceCommandsImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if !actor.Role.IsAdmin() {
		return ErrCatalogForbidden
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Services().Delete(ctx, tx.DB(), id); err != nil {
			return notFoundAs(err, shared.ErrServiceNotFound)
		}
		return nil
	})
}

func parseServiceInput(in ServiceInput) (service.Name, service.Duration, service.Money, error) {
	name, err := service.NewName(in.Name)
	if err != nil {
		return service.Name{}, service.Duration{}, service.Money{}, err
	}
	duration, err := service.NewDuration(in.DurationMinutes)
	if err != nil {
		return service.Name{}, service.Duration{}, service.Money{}, err
	}
	price, err := service.NewMoney(in.Price)
	if err != nil {
		return service.Name{}, service.Duration{}, service.Money{}, err
	}
	return name, duration, price, nil
}
