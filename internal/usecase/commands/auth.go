package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.Kind("an account with this email already exists", errs.ErrInvalidInput)
	ErrInvalidCredentials = errs.Kind("invalid email or password", errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type RegisterResult struct {
	UserID uuid.UUID
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	User        user.Actor
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	EnsureOwner(ctx context.Context, in RegisterInput) (bool, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

type newUserFunc func(name user.Name, email user.Email, phone user.Phone, hash string, now time.Time) *user.User

func (a *authCommandsImpl) buildUser(in RegisterInput, create newUserFunc) (*user.User, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(in.Phone)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	return create(name, email, phone, hash, a.clock.Now()), nil
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	u, err := a.buildUser(in, user.NewCustomer)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Users().Create(ctx, tx.DB(), u); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Translate(derr, ErrEmailTaken)
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.logger.InfoContext(ctx, "user registered", slog.String("user_id", u.ID().String()))
	return &RegisterResult{UserID: u.ID()}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var u *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Reads().UserByEmail(ctx, email.Value())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrInvalidCredentials
			}
			return derr
		}

		if derr = password.ComparePassword(found.PasswordHash(), in.Password); derr != nil {
			if errors.Is(derr, password.ErrComparisonFailed) || errors.Is(derr, password.ErrInvalidPassword) {
				return ErrInvalidCredentials
			}
			return errs.Wrap(derr, "compare password")
		}

		if derr = found.RecordLogin(a.clock.Now()); derr != nil {
			return derr
		}
		u = found
		return tx.Users().Update(ctx, tx.DB(), found)
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role(), u.Name().Value(), u.Email().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{UserID: u.ID(), AccessToken: token, User: u.Actor()}, nil
}

// EnsureOwner creates the owner account unless a user with that email exists.
// It reports whether an account was created.
func (a *authCommandsImpl) EnsureOwner(ctx context.Context, in RegisterInput) (bool, error) {
	owner, err := a.buildUser(in, user.NewOwner)
	if err != nil {
		return false, err
	}

	created := false
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reads().UserByEmail(ctx, owner.Email().Value())
		if derr == nil {
			return nil
		}
		if !infra.IsKind(derr, infra.KindNotFound) {
			return derr
		}
		if derr = tx.Users().Create(ctx, tx.DB(), owner); derr != nil {
			return derr
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		a.logger.InfoContext(ctx, "owner account created", slog.String("user_id", owner.ID().String()))
	}
	return created, nil
}
