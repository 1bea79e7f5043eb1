//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/commands"
	"salon-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthCommands(m *txMocks) (commands.AuthCommands, *jwt.Service) {
	svc := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommands(m.uow, svc, clock.NewMockClock(fixed), discardLogger()), svc
}

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()
	input := commands.RegisterInput{Name: "Asha Customer", Email: "Asha@Example.com", Phone: "9876543210", Password: "password123"}

	t.Run("success: stores a hashed customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		var stored *user.User
		m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) error {
				stored = u
				return nil
			})

		uc, _ := newAuthCommands(m)
		res, err := uc.Register(ctx, input)

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), res.UserID)
		assert.Equal(t, user.RoleCustomer, stored.Role())
		assert.Equal(t, "asha@example.com", stored.Email().Value())
		assert.NotEqual(t, "password123", stored.PasswordHash())
		assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "password123"))
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		dup := &pgconn.PgError{Code: "23505"}
		m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.ClassifyPgErr("failed to create user", dup))

		uc, _ := newAuthCommands(m)
		_, err := uc.Register(ctx, input)

		assert.True(t, errs.Is(err, commands.ErrEmailTaken))
	})

	t.Run("error: validation happens before storage", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*commands.RegisterInput)
			errIs  error
		}{
			{name: "short password", mutate: func(in *commands.RegisterInput) { in.Password = "short" }, errIs: user.ErrPasswordTooWeak},
			{name: "bad phone", mutate: func(in *commands.RegisterInput) { in.Phone = "12345" }, errIs: user.ErrInvalidPhone},
			{name: "bad name", mutate: func(in *commands.RegisterInput) { in.Name = "R2D2" }, errIs: user.ErrInvalidName},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				m := newTxMocks(ctrl)
				in := input
				c.mutate(&in)

				uc, _ := newAuthCommands(m)
				_, err := uc.Register(ctx, in)

				assert.True(t, errs.Is(err, c.errIs))
			})
		}
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("success: issues a token carrying the role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		u, err := builder.NewUserBuilder().WithRole("staff").WithPasswordHash(hash).BuildDomain()
		require.NoError(t, err)

		m.reads.EXPECT().UserByEmail(gomock.Any(), "asha@example.com").Return(u, nil)
		m.users.EXPECT().Update(gomock.Any(), gomock.Any(), u).Return(nil)

		uc, svc := newAuthCommands(m)
		res, err := uc.Login(ctx, commands.LoginInput{Email: "asha@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.Equal(t, u.ID(), res.UserID)
		claims, err := svc.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), claims.UserID)
		assert.Equal(t, "staff", claims.Role)
		require.NotNil(t, u.LastLogin())
	})

	t.Run("error: wrong password and unknown email look the same", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		u, err := builder.NewUserBuilder().WithPasswordHash(hash).BuildDomain()
		require.NoError(t, err)

		m.reads.EXPECT().UserByEmail(gomock.Any(), "asha@example.com").Return(u, nil)
		m.reads.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, infra.ClassifyPgErr("failed to load user", pgx.ErrNoRows))

		uc, _ := newAuthCommands(m)
		_, wrongPassword := uc.Login(ctx, commands.LoginInput{Email: "asha@example.com", Password: "nope-nope"})
		_, unknown := uc.Login(ctx, commands.LoginInput{Email: "nobody@example.com", Password: "password123"})

		assert.True(t, errs.Is(wrongPassword, commands.ErrInvalidCredentials))
		assert.True(t, errs.Is(unknown, commands.ErrInvalidCredentials))
	})

	t.Run("error: deactivated account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		u, err := builder.NewUserBuilder().WithPasswordHash(hash).AsInactive().BuildDomain()
		require.NoError(t, err)
		m.reads.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(u, nil)

		uc, _ := newAuthCommands(m)
		_, err = uc.Login(ctx, commands.LoginInput{Email: "asha@example.com", Password: "password123"})

		assert.True(t, errs.Is(err, user.ErrUserInactive))
	})
}

func TestAuthCommands_EnsureOwner(t *testing.T) {
	ctx := context.Background()
	input := commands.RegisterInput{Name: "Ravi Owner", Email: "owner@salon.test", Phone: "9000000000", Password: "owner-password"}

	t.Run("creates the owner once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.reads.EXPECT().UserByEmail(gomock.Any(), "owner@salon.test").
			Return(nil, infra.ClassifyPgErr("failed to load user", pgx.ErrNoRows))
		m.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) error {
				assert.Equal(t, user.RoleOwner, u.Role())
				return nil
			})

		uc, _ := newAuthCommands(m)
		created, err := uc.EnsureOwner(ctx, input)

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		existing, err := builder.NewUserBuilder().WithEmail("owner@salon.test").BuildDomain()
		require.NoError(t, err)
		m.reads.EXPECT().UserByEmail(gomock.Any(), "owner@salon.test").Return(existing, nil)

		uc, _ := newAuthCommands(m)
		created, err := uc.EnsureOwner(ctx, input)

		require.NoError(t, err)
		assert.False(t, created)
		assert.NotEqual(t, uuid.Nil, existing.ID())
	})
}
