//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/errs"
	"salon-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

var now = time.Date(2025, time.June, 2, 8, 0, 0, 0, time.UTC)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("default builder", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected := user.Reconstruct(b.ID, "Asha Customer", "asha@example.com", "9876543210", "hashed_password",
			user.RoleCustomer, true, nil, b.CreatedAt, b.CreatedAt)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.Equal(t, b.ID, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "mixed case is accepted", mutate: func(b *builder.UserBuilder) { b.WithEmail("  Asha@Example.COM ") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "no domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "missing at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "two letters", mutate: func(b *builder.UserBuilder) { b.WithName("Al") }},
			{name: "one letter", mutate: func(b *builder.UserBuilder) { b.WithName("A") }, errIs: user.ErrInvalidName},
			{name: "digits", mutate: func(b *builder.UserBuilder) { b.WithName("Asha 2") }, errIs: user.ErrInvalidName},
			{name: "too long", mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 51)) }, errIs: user.ErrInvalidName},
		})
	})

	t.Run("phone", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "ten digits", mutate: func(b *builder.UserBuilder) { b.WithPhone("0123456789") }},
			{name: "nine digits", mutate: func(b *builder.UserBuilder) { b.WithPhone("123456789") }, errIs: user.ErrInvalidPhone},
			{name: "with country code", mutate: func(b *builder.UserBuilder) { b.WithPhone("+919876543210") }, errIs: user.ErrInvalidPhone},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "customer", mutate: func(b *builder.UserBuilder) { b.WithRole("customer") }},
			{name: "staff", mutate: func(b *builder.UserBuilder) { b.WithRole("staff") }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "owner", mutate: func(b *builder.UserBuilder) { b.WithRole("owner") }},
			{name: "unknown", mutate: func(b *builder.UserBuilder) { b.WithRole("invalid_role") }, errIs: user.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidInput))
			}
		})
	}
}

func TestUser_ChangeRole(t *testing.T) {
	cases := []struct {
		name   string
		target user.Role
		by     user.Role
		to     user.Role
		errIs  error
	}{
		{name: "admin promotes customer to staff", target: user.RoleCustomer, by: user.RoleAdmin, to: user.RoleStaff},
		{name: "owner grants owner", target: user.RoleAdmin, by: user.RoleOwner, to: user.RoleOwner},
		{name: "staff cannot change roles", target: user.RoleCustomer, by: user.RoleStaff, to: user.RoleStaff, errIs: user.ErrRoleChangeDenied},
		{name: "admin cannot grant owner", target: user.RoleStaff, by: user.RoleAdmin, to: user.RoleOwner, errIs: user.ErrOwnerRoleLocked},
		{name: "admin cannot demote owner", target: user.RoleOwner, by: user.RoleAdmin, to: user.RoleStaff, errIs: user.ErrOwnerRoleLocked},
		{name: "unknown role", target: user.RoleCustomer, by: user.RoleOwner, to: user.Role("manager"), errIs: user.ErrInvalidRole},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u, err := builder.NewUserBuilder().WithRole(string(c.target)).BuildDomain()
			require.NoError(t, err)
			before := u.UpdatedAt()

			err = u.ChangeRole(user.NewActor(uuid.New(), c.by, "Ravi Owner"), c.to, now)

			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.to, u.Role())
				assert.Equal(t, now, u.UpdatedAt())
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.Equal(t, c.target, u.Role())
			assert.Equal(t, before, u.UpdatedAt())
		})
	}
}

func TestUser_RecordLogin(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)
	require.NoError(t, u.RecordLogin(now))
	require.NotNil(t, u.LastLogin())
	assert.Equal(t, now, *u.LastLogin())

	u.Deactivate(now)
	assert.False(t, u.IsActive())
	assert.True(t, errs.Is(u.RecordLogin(now), user.ErrUserInactive))
	assert.True(t, errs.Is(u.RecordLogin(now), errs.ErrUnauthorized))
}

func TestNewOwner(t *testing.T) {
	name, err := user.NewName("Ravi Owner")
	require.NoError(t, err)
	email, err := user.NewEmail("OWNER@salon.test")
	require.NoError(t, err)
	phone, err := user.NewPhone("9000000000")
	require.NoError(t, err)

	u := user.NewOwner(name, email, phone, "hash", now)

	assert.Equal(t, user.RoleOwner, u.Role())
	assert.Equal(t, "owner@salon.test", u.Email().Value())
	assert.True(t, u.IsActive())
	assert.NotEqual(t, uuid.Nil, u.ID())
}
