package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/cv-optimizer/internal/config"
	"github.com/jonathan/cv-optimizer/internal/db"
	"github.com/jonathan/cv-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDBUserToTypesUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		now := time.Now()
		dbUser := &db.User{
			ID:           uuid.New(),
			Name:         "John Doe",
			Email:        "john@example.com",
			Phone:        "555-0100",
			PasswordHash: "hashed-password",
			PasswordSet:  true,
			IsPro:        true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		typesUser := convertDBUserToTypesUser(dbUser)
		require.NotNil(t, typesUser)
		assert.Equal(t, dbUser.ID, typesUser.ID)
		assert.Equal(t, dbUser.Name, typesUser.Name)
		assert.Equal(t, dbUser.Email, typesUser.Email)
		assert.Equal(t, dbUser.Phone, typesUser.Phone)
		assert.Equal(t, dbUser.PasswordSet, typesUser.PasswordSet)
		assert.Equal(t, dbUser.IsPro, typesUser.IsPro)
		assert.Equal(t, dbUser.CreatedAt, typesUser.CreatedAt)
		assert.Equal(t, dbUser.UpdatedAt, typesUser.UpdatedAt)
		// Password hash should not be in types.User (it doesn't have that field)
	})

	t.Run("nil user", func(t *testing.T) {
		typesUser := convertDBUserToTypesUser(nil)
		assert.Nil(t, typesUser)
	})
}

func testUserService(t *testing.T) (*UserService, *mockDB) {
	t.Helper()
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}
	mock := newMockDB()
	return NewUserService(mock, passwordConfig), mock
}

func TestUserService_Register(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	req := &types.CreateUserRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "password123",
	}

	user, err := service.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "John Doe", user.Name)
	assert.True(t, user.PasswordSet)
	assert.False(t, user.IsPro)

	// Duplicate registration fails with a conflict error
	_, err = service.Register(ctx, req)
	require.Error(t, err)
	var exists *ErrEmailAlreadyExists
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "john@example.com", exists.Email)
}

func TestUserService_Login(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := service.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.Name)

	// Wrong password and unknown email both fail with the same generic error
	_, err = service.Login(ctx, &types.LoginRequest{Email: "jane@example.com", Password: "wrong-password"})
	var invalid *ErrInvalidCredentials
	require.ErrorAs(t, err, &invalid)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	require.ErrorAs(t, err, &invalid)
}

func TestUserService_UpdatePassword(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Pat Doe",
		Email:    "pat@example.com",
		Password: "oldpassword1",
	})
	require.NoError(t, err)

	// Wrong current password is rejected
	err = service.UpdatePassword(ctx, user.ID, "not-the-password", "newpassword1")
	var mismatch *ErrPasswordMismatch
	require.ErrorAs(t, err, &mismatch)

	// Correct current password succeeds and the new one logs in
	err = service.UpdatePassword(ctx, user.ID, "oldpassword1", "newpassword1")
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "pat@example.com", Password: "newpassword1"})
	require.NoError(t, err)

	// Unknown user
	err = service.UpdatePassword(ctx, uuid.New(), "oldpassword1", "newpassword1")
	var notFound *ErrUserNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestUserService_ResetPassword(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Reset Doe",
		Email:    "reset@example.com",
		Password: "oldpassword1",
	})
	require.NoError(t, err)

	// No current password needed; token validation happens upstream
	err = service.ResetPassword(ctx, user.ID, "brandnewpass1")
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{Email: "reset@example.com", Password: "brandnewpass1"})
	require.NoError(t, err)

	err = service.ResetPassword(ctx, uuid.New(), "whatever123")
	var notFound *ErrUserNotFound
	require.ErrorAs(t, err, &notFound)
}
