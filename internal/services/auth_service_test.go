package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dinesh3456/essential-workers-booking/internal/models/request_models"
	"github.com/dinesh3456/essential-workers-booking/pkg/utils"
)

func newAuthFixture() (AuthServiceInterface, *fakeAccountRepo) {
	accounts := newFakeAccountRepo()
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(accounts, tokens, zap.NewNop()), accounts
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()

	registered, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email:     "jordan@example.com",
		Password:  "s3cret-pass",
		FirstName: "Jordan",
		LastName:  "Lee",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "jordan@example.com", registered.Account.Email)
	assert.NotEqual(t, "s3cret-pass", registered.Account.PasswordHash)

	logged, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "jordan@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, logged.Token)
	assert.NotNil(t, logged.Account.LastLoginAt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	req := request_models.RegisterRequest{Email: "dup@example.com", Password: "password1"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email: "casey@example.com", Password: "right-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "casey@example.com", Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever1",
	})
	require.Error(t, err)
	assert.Equal(t, utils.KindUnauthorized, utils.KindOf(err))
}

func TestLoginDeactivatedAccount(t *testing.T) {
	svc, accounts := newAuthFixture()

	registered, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email: "gone@example.com", Password: "password1",
	})
	require.NoError(t, err)

	accounts.accounts[registered.Account.ID].IsActive = false

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "gone@example.com", Password: "password1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture()

	registered, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Email: "alex@example.com", Password: "old-password",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), registered.Account.ID, request_models.ChangePasswordRequest{
		CurrentPassword: "bogus",
		NewPassword:     "new-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Current password is incorrect")

	err = svc.ChangePassword(context.Background(), registered.Account.ID, request_models.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email: "alex@example.com", Password: "new-password",
	})
	require.NoError(t, err)
}
