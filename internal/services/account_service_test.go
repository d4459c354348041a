package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripmate/internal/models/request_models"
	mem "tripmate/pkg/memcache"
	"tripmate/pkg/utils"
)

func newAccountFixture() (AccountServiceInterface, *fakeAccountRepo, *utils.TokenIssuer, *mem.RevokedTokens) {
	repo := newFakeAccountRepo()
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	revoked := mem.NewRevokedTokens()
	return NewAccountService(repo, issuer, revoked), repo, issuer, revoked
}

func TestAccountService_RegisterAndLogin(t *testing.T) {
	svc, repo, issuer, _ := newAccountFixture()
	ctx := context.Background()

	err := svc.CreateAccount(request_models.SignUpRequest{
		DisplayName: "Minji", Email: "Minji@Example.com", Password: "secret123",
	}, ctx)
	require.NoError(t, err)
	require.Len(t, repo.accounts, 1)

	for _, a := range repo.accounts {
		assert.Equal(t, "minji@example.com", a.Email)
		assert.NotEqual(t, "secret123", a.PasswordHash)
	}

	err = svc.CreateAccount(request_models.SignUpRequest{
		DisplayName: "Again", Email: "minji@example.com", Password: "secret123",
	}, ctx)
	require.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	res, err := svc.Login(request_models.LoginRequest{Email: "minji@example.com", Password: "secret123"}, ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, res.ExpiresAt)

	claims, err := issuer.ValidateToken(res.Token)
	require.NoError(t, err)
	profile, err := svc.GetProfile(claims.UserID, ctx)
	require.NoError(t, err)
	assert.Equal(t, "Minji", profile.Name)
	assert.Equal(t, "user", profile.Role)
}

func TestAccountService_LoginFailures(t *testing.T) {
	svc, _, _, _ := newAccountFixture()
	ctx := context.Background()
	require.NoError(t, svc.CreateAccount(request_models.SignUpRequest{
		DisplayName: "Jun", Email: "jun@example.com", Password: "secret123",
	}, ctx))

	_, err := svc.Login(request_models.LoginRequest{Email: "jun@example.com", Password: "wrong-pass"}, ctx)
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(request_models.LoginRequest{Email: "nobody@example.com", Password: "secret123"}, ctx)
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_Logout(t *testing.T) {
	svc, _, _, revoked := newAccountFixture()

	require.ErrorIs(t, svc.Logout("", time.Now().Add(time.Hour)), utils.ErrUnauthorized)

	require.NoError(t, svc.Logout("jti-1", time.Now().Add(time.Hour)))
	assert.True(t, revoked.IsRevoked("jti-1"))
}

func TestAccountService_DatabaseError(t *testing.T) {
	svc, repo, _, _ := newAccountFixture()
	repo.err = errors.New("db down")

	_, err := svc.Login(request_models.LoginRequest{Email: "a@b.c", Password: "secret123"}, context.Background())
	require.ErrorIs(t, err, utils.ErrDatabaseError)

	_, err = svc.GetProfile("not-a-uuid", context.Background())
	require.ErrorIs(t, err, utils.ErrUnauthorized)
}
