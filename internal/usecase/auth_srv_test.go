package usecase

import (
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/pkg/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) (AuthService, repository.AccountRepository) {
	t.Helper()
	store := storage.New(afero.NewMemMapFs())
	accountRepo := repository.NewAccountRepository(store, "data/users.txt", zap.NewNop())
	return NewAuthService(accountRepo, zap.NewNop()), accountRepo
}

func TestRegisterValidation(t *testing.T) {
	svc, accountRepo := newAuthFixture(t)

	err := svc.Register(&request.RegisterRequest{Username: "bob", Email: "not-an-email", Password: "secret1"})
	require.Error(t, err)
	assert.Empty(t, accountRepo.ListAll())

	err = svc.Register(&request.RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "short"})
	require.Error(t, err)
	assert.Empty(t, accountRepo.ListAll())
}

func TestRegisterConflictSurfaces(t *testing.T) {
	svc, _ := newAuthFixture(t)

	require.NoError(t, svc.Register(&request.RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "secret1"}))

	err := svc.Register(&request.RegisterRequest{Username: "bob", Email: "other@x.com", Password: "secret2"})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestLoginFlows(t *testing.T) {
	svc, accountRepo := newAuthFixture(t)
	require.NoError(t, svc.Register(&request.RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "secret1"}))

	resp, err := svc.Login(&request.LoginRequest{Identifier: "bob", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bob", resp.Username)
	assert.Equal(t, "bob@x.com", resp.Email)

	_, err = svc.Login(&request.LoginRequest{Identifier: "bob", Password: "wrong-1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, accountRepo.SetStatus("bob@x.com", entity.StatusBlocked))
	_, err = svc.Login(&request.LoginRequest{Identifier: "bob", Password: "secret1"})
	assert.ErrorIs(t, err, ErrAccountBlocked)
}

func TestLoginWithDifferentlyCasedIdentifier(t *testing.T) {
	svc, _ := newAuthFixture(t)
	require.NoError(t, svc.Register(&request.RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "secret1"}))

	// Authentication is case-insensitive but the exact-match profile
	// lookup misses, so only the identifier comes back.
	resp, err := svc.Login(&request.LoginRequest{Identifier: "BOB", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "BOB", resp.Username)
	assert.Empty(t, resp.Email)
}
