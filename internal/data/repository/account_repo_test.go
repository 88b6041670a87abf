package repository

import (
	"testing"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const accountPath = "data/users.txt"

func newAccountRepo(t *testing.T) (AccountRepository, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewAccountRepository(storage.New(fs), accountPath, zap.NewNop()), fs
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo, _ := newAccountRepo(t)

	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))

	assert.True(t, repo.Authenticate("bob", "pw1"))
	assert.True(t, repo.Authenticate("BOB@X.COM", "pw1"), "identifier match is case-insensitive")
	assert.False(t, repo.Authenticate("bob", "PW1"), "password match is exact")
	assert.False(t, repo.Authenticate("nobody", "pw1"))
}

func TestAuthenticateMissingFile(t *testing.T) {
	repo, _ := newAccountRepo(t)
	assert.False(t, repo.Authenticate("bob", "pw1"))
}

func TestRegisterConflictKeepsOriginal(t *testing.T) {
	repo, _ := newAccountRepo(t)

	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))

	err := repo.Register("bob2", "bob@x.com", "pw2")
	require.ErrorIs(t, err, ErrConflict)

	err = repo.Register("bob", "other@x.com", "pw2")
	require.ErrorIs(t, err, ErrConflict)

	assert.True(t, repo.Authenticate("bob", "pw1"))
	assert.False(t, repo.Authenticate("bob", "pw2"))
	assert.Len(t, repo.ListAll(), 1)
}

func TestFindMatchesExactly(t *testing.T) {
	repo, _ := newAccountRepo(t)
	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))

	require.NotNil(t, repo.Find("bob"))
	require.NotNil(t, repo.Find("bob@x.com"))
	assert.Nil(t, repo.Find("BOB"), "Find is stricter than Authenticate")
}

func TestIsBlocked(t *testing.T) {
	repo, _ := newAccountRepo(t)
	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))

	assert.False(t, repo.IsBlocked("bob"))

	require.NoError(t, repo.SetStatus("bob@x.com", entity.StatusBlocked))
	assert.True(t, repo.IsBlocked("bob"))
	assert.True(t, repo.IsBlocked("BOB@x.com"))
}

func TestStatusToggleRestoresRecord(t *testing.T) {
	repo, fs := newAccountRepo(t)
	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))

	before, err := afero.ReadFile(fs, accountPath)
	require.NoError(t, err)

	require.NoError(t, repo.SetStatus("bob@x.com", entity.StatusBlocked))
	require.NoError(t, repo.SetStatus("bob@x.com", entity.StatusActive))

	after, err := afero.ReadFile(fs, accountPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "registration date and all other fields survive the toggle")
}

func TestSetStatusNotFoundLeavesFileUntouched(t *testing.T) {
	repo, fs := newAccountRepo(t)
	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))

	before, err := afero.ReadFile(fs, accountPath)
	require.NoError(t, err)

	require.ErrorIs(t, repo.SetStatus("nobody@x.com", entity.StatusBlocked), ErrNotFound)

	after, err := afero.ReadFile(fs, accountPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestUpdateProfilePreservesDateAndStatus(t *testing.T) {
	repo, _ := newAccountRepo(t)
	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))
	require.NoError(t, repo.SetStatus("bob@x.com", entity.StatusBlocked))

	original := repo.Find("bob@x.com")
	require.NotNil(t, original)

	require.NoError(t, repo.UpdateProfile("bob@x.com", "robert", "robert@x.com", "pw2"))

	assert.Nil(t, repo.Find("bob@x.com"))
	updated := repo.Find("robert@x.com")
	require.NotNil(t, updated)
	assert.Equal(t, "robert", updated.Username)
	assert.Equal(t, "pw2", updated.Password)
	assert.Equal(t, entity.StatusBlocked, updated.Status)
	assert.Equal(t,
		original.RegisteredAt.Format(entity.RegistrationDateLayout),
		updated.RegisteredAt.Format(entity.RegistrationDateLayout))

	require.ErrorIs(t, repo.UpdateProfile("bob@x.com", "x", "y@x.com", "z"), ErrNotFound)
}

func TestUpdatePassword(t *testing.T) {
	repo, _ := newAccountRepo(t)
	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))

	require.NoError(t, repo.UpdatePassword("bob@x.com", "pw2"))

	assert.False(t, repo.Authenticate("bob", "pw1"))
	assert.True(t, repo.Authenticate("bob", "pw2"))
}

func TestListAllOrderAndDelete(t *testing.T) {
	repo, _ := newAccountRepo(t)
	require.NoError(t, repo.Register("bob", "bob@x.com", "pw1"))
	require.NoError(t, repo.Register("carol", "carol@x.com", "pw2"))

	all := repo.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, "bob", all[0].Username)
	assert.Equal(t, "carol", all[1].Username)

	require.NoError(t, repo.Delete("bob@x.com"))

	all = repo.ListAll()
	require.Len(t, all, 1)
	assert.Equal(t, "carol", all[0].Username)
	assert.Equal(t, "carol@x.com", all[0].Email)
	assert.Equal(t, "pw2", all[0].Password)
	assert.Equal(t, entity.StatusActive, all[0].Status)

	require.ErrorIs(t, repo.Delete("bob@x.com"), ErrNotFound)
}

func TestListAllDefaultsOptionalFields(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := storage.New(fs)
	require.NoError(t, store.AppendLine(accountPath, "legacy,legacy@x.com,pw"))
	require.NoError(t, store.AppendLine(accountPath, "short,line"))

	repo := NewAccountRepository(store, accountPath, zap.NewNop())

	all := repo.ListAll()
	require.Len(t, all, 1)
	assert.Equal(t, entity.StatusActive, all[0].Status)
	assert.Equal(t,
		time.Now().Format(entity.RegistrationDateLayout),
		all[0].RegisteredAt.Format(entity.RegistrationDateLayout))
}
