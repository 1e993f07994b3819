package service

import (
	"context"
	"errors"
	"testing"

	dom "recipeshare/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo keeps users in a map and mimics the PG unique violation
// on duplicate usernames.
type fakeUserRepo struct {
	nextID  int64
	byName  map[string]dom.User
	byID    map[int64]dom.User
	failure error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byName: map[string]dom.User{}, byID: map[int64]dom.User{}}
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	if f.failure != nil {
		return dom.User{}, f.failure
	}
	u, ok := f.byName[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	if f.failure != nil {
		return dom.User{}, f.failure
	}
	u, ok := f.byID[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, username, passwordHash string, imageURL, bio *string) (dom.User, error) {
	if f.failure != nil {
		return dom.User{}, f.failure
	}
	if _, ok := f.byName[username]; ok {
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	}
	u := dom.User{ID: f.nextID, Username: username, PasswordHash: passwordHash, ImageURL: imageURL, Bio: bio}
	f.nextID++
	f.byName[username] = u
	f.byID[u.ID] = u
	return u, nil
}

func TestSignup_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	bio := "makes soup"
	u, err := svc.Signup(context.Background(), "alice", "hunter2", nil, &bio)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.Username)
	require.NotNil(t, u.Bio)
	assert.Equal(t, "makes soup", *u.Bio)

	// Stored hash verifies against the plaintext and is not the plaintext.
	assert.NotEqual(t, "hunter2", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter2")))
}

func TestSignup_TrimsUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u, err := svc.Signup(context.Background(), "  bob  ", "pw", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
}

func TestSignup_MissingFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	for _, tc := range []struct{ username, password string }{
		{"", "pw"},
		{"alice", ""},
		{"   ", "pw"},
		{"", ""},
	} {
		_, err := svc.Signup(context.Background(), tc.username, tc.password, nil, nil)
		assert.ErrorIs(t, err, ErrMissingCredentials, "username=%q password=%q", tc.username, tc.password)
	}
	assert.Empty(t, repo.byName, "nothing should be persisted")
}

func TestSignup_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Signup(context.Background(), "alice", "pw1", nil, nil)
	require.NoError(t, err)

	before := len(repo.byName)
	_, err = svc.Signup(context.Background(), "alice", "pw2", nil, nil)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Equal(t, before, len(repo.byName), "user table must be unchanged")
}

func TestValidateCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Signup(context.Background(), "alice", "hunter2", nil, nil)
	require.NoError(t, err)

	u, err := svc.ValidateCredentials(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	// Wrong password and unknown username fail identically.
	_, wrongPw := svc.ValidateCredentials(context.Background(), "alice", "nope")
	_, unknown := svc.ValidateCredentials(context.Background(), "mallory", "hunter2")
	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestValidateCredentials_RepoFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failure = errors.New("db down")
	svc := NewUserService(repo)

	_, err := svc.ValidateCredentials(context.Background(), "alice", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetByID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.Signup(context.Background(), "alice", "pw", nil, nil)
	require.NoError(t, err)

	u, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
