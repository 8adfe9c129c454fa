package token

import (
	"context"
	"fmt"
	"testing"

	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserStore struct {
	users  map[uuid.UUID]*models.User
	setErr error
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := fakeUserStore{users: make(map[uuid.UUID]*models.User)}
	for _, user := range users {
		store.users[*user.ID] = user
	}
	return &store
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserStore) SetRefreshToken(_ context.Context, id uuid.UUID, refreshToken string) error {
	if f.setErr != nil {
		return f.setErr
	}
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.RefreshToken = &refreshToken
	return nil
}

func (f *fakeUserStore) RotateRefreshToken(_ context.Context, id uuid.UUID, presented, next string) (bool, error) {
	user, ok := f.users[id]
	if !ok || user.RefreshToken == nil || *user.RefreshToken != presented {
		return false, nil
	}
	user.RefreshToken = &next
	return true, nil
}

func (f *fakeUserStore) ClearRefreshToken(_ context.Context, id uuid.UUID) error {
	user, ok := f.users[id]
	if !ok {
		return nil
	}
	user.RefreshToken = nil
	return nil
}

func TestIssuePairPersistsRefreshToken(t *testing.T) {
	t.Parallel()

	user := testUser()
	store := newFakeUserStore(&user)
	issuer := Issuer{Store: store, Env: testEnv()}

	pair, err := issuer.IssuePair(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to issue the token pair : %v", err)
	}

	if user.RefreshToken == nil || *user.RefreshToken != pair.RefreshToken {
		t.Fatalf("the refresh token was not persisted on the user record")
	}
}

func TestIssuePairDoesNotLeakOnPersistFailure(t *testing.T) {
	t.Parallel()

	user := testUser()
	store := newFakeUserStore(&user)
	store.setErr = fmt.Errorf("connection reset")
	issuer := Issuer{Store: store, Env: testEnv()}

	pair, err := issuer.IssuePair(context.Background(), user)
	if err == nil {
		t.Fatalf("expected an error when persistence fails, got nil")
	}
	if pair != nil {
		t.Fatalf("expected no token pair when persistence fails, got %+v", pair)
	}
}

func TestRenewSucceedsExactlyOnce(t *testing.T) {
	t.Parallel()

	user := testUser()
	store := newFakeUserStore(&user)
	issuer := Issuer{Store: store, Env: testEnv()}

	pair, err := issuer.IssuePair(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to issue the token pair : %v", err)
	}

	renewed, _, err := issuer.Renew(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("the first renewal must succeed : %v", err)
	}
	if renewed.RefreshToken == pair.RefreshToken {
		t.Fatalf("the refresh token was not rotated")
	}

	_, _, err = issuer.Renew(context.Background(), pair.RefreshToken)
	if err != errors.ErrRefreshTokenReused {
		t.Fatalf("the second renewal with the stale token must be rejected : got %v", err)
	}

	_, _, err = issuer.Renew(context.Background(), renewed.RefreshToken)
	if err != nil {
		t.Fatalf("renewal with the rotated token must succeed : %v", err)
	}
}

func TestRenewAfterRevoke(t *testing.T) {
	t.Parallel()

	user := testUser()
	store := newFakeUserStore(&user)
	issuer := Issuer{Store: store, Env: testEnv()}

	pair, err := issuer.IssuePair(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to issue the token pair : %v", err)
	}

	err = issuer.Revoke(context.Background(), *user.ID)
	if err != nil {
		t.Fatalf("failed to revoke : %v", err)
	}

	_, _, err = issuer.Renew(context.Background(), pair.RefreshToken)
	if err != errors.ErrRefreshTokenReused {
		t.Fatalf("renewal after revoke must be rejected : got %v", err)
	}
}

func TestRevokeIsIdempotent(t *testing.T) {
	t.Parallel()

	user := testUser()
	store := newFakeUserStore(&user)
	issuer := Issuer{Store: store, Env: testEnv()}

	for i := 0; i < 3; i++ {
		if err := issuer.Revoke(context.Background(), *user.ID); err != nil {
			t.Fatalf("revoke must be idempotent : %v", err)
		}
	}
}

func TestRenewRejectsGarbage(t *testing.T) {
	t.Parallel()

	user := testUser()
	store := newFakeUserStore(&user)
	issuer := Issuer{Store: store, Env: testEnv()}

	args := []struct {
		name      string
		presented string
		want      error
	}{
		{name: "missing", presented: "", want: errors.ErrRefreshTokenNotProvided},
		{name: "malformed", presented: "not.a.jwt", want: errors.ErrUnauthorized},
	}

	for _, arg := range args {
		_, _, err := issuer.Renew(context.Background(), arg.presented)
		if err != arg.want {
			t.Fatalf("%s : got %v want %v", arg.name, err, arg.want)
		}
	}
}

func TestRenewRejectsUnknownUser(t *testing.T) {
	t.Parallel()

	user := testUser()
	store := newFakeUserStore(&user)
	issuer := Issuer{Store: store, Env: testEnv()}

	pair, err := issuer.IssuePair(context.Background(), user)
	if err != nil {
		t.Fatalf("failed to issue the token pair : %v", err)
	}

	delete(store.users, *user.ID)

	_, _, err = issuer.Renew(context.Background(), pair.RefreshToken)
	if err != errors.ErrUnauthorized {
		t.Fatalf("renewal for a deleted user must be rejected : got %v", err)
	}
}
