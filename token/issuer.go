package token

import (
	"context"

	"github.com/anand-jaiswal-IN/youtube-clone/config"
	"github.com/anand-jaiswal-IN/youtube-clone/errors"
	"github.com/anand-jaiswal-IN/youtube-clone/models"
	"github.com/google/uuid"
)

// UserStore is the subset of user persistence that the issuer needs
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	RotateRefreshToken(ctx context.Context, id uuid.UUID, presented, next string) (rotated bool, err error)
	ClearRefreshToken(ctx context.Context, id uuid.UUID) error
}

// Pair contains a freshly issued access and refresh token pair
type Pair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresIn  int64
	RefreshExpiresIn int64
}

// Issuer mints and rotates access and refresh token pairs, exactly one
// refresh token is persisted per user so a login elsewhere invalidates
// every other session
type Issuer struct {
	Store UserStore
	Env   *config.Env
}

// IssuePair is a function that is used to create an access and refresh token pair
// and persist the refresh token on the user record, overwriting any prior value.
// When persistence fails the generated tokens are not returned
func (i *Issuer) IssuePair(ctx context.Context, user models.User) (pair *Pair, err error) {
	accessTokenS := AccessToken{Env: i.Env}
	refreshTokenS := RefreshToken{Env: i.Env}

	accessTokenD, err := accessTokenS.Create(user)
	if err != nil {
		return nil, err
	}
	refreshTokenD, err := refreshTokenS.Create(user)
	if err != nil {
		return nil, err
	}

	err = i.Store.SetRefreshToken(ctx, *user.ID, *refreshTokenD.Token)
	if err != nil {
		return nil, err
	}

	return &Pair{
		AccessToken:      *accessTokenD.Token,
		RefreshToken:     *refreshTokenD.Token,
		AccessExpiresIn:  *accessTokenD.ExpiresIn,
		RefreshExpiresIn: *refreshTokenD.ExpiresIn,
	}, nil
}

// Renew is a function that is used to exchange a refresh token for a fresh token
// pair. The presented token must match the one persisted for the user exactly,
// a stale or already rotated token is rejected even when it is cryptographically
// valid. Rotation is a conditional swap so two concurrent renewals with the same
// token admit at most one winner
func (i *Issuer) Renew(ctx context.Context, presented string) (pair *Pair, user *models.User, err error) {
	if presented == "" {
		return nil, nil, errors.ErrRefreshTokenNotProvided
	}

	refreshTokenS := RefreshToken{Env: i.Env}
	claims, err := refreshTokenS.Validate(presented)
	if err != nil {
		if ok := (errors.CheckTokenError{}.Expired(err)); ok {
			return nil, nil, errors.ErrRefreshTokenExpired
		}

		return nil, nil, errors.ErrUnauthorized
	}

	user, err = i.Store.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, nil, errors.ErrUnauthorized
	}

	if user.RefreshToken == nil || *user.RefreshToken != presented {
		return nil, nil, errors.ErrRefreshTokenReused
	}

	accessTokenS := AccessToken{Env: i.Env}
	refreshTokenD, err := refreshTokenS.Create(*user)
	if err != nil {
		return nil, nil, err
	}
	accessTokenD, err := accessTokenS.Create(*user)
	if err != nil {
		return nil, nil, err
	}

	rotated, err := i.Store.RotateRefreshToken(ctx, *user.ID, presented, *refreshTokenD.Token)
	if err != nil {
		return nil, nil, err
	}
	if !rotated {
		return nil, nil, errors.ErrRefreshTokenReused
	}

	return &Pair{
		AccessToken:      *accessTokenD.Token,
		RefreshToken:     *refreshTokenD.Token,
		AccessExpiresIn:  *accessTokenD.ExpiresIn,
		RefreshExpiresIn: *refreshTokenD.ExpiresIn,
	}, user, nil
}

// Revoke is a function that is used to clear the persisted refresh token of the
// user, it is idempotent
func (i *Issuer) Revoke(ctx context.Context, userID uuid.UUID) error {
	return i.Store.ClearRefreshToken(ctx, userID)
}
