// Package services contains application services of the admin console
// that sit beside the list views: the credential store and the dashboard
// summary.
package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/geeksadmin/internal/client/client"
	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/geeksadmin/internal/common"
	"github.com/dmitrijs2005/geeksadmin/internal/cryptox"
	"github.com/dmitrijs2005/geeksadmin/internal/dbx"
)

// sealedPrefix marks a token value that was sealed with the store secret.
var sealedPrefix = []byte("sealed:v1:")

// AuthService keeps the bearer token between console sessions.
//
// Contract:
//   - SignIn: reject an empty or expired token, otherwise store it.
//   - Current: return the stored token; absent or unreadable is ErrUnauthorized.
//   - SignOut: forget the token.
type AuthService interface {
	SignIn(ctx context.Context, token string) error
	Current(ctx context.Context) (models.AuthContext, error)
	SignOut(ctx context.Context) error
}

type authService struct {
	db     *sql.DB
	secret []byte
}

// NewAuthService returns an AuthService over db. When secret is not empty
// the token is sealed at rest with a key derived from it.
func NewAuthService(db *sql.DB, secret string) AuthService {
	return &authService{db: db, secret: []byte(secret)}
}

func (a *authService) SignIn(ctx context.Context, token string) error {
	if err := client.Authorize(models.AuthContext{Token: token}); err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		value := []byte(token)
		if len(a.secret) > 0 {
			key, err := a.sealingKey(ctx, repo, true)
			if err != nil {
				return err
			}
			sealed, err := cryptox.Seal(value, key)
			if err != nil {
				return fmt.Errorf("seal token: %w", err)
			}
			value = append(bytes.Clone(sealedPrefix), sealed...)
		}

		return repo.Set(ctx, common.TokenKey, value)
	})
}

func (a *authService) Current(ctx context.Context) (models.AuthContext, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	value, err := repo.Get(ctx, common.TokenKey)
	if err != nil {
		return models.AuthContext{}, err
	}
	if len(value) == 0 {
		return models.AuthContext{}, common.ErrUnauthorized
	}

	if sealed, ok := bytes.CutPrefix(value, sealedPrefix); ok {
		if len(a.secret) == 0 {
			return models.AuthContext{}, fmt.Errorf("token is sealed and no store secret is set: %w", common.ErrUnauthorized)
		}
		key, err := a.sealingKey(ctx, repo, false)
		if err != nil {
			return models.AuthContext{}, err
		}
		if value, err = cryptox.Open(sealed, key); err != nil {
			return models.AuthContext{}, fmt.Errorf("unseal token: %w: %w", common.ErrUnauthorized, err)
		}
	}

	ac := models.AuthContext{Token: string(value)}
	if err := client.Authorize(ac); err != nil {
		return models.AuthContext{}, err
	}
	return ac, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	return metadata.NewSQLiteRepository(a.db).Delete(ctx, common.TokenKey)
}

// sealingKey derives the key from the secret and the stored salt. With
// create set a missing salt is generated and stored.
func (a *authService) sealingKey(ctx context.Context, repo metadata.Repository, create bool) ([]byte, error) {
	salt, err := repo.Get(ctx, common.SaltKey)
	if err != nil {
		return nil, err
	}
	if salt == nil {
		if !create {
			return nil, fmt.Errorf("sealing salt missing: %w", common.ErrUnauthorized)
		}
		if salt, err = cryptox.NewSalt(); err != nil {
			return nil, err
		}
		if err := repo.Set(ctx, common.SaltKey, salt); err != nil {
			return nil, err
		}
	}
	return cryptox.DeriveKey(a.secret, salt), nil
}
