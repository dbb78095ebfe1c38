package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/client/client"
	"github.com/dmitrijs2005/geeksadmin/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func rawMeta(t *testing.T, db *sql.DB, k string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

func mintToken(t *testing.T, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestAuth_CurrentWithoutSignIn(t *testing.T) {
	svc := NewAuthService(setupDB(t), "")

	_, err := svc.Current(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuth_SignInCurrentSignOut_Plain(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, "")
	ctx := context.Background()

	require.NoError(t, svc.SignIn(ctx, "opaque-token"))
	assert.Equal(t, []byte("opaque-token"), rawMeta(t, db, common.TokenKey))

	ac, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", ac.Token)

	require.NoError(t, svc.SignOut(ctx))
	_, err = svc.Current(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuth_SignInRejectsBadTokens(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, "")
	ctx := context.Background()

	require.ErrorIs(t, svc.SignIn(ctx, ""), common.ErrUnauthorized)
	require.ErrorIs(t, svc.SignIn(ctx, mintToken(t, time.Now().Add(-time.Hour))), common.ErrUnauthorized)
	assert.Nil(t, rawMeta(t, db, common.TokenKey))
}

func TestAuth_Sealed(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, "store-secret")
	ctx := context.Background()
	token := mintToken(t, time.Now().Add(time.Hour))

	require.NoError(t, svc.SignIn(ctx, token))

	raw := rawMeta(t, db, common.TokenKey)
	assert.NotContains(t, string(raw), token)
	assert.Len(t, rawMeta(t, db, common.SaltKey), 16)

	ac, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, token, ac.Token)

	// the salt is reused on the next sign-in
	salt := rawMeta(t, db, common.SaltKey)
	require.NoError(t, svc.SignIn(ctx, "second"))
	assert.Equal(t, salt, rawMeta(t, db, common.SaltKey))
}

func TestAuth_SealedWithWrongOrMissingSecret(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, NewAuthService(db, "right").SignIn(ctx, "tok"))

	_, err := NewAuthService(db, "wrong").Current(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = NewAuthService(db, "").Current(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestAuth_StoredTokenExpired(t *testing.T) {
	db := setupDB(t)
	svc := NewAuthService(db, "")
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES (?, ?)`, common.TokenKey, []byte(mintToken(t, time.Now().Add(-time.Minute))))
	require.NoError(t, err)

	_, err = svc.Current(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)
}
