package client

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/geeksadmin/internal/client/models"
	"github.com/dmitrijs2005/geeksadmin/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var tokenParser = jwt.NewParser()

// Authorize checks ac locally. The signature is not verified; that is the
// server's job. Tokens that are not JWTs are passed through as is.
func Authorize(ac models.AuthContext) error {
	if ac.Empty() {
		return common.ErrUnauthorized
	}
	var claims jwt.RegisteredClaims
	if _, _, err := tokenParser.ParseUnverified(ac.Token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return fmt.Errorf("token expired at %s: %w", claims.ExpiresAt.Format(time.RFC3339), common.ErrUnauthorized)
	}
	return nil
}
