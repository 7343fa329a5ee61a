package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"jobscreen-backend/internal/analyses"
	sharedauth "jobscreen-backend/internal/shared/auth"
)

// jwtIdentity adapts the JWT verifier to the identity provider contract,
// separating rejected tokens from verifier failures.
type jwtIdentity struct{}

func (jwtIdentity) Verify(ctx context.Context, bearerToken string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	claims, err := sharedauth.VerifyJWT(bearerToken)
	if err != nil {
		if errors.Is(err, sharedauth.ErrMissingSecret) {
			return "", fmt.Errorf("%w: %v", analyses.ErrUpstreamAuth, err)
		}
		return "", analyses.ErrUnauthorized
	}
	return claims.Sub, nil
}

var _ analyses.IdentityProvider = jwtIdentity{}
