package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"linkify/internal/config"
	"linkify/pkg/domain"
	"linkify/pkg/logger"
	"linkify/pkg/serrors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key verifying RS256 tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type ctxKey string

// OwnerKey is the context key under which the authenticated owner is stored.
const OwnerKey ctxKey = "owner"

// SecHandler verifies bearer tokens and resolves the page owner from their subject.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return nil, errors.New("jwt public key is not configured")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies token and returns a context carrying the owner
// named by its subject.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, OwnerKey, domain.Owner(subject))
	ctx = logger.WithFields(ctx, zap.String(string(OwnerKey), subject))

	return ctx, nil
}

// Middleware rejects requests without a valid bearer token.
func (s SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			Handler{}.respondError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), token)
		if err != nil {
			Handler{}.respondError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOwnerFromContext returns the owner stored by HandleBearerAuth.
func GetOwnerFromContext(ctx context.Context) domain.Owner {
	owner, _ := ctx.Value(OwnerKey).(domain.Owner)

	return owner
}

// SignOwnerToken issues an RS256 bearer token for owner, valid from now for
// ttl. It is the counterpart of HandleBearerAuth for operators minting
// tokens by hand.
func SignOwnerToken(privateKeyPEM string, owner domain.Owner, ttl time.Duration, now time.Time) (string, error) {
	if strings.TrimSpace(string(owner)) == "" {
		return "", errors.New("owner must not be empty")
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   string(owner),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	})
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}
