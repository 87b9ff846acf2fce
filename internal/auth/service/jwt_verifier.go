package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/inventory/internal/auth/domain"
	apperrors "github.com/allisson/inventory/internal/errors"
)

var hmacMethods = []string{
	jwt.SigningMethodHS256.Name,
	jwt.SigningMethodHS384.Name,
	jwt.SigningMethodHS512.Name,
}

type jwtVerifier struct {
	secret   []byte
	leeway   time.Duration
	timeFunc func() time.Time
}

// VerifierOption customizes a verifier built by NewJWTVerifier.
type VerifierOption func(*jwtVerifier)

// WithLeeway tolerates clock drift when checking exp, nbf and iat.
func WithLeeway(d time.Duration) VerifierOption {
	return func(v *jwtVerifier) {
		v.leeway = d
	}
}

// WithClock replaces time.Now as the verifier's notion of the current time.
func WithClock(now func() time.Time) VerifierOption {
	return func(v *jwtVerifier) {
		v.timeFunc = now
	}
}

// NewJWTVerifier returns an HMAC (HS256/HS384/HS512) JWT verifier bound to secret.
func NewJWTVerifier(secret []byte, opts ...VerifierOption) (TokenVerifier, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret must not be empty")
	}

	v := &jwtVerifier{
		secret:   secret,
		timeFunc: time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

func (v *jwtVerifier) Verify(token string) (*authDomain.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, authDomain.ErrMissingCredential
	}

	mapClaims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		mapClaims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithValidMethods(hmacMethods),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.timeFunc),
	)
	if err != nil {
		return nil, apperrors.Wrap(authDomain.ErrInvalidCredential, rejectionReason(err))
	}

	return toClaims(mapClaims), nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return "token not valid yet"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "token malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "token signature invalid"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "token unverifiable"
	default:
		return "token rejected"
	}
}

func toClaims(mapClaims jwt.MapClaims) *authDomain.Claims {
	claims := &authDomain.Claims{Raw: map[string]any(mapClaims)}

	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims
}
