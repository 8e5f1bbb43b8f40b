package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Context keys set by this package.
const (
	ContextOrigin   = "origin"
	ContextIdentity = "identity"
)

// OriginCookie carries the signed origin token. All tabs of one browser send
// the same cookie and therefore share one session slot.
const OriginCookie = "datalab_origin"

var errInvalidOrigin = errors.New("invalid origin token")

// OriginIssuer signs and verifies origin tokens (HS256 JWTs whose subject is
// the origin UUID).
type OriginIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewOriginIssuer(secret string, ttl time.Duration) *OriginIssuer {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &OriginIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token for origin.
func (o *OriginIssuer) Issue(origin string) (string, error) {
	now := o.now()
	claims := jwt.RegisteredClaims{
		Subject:   origin,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(o.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(o.secret)
}

// Parse verifies token and returns the origin it names.
func (o *OriginIssuer) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return o.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(o.now))
	if err != nil || !tkn.Valid {
		return "", errInvalidOrigin
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", errInvalidOrigin
	}
	return claims.Subject, nil
}

// Origin resolves the caller's origin from its cookie and injects it into
// the context. Missing, tampered or expired cookies are replaced with a
// freshly minted origin, which has no session.
func Origin(issuer *OriginIssuer, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(OriginCookie); err == nil {
				if origin, err := issuer.Parse(cookie.Value); err == nil {
					c.Set(ContextOrigin, origin)
					return next(c)
				}
				log.Debug().Str("path", c.Path()).Msg("discarding invalid origin cookie")
			}

			origin := uuid.NewString()
			token, err := issuer.Issue(origin)
			if err != nil {
				return err
			}
			c.SetCookie(&http.Cookie{
				Name:     OriginCookie,
				Value:    token,
				Path:     "/",
				MaxAge:   int(issuer.ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set(ContextOrigin, origin)
			return next(c)
		}
	}
}
