package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// CookieName is the browser cookie carrying the signed session ID.
	CookieName = "eanmble_session"
	// TTL bounds both the signed cookie and the redis record behind it.
	TTL = 24 * time.Hour
)

// Claims is the payload of the session cookie. Only the session ID travels to
// the browser; the API token stays server-side.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CookieCodec signs and verifies session-ID cookies.
type CookieCodec struct {
	secret []byte
}

// NewCookieCodec creates a codec with the given signing secret.
func NewCookieCodec(secret string) *CookieCodec {
	return &CookieCodec{secret: []byte(secret)}
}

// Issue produces a signed cookie value for the session ID.
func (c *CookieCodec) Issue(sessionID string) (string, error) {
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Parse verifies a cookie value and returns the session ID it carries.
func (c *CookieCodec) Parse(value string) (string, error) {
	token, err := jwt.ParseWithClaims(value, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid session cookie")
	}
	return claims.SessionID, nil
}

// NewCookie wraps a signed value in the http.Cookie the middleware sets.
func NewCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
