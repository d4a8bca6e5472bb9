package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookieName = "charzdev_admin_session"

type sessionClaims struct {
	Auth      bool  `json:"auth"`
	LoginTime int64 `json:"login_time"` // unix millis
	jwt.RegisteredClaims
}

// CookieConfig produces per-request CookieStores.
type CookieConfig struct {
	Secret []byte
	Secure bool
}

func (cfg CookieConfig) Store(c *gin.Context) *CookieStore {
	return &CookieStore{c: c, secret: cfg.Secret, secure: cfg.Secure}
}

// CookieStore keeps the Record in a signed browser-session cookie: no
// Max-Age, so it goes away when the browser session ends. A cookie that
// fails verification reads as absent.
type CookieStore struct {
	c      *gin.Context
	secret []byte
	secure bool

	// written during this request, shadows the incoming cookie
	pending *Record
	cleared bool
}

func (s *CookieStore) Get() (Record, bool) {
	if s.cleared {
		return Record{}, false
	}
	if s.pending != nil {
		return *s.pending, true
	}

	raw, err := s.c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return Record{}, false
	}
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Record{}, false
	}
	return Record{Authenticated: claims.Auth, LoginTime: time.UnixMilli(claims.LoginTime)}, true
}

func (s *CookieStore) Set(rec Record) error {
	claims := sessionClaims{
		Auth:      rec.Authenticated,
		LoginTime: rec.LoginTime.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(rec.LoginTime),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(SessionCookieName, signed, 0, "/", "", s.secure, true)
	s.pending, s.cleared = &rec, false
	return nil
}

func (s *CookieStore) Clear() {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(SessionCookieName, "", -1, "/", "", s.secure, true)
	s.pending, s.cleared = nil, true
}
