// Package auth gates the admin panel behind a single credential pair and a
// fixed-length session.
//
// This is not a security boundary. The pair is a placeholder and the session
// record lives with the browser; it only keeps casual visitors out of /admin.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type State int

const (
	LoggedOut State = iota
	Authenticating
	LoggedIn
	Expired
)

func (s State) String() string {
	switch s {
	case LoggedOut:
		return "logged_out"
	case Authenticating:
		return "authenticating"
	case LoggedIn:
		return "logged_in"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// DefaultSessionTTL is measured from login. Activity does not extend it.
const DefaultSessionTTL = 24 * time.Hour

// Record is what the gate keeps between requests: the auth flag and the
// moment the session started.
type Record struct {
	Authenticated bool
	LoginTime     time.Time
}

// SessionStore holds one caller's Record.
type SessionStore interface {
	Get() (Record, bool)
	Set(Record) error
	Clear()
}

type Gate struct {
	authenticator Authenticator
	ttl           time.Duration
	now           func() time.Time
	logger        *zap.Logger
}

type GateOption func(*Gate)

func WithTTL(ttl time.Duration) GateOption {
	return func(g *Gate) { g.ttl = ttl }
}

func WithClock(now func() time.Time) GateOption {
	return func(g *Gate) { g.now = now }
}

func WithLogger(logger *zap.Logger) GateOption {
	return func(g *Gate) { g.logger = logger }
}

func NewGate(a Authenticator, opts ...GateOption) *Gate {
	g := &Gate{
		authenticator: a,
		ttl:           DefaultSessionTTL,
		now:           time.Now,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Login moves a caller from Authenticating to LoggedIn, writing a fresh
// Record, or back to LoggedOut with ErrInvalidCredentials. Any other error
// (a cancelled request, a failing Authenticator) also leaves the caller
// LoggedOut and the store untouched.
func (g *Gate) Login(ctx context.Context, store SessionStore, username, password string) (State, error) {
	g.logger.Debug("admin login attempt", zap.Stringer("state", Authenticating))

	if err := g.authenticator.Authenticate(ctx, username, password); err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			g.logger.Info("admin login rejected")
			return LoggedOut, ErrInvalidCredentials
		}
		g.logger.Warn("admin login aborted", zap.Error(err))
		return LoggedOut, err
	}

	if err := store.Set(Record{Authenticated: true, LoginTime: g.now()}); err != nil {
		return LoggedOut, fmt.Errorf("store session: %w", err)
	}
	g.logger.Info("admin logged in")
	return LoggedIn, nil
}

// Check reports the caller's state. A record older than the TTL is cleared
// and reported as Expired, which callers treat exactly like LoggedOut.
func (g *Gate) Check(store SessionStore) State {
	rec, ok := store.Get()
	if !ok || !rec.Authenticated {
		return LoggedOut
	}
	if g.now().Sub(rec.LoginTime) >= g.ttl {
		store.Clear()
		g.logger.Info("admin session expired", zap.Time("login_time", rec.LoginTime))
		return Expired
	}
	return LoggedIn
}

func (g *Gate) Logout(store SessionStore) {
	store.Clear()
	g.logger.Info("admin logged out")
}
