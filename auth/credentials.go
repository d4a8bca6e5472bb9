package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"
)

// ErrInvalidCredentials is the only failure a caller sees for a bad login.
// It never says which of the two fields was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Placeholder admin pair. Real deployments should override both through
// ADMIN_USERNAME / ADMIN_PASSWORD, or swap the Authenticator entirely.
const (
	DefaultUsername = "charzdev_admin"
	DefaultPassword = "CharzDev@2024!"
)

// DefaultLoginDelay is the simulated latency of a login attempt.
const DefaultLoginDelay = time.Second

// Authenticator decides whether a username/password pair may open an admin
// session. Implementations may call out over the network.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}

// FixedCredentials accepts exactly one pair, compared case-sensitively.
type FixedCredentials struct {
	Username string
	Password string
}

func (f FixedCredentials) Authenticate(_ context.Context, username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(f.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(f.Password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// Delayed waits Delay before asking Next. Only the calling request waits;
// concurrent attempts each run their own timer.
type Delayed struct {
	Next  Authenticator
	Delay time.Duration
}

func (d Delayed) Authenticate(ctx context.Context, username, password string) error {
	if d.Delay > 0 {
		timer := time.NewTimer(d.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return d.Next.Authenticate(ctx, username, password)
}
