package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type memoryStore struct {
	rec    *Record
	setErr error
}

func (m *memoryStore) Get() (Record, bool) {
	if m.rec == nil {
		return Record{}, false
	}
	return *m.rec, true
}

func (m *memoryStore) Set(r Record) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.rec = &r
	return nil
}

func (m *memoryStore) Clear() { m.rec = nil }

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestGate(c *clock) *Gate {
	return NewGate(FixedCredentials{Username: DefaultUsername, Password: DefaultPassword}, WithClock(c.now))
}

func TestLoginWithFixedPair(t *testing.T) {
	c := &clock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	g := newTestGate(c)
	store := &memoryStore{}

	state, err := g.Login(context.Background(), store, DefaultUsername, DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, LoggedIn, state)
	require.NotNil(t, store.rec)
	assert.True(t, store.rec.Authenticated)
	assert.Equal(t, c.t, store.rec.LoginTime)
	assert.Equal(t, LoggedIn, g.Check(store))
}

func TestLoginRejectsEverythingElse(t *testing.T) {
	g := newTestGate(&clock{t: time.Now()})

	cases := []struct{ user, pass string }{
		{"", ""},
		{DefaultUsername, ""},
		{"", DefaultPassword},
		{"CHARZDEV_ADMIN", DefaultPassword},
		{DefaultUsername, "charzdev@2024!"},
		{DefaultUsername + " ", DefaultPassword},
		{"admin", "admin"},
	}
	for _, tc := range cases {
		store := &memoryStore{}
		state, err := g.Login(context.Background(), store, tc.user, tc.pass)
		assert.Equal(t, LoggedOut, state, "%q/%q", tc.user, tc.pass)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.EqualError(t, err, "invalid username or password")
		assert.Nil(t, store.rec)
	}
}

func TestSessionExpiresAfterFixedTTL(t *testing.T) {
	c := &clock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	g := newTestGate(c)
	store := &memoryStore{}
	_, err := g.Login(context.Background(), store, DefaultUsername, DefaultPassword)
	require.NoError(t, err)

	// checks along the way do not slide the expiry
	for i := 0; i < 23; i++ {
		c.t = c.t.Add(time.Hour)
		require.Equal(t, LoggedIn, g.Check(store))
	}
	c.t = c.t.Add(time.Hour)
	assert.Equal(t, Expired, g.Check(store))
	assert.Nil(t, store.rec, "expired record must be cleared")
	assert.Equal(t, LoggedOut, g.Check(store))
}

func TestOldRecordIsExpiredOnFirstCheck(t *testing.T) {
	c := &clock{t: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}
	g := newTestGate(c)
	store := &memoryStore{rec: &Record{Authenticated: true, LoginTime: c.t.Add(-25 * time.Hour)}}

	assert.Equal(t, Expired, g.Check(store))
	assert.Nil(t, store.rec)
}

func TestUnauthenticatedRecordIsLoggedOut(t *testing.T) {
	g := newTestGate(&clock{t: time.Now()})
	store := &memoryStore{rec: &Record{Authenticated: false, LoginTime: time.Now()}}
	assert.Equal(t, LoggedOut, g.Check(store))
}

func TestLogoutClearsImmediately(t *testing.T) {
	c := &clock{t: time.Now()}
	g := newTestGate(c)
	store := &memoryStore{}
	_, err := g.Login(context.Background(), store, DefaultUsername, DefaultPassword)
	require.NoError(t, err)

	g.Logout(store)
	assert.Nil(t, store.rec)
	assert.Equal(t, LoggedOut, g.Check(store))
}

func TestLoginStoreFailure(t *testing.T) {
	g := newTestGate(&clock{t: time.Now()})
	boom := errors.New("boom")

	state, err := g.Login(context.Background(), &memoryStore{setErr: boom}, DefaultUsername, DefaultPassword)
	assert.Equal(t, LoggedOut, state)
	assert.ErrorIs(t, err, boom)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "logged_out", LoggedOut.String())
	assert.Equal(t, "authenticating", Authenticating.String())
	assert.Equal(t, "logged_in", LoggedIn.String())
	assert.Equal(t, "expired", Expired.String())
	assert.Equal(t, "state(9)", State(9).String())
}
