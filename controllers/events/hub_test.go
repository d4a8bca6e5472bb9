package eventcontroller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastsStoreChanges(t *testing.T) {
	gin.SetMode(gin.TestMode)

	seed, err := store.DefaultSeed()
	require.NoError(t, err)
	s := store.New(seed)
	hub := NewHub(s, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx) }()

	r := gin.New()
	r.GET("/events", hub.Handler)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/events", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	p := s.AddProduct(models.Product{Name: "CharzDev Mini"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev store.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, store.CollectionProducts, ev.Collection)
	assert.Equal(t, store.ActionCreated, ev.Action)
	assert.Equal(t, p.ID, ev.ID)

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 0, hub.Clients())
}

func TestHandlerRejectsPlainHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	seed, err := store.DefaultSeed()
	require.NoError(t, err)
	hub := NewHub(store.New(seed), nil)

	r := gin.New()
	r.GET("/events", hub.Handler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/events", nil))
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, hub.Clients())
}
