package realtime

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

func dialTestServer(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestPushReachesOnlyTargetUser(t *testing.T) {
	alice := uuid.Must(uuid.NewV7())
	bob := uuid.Must(uuid.NewV7())

	hub := NewHub(4, slog.Default())
	auth := func(token string) (uuid.UUID, error) {
		switch token {
		case "alice":
			return alice, nil
		case "bob":
			return bob, nil
		}
		return uuid.Nil, errors.New("unknown token")
	}
	srv := httptest.NewServer(NewHandler(hub, auth))
	defer srv.Close()

	aliceConn := dialTestServer(t, srv, "alice")
	bobConn := dialTestServer(t, srv, "bob")

	waitForSessions(t, hub, alice, 1)
	waitForSessions(t, hub, bob, 1)

	hub.Push(alice, map[string]string{"event": "appointment_response", "status": "accepted"})

	aliceConn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := aliceConn.ReadMessage()
	if err != nil {
		t.Fatalf("alice read: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["status"] != "accepted" {
		t.Errorf("status = %q", got["status"])
	}

	// Bob must not see Alice's event.
	bobConn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := bobConn.ReadMessage(); err == nil {
		t.Error("bob received an event addressed to alice")
	}
}

func TestPushToUserWithoutSessionsIsSilent(t *testing.T) {
	hub := NewHub(4, slog.Default())
	// Must not panic or block.
	hub.Push(uuid.Must(uuid.NewV7()), map[string]string{"event": "noop"})
}

func TestMultipleSessionsPerUser(t *testing.T) {
	user := uuid.Must(uuid.NewV7())
	hub := NewHub(4, slog.Default())
	auth := func(string) (uuid.UUID, error) { return user, nil }
	srv := httptest.NewServer(NewHandler(hub, auth))
	defer srv.Close()

	c1 := dialTestServer(t, srv, "t")
	c2 := dialTestServer(t, srv, "t")

	waitForSessions(t, hub, user, 2)

	hub.Push(user, map[string]string{"event": "ping"})

	for i, conn := range []*websocket.Conn{c1, c2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Errorf("session %d did not receive event: %v", i, err)
		}
	}
}

func TestRejectsMissingAndInvalidToken(t *testing.T) {
	hub := NewHub(4, slog.Default())
	auth := func(string) (uuid.UUID, error) { return uuid.Nil, errors.New("bad") }
	srv := httptest.NewServer(NewHandler(hub, auth))
	defer srv.Close()

	base := "ws" + strings.TrimPrefix(srv.URL, "http")
	if _, _, err := websocket.DefaultDialer.Dial(base, nil); err == nil {
		t.Error("connect without token should fail")
	}
	if _, _, err := websocket.DefaultDialer.Dial(base+"?token=x", nil); err == nil {
		t.Error("connect with rejected token should fail")
	}
}

func waitForSessions(t *testing.T, hub *Hub, user uuid.UUID, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.SessionCount(user) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("sessions for %s = %d, want %d", user, hub.SessionCount(user), want)
}
