package binding

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

func startHub(t *testing.T, initial spinbutton.Value) (*Hub, string, chan Command) {
	t.Helper()
	commands := make(chan Command, 8)
	hub := NewHub("spin-test", initial, func(cmd Command) { commands <- cmd })
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http"), commands
}

func dial(t *testing.T, url string) *Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := Dial(ctx, url)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func waitCommand(t *testing.T, ch chan Command) Command {
	t.Helper()
	select {
	case cmd := <-ch:
		return cmd
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for command")
		return Command{}
	}
}

func TestHub_SendsSnapshotOnConnect(t *testing.T) {
	_, url, _ := startHub(t, spinbutton.ValueOf(12))
	c := dial(t, url)

	msg, err := c.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if msg.ID != "spin-test" {
		t.Errorf("ID = %q, want spin-test", msg.ID)
	}
	if !msg.Value.Equal(spinbutton.ValueOf(12)) {
		t.Errorf("Value = %v, want 12", msg.Value)
	}
}

func TestHub_DispatchesCommands(t *testing.T) {
	hub, url, commands := startHub(t, spinbutton.Absent())
	c := dial(t, url)
	if _, err := c.Next(); err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if err := c.Increment(); err != nil {
		t.Fatalf("Increment() error: %v", err)
	}
	if cmd := waitCommand(t, commands); cmd.Kind != CommandIncrement {
		t.Errorf("Kind = %v, want increment", cmd.Kind)
	}

	if err := c.Decrement(); err != nil {
		t.Fatalf("Decrement() error: %v", err)
	}
	if cmd := waitCommand(t, commands); cmd.Kind != CommandDecrement {
		t.Errorf("Kind = %v, want decrement", cmd.Kind)
	}

	if err := c.Set(spinbutton.ValueOf(250)); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	cmd := waitCommand(t, commands)
	if cmd.Kind != CommandSet || !cmd.Value.Equal(spinbutton.ValueOf(250)) {
		t.Errorf("got %v %v, want set 250", cmd.Kind, cmd.Value)
	}
	if cmd.Remote == "" {
		t.Error("Remote should carry the client address")
	}

	// The hub leaves publishing to the widget's owner.
	if !hub.Current().IsAbsent() {
		t.Errorf("Current() = %v before the owner applied the set", hub.Current())
	}
	hub.Publish(cmd.Value)
	msg, err := c.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if !msg.Value.Equal(spinbutton.ValueOf(250)) {
		t.Errorf("published value = %v, want 250", msg.Value)
	}
}

func TestHub_PublishReachesAllClients(t *testing.T) {
	hub, url, _ := startHub(t, spinbutton.ValueOf(1))
	a := dial(t, url)
	b := dial(t, url)
	for _, c := range []*Client{a, b} {
		if _, err := c.Next(); err != nil {
			t.Fatalf("snapshot: %v", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for hub.Clients() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	hub.Publish(spinbutton.ValueOf(3))
	for _, c := range []*Client{a, b} {
		msg, err := c.Next()
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		if !msg.Value.Equal(spinbutton.ValueOf(3)) {
			t.Errorf("Value = %v, want 3", msg.Value)
		}
	}
}

func TestHub_IgnoresBadFrames(t *testing.T) {
	_, url, commands := startHub(t, spinbutton.Absent())
	c := dial(t, url)
	if _, err := c.Next(); err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	if err := c.write(Message{Type: "bogus"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := c.Increment(); err != nil {
		t.Fatalf("Increment() error: %v", err)
	}
	if cmd := waitCommand(t, commands); cmd.Kind != CommandIncrement {
		t.Errorf("Kind = %v, want increment after bad frame", cmd.Kind)
	}
}

func TestServer_ListenAndShutdown(t *testing.T) {
	hub := NewHub("spin-srv", spinbutton.ValueOf(5), nil)
	srv, err := Listen("127.0.0.1:0", hub)
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	if srv.Port() == 0 {
		t.Error("Port() should report the bound port")
	}

	c := dial(t, srv.URL())
	msg, err := c.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if !msg.Value.Equal(spinbutton.ValueOf(5)) {
		t.Errorf("Value = %v, want 5", msg.Value)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
}
