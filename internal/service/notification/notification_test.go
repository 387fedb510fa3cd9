package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/petscare/petscare_backend/internal/repo"
	"github.com/petscare/petscare_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })
	return db, New(db)
}

func seedNotifications(t *testing.T, svc Service, recipient uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.Create(context.Background(), CreateRequest{
			RecipientID: recipient,
			Type:        "appointment_accepted",
			Title:       "Appointment Accepted",
			Message:     fmt.Sprintf("update %d", i),
			ActedBy:     "Dana",
		})
		if err != nil {
			t.Fatal(err)
		}
	}
}

func TestListNewestFirstWithUnreadCount(t *testing.T) {
	_, svc := newTestService(t)
	recipient := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	seedNotifications(t, svc, recipient, 3)

	feed, err := svc.List(ctx, recipient, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed.Notifications) != 3 {
		t.Fatalf("got %d notifications, want 3", len(feed.Notifications))
	}
	if feed.UnreadCount != 3 {
		t.Errorf("unread = %d, want 3", feed.UnreadCount)
	}
	if feed.Notifications[0].Message != "update 2" {
		t.Errorf("first entry = %q, want newest", feed.Notifications[0].Message)
	}
}

func TestListIsScopedToRecipient(t *testing.T) {
	_, svc := newTestService(t)
	a := uuid.Must(uuid.NewV7())
	b := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	seedNotifications(t, svc, a, 2)

	feed, err := svc.List(ctx, b, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed.Notifications) != 0 || feed.UnreadCount != 0 {
		t.Errorf("recipient b sees %d foreign notifications", len(feed.Notifications))
	}
}

func TestListCapsAtLimit(t *testing.T) {
	_, svc := newTestService(t)
	recipient := uuid.Must(uuid.NewV7())

	seedNotifications(t, svc, recipient, listLimit+5)

	feed, err := svc.List(context.Background(), recipient, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed.Notifications) != listLimit {
		t.Errorf("got %d notifications, want %d", len(feed.Notifications), listLimit)
	}
	// The badge still counts everything.
	if feed.UnreadCount != listLimit+5 {
		t.Errorf("unread = %d, want %d", feed.UnreadCount, listLimit+5)
	}
}

func TestMarkRead(t *testing.T) {
	_, svc := newTestService(t)
	recipient := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	n, err := svc.Create(ctx, CreateRequest{
		RecipientID: recipient,
		Type:        "appointment_rejected",
		Title:       "Appointment Rejected",
		Message:     "sorry",
		ActedBy:     "Admin",
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.MarkRead(ctx, n.ID, recipient)
	if err != nil {
		t.Fatal(err)
	}
	if !updated.IsRead {
		t.Error("notification still unread")
	}

	// Another recipient cannot mark it.
	if _, err := svc.MarkRead(ctx, n.ID, uuid.Must(uuid.NewV7())); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	_, svc := newTestService(t)
	recipient := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	seedNotifications(t, svc, recipient, 4)

	n, err := svc.MarkAllRead(ctx, recipient)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("marked %d, want 4", n)
	}

	feed, err := svc.List(ctx, recipient, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(feed.Notifications) != 0 || feed.UnreadCount != 0 {
		t.Error("unread notifications remain")
	}
}
