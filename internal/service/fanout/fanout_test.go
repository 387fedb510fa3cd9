package fanout

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingNotifications struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (r *recordingNotifications) CreateForResponse(_ context.Context, _ ResponseEvent, typ, title, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, typ+"|"+title+"|"+message)
	return r.err
}

type recordingPush struct {
	mu       sync.Mutex
	payloads []PushPayload
	owners   []uuid.UUID
}

func (r *recordingPush) Push(ownerID uuid.UUID, payload PushPayload) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners = append(r.owners, ownerID)
	r.payloads = append(r.payloads, payload)
}

type recordingEmail struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *recordingEmail) SendResponseEmail(context.Context, ResponseEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.err
}

func testEvent() ResponseEvent {
	return ResponseEvent{
		AppointmentID: uuid.Must(uuid.NewV7()),
		Status:        "accepted",
		OwnerID:       uuid.Must(uuid.NewV7()),
		OwnerName:     "Jamie",
		OwnerEmail:    "jamie@example.com",
		DoctorName:    "Dana",
		PetName:       "Max",
		ActedBy:       "Dana",
	}
}

func TestDispatchSyncDeliversAllThreeEffects(t *testing.T) {
	notes := &recordingNotifications{}
	push := &recordingPush{}
	mail := &recordingEmail{}
	d := New(notes, push, mail, slog.Default())

	ev := testEvent()
	d.DispatchSync(ev)

	if len(notes.calls) != 1 {
		t.Fatalf("notification calls = %d, want 1", len(notes.calls))
	}
	if !strings.HasPrefix(notes.calls[0], "appointment_accepted|Appointment Accepted|") {
		t.Errorf("unexpected notification: %q", notes.calls[0])
	}
	if len(push.payloads) != 1 {
		t.Fatalf("push calls = %d, want 1", len(push.payloads))
	}
	if push.owners[0] != ev.OwnerID {
		t.Errorf("pushed to %s, want owner %s", push.owners[0], ev.OwnerID)
	}
	if push.payloads[0].Status != "accepted" {
		t.Errorf("push status = %q", push.payloads[0].Status)
	}
	if mail.calls != 1 {
		t.Errorf("email calls = %d, want 1", mail.calls)
	}
}

func TestFailingEmailDoesNotBlockOtherEffects(t *testing.T) {
	notes := &recordingNotifications{}
	push := &recordingPush{}
	mail := &recordingEmail{err: errors.New("smtp unreachable")}
	d := New(notes, push, mail, slog.Default())

	d.DispatchSync(testEvent())

	if len(notes.calls) != 1 {
		t.Errorf("notification calls = %d, want 1", len(notes.calls))
	}
	if len(push.payloads) != 1 {
		t.Errorf("push calls = %d, want 1", len(push.payloads))
	}
}

func TestFailingNotificationDoesNotBlockPushOrEmail(t *testing.T) {
	notes := &recordingNotifications{err: errors.New("db down")}
	push := &recordingPush{}
	mail := &recordingEmail{}
	d := New(notes, push, mail, slog.Default())

	d.DispatchSync(testEvent())

	if len(push.payloads) != 1 {
		t.Errorf("push calls = %d, want 1", len(push.payloads))
	}
	if mail.calls != 1 {
		t.Errorf("email calls = %d, want 1", mail.calls)
	}
}

func TestDispatchIsAsynchronous(t *testing.T) {
	notes := &recordingNotifications{}
	push := &recordingPush{}
	mail := &recordingEmail{}
	d := New(notes, push, mail, slog.Default())

	d.Dispatch(testEvent())

	done := make(chan struct{})
	go func() {
		d.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not complete")
	}
	if len(notes.calls) != 1 {
		t.Errorf("notification calls = %d, want 1", len(notes.calls))
	}
}

func TestMessageIncludesRejectionReason(t *testing.T) {
	ev := testEvent()
	ev.Status = "rejected"
	ev.RejectionReason = "fully booked"

	got := Message(ev)
	want := "Your appointment with Dr. Dana for Max has been rejected by Dana. Reason: fully booked"
	if got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestNotificationTypeMapping(t *testing.T) {
	cases := map[string]string{
		"accepted":  "appointment_accepted",
		"rejected":  "appointment_rejected",
		"cancelled": "appointment_cancelled",
		"other":     "appointment_updated",
	}
	for status, want := range cases {
		if got := NotificationType(status); got != want {
			t.Errorf("NotificationType(%q) = %q, want %q", status, got, want)
		}
	}
}
