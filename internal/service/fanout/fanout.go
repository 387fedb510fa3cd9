// Package fanout turns one appointment response event into three
// independent side effects: a persisted notification, a real-time push to
// the owner's live sessions, and an email. Each effect has its own error
// boundary; one failing never blocks the others, and no failure ever
// propagates back into the state transition that produced the event.
package fanout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ResponseEvent is emitted by the appointment service after the new status
// has been persisted. The fan-out only ever reads already-committed state.
type ResponseEvent struct {
	AppointmentID   uuid.UUID
	Status          string // accepted | rejected | cancelled
	OwnerID         uuid.UUID
	OwnerName       string
	OwnerEmail      string
	DoctorName      string
	PetName         string
	AppointmentDate time.Time
	ActedBy         string // doctor name or "Admin"
	RejectionReason string
}

// NotificationSink persists the in-app notification record.
type NotificationSink interface {
	CreateForResponse(ctx context.Context, ev ResponseEvent, typ, title, message string) error
}

// PushSink delivers a payload to the owner's live sessions, if any.
// Having no live session is not an error.
type PushSink interface {
	Push(ownerID uuid.UUID, payload PushPayload)
}

// EmailSink renders and sends the status email. Implementations report
// disabled transports as errors; the dispatcher treats every email error
// as soft.
type EmailSink interface {
	SendResponseEmail(ctx context.Context, ev ResponseEvent) error
}

// PushPayload is the event body delivered over the real-time channel.
type PushPayload struct {
	Event         string    `json:"event"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	Status        string    `json:"status"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	ActedBy       string    `json:"acted_by"`
}

// Dispatcher fans a response event out to its three sinks.
type Dispatcher struct {
	notifications NotificationSink
	push          PushSink
	email         EmailSink
	log           *slog.Logger

	// EffectTimeout bounds each effect, most relevantly a slow SMTP
	// conversation. Zero means DefaultEffectTimeout.
	EffectTimeout time.Duration

	wg sync.WaitGroup
}

const DefaultEffectTimeout = 10 * time.Second

func New(notifications NotificationSink, push PushSink, email EmailSink, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{
		notifications: notifications,
		push:          push,
		email:         email,
		log:           log,
	}
}

// Dispatch runs the fan-out in the background and returns immediately.
// The caller's request must never wait on delivery.
func (d *Dispatcher) Dispatch(ev ResponseEvent) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.run(ev)
	}()
}

// DispatchSync runs the fan-out on the calling goroutine. Used by tests
// and by callers that already run on a background worker.
func (d *Dispatcher) DispatchSync(ev ResponseEvent) {
	d.run(ev)
}

// Wait blocks until in-flight dispatches finish. Called on shutdown so a
// response accepted moments before SIGTERM still notifies the owner.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) run(ev ResponseEvent) {
	timeout := d.EffectTimeout
	if timeout <= 0 {
		timeout = DefaultEffectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	typ := NotificationType(ev.Status)
	title := Title(ev.Status)
	message := Message(ev)

	// Effect 1: persisted notification.
	if d.notifications != nil {
		if err := d.notifications.CreateForResponse(ctx, ev, typ, title, message); err != nil {
			d.log.Warn("fanout: persist notification failed",
				"appointment_id", ev.AppointmentID, "err", err)
		}
	}

	// Effect 2: real-time push to the owner only, never broadcast.
	if d.push != nil {
		d.push.Push(ev.OwnerID, PushPayload{
			Event:         "appointment_response",
			AppointmentID: ev.AppointmentID,
			Status:        ev.Status,
			Title:         title,
			Message:       message,
			ActedBy:       ev.ActedBy,
		})
	}

	// Effect 3: email. Disabled or failing transport is logged, not raised.
	if d.email != nil {
		if err := d.email.SendResponseEmail(ctx, ev); err != nil {
			d.log.Warn("fanout: status email failed",
				"appointment_id", ev.AppointmentID, "to", ev.OwnerEmail, "err", err)
		}
	}
}
