package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/petscare/petscare_backend/internal/service/appointment"
	"github.com/petscare/petscare_backend/internal/service/fanout"
	"github.com/petscare/petscare_backend/internal/service/notification"
	"github.com/petscare/petscare_backend/pkg/email"
	"github.com/petscare/petscare_backend/pkg/realtime"
)

// FanoutModule wires the response fan-out dispatcher and its three sinks.
var FanoutModule = fx.Module("fanout",
	fx.Provide(ProvideDispatcher),
	fx.Invoke(drainOnShutdown),
)

func ProvideDispatcher(notifSvc notification.Service, hub *realtime.Hub, mail *email.Client) (*fanout.Dispatcher, appointment.EventDispatcher) {
	d := fanout.New(
		&notificationSink{svc: notifSvc},
		&pushSink{hub: hub},
		&emailSink{mail: mail},
		slog.Default(),
	)
	return d, d
}

// drainOnShutdown lets in-flight fan-outs finish before the process exits.
func drainOnShutdown(lc fx.Lifecycle, d *fanout.Dispatcher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			d.Wait()
			return nil
		},
	})
}

type notificationSink struct {
	svc notification.Service
}

func (s *notificationSink) CreateForResponse(ctx context.Context, ev fanout.ResponseEvent, typ, title, message string) error {
	apptID := ev.AppointmentID
	_, err := s.svc.Create(ctx, notification.CreateRequest{
		RecipientID:   ev.OwnerID,
		AppointmentID: &apptID,
		Type:          typ,
		Title:         title,
		Message:       message,
		ActedBy:       ev.ActedBy,
	})
	return err
}

type pushSink struct {
	hub *realtime.Hub
}

func (s *pushSink) Push(ownerID uuid.UUID, payload fanout.PushPayload) {
	s.hub.Push(ownerID, payload)
}

type emailSink struct {
	mail *email.Client
}

func (s *emailSink) SendResponseEmail(ctx context.Context, ev fanout.ResponseEvent) error {
	msg := email.BuildAppointmentStatusEmail(email.AppointmentEmailData{
		OwnerName:       ev.OwnerName,
		OwnerEmail:      ev.OwnerEmail,
		DoctorName:      ev.DoctorName,
		PetName:         ev.PetName,
		Status:          ev.Status,
		AppointmentDate: ev.AppointmentDate,
		ActedBy:         ev.ActedBy,
		RejectionReason: ev.RejectionReason,
	})
	return s.mail.Send(ctx, msg)
}
