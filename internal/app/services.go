package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/petscare/petscare_backend/internal/repo"
	"github.com/petscare/petscare_backend/internal/service/appointment"
	"github.com/petscare/petscare_backend/internal/service/doctor"
	"github.com/petscare/petscare_backend/internal/service/notification"
	"github.com/petscare/petscare_backend/internal/service/pet"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAppointmentService,
		ProvideDoctorService,
		ProvidePetService,
		ProvideNotificationService,
	),
)

func ProvideAppointmentService(db *repo.Client, events appointment.EventDispatcher) appointment.Service {
	return appointment.New(db, events, slog.Default())
}

func ProvideDoctorService(db *repo.Client) doctor.Service {
	return doctor.New(db)
}

func ProvidePetService(db *repo.Client) pet.Service {
	return pet.New(db)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}
