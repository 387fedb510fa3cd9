package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/petscare/petscare_backend/config"
	"github.com/petscare/petscare_backend/internal/api/http/handler"
	"github.com/petscare/petscare_backend/internal/api/http/middleware"
	"github.com/petscare/petscare_backend/internal/service/appointment"
	"github.com/petscare/petscare_backend/internal/service/doctor"
	"github.com/petscare/petscare_backend/internal/service/notification"
	"github.com/petscare/petscare_backend/internal/service/pet"
	"github.com/petscare/petscare_backend/pkg/authorize"
	"github.com/petscare/petscare_backend/pkg/email"
	"github.com/petscare/petscare_backend/pkg/realtime"
	jwttoken "github.com/petscare/petscare_backend/pkg/token"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	AppointmentSvc  appointment.Service
	DoctorSvc       doctor.Service
	PetSvc          pet.Service
	NotificationSvc notification.Service
	Mail            *email.Client
	Hub             *realtime.Hub
	TokenMgr        *jwttoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.TokenMgr)

	// Permission helper
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc, r.p.Mail)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	petH := handler.NewPetHandler(r.p.PetSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAppointmentRoutes(api, appointmentH, authRequired, requirePerm)
	r.registerDoctorRoutes(api, doctorH, authRequired, requirePerm)
	r.registerPetRoutes(api, petH, authRequired, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired, requirePerm)
	r.registerRealtimeRoutes(app)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
