package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/pkg/realtime"
)

// registerRealtimeRoutes mounts the websocket endpoint through the net/http
// adaptor; the upgrade hijacks the connection, which fiber handlers cannot.
func (r *Router) registerRealtimeRoutes(app *fiber.App) {
	if !r.p.Cfg.Realtime.Enabled {
		return
	}

	auth := func(token string) (uuid.UUID, error) {
		claims, err := r.p.TokenMgr.Verify(token)
		if err != nil {
			return uuid.Nil, err
		}
		return claims.UserID, nil
	}

	h := realtime.NewHandler(r.p.Hub, auth)
	app.Get("/realtime/ws", adaptor.HTTPHandler(h))
}
