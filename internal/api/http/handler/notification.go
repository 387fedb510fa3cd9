package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/internal/service/notification"
	jwttoken "github.com/petscare/petscare_backend/pkg/token"
)

type NotificationHandler struct {
	svc notification.Service
}

func NewNotificationHandler(svc notification.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func mapNotificationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, notification.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /notifications
func (h *NotificationHandler) List(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	var q struct {
		UnreadOnly bool `query:"unread_only"`
	}
	_ = c.Bind().Query(&q)

	feed, err := h.svc.List(c.Context(), claims.UserID, q.UnreadOnly)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{
		"notifications": feed.Notifications,
		"unreadCount":   feed.UnreadCount,
	})
}

// PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}

	n, err := h.svc.MarkRead(c.Context(), notifID, claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, n)
}

// PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	claims, claimsOK := jwttoken.ClaimsFromFiber(c)
	if !claimsOK {
		return unauthorized(c)
	}

	n, err := h.svc.MarkAllRead(c.Context(), claims.UserID)
	if err != nil {
		return mapNotificationError(c, err)
	}

	return ok(c, fiber.Map{"updated": n})
}
