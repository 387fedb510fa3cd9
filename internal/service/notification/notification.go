package notification

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/petscare/petscare_backend/internal/repo"
	entnotif "github.com/petscare/petscare_backend/internal/repo/notification"
)

// listLimit caps the notification feed; older entries age out of the view.
const listLimit = 50

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	RecipientID   uuid.UUID
	AppointmentID *uuid.UUID
	Type          string
	Title         string
	Message       string
	ActedBy       string
}

// Feed is the owner's notification view: newest first, with the unread
// count the client renders as a badge.
type Feed struct {
	Notifications []*repo.Notification
	UnreadCount   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Notification, error)
	List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) (*Feed, error)
	MarkRead(ctx context.Context, notifID, recipientID uuid.UUID) (*repo.Notification, error)
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type notificationService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &notificationService{db: db}
}

func (s *notificationService) Create(ctx context.Context, req CreateRequest) (*repo.Notification, error) {
	c := s.db.Notification.Create().
		SetRecipientID(req.RecipientID).
		SetType(entnotif.Type(req.Type)).
		SetTitle(req.Title).
		SetMessage(req.Message).
		SetActedBy(req.ActedBy)

	if req.AppointmentID != nil {
		c = c.SetAppointmentID(*req.AppointmentID)
	}

	n, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}
	return n, nil
}

func (s *notificationService) List(ctx context.Context, recipientID uuid.UUID, unreadOnly bool) (*Feed, error) {
	q := s.db.Notification.Query().
		Where(entnotif.RecipientID(recipientID))

	if unreadOnly {
		q = q.Where(entnotif.IsRead(false))
	}

	notifs, err := q.
		Order(entnotif.ByCreatedAt(sql.OrderDesc())).
		Limit(listLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	unread, err := s.db.Notification.Query().
		Where(entnotif.RecipientID(recipientID), entnotif.IsRead(false)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	return &Feed{Notifications: notifs, UnreadCount: unread}, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notifID, recipientID uuid.UUID) (*repo.Notification, error) {
	n, err := s.db.Notification.Query().
		Where(entnotif.ID(notifID), entnotif.RecipientID(recipientID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}

	updated, err := s.db.Notification.UpdateOne(n).
		SetIsRead(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return updated, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int, error) {
	n, err := s.db.Notification.Update().
		Where(entnotif.RecipientID(recipientID), entnotif.IsRead(false)).
		SetIsRead(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return n, nil
}
