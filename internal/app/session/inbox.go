package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/globallingo/lingo/internal/domain"
	"github.com/globallingo/lingo/internal/infra/metrics"
)

// Inbox is the notification sink plus the reads the host shell needs to
// show and dismiss what was stored.
type Inbox interface {
	Notify(ctx context.Context, n domain.Notification) error
	ListPendingNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkNotificationShown(ctx context.Context, id int64) error
}

// DefaultPendingLimit caps Pending when the caller passes no limit.
const DefaultPendingLimit = 50

// Pending returns unshown notifications, oldest first.
func (s *Service) Pending(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = DefaultPendingLimit
	}
	notifs, err := s.inbox.ListPendingNotifications(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifs, nil
}

// MarkShown marks a notification as shown.
func (s *Service) MarkShown(ctx context.Context, id int64) error {
	return s.inbox.MarkNotificationShown(ctx, id)
}

// deliver hands notifications to the inbox. Delivery failures are logged,
// not returned: the state they describe is already persisted.
func (s *Service) deliver(ctx context.Context, notifs []domain.Notification) {
	now := s.clock.Now()
	for _, n := range notifs {
		n.CreatedAt = now
		s.log.Info("notification", zap.String("type", string(n.Type)), zap.String("message", n.Message))
		metrics.Notifications.WithLabelValues(string(n.Type)).Inc()
		if err := s.inbox.Notify(ctx, n); err != nil {
			s.log.Error("deliver notification", zap.String("type", string(n.Type)), zap.Error(err))
		}
	}
}
