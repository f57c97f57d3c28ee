package queries

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/queries/mock_notification.go -package=queriesmock

import (
	"context"
	"strings"
)

type NotificationReadStore interface {
	ListByRecipient(ctx context.Context, email string) ([]*NotificationJobView, error)
}

type NotificationQueries interface {
	// ListForRecipient returns queued and sent notifications for one address.
	ListForRecipient(ctx context.Context, email string) ([]*NotificationJobView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListForRecipient(ctx context.Context, email string) ([]*NotificationJobView, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return []*NotificationJobView{}, nil
	}
	return q.store.ListByRecipient(ctx, email)
}
