package readstore

import (
	"context"
	"strings"

	"cellar-market/internal/infra"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/pgconv"
	"cellar-market/internal/usecase/queries"
)

type NotificationReadQueries interface {
	ListNotificationJobsByTopic(ctx context.Context, db sqlc.DBTX, topic string) ([]sqlc.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{queries: queries, db: db}
}

// ListByRecipient returns the jobs queued for one address, oldest first.
func (s *NotificationReadStore) ListByRecipient(ctx context.Context, email string) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.ListNotificationJobsByTopic(ctx, s.db, strings.ToLower(email))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notification jobs", err)
	}

	out := make([]*queries.NotificationJobView, len(rows))
	for i, row := range rows {
		out[i] = &queries.NotificationJobView{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  row.Attempts,
			Status:    row.Status,
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return out, nil
}
