package repository

import (
	"context"
	"strings"
	"time"

	"cellar-market/internal/infra"
	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/pgconv"
)

const jobStatusQueued = "queued"

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
}

// NotificationRepository appends to the notification outbox. Topics are
// recipient addresses and are stored lower-cased.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{queries: queries, db: db}
}

// CreateJob falls back to the pool when tx is nil.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	db := tx
	if db == nil {
		db = r.db
	}

	err := r.queries.CreateNotificationJob(ctx, db, sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   strings.ToLower(strings.TrimSpace(topic)),
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  jobStatusQueued,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to queue notification job", err)
	}
	return nil
}
