package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cellar-market/internal/infra/sqlc"
	"cellar-market/internal/pkg/clock"
	"cellar-market/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

const KindAuctionWon = "auction.won"

type JobWriter interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type winnerPayload struct {
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body"`
}

// OutboxNotifier queues winner emails in notification_jobs. Delivery is
// handled by whatever drains the table.
type OutboxNotifier struct {
	jobs     JobWriter
	db       sqlc.DBTX
	clock    clock.Clock
	validate *validator.Validate
}

func NewOutboxNotifier(jobs JobWriter, db sqlc.DBTX, clk clock.Clock) *OutboxNotifier {
	return &OutboxNotifier{
		jobs:     jobs,
		db:       db,
		clock:    clk,
		validate: validator.New(),
	}
}

func (n *OutboxNotifier) NotifyWinner(ctx context.Context, email, subject, body string) error {
	p := winnerPayload{Email: email, Subject: subject, Body: body}
	if err := n.validate.Struct(p); err != nil {
		return errs.Mark(errs.Wrapf(err, "recipient %q", email), errs.ErrInvalidRecipient)
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}

	if err := n.jobs.CreateJob(ctx, n.db, KindAuctionWon, email, payload, n.clock.Now()); err != nil {
		return err
	}

	slog.Debug("winner notification queued", "topic", email)
	return nil
}
