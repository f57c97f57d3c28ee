package response

import (
	"encoding/json"
	"time"

	"cellar-market/internal/usecase/queries"
)

type NotificationResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	Status    string          `json:"status"`
	Payload   json.RawMessage `json:"payload" swaggertype:"object"`
	RunAt     time.Time       `json:"run_at"`
	CreatedAt time.Time       `json:"created_at"`
}

func FromNotificationViews(vs []*queries.NotificationJobView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(vs))
	for i, v := range vs {
		res[i] = &NotificationResponse{
			ID:        v.ID.String(),
			Kind:      v.Kind,
			Status:    v.Status,
			Payload:   json.RawMessage(v.Payload),
			RunAt:     v.RunAt,
			CreatedAt: v.CreatedAt,
		}
	}
	return res
}
