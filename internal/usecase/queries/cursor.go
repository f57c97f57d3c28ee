package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"cellar-market/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	purchaseKeyPrefix = "pk1."
)

// PurchaseKey is the position of a purchase in a buyer's history, which is
// ordered newest first by (created_at, id).
type PurchaseKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Encode renders the key as an opaque URL-safe token. Time is kept to the
// microsecond, matching timestamptz.
func (k PurchaseKey) Encode() string {
	raw := purchaseKeyPrefix + strconv.FormatInt(k.CreatedAt.UnixMicro(), 36) + "." + k.ID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func ParsePurchaseKey(token string) (PurchaseKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return PurchaseKey{}, errs.Wrapf(ErrInvalidCursor, "decode: %v", err)
	}
	body, ok := strings.CutPrefix(string(raw), purchaseKeyPrefix)
	if !ok {
		return PurchaseKey{}, errs.Wrapf(ErrInvalidCursor, "unknown cursor prefix")
	}
	micros, idPart, ok := strings.Cut(body, ".")
	if !ok {
		return PurchaseKey{}, errs.Wrapf(ErrInvalidCursor, "malformed cursor")
	}
	us, err := strconv.ParseInt(micros, 36, 64)
	if err != nil {
		return PurchaseKey{}, errs.Wrapf(ErrInvalidCursor, "time: %v", err)
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return PurchaseKey{}, errs.Wrapf(ErrInvalidCursor, "id: %v", err)
	}
	return PurchaseKey{CreatedAt: time.UnixMicro(us).UTC(), ID: id}, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func (c *Cursor) empty() bool {
	return c == nil || strings.TrimSpace(c.After) == ""
}

// ClampLimit falls back to DefaultListLimit for non-positive values and caps
// at MaxListLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
