package shopper

import (
	"strings"

	"cellar-market/internal/pkg/errs"

	"github.com/google/uuid"
)

// Shopper is the authenticated principal behind carts, purchases and bids.
// The zero value is a guest.
type Shopper struct {
	id    uuid.UUID
	email string
}

func New(id uuid.UUID, email string) (Shopper, error) {
	if id == uuid.Nil {
		return Shopper{}, errs.ErrUnauthenticated
	}
	return Shopper{id: id, email: strings.TrimSpace(email)}, nil
}

func Guest() Shopper { return Shopper{} }

func (s Shopper) ID() uuid.UUID { return s.id }
func (s Shopper) Email() string { return s.email }
func (s Shopper) IsGuest() bool { return s.id == uuid.Nil }

// Require fails with ErrUnauthenticated for guests.
func (s Shopper) Require() error {
	if s.IsGuest() {
		return errs.ErrUnauthenticated
	}
	return nil
}
