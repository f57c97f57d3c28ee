//go:build unit || e2e

package builder

import (
	"cellar-market/internal/domain/shopper"

	"github.com/google/uuid"
)

func NewShopper(email string) shopper.Shopper {
	s, err := shopper.New(uuid.New(), email)
	if err != nil {
		panic(err)
	}
	return s
}
