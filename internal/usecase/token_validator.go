package usecase

import (
	"cellar-market/internal/domain/shopper"
	"cellar-market/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the shopper it was issued for.
type TokenValidator interface {
	Authenticate(token string) (shopper.Shopper, error)
}

type jwtShopperValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(svc *jwt.Service) TokenValidator {
	return &jwtShopperValidator{jwt: svc}
}

func (v *jwtShopperValidator) Authenticate(token string) (shopper.Shopper, error) {
	claims, err := v.jwt.ValidateToken(token)
	if err != nil {
		return shopper.Guest(), err
	}
	return shopper.New(claims.UserID, claims.Email)
}
