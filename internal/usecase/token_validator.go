package usecase

import (
	"meetbook/internal/pkg/jwt"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type tokenValidatorImpl struct {
	jwtSvc *jwt.Service
}

func NewTokenValidator(jwtSvc *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtSvc: jwtSvc}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (*jwt.Claims, error) {
	return v.jwtSvc.ValidateToken(token)
}
