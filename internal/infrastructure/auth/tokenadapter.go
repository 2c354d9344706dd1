package auth

import (
	"github.com/gazette-press/gazette/internal/application/account/usecases"
	"github.com/gazette-press/gazette/internal/domain/account"
)

// TokenAdapter exposes the JWT service through the application token port.
type TokenAdapter struct {
	jwt *JWTService
}

func NewTokenAdapter(jwt *JWTService) *TokenAdapter {
	return &TokenAdapter{jwt: jwt}
}

func (a *TokenAdapter) Generate(accountUUID string, role account.Role) (*usecases.TokenPair, error) {
	pair, err := a.jwt.Generate(accountUUID, role)
	if err != nil {
		return nil, err
	}
	return &usecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *TokenAdapter) VerifyRefresh(refreshToken string) (string, error) {
	return a.jwt.VerifyRefresh(refreshToken)
}
