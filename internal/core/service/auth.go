package service

import (
	"context"

	"github.com/vendomart/vendordash/internal/core/domain"
	"github.com/vendomart/vendordash/internal/core/port"
	"go.uber.org/zap"
)

// Auth owns the vendor session: it exchanges credentials for a platform
// token, keeps it in the token store, and exposes the profile passthrough.
type Auth struct {
	platform port.PlatformClient
	tokens   port.TokenStore
	session  *Session
	logger   *zap.Logger
}

func NewAuth(platform port.PlatformClient, tokens port.TokenStore, session *Session, logger *zap.Logger) (*Auth, error) {
	return &Auth{
		platform: platform,
		tokens:   tokens,
		session:  session,
		logger:   logger,
	}, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	token, err := a.platform.LoginVendor(ctx, email, password)
	if err != nil {
		a.logger.Warn("vendor login failed", zap.String("email", email), zap.Error(err))
		return "", err
	}

	// A fresh login invalidates whatever the previous session cached.
	a.session.Reset()
	a.tokens.Set(token)

	a.logger.Info("vendor logged in", zap.String("email", email))
	return token, nil
}

func (a *Auth) Logout() {
	a.tokens.Clear()
	a.session.Reset()
}

func (a *Auth) Profile(ctx context.Context) (*domain.VendorProfile, error) {
	profile, err := a.platform.VendorProfile(ctx)
	if err != nil {
		a.logger.Error("fetch vendor profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
