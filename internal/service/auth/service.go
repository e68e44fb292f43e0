package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hamyaran/admin-api/internal/model"
	"github.com/hamyaran/admin-api/internal/repository"
	"github.com/hamyaran/admin-api/pkg/auth"
	apperrors "github.com/hamyaran/admin-api/pkg/errors"
)

type AuthService interface {
	SignIn(ctx context.Context, req *model.SignInRequest) (*model.TokenPair, error)
	Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPair, error)
}

type Service struct {
	accounts repository.AccountRepository
	jwtSvc   auth.JWTService
}

func NewService(accounts repository.AccountRepository, jwtSvc auth.JWTService) *Service {
	return &Service{accounts: accounts, jwtSvc: jwtSvc}
}

func (s *Service) SignIn(ctx context.Context, req *model.SignInRequest) (*model.TokenPair, error) {
	account, err := s.accounts.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Unauthorized(fmt.Errorf("invalid credentials"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized(fmt.Errorf("invalid credentials"))
	}
	return s.generateTokens(account)
}

func (s *Service) Refresh(ctx context.Context, req *model.RefreshRequest) (*model.TokenPair, error) {
	claims, err := s.jwtSvc.ValidateRefreshToken(req.Refresh)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}
	account, err := s.accounts.GetByUsername(ctx, claims.Username)
	if err != nil {
		return nil, apperrors.Unauthorized(fmt.Errorf("account no longer exists"))
	}
	return s.generateTokens(account)
}

func (s *Service) generateTokens(account *model.Account) (*model.TokenPair, error) {
	access, err := s.jwtSvc.GenerateAccessToken(account.ID, account.Username)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	refresh, err := s.jwtSvc.GenerateRefreshToken(account.ID, account.Username)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &model.TokenPair{Access: access, Refresh: refresh}, nil
}
