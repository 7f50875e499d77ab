package service

import (
	"context"
	"errors"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/entity"
	"chatdesk-be/internal/repository/specification"
	"chatdesk-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthNotConfigured  = errors.New("admin credentials are not configured")
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory       unitofwork.RepositoryFactory
	cfg              *config.Config
	publisherService IPublisherService
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	cfg *config.Config,
	publisherService IPublisherService,
) IAuthService {
	return &authService{
		uowFactory:       uowFactory,
		cfg:              cfg,
		publisherService: publisherService,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.Admin.Email == "" || s.cfg.Admin.Password == "" || s.cfg.Admin.JWTSecret == "" {
		return nil, ErrAuthNotConfigured
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AdminUserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}

	// Bootstrap the configured admin on first login.
	if user == nil {
		if req.Email != s.cfg.Admin.Email {
			return nil, ErrInvalidCredentials
		}
		user, err = s.bootstrapAdmin(ctx, uow)
		if err != nil {
			return nil, err
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.Admin.JWTSecret))
	if err != nil {
		return nil, err
	}

	s.publisherService.PublishAudit(ctx, "ADMIN_LOGIN", map[string]interface{}{
		"email": user.Email,
	})

	return &dto.LoginResponse{
		Token: signedToken,
		User: dto.LoginUserInfo{
			Id:    user.Id.String(),
			Email: user.Email,
		},
	}, nil
}

func (s *authService) bootstrapAdmin(ctx context.Context, uow unitofwork.UnitOfWork) (*entity.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.AdminUser{
		Id:           uuid.New(),
		Email:        s.cfg.Admin.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uow.AdminUserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
