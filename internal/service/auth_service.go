package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/internal/security"
	"github.com/fokanendapascal/internship-management-app/internal/token"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a new account and returns its first token pair
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	// Login authenticates credentials and returns a token pair
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Authenticated returns the account behind the given principal
	Authenticated(ctx context.Context, principal *domain.Principal) (*domain.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	codec    *token.Codec
	hasher   *security.Hasher
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, codec *token.Codec, hasher *security.Hasher) AuthService {
	return &authService{
		userRepo: userRepo,
		codec:    codec,
		hasher:   hasher,
	}
}

// Register creates a new account and returns its first token pair
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.register")
	defer span.End()

	span.SetAttributes(attribute.String("email", req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Telephone:    req.Telephone,
		Roles:        domain.ParseRoles(req.Roles),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// Login authenticates credentials and returns a token pair
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.login")
	defer span.End()

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new token pair. The
// account is re-read so revoked accounts and role changes take effect
// on the next rotation.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.refresh")
	defer span.End()

	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if claims.Kind() != token.KindRefresh || claims.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return s.issueTokens(user)
}

// Authenticated returns the account behind the given principal
func (s *authService) Authenticated(ctx context.Context, principal *domain.Principal) (*domain.User, error) {
	if principal == nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.userRepo.GetByEmail(ctx, principal.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *authService) issueTokens(user *domain.User) (*dto.TokenResponse, error) {
	access, err := s.codec.Issue(user.Email, user.Roles, token.KindAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.Issue(user.Email, nil, token.KindRefresh)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.codec.TTL(token.KindAccess).Seconds()),
	}, nil
}
