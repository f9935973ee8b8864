package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivoirestore/backend/internal/domain/identity"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// Authentication errors
var (
	ErrInvalidCredentials = shared.NewDomainError(shared.CodeInvalidCredentials, "Email ou mot de passe incorrect.")
	ErrInvalidToken       = shared.NewDomainError(shared.CodeInvalidToken, "Token invalide ou expiré.")
	ErrTokenExpired       = shared.NewDomainError(shared.CodeTokenExpired, "Token invalide ou expiré.")
	ErrAdminGone          = shared.NewDomainError(shared.CodeInvalidToken, "Token invalide. L'utilisateur n'existe plus.")
)

// AuthService handles admin registration, login and token verification
type AuthService struct {
	adminRepo  identity.AdminRepository
	jwtService *auth.JWTService
	hasher     *auth.PasswordHasher
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	adminRepo identity.AdminRepository,
	jwtService *auth.JWTService,
	hasher *auth.PasswordHasher,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     logger,
	}
}

// Register creates an admin account and signs a token for it. The password is hashed
// here, before the account reaches the repository.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	req = req.Sanitized()

	if err := identity.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := identity.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.adminRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, identity.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin, err := identity.NewAdmin(req.Name, req.Email, hash, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	// A concurrent registration can still win the unique index.
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("Admin registered",
		zap.String("admin_id", admin.ID.String()),
		zap.String("email", admin.Email),
		zap.String("role", string(admin.Role)))

	return s.issue(admin)
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	req = req.Sanitized()

	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.hasher.CompareDummy(req.Password)
			s.logger.Warn("Login failed", zap.String("email", req.Email))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(admin.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("Login failed", zap.String("email", req.Email))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	s.logger.Info("Admin logged in", zap.String("admin_id", admin.ID.String()))
	return s.issue(admin)
}

// Authenticate resolves a bearer token to the caller it belongs to.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*identity.Caller, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	id, err := claims.AdminUUID()
	if err != nil {
		return nil, ErrInvalidToken
	}

	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrAdminGone
		}
		return nil, err
	}
	return identity.NewCaller(admin), nil
}

// Me returns the account of the authenticated caller
func (s *AuthService) Me(ctx context.Context, caller *identity.Caller) (*AdminInfo, error) {
	if caller == nil {
		return nil, shared.ErrUnauthorized
	}
	admin, err := s.adminRepo.FindByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrAdminGone
		}
		return nil, err
	}
	info := ToAdminInfo(admin)
	return &info, nil
}

func (s *AuthService) issue(admin *identity.Admin) (*AuthResult, error) {
	token, err := s.jwtService.GenerateToken(admin.ID)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Admin:     ToAdminInfo(admin),
	}, nil
}
