package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/auth"
	"github.com/spec-kit/fotos-express/internal/config"
	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/repository"
	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

// AuthService coordinates staff login, password changes and profiles.
type AuthService struct {
	users       repository.StaffUserRepository
	assignments *AssignmentService
	tokenMgr    *auth.TokenManager
	logger      *zap.Logger
	bcryptCost  int
	minPassword int
	now         func() time.Time
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	StaffUserRepo     repository.StaffUserRepository
	AssignmentService *AssignmentService
	TokenManager      *auth.TokenManager
	Logger            *zap.Logger
	Clock             func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	tokenMgr := deps.TokenManager
	if tokenMgr == nil {
		tokenMgr = auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &AuthService{
		users:       deps.StaffUserRepo,
		assignments: deps.AssignmentService,
		tokenMgr:    tokenMgr,
		logger:      logger,
		bcryptCost:  cfg.Auth.BcryptCost,
		minPassword: cfg.Auth.PasswordMinLength,
		now:         clock,
	}
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Message   string       `json:"message"`
	User      StaffProfile `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

var errInvalidCredentials = apperrors.NewUnauthorized("Invalid credentials")

// Login verifies credentials for an active account and returns its profile
// with the current assignments.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, apperrors.MapError(err)
	}
	if !user.IsActive {
		return nil, apperrors.NewUnauthorized("Account not activated")
	}
	if user.PasswordHash == nil || !auth.VerifyPassword(*user.PasswordHash, password) {
		return nil, errInvalidCredentials
	}
	if auth.IsLegacyDigest(*user.PasswordHash) {
		s.upgradeDigest(ctx, user, password)
	}

	profile, err := s.Profile(ctx, user)
	if err != nil {
		return nil, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &LoginResult{Message: "Login successful", User: *profile, Token: token, ExpiresAt: exp}, nil
}

// upgradeDigest swaps a legacy digest for bcrypt after a successful login.
// Failure only costs another attempt on the next login.
func (s *AuthService) upgradeDigest(ctx context.Context, user *domain.StaffUser, password string) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err == nil {
		_, err = s.users.Update(ctx, user.ID, repository.Patch{"passwordHash": hash})
	}
	if err != nil {
		s.logger.Warn("password digest upgrade failed", zap.String("staff_id", user.ID), zap.Error(err))
		return
	}
	s.logger.Info("password digest upgraded", zap.String("staff_id", user.ID))
}

// ChangePassword replaces the digest of an active account after verifying the
// current password.
func (s *AuthService) ChangePassword(ctx context.Context, email, current, next string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return apperrors.NewUnauthorized("Account not activated")
	}
	if user.PasswordHash == nil || !auth.VerifyPassword(*user.PasswordHash, current) {
		return apperrors.NewUnauthorized("Current password is incorrect")
	}
	if err := checkPasswordLength(next, s.minPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	_, err = s.users.Update(ctx, user.ID, repository.Patch{
		"passwordHash":      hash,
		"passwordChangedAt": s.now().UTC(),
	})
	if err != nil {
		return err
	}
	s.logger.Info("staff password changed", zap.String("staff_id", user.ID))
	return nil
}

// GetUser returns the profile for email.
func (s *AuthService) GetUser(ctx context.Context, email string) (*StaffProfile, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.Profile(ctx, user)
}

// ListUsers returns every staff profile with its assignments.
func (s *AuthService) ListUsers(ctx context.Context) ([]StaffProfile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StaffProfile, 0, len(users))
	for i := range users {
		profile, err := s.Profile(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *profile)
	}
	return out, nil
}

// Profile attaches freshly computed assignments to user.
func (s *AuthService) Profile(ctx context.Context, user *domain.StaffUser) (*StaffProfile, error) {
	zones, err := s.assignments.AssignedZones(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	activities, err := s.assignments.AssignedActivities(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	profile := newStaffProfile(user, zones, activities)
	return &profile, nil
}
