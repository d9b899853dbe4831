package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/fotos-express/internal/auth"
	"github.com/spec-kit/fotos-express/internal/config"
	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/events"
	"github.com/spec-kit/fotos-express/internal/repository"
	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

// OnboardingService turns approved applications into activated staff accounts.
type OnboardingService struct {
	applications  repository.StaffApplicationRepository
	users         repository.StaffUserRepository
	notifications *NotificationService
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	baseURL       string
	activationTTL time.Duration
	minPassword   int
	bcryptCost    int
	now           func() time.Time
}

// OnboardingDependencies bundles collaborators.
type OnboardingDependencies struct {
	ApplicationRepo     repository.StaffApplicationRepository
	StaffUserRepo       repository.StaffUserRepository
	NotificationService *NotificationService
	Dispatcher          events.Dispatcher
	Logger              *zap.Logger
	Clock               func() time.Time
}

// NewOnboardingService builds the service.
func NewOnboardingService(cfg config.Config, deps OnboardingDependencies) *OnboardingService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &OnboardingService{
		applications:  deps.ApplicationRepo,
		users:         deps.StaffUserRepo,
		notifications: deps.NotificationService,
		dispatcher:    deps.Dispatcher,
		logger:        logger,
		baseURL:       cfg.App.BaseURL,
		activationTTL: cfg.Auth.ActivationTTL(),
		minPassword:   cfg.Auth.PasswordMinLength,
		bcryptCost:    cfg.Auth.BcryptCost,
		now:           clock,
	}
}

// ApprovalResult describes the account created for an approved application.
type ApprovalResult struct {
	Message        string    `json:"message"`
	ID             string    `json:"id"`
	Name           string    `json:"nombre"`
	Email          string    `json:"email"`
	ActivationLink string    `json:"activationLink"`
	TokenExpiry    time.Time `json:"tokenExpiry"`
	EmailSent      bool      `json:"emailSent"`
	EmailError     string    `json:"emailError,omitempty"`
}

// TokenStatus is returned by ValidateToken.
type TokenStatus struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
	Name  string `json:"nombre"`
}

// Approve creates an inactive staff account for the application and mails the
// activation link. Email failure is reported in the result and does not undo
// the account.
func (s *OnboardingService) Approve(ctx context.Context, applicationID string) (*ApprovalResult, error) {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, application.Email); err == nil {
		return nil, apperrors.NewConflict("A user with this email already exists", map[string]any{"email": application.Email})
	} else if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return nil, apperrors.MapError(err)
	}

	now := s.now().UTC()
	token := auth.NewActivationToken(now, s.activationTTL)
	appID := application.ID
	user := &domain.StaffUser{
		Email:           application.Email,
		Name:            application.Name,
		Phone:           application.Phone,
		IsActive:        false,
		ActivationToken: &token.Value,
		TokenExpiry:     &token.ExpiresAt,
		CreatedAt:       now,
		ApplicationID:   &appID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	// The account already exists; a failed status update is logged, not returned.
	if _, err := s.applications.UpdateStatus(ctx, application.ID, domain.ApplicationApproved); err != nil {
		s.logger.Warn("application status not updated after approval",
			zap.String("application_id", application.ID),
			zap.String("staff_id", user.ID),
			zap.Error(err))
	}

	link := s.activationLink(token.Value)
	result := &ApprovalResult{
		Message:        "Application approved. Activation link generated.",
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		ActivationLink: link,
		TokenExpiry:    token.ExpiresAt,
	}

	if s.notifications != nil {
		if err := s.notifications.SendActivationEmail(ctx, user.Email, user.Name, link, token.ExpiresAt); err != nil {
			s.logger.Warn("activation email failed",
				zap.String("staff_id", user.ID),
				zap.String("email", user.Email),
				zap.Error(err))
			result.EmailError = err.Error()
		} else {
			result.EmailSent = true
		}
	}

	s.logger.Info("application approved", zap.String("application_id", application.ID), zap.String("staff_id", user.ID))
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventApplicationApproved, application.ID, "",
		events.ApplicationApprovedPayload{StaffUserID: user.ID, Email: user.Email, EmailSent: result.EmailSent}))
	return result, nil
}

// ValidateToken reports who owns an unredeemed, unexpired token.
func (s *OnboardingService) ValidateToken(ctx context.Context, token string) (*TokenStatus, error) {
	user, err := s.redeemable(ctx, token)
	if err != nil {
		return nil, err
	}
	return &TokenStatus{Valid: true, Email: user.Email, Name: user.Name}, nil
}

// Activate sets the first password and consumes the token.
func (s *OnboardingService) Activate(ctx context.Context, token, password string) (*domain.StaffUser, error) {
	user, err := s.redeemable(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := checkPasswordLength(password, s.minPassword); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	now := s.now().UTC()
	updated, err := s.users.Update(ctx, user.ID, repository.Patch{
		"passwordHash":    hash,
		"isActive":        true,
		"activationToken": nil,
		"tokenExpiry":     nil,
		"activatedAt":     now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("staff account activated", zap.String("staff_id", user.ID))
	publish(ctx, s.dispatcher, s.logger, events.New(events.EventStaffActivated, user.ID, user.ID,
		events.StaffActivatedPayload{Email: user.Email}))
	return updated, nil
}

func (s *OnboardingService) redeemable(ctx context.Context, token string) (*domain.StaffUser, error) {
	user, err := s.users.GetByActivationToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if auth.Expired(user.TokenExpiry, s.now()) {
		return nil, apperrors.NewExpired("Activation token has expired")
	}
	if user.IsActive {
		return nil, apperrors.NewValidationError("Account already activated", nil)
	}
	return user, nil
}

func (s *OnboardingService) activationLink(token string) string {
	return s.baseURL + "/activar-cuenta?token=" + url.QueryEscape(token)
}

func checkPasswordLength(password string, minLength int) error {
	if len([]rune(password)) < minLength {
		return apperrors.NewValidationError(fmt.Sprintf("Password must be at least %d characters", minLength), map[string]any{"min_length": minLength})
	}
	return nil
}
