package services

import (
	"context"
	"errors"
	"time"

	"github.com/engagecrm/engage-backend/internal/apperrors"
	"github.com/engagecrm/engage-backend/internal/config"
	"github.com/engagecrm/engage-backend/internal/models"
	"github.com/engagecrm/engage-backend/internal/repositories"
	"github.com/engagecrm/engage-backend/pkg/googleauth"
	"github.com/engagecrm/engage-backend/pkg/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when login fails. Deliberately vague so
// responses never reveal whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration, login and Google sign-in
type AuthService struct {
	userRepo repositories.UserRepository
	verifier googleauth.Verifier
	cfg      *config.Config
	log      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, verifier googleauth.Verifier, cfg *config.Config, log *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, verifier: verifier, cfg: cfg, log: log}
}

// Register creates an account with a bcrypt-hashed password and returns a
// signed token for it.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.NewValidationError("email", "an account with this email already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies the password and returns a signed token
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Password == "" {
		// Google-only account, no password to compare against
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GoogleSignIn verifies a Google ID token, creating or linking the account
// for its email, and returns a signed token.
func (s *AuthService) GoogleSignIn(ctx context.Context, req *models.GoogleAuthRequest) (*models.AuthResponse, error) {
	identity, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		s.log.Warn("google token verification failed", zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, identity.Email)
	switch {
	case err == nil:
		if user.GoogleID == "" {
			user.GoogleID = identity.GoogleID
			user.UpdatedAt = time.Now()
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
	case errors.Is(err, apperrors.ErrNotFound):
		now := time.Now()
		user = &models.User{
			Name:      identity.Name,
			Email:     identity.Email,
			GoogleID:  identity.GoogleID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := jwt.Generate(s.cfg.JWT.Secret, user.ID.Hex(), user.Email, s.cfg.JWT.ExpiresIn)
	if err != nil {
		return nil, err
	}
	sanitized := *user
	sanitized.Password = ""
	return &models.AuthResponse{Token: token, User: &sanitized}, nil
}
