package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/jmfrazier/pawtrack/pkg/errors"
	"github.com/jmfrazier/pawtrack/pkg/util"
)

// Service exposes authentication workflows.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (UserView, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, token string) (TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (Claims, error)
}

type service struct {
	cfg    Config
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		logger: logger.With("component", "auth.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (UserView, error) {
	if vErr := validateNewCredentials(req.Username, req.Password); vErr != nil {
		return UserView{}, vErr
	}
	count, err := s.repo.CountByUsername(ctx, req.Username)
	if err != nil {
		return UserView{}, apperrors.Wrap("auth_error", "failed to check username", err)
	}
	if count > 0 {
		return UserView{}, newValidationError("Username already in use", "username")
	}
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return UserView{}, apperrors.Wrap("auth_error", "failed to hash password", err)
	}
	user, err := s.repo.Create(ctx, req.Username, hashed)
	if err != nil {
		// A concurrent registration can slip past the count check; the
		// store's uniqueness constraint reports it the same way.
		if errors.Is(err, ErrUsernameTaken) {
			return UserView{}, newValidationError("Username already in use", "username")
		}
		return UserView{}, apperrors.Wrap("auth_error", "failed to create user", err)
	}
	s.logger.Info("user registered", "username", user.Username)
	return UserView{Username: user.Username}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	if req.Username == "" || req.Password == "" {
		return TokenResponse{}, apperrors.Wrap("invalid_input", "username and password are required", nil)
	}
	user, found, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap("auth_error", "failed to fetch user", err)
	}
	// Unknown username and wrong password must be indistinguishable to the
	// caller.
	if !found {
		return TokenResponse{}, apperrors.Wrap("invalid_credentials", "invalid username or password", nil)
	}
	if !VerifyPassword(req.Password, user.PasswordHash) {
		return TokenResponse{}, apperrors.Wrap("invalid_credentials", "invalid username or password", nil)
	}
	signed, _, err := issueToken(user.Username, []byte(s.cfg.Secret), s.cfg.TokenTTL, s.now(), time.Time{})
	if err != nil {
		return TokenResponse{}, apperrors.Wrap("auth_error", "failed to sign token", err)
	}
	return TokenResponse{AuthToken: signed}, nil
}

func (s *service) Refresh(ctx context.Context, token string) (TokenResponse, error) {
	claims, err := s.ValidateToken(ctx, token)
	if err != nil {
		return TokenResponse{}, err
	}
	// The new expiration never precedes the old one, even when refresh runs
	// within the same second as issuance.
	signed, _, err := issueToken(claims.Username, []byte(s.cfg.Secret), s.cfg.TokenTTL, s.now(), claims.ExpiresAt)
	if err != nil {
		return TokenResponse{}, apperrors.Wrap("auth_error", "failed to sign token", err)
	}
	return TokenResponse{AuthToken: signed}, nil
}

func (s *service) ValidateToken(ctx context.Context, token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, apperrors.Wrap("invalid_token", "token missing", nil)
	}
	claims, err := verifyToken(token, []byte(s.cfg.Secret))
	if err != nil {
		s.logger.Warn("token rejected", "kind", err.Error())
		return Claims{}, apperrors.Wrap("invalid_token", "token validation failed", err)
	}
	return claims, nil
}
