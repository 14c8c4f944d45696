package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
	apperr "github.com/MobeenM17/SuswearGProject/pkg/errors"
	"github.com/MobeenM17/SuswearGProject/pkg/jwt"
	"github.com/MobeenM17/SuswearGProject/pkg/redis"
	"github.com/MobeenM17/SuswearGProject/pkg/validate"
)

// ── auth errors ──

var (
	ErrInvalidCredentials = apperr.New(apperr.Unauthorized, "invalid email or password")
	ErrMissingFields      = apperr.New(apperr.Validation, "all fields are required")
	ErrInvalidEmail       = apperr.New(apperr.Validation, "invalid email format")
	ErrWeakPassword       = apperr.New(apperr.Validation, "password must be at least 8 characters and contain a letter and a number")
	ErrPasswordTooLong    = apperr.New(apperr.Validation, "password must be at most 72 bytes")
	ErrEmailTaken         = apperr.New(apperr.Conflict, "email already registered")
)

// bcryptPrefix marks hashed passwords; anything else is a legacy plaintext row
const bcryptPrefix = "$2"

// LoginResult identity plus the signed session cookie values
type LoginResult struct {
	User    dto.SessionUser
	Session *jwt.Session
}

// AuthService credential store
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*dto.SessionUser, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	// Logout revokes the session id until expiresAt; no-op without Redis
	Logout(ctx context.Context, sessionID string, expiresAt time.Time) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates an AuthService. rdb may be nil.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// ────────────────────── Authenticate ──────────────────────

func (s *authService) Authenticate(ctx context.Context, email, password string) (*dto.SessionUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user", zap.Error(err))
		return nil, err
	}

	if !passwordMatches(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &dto.SessionUser{
		ID:    user.UserID,
		Name:  user.FullName,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// passwordMatches compares against a bcrypt hash, or byte-for-byte against a legacy plaintext value
func passwordMatches(stored, password string) bool {
	if strings.HasPrefix(stored, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	session, err := s.jwtMgr.IssueSession(user.ID, user.Role)
	if err != nil {
		s.logger.Error("failed to issue session", zap.Int("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("user logged in", zap.Int("user_id", user.ID), zap.String("role", user.Role))

	return &LoginResult{User: *user, Session: session}, nil
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	user, err := newAccount(req.FullName, req.Email, req.Password, model.RoleDonor, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := ensureEmailFree(ctx, tx, user.Email); err != nil {
			return err
		}
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		return tx.Donor.Create(ctx, &model.Donor{RoleAccount: model.AccountOf(user)})
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		if apperr.KindOf(err) == apperr.Internal {
			s.logger.Error("failed to register donor", zap.String("email", user.Email), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("donor registered", zap.Int("user_id", user.UserID))

	return &dto.RegisterResponse{
		ID:    user.UserID,
		Name:  user.FullName,
		Email: user.Email,
	}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, sessionID string, expiresAt time.Time) error {
	if s.rdb == nil || sessionID == "" {
		return nil
	}
	if err := s.rdb.RevokeSession(ctx, sessionID, time.Until(expiresAt)); err != nil {
		s.logger.Warn("failed to revoke session", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── helpers ──────────────────────

// newAccount validates the registration fields and builds a user with a bcrypt hash
func newAccount(fullName, email, password, role string, cost int) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = validate.NormalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !validate.Email(email) {
		return nil, ErrInvalidEmail
	}
	if !validate.StrongPassword(password) {
		return nil, ErrWeakPassword
	}
	if len(password) > 72 {
		return nil, ErrPasswordTooLong
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}

	return &model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}, nil
}

// ensureEmailFree fails with ErrEmailTaken when any account already uses email
func ensureEmailFree(ctx context.Context, repo *repository.Repository, email string) error {
	_, err := repo.User.GetByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
