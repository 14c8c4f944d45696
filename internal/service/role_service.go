package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/config"
	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/model"
	"github.com/MobeenM17/SuswearGProject/internal/repository"
	apperr "github.com/MobeenM17/SuswearGProject/pkg/errors"
)

// ── role errors ──

var (
	ErrAdminOnly     = apperr.New(apperr.Forbidden, "admin access required")
	ErrStaffNotFound = apperr.New(apperr.NotFound, "staff member not found")
	ErrUserNotFound  = apperr.New(apperr.NotFound, "user not found")
	ErrInvalidRole   = apperr.New(apperr.Validation, "role must be Admin, Donor or Staff")
)

// RoleService moves users between the Donor and Staff roles and keeps the
// shadow tables in step with users.role
type RoleService interface {
	Promote(ctx context.Context, userID int) error
	Depromote(ctx context.Context, userID int) error
	CreateStaff(ctx context.Context, callerRole string, req *dto.CreateStaffRequest) (*dto.RegisterResponse, error)
	// CreateAccount creates a user of any role with its shadow row; used by the CLI
	CreateAccount(ctx context.Context, role, fullName, email, password string) (*dto.RegisterResponse, error)
	ListDonors(ctx context.Context) ([]dto.AccountResponse, error)
	ListStaff(ctx context.Context) ([]dto.AccountResponse, error)
}

type roleService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRoleService creates a RoleService
func NewRoleService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) RoleService {
	return &roleService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── Promote / Depromote ──────────────────────

func (s *roleService) Promote(ctx context.Context, userID int) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		donor, err := tx.Donor.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDonorNotFound
			}
			return err
		}
		if err := tx.User.UpdateRole(ctx, userID, model.RoleStaff); err != nil {
			return err
		}
		if err := tx.Staff.Create(ctx, &model.Staff{RoleAccount: donor.RoleAccount}); err != nil {
			return err
		}
		return tx.Donor.Delete(ctx, userID)
	})
	if err != nil {
		s.logRoleError("promote", userID, err)
		return err
	}

	s.logger.Info("donor promoted to staff", zap.Int("user_id", userID))
	return nil
}

func (s *roleService) Depromote(ctx context.Context, userID int) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		staff, err := tx.Staff.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStaffNotFound
			}
			return err
		}
		if err := tx.Donor.Create(ctx, &model.Donor{RoleAccount: staff.RoleAccount}); err != nil {
			return err
		}
		if err := tx.User.UpdateRole(ctx, userID, model.RoleDonor); err != nil {
			return err
		}
		return tx.Staff.Delete(ctx, userID)
	})
	if err != nil {
		s.logRoleError("depromote", userID, err)
		return err
	}

	s.logger.Info("staff returned to donor", zap.Int("user_id", userID))
	return nil
}

func (s *roleService) logRoleError(op string, userID int, err error) {
	if apperr.KindOf(err) == apperr.Internal {
		s.logger.Error("role change failed", zap.String("op", op), zap.Int("user_id", userID), zap.Error(err))
	}
}

// ────────────────────── accounts ──────────────────────

func (s *roleService) CreateStaff(ctx context.Context, callerRole string, req *dto.CreateStaffRequest) (*dto.RegisterResponse, error) {
	if callerRole != model.RoleAdmin {
		return nil, ErrAdminOnly
	}
	return s.CreateAccount(ctx, model.RoleStaff, req.FullName, req.Email, req.Password)
}

func (s *roleService) CreateAccount(ctx context.Context, role, fullName, email, password string) (*dto.RegisterResponse, error) {
	switch role {
	case model.RoleAdmin, model.RoleDonor, model.RoleStaff:
	default:
		return nil, ErrInvalidRole
	}

	user, err := newAccount(fullName, email, password, role, s.cfg.Auth.BcryptCost)
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
		switch role {
		case model.RoleDonor:
			return tx.Donor.Create(ctx, &model.Donor{RoleAccount: model.AccountOf(user)})
		case model.RoleStaff:
			return tx.Staff.Create(ctx, &model.Staff{RoleAccount: model.AccountOf(user)})
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		if apperr.KindOf(err) == apperr.Internal {
			s.logger.Error("failed to create account", zap.String("role", role), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("account created", zap.Int("user_id", user.UserID), zap.String("role", role))

	return &dto.RegisterResponse{ID: user.UserID, Name: user.FullName, Email: user.Email}, nil
}

func (s *roleService) ListDonors(ctx context.Context) ([]dto.AccountResponse, error) {
	list, err := s.repo.Donor.List(ctx)
	if err != nil {
		s.logger.Error("failed to list donors", zap.Error(err))
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(list))
	for _, d := range list {
		out = append(out, accountResponse(d.RoleAccount))
	}
	return out, nil
}

func (s *roleService) ListStaff(ctx context.Context) ([]dto.AccountResponse, error) {
	list, err := s.repo.Staff.List(ctx)
	if err != nil {
		s.logger.Error("failed to list staff", zap.Error(err))
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(list))
	for _, st := range list {
		out = append(out, accountResponse(st.RoleAccount))
	}
	return out, nil
}

func accountResponse(a model.RoleAccount) dto.AccountResponse {
	return dto.AccountResponse{UserID: a.UserID, FullName: a.FullName, Email: a.Email}
}
