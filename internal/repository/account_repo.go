package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/internal/model"
)

// ────────────────────── Donor ──────────────────────

// DonorRepository donor shadow table
type DonorRepository interface {
	Create(ctx context.Context, donor *model.Donor) error
	GetByUserID(ctx context.Context, userID int) (*model.Donor, error)
	Delete(ctx context.Context, userID int) error
	List(ctx context.Context) ([]model.Donor, error)
}

type donorRepo struct {
	db *gorm.DB
}

// NewDonorRepo creates a DonorRepository
func NewDonorRepo(db *gorm.DB) DonorRepository {
	return &donorRepo{db: db}
}

func (r *donorRepo) Create(ctx context.Context, donor *model.Donor) error {
	return r.db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepo) GetByUserID(ctx context.Context, userID int) (*model.Donor, error) {
	var donor model.Donor
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&donor).Error; err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepo) Delete(ctx context.Context, userID int) error {
	return deleteAccount(r.db.WithContext(ctx), &model.Donor{}, userID)
}

func (r *donorRepo) List(ctx context.Context) ([]model.Donor, error) {
	var donors []model.Donor
	err := r.db.WithContext(ctx).Order("full_name ASC, user_id ASC").Find(&donors).Error
	return donors, err
}

// ────────────────────── Staff ──────────────────────

// StaffRepository staff shadow table
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	GetByUserID(ctx context.Context, userID int) (*model.Staff, error)
	Delete(ctx context.Context, userID int) error
	List(ctx context.Context) ([]model.Staff, error)
}

type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo creates a StaffRepository
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *staffRepo) GetByUserID(ctx context.Context, userID int) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) Delete(ctx context.Context, userID int) error {
	return deleteAccount(r.db.WithContext(ctx), &model.Staff{}, userID)
}

func (r *staffRepo) List(ctx context.Context) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).Order("full_name ASC, user_id ASC").Find(&staff).Error
	return staff, err
}

// deleteAccount removes one shadow row, ErrRecordNotFound when nothing matched
func deleteAccount(db *gorm.DB, table interface{}, userID int) error {
	result := db.Where("user_id = ?", userID).Delete(table)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
