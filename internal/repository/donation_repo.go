package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/internal/model"
)

// PendingDonationRow staff queue entry
type PendingDonationRow struct {
	DonationID     int
	DonorID        int
	DonorName      string
	Description    string
	CategoryName   string
	WeightKg       float64
	ConditionGrade *string
	SubmittedAt    time.Time
}

// SentDonationRow accepted donation with its tracking and inventory state
type SentDonationRow struct {
	DonationID      int
	Description     string
	CategoryName    string
	Tracking        string
	SentStatus      *string
	InventoryStatus *string
	SubmittedAt     time.Time
}

// ImpactRow one donation counted by the impact report
type ImpactRow struct {
	DonationID   int
	Description  string
	CategoryName string
	WeightKg     float64
}

// DonationRepository donation data access
type DonationRepository interface {
	Create(ctx context.Context, d *model.Donation) error
	GetByID(ctx context.Context, id int) (*model.Donation, error)
	// DecidePending applies updates only while the donation is still Pending and
	// reports whether the row changed.
	DecidePending(ctx context.Context, id int, updates map[string]interface{}) (bool, error)
	MarkSent(ctx context.Context, id int) error
	ListPending(ctx context.Context) ([]PendingDonationRow, error)
	ListByDonor(ctx context.Context, donorID int) ([]model.Donation, error)
	ListSentByDonor(ctx context.Context, donorID int) ([]SentDonationRow, error)
	// ListCounted returns Accepted and Distributed donations, optionally for one donor
	ListCounted(ctx context.Context, donorID *int) ([]ImpactRow, error)
}

type donationRepo struct {
	db *gorm.DB
}

// NewDonationRepo creates a DonationRepository
func NewDonationRepo(db *gorm.DB) DonationRepository {
	return &donationRepo{db: db}
}

func (r *donationRepo) Create(ctx context.Context, d *model.Donation) error {
	return r.db.WithContext(ctx).Omit("Category", "Photos").Create(d).Error
}

func (r *donationRepo) GetByID(ctx context.Context, id int) (*model.Donation, error) {
	var d model.Donation
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("donation_id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *donationRepo) DecidePending(ctx context.Context, id int, updates map[string]interface{}) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("donation_id = ? AND status = ?", id, model.DonationPending).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *donationRepo) MarkSent(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).
		Model(&model.Donation{}).
		Where("donation_id = ?", id).
		Update("sent_status", model.SentStatusSent)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *donationRepo) ListPending(ctx context.Context) ([]PendingDonationRow, error) {
	var rows []PendingDonationRow
	err := r.db.WithContext(ctx).
		Table("donations AS d").
		Select(`d.donation_id, d.donor_id, u.full_name AS donor_name, d.description,
			c.name AS category_name, d.weight_kg, d.condition_grade, d.submitted_at`).
		Joins("JOIN users u ON u.user_id = d.donor_id").
		Joins("JOIN categories c ON c.category_id = d.category_id").
		Where("d.status = ?", model.DonationPending).
		Order("d.submitted_at ASC, d.donation_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *donationRepo) ListByDonor(ctx context.Context, donorID int) ([]model.Donation, error) {
	var list []model.Donation
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photo_id ASC")
		}).
		Where("donor_id = ?", donorID).
		Order("submitted_at DESC, donation_id DESC").
		Find(&list).Error
	return list, err
}

func (r *donationRepo) ListSentByDonor(ctx context.Context, donorID int) ([]SentDonationRow, error) {
	var rows []SentDonationRow
	err := r.db.WithContext(ctx).
		Table("donations AS d").
		Select(`d.donation_id, d.description, c.name AS category_name, d.tracking,
			d.sent_status, i.status AS inventory_status, d.submitted_at`).
		Joins("JOIN categories c ON c.category_id = d.category_id").
		Joins("LEFT JOIN inventory i ON i.donation_id = d.donation_id").
		Where("d.donor_id = ? AND d.status = ? AND d.tracking IS NOT NULL", donorID, model.DonationAccepted).
		Order("d.submitted_at DESC, d.donation_id DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *donationRepo) ListCounted(ctx context.Context, donorID *int) ([]ImpactRow, error) {
	var rows []ImpactRow
	q := r.db.WithContext(ctx).
		Table("donations AS d").
		Select("d.donation_id, d.description, c.name AS category_name, d.weight_kg").
		Joins("JOIN categories c ON c.category_id = d.category_id").
		Where("d.status IN ?", []string{model.DonationAccepted, model.DonationDistributed})
	if donorID != nil {
		q = q.Where("d.donor_id = ?", *donorID)
	}
	err := q.Order("d.submitted_at DESC, d.donation_id DESC").Scan(&rows).Error
	return rows, err
}
