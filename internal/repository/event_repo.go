package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/MobeenM17/SuswearGProject/internal/model"
)

// ────────────────────── Photo ──────────────────────

// PhotoRepository donation photos
type PhotoRepository interface {
	Create(ctx context.Context, p *model.PhotoDonation) error
	// URLsByDonation groups photo URLs by donation id, oldest first
	URLsByDonation(ctx context.Context, donationIDs []int) (map[int][]string, error)
}

type photoRepo struct {
	db *gorm.DB
}

// NewPhotoRepo creates a PhotoRepository
func NewPhotoRepo(db *gorm.DB) PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) Create(ctx context.Context, p *model.PhotoDonation) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *photoRepo) URLsByDonation(ctx context.Context, donationIDs []int) (map[int][]string, error) {
	out := make(map[int][]string, len(donationIDs))
	if len(donationIDs) == 0 {
		return out, nil
	}

	var photos []model.PhotoDonation
	err := r.db.WithContext(ctx).
		Where("donation_id IN ?", donationIDs).
		Order("donation_id ASC, photo_id ASC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	for _, p := range photos {
		out[p.DonationID] = append(out[p.DonationID], p.PhotoURL)
	}
	return out, nil
}

// ────────────────────── Review ──────────────────────

// ReviewRepository append-only review audit trail
type ReviewRepository interface {
	Create(ctx context.Context, rv *model.Review) error
	ListByDonation(ctx context.Context, donationID int) ([]model.Review, error)
}

type reviewRepo struct {
	db *gorm.DB
}

// NewReviewRepo creates a ReviewRepository
func NewReviewRepo(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) Create(ctx context.Context, rv *model.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *reviewRepo) ListByDonation(ctx context.Context, donationID int) ([]model.Review, error) {
	var list []model.Review
	err := r.db.WithContext(ctx).
		Where("donation_id = ?", donationID).
		Order("review_id ASC").
		Find(&list).Error
	return list, err
}

// ────────────────────── Notification ──────────────────────

// NotificationRepository append-only donation events
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
	CreateBatch(ctx context.Context, list []model.Notification) error
	ListByUser(ctx context.Context, userID, limit int) ([]model.Notification, error)
}

type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo creates a NotificationRepository
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) CreateBatch(ctx context.Context, list []model.Notification) error {
	if len(list) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&list).Error
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID, limit int) ([]model.Notification, error) {
	var list []model.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC, notification_id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
