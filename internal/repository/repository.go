package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates every table repository over one handle.
// Inside Transaction the handle is the transaction itself.
type Repository struct {
	db *gorm.DB

	User         UserRepository
	Donor        DonorRepository
	Staff        StaffRepository
	Category     CategoryRepository
	Charity      CharityRepository
	Donation     DonationRepository
	Photo        PhotoRepository
	Inventory    InventoryRepository
	Review       ReviewRepository
	Notification NotificationRepository
	Metric       MetricRepository
}

// NewRepository creates the aggregate
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepo(db),
		Donor:        NewDonorRepo(db),
		Staff:        NewStaffRepo(db),
		Category:     NewCategoryRepo(db),
		Charity:      NewCharityRepo(db),
		Donation:     NewDonationRepo(db),
		Photo:        NewPhotoRepo(db),
		Inventory:    NewInventoryRepo(db),
		Review:       NewReviewRepo(db),
		Notification: NewNotificationRepo(db),
		Metric:       NewMetricRepo(db),
	}
}

// Transaction runs fn against repositories bound to one database transaction.
// Any error returned by fn, or a panic, rolls back every write.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
