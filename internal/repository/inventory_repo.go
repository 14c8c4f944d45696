package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MobeenM17/SuswearGProject/internal/model"
)

// ShopItemRow inventory row joined with its donation and charity
type ShopItemRow struct {
	InventoryID    int
	DonationID     int
	Description    string
	CategoryName   string
	WeightKg       float64
	ConditionGrade *string
	SizeLabel      *string
	GenderLabel    *string
	SeasonType     *string
	Status         string
	CharityName    string
	UpdatedAt      time.Time
}

// InventoryRepository inventory data access
type InventoryRepository interface {
	// Upsert inserts the row for inv.DonationID, or refreshes status and keeps
	// existing labels wherever inv carries nil.
	Upsert(ctx context.Context, inv *model.Inventory) error
	GetByDonationID(ctx context.Context, donationID int) (*model.Inventory, error)
	// MoveToStock sets InStock and the charity only while the row is Arriving
	MoveToStock(ctx context.Context, donationID, charityID int) (bool, error)
	ListShop(ctx context.Context) ([]ShopItemRow, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepo creates an InventoryRepository
func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Upsert(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "donation_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"size_label":   gorm.Expr("COALESCE(excluded.size_label, inventory.size_label)"),
				"gender_label": gorm.Expr("COALESCE(excluded.gender_label, inventory.gender_label)"),
				"season_type":  gorm.Expr("COALESCE(excluded.season_type, inventory.season_type)"),
				"status":       gorm.Expr("excluded.status"),
				"updated_at":   gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(inv).Error
}

func (r *inventoryRepo) GetByDonationID(ctx context.Context, donationID int) (*model.Inventory, error) {
	var inv model.Inventory
	if err := r.db.WithContext(ctx).Where("donation_id = ?", donationID).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) MoveToStock(ctx context.Context, donationID, charityID int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Inventory{}).
		Where("donation_id = ? AND status = ?", donationID, model.InventoryArriving).
		Updates(map[string]interface{}{
			"status":     model.InventoryInStock,
			"charity_id": charityID,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *inventoryRepo) ListShop(ctx context.Context) ([]ShopItemRow, error) {
	var rows []ShopItemRow
	err := r.db.WithContext(ctx).
		Table("inventory AS i").
		Select(`i.inventory_id, i.donation_id, d.description, c.name AS category_name,
			d.weight_kg, d.condition_grade, i.size_label, i.gender_label, i.season_type,
			i.status, COALESCE(ch.charity_name, 'Unknown') AS charity_name, i.updated_at`).
		Joins("JOIN donations d ON d.donation_id = i.donation_id").
		Joins("JOIN categories c ON c.category_id = d.category_id").
		Joins("LEFT JOIN charities ch ON ch.charity_id = i.charity_id").
		Where("i.status IN ?", []string{model.InventoryArriving, model.InventoryInStock}).
		Order("i.updated_at DESC, i.inventory_id DESC").
		Scan(&rows).Error
	return rows, err
}
