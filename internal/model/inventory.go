package model

import "time"

// Inventory staging row of an accepted donation (inventory)
type Inventory struct {
	InventoryID int       `gorm:"primaryKey;autoIncrement"                   json:"inventory_id"`
	DonationID  int       `gorm:"not null;uniqueIndex"                       json:"donation_id"`
	SizeLabel   *string   `gorm:"type:varchar(50)"                           json:"size_label,omitempty"`
	GenderLabel *string   `gorm:"type:varchar(50)"                           json:"gender_label,omitempty"`
	SeasonType  *string   `gorm:"type:varchar(50)"                           json:"season_type,omitempty"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Arriving'" json:"status"`
	CharityID   *int      `gorm:"index"                                      json:"charity_id,omitempty"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime"                    json:"updated_at"`
}

// TableName table name
func (Inventory) TableName() string { return "inventory" }

// Category reference list, also keys the impact lookup table (categories)
type Category struct {
	CategoryID int    `gorm:"primaryKey;autoIncrement"              json:"category_id"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
}

// TableName table name
func (Category) TableName() string { return "categories" }

// Charity reference list (charities)
type Charity struct {
	CharityID   int    `gorm:"primaryKey;autoIncrement"      json:"charity_id"`
	CharityName string `gorm:"type:varchar(200);not null"    json:"charity_name"`
}

// TableName table name
func (Charity) TableName() string { return "charities" }
