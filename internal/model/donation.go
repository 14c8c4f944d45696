package model

import "time"

// Donation aggregate root (donations)
// DonorID holds the donor's user id.
type Donation struct {
	DonationID     int       `gorm:"primaryKey;autoIncrement"                      json:"donation_id"`
	DonorID        int       `gorm:"not null;index"                                json:"donor_id"`
	Description    string    `gorm:"type:text;not null"                            json:"description"`
	CategoryID     int       `gorm:"not null;index"                                json:"category_id"`
	WeightKg       float64   `gorm:"not null"                                      json:"weight_kg"`
	ConditionGrade *string   `gorm:"type:varchar(50)"                              json:"condition_grade,omitempty"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	SentStatus     *string   `gorm:"type:varchar(20)"                              json:"sent_status,omitempty"`
	Tracking       *string   `gorm:"type:varchar(20)"                              json:"tracking,omitempty"`
	SubmittedAt    time.Time `gorm:"not null;autoCreateTime"                       json:"submitted_at"`

	// associations
	Category *Category      `json:"category,omitempty"`
	Photos   []PhotoDonation `gorm:"foreignKey:DonationID;references:DonationID" json:"photos,omitempty"`
}

// TableName table name
func (Donation) TableName() string { return "donations" }

// PhotoDonation one photo of a donation (photo_donations)
type PhotoDonation struct {
	PhotoID    int       `gorm:"primaryKey;autoIncrement"     json:"photo_id"`
	DonationID int       `gorm:"not null;index"               json:"donation_id"`
	PhotoURL   string    `gorm:"type:varchar(500);not null"   json:"photo_url"`
	UploadedAt time.Time `gorm:"not null;autoCreateTime"      json:"uploaded_at"`
}

// TableName table name
func (PhotoDonation) TableName() string { return "photo_donations" }

// Review append-only audit row per review action (reviews)
type Review struct {
	ReviewID   int       `gorm:"primaryKey;autoIncrement"    json:"review_id"`
	DonationID int       `gorm:"not null;index"              json:"donation_id"`
	StaffID    int       `gorm:"not null;index"              json:"staff_id"`
	Decision   string    `gorm:"type:varchar(20);not null"   json:"decision"`
	Notes      *string   `gorm:"type:text"                   json:"notes,omitempty"`
	ReviewedAt time.Time `gorm:"not null;autoCreateTime"     json:"reviewed_at"`
}

// TableName table name
func (Review) TableName() string { return "reviews" }
