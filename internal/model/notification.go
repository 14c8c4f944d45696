package model

import "time"

// Notification append-only donation event (notifications)
type Notification struct {
	NotificationID int       `gorm:"primaryKey;autoIncrement"       json:"notification_id"`
	UserID         int       `gorm:"not null;index"                 json:"user_id"`
	DonationID     int       `gorm:"not null;index"                 json:"donation_id"`
	Status         string    `gorm:"type:varchar(50);not null"      json:"status"`
	GeneratedAt    time.Time `gorm:"not null;autoCreateTime;index"  json:"generated_at"`
}

// TableName table name
func (Notification) TableName() string { return "notifications" }
