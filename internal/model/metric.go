package model

// Metric one row per calendar day, overwritten by each global report (metrics)
type Metric struct {
	MetricID        int     `gorm:"primaryKey;autoIncrement"             json:"metric_id"`
	MetricDate      string  `gorm:"type:varchar(10);not null;uniqueIndex" json:"metric_date"` // YYYY-MM-DD
	TotalDonations  int     `gorm:"not null;default:0"                   json:"total_donations"`
	CO2SavedKg      float64 `gorm:"column:co2_saved_kg;not null;default:0" json:"co2_saved_kg"`
	LandfillSavedKg float64 `gorm:"not null;default:0"                   json:"landfill_saved_kg"`
}

// TableName table name
func (Metric) TableName() string { return "metrics" }
