package dto

import "time"

// ShopItemResponse public shop listing entry
type ShopItemResponse struct {
	InventoryID    int       `json:"inventoryId"`
	DonationID     int       `json:"donationId"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	WeightKg       float64   `json:"weightKg"`
	ConditionGrade *string   `json:"conditionGrade,omitempty"`
	SizeLabel      *string   `json:"sizeLabel,omitempty"`
	GenderLabel    *string   `json:"genderLabel,omitempty"`
	SeasonType     *string   `json:"seasonType,omitempty"`
	Status         string    `json:"status"`
	CharityName    string    `json:"charityName"`
	PhotoURLs      []string  `json:"photoUrls"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CharityResponse reference entry
type CharityResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryResponse reference entry
type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
