package dto

import (
	"io"
	"time"
)

// ── input ──

// SubmitDonationInput multipart submission after parsing
type SubmitDonationInput struct {
	Description  string
	CategoryName string
	WeightKg     float64
	PhotoName    string
	Photo        io.Reader
}

// ReviewRequest staff decision on a pending donation.
// Labels are optional; nil keeps whatever the inventory row already holds.
type ReviewRequest struct {
	DonationID     int     `json:"donationId"     binding:"required,gt=0"`
	Action         string  `json:"action"         binding:"required"`
	Notes          *string `json:"notes"          binding:"omitempty,max=2000"`
	SizeLabel      *string `json:"sizeLabel"      binding:"omitempty,max=50"`
	GenderLabel    *string `json:"genderLabel"    binding:"omitempty,max=50"`
	SeasonType     *string `json:"seasonType"     binding:"omitempty,max=50"`
	ConditionGrade *string `json:"conditionGrade" binding:"omitempty,max=50"`
}

// SendRequest donor confirms shipment to a charity
type SendRequest struct {
	DonationID int `json:"donationId" binding:"required,gt=0"`
	CharityID  int `json:"charityId"  binding:"required,gt=0"`
}

// ── output ──

// ReviewResponse outcome of a review
type ReviewResponse struct {
	Status   string  `json:"status"`
	Tracking *string `json:"tracking,omitempty"`
}

// PendingDonationResponse one entry of the staff queue
type PendingDonationResponse struct {
	DonationID     int       `json:"donationId"`
	DonorID        int       `json:"donorId"`
	DonorName      string    `json:"donorName"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	WeightKg       float64   `json:"weightKg"`
	ConditionGrade *string   `json:"conditionGrade,omitempty"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// MyDonationResponse a donor's own donation
type MyDonationResponse struct {
	DonationID     int       `json:"donationId"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	WeightKg       float64   `json:"weightKg"`
	ConditionGrade *string   `json:"conditionGrade,omitempty"`
	Status         string    `json:"status"`
	SentStatus     *string   `json:"sentStatus,omitempty"`
	Tracking       *string   `json:"tracking,omitempty"`
	PhotoURLs      []string  `json:"photoUrls"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// SentDonationResponse accepted donation awaiting or past shipment
type SentDonationResponse struct {
	DonationID      int       `json:"donationId"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Tracking        string    `json:"tracking"`
	SentStatus      *string   `json:"sentStatus,omitempty"`
	InventoryStatus *string   `json:"inventoryStatus,omitempty"`
	SubmittedAt     time.Time `json:"submittedAt"`
}
