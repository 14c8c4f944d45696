package dto

import "time"

// NotificationResponse donation event in a user's feed
type NotificationResponse struct {
	ID          int       `json:"id"`
	DonationID  int       `json:"donationId"`
	Status      string    `json:"status"`
	GeneratedAt time.Time `json:"generatedAt"`
}
