package dto

// ReportRequest empty donorEmail means global scope
type ReportRequest struct {
	DonorEmail string `json:"donorEmail" binding:"omitempty,max=255"`
}

// DonationImpact per-donation breakdown line
type DonationImpact struct {
	DonationID  int     `json:"donationId"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
	CO2Saved    float64 `json:"co2Saved"`
	Landfill    float64 `json:"landfillSaved"`
}

// ReportResponse impact summary; donor fields only set for a donor scope
type ReportResponse struct {
	Scope           string           `json:"scope"` // "all" | "donor"
	Donor           string           `json:"donor,omitempty"`
	Email           string           `json:"email,omitempty"`
	TotalDonations  int              `json:"totalDonations"`
	TotalCO2        float64          `json:"totalCO2"`
	LandfillSavedKG float64          `json:"landfillSavedKG"`
	Donations       []DonationImpact `json:"donations,omitempty"`
}
