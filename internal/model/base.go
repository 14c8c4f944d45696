package model

// ── roles ──

const (
	RoleAdmin = "Admin"
	RoleDonor = "Donor"
	RoleStaff = "Staff"
)

// ── donation lifecycle ──

const (
	DonationPending     = "Pending"
	DonationAccepted    = "Accepted"
	DonationRejected    = "Rejected"
	DonationDistributed = "Distributed"
)

// SentStatusSent is set once the donor confirms shipment
const SentStatusSent = "Sent"

// Inventory sub-states: Arriving after acceptance, InStock after shipment
const (
	InventoryArriving = "Arriving"
	InventoryInStock  = "InStock"
)

// Notification statuses besides the donation statuses themselves
const NotificationDonationSent = "Donation Sent"

// AllModels lists every table in creation order, used by AutoMigrate
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Donor{},
		&Staff{},
		&Category{},
		&Charity{},
		&Donation{},
		&PhotoDonation{},
		&Inventory{},
		&Review{},
		&Notification{},
		&Metric{},
	}
}
