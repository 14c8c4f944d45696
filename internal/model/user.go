package model

import "time"

// User account table (users)
type User struct {
	UserID       int       `gorm:"primaryKey;autoIncrement"                json:"user_id"`
	FullName     string    `gorm:"type:varchar(100);not null"              json:"full_name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"  json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"              json:"-"`
	Role         string    `gorm:"type:varchar(20);not null;default:'Donor'" json:"role"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"                 json:"created_at"`
}

// TableName table name
func (User) TableName() string { return "users" }

// RoleAccount denormalized copy of a user kept in the per-role tables
type RoleAccount struct {
	UserID       int    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	FullName     string `gorm:"type:varchar(100);not null"     json:"full_name"`
	Email        string `gorm:"type:varchar(255);not null"     json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"     json:"-"`
}

// AccountOf copies the shadow fields of a user
func AccountOf(u *User) RoleAccount {
	return RoleAccount{
		UserID:       u.UserID,
		FullName:     u.FullName,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}

// Donor shadow table (donors)
type Donor struct {
	RoleAccount
}

// TableName table name
func (Donor) TableName() string { return "donors" }

// Staff shadow table (staff)
type Staff struct {
	RoleAccount
}

// TableName table name
func (Staff) TableName() string { return "staff" }
