package dto

// UserIDRequest promote / depromote target
type UserIDRequest struct {
	UserID int `json:"userId" binding:"required,gt=0"`
}

// CreateStaffRequest admin-created staff account
type CreateStaffRequest struct {
	FullName string `json:"fullName" binding:"required,max=100"`
	Email    string `json:"email"    binding:"required,swemail,max=255"`
	Password string `json:"password" binding:"required,strongpwd,max=72"`
}

// AccountResponse row of the donor / staff admin lists
type AccountResponse struct {
	UserID   int    `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
